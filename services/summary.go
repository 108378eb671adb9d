package services

import (
	"sort"

	"salonpro-desk/models"

	"github.com/shopspring/decimal"
)

type ServiceRevenue struct {
	Name    string          `json:"name"`
	Count   int             `json:"count"`
	Revenue decimal.Decimal `json:"revenue"`
}

// TallySummary aggregates ledger entries. Revenue only counts completed
// payments; Outstanding counts pending ones.
type TallySummary struct {
	Date          string                                   `json:"date,omitempty"`
	Entries       int                                      `json:"entries"`
	Revenue       decimal.Decimal                          `json:"revenue"`
	Outstanding   decimal.Decimal                          `json:"outstanding"`
	AverageTicket decimal.Decimal                          `json:"averageTicket"`
	ByMethod      map[models.PaymentMethod]decimal.Decimal `json:"byMethod"`
	ByStatus      map[models.PaymentStatus]int             `json:"byStatus"`
	TopServices   []ServiceRevenue                         `json:"topServices"`
}

const topServicesLimit = 5

// Amount converts a ledger float to a decimal rounded to paise.
func Amount(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

// SummarizeTally totals items, limited to entries on date when date is set.
func SummarizeTally(items []models.TallyItem, date string) TallySummary {
	s := TallySummary{
		Date:        date,
		Revenue:     decimal.Zero,
		Outstanding: decimal.Zero,
		ByMethod:    map[models.PaymentMethod]decimal.Decimal{},
		ByStatus:    map[models.PaymentStatus]int{},
		TopServices: []ServiceRevenue{},
	}

	byService := map[string]*ServiceRevenue{}
	completed := 0
	for _, item := range items {
		if date != "" && item.Date != date {
			continue
		}
		s.Entries++
		s.ByStatus[item.PaymentStatus]++

		switch item.PaymentStatus {
		case models.PaymentPending:
			s.Outstanding = s.Outstanding.Add(Amount(item.TotalCost))
		case models.PaymentCompleted:
			completed++
			total := Amount(item.TotalCost)
			s.Revenue = s.Revenue.Add(total)
			s.ByMethod[item.PaymentMethod] = s.ByMethod[item.PaymentMethod].Add(total)
			for _, line := range item.Services {
				sr, ok := byService[line.Name]
				if !ok {
					sr = &ServiceRevenue{Name: line.Name, Revenue: decimal.Zero}
					byService[line.Name] = sr
				}
				sr.Count++
				sr.Revenue = sr.Revenue.Add(Amount(line.Price))
			}
		}
	}

	if completed > 0 {
		s.AverageTicket = s.Revenue.Div(decimal.NewFromInt(int64(completed))).Round(2)
	}

	for _, sr := range byService {
		s.TopServices = append(s.TopServices, *sr)
	}
	sort.Slice(s.TopServices, func(i, j int) bool {
		a, b := s.TopServices[i], s.TopServices[j]
		if c := a.Revenue.Cmp(b.Revenue); c != 0 {
			return c > 0
		}
		return a.Name < b.Name
	})
	if len(s.TopServices) > topServicesLimit {
		s.TopServices = s.TopServices[:topServicesLimit]
	}
	return s
}
