package services

import (
	"sync"

	"salonpro-desk/models"
	"salonpro-desk/stores"

	"github.com/rs/zerolog/log"
)

// newlyCompleted returns the entries of c.Next that became completed in this
// change, including entries created as completed.
func newlyCompleted(c stores.Change[[]models.TallyItem]) []models.TallyItem {
	prev := make(map[string]models.PaymentStatus, len(c.Prev))
	for _, item := range c.Prev {
		prev[item.ID] = item.PaymentStatus
	}

	var out []models.TallyItem
	for _, item := range c.Next {
		if item.PaymentStatus != models.PaymentCompleted {
			continue
		}
		if status, ok := prev[item.ID]; ok && status == models.PaymentCompleted {
			continue
		}
		out = append(out, item)
	}
	return out
}

// VisitTracker credits a customer's visit stats when one of their payments
// completes. Customers are matched by phone.
type VisitTracker struct {
	tally     *stores.TallyStore
	customers *stores.CustomerStore

	mu          sync.Mutex
	unsubscribe func()
}

func NewVisitTracker(reg *stores.Registry) *VisitTracker {
	return &VisitTracker{tally: reg.Tally, customers: reg.Customers}
}

func (v *VisitTracker) Start() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.unsubscribe != nil {
		return
	}
	v.unsubscribe = v.tally.Subscribe(v.handle)
}

func (v *VisitTracker) Stop() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.unsubscribe != nil {
		v.unsubscribe()
		v.unsubscribe = nil
	}
}

func (v *VisitTracker) handle(c stores.Change[[]models.TallyItem]) {
	for _, item := range newlyCompleted(c) {
		v.credit(item)
	}
}

func (v *VisitTracker) credit(item models.TallyItem) {
	customer, ok := v.customers.FindByPhone(item.CustomerPhone)
	if !ok {
		log.Debug().
			Str("tally_id", item.ID).
			Str("phone", item.CustomerPhone).
			Msg("Completed payment has no matching customer")
		return
	}

	cost := Amount(item.TotalCost)
	updated, ok := v.customers.Modify(customer.ID, func(c models.Customer) models.Customer {
		c.VisitCount++
		c.TotalSpent = Amount(c.TotalSpent).Add(cost).InexactFloat64()
		if item.PaymentDate.After(c.LastVisit) {
			c.LastVisit = item.PaymentDate
		}
		return c
	})
	if !ok {
		return
	}

	log.Info().
		Str("customer_id", customer.ID).
		Str("tally_id", item.ID).
		Int("visit_count", updated.VisitCount).
		Msg("Recorded customer visit")
}
