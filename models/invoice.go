package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Invoice is the printable view of a tally entry. Repeated services are
// collapsed into one line with a quantity.
type Invoice struct {
	InvoiceNumber    string          `json:"invoiceNumber"`
	TallyID          string          `json:"tallyId"`
	InvoiceDate      string          `json:"invoiceDate"`
	CustomerName     string          `json:"customerName"`
	CustomerPhone    string          `json:"customerPhone"`
	StaffName        string          `json:"staffName"`
	Items            []InvoiceItem   `json:"items"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	Adjustment       decimal.Decimal `json:"adjustment"`
	Total            decimal.Decimal `json:"total"`
	PaymentMethod    PaymentMethod   `json:"paymentMethod"`
	PaymentStatus    PaymentStatus   `json:"paymentStatus"`
	UPITransactionID string          `json:"upiTransactionId,omitempty"`
}

type InvoiceItem struct {
	ServiceName string          `json:"serviceName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
}

// InvoiceNumber derives a stable number from the entry date and id.
func InvoiceNumber(t TallyItem) string {
	suffix := strings.ToUpper(strings.ReplaceAll(t.ID, "-", ""))
	if len(suffix) > 8 {
		suffix = suffix[:8]
	}
	return "INV-" + strings.ReplaceAll(t.Date, "-", "") + "-" + suffix
}

// NewInvoice builds the invoice for t. Adjustment is whatever separates the
// charged total from the sum of the service lines, such as a discount.
func NewInvoice(t TallyItem) Invoice {
	inv := Invoice{
		InvoiceNumber:    InvoiceNumber(t),
		TallyID:          t.ID,
		InvoiceDate:      t.Date,
		CustomerName:     t.CustomerName,
		CustomerPhone:    t.CustomerPhone,
		StaffName:        t.StaffName,
		Items:            []InvoiceItem{},
		Subtotal:         decimal.Zero,
		PaymentMethod:    t.PaymentMethod,
		PaymentStatus:    t.PaymentStatus,
		UPITransactionID: t.UPITransactionID,
	}

	index := map[string]int{}
	for _, line := range t.Services {
		price := decimal.NewFromFloat(line.Price).Round(2)
		key := line.Name + "|" + price.String()
		if i, ok := index[key]; ok {
			inv.Items[i].Quantity++
			inv.Items[i].TotalPrice = inv.Items[i].TotalPrice.Add(price)
		} else {
			index[key] = len(inv.Items)
			inv.Items = append(inv.Items, InvoiceItem{
				ServiceName: line.Name,
				Quantity:    1,
				UnitPrice:   price,
				TotalPrice:  price,
			})
		}
		inv.Subtotal = inv.Subtotal.Add(price)
	}

	inv.Total = decimal.NewFromFloat(t.TotalCost).Round(2)
	inv.Adjustment = inv.Total.Sub(inv.Subtotal)
	return inv
}
