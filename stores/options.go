package stores

import (
	"time"

	"salonpro-desk/data"
	"salonpro-desk/models"

	"github.com/google/uuid"
)

// IDGenerator returns a new unique identifier on every call.
type IDGenerator func() string

// Clock returns the current time.
type Clock func() time.Time

func defaultClock() time.Time {
	return time.Now().UTC()
}

type options struct {
	newID        IDGenerator
	now          Clock
	customerSeed func() []models.Customer
	staffSeed    func() []data.EmployeeRecord
}

type Option func(*options)

func WithIDGenerator(g IDGenerator) Option {
	return func(o *options) { o.newID = g }
}

func WithClock(c Clock) Option {
	return func(o *options) { o.now = c }
}

// WithCustomerSeed replaces the sample customers loaded on first activation.
func WithCustomerSeed(seed func() []models.Customer) Option {
	return func(o *options) { o.customerSeed = seed }
}

// WithStaffSeed replaces the sample employees loaded on first activation.
func WithStaffSeed(seed func() []data.EmployeeRecord) Option {
	return func(o *options) { o.staffSeed = seed }
}

func buildOptions(opts []Option) options {
	o := options{
		newID:        uuid.NewString,
		now:          defaultClock,
		customerSeed: data.Customers,
		staffSeed:    data.Employees,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
