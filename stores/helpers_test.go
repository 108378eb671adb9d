package stores

import (
	"fmt"
	"time"

	"salonpro-desk/data"
	"salonpro-desk/models"
)

var fixedNow = time.Date(2024, time.April, 1, 10, 0, 0, 0, time.UTC)

func sequentialIDs(prefix string) IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func testOptions(extra ...Option) []Option {
	opts := []Option{
		WithIDGenerator(sequentialIDs("id")),
		WithClock(func() time.Time { return fixedNow }),
	}
	return append(opts, extra...)
}

func noCustomers() []models.Customer     { return nil }
func noEmployees() []data.EmployeeRecord { return nil }

func ptr[T any](v T) *T { return &v }
