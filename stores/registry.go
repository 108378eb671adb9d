package stores

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotProvided is returned when a store is requested from a context that
// was never given a Registry.
var ErrNotProvided = errors.New("store accessed outside of a store provider")

// Registry holds one instance of every store. Stores built by the same
// registry share the id generator and clock.
type Registry struct {
	Appointments *AppointmentStore
	Customers    *CustomerStore
	Staff        *StaffStore
	Tally        *TallyStore
}

func NewRegistry(opts ...Option) *Registry {
	o := buildOptions(opts)
	return &Registry{
		Appointments: NewAppointmentStore(),
		Customers:    newCustomerStore(o),
		Staff:        newStaffStore(o),
		Tally:        newTallyStore(o),
	}
}

type registryKey struct{}

func NewContext(ctx context.Context, reg *Registry) context.Context {
	return context.WithValue(ctx, registryKey{}, reg)
}

func FromContext(ctx context.Context) (*Registry, error) {
	reg, ok := ctx.Value(registryKey{}).(*Registry)
	if !ok || reg == nil {
		return nil, ErrNotProvided
	}
	return reg, nil
}

func mustRegistry(ctx context.Context, accessor string) *Registry {
	reg, err := FromContext(ctx)
	if err != nil {
		panic(fmt.Errorf("%s: %w", accessor, err))
	}
	return reg
}

// The Must accessors panic with an error wrapping ErrNotProvided when ctx
// carries no Registry.

func MustAppointments(ctx context.Context) *AppointmentStore {
	return mustRegistry(ctx, "appointments").Appointments
}

func MustCustomers(ctx context.Context) *CustomerStore {
	return mustRegistry(ctx, "customers").Customers
}

func MustStaff(ctx context.Context) *StaffStore {
	return mustRegistry(ctx, "staff").Staff
}

func MustTally(ctx context.Context) *TallyStore {
	return mustRegistry(ctx, "tally").Tally
}
