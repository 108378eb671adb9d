package stores

import (
	"slices"
	"sync"

	"salonpro-desk/models"

	"github.com/rs/zerolog/log"
)

// CustomerStore loads the sample customers the first time it is used. Once
// seeded it is never reseeded, even after every customer has been deleted.
type CustomerStore struct {
	state    *observable[[]models.Customer]
	seed     func() []models.Customer
	seedOnce sync.Once
	newID    IDGenerator
	now      Clock
}

func NewCustomerStore(opts ...Option) *CustomerStore {
	o := buildOptions(opts)
	return newCustomerStore(o)
}

func newCustomerStore(o options) *CustomerStore {
	return &CustomerStore{
		state: newObservable([]models.Customer{}),
		seed:  o.customerSeed,
		newID: o.newID,
		now:   o.now,
	}
}

func customerID(c models.Customer) string { return c.ID }

func (s *CustomerStore) activate() {
	s.seedOnce.Do(func() {
		s.state.replace(func(prev []models.Customer) ([]models.Customer, bool) {
			if len(prev) > 0 {
				return prev, false
			}
			seed := s.seed()
			if len(seed) == 0 {
				return prev, false
			}
			log.Debug().Int("count", len(seed)).Msg("Seeded customer store")
			return seed, true
		})
	})
}

func (s *CustomerStore) List() []models.Customer {
	s.activate()
	items, _ := s.state.snapshot()
	return cloneAll(items)
}

func (s *CustomerStore) Version() uint64 {
	s.activate()
	_, v := s.state.snapshot()
	return v
}

func (s *CustomerStore) Get(id string) (models.Customer, bool) {
	s.activate()
	items, _ := s.state.snapshot()
	return findClone(items, id, customerID)
}

// FindByPhone returns the first customer whose phone matches exactly.
func (s *CustomerStore) FindByPhone(phone string) (models.Customer, bool) {
	s.activate()
	items, _ := s.state.snapshot()
	for _, c := range items {
		if c.Phone == phone {
			return c.Clone(), true
		}
	}
	return models.Customer{}, false
}

// Create appends a new customer with a fresh id and zeroed visit stats.
func (s *CustomerStore) Create(in models.NewCustomer) (models.Customer, error) {
	if !in.Gender.Valid() {
		return models.Customer{}, models.ErrInvalidGender
	}
	s.activate()

	c := models.Customer{
		ID:                s.newID(),
		Name:              in.Name,
		Phone:             in.Phone,
		Email:             in.Email,
		Gender:            in.Gender,
		VisitCount:        0,
		TotalSpent:        0,
		LastVisit:         s.now(),
		PreferredServices: slices.Clone(in.PreferredServices),
		Photo:             in.Photo,
	}
	if c.PreferredServices == nil {
		c.PreferredServices = []string{}
	}
	if in.Notes != nil {
		notes := *in.Notes
		c.Notes = &notes
	}

	s.state.replace(func(prev []models.Customer) ([]models.Customer, bool) {
		return appendItem(prev, c), true
	})
	return c.Clone(), nil
}

// Update merges patch into every customer with the given id and returns the
// first merged record. A missing id is not an error: the store is left as is.
func (s *CustomerStore) Update(id string, patch models.CustomerPatch) (models.Customer, bool) {
	return s.Modify(id, patch.Apply)
}

// Modify replaces every customer with the given id by fn applied to it. fn
// runs under the store lock, so read-modify-write updates such as counters
// cannot interleave with other mutations. fn must not call back into the
// store.
func (s *CustomerStore) Modify(id string, fn func(models.Customer) models.Customer) (models.Customer, bool) {
	s.activate()
	next, changed := s.state.replace(func(prev []models.Customer) ([]models.Customer, bool) {
		return mergeByID(prev, id, customerID, func(c models.Customer) models.Customer {
			return fn(c.Clone())
		})
	})
	if !changed {
		return models.Customer{}, false
	}
	return findClone(next, id, customerID)
}

// Delete removes every customer with the given id and reports whether any
// was found.
func (s *CustomerStore) Delete(id string) bool {
	s.activate()
	_, changed := s.state.replace(func(prev []models.Customer) ([]models.Customer, bool) {
		return removeByID(prev, id, customerID)
	})
	return changed
}

func (s *CustomerStore) Subscribe(fn Listener[[]models.Customer]) (unsubscribe func()) {
	s.activate()
	return s.state.subscribe(fn)
}
