package stores

import (
	"sync"

	"salonpro-desk/data"
	"salonpro-desk/models"

	"github.com/rs/zerolog/log"
)

// StaffStore loads the sample employees once, filling the optional fields of
// each record with the staff defaults.
type StaffStore struct {
	state    *observable[[]models.Employee]
	seed     func() []data.EmployeeRecord
	seedOnce sync.Once
	newID    IDGenerator
}

func NewStaffStore(opts ...Option) *StaffStore {
	return newStaffStore(buildOptions(opts))
}

func newStaffStore(o options) *StaffStore {
	s := &StaffStore{
		state: newObservable([]models.Employee{}),
		seed:  o.staffSeed,
		newID: o.newID,
	}
	s.state.subscribe(logHeadcount)
	return s
}

func employeeID(e models.Employee) string { return e.ID }

func countAvailable(items []models.Employee) int {
	n := 0
	for _, e := range items {
		if e.Available {
			n++
		}
	}
	return n
}

func logHeadcount(c Change[[]models.Employee]) {
	before, after := countAvailable(c.Prev), countAvailable(c.Next)
	if before == after && len(c.Prev) == len(c.Next) {
		return
	}
	log.Debug().
		Int("staff", len(c.Next)).
		Int("available", after).
		Msg("Staff availability changed")
}

func (s *StaffStore) activate() {
	s.seedOnce.Do(func() {
		s.state.replace(func(prev []models.Employee) ([]models.Employee, bool) {
			if len(prev) > 0 {
				return prev, false
			}
			records := s.seed()
			if len(records) == 0 {
				return prev, false
			}
			seeded := make([]models.Employee, 0, len(records))
			for _, r := range records {
				seeded = append(seeded, r.Employee.WithDefaults(r.ID))
			}
			return seeded, true
		})
	})
}

func (s *StaffStore) List() []models.Employee {
	s.activate()
	items, _ := s.state.snapshot()
	return cloneAll(items)
}

func (s *StaffStore) Version() uint64 {
	s.activate()
	_, v := s.state.snapshot()
	return v
}

func (s *StaffStore) Get(id string) (models.Employee, bool) {
	s.activate()
	items, _ := s.state.snapshot()
	return findClone(items, id, employeeID)
}

// AvailableCount counts available employees in the current snapshot.
func (s *StaffStore) AvailableCount() int {
	s.activate()
	items, _ := s.state.snapshot()
	return countAvailable(items)
}

func (s *StaffStore) Create(in models.NewEmployee) models.Employee {
	s.activate()
	e := in.WithDefaults(s.newID())
	s.state.replace(func(prev []models.Employee) ([]models.Employee, bool) {
		return appendItem(prev, e), true
	})
	return e.Clone()
}

func (s *StaffStore) Update(id string, patch models.EmployeePatch) (models.Employee, bool) {
	s.activate()
	next, changed := s.state.replace(func(prev []models.Employee) ([]models.Employee, bool) {
		return mergeByID(prev, id, employeeID, patch.Apply)
	})
	if !changed {
		return models.Employee{}, false
	}
	return findClone(next, id, employeeID)
}

func (s *StaffStore) Remove(id string) bool {
	s.activate()
	_, changed := s.state.replace(func(prev []models.Employee) ([]models.Employee, bool) {
		return removeByID(prev, id, employeeID)
	})
	return changed
}

func (s *StaffStore) Subscribe(fn Listener[[]models.Employee]) (unsubscribe func()) {
	s.activate()
	return s.state.subscribe(fn)
}
