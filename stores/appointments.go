package stores

import (
	"slices"

	"salonpro-desk/models"
)

// AppointmentsSnapshot is the full state of the appointment store: the booked
// appointments plus the customer currently selected in the booking flow.
type AppointmentsSnapshot struct {
	Appointments       []models.Appointment
	SelectedCustomerID *string
}

// AppointmentStore starts empty and never seeds.
type AppointmentStore struct {
	state *observable[AppointmentsSnapshot]
}

func NewAppointmentStore() *AppointmentStore {
	return &AppointmentStore{
		state: newObservable(AppointmentsSnapshot{Appointments: []models.Appointment{}}),
	}
}

func appointmentID(a models.Appointment) string { return a.ID }

// Snapshot returns a deep copy of the current state.
func (s *AppointmentStore) Snapshot() AppointmentsSnapshot {
	snap, _ := s.state.snapshot()
	return AppointmentsSnapshot{
		Appointments:       cloneAll(snap.Appointments),
		SelectedCustomerID: copyID(snap.SelectedCustomerID),
	}
}

func copyID(id *string) *string {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

func (s *AppointmentStore) appointments() []models.Appointment {
	snap, _ := s.state.snapshot()
	return snap.Appointments
}

func (s *AppointmentStore) Version() uint64 {
	_, v := s.state.snapshot()
	return v
}

// List returns the appointments in insertion order.
func (s *AppointmentStore) List() []models.Appointment {
	return cloneAll(s.appointments())
}

func (s *AppointmentStore) Get(id string) (models.Appointment, bool) {
	return findClone(s.appointments(), id, appointmentID)
}

func (s *AppointmentStore) ForCustomer(customerID string) []models.Appointment {
	out := []models.Appointment{}
	for _, a := range s.appointments() {
		if a.CustomerID == customerID {
			out = append(out, a.Clone())
		}
	}
	return out
}

// Add appends a as given. Ids are not checked for uniqueness.
func (s *AppointmentStore) Add(a models.Appointment) {
	a.Services = slices.Clone(a.Services)
	s.state.replace(func(prev AppointmentsSnapshot) (AppointmentsSnapshot, bool) {
		prev.Appointments = appendItem(prev.Appointments, a)
		return prev, true
	})
}

// Update merges patch into every appointment with the given id. A missing id
// leaves the store untouched and reports false.
func (s *AppointmentStore) Update(id string, patch models.AppointmentPatch) bool {
	_, changed := s.state.replace(func(prev AppointmentsSnapshot) (AppointmentsSnapshot, bool) {
		next, ok := mergeByID(prev.Appointments, id, appointmentID, patch.Apply)
		if !ok {
			return prev, false
		}
		prev.Appointments = next
		return prev, true
	})
	return changed
}

func (s *AppointmentStore) SelectedCustomerID() *string {
	snap, _ := s.state.snapshot()
	return copyID(snap.SelectedCustomerID)
}

// SetSelectedCustomerID stores id as the current selection; nil clears it.
// The id is not checked against the customer store.
func (s *AppointmentStore) SetSelectedCustomerID(id *string) {
	selected := copyID(id)
	s.state.replace(func(prev AppointmentsSnapshot) (AppointmentsSnapshot, bool) {
		prev.SelectedCustomerID = selected
		return prev, true
	})
}

func (s *AppointmentStore) Subscribe(fn Listener[AppointmentsSnapshot]) (unsubscribe func()) {
	return s.state.subscribe(fn)
}
