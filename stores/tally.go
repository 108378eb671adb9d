package stores

import (
	"slices"

	"salonpro-desk/models"
)

// TallyStore is the payment ledger. It starts empty and never seeds.
type TallyStore struct {
	state *observable[[]models.TallyItem]
	newID IDGenerator
	now   Clock
}

func NewTallyStore(opts ...Option) *TallyStore {
	return newTallyStore(buildOptions(opts))
}

func newTallyStore(o options) *TallyStore {
	return &TallyStore{
		state: newObservable([]models.TallyItem{}),
		newID: o.newID,
		now:   o.now,
	}
}

func tallyID(t models.TallyItem) string { return t.ID }

func (s *TallyStore) List() []models.TallyItem {
	items, _ := s.state.snapshot()
	return cloneAll(items)
}

func (s *TallyStore) Version() uint64 {
	_, v := s.state.snapshot()
	return v
}

func (s *TallyStore) Get(id string) (models.TallyItem, bool) {
	items, _ := s.state.snapshot()
	return findClone(items, id, tallyID)
}

// Pending returns the entries still waiting for payment.
func (s *TallyStore) Pending() []models.TallyItem {
	items, _ := s.state.snapshot()
	out := []models.TallyItem{}
	for _, t := range items {
		if t.PaymentStatus == models.PaymentPending {
			out = append(out, t.Clone())
		}
	}
	return out
}

// Create records a new ledger entry stamped with the current time. The status
// defaults to pending when the caller leaves it empty.
func (s *TallyStore) Create(in models.NewTallyItem) (models.TallyItem, error) {
	if err := in.Validate(); err != nil {
		return models.TallyItem{}, err
	}

	item := models.TallyItem{
		ID:            s.newID(),
		Date:          in.Date,
		Time:          in.Time,
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		StaffName:     in.StaffName,
		Services:      slices.Clone(in.Services),
		TotalCost:     in.TotalCost,
		PaymentMethod: in.PaymentMethod,
		PaymentStatus: in.PaymentStatus,
		PaymentDate:   s.now(),
	}
	if item.PaymentStatus == "" {
		item.PaymentStatus = models.PaymentPending
	}
	if item.Services == nil {
		item.Services = []models.ServiceLine{}
	}

	s.state.replace(func(prev []models.TallyItem) ([]models.TallyItem, bool) {
		return appendItem(prev, item), true
	})
	return item.Clone(), nil
}

// UpdateStatus settles the entry with the given id. The UPI transaction id is
// only overwritten when a non-empty one is given. Settled entries may be moved
// to another settled status. A missing id is ignored.
func (s *TallyStore) UpdateStatus(id string, status models.PaymentStatus, upiTransactionID string) error {
	if !status.Settled() {
		return models.ErrInvalidSettlementStatus
	}
	s.state.replace(func(prev []models.TallyItem) ([]models.TallyItem, bool) {
		return mergeByID(prev, id, tallyID, func(t models.TallyItem) models.TallyItem {
			t.PaymentStatus = status
			if upiTransactionID != "" {
				t.UPITransactionID = upiTransactionID
			}
			return t
		})
	})
	return nil
}

func (s *TallyStore) Subscribe(fn Listener[[]models.TallyItem]) (unsubscribe func()) {
	return s.state.subscribe(fn)
}
