package services

import (
	"sync"
	"testing"
	"time"

	"salonpro-desk/models"
	"salonpro-desk/stores"
)

var paidAt = time.Date(2024, time.April, 1, 12, 0, 0, 0, time.UTC)

func newTrackedRegistry(t *testing.T) (*stores.Registry, *VisitTracker) {
	t.Helper()
	reg := stores.NewRegistry(stores.WithClock(func() time.Time { return paidAt }))
	tracker := NewVisitTracker(reg)
	tracker.Start()
	t.Cleanup(tracker.Stop)
	return reg, tracker
}

func TestVisitTrackerCreditsCustomer(t *testing.T) {
	reg, _ := newTrackedRegistry(t)
	before, _ := reg.Customers.Get("cust-2")

	item, err := reg.Tally.Create(models.NewTallyItem{
		CustomerName:  before.Name,
		CustomerPhone: before.Phone,
		TotalCost:     450.25,
		PaymentMethod: models.PaymentCash,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got, _ := reg.Customers.Get("cust-2"); got.VisitCount != before.VisitCount {
		t.Fatal("expected pending payment not to count as a visit")
	}

	reg.Tally.UpdateStatus(item.ID, models.PaymentCompleted, "")
	after, _ := reg.Customers.Get("cust-2")
	if after.VisitCount != before.VisitCount+1 {
		t.Errorf("expected visit count %d, got %d", before.VisitCount+1, after.VisitCount)
	}
	if after.TotalSpent != before.TotalSpent+450.25 {
		t.Errorf("expected total spent %v, got %v", before.TotalSpent+450.25, after.TotalSpent)
	}
	if !after.LastVisit.Equal(paidAt) {
		t.Errorf("expected last visit %v, got %v", paidAt, after.LastVisit)
	}

	reg.Tally.UpdateStatus(item.ID, models.PaymentCompleted, "TXN")
	again, _ := reg.Customers.Get("cust-2")
	if again.VisitCount != after.VisitCount {
		t.Error("expected a repeated completion not to count twice")
	}
}

func TestVisitTrackerCreatedAsCompleted(t *testing.T) {
	reg, _ := newTrackedRegistry(t)
	before, _ := reg.Customers.Get("cust-1")

	reg.Tally.Create(models.NewTallyItem{
		CustomerPhone: before.Phone,
		TotalCost:     100,
		PaymentMethod: models.PaymentCard,
		PaymentStatus: models.PaymentCompleted,
	})

	after, _ := reg.Customers.Get("cust-1")
	if after.VisitCount != before.VisitCount+1 {
		t.Errorf("expected visit credited, got %d", after.VisitCount)
	}
}

func TestVisitTrackerUnknownPhone(t *testing.T) {
	reg, _ := newTrackedRegistry(t)
	before := reg.Customers.List()

	reg.Tally.Create(models.NewTallyItem{
		CustomerPhone: "+10000000000",
		TotalCost:     100,
		PaymentMethod: models.PaymentCash,
		PaymentStatus: models.PaymentCompleted,
	})

	after := reg.Customers.List()
	for i := range before {
		if after[i].VisitCount != before[i].VisitCount {
			t.Errorf("expected customer %s untouched", before[i].ID)
		}
	}
}

func TestVisitTrackerStop(t *testing.T) {
	reg, tracker := newTrackedRegistry(t)
	tracker.Stop()
	before, _ := reg.Customers.Get("cust-1")

	reg.Tally.Create(models.NewTallyItem{
		CustomerPhone: before.Phone,
		TotalCost:     100,
		PaymentMethod: models.PaymentCash,
		PaymentStatus: models.PaymentCompleted,
	})

	after, _ := reg.Customers.Get("cust-1")
	if after.VisitCount != before.VisitCount {
		t.Error("expected no credit after Stop")
	}
}

func TestVisitTrackerConcurrentCompletions(t *testing.T) {
	reg, _ := newTrackedRegistry(t)
	before, _ := reg.Customers.Get("cust-2")

	const payments = 20
	var wg sync.WaitGroup
	for i := 0; i < payments; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			item, err := reg.Tally.Create(models.NewTallyItem{
				CustomerPhone: before.Phone,
				TotalCost:     150.5,
				PaymentMethod: models.PaymentUPI,
			})
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			reg.Tally.UpdateStatus(item.ID, models.PaymentCompleted, "")
		}()
	}
	wg.Wait()

	after, _ := reg.Customers.Get("cust-2")
	if after.VisitCount != before.VisitCount+payments {
		t.Errorf("expected visit count %d, got %d", before.VisitCount+payments, after.VisitCount)
	}
	if want := before.TotalSpent + payments*150.5; after.TotalSpent != want {
		t.Errorf("expected total spent %v, got %v", want, after.TotalSpent)
	}
}
