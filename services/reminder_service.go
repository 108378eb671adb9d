// services/reminder_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"salonpro-desk/models"
	"salonpro-desk/stores"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	defaultQueueSize = 64
	historyLimit     = 100
)

type outgoing struct {
	kind models.ReminderKind
	msg  Message
}

// ReminderService sends payment reminders for pending tally entries on a cron
// schedule and a receipt whenever an entry completes. Receipts are queued and
// delivered by a single worker so store notifications never wait on the
// network.
type ReminderService struct {
	tally    *stores.TallyStore
	notifier Notifier

	queue chan outgoing
	wg    sync.WaitGroup

	historyMu sync.Mutex
	history   []models.ReminderLog

	mu          sync.RWMutex
	closed      bool
	cron        *cron.Cron
	unsubscribe func()
}

func NewReminderService(reg *stores.Registry, notifier Notifier) *ReminderService {
	s := &ReminderService{
		tally:    reg.Tally,
		notifier: notifier,
		queue:    make(chan outgoing, defaultQueueSize),
	}
	s.wg.Add(1)
	go s.worker()
	return s
}

func (s *ReminderService) worker() {
	defer s.wg.Done()
	for out := range s.queue {
		s.deliver(context.Background(), out.kind, out.msg)
	}
}

func (s *ReminderService) deliver(ctx context.Context, kind models.ReminderKind, msg Message) error {
	sid, err := s.notifier.Send(ctx, msg)
	s.record(kind, msg, sid, err)
	if err != nil {
		log.Error().Err(err).
			Str("to", msg.To).
			Str("channel", string(msg.Channel)).
			Msg("Failed to send message")
		return err
	}
	log.Info().
		Str("to", msg.To).
		Str("channel", string(msg.Channel)).
		Str("sid", sid).
		Msg("Message sent")
	return nil
}

func (s *ReminderService) record(kind models.ReminderKind, msg Message, sid string, err error) {
	entry := models.ReminderLog{
		ID:         uuid.NewString(),
		Kind:       kind,
		To:         msg.To,
		Channel:    string(msg.Channel),
		Message:    msg.Body,
		Status:     models.ReminderSent,
		MessageSID: sid,
		SentAt:     time.Now().UTC(),
	}
	if err != nil {
		entry.Status = models.ReminderFailed
		entry.ErrorMessage = err.Error()
	}

	s.historyMu.Lock()
	defer s.historyMu.Unlock()
	s.history = append(s.history, entry)
	if len(s.history) > historyLimit {
		s.history = slices.Clone(s.history[len(s.history)-historyLimit:])
	}
}

// History returns the latest delivery attempts, newest first.
func (s *ReminderService) History() []models.ReminderLog {
	s.historyMu.Lock()
	out := slices.Clone(s.history)
	s.historyMu.Unlock()
	slices.Reverse(out)
	return out
}

// StartScheduler runs SendPendingPaymentReminders on the given cron spec.
func (s *ReminderService) StartScheduler(spec string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cron != nil {
		return errors.New("reminder scheduler already started")
	}

	c := cron.New()
	if _, err := c.AddFunc(spec, func() {
		if _, err := s.SendPendingPaymentReminders(context.Background()); err != nil {
			log.Error().Err(err).Msg("Payment reminder run finished with errors")
		}
	}); err != nil {
		return fmt.Errorf("invalid reminder schedule %q: %w", spec, err)
	}
	c.Start()
	s.cron = c

	log.Info().Str("schedule", spec).Msg("Reminder scheduler started")
	return nil
}

// SendPendingPaymentReminders sends one reminder per phone number with
// pending entries and returns how many were delivered.
func (s *ReminderService) SendPendingPaymentReminders(ctx context.Context) (int, error) {
	log.Info().Msg("Starting payment reminder processing...")

	type debtor struct {
		name  string
		phone string
		items []models.TallyItem
	}
	var order []string
	byPhone := map[string]*debtor{}
	for _, item := range s.tally.Pending() {
		if item.CustomerPhone == "" {
			continue
		}
		d, ok := byPhone[item.CustomerPhone]
		if !ok {
			d = &debtor{name: item.CustomerName, phone: item.CustomerPhone}
			byPhone[item.CustomerPhone] = d
			order = append(order, item.CustomerPhone)
		}
		d.items = append(d.items, item)
	}

	sent := 0
	var errs []error
	for _, phone := range order {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		d := byPhone[phone]
		msg := Message{
			To:      d.phone,
			Body:    reminderBody(d.name, d.items),
			Channel: ChannelFor(d.phone),
		}
		if err := s.deliver(ctx, models.ReminderPayment, msg); err != nil {
			errs = append(errs, fmt.Errorf("reminder to %s: %w", d.phone, err))
			continue
		}
		sent++
	}

	log.Info().Int("sent", sent).Int("failed", len(errs)).Msg("Payment reminder processing completed")
	return sent, errors.Join(errs...)
}

// WatchReceipts queues a receipt for every tally entry that completes.
func (s *ReminderService) WatchReceipts() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.unsubscribe != nil || s.closed {
		return
	}
	s.unsubscribe = s.tally.Subscribe(func(c stores.Change[[]models.TallyItem]) {
		for _, item := range newlyCompleted(c) {
			if item.CustomerPhone == "" {
				continue
			}
			s.enqueue(models.ReminderReceipt, Message{
				To:      item.CustomerPhone,
				Body:    receiptBody(item),
				Channel: ChannelFor(item.CustomerPhone),
			})
		}
	})
}

func (s *ReminderService) enqueue(kind models.ReminderKind, msg Message) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return false
	}
	select {
	case s.queue <- outgoing{kind: kind, msg: msg}:
		return true
	default:
		log.Warn().Str("to", msg.To).Msg("Message queue full, dropping message")
		return false
	}
}

// Stop halts the scheduler, stops watching the tally and waits for queued
// messages to drain or ctx to end.
func (s *ReminderService) Stop(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
	var cronDone context.Context
	if s.cron != nil {
		cronDone = s.cron.Stop()
	}
	close(s.queue)
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		if cronDone != nil {
			<-cronDone.Done()
		}
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info().Msg("Reminder service stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func formatRupees(v decimal.Decimal) string {
	return "Rs." + v.StringFixed(2)
}

func reminderBody(name string, items []models.TallyItem) string {
	total := decimal.Zero
	var services []string
	for _, item := range items {
		total = total.Add(Amount(item.TotalCost))
		for _, line := range item.Services {
			services = append(services, line.Name)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s, you have a pending payment of %s at SalonPro", name, formatRupees(total))
	if len(services) > 0 {
		fmt.Fprintf(&b, " for %s", strings.Join(services, ", "))
	}
	b.WriteString(". Please settle it at your next visit or pay via UPI.")
	return b.String()
}

func receiptBody(item models.TallyItem) string {
	body := fmt.Sprintf("Thank you %s! We received %s by %s on %s.",
		item.CustomerName,
		formatRupees(Amount(item.TotalCost)),
		strings.ToUpper(string(item.PaymentMethod)),
		item.PaymentDate.Format(time.DateOnly),
	)
	if item.UPITransactionID != "" {
		body += " Ref: " + item.UPITransactionID
	}
	return body
}
