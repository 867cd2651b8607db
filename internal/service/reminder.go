package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rentdesk/rentdesk/internal/api/dto"
	"github.com/rentdesk/rentdesk/internal/types"
)

// ReminderService runs the scheduled sweeps: nudging tenants whose rent is
// due soon or overdue, and flipping sent invoices past their due date to
// overdue. Both sweeps are account scoped and safe to run concurrently with
// reconciliation; the overdue transition is guarded so a paid invoice can
// never regress.
type ReminderService interface {
	SendRentReminders(ctx context.Context) (*dto.SweepResponse, error)
	MarkOverdueInvoices(ctx context.Context) (*dto.SweepResponse, error)
}

type reminderService struct {
	ServiceParams
	notifier NotificationService
}

// NewReminderService creates a new reminder service
func NewReminderService(params ServiceParams, notifier NotificationService) ReminderService {
	return &reminderService{
		ServiceParams: params,
		notifier:      notifier,
	}
}

func (s *reminderService) SendRentReminders(ctx context.Context) (*dto.SweepResponse, error) {
	now := time.Now().UTC()
	horizon := now.AddDate(0, 0, s.Config.Reminders.DueSoonDays)

	sent := 0

	// Invoices due within the horizon get a due-soon nudge.
	dueSoon, err := s.InvoiceRepo.List(ctx, &types.InvoiceFilter{
		QueryFilter:   types.NewNoLimitQueryFilter(),
		InvoiceStatus: []types.InvoiceStatus{types.InvoiceStatusSent},
		DueAfter:      &now,
		DueBefore:     &horizon,
	})
	if err != nil {
		return nil, err
	}
	for _, inv := range dueSoon {
		s.notifier.SendRentReminder(ctx, inv, types.SmsTypeReminderDueSoon)
		sent++
	}

	// Already-overdue invoices get the firmer template.
	overdue, err := s.InvoiceRepo.List(ctx, &types.InvoiceFilter{
		QueryFilter:   types.NewNoLimitQueryFilter(),
		InvoiceStatus: []types.InvoiceStatus{types.InvoiceStatusOverdue},
	})
	if err != nil {
		return nil, err
	}
	for _, inv := range overdue {
		s.notifier.SendRentReminder(ctx, inv, types.SmsTypeReminderOverdue)
		sent++
	}

	s.Logger.Infow("rent reminder sweep complete",
		"account_id", types.GetAccountID(ctx),
		"due_soon", len(dueSoon),
		"overdue", len(overdue),
	)

	return &dto.SweepResponse{
		Success: true,
		Message: fmt.Sprintf("Sent %d rent reminders", sent),
		Count:   sent,
	}, nil
}

func (s *reminderService) MarkOverdueInvoices(ctx context.Context) (*dto.SweepResponse, error) {
	n, err := s.InvoiceRepo.MarkOverdue(ctx, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("overdue sweep complete",
		"account_id", types.GetAccountID(ctx),
		"updated", n,
	)

	return &dto.SweepResponse{
		Success: true,
		Message: fmt.Sprintf("Marked %d invoices overdue", n),
		Count:   n,
	}, nil
}
