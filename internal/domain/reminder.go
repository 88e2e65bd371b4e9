package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReminderEvent is a time-based notification tied to a record.
type ReminderEvent struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	RecordID       uuid.UUID
	Type           ReminderType
	Priority       ReminderPriority
	Status         ReminderStatus
	Title          string
	Message        string
	ScheduledFor   time.Time
	SnoozedUntil   *time.Time
	ShownAt        *time.Time
	AcknowledgedAt *time.Time
	DismissedAt    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// MarkShown moves a PENDING event to SHOWN, or wakes a SNOOZED event whose
// snooze has expired. It reports whether the event changed.
func (e *ReminderEvent) MarkShown(now time.Time) bool {
	switch e.Status {
	case ReminderStatusPending:
	case ReminderStatusSnoozed:
		if e.SnoozedUntil != nil && e.SnoozedUntil.After(now) {
			return false
		}
		e.SnoozedUntil = nil
	default:
		return false
	}
	e.Status = ReminderStatusShown
	e.ShownAt = &now
	return true
}

// Acknowledge closes the event as acted upon.
func (e *ReminderEvent) Acknowledge(now time.Time) error {
	if !e.Status.IsOpen() {
		return NewValidationError("status", "reminder is already "+e.Status.String())
	}
	e.Status = ReminderStatusAcknowledged
	e.AcknowledgedAt = &now
	return nil
}

// Dismiss closes the event without action. Dismissed events do not block
// new reminders of the same type.
func (e *ReminderEvent) Dismiss(now time.Time) error {
	if !e.Status.IsOpen() {
		return NewValidationError("status", "reminder is already "+e.Status.String())
	}
	e.Status = ReminderStatusDismissed
	e.DismissedAt = &now
	return nil
}

// Snooze hides the event until the given time.
func (e *ReminderEvent) Snooze(until, now time.Time) error {
	if !e.Status.IsOpen() {
		return NewValidationError("status", "reminder is already "+e.Status.String())
	}
	if !until.After(now) {
		return NewValidationError("until", "must be in the future")
	}
	e.Status = ReminderStatusSnoozed
	e.SnoozedUntil = &until
	return nil
}

// ReminderFilter narrows reminder listings.
type ReminderFilter struct {
	UserID   uuid.UUID
	RecordID *uuid.UUID
	Statuses []ReminderStatus
	Limit    int
}
