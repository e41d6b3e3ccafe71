package events

import (
	"context"
	"time"

	"github.com/SscSPs/personal_ledger_app/internal/core/domain"
)

// EntryEventType names a committed change to a ledger entry.
type EntryEventType string

const (
	EntryCreated       EntryEventType = "ledger_entry.created"
	EntryUpdated       EntryEventType = "ledger_entry.updated"
	EntryDeleted       EntryEventType = "ledger_entry.deleted"
	EntryStatusChanged EntryEventType = "ledger_entry.status_changed"
)

// EntryEvent is emitted after a ledger entry mutation has been committed.
type EntryEvent struct {
	EventID    string             `json:"eventID"`
	Type       EntryEventType     `json:"type"`
	EntryID    int64              `json:"entryID"`
	OwnerID    int64              `json:"ownerID"`
	Status     domain.EntryStatus `json:"status,omitempty"`
	OccurredAt time.Time          `json:"occurredAt"`
}

// EntryEventPublisher delivers entry events to interested consumers.
type EntryEventPublisher interface {
	PublishEntryEvent(ctx context.Context, event EntryEvent) error
}
