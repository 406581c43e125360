// Package workflow is the transition engine shared by every status-driven
// entity. The per-kind edge tables answer "what's legal" as data; use cases
// never hard-code their own status checks.
package workflow

import (
	"errors"
	"fmt"
	"time"

	"amsi_crm/internal/domain/entities"
)

var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrUnknownKind       = errors.New("unknown workflow kind")
)

// Entity kinds with a transition table. Product stock is not state-based and
// has no entry here.
const (
	KindLead         = "lead"
	KindQuote        = "quote"
	KindInvoice      = "invoice"
	KindTicket       = "ticket"
	KindSubscription = "subscription"
)

// edges maps kind -> current status -> allowed target statuses.
//
// Reversible toggles (invoice paid/unpaid, ticket resolve/reopen,
// subscription active/past-due) are modeled as two always-legal edges rather
// than a one-way machine.
var edges = map[string]map[string][]string{
	KindLead: {
		string(entities.LeadStatusNew):            {string(entities.LeadStatusContacted)},
		string(entities.LeadStatusContacted):      {string(entities.LeadStatusSiteSurvey)},
		string(entities.LeadStatusSiteSurvey):     {string(entities.LeadStatusEngineerReview)},
		string(entities.LeadStatusEngineerReview): {string(entities.LeadStatusQuoteSent), string(entities.LeadStatusSiteSurvey)},
		string(entities.LeadStatusQuoteSent):      {string(entities.LeadStatusClosedWon), string(entities.LeadStatusClosedLost)},
		string(entities.LeadStatusClosedWon):      {},
		string(entities.LeadStatusClosedLost):     {},
	},
	KindQuote: {
		string(entities.QuoteStatusDraft):    {string(entities.QuoteStatusSent)},
		string(entities.QuoteStatusSent):     {string(entities.QuoteStatusAccepted), string(entities.QuoteStatusRejected)},
		string(entities.QuoteStatusAccepted): {},
		string(entities.QuoteStatusRejected): {string(entities.QuoteStatusDraft)},
	},
	KindInvoice: {
		string(entities.InvoiceStatusDraft):   {string(entities.InvoiceStatusSent)},
		string(entities.InvoiceStatusSent):    {string(entities.InvoiceStatusPaid), string(entities.InvoiceStatusOverdue)},
		string(entities.InvoiceStatusOverdue): {string(entities.InvoiceStatusPaid)},
		string(entities.InvoiceStatusPaid):    {string(entities.InvoiceStatusSent), string(entities.InvoiceStatusOverdue)},
	},
	KindTicket: {
		string(entities.TicketStatusOpen):       {string(entities.TicketStatusAssigned)},
		string(entities.TicketStatusAssigned):   {string(entities.TicketStatusInProgress)},
		string(entities.TicketStatusInProgress): {string(entities.TicketStatusResolved)},
		string(entities.TicketStatusResolved):   {string(entities.TicketStatusInProgress)},
	},
	KindSubscription: {
		string(entities.SubscriptionStatusActive):    {string(entities.SubscriptionStatusPastDue), string(entities.SubscriptionStatusCancelled)},
		string(entities.SubscriptionStatusPastDue):   {string(entities.SubscriptionStatusActive), string(entities.SubscriptionStatusCancelled)},
		string(entities.SubscriptionStatusCancelled): {},
	},
}

// Subject is any entity the transition engine can drive. The entity structs
// satisfy it with pointer receivers.
type Subject interface {
	WorkflowKind() string
	CurrentStatus() string
	SetStatus(status string)
	AppendHistory(e entities.HistoryEntry)
}

// CanTransition reports whether (from -> to) is a defined edge for kind.
func CanTransition(kind, from, to string) bool {
	table, ok := edges[kind]
	if !ok {
		return false
	}
	for _, allowed := range table[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// AllowedTargets returns the legal next statuses for kind at status from.
func AllowedTargets(kind, from string) []string {
	table, ok := edges[kind]
	if !ok {
		return nil
	}
	out := make([]string, len(table[from]))
	copy(out, table[from])
	return out
}

// IsKnownStatus reports whether status appears in kind's table at all.
func IsKnownStatus(kind, status string) bool {
	table, ok := edges[kind]
	if !ok {
		return false
	}
	_, ok = table[status]
	return ok
}

// Apply validates and commits a status transition, appending exactly one
// history entry. The operation is all-or-nothing: on error the subject is
// left untouched.
func Apply(s Subject, target, action, actor, details string, now time.Time) error {
	kind := s.WorkflowKind()
	if _, ok := edges[kind]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	from := s.CurrentStatus()
	if !CanTransition(kind, from, target) {
		return fmt.Errorf("%w: %s cannot move from %q to %q", ErrInvalidTransition, kind, from, target)
	}
	s.AppendHistory(entities.HistoryEntry{
		Date:    now,
		Action:  action,
		Actor:   actor,
		Details: details,
	})
	s.SetStatus(target)
	return nil
}
