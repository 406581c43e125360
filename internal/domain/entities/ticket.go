package entities

import "time"

// TicketStatus represents the dispatch state of a service ticket.
//
// Open -> Assigned -> InProgress -> Resolved; Resolved may be reopened back
// to InProgress, so no ticket state is terminal.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusAssigned   TicketStatus = "assigned"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusResolved   TicketStatus = "resolved"
)

// TicketPriority orders the dispatch queue.
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityMedium TicketPriority = "medium"
	TicketPriorityHigh   TicketPriority = "high"
)

// TicketAnalysis is the best-effort enrichment returned by the AI analysis
// collaborator. When the collaborator fails, a fixed default is substituted;
// analysis never blocks ticket creation.
type TicketAnalysis struct {
	Priority        TicketPriority `json:"priority"`
	Category        string         `json:"category"`
	SuggestedAction string         `json:"suggested_action"`
	EstimatedTime   string         `json:"estimated_time"`
	RequiredParts   []string       `json:"required_parts,omitempty"`
}

// Ticket is a service/job request against a customer's installed system.
type Ticket struct {
	ID                   string          `json:"id"`
	CustomerID           string          `json:"customer_id"`
	SystemID             string          `json:"system_id,omitempty"`
	SystemType           string          `json:"system_type,omitempty"`
	Title                string          `json:"title"`
	Description          string          `json:"description,omitempty"`
	Priority             TicketPriority  `json:"priority"`
	Status               TicketStatus    `json:"status"`
	AssignedTechnicianID string          `json:"assigned_technician_id,omitempty"`
	ScheduledFor         *time.Time      `json:"scheduled_for,omitempty"`
	Analysis             *TicketAnalysis `json:"analysis,omitempty"`
	History              []HistoryEntry  `json:"history"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

func (t Ticket) GetID() string { return t.ID }

func (t Ticket) Clone() Ticket {
	out := t
	out.History = cloneHistory(t.History)
	if t.ScheduledFor != nil {
		d := *t.ScheduledFor
		out.ScheduledFor = &d
	}
	if t.Analysis != nil {
		a := *t.Analysis
		if t.Analysis.RequiredParts != nil {
			a.RequiredParts = make([]string, len(t.Analysis.RequiredParts))
			copy(a.RequiredParts, t.Analysis.RequiredParts)
		}
		out.Analysis = &a
	}
	return out
}

func (t *Ticket) WorkflowKind() string         { return "ticket" }
func (t *Ticket) CurrentStatus() string        { return string(t.Status) }
func (t *Ticket) SetStatus(s string)           { t.Status = TicketStatus(s) }
func (t *Ticket) AppendHistory(e HistoryEntry) { t.History = append(t.History, e) }
