package response

import (
	"time"

	"amsi_crm/internal/domain/entities"
)

type TicketResponse struct {
	ID                   string                   `json:"id"`
	CustomerID           string                   `json:"customer_id"`
	SystemID             string                   `json:"system_id,omitempty"`
	SystemType           string                   `json:"system_type,omitempty"`
	Title                string                   `json:"title"`
	Description          string                   `json:"description,omitempty"`
	Priority             string                   `json:"priority"`
	Status               string                   `json:"status"`
	AssignedTechnicianID string                   `json:"assigned_technician_id,omitempty"`
	ScheduledFor         *time.Time               `json:"scheduled_for,omitempty"`
	Analysis             *entities.TicketAnalysis `json:"analysis,omitempty"`
	History              []entities.HistoryEntry  `json:"history"`
	CreatedAt            time.Time                `json:"created_at"`
	UpdatedAt            time.Time                `json:"updated_at"`
}

func FromTicket(t entities.Ticket) TicketResponse {
	return TicketResponse{
		ID:                   t.ID,
		CustomerID:           t.CustomerID,
		SystemID:             t.SystemID,
		SystemType:           t.SystemType,
		Title:                t.Title,
		Description:          t.Description,
		Priority:             string(t.Priority),
		Status:               string(t.Status),
		AssignedTechnicianID: t.AssignedTechnicianID,
		ScheduledFor:         t.ScheduledFor,
		Analysis:             t.Analysis,
		History:              t.History,
		CreatedAt:            t.CreatedAt,
		UpdatedAt:            t.UpdatedAt,
	}
}

func FromTickets(in []entities.Ticket) []TicketResponse {
	out := make([]TicketResponse, 0, len(in))
	for _, t := range in {
		out = append(out, FromTicket(t))
	}
	return out
}
