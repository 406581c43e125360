package request

import (
	"time"

	"amsi_crm/internal/domain/entities"
)

type CreateTicketRequest struct {
	CustomerID  string `json:"customer_id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	SystemID    string `json:"system_id"`
	SystemType  string `json:"system_type"`
	Priority    string `json:"priority"`
	Actor       string `json:"actor"`
}

func (r CreateTicketRequest) ToEntity() entities.Ticket {
	return entities.Ticket{
		CustomerID:  r.CustomerID,
		Title:       r.Title,
		Description: r.Description,
		SystemID:    r.SystemID,
		SystemType:  r.SystemType,
		Priority:    entities.TicketPriority(r.Priority),
	}
}

type TicketStatusRequest struct {
	Status       string     `json:"status" binding:"required"`
	Actor        string     `json:"actor"`
	TechnicianID string     `json:"technician_id"`
	ScheduledFor *time.Time `json:"scheduled_for"`
	Details      string     `json:"details"`
}
