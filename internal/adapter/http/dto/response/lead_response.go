package response

import (
	"time"

	"amsi_crm/internal/domain/entities"
)

type LeadResponse struct {
	ID                 string                  `json:"id"`
	CustomerName       string                  `json:"customer_name"`
	Email              string                  `json:"email,omitempty"`
	Phone              string                  `json:"phone,omitempty"`
	Address            string                  `json:"address,omitempty"`
	Source             string                  `json:"source,omitempty"`
	AssignedEngineerID string                  `json:"assigned_engineer_id,omitempty"`
	Status             string                  `json:"status"`
	History            []entities.HistoryEntry `json:"history"`
	CreatedAt          time.Time               `json:"created_at"`
	UpdatedAt          time.Time               `json:"updated_at"`
}

func FromLead(l entities.Lead) LeadResponse {
	return LeadResponse{
		ID:                 l.ID,
		CustomerName:       l.CustomerName,
		Email:              l.Email,
		Phone:              l.Phone,
		Address:            l.Address,
		Source:             l.Source,
		AssignedEngineerID: l.AssignedEngineerID,
		Status:             string(l.Status),
		History:            l.History,
		CreatedAt:          l.CreatedAt,
		UpdatedAt:          l.UpdatedAt,
	}
}

func FromLeads(in []entities.Lead) []LeadResponse {
	out := make([]LeadResponse, 0, len(in))
	for _, l := range in {
		out = append(out, FromLead(l))
	}
	return out
}
