package request

import "amsi_crm/internal/domain/entities"

type CreateLeadRequest struct {
	CustomerName string `json:"customer_name" binding:"required"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Source       string `json:"source"`
}

func (r CreateLeadRequest) ToEntity() entities.Lead {
	return entities.Lead{
		CustomerName: r.CustomerName,
		Email:        r.Email,
		Phone:        r.Phone,
		Address:      r.Address,
		Source:       r.Source,
	}
}

type LeadStatusRequest struct {
	Status     string `json:"status" binding:"required"`
	Actor      string `json:"actor"`
	EngineerID string `json:"engineer_id"`
	Details    string `json:"details"`
}

type LeadReviewRequest struct {
	Approve  *bool  `json:"approve" binding:"required"`
	Feedback string `json:"feedback"`
	Actor    string `json:"actor"`
}
