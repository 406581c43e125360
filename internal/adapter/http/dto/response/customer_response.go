package response

import (
	"time"

	"amsi_crm/internal/domain/entities"
)

type CustomerResponse struct {
	ID                 string                 `json:"id"`
	Name               string                 `json:"name"`
	Email              string                 `json:"email"`
	Phone              string                 `json:"phone,omitempty"`
	Address            string                 `json:"address,omitempty"`
	Systems            []entities.AlarmSystem `json:"systems,omitempty"`
	FreeServiceClaimed bool                   `json:"free_service_claimed"`
	CreatedAt          time.Time              `json:"created_at"`
	UpdatedAt          time.Time              `json:"updated_at"`
}

func FromCustomer(c entities.Customer) CustomerResponse {
	return CustomerResponse{
		ID:                 c.ID,
		Name:               c.Name,
		Email:              c.Email,
		Phone:              c.Phone,
		Address:            c.Address,
		Systems:            c.Systems,
		FreeServiceClaimed: c.FreeServiceClaimed,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}

func FromCustomers(in []entities.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(in))
	for _, c := range in {
		out = append(out, FromCustomer(c))
	}
	return out
}
