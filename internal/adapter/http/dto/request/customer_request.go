package request

import (
	"time"

	"amsi_crm/internal/domain/entities"
)

type SystemRequest struct {
	Type        string    `json:"type" binding:"required"`
	InstalledAt time.Time `json:"installed_at"`
}

type CreateCustomerRequest struct {
	Name    string          `json:"name" binding:"required"`
	Email   string          `json:"email" binding:"required"`
	Phone   string          `json:"phone"`
	Address string          `json:"address"`
	Systems []SystemRequest `json:"systems"`
}

func (r CreateCustomerRequest) ToEntity() entities.Customer {
	c := entities.Customer{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Address: r.Address,
	}
	for _, s := range r.Systems {
		c.Systems = append(c.Systems, entities.AlarmSystem{
			Type:        s.Type,
			InstalledAt: s.InstalledAt,
		})
	}
	return c
}

type UpdateCustomerRequest struct {
	Name    string          `json:"name" binding:"required"`
	Email   string          `json:"email" binding:"required"`
	Phone   string          `json:"phone"`
	Address string          `json:"address"`
	Systems []SystemRequest `json:"systems"`
}

func (r UpdateCustomerRequest) ToEntity() entities.Customer {
	return CreateCustomerRequest(r).ToEntity()
}

type ClaimFreeServiceRequest struct {
	Actor string `json:"actor"`
}
