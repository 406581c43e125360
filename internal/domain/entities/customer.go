package entities

import "time"

// AlarmSystem is a security system installed at a customer site. Tickets
// reference systems by id; the first registered system is the target of the
// free-service benefit.
type AlarmSystem struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"` // e.g. "Burglar Alarm", "CCTV", "Access Control"
	InstalledAt time.Time `json:"installed_at"`
}

// Customer is an account holder of the alarm service company.
//
// FreeServiceClaimed is the explicit one-shot guard for the free-service
// benefit: a customer may claim it at most once, and the flag (not a scan of
// existing tickets) is the source of truth for that invariant.
type Customer struct {
	ID                 string        `json:"id"`
	Name               string        `json:"name"`
	Email              string        `json:"email"`
	Phone              string        `json:"phone,omitempty"`
	Address            string        `json:"address,omitempty"`
	Systems            []AlarmSystem `json:"systems,omitempty"`
	FreeServiceClaimed bool          `json:"free_service_claimed"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}

func (c Customer) GetID() string { return c.ID }

func (c Customer) Clone() Customer {
	out := c
	if c.Systems != nil {
		out.Systems = make([]AlarmSystem, len(c.Systems))
		copy(out.Systems, c.Systems)
	}
	return out
}
