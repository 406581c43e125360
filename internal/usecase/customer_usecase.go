package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"amsi_crm/internal/domain/entities"
	"amsi_crm/internal/domain/filter"
	"amsi_crm/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrCustomerNotFound          = errors.New("customer not found")
	ErrInvalidCustomerID         = errors.New("invalid customer id")
	ErrInvalidCustomerName       = errors.New("invalid customer name")
	ErrInvalidCustomerEmail      = errors.New("invalid customer email")
	ErrFreeServiceAlreadyClaimed = errors.New("free service already claimed")
	ErrNoRegisteredSystem        = errors.New("customer has no registered system")
)

// ICustomerUseCase exposes customer account operations, including the
// one-shot free-service benefit that spawns a high-priority ticket.
type ICustomerUseCase interface {
	Create(ctx context.Context, draft entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	List(ctx context.Context, search string) ([]entities.Customer, error)
	Update(ctx context.Context, id string, draft entities.Customer) (entities.Customer, error)
	ClaimFreeService(ctx context.Context, customerID, actor string) (entities.Ticket, error)
}

type CustomerUseCase struct {
	repo       interfaces.ICustomerRepository
	ticketRepo interfaces.ITicketRepository
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(repo interfaces.ICustomerRepository, ticketRepo interfaces.ITicketRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, ticketRepo: ticketRepo}
}

func (u *CustomerUseCase) Create(ctx context.Context, draft entities.Customer) (entities.Customer, error) {
	draft.Name = strings.TrimSpace(draft.Name)
	draft.Email = strings.TrimSpace(draft.Email)
	if draft.Name == "" {
		return entities.Customer{}, ErrInvalidCustomerName
	}
	if draft.Email == "" || !strings.Contains(draft.Email, "@") {
		return entities.Customer{}, ErrInvalidCustomerEmail
	}

	now := time.Now().UTC()
	draft.ID = uuid.NewString()
	draft.FreeServiceClaimed = false
	draft.CreatedAt = now
	draft.UpdatedAt = now
	for i := range draft.Systems {
		if draft.Systems[i].ID == "" {
			draft.Systems[i].ID = uuid.NewString()
		}
	}

	created, err := u.repo.Create(ctx, draft)
	if err != nil {
		return entities.Customer{}, err
	}
	log.Printf("[customer][usecase] created customer_id=%s name=%q systems=%d", created.ID, created.Name, len(created.Systems))
	return created, nil
}

func (u *CustomerUseCase) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

func (u *CustomerUseCase) List(ctx context.Context, search string) ([]entities.Customer, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]entities.Customer, 0, len(all))
	for _, c := range all {
		if filter.CustomerMatches(c, search) {
			out = append(out, c)
		}
	}
	return out, nil
}

// Update replaces the customer's contact details and registered systems.
// Benefit state and timestamps are owned by the server and never taken
// from the payload.
func (u *CustomerUseCase) Update(ctx context.Context, id string, draft entities.Customer) (entities.Customer, error) {
	draft.Name = strings.TrimSpace(draft.Name)
	draft.Email = strings.TrimSpace(draft.Email)
	if draft.Name == "" {
		return entities.Customer{}, ErrInvalidCustomerName
	}
	if draft.Email == "" || !strings.Contains(draft.Email, "@") {
		return entities.Customer{}, ErrInvalidCustomerEmail
	}

	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}

	current.Name = draft.Name
	current.Email = draft.Email
	current.Phone = draft.Phone
	current.Address = draft.Address
	current.Systems = draft.Systems
	for i := range current.Systems {
		if current.Systems[i].ID == "" {
			current.Systems[i].ID = uuid.NewString()
		}
	}
	current.UpdatedAt = time.Now().UTC()

	saved, err := u.repo.Save(ctx, current)
	if err != nil {
		return entities.Customer{}, err
	}
	log.Printf("[customer][usecase] updated customer_id=%s name=%q systems=%d", saved.ID, saved.Name, len(saved.Systems))
	return saved, nil
}

// ClaimFreeService spawns the complimentary high-priority ticket against the
// customer's first registered system.
//
// Invariant: a customer may claim the benefit at most once. The explicit
// FreeServiceClaimed flag guards this; existing tickets are never scanned.
func (u *CustomerUseCase) ClaimFreeService(ctx context.Context, customerID, actor string) (entities.Ticket, error) {
	c, err := u.GetByID(ctx, customerID)
	if err != nil {
		return entities.Ticket{}, err
	}
	if c.FreeServiceClaimed {
		log.Printf("[customer][usecase] free-service already claimed customer_id=%s", c.ID)
		return entities.Ticket{}, ErrFreeServiceAlreadyClaimed
	}
	if len(c.Systems) == 0 {
		return entities.Ticket{}, ErrNoRegisteredSystem
	}

	system := c.Systems[0]
	now := time.Now().UTC()
	t := entities.Ticket{
		ID:          uuid.NewString(),
		CustomerID:  c.ID,
		SystemID:    system.ID,
		SystemType:  system.Type,
		Title:       "Complimentary Service Visit",
		Description: "Free annual service benefit claimed by customer",
		Priority:    entities.TicketPriorityHigh,
		Status:      entities.TicketStatusOpen,
		History: []entities.HistoryEntry{{
			Date:    now,
			Action:  "Ticket Created",
			Actor:   actor,
			Details: "Free service claim for system " + system.Type,
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := u.ticketRepo.Create(ctx, t)
	if err != nil {
		return entities.Ticket{}, err
	}

	c.FreeServiceClaimed = true
	c.UpdatedAt = now
	if _, err := u.repo.Save(ctx, c); err != nil {
		return entities.Ticket{}, err
	}
	log.Printf("[customer][usecase] free-service claimed customer_id=%s ticket_id=%s", c.ID, created.ID)
	return created, nil
}
