package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"amsi_crm/internal/domain/entities"
	"amsi_crm/internal/domain/filter"
	"amsi_crm/internal/domain/workflow"
	"amsi_crm/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrTicketNotFound      = errors.New("ticket not found")
	ErrInvalidTicketID     = errors.New("invalid ticket id")
	ErrInvalidTicketTitle  = errors.New("invalid ticket title")
	ErrInvalidTicketCust   = errors.New("invalid ticket customer id")
	ErrInvalidTicketStatus = errors.New("invalid ticket status")
	ErrTechnicianRequired  = errors.New("technician id required to assign a ticket")
)

// TicketTransitionMeta carries dispatch metadata on a ticket transition:
// the technician and scheduled visit captured when a ticket is assigned.
type TicketTransitionMeta struct {
	TechnicianID string
	ScheduledFor *time.Time
	Details      string
}

// ITicketUseCase exposes service-ticket operations.
type ITicketUseCase interface {
	Create(ctx context.Context, draft entities.Ticket, actor string) (entities.Ticket, error)
	GetByID(ctx context.Context, id string) (entities.Ticket, error)
	List(ctx context.Context, search string, status entities.TicketStatus) ([]entities.Ticket, error)
	UpdateStatus(ctx context.Context, id string, target entities.TicketStatus, actor string, meta TicketTransitionMeta) (entities.Ticket, error)
}

type TicketUseCase struct {
	repo     interfaces.ITicketRepository
	analyzer interfaces.ITicketAnalyzer
}

var _ ITicketUseCase = (*TicketUseCase)(nil)

func NewTicketUseCase(repo interfaces.ITicketRepository, analyzer interfaces.ITicketAnalyzer) *TicketUseCase {
	return &TicketUseCase{repo: repo, analyzer: analyzer}
}

// DefaultTicketAnalysis is the fixed fallback used when the AI analysis
// collaborator fails or is not configured.
func DefaultTicketAnalysis() entities.TicketAnalysis {
	return entities.TicketAnalysis{
		Priority:        entities.TicketPriorityMedium,
		Category:        "General Service",
		SuggestedAction: "Schedule a technician visit",
		EstimatedTime:   "2 hours",
	}
}

// Create registers a ticket, enriching it with the AI analysis result when
// available. Analysis is best-effort: any analyzer failure is absorbed with
// the default payload and never blocks or surfaces.
func (u *TicketUseCase) Create(ctx context.Context, draft entities.Ticket, actor string) (entities.Ticket, error) {
	draft.Title = strings.TrimSpace(draft.Title)
	draft.CustomerID = strings.TrimSpace(draft.CustomerID)
	if draft.Title == "" {
		return entities.Ticket{}, ErrInvalidTicketTitle
	}
	if draft.CustomerID == "" {
		return entities.Ticket{}, ErrInvalidTicketCust
	}

	analysis := DefaultTicketAnalysis()
	if u.analyzer != nil {
		if a, err := u.analyzer.Analyze(ctx, draft.Description, draft.SystemType); err != nil {
			log.Printf("[ticket][usecase] analysis failed, using default err=%v", err)
		} else {
			analysis = a
		}
	}

	now := time.Now().UTC()
	draft.ID = uuid.NewString()
	draft.Status = entities.TicketStatusOpen
	draft.Analysis = &analysis
	if draft.Priority == "" {
		draft.Priority = analysis.Priority
	}
	draft.History = []entities.HistoryEntry{{
		Date:    now,
		Action:  "Ticket Created",
		Actor:   actor,
		Details: "Category: " + analysis.Category,
	}}
	draft.CreatedAt = now
	draft.UpdatedAt = now

	created, err := u.repo.Create(ctx, draft)
	if err != nil {
		return entities.Ticket{}, err
	}
	log.Printf("[ticket][usecase] created ticket_id=%s customer_id=%s priority=%s", created.ID, created.CustomerID, created.Priority)
	return created, nil
}

func (u *TicketUseCase) GetByID(ctx context.Context, id string) (entities.Ticket, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Ticket{}, ErrInvalidTicketID
	}

	t, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Ticket{}, err
	}
	if t.ID == "" {
		return entities.Ticket{}, ErrTicketNotFound
	}
	return t, nil
}

func (u *TicketUseCase) List(ctx context.Context, search string, status entities.TicketStatus) ([]entities.Ticket, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]entities.Ticket, 0, len(all))
	for _, t := range all {
		if filter.TicketMatches(t, search, status) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (u *TicketUseCase) UpdateStatus(ctx context.Context, id string, target entities.TicketStatus, actor string, meta TicketTransitionMeta) (entities.Ticket, error) {
	if !workflow.IsKnownStatus(workflow.KindTicket, string(target)) {
		return entities.Ticket{}, ErrInvalidTicketStatus
	}

	t, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Ticket{}, err
	}

	details := meta.Details
	if target == entities.TicketStatusAssigned {
		if strings.TrimSpace(meta.TechnicianID) == "" {
			return entities.Ticket{}, ErrTechnicianRequired
		}
		t.AssignedTechnicianID = meta.TechnicianID
		t.ScheduledFor = meta.ScheduledFor
		if details == "" {
			details = "Assigned to technician " + meta.TechnicianID
		}
	}

	now := time.Now().UTC()
	action := fmt.Sprintf("Status changed to %s", target)
	if err := workflow.Apply(&t, string(target), action, actor, details, now); err != nil {
		log.Printf("[ticket][usecase] transition rejected ticket_id=%s from=%s to=%s err=%v", t.ID, t.Status, target, err)
		return entities.Ticket{}, err
	}
	t.UpdatedAt = now

	saved, err := u.repo.Save(ctx, t)
	if err != nil {
		return entities.Ticket{}, err
	}
	log.Printf("[ticket][usecase] transition ticket_id=%s to=%s actor=%s", saved.ID, saved.Status, actor)
	return saved, nil
}
