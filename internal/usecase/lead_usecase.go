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
	ErrLeadNotFound           = errors.New("lead not found")
	ErrInvalidLeadID          = errors.New("invalid lead id")
	ErrInvalidLeadName        = errors.New("invalid lead customer name")
	ErrInvalidLeadStatus      = errors.New("invalid lead status")
	ErrReviewFeedbackRequired = errors.New("review feedback is required")
)

// LeadTransitionMeta carries optional metadata on a pipeline transition.
type LeadTransitionMeta struct {
	AssignedEngineerID string
	Details            string
}

// ILeadUseCase exposes the sales-pipeline operations.
//
// Pipeline moves go through the workflow engine; the engineer-review outcome
// (approve/send-back) is the lead-specific side effect on top of it.
type ILeadUseCase interface {
	Create(ctx context.Context, draft entities.Lead) (entities.Lead, error)
	GetByID(ctx context.Context, id string) (entities.Lead, error)
	List(ctx context.Context, search string, status entities.LeadStatus) ([]entities.Lead, error)
	UpdateStatus(ctx context.Context, id string, target entities.LeadStatus, actor string, meta LeadTransitionMeta) (entities.Lead, error)
	Review(ctx context.Context, id string, approve bool, feedback, actor string) (entities.Lead, error)
}

type LeadUseCase struct {
	repo interfaces.ILeadRepository
}

var _ ILeadUseCase = (*LeadUseCase)(nil)

func NewLeadUseCase(repo interfaces.ILeadRepository) *LeadUseCase {
	return &LeadUseCase{repo: repo}
}

func (u *LeadUseCase) Create(ctx context.Context, draft entities.Lead) (entities.Lead, error) {
	draft.CustomerName = strings.TrimSpace(draft.CustomerName)
	if draft.CustomerName == "" {
		return entities.Lead{}, ErrInvalidLeadName
	}

	now := time.Now().UTC()
	draft.ID = uuid.NewString()
	draft.Status = entities.LeadStatusNew
	draft.History = []entities.HistoryEntry{{
		Date:   now,
		Action: "Lead Created",
		Actor:  "system",
	}}
	draft.CreatedAt = now
	draft.UpdatedAt = now

	created, err := u.repo.Create(ctx, draft)
	if err != nil {
		return entities.Lead{}, err
	}
	log.Printf("[lead][usecase] created lead_id=%s name=%q", created.ID, created.CustomerName)
	return created, nil
}

func (u *LeadUseCase) GetByID(ctx context.Context, id string) (entities.Lead, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Lead{}, ErrInvalidLeadID
	}

	l, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Lead{}, err
	}
	if l.ID == "" {
		return entities.Lead{}, ErrLeadNotFound
	}
	return l, nil
}

func (u *LeadUseCase) List(ctx context.Context, search string, status entities.LeadStatus) ([]entities.Lead, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]entities.Lead, 0, len(all))
	for _, l := range all {
		if filter.LeadMatches(l, search, status) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (u *LeadUseCase) UpdateStatus(ctx context.Context, id string, target entities.LeadStatus, actor string, meta LeadTransitionMeta) (entities.Lead, error) {
	if !workflow.IsKnownStatus(workflow.KindLead, string(target)) {
		return entities.Lead{}, ErrInvalidLeadStatus
	}

	l, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Lead{}, err
	}

	details := meta.Details
	if target == entities.LeadStatusEngineerReview && meta.AssignedEngineerID != "" {
		l.AssignedEngineerID = meta.AssignedEngineerID
		if details == "" {
			details = "Assigned to engineer " + meta.AssignedEngineerID
		}
	}

	now := time.Now().UTC()
	action := fmt.Sprintf("Status changed to %s", target)
	if err := workflow.Apply(&l, string(target), action, actor, details, now); err != nil {
		log.Printf("[lead][usecase] transition rejected lead_id=%s from=%s to=%s err=%v", l.ID, l.Status, target, err)
		return entities.Lead{}, err
	}
	l.UpdatedAt = now

	saved, err := u.repo.Save(ctx, l)
	if err != nil {
		return entities.Lead{}, err
	}
	log.Printf("[lead][usecase] transition lead_id=%s to=%s actor=%s", saved.ID, saved.Status, actor)
	return saved, nil
}

// Review records the engineer-review outcome: approval moves the lead to
// QuoteSent; rejection sends it back to SiteSurvey and requires feedback,
// which is preserved verbatim in the history details.
func (u *LeadUseCase) Review(ctx context.Context, id string, approve bool, feedback, actor string) (entities.Lead, error) {
	l, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Lead{}, err
	}

	now := time.Now().UTC()
	if approve {
		if err := workflow.Apply(&l, string(entities.LeadStatusQuoteSent), "Quote Approved", actor, feedback, now); err != nil {
			return entities.Lead{}, err
		}
	} else {
		feedback = strings.TrimSpace(feedback)
		if feedback == "" {
			return entities.Lead{}, ErrReviewFeedbackRequired
		}
		details := "Sent back for revision: " + feedback
		if err := workflow.Apply(&l, string(entities.LeadStatusSiteSurvey), "Quote Rejected", actor, details, now); err != nil {
			return entities.Lead{}, err
		}
	}
	l.UpdatedAt = now

	saved, err := u.repo.Save(ctx, l)
	if err != nil {
		return entities.Lead{}, err
	}
	log.Printf("[lead][usecase] review lead_id=%s approve=%t actor=%s status=%s", saved.ID, approve, actor, saved.Status)
	return saved, nil
}
