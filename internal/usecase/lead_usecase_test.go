package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"amsi_crm/internal/adapter/persistence/repository"
	"amsi_crm/internal/domain/entities"
	"amsi_crm/internal/domain/workflow"
)

func newLeadUseCase() *LeadUseCase {
	return NewLeadUseCase(repository.NewLeadRepository(nil))
}

func TestLeadUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("missing name", func(t *testing.T) {
		uc := newLeadUseCase()
		_, err := uc.Create(ctx, entities.Lead{CustomerName: "  "})
		if !errors.Is(err, ErrInvalidLeadName) {
			t.Fatalf("expected ErrInvalidLeadName, got %v", err)
		}
	})

	t.Run("starts in new with creation history", func(t *testing.T) {
		uc := newLeadUseCase()
		created, err := uc.Create(ctx, entities.Lead{CustomerName: "Metro Diner", Source: "referral"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Status != entities.LeadStatusNew {
			t.Fatalf("expected new, got %s", created.Status)
		}
		if len(created.History) != 1 || created.History[0].Action != "Lead Created" {
			t.Fatalf("unexpected history: %+v", created.History)
		}
	})
}

func TestLeadUseCase_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown status", func(t *testing.T) {
		uc := newLeadUseCase()
		_, err := uc.UpdateStatus(ctx, "l-1", "archived", "alice", LeadTransitionMeta{})
		if !errors.Is(err, ErrInvalidLeadStatus) {
			t.Fatalf("expected ErrInvalidLeadStatus, got %v", err)
		}
	})

	t.Run("skipping a stage is rejected", func(t *testing.T) {
		uc := newLeadUseCase()
		created, _ := uc.Create(ctx, entities.Lead{CustomerName: "Metro Diner"})
		_, err := uc.UpdateStatus(ctx, created.ID, entities.LeadStatusQuoteSent, "alice", LeadTransitionMeta{})
		if !errors.Is(err, workflow.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}

		unchanged, _ := uc.GetByID(ctx, created.ID)
		if unchanged.Status != entities.LeadStatusNew || len(unchanged.History) != 1 {
			t.Fatalf("rejected transition mutated the lead: %+v", unchanged)
		}
	})

	t.Run("assigning an engineer on review entry", func(t *testing.T) {
		uc := newLeadUseCase()
		created, _ := uc.Create(ctx, entities.Lead{CustomerName: "Metro Diner"})
		advance(t, uc, created.ID, entities.LeadStatusContacted, entities.LeadStatusSiteSurvey)

		lead, err := uc.UpdateStatus(ctx, created.ID, entities.LeadStatusEngineerReview, "alice", LeadTransitionMeta{AssignedEngineerID: "eng-7"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lead.AssignedEngineerID != "eng-7" {
			t.Fatalf("engineer id not recorded: %+v", lead)
		}
		last := lead.History[len(lead.History)-1]
		if last.Details != "Assigned to engineer eng-7" {
			t.Fatalf("unexpected details: %q", last.Details)
		}
	})
}

func TestLeadUseCase_Review(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*LeadUseCase, string) {
		t.Helper()
		uc := newLeadUseCase()
		created, err := uc.Create(ctx, entities.Lead{CustomerName: "Metro Diner"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		advance(t, uc, created.ID, entities.LeadStatusContacted, entities.LeadStatusSiteSurvey, entities.LeadStatusEngineerReview)
		return uc, created.ID
	}

	t.Run("rejection requires feedback", func(t *testing.T) {
		uc, id := setup(t)
		_, err := uc.Review(ctx, id, false, "   ", "eng-7")
		if !errors.Is(err, ErrReviewFeedbackRequired) {
			t.Fatalf("expected ErrReviewFeedbackRequired, got %v", err)
		}
	})

	t.Run("rejection sends the lead back with feedback preserved", func(t *testing.T) {
		uc, id := setup(t)
		lead, err := uc.Review(ctx, id, false, "cable run too long", "eng-7")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lead.Status != entities.LeadStatusSiteSurvey {
			t.Fatalf("expected site_survey, got %s", lead.Status)
		}
		last := lead.History[len(lead.History)-1]
		if last.Action != "Quote Rejected" {
			t.Fatalf("unexpected action: %q", last.Action)
		}
		if !strings.Contains(last.Details, "cable run too long") {
			t.Fatalf("feedback lost: %q", last.Details)
		}
	})

	t.Run("rejected lead can be reworked and approved", func(t *testing.T) {
		uc, id := setup(t)
		if _, err := uc.Review(ctx, id, false, "cable run too long", "eng-7"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		advance(t, uc, id, entities.LeadStatusEngineerReview)

		lead, err := uc.Review(ctx, id, true, "", "eng-7")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lead.Status != entities.LeadStatusQuoteSent {
			t.Fatalf("expected quote_sent, got %s", lead.Status)
		}
		last := lead.History[len(lead.History)-1]
		if last.Action != "Quote Approved" {
			t.Fatalf("unexpected action: %q", last.Action)
		}
	})

	t.Run("approved lead can close won", func(t *testing.T) {
		uc, id := setup(t)
		if _, err := uc.Review(ctx, id, true, "", "eng-7"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		lead, err := uc.UpdateStatus(ctx, id, entities.LeadStatusClosedWon, "alice", LeadTransitionMeta{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lead.Status != entities.LeadStatusClosedWon {
			t.Fatalf("expected closed_won, got %s", lead.Status)
		}

		_, err = uc.UpdateStatus(ctx, id, entities.LeadStatusContacted, "alice", LeadTransitionMeta{})
		if !errors.Is(err, workflow.ErrInvalidTransition) {
			t.Fatalf("closed_won must be terminal, got %v", err)
		}
	})
}

func TestLeadUseCase_List(t *testing.T) {
	ctx := context.Background()
	uc := newLeadUseCase()

	a, _ := uc.Create(ctx, entities.Lead{CustomerName: "Metro Diner"})
	if _, err := uc.Create(ctx, entities.Lead{CustomerName: "Harbor Hotel"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	advance(t, uc, a.ID, entities.LeadStatusContacted)

	byStatus, err := uc.List(ctx, "", entities.LeadStatusContacted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(byStatus) != 1 || byStatus[0].ID != a.ID {
		t.Fatalf("unexpected status filter result: %+v", byStatus)
	}

	bySearch, err := uc.List(ctx, "harbor", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bySearch) != 1 || bySearch[0].CustomerName != "Harbor Hotel" {
		t.Fatalf("unexpected search result: %+v", bySearch)
	}
}

func advance(t *testing.T, uc *LeadUseCase, id string, statuses ...entities.LeadStatus) {
	t.Helper()
	for _, s := range statuses {
		if _, err := uc.UpdateStatus(context.Background(), id, s, "system", LeadTransitionMeta{}); err != nil {
			t.Fatalf("advance to %s: %v", s, err)
		}
	}
}
