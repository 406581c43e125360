package interfaces

import (
	"context"

	"amsi_crm/internal/domain/entities"
)

// ITicketAnalyzer abstracts the external text-classification collaborator
// that enriches new tickets.
//
// The use case treats it as best-effort: on error or timeout it substitutes
// a fixed default analysis and ticket creation proceeds regardless.
type ITicketAnalyzer interface {
	Analyze(ctx context.Context, description, systemType string) (entities.TicketAnalysis, error)
}
