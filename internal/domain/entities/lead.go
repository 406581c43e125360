package entities

import "time"

// LeadStatus represents the sales-pipeline stage of a lead.
//
// Pipeline: New -> Contacted -> SiteSurvey -> EngineerReview -> QuoteSent
// -> ClosedWon / ClosedLost. Engineer review may send a lead back to
// SiteSurvey for revision. ClosedWon and ClosedLost are terminal.
type LeadStatus string

const (
	LeadStatusNew            LeadStatus = "new"
	LeadStatusContacted      LeadStatus = "contacted"
	LeadStatusSiteSurvey     LeadStatus = "site_survey"
	LeadStatusEngineerReview LeadStatus = "engineer_review"
	LeadStatusQuoteSent      LeadStatus = "quote_sent"
	LeadStatusClosedWon      LeadStatus = "closed_won"
	LeadStatusClosedLost     LeadStatus = "closed_lost"
)

// Lead is a prospective customer moving through the sales pipeline.
type Lead struct {
	ID                 string         `json:"id"`
	CustomerName       string         `json:"customer_name"`
	Email              string         `json:"email,omitempty"`
	Phone              string         `json:"phone,omitempty"`
	Address            string         `json:"address,omitempty"`
	Source             string         `json:"source,omitempty"`
	AssignedEngineerID string         `json:"assigned_engineer_id,omitempty"`
	Status             LeadStatus     `json:"status"`
	History            []HistoryEntry `json:"history"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

func (l Lead) GetID() string { return l.ID }

func (l Lead) Clone() Lead {
	out := l
	out.History = cloneHistory(l.History)
	return out
}

func (l *Lead) WorkflowKind() string            { return "lead" }
func (l *Lead) CurrentStatus() string           { return string(l.Status) }
func (l *Lead) SetStatus(s string)              { l.Status = LeadStatus(s) }
func (l *Lead) AppendHistory(e HistoryEntry)    { l.History = append(l.History, e) }
