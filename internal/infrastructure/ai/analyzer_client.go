// Package ai holds the client for the external ticket-analysis service.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"amsi_crm/internal/domain/entities"
	"amsi_crm/internal/usecase/interfaces"
)

var ErrAnalyzerNotConfigured = errors.New("missing AI_ANALYSIS_URL")

const defaultTimeout = 3 * time.Second

// AnalyzerClient calls the external text-classification service that
// suggests priority, category and required parts for a new ticket.
//
// Supported env vars:
//   - AI_ANALYSIS_URL          service endpoint
//   - AI_ANALYSIS_TIMEOUT_MS   request timeout (default 3000)
//   - AI_ANALYSIS_MOCK         local keyword heuristic instead of the service
type AnalyzerClient struct {
	endpoint string
	client   *http.Client
	mockMode bool
}

var _ interfaces.ITicketAnalyzer = (*AnalyzerClient)(nil)

func NewAnalyzerClient() (*AnalyzerClient, error) {
	if isAnalyzerMockEnabled() {
		log.Printf("[ticket][analyzer] mock mode enabled")
		return &AnalyzerClient{mockMode: true}, nil
	}

	endpoint := strings.TrimSpace(os.Getenv("AI_ANALYSIS_URL"))
	if endpoint == "" {
		log.Printf("[ticket][analyzer] missing AI_ANALYSIS_URL")
		return nil, ErrAnalyzerNotConfigured
	}

	timeout := defaultTimeout
	if ms, err := strconv.Atoi(os.Getenv("AI_ANALYSIS_TIMEOUT_MS")); err == nil && ms > 0 {
		timeout = time.Duration(ms) * time.Millisecond
	}

	log.Printf("[ticket][analyzer] client initialized endpoint=%s timeout=%s", endpoint, timeout)
	return &AnalyzerClient{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}, nil
}

type analyzeRequest struct {
	Description string `json:"description"`
	SystemType  string `json:"system_type"`
}

func (c *AnalyzerClient) Analyze(ctx context.Context, description, systemType string) (entities.TicketAnalysis, error) {
	if c.mockMode {
		return mockAnalysis(description, systemType), nil
	}

	body, err := json.Marshal(analyzeRequest{Description: description, SystemType: systemType})
	if err != nil {
		return entities.TicketAnalysis{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return entities.TicketAnalysis{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		log.Printf("[ticket][analyzer] request failed err=%v", err)
		return entities.TicketAnalysis{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[ticket][analyzer] unexpected status=%d", resp.StatusCode)
		return entities.TicketAnalysis{}, fmt.Errorf("analysis service returned status %d", resp.StatusCode)
	}

	var a entities.TicketAnalysis
	if err := json.NewDecoder(resp.Body).Decode(&a); err != nil {
		log.Printf("[ticket][analyzer] response decode failed err=%v", err)
		return entities.TicketAnalysis{}, err
	}
	normalize(&a)
	return a, nil
}

func normalize(a *entities.TicketAnalysis) {
	switch a.Priority {
	case entities.TicketPriorityLow, entities.TicketPriorityMedium, entities.TicketPriorityHigh:
	default:
		a.Priority = entities.TicketPriorityMedium
	}
	if a.Category == "" {
		a.Category = "General Service"
	}
}

// mockAnalysis is a deterministic keyword heuristic that stands in for the
// service in local and test environments.
func mockAnalysis(description, systemType string) entities.TicketAnalysis {
	text := strings.ToLower(description)
	a := entities.TicketAnalysis{
		Priority:        entities.TicketPriorityMedium,
		Category:        "General Service",
		SuggestedAction: "Schedule a technician visit",
		EstimatedTime:   "2 hours",
	}

	switch {
	case strings.Contains(text, "not working") || strings.Contains(text, "offline") || strings.Contains(text, "dead"):
		a.Priority = entities.TicketPriorityHigh
		a.Category = "System Failure"
		a.SuggestedAction = "Dispatch technician for on-site diagnosis"
		a.EstimatedTime = "4 hours"
		a.RequiredParts = []string{"control panel", "backup battery"}
	case strings.Contains(text, "false alarm") || strings.Contains(text, "beeping") || strings.Contains(text, "triggering"):
		a.Category = "Sensor Fault"
		a.SuggestedAction = "Recalibrate or replace the affected sensor"
		a.RequiredParts = []string{"motion sensor"}
	case strings.Contains(text, "battery"):
		a.Priority = entities.TicketPriorityLow
		a.Category = "Maintenance"
		a.SuggestedAction = "Replace backup battery"
		a.EstimatedTime = "1 hour"
		a.RequiredParts = []string{"backup battery"}
	}

	if strings.EqualFold(systemType, "CCTV") {
		a.RequiredParts = append(a.RequiredParts, "camera mount")
	}
	return a
}

func isAnalyzerMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("AI_ANALYSIS_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
