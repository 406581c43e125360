package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"amsi_crm/internal/domain/entities"
)

func TestNewAnalyzerClient(t *testing.T) {
	t.Run("missing url", func(t *testing.T) {
		t.Setenv("AI_ANALYSIS_URL", "")
		t.Setenv("AI_ANALYSIS_MOCK", "")
		_, err := NewAnalyzerClient()
		if !errors.Is(err, ErrAnalyzerNotConfigured) {
			t.Fatalf("expected ErrAnalyzerNotConfigured, got %v", err)
		}
	})

	t.Run("mock mode needs no url", func(t *testing.T) {
		t.Setenv("AI_ANALYSIS_URL", "")
		t.Setenv("AI_ANALYSIS_MOCK", "true")
		c, err := NewAnalyzerClient()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !c.mockMode {
			t.Fatalf("expected mock mode")
		}
	})
}

func TestMockAnalysis(t *testing.T) {
	cases := []struct {
		name         string
		description  string
		systemType   string
		wantPriority entities.TicketPriority
		wantCategory string
	}{
		{"system down", "the whole panel is dead", "Burglar Alarm", entities.TicketPriorityHigh, "System Failure"},
		{"nuisance alarm", "keeps beeping at night", "Burglar Alarm", entities.TicketPriorityMedium, "Sensor Fault"},
		{"battery", "battery warning light on", "Burglar Alarm", entities.TicketPriorityLow, "Maintenance"},
		{"generic", "please check the system", "Burglar Alarm", entities.TicketPriorityMedium, "General Service"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := mockAnalysis(tc.description, tc.systemType)
			if a.Priority != tc.wantPriority {
				t.Fatalf("expected priority %s, got %s", tc.wantPriority, a.Priority)
			}
			if a.Category != tc.wantCategory {
				t.Fatalf("expected category %s, got %s", tc.wantCategory, a.Category)
			}
		})
	}

	t.Run("cctv adds a camera mount", func(t *testing.T) {
		a := mockAnalysis("camera feed frozen", "CCTV")
		found := false
		for _, p := range a.RequiredParts {
			if p == "camera mount" {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected camera mount in parts: %v", a.RequiredParts)
		}
	})
}

func TestAnalyzerClient_Analyze(t *testing.T) {
	t.Run("service response is normalized", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req analyzeRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Errorf("bad request body: %v", err)
			}
			_ = json.NewEncoder(w).Encode(entities.TicketAnalysis{
				Priority: "urgent", // unknown value, must be normalized
			})
		}))
		defer srv.Close()

		c := &AnalyzerClient{endpoint: srv.URL, client: srv.Client()}
		a, err := c.Analyze(context.Background(), "panel offline", "Burglar Alarm")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.Priority != entities.TicketPriorityMedium {
			t.Fatalf("unknown priority not normalized: %s", a.Priority)
		}
		if a.Category != "General Service" {
			t.Fatalf("empty category not defaulted: %s", a.Category)
		}
	})

	t.Run("non-200 surfaces an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		c := &AnalyzerClient{endpoint: srv.URL, client: srv.Client()}
		if _, err := c.Analyze(context.Background(), "x", "y"); err == nil {
			t.Fatalf("expected error on 502")
		}
	})
}
