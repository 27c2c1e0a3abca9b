//nolint:testpackage // Testing internal classifier requires same package access
package classifier

import (
	"testing"

	"github.com/jonesrussell/school-cluster/internal/domain"
	"github.com/jonesrussell/school-cluster/internal/logger"
)

// mockLogger implements logger.Logger for testing.
type mockLogger struct{}

func (m *mockLogger) Debug(string, ...logger.Field) {}
func (m *mockLogger) Info(string, ...logger.Field)  {}
func (m *mockLogger) Warn(string, ...logger.Field)  {}
func (m *mockLogger) Error(string, ...logger.Field) {}
func (m *mockLogger) Fatal(string, ...logger.Field) {}
func (m *mockLogger) With(...logger.Field) logger.Logger {
	return m
}
func (m *mockLogger) Sync() error { return nil }

func TestRuleClassifier_Classify(t *testing.T) {
	rc := NewRuleClassifier(&mockLogger{})

	tests := []struct {
		name string
		rec  domain.SchoolRecord
		want domain.Cluster
	}{
		{
			"inabanga keyword",
			domain.SchoolRecord{Name: "INABANGA HIGH SCHOOL", Municipality: "INABANGA, BOHOL"},
			domain.ClusterInabanga,
		},
		{
			"dagohoy keyword",
			domain.SchoolRecord{Name: "DAGOHOY MEMORIAL NATIONAL HIGH SCHOOL", Municipality: "DAGOHOY, BOHOL"},
			domain.ClusterInabanga,
		},
		{
			"tubigon keyword",
			domain.SchoolRecord{Name: "TUBIGON WEST CENTRAL HIGH SCHOOL", Municipality: "TUBIGON, BOHOL"},
			domain.ClusterTubigon,
		},
		{
			"cawayanan keyword",
			domain.SchoolRecord{Name: "CAWAYANAN ELEMENTARY SCHOOL", Municipality: "BOHOL"},
			domain.ClusterTubigon,
		},
		{
			"cabulijan keyword",
			domain.SchoolRecord{Name: "CABULIJAN INTEGRATED SCHOOL", Municipality: "BOHOL"},
			domain.ClusterTubigon,
		},
		{
			"no keywords falls to default",
			domain.SchoolRecord{Name: "TEST SCHOOL", Municipality: "UNKNOWN LOCATION"},
			domain.ClusterClarin,
		},
		{
			"keyword in municipality only",
			domain.SchoolRecord{Name: "CENTRAL ELEMENTARY", Municipality: "INABANGA"},
			domain.ClusterInabanga,
		},
		{
			"empty record falls to default",
			domain.SchoolRecord{},
			domain.ClusterClarin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rc.Classify(tt.rec); got != tt.want {
				t.Errorf("Classify(%+v) = %v, want %v", tt.rec, got, tt.want)
			}
		})
	}
}

func TestRuleClassifier_PriorityOrder(t *testing.T) {
	rc := NewRuleClassifier(&mockLogger{})

	// Inabanga keywords win when both keyword sets match.
	rec := domain.SchoolRecord{
		Name:         "INABANGA ANNEX",
		Municipality: "TUBIGON, BOHOL",
	}

	if got := rc.Classify(rec); got != domain.ClusterInabanga {
		t.Errorf("expected inabanga to win priority, got %v", got)
	}
}

func TestRuleClassifier_Deterministic(t *testing.T) {
	rc := NewRuleClassifier(&mockLogger{})
	rec := domain.SchoolRecord{Name: "TUBIGON EAST", Municipality: "BOHOL"}

	first := rc.Classify(rec)
	for range 10 {
		if got := rc.Classify(rec); got != first {
			t.Fatalf("classification not deterministic: %v then %v", first, got)
		}
	}
}
