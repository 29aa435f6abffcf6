package articles

import "testing"

func TestCategoryLabel(t *testing.T) {
	if got := CategoryQualityManagement.Label(); got != "品質管理" {
		t.Errorf("Label() = %q, want 品質管理", got)
	}
	// Unknown values pass through rather than disappearing.
	if got := Category("future_category").Label(); got != "future_category" {
		t.Errorf("unknown category label = %q, want pass-through", got)
	}
}

func TestRiskLabel(t *testing.T) {
	if got := RiskGPAISystemic.Label(); got != "システミックリスクGPAI" {
		t.Errorf("Label() = %q, want システミックリスクGPAI", got)
	}
	if got := RiskLevel("mystery").Label(); got != "mystery" {
		t.Errorf("unknown risk label = %q, want pass-through", got)
	}
}
