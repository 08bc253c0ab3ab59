package tradebook

import "testing"

func TestLabelsCoverBothLanguages(t *testing.T) {
	if got := T(LangZH, "中文", "english"); got != "中文" {
		t.Errorf("T(zh) = %q", got)
	}
	if got := T(LangEN, "中文", "english"); got != "english" {
		t.Errorf("T(en) = %q", got)
	}
	// An unknown language falls back to zh, the product's first language.
	if got := T("", "中文", "english"); got != "中文" {
		t.Errorf("T(unknown) = %q", got)
	}
}

func TestRecommendationLabels(t *testing.T) {
	tests := []struct {
		rec RecommendationType
		zh  string
		en  string
	}{
		{RecHold, "保持", "Hold"},
		{RecWait, "设条件等待", "Wait with conditions"},
		{RecReduce, "减暴露", "Reduce exposure"},
		{RecTakeProfit, "锁定利润（分批）", "Take profit (staged)"},
		{RecHedge, "保护性对冲", "Protective hedge"},
	}
	for _, tt := range tests {
		if got := tt.rec.Label(LangZH); got != tt.zh {
			t.Errorf("%s zh = %q, want %q", tt.rec, got, tt.zh)
		}
		if got := tt.rec.Label(LangEN); got != tt.en {
			t.Errorf("%s en = %q, want %q", tt.rec, got, tt.en)
		}
	}
}

func TestLabelFallsBackToRawValue(t *testing.T) {
	if got := AssetStatus("mystery").Label(LangEN); got != "mystery" {
		t.Errorf("got %q, want the raw value", got)
	}
}
