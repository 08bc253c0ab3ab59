package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/tradebook"
)

var testNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func demoStore(t *testing.T) *tradebook.Store {
	t.Helper()
	s := tradebook.SeedStore(testNow)
	s.Meta.Lang = tradebook.LangEN
	asset := &s.Assets[0]
	if _, err := s.AppendAssessment(tradebook.Assessment{AssetID: asset.ID, Type: tradebook.AssessEntry}, testNow); err != nil {
		t.Fatal(err)
	}
	executed := testNow.Add(-72 * time.Hour)
	if _, err := s.AppendAction(tradebook.Action{
		AssetID:    asset.ID,
		Type:       tradebook.ActionStopLoss,
		Status:     tradebook.ActionExecuted,
		Emergency:  true,
		ExecutedAt: &executed,
	}, testNow); err != nil {
		t.Fatal(err)
	}
	return s
}

func TestDashboardMarkdown(t *testing.T) {
	s := demoStore(t)
	md := DashboardMarkdown(s, testNow)

	for _, want := range []string{
		"Trade Discipline Dashboard",
		"TSLA",
		"Pending backfills",
		"Recent assessments",
		"overdue by 24h", // executed 72h ago, 48h window
	} {
		if !strings.Contains(md, want) {
			t.Errorf("dashboard missing %q:\n%s", want, md)
		}
	}
}

func TestDashboardMarkdownSpeaksChinese(t *testing.T) {
	s := demoStore(t)
	s.Meta.Lang = tradebook.LangZH
	md := DashboardMarkdown(s, testNow)
	if !strings.Contains(md, "交易纪律面板") || !strings.Contains(md, "待补齐评估") {
		t.Errorf("zh dashboard:\n%s", md)
	}
}

func TestRecommendationMarkdown(t *testing.T) {
	rec := tradebook.Evaluate(tradebook.DefaultInput())
	md := RecommendationMarkdown(rec, tradebook.LangEN)
	for _, want := range []string{"Assessment outcome B", "Wait with conditions", "| 9 |"} {
		if !strings.Contains(md, want) {
			t.Errorf("recommendation missing %q:\n%s", want, md)
		}
	}
}

func TestAssetsMarkdownEmpty(t *testing.T) {
	s := tradebook.DefaultStore(testNow)
	s.Meta.Lang = tradebook.LangEN
	md := AssetsMarkdown(s)
	if !strings.Contains(md, "(none)") {
		t.Errorf("empty list:\n%s", md)
	}
}

func TestAssetMarkdown(t *testing.T) {
	s := demoStore(t)
	md := AssetMarkdown(s, &s.Assets[0])
	for _, want := range []string{"TSLA", "Holding"} {
		if !strings.Contains(md, want) {
			t.Errorf("asset view missing %q:\n%s", want, md)
		}
	}
}
