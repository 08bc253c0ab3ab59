package renderer

import (
	"bytes"
	"fmt"
	"time"

	"github.com/etnz/tradebook"
)

// DashboardMarkdown renders the journal's front page: holdings at a glance,
// emergency backfills waiting to be completed, and the latest assessments.
func DashboardMarkdown(s *tradebook.Store, now time.Time) string {
	lang := s.Meta.Lang
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "# %s\n\n", tradebook.T(lang, "交易纪律面板", "Trade Discipline Dashboard"))

	counts := map[tradebook.AssetStatus]int{}
	for _, a := range s.Assets {
		counts[a.Status]++
	}
	fmt.Fprintf(&buf, "%s: **%d**", tradebook.T(lang, "标的", "Assets"), len(s.Assets))
	for _, st := range []tradebook.AssetStatus{tradebook.StatusPreEntry, tradebook.StatusWatching, tradebook.StatusHolding, tradebook.StatusCleared} {
		if counts[st] > 0 {
			fmt.Fprintf(&buf, " · %s %d", st.Label(lang), counts[st])
		}
	}
	fmt.Fprint(&buf, "\n\n")

	if backfills := s.PendingBackfills(); len(backfills) > 0 {
		fmt.Fprintf(&buf, "## %s\n\n", tradebook.T(lang, "待补齐评估", "Pending backfills"))
		rows := make([][]string, 0, len(backfills))
		for _, a := range backfills {
			symbol := string(a.AssetID)
			if asset := s.Asset(a.AssetID); asset != nil {
				symbol = asset.Symbol
			}
			due := fmtTimePtr(a.BackfillDueAt)
			state := ""
			if a.BackfillDueAt != nil && now.After(*a.BackfillDueAt) {
				overdue := int(now.Sub(*a.BackfillDueAt).Hours())
				state = fmt.Sprintf(tradebook.T(lang, "已超时 %d 小时", "overdue by %dh"), overdue)
			}
			rows = append(rows, []string{symbol, due, state})
		}
		table(&buf, []string{
			tradebook.T(lang, "标的", "Asset"),
			tradebook.T(lang, "截止", "Due"),
			tradebook.T(lang, "状态", "State"),
		}, rows)
	}

	recent := s.RecentAssessments(5)
	if len(recent) > 0 {
		fmt.Fprintf(&buf, "## %s\n\n", tradebook.T(lang, "最近评估", "Recent assessments"))
		rows := make([][]string, 0, len(recent))
		for _, a := range recent {
			symbol := string(a.AssetID)
			if asset := s.Asset(a.AssetID); asset != nil {
				symbol = asset.Symbol
			}
			rows = append(rows, []string{
				symbol,
				a.Type.Label(lang),
				string(a.OutcomeTier),
				a.RecommendationType.Label(lang),
				fmtTime(a.CreatedAt),
			})
		}
		table(&buf, []string{
			tradebook.T(lang, "标的", "Asset"),
			tradebook.T(lang, "类型", "Type"),
			tradebook.T(lang, "档位", "Tier"),
			tradebook.T(lang, "建议", "Recommendation"),
			tradebook.T(lang, "时间", "When"),
		}, rows)
	}

	return buf.String()
}
