package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/tradebook"
)

// AssetMarkdown renders one asset's page: thesis, sizing, and its assessment
// and action history, most recent first.
func AssetMarkdown(s *tradebook.Store, a *tradebook.Asset) string {
	lang := s.Meta.Lang
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "# %s · %s\n\n", a.Symbol, a.Status.Label(lang))
	if a.Industry != "" {
		fmt.Fprintf(&buf, "%s: %s\n\n", tradebook.T(lang, "行业", "Industry"), a.Industry)
	}
	if len(a.BuildReasons) > 0 {
		fmt.Fprintf(&buf, "%s: %s\n\n", tradebook.T(lang, "建仓理由", "Build reasons"), strings.Join(a.BuildReasons, ", "))
	}
	if a.Thesis != "" {
		fmt.Fprintf(&buf, "> %s\n\n", a.Thesis)
	}
	if a.PlanQty != nil {
		fmt.Fprintf(&buf, "%s: %s / %s\n\n", tradebook.T(lang, "持有/计划", "Holding / plan"), a.HoldingQty.String(), a.PlanQty.String())
	} else {
		fmt.Fprintf(&buf, "%s: %s\n\n", tradebook.T(lang, "持有", "Holding"), a.HoldingQty.String())
	}
	if a.OpenedAt != nil {
		fmt.Fprintf(&buf, "%s: %s\n\n", tradebook.T(lang, "建仓时间", "Opened"), fmtTimePtr(a.OpenedAt))
	}
	if a.ClosedAt != nil {
		fmt.Fprintf(&buf, "%s: %s\n\n", tradebook.T(lang, "清仓时间", "Closed"), fmtTimePtr(a.ClosedAt))
	}

	if assessments := s.AssessmentsFor(a.ID); len(assessments) > 0 {
		fmt.Fprintf(&buf, "## %s\n\n", tradebook.T(lang, "评估记录", "Assessments"))
		rows := make([][]string, 0, len(assessments))
		for _, as := range assessments {
			rows = append(rows, []string{
				as.Type.Label(lang),
				string(as.OutcomeTier),
				as.RecommendationType.Label(lang),
				as.RecommendationStrength.Label(lang),
				fmtTime(as.CreatedAt),
			})
		}
		table(&buf, []string{
			tradebook.T(lang, "类型", "Type"),
			tradebook.T(lang, "档位", "Tier"),
			tradebook.T(lang, "建议", "Recommendation"),
			tradebook.T(lang, "强度", "Strength"),
			tradebook.T(lang, "时间", "When"),
		}, rows)
	}

	if actions := s.ActionsFor(a.ID); len(actions) > 0 {
		fmt.Fprintf(&buf, "## %s\n\n", tradebook.T(lang, "动作记录", "Actions"))
		rows := make([][]string, 0, len(actions))
		for _, ac := range actions {
			flags := make([]string, 0, 2)
			if ac.Emergency {
				flags = append(flags, tradebook.T(lang, "紧急", "emergency"))
			}
			if ac.Deviation {
				flags = append(flags, tradebook.T(lang, "偏离", "deviation"))
			}
			rows = append(rows, []string{
				ac.Type.Label(lang),
				string(ac.Status),
				fmtTimePtr(ac.ExecutedAt),
				strings.Join(flags, ", "),
			})
		}
		table(&buf, []string{
			tradebook.T(lang, "类型", "Type"),
			tradebook.T(lang, "状态", "Status"),
			tradebook.T(lang, "执行时间", "Executed"),
			tradebook.T(lang, "标记", "Flags"),
		}, rows)
	}

	return buf.String()
}
