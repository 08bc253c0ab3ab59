package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/tradebook"
)

// RecommendationMarkdown renders the engine's verdict for one evaluation.
func RecommendationMarkdown(rec tradebook.Recommendation, lang tradebook.Lang) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# %s %s\n\n", tradebook.T(lang, "评估结果", "Assessment outcome"), rec.Tier)
	table(&buf, []string{
		tradebook.T(lang, "分数", "Score"),
		tradebook.T(lang, "档位", "Tier"),
		tradebook.T(lang, "建议", "Recommendation"),
		tradebook.T(lang, "强度", "Strength"),
	}, [][]string{{
		fmt.Sprintf("%d", rec.Score),
		string(rec.Tier),
		rec.Type.Label(lang),
		rec.Strength.Label(lang),
	}})
	return buf.String()
}

// AssetsMarkdown renders the asset list.
func AssetsMarkdown(s *tradebook.Store) string {
	lang := s.Meta.Lang
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# %s\n\n", tradebook.T(lang, "标的列表", "Assets"))
	if len(s.Assets) == 0 {
		fmt.Fprintf(&buf, "%s\n", tradebook.T(lang, "（空）", "(none)"))
		return buf.String()
	}
	rows := make([][]string, 0, len(s.Assets))
	for _, a := range s.Assets {
		rows = append(rows, []string{
			a.Symbol,
			a.Status.Label(lang),
			a.Industry,
			a.HoldingQty.String(),
			fmtTime(a.UpdatedAt),
		})
	}
	table(&buf, []string{
		tradebook.T(lang, "代码", "Symbol"),
		tradebook.T(lang, "状态", "Status"),
		tradebook.T(lang, "行业", "Industry"),
		tradebook.T(lang, "持有", "Holding"),
		tradebook.T(lang, "更新", "Updated"),
	}, rows)
	return buf.String()
}
