package tradebook

// Display labels. The journal computes on enum constants; only the rendered
// views speak the user's language. The product is bilingual zh/en, zh first.

// T picks the text for the given language.
func T(lang Lang, zh, en string) string {
	if lang == LangEN {
		return en
	}
	return zh
}

// Label returns the display label of an asset status.
func (s AssetStatus) Label(lang Lang) string {
	switch s {
	case StatusPreEntry:
		return T(lang, "待建仓", "Pre-entry")
	case StatusWatching:
		return T(lang, "观察", "Watching")
	case StatusHolding:
		return T(lang, "持仓", "Holding")
	case StatusCleared:
		return T(lang, "清仓", "Cleared")
	default:
		return string(s)
	}
}

// Label returns the display label of an assessment type.
func (t AssessmentType) Label(lang Lang) string {
	switch t {
	case AssessEntry:
		return T(lang, "开仓评估", "Entry assessment")
	case AssessReEvaluation:
		return T(lang, "持仓再评估", "Re-evaluation")
	case AssessTrim:
		return T(lang, "减仓/止盈", "Trim / take profit")
	case AssessHedge:
		return T(lang, "对冲", "Hedge")
	case AssessEmergencyBackfill:
		return T(lang, "紧急补齐", "Emergency backfill")
	default:
		return string(t)
	}
}

// Label returns the display label of a recommendation type.
func (t RecommendationType) Label(lang Lang) string {
	switch t {
	case RecHold:
		return T(lang, "保持", "Hold")
	case RecWait:
		return T(lang, "设条件等待", "Wait with conditions")
	case RecReduce:
		return T(lang, "减暴露", "Reduce exposure")
	case RecTakeProfit:
		return T(lang, "锁定利润（分批）", "Take profit (staged)")
	case RecHedge:
		return T(lang, "保护性对冲", "Protective hedge")
	default:
		return string(t)
	}
}

// Label returns the display label of a recommendation strength.
func (s RecommendationStrength) Label(lang Lang) string {
	switch s {
	case StrengthSuggest:
		return T(lang, "建议", "Suggest")
	case StrengthStrongSuggest:
		return T(lang, "强建议", "Strong suggest")
	case StrengthMustAssess:
		return T(lang, "必须评估后才能增加暴露", "Must assess before adding exposure")
	default:
		return string(s)
	}
}

// Label returns the display label of an action type.
func (t ActionType) Label(lang Lang) string {
	switch t {
	case ActionAdd:
		return T(lang, "加仓", "Add")
	case ActionReduce:
		return T(lang, "减仓", "Reduce")
	case ActionTakeProfit:
		return T(lang, "止盈", "Take profit")
	case ActionStopLoss:
		return T(lang, "止损", "Stop loss")
	case ActionHedge:
		return T(lang, "对冲", "Hedge")
	case ActionOther:
		return T(lang, "其他", "Other")
	default:
		return string(t)
	}
}
