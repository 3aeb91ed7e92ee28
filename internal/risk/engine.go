package risk

import "github.com/shopspring/decimal"

// Score thresholds for level classification, inclusive on the lower end.
const (
	HighThreshold   = 70
	MediumThreshold = 40
)

// Rule deltas. Each rule is independently additive; no clamping is applied,
// so a score can fall below the base or exceed 100 under these rules.
const (
	baseScore         = 10
	deltaHighAmount   = 30
	deltaCrossBorder  = 40
	deltaCardChannel  = 10
	deltaBureauFlag   = 5
	deltaBureauStatus = -5
)

// Reason strings, one per rule, appended in rule-evaluation order.
const (
	ReasonHighAmount   = "High transaction amount"
	ReasonCrossBorder  = "Cross-border transaction"
	ReasonCardChannel  = "Card-not-present / card channel risk"
	ReasonBureauFlag   = "Bureau special comment flag (18)"
	ReasonBureauStatus = "Account status 12 from bureau (slightly lower risk)"
)

// Bureau values that trigger the bureau rules.
const (
	bureauFlagComment = "18"
	bureauLowerStatus = "12"
)

var highAmountThreshold = decimal.NewFromInt(5000)

// Evaluate scores a transaction against the fixed rule table.
// Pure and deterministic: the same transaction always yields the same
// assessment, so there is no failure path and nothing to retry.
func Evaluate(tx Transaction) Assessment {
	score := baseScore
	reasons := []string{}

	if tx.Amount.GreaterThan(highAmountThreshold) {
		score += deltaHighAmount
		reasons = append(reasons, ReasonHighAmount)
	}

	if tx.MerchantCountry != tx.UserCountry {
		score += deltaCrossBorder
		reasons = append(reasons, ReasonCrossBorder)
	}

	if tx.Channel == ChannelCard {
		score += deltaCardChannel
		reasons = append(reasons, ReasonCardChannel)
	}

	if tx.BureauData != nil {
		if tx.BureauData.SpecialComments == bureauFlagComment {
			score += deltaBureauFlag
			reasons = append(reasons, ReasonBureauFlag)
		}
		if tx.BureauData.Status == bureauLowerStatus {
			score += deltaBureauStatus
			reasons = append(reasons, ReasonBureauStatus)
		}
	}

	level := classify(score)

	return Assessment{
		TransactionID:  tx.TransactionID,
		RiskScore:      score,
		RiskLevel:      level,
		Reasons:        reasons,
		Recommendation: Recommendation(level),
	}
}

// classify maps a final score to its risk level.
func classify(score int) Level {
	switch {
	case score >= HighThreshold:
		return LevelHigh
	case score >= MediumThreshold:
		return LevelMedium
	default:
		return LevelLow
	}
}
