// Package risk implements rule-based transaction risk scoring.
//
// Every transaction is evaluated against a fixed, ordered table of
// additive rules: amount, cross-border, channel, and bureau signals.
// Scores start at a base of 10 and accumulate signed deltas; the final
// score maps to a LOW/MEDIUM/HIGH level and a recommendation. The rule
// table is a deterministic, auditable placeholder for a real fraud model.
package risk

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Channel is the payment channel a transaction was made over.
type Channel string

const (
	ChannelCard   Channel = "CARD"
	ChannelUPI    Channel = "UPI"
	ChannelWallet Channel = "WALLET"
)

// UnmarshalJSON rejects any value outside the closed channel enumeration,
// so an invalid channel fails at decode time rather than scoring time.
func (c *Channel) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("channel must be a string: %w", err)
	}
	switch Channel(s) {
	case ChannelCard, ChannelUPI, ChannelWallet:
		*c = Channel(s)
		return nil
	}
	return fmt.Errorf("invalid channel %q (expected CARD, UPI or WALLET)", s)
}

// Level is the categorical risk bucket derived from a score.
type Level string

const (
	LevelLow    Level = "LOW"
	LevelMedium Level = "MEDIUM"
	LevelHigh   Level = "HIGH"
)

// BureauData carries optional third-party bureau signals attached to a
// transaction. Only these two fields affect scoring; any other keys in
// the source payload are ignored.
type BureauData struct {
	SpecialComments string `json:"special_comments"`
	Status          string `json:"status"`
}

// Transaction is one payment event to be scored. Immutable once parsed.
type Transaction struct {
	TransactionID   string          `json:"transactionId" validate:"required"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency" validate:"required"`
	MerchantCountry string          `json:"merchantCountry" validate:"required"`
	UserCountry     string          `json:"userCountry" validate:"required"`
	Channel         Channel         `json:"channel" validate:"required"`
	Timestamp       string          `json:"timestamp" validate:"required"`
	BureauData      *BureauData     `json:"sourceBureauData,omitempty"`
}

// Assessment is the result of evaluating a single transaction.
type Assessment struct {
	TransactionID  string   `json:"transactionId"`
	RiskScore      int      `json:"riskScore"`
	RiskLevel      Level    `json:"riskLevel"`
	Reasons        []string `json:"reasons"`
	Recommendation string   `json:"recommendation"`
}

// Recommendations per risk level. Pure functions of the level only.
const (
	RecommendationHigh   = "Block the transaction and trigger OTP / manual review."
	RecommendationMedium = "Allow with step-up authentication (OTP, 3DS, etc.)."
	RecommendationLow    = "Allow transaction. Low fraud risk detected."
)

// Recommendation returns the recommended action for a risk level.
func Recommendation(level Level) string {
	switch level {
	case LevelHigh:
		return RecommendationHigh
	case LevelMedium:
		return RecommendationMedium
	default:
		return RecommendationLow
	}
}
