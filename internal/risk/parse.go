package risk

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// requiredFields are the keys a transaction payload must carry. Presence is
// checked on the raw arguments because a zero value after decoding is
// indistinguishable from an absent key.
var requiredFields = []string{
	"transactionId",
	"amount",
	"currency",
	"merchantCountry",
	"userCountry",
	"channel",
	"timestamp",
}

// ParseTransaction decodes and validates a raw transaction payload from a
// tool call. It rejects missing fields, mistyped values, and any channel
// outside the CARD/UPI/WALLET enumeration. Extra keys, including unknown
// bureau sub-fields, are ignored.
func ParseTransaction(args map[string]any) (Transaction, error) {
	for _, f := range requiredFields {
		if _, ok := args[f]; !ok {
			return Transaction{}, fmt.Errorf("missing required field %q", f)
		}
	}

	data, err := json.Marshal(args)
	if err != nil {
		return Transaction{}, fmt.Errorf("encode transaction: %w", err)
	}

	var tx Transaction
	if err := json.Unmarshal(data, &tx); err != nil {
		return Transaction{}, fmt.Errorf("invalid transaction: %w", err)
	}

	if err := validate.Struct(tx); err != nil {
		return Transaction{}, fmt.Errorf("invalid transaction: %w", err)
	}

	return tx, nil
}
