// Package samples holds the preloaded sample transaction set used by the
// by-id assessment path. The set is loaded once at process start and is
// read-only thereafter, so concurrent lookups need no locking.
package samples

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/chayan2009/fraud-mcp/internal/risk"
)

// Store is a fixed, ordered collection of sample transactions keyed by
// transaction ID. Lookup is a linear scan; on duplicate IDs the first
// record wins.
type Store struct {
	transactions []risk.Transaction
}

// Load reads a JSON array of transaction records from path. A missing or
// malformed file is a startup failure: the caller must not serve requests
// without a loaded store.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sample data: %w", err)
	}
	return Parse(data)
}

// Parse builds a store from raw JSON sample data.
func Parse(data []byte) (*Store, error) {
	var txs []risk.Transaction
	if err := json.Unmarshal(data, &txs); err != nil {
		return nil, fmt.Errorf("parse sample data: %w", err)
	}
	return &Store{transactions: txs}, nil
}

// FindByID returns the first transaction whose ID matches exactly.
// The boolean reports whether a match was found; an absent ID is an
// expected condition, not an error.
func (s *Store) FindByID(id string) (risk.Transaction, bool) {
	for _, tx := range s.transactions {
		if tx.TransactionID == id {
			return tx, true
		}
	}
	return risk.Transaction{}, false
}

// Len reports the number of loaded sample transactions.
func (s *Store) Len() int {
	return len(s.transactions)
}
