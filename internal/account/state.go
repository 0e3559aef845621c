package account

import (
	"encoding/json"
	"os"

	"github.com/shopspring/decimal"

	"ChartSentry/internal/model"
)

// LoadState reads the account state from a JSON file. A missing file yields a
// fresh empty state so the first run needs no setup step.
func LoadState(filePath string) (*model.AccountState, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return &model.AccountState{Cash: map[string]decimal.Decimal{}}, nil
		}
		return nil, err
	}
	var state model.AccountState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	if state.Cash == nil {
		state.Cash = map[string]decimal.Decimal{}
	}
	return &state, nil
}

// SaveState writes the account state to a JSON file.
func SaveState(filePath string, state *model.AccountState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, data, 0644)
}
