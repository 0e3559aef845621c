package account

import (
	"sync"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"ChartSentry/internal/model"
)

// Manager is the account-state provider: it owns the funds and holdings
// snapshot the position-sizing calculator consumes, persisted as JSON with
// concurrency safety. The signal core never touches this state directly.
type Manager struct {
	mu       sync.Mutex
	state    *model.AccountState
	filePath string
}

// NewManager creates a Manager, loading or initializing state from disk.
func NewManager(filePath string) (*Manager, error) {
	state, err := LoadState(filePath)
	if err != nil {
		return nil, err
	}
	return &Manager{state: state, filePath: filePath}, nil
}

// GetState returns a copy of the current account state.
func (m *Manager) GetState() model.AccountState {
	m.mu.Lock()
	defer m.mu.Unlock()

	cash := make(map[string]decimal.Decimal, len(m.state.Cash))
	for ccy, amount := range m.state.Cash {
		cash[ccy] = amount
	}
	holdings := make([]model.Holding, len(m.state.Holdings))
	copy(holdings, m.state.Holdings)
	return model.AccountState{Cash: cash, Holdings: holdings}
}

// SetCash sets the available cash for a currency.
func (m *Manager) SetCash(currency string, amount decimal.Decimal) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Cash[currency] = amount
	m.save()
}

// UpsertHolding adds a holding or replaces the existing one for the ticker.
func (m *Manager) UpsertHolding(h model.Holding) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.state.Holdings {
		if existing.Ticker == h.Ticker {
			m.state.Holdings[i] = h
			m.save()
			return
		}
	}
	m.state.Holdings = append(m.state.Holdings, h)
	m.save()
}

// UpdateStopLoss moves the stop for a held ticker. Returns false if the
// ticker is not held.
func (m *Manager) UpdateStopLoss(ticker string, stop decimal.Decimal) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.state.Holdings {
		if m.state.Holdings[i].Ticker == ticker {
			m.state.Holdings[i].StopLoss = stop
			m.save()
			return true
		}
	}
	return false
}

// RemoveHolding deletes the holding for a ticker. Returns false if not held.
func (m *Manager) RemoveHolding(ticker string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.state.Holdings {
		if m.state.Holdings[i].Ticker == ticker {
			m.state.Holdings = append(m.state.Holdings[:i], m.state.Holdings[i+1:]...)
			m.save()
			return true
		}
	}
	return false
}

func (m *Manager) save() {
	if err := SaveState(m.filePath, m.state); err != nil {
		log.WithError(err).Error("save account state")
	}
}
