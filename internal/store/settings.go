package store

// SettingsData holds the bot configuration exposed to the frontend.
type SettingsData struct {
	AutoTrading    bool    `json:"autoTrading"`
	StopLoss       float64 `json:"stopLoss"`
	TakeProfit     float64 `json:"takeProfit"`
	TelegramAlerts bool    `json:"telegramAlerts"`
	AccountType    string  `json:"accountType"` // futures, spot
}

// SettingsUpdate is a partial settings payload. Nil fields leave the
// stored value untouched.
type SettingsUpdate struct {
	AutoTrading    *bool    `json:"autoTrading"`
	StopLoss       *float64 `json:"stopLoss"`
	TakeProfit     *float64 `json:"takeProfit"`
	TelegramAlerts *bool    `json:"telegramAlerts"`
	AccountType    *string  `json:"accountType"`
}

// DefaultSettings returns the settings every fresh process starts with.
func DefaultSettings() SettingsData {
	return SettingsData{
		AutoTrading:    false,
		StopLoss:       2.5,
		TakeProfit:     5.0,
		TelegramAlerts: true,
		AccountType:    "futures",
	}
}

// SettingsStore holds the single mutable settings record for the
// process. There is deliberately no locking: this is a non-authoritative
// mock, and concurrent PATCHes resolve as last-write-wins per field with
// no atomicity across fields.
type SettingsStore struct {
	current SettingsData
}

// NewSettingsStore creates a store seeded with the default settings.
func NewSettingsStore() *SettingsStore {
	return &SettingsStore{current: DefaultSettings()}
}

// Get returns the current settings.
func (s *SettingsStore) Get() SettingsData {
	return s.current
}

// Update applies every non-nil field of the partial update onto the
// stored settings and returns the resulting full record. Values are
// accepted as-is; there is no range or enum validation.
func (s *SettingsStore) Update(patch SettingsUpdate) SettingsData {
	if patch.AutoTrading != nil {
		s.current.AutoTrading = *patch.AutoTrading
	}
	if patch.StopLoss != nil {
		s.current.StopLoss = *patch.StopLoss
	}
	if patch.TakeProfit != nil {
		s.current.TakeProfit = *patch.TakeProfit
	}
	if patch.TelegramAlerts != nil {
		s.current.TelegramAlerts = *patch.TelegramAlerts
	}
	if patch.AccountType != nil {
		s.current.AccountType = *patch.AccountType
	}
	return s.current
}
