package usecase

import "context"

// Display currencies supported by the settings view. Prices are stored
// in USD and converted at fixed display rates.
const (
	CurrencyUSD = "USD"
	CurrencyUZS = "UZS"
	CurrencyEUR = "EUR"
	CurrencyRUB = "RUB"
)

// SettingsUsecase defines the interface for operator display settings,
// persisted across runs in the preference store.
type SettingsUsecase interface {
	Theme() string
	SetTheme(ctx context.Context, theme string) error

	Currency() string
	SetCurrency(ctx context.Context, code string) error

	// FormatPrice renders a USD amount in the active display currency,
	// with grouping separators and currency-appropriate decimals.
	FormatPrice(usd float64) string
	// Rates exposes the fixed USD conversion rates.
	Rates() map[string]float64
}

// AssistantUsecase defines the interface for the admin chat assistant.
type AssistantUsecase interface {
	// Ask answers one message and appends the exchange to the history.
	Ask(ctx context.Context, message string) (ChatMessage, error)
	// History returns the session's chat transcript, oldest first.
	History() []ChatMessage
	// Reset clears the transcript.
	Reset()
}

// ChatMessage is one line of the assistant transcript.
type ChatMessage struct {
	Role    string `json:"role"` // user | assistant
	Text    string `json:"text"`
	Offline bool   `json:"offline,omitempty"`
}
