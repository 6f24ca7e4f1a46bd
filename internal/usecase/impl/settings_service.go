package impl

import (
	"context"

	domainerrors "staradmin/internal/domain/errors"
	"staradmin/internal/infra/prefs"
	"staradmin/internal/usecase"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Fixed USD display rates. Prices are stored in USD; the rates only
// affect rendering.
var currencyRates = map[string]float64{
	usecase.CurrencyUSD: 1,
	usecase.CurrencyUZS: 12650,
	usecase.CurrencyEUR: 0.92,
	usecase.CurrencyRUB: 91.5,
}

// settingsService implements the SettingsUsecase interface.
type settingsService struct {
	prefs   *prefs.Store
	printer *message.Printer
}

// NewSettingsService is the constructor for settingsService.
func NewSettingsService(prefsStore *prefs.Store) usecase.SettingsUsecase {
	return &settingsService{
		prefs:   prefsStore,
		printer: message.NewPrinter(language.English),
	}
}

func (srv *settingsService) Theme() string {
	if theme := srv.prefs.Get(prefs.KeyTheme); theme != "" {
		return theme
	}

	return "light"
}

func (srv *settingsService) SetTheme(_ context.Context, theme string) error {
	if theme != "light" && theme != "dark" {
		return domainerrors.ErrInvalidInput.WithDetails("theme must be light or dark")
	}

	return srv.prefs.Set(prefs.KeyTheme, theme)
}

func (srv *settingsService) Currency() string {
	if code := srv.prefs.Get(prefs.KeyCurrency); code != "" {
		if _, ok := currencyRates[code]; ok {
			return code
		}
	}

	return usecase.CurrencyUSD
}

func (srv *settingsService) SetCurrency(_ context.Context, code string) error {
	if _, ok := currencyRates[code]; !ok {
		return domainerrors.ErrInvalidInput.WithDetails("unknown currency: " + code)
	}

	return srv.prefs.Set(prefs.KeyCurrency, code)
}

// FormatPrice renders a USD amount in the active display currency. UZS
// amounts are whole sums; everything else keeps two decimals.
func (srv *settingsService) FormatPrice(usd float64) string {
	code := srv.Currency()
	amount := usd * currencyRates[code]

	switch code {
	case usecase.CurrencyUZS:
		grouped := srv.printer.Sprint(number.Decimal(amount,
			number.MaxFractionDigits(0), number.MinFractionDigits(0)))

		return grouped + " so'm"
	case usecase.CurrencyEUR:
		return "€" + srv.twoDecimals(amount)
	case usecase.CurrencyRUB:
		return srv.twoDecimals(amount) + " ₽"
	default:
		return "$" + srv.twoDecimals(amount)
	}
}

func (srv *settingsService) twoDecimals(amount float64) string {
	return srv.printer.Sprint(number.Decimal(amount,
		number.MaxFractionDigits(2), number.MinFractionDigits(2)))
}

// Rates exposes the fixed USD conversion rates.
func (srv *settingsService) Rates() map[string]float64 {
	out := make(map[string]float64, len(currencyRates))
	for code, rate := range currencyRates {
		out[code] = rate
	}

	return out
}
