package assistant

import (
	"fmt"
	"strings"
)

// Stats is the live store snapshot the assistant grounds its answers
// in, both for the model prompt and for the offline fallback.
type Stats struct {
	Products     int
	Orders       int
	Processing   int
	Customers    int
	TotalRevenue float64
}

// StatsFunc supplies the current snapshot at answer time.
type StatsFunc func() Stats

// cannedReply answers without the model, keyed on the strongest keyword
// in the message. Used when no API key is configured or the model call
// fails.
func cannedReply(message string, stats Stats) string {
	lower := strings.ToLower(message)

	switch {
	case strings.Contains(lower, "mahsulot"):
		return fmt.Sprintf(
			"Hozirda do'konda %d ta mahsulot mavjud. Mahsulotlar bo'limida ularni tahrirlashingiz mumkin.",
			stats.Products,
		)
	case strings.Contains(lower, "savdo"), strings.Contains(lower, "pul"), strings.Contains(lower, "foyda"):
		return fmt.Sprintf(
			"Umumiy savdo $%.2f ni tashkil qiladi. Batafsil hisobot Moliya bo'limida.",
			stats.TotalRevenue,
		)
	case strings.Contains(lower, "buyurtma"), strings.Contains(lower, "zakaz"):
		return fmt.Sprintf(
			"Jami %d ta buyurtma bor, shundan %d tasi jarayonda. Buyurtmalar bo'limini tekshiring.",
			stats.Orders, stats.Processing,
		)
	case strings.Contains(lower, "mijoz"):
		return fmt.Sprintf(
			"Bazada %d ta mijoz ro'yxatdan o'tgan. Mijozlar bo'limida batafsil ma'lumot bor.",
			stats.Customers,
		)
	case strings.Contains(lower, "salom"), strings.Contains(lower, "qalay"):
		return "Salom! Men Star Store yordamchisiman. Do'kon bo'yicha savollaringizga javob beraman."
	default:
		return "Savolingizni tushunmadim. Mahsulotlar, buyurtmalar, mijozlar yoki savdo haqida so'rashingiz mumkin."
	}
}
