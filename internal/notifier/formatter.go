package notifier

import (
	"fmt"
	"math"
	"strings"

	"StockStress/internal/model"
)

func bandEmoji(band model.SignalBand) string {
	switch band {
	case model.BandOverbought:
		return "🚨"
	case model.BandOversold:
		return "🟢"
	case model.BandNeutral:
		return "🟡"
	default:
		return "❓"
	}
}

// FormatAssessment formats an assessment into a Telegram-ready HTML
// message.
func FormatAssessment(a *model.Assessment) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>StockStress</b> | %s | %s\n\n",
		a.Symbol, a.GeneratedAt.Format("2006-01-02 15:04")))
	b.WriteString(fmt.Sprintf("History: %s, RSI period: %d\n", a.Range, a.Period))

	if math.IsNaN(a.Signal.LastRSI) {
		b.WriteString("RSI(last): undefined\n")
	} else {
		b.WriteString(fmt.Sprintf("RSI(last): %.2f\n", a.Signal.LastRSI))
	}

	b.WriteString(fmt.Sprintf("\n%s <b>%s</b>\n%s\n", bandEmoji(a.Signal.Band), a.Signal.Band, a.Signal.Explanation))

	b.WriteString("\n" + FormatRSITable(a.Table, 3))
	return b.String()
}

// FormatRSITable formats the last n rows of the RSI table.
func FormatRSITable(t *model.RSITable, n int) string {
	var b strings.Builder
	b.WriteString("<b>Recent values:</b>\n")
	for _, p := range t.Tail(n) {
		rsi := "NaN"
		if !math.IsNaN(p.RSI) {
			rsi = fmt.Sprintf("%.2f", p.RSI)
		}
		b.WriteString(fmt.Sprintf("  %s  close=%.2f  rsi=%s\n", p.Time.Format("2006-01-02"), p.Close, rsi))
	}
	return b.String()
}
