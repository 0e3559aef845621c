package notifier

import (
	"fmt"
	"strings"

	"ChartSentry/internal/model"
)

// FormatNarrative joins the decision narrative into one block.
func FormatNarrative(dec *model.SignalDecision) string {
	return strings.Join(dec.Narrative, "\n")
}

// FormatSignalText renders a full plain-text report of a signal event.
func FormatSignalText(evt *Event) string {
	var b strings.Builder
	dec := evt.Decision

	emoji := "🟢"
	if dec.Signal == model.SignalShort {
		emoji = "🔴"
	}
	b.WriteString(fmt.Sprintf("%s %s | %s\n", emoji, evt.Symbol, dec.State))
	b.WriteString(dec.Trend + "\n")
	for _, line := range dec.Narrative {
		b.WriteString(line + "\n")
	}

	if rr := dec.RiskReward; rr != nil {
		b.WriteString("\n📊 risk/reward\n")
		b.WriteString(fmt.Sprintf("entry: %.2f\n", rr.Entry))
		b.WriteString(fmt.Sprintf("stop: %.2f\n", rr.StopLoss))
		b.WriteString(fmt.Sprintf("target: %.2f (%.1fR)\n", rr.TakeProfit, rr.Ratio))
	}
	return b.String()
}
