package interventions

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an instructional support specialist helping teachers plan interventions for students showing academic risk signals. You see only anonymized labels, never real names.`

func buildUserMessage(batch []AnonymizedStudent) string {
	var b strings.Builder

	b.WriteString("Flagged students:\n")
	for _, s := range batch {
		fmt.Fprintf(&b, "\n%s\n", s.Label)
		fmt.Fprintf(&b, "Risk level: %s\n", s.RiskLevel)

		if len(s.Indicators) == 0 {
			b.WriteString("Indicators: none\n")
		} else {
			fmt.Fprintf(&b, "Indicators: %s\n", strings.Join(s.Indicators, ", "))
		}

		if len(s.RecentScores) > 0 {
			scores := make([]string, len(s.RecentScores))
			for i, v := range s.RecentScores {
				scores[i] = fmt.Sprintf("%.0f", v)
			}
			fmt.Fprintf(&b, "Recent scores (oldest to newest): %s\n", strings.Join(scores, ", "))
		}

		fmt.Fprintf(&b, "Trend: %s\n", s.TrendDirection)
	}

	b.WriteString(`
Instructions:
For each student above, propose 2-3 intervention recommendations:
1. Each recommendation is one concrete action a teacher can take this week (e.g. "schedule a 10-minute check-in on missing assignments", "pair with a peer tutor for fraction practice").
2. Ground every recommendation in that student's indicators and trend. Do not give generic advice.
3. Echo the student label exactly as given. Do not invent labels or names.
4. Keep each recommendation to one sentence.`)

	return b.String()
}
