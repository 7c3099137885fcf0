// Package deadlines maps compliance deadlines into color-coded urgency bands
// and cohort summary counts.
package deadlines

import (
	"math"
	"time"

	"github.com/classpulse/classpulse/internal/signals"
)

// Color is the urgency code for one deadline.
type Color string

const (
	ColorCompleted Color = "completed"
	ColorOverdue   Color = "overdue"
	ColorRed       Color = "red"
	ColorYellow    Color = "yellow"
	ColorGreen     Color = "green"
)

// Urgency band bounds in calendar days until due.
const (
	RedMaxDays    = 14
	YellowMaxDays = 30
)

// Classified is a deadline annotated with its computed urgency. Color and
// DaysUntilDue are derived at read time, never persisted.
type Classified struct {
	signals.ComplianceDeadline
	Color        Color `json:"color"`
	DaysUntilDue int   `json:"daysUntilDue"`
}

// Classify computes the color band for one deadline at the given instant.
// Days until due use calendar-day granularity: fractional hours truncate
// toward the earlier day. A completed status always overrides date bands.
func Classify(d signals.ComplianceDeadline, now time.Time) Classified {
	days := int(math.Floor(d.DueDate.Sub(now).Hours() / 24))

	c := Classified{ComplianceDeadline: d, DaysUntilDue: days}
	switch {
	case d.Status == signals.DeadlineCompleted:
		c.Color = ColorCompleted
	case days < 0:
		c.Color = ColorOverdue
	case days <= RedMaxDays:
		c.Color = ColorRed
	case days <= YellowMaxDays:
		c.Color = ColorYellow
	default:
		c.Color = ColorGreen
	}
	return c
}

// ClassifyAll classifies a batch of deadlines against one shared instant.
func ClassifyAll(ds []signals.ComplianceDeadline, now time.Time) []Classified {
	out := make([]Classified, len(ds))
	for i, d := range ds {
		out[i] = Classify(d, now)
	}
	return out
}

// Summary holds per-color counts for a classified cohort.
type Summary struct {
	Overdue   int `json:"overdue"`
	Red       int `json:"red"`
	Yellow    int `json:"yellow"`
	Green     int `json:"green"`
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

// Summarize counts classified deadlines per color.
func Summarize(ds []Classified) Summary {
	var s Summary
	for _, d := range ds {
		switch d.Color {
		case ColorOverdue:
			s.Overdue++
		case ColorRed:
			s.Red++
		case ColorYellow:
			s.Yellow++
		case ColorGreen:
			s.Green++
		case ColorCompleted:
			s.Completed++
		}
		s.Total++
	}
	return s
}
