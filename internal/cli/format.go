package cli

import (
	"strconv"

	"github.com/fatih/color"

	"wedding-timeline/internal/model"
	"wedding-timeline/internal/timeline"
)

func (c *CLI) priorityColor(p model.Priority) *color.Color {
	switch p {
	case model.PriorityCritical:
		return c.errorColor
	case model.PriorityHigh:
		return c.warnColor
	default:
		return c.okColor
	}
}

func (c *CLI) statusColor(s timeline.PhaseStatus) *color.Color {
	switch s {
	case timeline.PhaseStatusCurrent:
		return c.okColor
	case timeline.PhaseStatusOverdue:
		return c.errorColor
	case timeline.PhaseStatusPast:
		return c.mutedColor
	default:
		return c.warnColor
	}
}

// formatFloat prints 9 as "9" and 9.5 as "9.5".
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
