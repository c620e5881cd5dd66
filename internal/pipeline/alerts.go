package pipeline

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/theirongolddev/spendwise/internal/categorize"
	"github.com/theirongolddev/spendwise/internal/model"
)

const (
	// WarnRatio is the fraction of a ceiling above which a category alerts.
	WarnRatio = 0.8

	overspendIcon = "↗"
)

// GenerateAlerts builds the full alert list from scratch. Each spent category
// above WarnRatio of its ceiling yields an alert, "high" once spend reaches the
// ceiling. A positive projection variance adds one "high" overspend alert.
// Categories without a ceiling are measured against 0.
func GenerateAlerts(summary model.MonthSummary, projection model.SpendingProjection) []model.Alert {
	var alerts []model.Alert

	for _, cs := range summary.ByCategory {
		if cs.Count == 0 {
			continue
		}
		if !(cs.Spent > cs.Ceiling*WarnRatio) {
			continue
		}
		severity := model.SeverityMedium
		if cs.Spent >= cs.Ceiling {
			severity = model.SeverityHigh
		}
		alerts = append(alerts, model.Alert{
			ID:       uuid.NewString(),
			Severity: severity,
			Message: fmt.Sprintf("You are at %.0f%% of your %s budget",
				math.Round(cs.Spent/cs.Ceiling*100), cs.Category),
			Icon:     categorize.Icon(cs.Category),
			Category: cs.Category,
		})
	}

	if projection.Overspend() {
		alerts = append(alerts, model.Alert{
			ID:       uuid.NewString(),
			Severity: model.SeverityHigh,
			Message:  fmt.Sprintf("Projected to overspend by $%.2f this month", projection.Variance),
			Icon:     overspendIcon,
		})
	}

	return alerts
}
