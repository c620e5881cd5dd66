package model

// Severity grades an alert.
type Severity string

const (
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Alert is a derived budget insight. Alerts are rebuilt on every recompute.
type Alert struct {
	ID       string   `json:"id" yaml:"id"`
	Severity Severity `json:"severity" yaml:"severity"`
	Message  string   `json:"message" yaml:"message"`
	Icon     string   `json:"icon" yaml:"icon"`
	Category Category `json:"category,omitempty" yaml:"category,omitempty"` // empty for projection alerts
}
