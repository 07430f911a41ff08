package domain

type AlertType string

const (
	AlertTypeDueSoon      AlertType = "due_soon"
	AlertTypeOverdue      AlertType = "overdue"
	AlertTypeHighEMIRatio AlertType = "high_emi_ratio"
)

type AlertSeverity string

const (
	AlertSeverityMedium AlertSeverity = "medium"
	AlertSeverityHigh   AlertSeverity = "high"
)

type Alert struct {
	Type           AlertType     `json:"type"`
	Message        string        `json:"message"`
	Severity       AlertSeverity `json:"severity"`
	LoanID         string        `json:"loan_id"`
	ActionRequired bool          `json:"action_required"`
}
