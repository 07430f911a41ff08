package domain

type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "low"
	RiskLevelMedium   RiskLevel = "medium"
	RiskLevelHigh     RiskLevel = "high"
	RiskLevelCritical RiskLevel = "critical"
)

// RiskProfile es la clasificación EMI-sobre-ingreso de un deudor.
type RiskProfile struct {
	Ratio          float64   `json:"ratio"` // porcentaje, 2 decimales
	RiskLevel      RiskLevel `json:"risk_level"`
	Recommendation string    `json:"recommendation"`
}
