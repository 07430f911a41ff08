package service

const (
	MaxLoanAmount    = 1_000_000_000.0 // 1 billón
	MaxInterestRate  = 1000.0          // 1000% anual
	MaxTenureMonths  = 600             // 50 años
	MaxLoansPerBatch = 50              // máximo de préstamos por request

	// Tope de iteración para escenarios what-if que re-amortizan mes a mes.
	// Garantiza terminación cuando el pago apenas cubre el interés; el
	// resultado lleva Converged=false si el saldo no llegó a cero.
	MaxSimulationMonths = 360

	// Tope para el plan de salida con presupuesto compartido.
	MaxPayoffPlanMonths = 600

	BalanceTolerance = 0.01 // tolerancia para considerar un saldo pagado

	// Umbrales de clasificación deuda/ingreso (porcentaje).
	RatioThresholdLow    = 20.0
	RatioThresholdMedium = 35.0
	RatioThresholdHigh   = 50.0

	// Umbrales de alerta por préstamo individual.
	AlertRatioHigh    = 50.0
	AlertRatioMedium  = 30.0
	DueSoonWindowDays = 7
)
