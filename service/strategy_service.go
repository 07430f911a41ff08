package service

import (
	"fmt"
	"math"
	"sort"

	"go.uber.org/zap"

	"loan-insights/domain"
)

// StrategyService ordena préstamos según la política Snowball o Avalanche y
// simula planes de salida de deuda.
type StrategyService struct {
	logger *zap.Logger
}

func NewStrategyService(logger *zap.Logger) *StrategyService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StrategyService{logger: logger}
}

func activeLoans(loans []domain.Loan) []domain.Loan {
	out := make([]domain.Loan, 0, len(loans))
	for _, l := range loans {
		if l.IsActive() {
			out = append(out, l)
		}
	}
	return out
}

// ComputeSnowball orders active loans by smallest remaining balance first.
// Ties break by loan ID so repeated runs are deterministic.
func (s *StrategyService) ComputeSnowball(loans []domain.Loan) domain.StrategyResult {
	activos := activeLoans(loans)
	sort.Slice(activos, func(i, j int) bool {
		if activos[i].RemainingAmount != activos[j].RemainingAmount {
			return activos[i].RemainingAmount < activos[j].RemainingAmount
		}
		return activos[i].ID < activos[j].ID
	})
	return s.buildResult("snowball", activos)
}

// ComputeAvalanche orders active loans by highest interest rate first.
// Ties break by loan ID.
func (s *StrategyService) ComputeAvalanche(loans []domain.Loan) domain.StrategyResult {
	activos := activeLoans(loans)
	sort.Slice(activos, func(i, j int) bool {
		if activos[i].AnnualInterestRate != activos[j].AnnualInterestRate {
			return activos[i].AnnualInterestRate > activos[j].AnnualInterestRate
		}
		return activos[i].ID < activos[j].ID
	})
	return s.buildResult("avalanche", activos)
}

// buildResult arma el resultado del modelo simplificado: cada préstamo se
// liquida por su cuenta, ceil(saldo/cuota) meses, sin redistribuir efectivo
// entre préstamos.
func (s *StrategyService) buildResult(strategy string, ordered []domain.Loan) domain.StrategyResult {
	result := domain.StrategyResult{
		Strategy: strategy,
		Payments: make([]domain.StrategyPayment, 0, len(ordered)),
	}

	totalInteres := 0.0
	maxMeses := 0
	for _, loan := range ordered {
		result.Payments = append(result.Payments, domain.StrategyPayment{
			LoanID:        loan.ID,
			PaymentAmount: loan.MonthlyInstallment,
		})
		totalInteres += loan.TotalInterest

		if loan.MonthlyInstallment > 0 {
			meses := int(math.Ceil(loan.RemainingAmount / loan.MonthlyInstallment))
			if meses > maxMeses {
				maxMeses = meses
			}
		}
	}

	result.TotalInterest = roundTo2Decimals(totalInteres)
	result.MonthsToPayoff = maxMeses
	return result
}

// SimulatePayoffPlan simula mes a mes un presupuesto compartido: primero se
// cubren las cuotas mínimas de todos los préstamos activos y el excedente va
// al préstamo prioritario según la estrategia. strategy acepta "snowball",
// "avalanche" o "compare".
func (s *StrategyService) SimulatePayoffPlan(
	loans []domain.Loan,
	monthlyBudget float64,
	strategy string,
) (domain.PayoffPlan, error) {

	activos := activeLoans(loans)
	if len(activos) == 0 {
		return domain.PayoffPlan{Strategy: strategy, MonthlyPlan: []domain.MonthlyPlan{}}, nil
	}
	if len(activos) > MaxLoansPerBatch {
		return domain.PayoffPlan{}, fmt.Errorf("%w: número de préstamos excede el máximo de %d", domain.ErrInvalidParameter, MaxLoansPerBatch)
	}
	if monthlyBudget <= 0 {
		return domain.PayoffPlan{}, fmt.Errorf("%w: presupuesto mensual inválido", domain.ErrInvalidParameter)
	}

	totalMinimos := 0.0
	for _, loan := range activos {
		if loan.RemainingAmount <= 0 {
			return domain.PayoffPlan{}, fmt.Errorf("%w: saldo inválido en préstamo %s", domain.ErrInvalidParameter, loan.ID)
		}
		if loan.AnnualInterestRate < 0 {
			return domain.PayoffPlan{}, fmt.Errorf("%w: tasa inválida en préstamo %s", domain.ErrInvalidParameter, loan.ID)
		}
		if loan.MonthlyInstallment <= 0 {
			return domain.PayoffPlan{}, fmt.Errorf("%w: cuota inválida en préstamo %s", domain.ErrInvalidParameter, loan.ID)
		}
		totalMinimos += loan.MonthlyInstallment
	}
	if totalMinimos > monthlyBudget {
		return domain.PayoffPlan{}, fmt.Errorf("%w: el presupuesto mensual no cubre las cuotas mínimas", domain.ErrInvalidParameter)
	}

	switch strategy {
	case "snowball", "avalanche":
		return s.runPayoffPlan(activos, monthlyBudget, strategy), nil
	case "compare":
		snowball := s.runPayoffPlan(activos, monthlyBudget, "snowball")
		avalanche := s.runPayoffPlan(activos, monthlyBudget, "avalanche")

		// El mejor método queda como resultado principal.
		result := snowball
		if avalanche.TotalInterestPaid < snowball.TotalInterestPaid {
			result = avalanche
		}

		comparison := &domain.StrategyComparison{
			Snowball: domain.PlanSummary{
				TotalInterestPaid: snowball.TotalInterestPaid,
				MonthsToPayoff:    snowball.MonthsToPayoff,
			},
			Avalanche: domain.PlanSummary{
				TotalInterestPaid: avalanche.TotalInterestPaid,
				MonthsToPayoff:    avalanche.MonthsToPayoff,
			},
		}
		comparison.Savings.InterestSaved = roundTo2Decimals(
			math.Abs(snowball.TotalInterestPaid - avalanche.TotalInterestPaid),
		)
		comparison.Savings.MonthsSaved = snowball.MonthsToPayoff - avalanche.MonthsToPayoff
		result.Comparison = comparison
		return result, nil
	default:
		return domain.PayoffPlan{}, fmt.Errorf("%w: estrategia inválida", domain.ErrInvalidParameter)
	}
}

func (s *StrategyService) runPayoffPlan(
	loans []domain.Loan,
	monthlyBudget float64,
	strategy string,
) domain.PayoffPlan {

	// Copia ordenada según la estrategia; el orden define la prioridad del
	// excedente mensual.
	ordenados := make([]domain.Loan, len(loans))
	copy(ordenados, loans)
	if strategy == "snowball" {
		sort.Slice(ordenados, func(i, j int) bool {
			if ordenados[i].RemainingAmount != ordenados[j].RemainingAmount {
				return ordenados[i].RemainingAmount < ordenados[j].RemainingAmount
			}
			return ordenados[i].ID < ordenados[j].ID
		})
	} else {
		sort.Slice(ordenados, func(i, j int) bool {
			if ordenados[i].AnnualInterestRate != ordenados[j].AnnualInterestRate {
				return ordenados[i].AnnualInterestRate > ordenados[j].AnnualInterestRate
			}
			return ordenados[i].ID < ordenados[j].ID
		})
	}

	saldos := make(map[string]float64, len(ordenados))
	totalDeuda := 0.0
	for _, loan := range ordenados {
		saldos[loan.ID] = loan.RemainingAmount
		totalDeuda += loan.RemainingAmount
	}

	monthlyPlan := []domain.MonthlyPlan{}
	totalInteresPagado := 0.0
	mes := 0

	for {
		mes++
		disponible := monthlyBudget
		payments := []domain.MonthlyPayment{}
		totalPagado := 0.0

		// Primera pasada: interés del mes sobre el saldo inicial.
		intereses := make(map[string]float64, len(ordenados))
		for _, loan := range ordenados {
			if saldos[loan.ID] <= 0 {
				continue
			}
			tasaMensual := (loan.AnnualInterestRate / 100) / 12
			interes := saldos[loan.ID] * tasaMensual
			intereses[loan.ID] = interes
			totalInteresPagado += interes
		}

		// Pagar mínimos de todos los préstamos activos.
		for _, loan := range ordenados {
			if saldos[loan.ID] <= 0 {
				continue
			}

			interes := intereses[loan.ID]
			pago := loan.MonthlyInstallment
			if pago < interes {
				pago = interes
			}
			if maximo := saldos[loan.ID] + interes; pago > maximo {
				pago = maximo
			}
			if pago > disponible {
				pago = disponible
			}
			if pago <= 0 {
				continue
			}

			capital := pago - interes
			if capital < 0 {
				capital = 0
			}
			saldos[loan.ID] -= capital
			if saldos[loan.ID] < 0 {
				saldos[loan.ID] = 0
			}

			payments = append(payments, domain.MonthlyPayment{
				LoanID:           loan.ID,
				Payment:          roundTo2Decimals(pago),
				RemainingBalance: roundTo2Decimals(saldos[loan.ID]),
			})
			disponible -= pago
			totalPagado += pago
		}

		// Segunda pasada: el excedente completo va al primer préstamo
		// pendiente en el orden de la estrategia.
		if disponible > 0 {
			for _, loan := range ordenados {
				if saldos[loan.ID] <= 0 {
					continue
				}
				extra := disponible
				if extra > saldos[loan.ID] {
					extra = saldos[loan.ID]
				}
				for i := range payments {
					if payments[i].LoanID == loan.ID {
						saldos[loan.ID] -= extra
						if saldos[loan.ID] < 0 {
							saldos[loan.ID] = 0
						}
						payments[i].Payment = roundTo2Decimals(payments[i].Payment + extra)
						payments[i].RemainingBalance = roundTo2Decimals(saldos[loan.ID])
						totalPagado += extra
						disponible -= extra
						break
					}
				}
				break
			}
		}

		monthlyPlan = append(monthlyPlan, domain.MonthlyPlan{
			Month:     mes,
			Payments:  payments,
			TotalPaid: roundTo2Decimals(totalPagado),
		})

		todoPagado := true
		for _, loan := range ordenados {
			if saldos[loan.ID] > BalanceTolerance {
				todoPagado = false
				break
			}
		}
		if todoPagado {
			break
		}

		if mes >= MaxPayoffPlanMonths {
			s.logger.Warn("payoff plan reached maximum months limit",
				zap.Int("max_months", MaxPayoffPlanMonths),
				zap.String("strategy", strategy))
			break
		}
	}

	return domain.PayoffPlan{
		Strategy:          strategy,
		TotalDebt:         roundTo2Decimals(totalDeuda),
		TotalInterestPaid: roundTo2Decimals(totalInteresPagado),
		MonthsToPayoff:    mes,
		MonthlyPlan:       monthlyPlan,
	}
}
