package service

import (
	"math"

	"amortizer/domain"
)

// roundTo2Decimals redondea un float64 a 2 decimales
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// PeriodicPayment computes the fixed payment of an annuity loan. The caller
// guarantees termYears*periodsPerYear > 0.
func PeriodicPayment(
	principal, annualRatePercent float64,
	termYears, periodsPerYear int,
) float64 {

	rate := annualRatePercent / 100 / float64(periodsPerYear)
	n := float64(termYears * periodsPerYear)

	if rate == 0 {
		// Préstamo sin interés: división lineal
		return principal / n
	}

	factor := math.Pow(1+rate, n)
	return principal * rate * factor / (factor - 1)
}

// GenerateSchedule simulates a fixed-rate loan period by period and returns
// the full amortization schedule. It is a pure function: it performs no
// validation and trusts the request invariants (positive principal and term,
// non-negative rate and extra payment).
//
// The base payment is computed once and held constant for the life of the
// loan. Each period accrues interest on the open balance, amortizes the rest
// of the payment, applies the extra payment, and stops when the balance falls
// within BalanceEpsilon of zero. The final period clamps the amortizing
// principal so the balance never goes negative.
func GenerateSchedule(req domain.LoanRequest) domain.ScheduleResult {
	periodsPerYear := req.Cadence.PeriodsPerYear()
	basePayment := PeriodicPayment(
		req.Principal, req.AnnualRatePercent,
		req.TermYears, periodsPerYear,
	)
	periodRate := req.AnnualRatePercent / 100 / float64(periodsPerYear)

	maxPeriods := req.TermYears*periodsPerYear + PeriodSafetyMargin

	balance := req.Principal
	rows := make([]domain.ScheduleRow, 0, req.TermYears*periodsPerYear)
	var totals domain.ScheduleTotals
	truncated := true

	for i := 1; i <= maxPeriods; i++ {
		interest := balance * periodRate
		principalPart := basePayment - interest

		// Último período: no sobrepasar el saldo pendiente
		if principalPart+req.ExtraPayment > balance {
			principalPart = balance
		}

		payment := principalPart + interest
		balance = math.Max(0, balance-principalPart-req.ExtraPayment)

		totals.Interest += interest
		totals.Principal += principalPart
		totals.Extra += req.ExtraPayment
		totals.Payment += payment + req.ExtraPayment

		var date string
		if req.Start != nil {
			date = req.Start.Label(req.Cadence, i)
		}

		rows = append(rows, domain.ScheduleRow{
			Period:    i,
			Date:      date,
			Payment:   payment,
			Interest:  interest,
			Principal: principalPart,
			Extra:     req.ExtraPayment,
			Balance:   balance,
		})

		if balance <= BalanceEpsilon {
			truncated = false
			break
		}
	}

	return domain.ScheduleResult{
		BasePayment: basePayment,
		Rows:        rows,
		Totals:      totals,
		Truncated:   truncated,
	}
}
