package service

import (
	"errors"

	"amortizer/domain"
)

type ComparisonService struct {
	scheduleService *ScheduleService
}

func NewComparisonService(scheduleService *ScheduleService) *ComparisonService {
	return &ComparisonService{scheduleService: scheduleService}
}

// CompareExtraPayment builds the same loan with and without the recurring
// extra payment and reports how many periods and how much interest the extra
// payment saves.
func (s *ComparisonService) CompareExtraPayment(
	input domain.ComparisonInput,
) (domain.ComparisonResult, error) {

	if input.ExtraPayment <= 0 {
		return domain.ComparisonResult{}, errors.New("pago extra inválido")
	}

	base := domain.LoanRequest{
		Principal:         input.Principal,
		AnnualRatePercent: input.AnnualRatePercent,
		TermYears:         input.TermYears,
		Cadence:           input.Cadence,
		Start:             input.Start,
	}

	baseline, err := s.scheduleService.BuildSchedule(base)
	if err != nil {
		return domain.ComparisonResult{}, err
	}

	accel := base
	accel.ExtraPayment = input.ExtraPayment
	accelerated, err := s.scheduleService.BuildSchedule(accel)
	if err != nil {
		return domain.ComparisonResult{}, err
	}

	result := domain.ComparisonResult{
		BasePayment: baseline.BasePayment,
		Baseline:    summarize(baseline),
		Accelerated: summarize(accelerated),
	}
	result.PeriodsSaved = result.Baseline.Periods - result.Accelerated.Periods
	result.InterestSaved = roundTo2Decimals(
		baseline.Totals.Interest - accelerated.Totals.Interest,
	)

	return result, nil
}

func summarize(result domain.ScheduleResult) domain.PlanSummary {
	summary := domain.PlanSummary{
		Periods:       len(result.Rows),
		TotalInterest: roundTo2Decimals(result.Totals.Interest),
		TotalPayment:  roundTo2Decimals(result.Totals.Payment),
	}
	if n := len(result.Rows); n > 0 {
		summary.LastDate = result.Rows[n-1].Date
	}
	return summary
}
