package service

import (
	"testing"

	"amortizer/domain"
	"amortizer/repository"
)

func newComparisonService() *ComparisonService {
	scheduleService := NewScheduleService(
		&MockScheduleRepository{},
		repository.NewMockCache(),
	)
	return NewComparisonService(scheduleService)
}

func TestCompareExtraPayment_OK(t *testing.T) {

	service := newComparisonService()

	result, err := service.CompareExtraPayment(domain.ComparisonInput{
		Principal:         200000,
		AnnualRatePercent: 6,
		TermYears:         30,
		ExtraPayment:      200,
		Cadence:           domain.CadenceMonthly,
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Baseline.Periods != 360 {
		t.Errorf("expected 360 baseline periods, got %d", result.Baseline.Periods)
	}
	if result.Accelerated.Periods >= result.Baseline.Periods {
		t.Errorf("expected accelerated payoff: %d vs %d",
			result.Accelerated.Periods, result.Baseline.Periods)
	}
	if result.PeriodsSaved != result.Baseline.Periods-result.Accelerated.Periods {
		t.Errorf("inconsistent periods saved: %d", result.PeriodsSaved)
	}
	if result.InterestSaved <= 0 {
		t.Errorf("expected positive interest savings, got %.2f", result.InterestSaved)
	}
}

func TestCompareExtraPayment_LastDates(t *testing.T) {

	service := newComparisonService()

	result, err := service.CompareExtraPayment(domain.ComparisonInput{
		Principal:         100000,
		AnnualRatePercent: 5,
		TermYears:         10,
		ExtraPayment:      300,
		Cadence:           domain.CadenceMonthly,
		Start:             &domain.StartDate{Year: 2024, Month: 1},
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Baseline.LastDate != "2033-12" {
		t.Errorf("expected baseline payoff 2033-12, got %q", result.Baseline.LastDate)
	}
	if result.Accelerated.LastDate >= result.Baseline.LastDate {
		t.Errorf("expected earlier accelerated payoff, got %q vs %q",
			result.Accelerated.LastDate, result.Baseline.LastDate)
	}
}

func TestCompareExtraPayment_RequiresExtra(t *testing.T) {

	service := newComparisonService()

	_, err := service.CompareExtraPayment(domain.ComparisonInput{
		Principal:         100000,
		AnnualRatePercent: 5,
		TermYears:         10,
		ExtraPayment:      0,
		Cadence:           domain.CadenceMonthly,
	})

	if err == nil {
		t.Errorf("expected error for zero extra payment")
	}
}

func TestCompareExtraPayment_PropagatesValidation(t *testing.T) {

	service := newComparisonService()

	_, err := service.CompareExtraPayment(domain.ComparisonInput{
		Principal:         -1,
		AnnualRatePercent: 5,
		TermYears:         10,
		ExtraPayment:      100,
		Cadence:           domain.CadenceMonthly,
	})

	if err == nil {
		t.Errorf("expected validation error for negative principal")
	}
}
