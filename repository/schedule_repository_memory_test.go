package repository

import (
	"testing"

	"amortizer/domain"
)

func TestScheduleRepositoryMemory_Save(t *testing.T) {

	repo := NewScheduleRepositoryMemory()

	req := domain.LoanRequest{
		Principal:         1000,
		AnnualRatePercent: 5,
		TermYears:         1,
		Cadence:           domain.CadenceMonthly,
	}

	if err := repo.Save(req, domain.ScheduleResult{BasePayment: 85.61}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.Save(req, domain.ScheduleResult{BasePayment: 85.61}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.Len() != 2 {
		t.Errorf("expected 2 stored schedules, got %d", repo.Len())
	}
}

func TestMockCache_RoundTrip(t *testing.T) {

	cache := NewMockCache()

	if _, ok := cache.Get("missing"); ok {
		t.Errorf("expected miss for unknown key")
	}

	if err := cache.Set("k", "v"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	val, ok := cache.Get("k")
	if !ok || val != "v" {
		t.Errorf("expected cached value v, got %q (ok=%v)", val, ok)
	}
}
