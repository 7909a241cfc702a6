package service

import (
	"errors"
	"testing"

	"amortizer/domain"
	"amortizer/repository"
)

type MockScheduleRepository struct {
	SaveCalled bool
	ForceError bool
}

func (m *MockScheduleRepository) Save(
	req domain.LoanRequest,
	result domain.ScheduleResult,
) error {
	m.SaveCalled = true
	if m.ForceError {
		return errors.New("save error")
	}
	return nil
}

func validRequest() domain.LoanRequest {
	return domain.LoanRequest{
		Principal:         200000,
		AnnualRatePercent: 6,
		TermYears:         30,
		Cadence:           domain.CadenceMonthly,
	}
}

func TestBuildSchedule_OK(t *testing.T) {

	mockRepo := &MockScheduleRepository{}
	service := NewScheduleService(mockRepo, repository.NewMockCache())

	result, err := service.BuildSchedule(validRequest())

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Rows) != 360 {
		t.Errorf("expected 360 rows, got %d", len(result.Rows))
	}

	if !mockRepo.SaveCalled {
		t.Errorf("expected repository Save to be called")
	}
}

func TestBuildSchedule_InvalidPrincipal(t *testing.T) {

	mockRepo := &MockScheduleRepository{}
	service := NewScheduleService(mockRepo, repository.NewMockCache())

	req := validRequest()
	req.Principal = 0

	_, err := service.BuildSchedule(req)

	if err == nil {
		t.Errorf("expected error for invalid principal")
	}

	if mockRepo.SaveCalled {
		t.Errorf("repository Save should NOT be called")
	}
}

func TestBuildSchedule_InvalidTerm(t *testing.T) {

	mockRepo := &MockScheduleRepository{}
	service := NewScheduleService(mockRepo, repository.NewMockCache())

	req := validRequest()
	req.TermYears = 0

	_, err := service.BuildSchedule(req)

	if err == nil {
		t.Errorf("expected error for invalid term")
	}
}

func TestBuildSchedule_NegativeRate(t *testing.T) {

	service := NewScheduleService(&MockScheduleRepository{}, repository.NewMockCache())

	req := validRequest()
	req.AnnualRatePercent = -1

	if _, err := service.BuildSchedule(req); err == nil {
		t.Errorf("expected error for negative rate")
	}
}

func TestBuildSchedule_NegativeExtra(t *testing.T) {

	service := NewScheduleService(&MockScheduleRepository{}, repository.NewMockCache())

	req := validRequest()
	req.ExtraPayment = -10

	if _, err := service.BuildSchedule(req); err == nil {
		t.Errorf("expected error for negative extra payment")
	}
}

func TestBuildSchedule_InvalidCadence(t *testing.T) {

	service := NewScheduleService(&MockScheduleRepository{}, repository.NewMockCache())

	req := validRequest()
	req.Cadence = "weekly"

	if _, err := service.BuildSchedule(req); err == nil {
		t.Errorf("expected error for invalid cadence")
	}
}

func TestBuildSchedule_InvalidStartDate(t *testing.T) {

	service := NewScheduleService(&MockScheduleRepository{}, repository.NewMockCache())

	req := validRequest()
	req.Cadence = domain.CadenceBiweekly
	req.Start = &domain.StartDate{Year: 2024, Month: 2, Day: 31}

	if _, err := service.BuildSchedule(req); err == nil {
		t.Errorf("expected error for invalid start date")
	}
}

func TestBuildSchedule_CacheHit(t *testing.T) {

	mockRepo := &MockScheduleRepository{}
	cache := repository.NewMockCache()
	service := NewScheduleService(mockRepo, cache)

	first, err := service.BuildSchedule(validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Segunda llamada: debe resolverse desde la caché sin guardar de nuevo
	mockRepo.SaveCalled = false
	second, err := service.BuildSchedule(validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mockRepo.SaveCalled {
		t.Errorf("expected cache hit to skip repository Save")
	}
	if len(second.Rows) != len(first.Rows) {
		t.Errorf("cached result differs: %d rows vs %d", len(second.Rows), len(first.Rows))
	}
	if second.BasePayment != first.BasePayment {
		t.Errorf("cached base payment differs: %v vs %v", second.BasePayment, first.BasePayment)
	}
}

func TestBuildSchedule_SaveFailureIsNotFatal(t *testing.T) {

	mockRepo := &MockScheduleRepository{ForceError: true}
	service := NewScheduleService(mockRepo, repository.NewMockCache())

	if _, err := service.BuildSchedule(validRequest()); err != nil {
		t.Fatalf("save failure should not fail the request: %v", err)
	}
}
