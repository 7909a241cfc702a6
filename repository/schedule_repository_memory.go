package repository

import (
	"sync"

	"amortizer/domain"
)

type storedSchedule struct {
	Request domain.LoanRequest
	Result  domain.ScheduleResult
}

// ScheduleRepositoryMemory is an in-memory implementation of ScheduleRepository.
type ScheduleRepositoryMemory struct {
	mu   sync.Mutex
	data []storedSchedule
}

// NewScheduleRepositoryMemory creates a new in-memory schedule repository.
func NewScheduleRepositoryMemory() *ScheduleRepositoryMemory {
	return &ScheduleRepositoryMemory{
		data: []storedSchedule{},
	}
}

// Save stores the computed schedule in memory.
func (r *ScheduleRepositoryMemory) Save(
	req domain.LoanRequest,
	result domain.ScheduleResult,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = append(r.data, storedSchedule{Request: req, Result: result})
	return nil
}

// Len returns the number of stored schedules.
func (r *ScheduleRepositoryMemory) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.data)
}
