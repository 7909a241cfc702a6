package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"amortizer/domain"
	"amortizer/repository"
)

type ScheduleService struct {
	repo  repository.ScheduleRepository
	cache repository.CacheRepository
}

// NewScheduleService creates a new ScheduleService with the given repository.
func NewScheduleService(repo repository.ScheduleRepository,
	cache repository.CacheRepository,
) *ScheduleService {
	return &ScheduleService{repo: repo, cache: cache}
}

// BuildSchedule validates the request and computes its amortization schedule.
func (s *ScheduleService) BuildSchedule(
	req domain.LoanRequest,
) (domain.ScheduleResult, error) {

	// Validar entrada
	if req.Principal <= 0 {
		return domain.ScheduleResult{}, errors.New("monto inválido")
	}
	if req.Principal > MaxPrincipal {
		return domain.ScheduleResult{}, fmt.Errorf("monto excede el máximo permitido de $%.2f", MaxPrincipal)
	}
	if req.AnnualRatePercent < 0 {
		return domain.ScheduleResult{}, errors.New("tasa inválida")
	}
	if req.AnnualRatePercent > MaxAnnualRate {
		return domain.ScheduleResult{}, fmt.Errorf("tasa de interés excede el máximo permitido de %.2f%%", MaxAnnualRate)
	}
	if req.TermYears <= 0 {
		return domain.ScheduleResult{}, errors.New("plazo inválido")
	}
	if req.TermYears > MaxTermYears {
		return domain.ScheduleResult{}, fmt.Errorf("plazo excede el máximo permitido de %d años", MaxTermYears)
	}
	if req.ExtraPayment < 0 {
		return domain.ScheduleResult{}, errors.New("pago extra inválido")
	}
	if req.ExtraPayment > MaxExtraPayment {
		return domain.ScheduleResult{}, fmt.Errorf("pago extra excede el máximo permitido de $%.2f", MaxExtraPayment)
	}
	if !req.Cadence.Valid() {
		return domain.ScheduleResult{}, errors.New("cadencia inválida")
	}
	if req.Start != nil {
		if err := validateStart(*req.Start, req.Cadence); err != nil {
			return domain.ScheduleResult{}, err
		}
	}

	key, err := cacheKey(req)
	if err == nil {
		if cached, ok := s.cache.Get(key); ok {
			var result domain.ScheduleResult
			if err := json.Unmarshal([]byte(cached), &result); err == nil {
				return result, nil
			}
			log.Printf("Warning: discarding corrupt cached schedule for %s", key)
		}
	}

	result := GenerateSchedule(req)
	if result.Truncated {
		log.Printf("Warning: schedule did not converge after %d periods (principal=%.2f rate=%.2f extra=%.2f)",
			len(result.Rows), req.Principal, req.AnnualRatePercent, req.ExtraPayment)
	}

	// Guardar el resultado (no crítico si falla)
	if err := s.repo.Save(req, result); err != nil {
		log.Printf("Warning: failed to save schedule: %v", err)
	}
	if key != "" {
		if encoded, err := json.Marshal(result); err == nil {
			if err := s.cache.Set(key, string(encoded)); err != nil {
				log.Printf("Warning: failed to cache schedule: %v", err)
			}
		}
	}

	return result, nil
}

func validateStart(start domain.StartDate, cadence domain.Cadence) error {
	if start.Year < 1 || start.Month < time.January || start.Month > time.December {
		return errors.New("fecha de inicio inválida")
	}
	if cadence == domain.CadenceBiweekly && start.Day != 0 {
		d := time.Date(start.Year, start.Month, start.Day, 0, 0, 0, 0, time.UTC)
		if d.Day() != start.Day {
			return errors.New("fecha de inicio inválida")
		}
	}
	return nil
}

func cacheKey(req domain.LoanRequest) (string, error) {
	encoded, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	return "schedule:" + string(encoded), nil
}
