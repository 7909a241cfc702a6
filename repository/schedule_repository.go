package repository

import "amortizer/domain"

type ScheduleRepository interface {
	Save(req domain.LoanRequest, result domain.ScheduleResult) error
}
