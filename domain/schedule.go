package domain

import (
	"fmt"
	"time"
)

// Cadence is the payment interval of a loan schedule.
type Cadence string

const (
	CadenceMonthly  Cadence = "monthly"
	CadenceBiweekly Cadence = "biweekly"
)

// PeriodsPerYear returns the number of payment periods per year for the
// cadence (12 for monthly, 26 for biweekly).
func (c Cadence) PeriodsPerYear() int {
	if c == CadenceBiweekly {
		return 26
	}
	return 12
}

// Valid reports whether the cadence is one of the supported values.
func (c Cadence) Valid() bool {
	return c == CadenceMonthly || c == CadenceBiweekly
}

// StartDate anchors the first period of a schedule on the calendar. Month is
// one-based (1 = January). Day is only used by the biweekly cadence.
type StartDate struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Day   int        `json:"day,omitempty"`
}

// Label returns the calendar label for the one-based period index under the
// given cadence: "YYYY-MM" for monthly, "YYYY-MM-DD" for biweekly.
func (s StartDate) Label(c Cadence, period int) string {
	if c == CadenceBiweekly {
		day := s.Day
		if day == 0 {
			day = 1
		}
		d := time.Date(s.Year, s.Month, day, 0, 0, 0, 0, time.UTC)
		return d.AddDate(0, 0, (period-1)*14).Format("2006-01-02")
	}

	// Aritmética de meses con acarreo de años
	months := int(s.Month) - 1 + (period - 1)
	return fmt.Sprintf("%04d-%02d", s.Year+months/12, months%12+1)
}

type LoanRequest struct {
	Principal         float64    `json:"principal"`
	AnnualRatePercent float64    `json:"annual_rate_percent"`
	TermYears         int        `json:"term_years"`
	ExtraPayment      float64    `json:"extra_payment,omitempty"`
	Cadence           Cadence    `json:"cadence"`
	Start             *StartDate `json:"start,omitempty"`
}

// ScheduleRow is one period of an amortization schedule. Payment is the
// scheduled payment (interest + amortizing principal); Extra is on top of it.
type ScheduleRow struct {
	Period    int     `json:"period"`
	Date      string  `json:"date,omitempty"`
	Payment   float64 `json:"payment"`
	Interest  float64 `json:"interest"`
	Principal float64 `json:"principal"`
	Extra     float64 `json:"extra"`
	Balance   float64 `json:"balance"`
}

type ScheduleTotals struct {
	Payment   float64 `json:"payment"`
	Interest  float64 `json:"interest"`
	Principal float64 `json:"principal"`
	Extra     float64 `json:"extra"`
}

// ScheduleResult is the full outcome of a schedule computation. Truncated is
// set when the iteration safety bound was reached before payoff.
type ScheduleResult struct {
	BasePayment float64        `json:"base_payment"`
	Rows        []ScheduleRow  `json:"rows"`
	Totals      ScheduleTotals `json:"totals"`
	Truncated   bool           `json:"truncated,omitempty"`
}
