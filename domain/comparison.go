package domain

// ComparisonInput asks how a recurring extra payment changes a loan's payoff.
type ComparisonInput struct {
	Principal         float64    `json:"principal"`
	AnnualRatePercent float64    `json:"annual_rate_percent"`
	TermYears         int        `json:"term_years"`
	ExtraPayment      float64    `json:"extra_payment"`
	Cadence           Cadence    `json:"cadence"`
	Start             *StartDate `json:"start,omitempty"`
}

type PlanSummary struct {
	Periods       int     `json:"periods"`
	TotalInterest float64 `json:"total_interest"`
	TotalPayment  float64 `json:"total_payment"`
	LastDate      string  `json:"last_date,omitempty"`
}

type ComparisonResult struct {
	BasePayment   float64     `json:"base_payment"`
	Baseline      PlanSummary `json:"baseline"`
	Accelerated   PlanSummary `json:"accelerated"`
	PeriodsSaved  int         `json:"periods_saved"`
	InterestSaved float64     `json:"interest_saved"`
}
