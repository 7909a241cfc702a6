package service

const (
	MaxPrincipal    = 1_000_000_000.0 // 1 billón
	MaxAnnualRate   = 1000.0          // 1000% anual
	MaxTermYears    = 50
	MaxExtraPayment = 1_000_000_000.0

	// BalanceEpsilon trata saldos residuales de punto flotante como pagados.
	BalanceEpsilon = 0.00001

	// PeriodSafetyMargin bounds the schedule loop beyond the nominal term
	// count, so a pathological configuration cannot loop forever.
	PeriodSafetyMargin = 1000
)
