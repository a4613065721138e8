// models/billing.go
package models

import "time"

// Payment plans. Billing here is a simulation: plans only gate access via
// the expiry date, no payment provider is involved.
const (
	PlanFreeWeek = "Free One Week"
	PlanMonthly  = "Monthly"
	PlanYearly   = "Yearly"
	PlanExpired  = "Expired"
)

// PlanDuration returns how long a plan stays active, and whether the plan
// name is known.
func PlanDuration(plan string) (time.Duration, bool) {
	switch plan {
	case PlanFreeWeek:
		return 7 * 24 * time.Hour, true
	case PlanMonthly:
		return 30 * 24 * time.Hour, true
	case PlanYearly:
		return 365 * 24 * time.Hour, true
	}
	return 0, false
}
