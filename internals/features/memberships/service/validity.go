// file: internals/features/memberships/service/validity.go
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/OscarGirao89/FusionArte-sub000/internals/features/memberships/model"
)

var (
	ErrFixedDatesMissing  = errors.New("fixed-validity plan has no start/end dates")
	ErrValidityIncomplete = errors.New("plan validity configuration incomplete")
)

// Validity is the resolved window plus the initial class balance.
type Validity struct {
	StartDate        time.Time `json:"start_date"`
	EndDate          time.Time `json:"end_date"`
	ClassesRemaining *int      `json:"classes_remaining,omitempty"`
}

// ResolveValidity turns a plan's validity policy into concrete dates.
// classCountOverride is for custom packs where the buyer picks the size;
// otherwise class_pack/trial_class plans take their balance from the plan.
// Pure function: callers decide when to recompute.
func ResolveValidity(plan model.MembershipPlan, purchasedAt time.Time, classCountOverride *int) (Validity, error) {
	var v Validity

	switch plan.MembershipPlanValidity {
	case model.PlanValidityFixed:
		if plan.MembershipPlanStartDate == nil || plan.MembershipPlanEndDate == nil {
			return v, ErrFixedDatesMissing
		}
		// plan-defined window, purchase time ignored
		v.StartDate = *plan.MembershipPlanStartDate
		v.EndDate = *plan.MembershipPlanEndDate

	case model.PlanValidityMonthly:
		if plan.MembershipPlanValidityMonths == nil {
			return v, fmt.Errorf("%w: validity_months missing", ErrValidityIncomplete)
		}
		start := purchasedAt
		if plan.MembershipPlanMonthlyStartType != nil && *plan.MembershipPlanMonthlyStartType == model.MonthlyStartNextMonth {
			start = firstOfNextMonth(purchasedAt)
		}
		// inclusive end-of-period: the day before the same calendar day N months later
		v.StartDate = start
		v.EndDate = start.AddDate(0, *plan.MembershipPlanValidityMonths, 0).AddDate(0, 0, -1)

	case model.PlanValidityRelative:
		if plan.MembershipPlanDurationUnit == nil || plan.MembershipPlanDurationValue == nil {
			return v, fmt.Errorf("%w: duration missing", ErrValidityIncomplete)
		}
		v.StartDate = purchasedAt
		n := *plan.MembershipPlanDurationValue
		switch *plan.MembershipPlanDurationUnit {
		case model.DurationUnitDays:
			v.EndDate = purchasedAt.AddDate(0, 0, n)
		case model.DurationUnitWeeks:
			v.EndDate = purchasedAt.AddDate(0, 0, 7*n)
		case model.DurationUnitMonths:
			v.EndDate = purchasedAt.AddDate(0, n, 0)
		default:
			return v, fmt.Errorf("%w: unknown duration unit %q", ErrValidityIncomplete, *plan.MembershipPlanDurationUnit)
		}

	default:
		return v, fmt.Errorf("%w: unknown validity type %q", ErrValidityIncomplete, plan.MembershipPlanValidity)
	}

	v.ClassesRemaining = resolveClassBalance(plan, classCountOverride)
	return v, nil
}

// resolveClassBalance: explicit override wins (custom packs), then the
// plan's own count for countable access types; unlimited/course_pass
// have no balance.
func resolveClassBalance(plan model.MembershipPlan, override *int) *int {
	if override != nil {
		n := *override
		return &n
	}
	switch plan.MembershipPlanAccessType {
	case model.PlanAccessClassPack, model.PlanAccessTrialClass:
		if plan.MembershipPlanClassCount != nil {
			n := *plan.MembershipPlanClassCount
			return &n
		}
	}
	return nil
}

func firstOfNextMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location()).AddDate(0, 1, 0)
}
