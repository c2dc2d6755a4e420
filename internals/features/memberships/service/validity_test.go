// file: internals/features/memberships/service/validity_test.go
package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OscarGirao89/FusionArte-sub000/internals/features/memberships/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func intPtr(n int) *int { return &n }

func monthlyPlan(startType model.MonthlyStartType, months int) model.MembershipPlan {
	return model.MembershipPlan{
		MembershipPlanAccessType:       model.PlanAccessUnlimited,
		MembershipPlanValidity:         model.PlanValidityMonthly,
		MembershipPlanMonthlyStartType: &startType,
		MembershipPlanValidityMonths:   &months,
	}
}

func TestResolveValidity_RelativeOneMonth(t *testing.T) {
	unit := model.DurationUnitMonths
	plan := model.MembershipPlan{
		MembershipPlanAccessType:    model.PlanAccessUnlimited,
		MembershipPlanValidity:      model.PlanValidityRelative,
		MembershipPlanDurationUnit:  &unit,
		MembershipPlanDurationValue: intPtr(1),
	}

	v, err := ResolveValidity(plan, date(2024, time.July, 1), nil)

	require.NoError(t, err)
	assert.Equal(t, date(2024, time.July, 1), v.StartDate)
	assert.Equal(t, date(2024, time.August, 1), v.EndDate) // no end-of-period adjustment
}

func TestResolveValidity_RelativeWeeksAndDays(t *testing.T) {
	weeks := model.DurationUnitWeeks
	plan := model.MembershipPlan{
		MembershipPlanValidity:      model.PlanValidityRelative,
		MembershipPlanDurationUnit:  &weeks,
		MembershipPlanDurationValue: intPtr(2),
	}
	v, err := ResolveValidity(plan, date(2024, time.July, 1), nil)
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.July, 15), v.EndDate)

	days := model.DurationUnitDays
	plan.MembershipPlanDurationUnit = &days
	plan.MembershipPlanDurationValue = intPtr(10)
	v, err = ResolveValidity(plan, date(2024, time.July, 1), nil)
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.July, 11), v.EndDate)
}

func TestResolveValidity_MonthlyNextMonthStartsFirstOfFollowingMonth(t *testing.T) {
	plan := monthlyPlan(model.MonthlyStartNextMonth, 1)

	v, err := ResolveValidity(plan, date(2024, time.July, 15), nil)

	require.NoError(t, err)
	assert.Equal(t, date(2024, time.August, 1), v.StartDate)
	assert.Equal(t, date(2024, time.August, 31), v.EndDate) // inclusive end of period
}

func TestResolveValidity_MonthlyCurrentMonthStartsAtPurchase(t *testing.T) {
	plan := monthlyPlan(model.MonthlyStartCurrentMonth, 3)

	v, err := ResolveValidity(plan, date(2024, time.July, 15), nil)

	require.NoError(t, err)
	assert.Equal(t, date(2024, time.July, 15), v.StartDate)
	// 2024-07-15 + 3 months - 1 day
	assert.Equal(t, date(2024, time.October, 14), v.EndDate)
}

func TestResolveValidity_FixedUsesPlanDatesVerbatim(t *testing.T) {
	start := date(2024, time.September, 1)
	end := date(2024, time.December, 20)
	plan := model.MembershipPlan{
		MembershipPlanValidity:  model.PlanValidityFixed,
		MembershipPlanStartDate: &start,
		MembershipPlanEndDate:   &end,
	}

	v, err := ResolveValidity(plan, date(2024, time.July, 15), nil)

	require.NoError(t, err)
	assert.Equal(t, start, v.StartDate)
	assert.Equal(t, end, v.EndDate)
}

func TestResolveValidity_FixedWithoutDatesFails(t *testing.T) {
	plan := model.MembershipPlan{MembershipPlanValidity: model.PlanValidityFixed}

	_, err := ResolveValidity(plan, date(2024, time.July, 15), nil)

	assert.ErrorIs(t, err, ErrFixedDatesMissing)
}

func TestResolveValidity_ClassPackBalanceFromPlan(t *testing.T) {
	plan := monthlyPlan(model.MonthlyStartCurrentMonth, 1)
	plan.MembershipPlanAccessType = model.PlanAccessClassPack
	plan.MembershipPlanClassCount = intPtr(10)

	v, err := ResolveValidity(plan, date(2024, time.July, 1), nil)

	require.NoError(t, err)
	require.NotNil(t, v.ClassesRemaining)
	assert.Equal(t, 10, *v.ClassesRemaining)
}

func TestResolveValidity_CustomPackOverrideWins(t *testing.T) {
	plan := monthlyPlan(model.MonthlyStartCurrentMonth, 1)
	plan.MembershipPlanAccessType = model.PlanAccessCustomPack
	plan.MembershipPlanClassCount = intPtr(10)

	v, err := ResolveValidity(plan, date(2024, time.July, 1), intPtr(7))

	require.NoError(t, err)
	require.NotNil(t, v.ClassesRemaining)
	assert.Equal(t, 7, *v.ClassesRemaining)
}

func TestResolveValidity_UnlimitedHasNoBalance(t *testing.T) {
	plan := monthlyPlan(model.MonthlyStartCurrentMonth, 1)

	v, err := ResolveValidity(plan, date(2024, time.July, 1), nil)

	require.NoError(t, err)
	assert.Nil(t, v.ClassesRemaining)
}
