// file: internals/features/coupons/service/discount_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/OscarGirao89/FusionArte-sub000/internals/features/coupons/model"
)

var now = time.Date(2024, time.July, 15, 12, 0, 0, 0, time.UTC)

func activeCoupon(dt model.CouponDiscountType, value float64) model.Coupon {
	return model.Coupon{
		CouponID:            uuid.New(),
		CouponCode:          "VERANO24",
		CouponDiscountType:  dt,
		CouponDiscountValue: value,
		CouponApplicableTo:  model.CouponApplicableAllMemberships,
		CouponStatus:        model.CouponStatusActive,
	}
}

func TestApply_PercentageDiscount(t *testing.T) {
	c := activeCoupon(model.CouponDiscountPercentage, 20)

	d := ApplyToPlan(c, uuid.New(), 100, now)

	assert.True(t, d.Applicable)
	assert.InDelta(t, 80.0, d.DiscountedPrice, 1e-9)
}

func TestApply_FixedDiscountFlooredAtZero(t *testing.T) {
	c := activeCoupon(model.CouponDiscountFixed, 150)

	d := ApplyToPlan(c, uuid.New(), 100, now)

	assert.True(t, d.Applicable)
	assert.Zero(t, d.DiscountedPrice) // never negative
}

func TestApply_InactiveCouponNotApplicable(t *testing.T) {
	c := activeCoupon(model.CouponDiscountPercentage, 20)
	c.CouponStatus = model.CouponStatusInactive

	d := ApplyToPlan(c, uuid.New(), 100, now)

	assert.False(t, d.Applicable)
	assert.InDelta(t, 100.0, d.DiscountedPrice, 1e-9)
}

func TestApply_ExpiredCouponNotApplicable(t *testing.T) {
	c := activeCoupon(model.CouponDiscountPercentage, 20)
	past := now.AddDate(0, 0, -1)
	c.CouponExpirationDate = &past

	d := ApplyToPlan(c, uuid.New(), 100, now)

	assert.False(t, d.Applicable)
}

func TestApply_UsageLimitReachedNotApplicable(t *testing.T) {
	c := activeCoupon(model.CouponDiscountPercentage, 20)
	limit := 5
	c.CouponUsageLimit = &limit
	c.CouponUsageCount = 5

	d := ApplyToPlan(c, uuid.New(), 100, now)

	assert.False(t, d.Applicable)
}

func TestApply_SpecificMembershipScope(t *testing.T) {
	planID := uuid.New()
	c := activeCoupon(model.CouponDiscountPercentage, 10)
	c.CouponApplicableTo = model.CouponApplicableSpecificMemberships
	c.CouponSpecificPlanIDs = []string{planID.String()}

	assert.True(t, ApplyToPlan(c, planID, 100, now).Applicable)
	assert.False(t, ApplyToPlan(c, uuid.New(), 100, now).Applicable)
}

func TestApply_ClassScopeDoesNotMatchPlans(t *testing.T) {
	c := activeCoupon(model.CouponDiscountPercentage, 10)
	c.CouponApplicableTo = model.CouponApplicableAllClasses

	assert.False(t, ApplyToPlan(c, uuid.New(), 100, now).Applicable)
	assert.True(t, ApplyToClass(c, uuid.New(), 15, now).Applicable)
}

func TestApply_SpecificClassScope(t *testing.T) {
	classID := uuid.New()
	c := activeCoupon(model.CouponDiscountFixed, 5)
	c.CouponApplicableTo = model.CouponApplicableSpecificClasses
	c.CouponSpecificClassIDs = []string{classID.String()}

	d := ApplyToClass(c, classID, 15, now)
	assert.True(t, d.Applicable)
	assert.InDelta(t, 10.0, d.DiscountedPrice, 1e-9)

	assert.False(t, ApplyToClass(c, uuid.New(), 15, now).Applicable)
}
