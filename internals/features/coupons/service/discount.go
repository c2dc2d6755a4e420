// file: internals/features/coupons/service/discount.go
package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/OscarGirao89/FusionArte-sub000/internals/features/coupons/model"
)

// TargetKind distinguishes plan purchases from single-class purchases.
type TargetKind string

const (
	TargetPlan  TargetKind = "plan"
	TargetClass TargetKind = "class"
)

type Target struct {
	Kind TargetKind
	ID   uuid.UUID
}

// Discount is the resolver outcome. When Applicable is false the
// DiscountedPrice is the original price untouched.
type Discount struct {
	Applicable      bool    `json:"applicable"`
	DiscountedPrice float64 `json:"discounted_price"`
}

// Apply decides whether the coupon matches the target and computes the
// adjusted price. Pure: usage counting is done by the purchase flow,
// this only checks the limit.
func Apply(c model.Coupon, target Target, price float64, now time.Time) Discount {
	out := Discount{DiscountedPrice: price}

	if c.CouponStatus != model.CouponStatusActive {
		return out
	}
	if c.CouponExpirationDate != nil && c.CouponExpirationDate.Before(now) {
		return out
	}
	if c.CouponUsageLimit != nil && c.CouponUsageCount >= *c.CouponUsageLimit {
		return out
	}
	if !matchesScope(c, target) {
		return out
	}

	out.Applicable = true
	switch c.CouponDiscountType {
	case model.CouponDiscountPercentage:
		out.DiscountedPrice = price * (1 - c.CouponDiscountValue/100)
	case model.CouponDiscountFixed:
		out.DiscountedPrice = price - c.CouponDiscountValue
	}
	if out.DiscountedPrice < 0 {
		out.DiscountedPrice = 0 // floored, never negative
	}
	return out
}

// ApplyToPlan is the membership-purchase entry point.
func ApplyToPlan(c model.Coupon, planID uuid.UUID, price float64, now time.Time) Discount {
	return Apply(c, Target{Kind: TargetPlan, ID: planID}, price, now)
}

// ApplyToClass mirrors ApplyToPlan for drop-in class purchases.
func ApplyToClass(c model.Coupon, classID uuid.UUID, price float64, now time.Time) Discount {
	return Apply(c, Target{Kind: TargetClass, ID: classID}, price, now)
}

func matchesScope(c model.Coupon, target Target) bool {
	switch c.CouponApplicableTo {
	case model.CouponApplicableAllMemberships:
		return target.Kind == TargetPlan
	case model.CouponApplicableSpecificMemberships:
		return target.Kind == TargetPlan && containsID(c.CouponSpecificPlanIDs, target.ID)
	case model.CouponApplicableAllClasses:
		return target.Kind == TargetClass
	case model.CouponApplicableSpecificClasses:
		return target.Kind == TargetClass && containsID(c.CouponSpecificClassIDs, target.ID)
	}
	return false
}

func containsID(ids []string, id uuid.UUID) bool {
	s := id.String()
	for _, v := range ids {
		if v == s {
			return true
		}
	}
	return false
}
