// file: internals/features/payments/service/purchase.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	couponModel "github.com/OscarGirao89/FusionArte-sub000/internals/features/coupons/model"
	couponService "github.com/OscarGirao89/FusionArte-sub000/internals/features/coupons/service"
	membershipModel "github.com/OscarGirao89/FusionArte-sub000/internals/features/memberships/model"
	membershipService "github.com/OscarGirao89/FusionArte-sub000/internals/features/memberships/service"
	"github.com/OscarGirao89/FusionArte-sub000/internals/features/payments/model"
)

var (
	ErrPlanNotFound   = errors.New("membership plan not found")
	ErrCouponNotFound = errors.New("coupon not found")
)

// PurchaseInput is one membership purchase. Overrides serve custom
// packs priced by tier/slider at purchase time.
type PurchaseInput struct {
	StudentID          uuid.UUID
	PlanID             uuid.UUID
	TotalPriceOverride *float64
	ClassCountOverride *int
	CouponCode         *string
	PurchasedAt        time.Time // zero value means now
}

// PurchaseResult is the pair the transaction persists together.
type PurchaseResult struct {
	Invoice    model.StudentPayment              `json:"invoice"`
	Membership membershipModel.StudentMembership `json:"membership"`
	Coupon     *couponService.Discount           `json:"coupon,omitempty"`
}

type PurchaseService struct {
	DB *gorm.DB
}

// Purchase creates the invoice and (re)assigns the membership as one
// atomic unit: either both rows land or neither does. The prior
// membership row for the student is replaced, never appended; the
// unique index on student_membership_user_id serializes concurrent
// purchases for the same student.
func (s *PurchaseService) Purchase(ctx context.Context, in PurchaseInput) (PurchaseResult, error) {
	var out PurchaseResult

	purchasedAt := in.PurchasedAt
	if purchasedAt.IsZero() {
		purchasedAt = time.Now()
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1) load the plan
		var plan membershipModel.MembershipPlan
		if err := tx.First(&plan, "membership_plan_id = ?", in.PlanID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPlanNotFound
			}
			return err
		}

		// 2) final price: explicit override wins, then coupon, then plan price
		finalPrice := plan.MembershipPlanPrice
		if in.TotalPriceOverride != nil {
			finalPrice = *in.TotalPriceOverride
		}
		if in.CouponCode != nil {
			var coupon couponModel.Coupon
			if err := tx.First(&coupon, "coupon_code = ?", *in.CouponCode).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrCouponNotFound
				}
				return err
			}
			d := couponService.ApplyToPlan(coupon, plan.MembershipPlanID, finalPrice, purchasedAt)
			out.Coupon = &d
			if d.Applicable {
				finalPrice = d.DiscountedPrice
				if err := tx.Model(&couponModel.Coupon{}).
					Where("coupon_id = ?", coupon.CouponID).
					UpdateColumn("coupon_usage_count", gorm.Expr("coupon_usage_count + 1")).Error; err != nil {
					return err
				}
			}
		}

		// 3) invoice, pending with nothing paid yet
		invoice := model.StudentPayment{
			StudentPaymentStudentID:   in.StudentID,
			StudentPaymentPlanID:      plan.MembershipPlanID,
			StudentPaymentTotalAmount: finalPrice,
			StudentPaymentAmountPaid:  0,
			StudentPaymentAmountDue:   finalPrice,
			StudentPaymentStatus:      model.StudentPaymentStatusPending,
			StudentPaymentInvoiceDate: purchasedAt,
		}
		if err := tx.Create(&invoice).Error; err != nil {
			return err
		}

		// 4) replace any prior membership row for this student
		if err := tx.Where("student_membership_user_id = ?", in.StudentID).
			Delete(&membershipModel.StudentMembership{}).Error; err != nil {
			return err
		}

		// 5) resolve the validity window and insert the new row
		validity, err := membershipService.ResolveValidity(plan, purchasedAt, in.ClassCountOverride)
		if err != nil {
			return err
		}
		membership := membershipModel.StudentMembership{
			StudentMembershipUserID:           in.StudentID,
			StudentMembershipPlanID:           plan.MembershipPlanID,
			StudentMembershipStartDate:        validity.StartDate,
			StudentMembershipEndDate:          validity.EndDate,
			StudentMembershipClassesRemaining: validity.ClassesRemaining,
		}
		if err := tx.Create(&membership).Error; err != nil {
			return err
		}

		out.Invoice = invoice
		out.Membership = membership
		return nil
	})
	if err != nil {
		return PurchaseResult{}, err
	}
	return out, nil
}
