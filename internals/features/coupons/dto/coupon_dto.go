// file: internals/features/coupons/dto/coupon_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/OscarGirao89/FusionArte-sub000/internals/features/coupons/model"
)

/* =======================================================
   COUPONS — DTO
======================================================= */

// Create
type CouponCreateDTO struct {
	CouponCode          string  `json:"coupon_code" validate:"required,max=40"`
	CouponDiscountType  string  `json:"coupon_discount_type" validate:"required,oneof=percentage fixed"`
	CouponDiscountValue float64 `json:"coupon_discount_value" validate:"min=0"`

	CouponApplicableTo string `json:"coupon_applicable_to" validate:"required,oneof=all_memberships specific_memberships all_classes specific_classes"`

	CouponSpecificPlanIDs  []uuid.UUID `json:"coupon_specific_plan_ids,omitempty"`
	CouponSpecificClassIDs []uuid.UUID `json:"coupon_specific_class_ids,omitempty"`

	CouponExpirationDate *time.Time `json:"coupon_expiration_date,omitempty"`
	CouponUsageLimit     *int       `json:"coupon_usage_limit,omitempty" validate:"omitempty,min=1"`
}

// Update (partial)
type CouponUpdateDTO struct {
	CouponDiscountType  *string  `json:"coupon_discount_type,omitempty" validate:"omitempty,oneof=percentage fixed"`
	CouponDiscountValue *float64 `json:"coupon_discount_value,omitempty" validate:"omitempty,min=0"`

	CouponApplicableTo *string `json:"coupon_applicable_to,omitempty" validate:"omitempty,oneof=all_memberships specific_memberships all_classes specific_classes"`

	CouponSpecificPlanIDs  []uuid.UUID `json:"coupon_specific_plan_ids,omitempty"`
	CouponSpecificClassIDs []uuid.UUID `json:"coupon_specific_class_ids,omitempty"`

	CouponStatus         *string    `json:"coupon_status,omitempty" validate:"omitempty,oneof=active inactive"`
	CouponExpirationDate *time.Time `json:"coupon_expiration_date,omitempty"`
	CouponUsageLimit     *int       `json:"coupon_usage_limit,omitempty" validate:"omitempty,min=1"`
}

// Validate request (POST /coupons/validate)
type CouponValidateDTO struct {
	CouponCode string    `json:"coupon_code" validate:"required,max=40"`
	TargetKind string    `json:"target_kind" validate:"required,oneof=plan class"`
	TargetID   uuid.UUID `json:"target_id" validate:"required"`
	Price      float64   `json:"price" validate:"min=0"`
}

// Response
type CouponResponse struct {
	CouponID            uuid.UUID `json:"coupon_id"`
	CouponCode          string    `json:"coupon_code"`
	CouponDiscountType  string    `json:"coupon_discount_type"`
	CouponDiscountValue float64   `json:"coupon_discount_value"`
	CouponApplicableTo  string    `json:"coupon_applicable_to"`

	CouponSpecificPlanIDs  []string `json:"coupon_specific_plan_ids,omitempty"`
	CouponSpecificClassIDs []string `json:"coupon_specific_class_ids,omitempty"`

	CouponStatus         string     `json:"coupon_status"`
	CouponExpirationDate *time.Time `json:"coupon_expiration_date,omitempty"`
	CouponUsageLimit     *int       `json:"coupon_usage_limit,omitempty"`
	CouponUsageCount     int        `json:"coupon_usage_count"`

	CouponCreatedAt time.Time `json:"coupon_created_at"`
	CouponUpdatedAt time.Time `json:"coupon_updated_at"`
}

/* =======================================================
   MAPPERS
======================================================= */

func (in CouponCreateDTO) ToModel() model.Coupon {
	return model.Coupon{
		CouponCode:             in.CouponCode,
		CouponDiscountType:     model.CouponDiscountType(in.CouponDiscountType),
		CouponDiscountValue:    in.CouponDiscountValue,
		CouponApplicableTo:     model.CouponApplicableTo(in.CouponApplicableTo),
		CouponSpecificPlanIDs:  uuidsToStrings(in.CouponSpecificPlanIDs),
		CouponSpecificClassIDs: uuidsToStrings(in.CouponSpecificClassIDs),
		CouponStatus:           model.CouponStatusActive,
		CouponExpirationDate:   in.CouponExpirationDate,
		CouponUsageLimit:       in.CouponUsageLimit,
	}
}

func (in CouponUpdateDTO) Apply(m *model.Coupon) {
	if in.CouponDiscountType != nil {
		m.CouponDiscountType = model.CouponDiscountType(*in.CouponDiscountType)
	}
	if in.CouponDiscountValue != nil {
		m.CouponDiscountValue = *in.CouponDiscountValue
	}
	if in.CouponApplicableTo != nil {
		m.CouponApplicableTo = model.CouponApplicableTo(*in.CouponApplicableTo)
	}
	if len(in.CouponSpecificPlanIDs) > 0 {
		m.CouponSpecificPlanIDs = uuidsToStrings(in.CouponSpecificPlanIDs)
	}
	if len(in.CouponSpecificClassIDs) > 0 {
		m.CouponSpecificClassIDs = uuidsToStrings(in.CouponSpecificClassIDs)
	}
	if in.CouponStatus != nil {
		m.CouponStatus = model.CouponStatus(*in.CouponStatus)
	}
	if in.CouponExpirationDate != nil {
		m.CouponExpirationDate = in.CouponExpirationDate
	}
	if in.CouponUsageLimit != nil {
		m.CouponUsageLimit = in.CouponUsageLimit
	}
}

func ToCouponResponse(m model.Coupon) CouponResponse {
	return CouponResponse{
		CouponID:               m.CouponID,
		CouponCode:             m.CouponCode,
		CouponDiscountType:     string(m.CouponDiscountType),
		CouponDiscountValue:    m.CouponDiscountValue,
		CouponApplicableTo:     string(m.CouponApplicableTo),
		CouponSpecificPlanIDs:  []string(m.CouponSpecificPlanIDs),
		CouponSpecificClassIDs: []string(m.CouponSpecificClassIDs),
		CouponStatus:           string(m.CouponStatus),
		CouponExpirationDate:   m.CouponExpirationDate,
		CouponUsageLimit:       m.CouponUsageLimit,
		CouponUsageCount:       m.CouponUsageCount,
		CouponCreatedAt:        m.CouponCreatedAt,
		CouponUpdatedAt:        m.CouponUpdatedAt,
	}
}

func ToCouponResponses(ms []model.Coupon) []CouponResponse {
	out := make([]CouponResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToCouponResponse(m))
	}
	return out
}

func uuidsToStrings(ids []uuid.UUID) pq.StringArray {
	if len(ids) == 0 {
		return nil
	}
	out := make(pq.StringArray, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}
