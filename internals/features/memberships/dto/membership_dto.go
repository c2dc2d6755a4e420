// file: internals/features/memberships/dto/membership_dto.go
package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/OscarGirao89/FusionArte-sub000/internals/features/memberships/model"
)

/* =======================================================
   MEMBERSHIP PLANS — DTO
======================================================= */

// Create
type MembershipPlanCreateDTO struct {
	MembershipPlanName       string `json:"membership_plan_name" validate:"required,max=120"`
	MembershipPlanAccessType string `json:"membership_plan_access_type" validate:"required,oneof=unlimited class_pack trial_class custom_pack course_pass"`
	MembershipPlanValidity   string `json:"membership_plan_validity_type" validate:"required,oneof=fixed monthly relative"`

	MembershipPlanStartDate *time.Time `json:"membership_plan_start_date,omitempty"`
	MembershipPlanEndDate   *time.Time `json:"membership_plan_end_date,omitempty"`

	MembershipPlanMonthlyStartType *string `json:"membership_plan_monthly_start_type,omitempty" validate:"omitempty,oneof=current_month next_month"`
	MembershipPlanValidityMonths   *int    `json:"membership_plan_validity_months,omitempty" validate:"omitempty,min=1"`

	MembershipPlanDurationUnit  *string `json:"membership_plan_duration_unit,omitempty" validate:"omitempty,oneof=days weeks months"`
	MembershipPlanDurationValue *int    `json:"membership_plan_duration_value,omitempty" validate:"omitempty,min=1"`

	MembershipPlanClassCount *int    `json:"membership_plan_class_count,omitempty" validate:"omitempty,min=1"`
	MembershipPlanPrice      float64 `json:"membership_plan_price" validate:"min=0"`

	MembershipPlanPriceTiers []model.PriceTier `json:"membership_plan_price_tiers,omitempty" validate:"omitempty,dive"`
}

// Update (partial)
type MembershipPlanUpdateDTO struct {
	MembershipPlanName *string `json:"membership_plan_name,omitempty" validate:"omitempty,max=120"`

	MembershipPlanStartDate *time.Time `json:"membership_plan_start_date,omitempty"`
	MembershipPlanEndDate   *time.Time `json:"membership_plan_end_date,omitempty"`

	MembershipPlanMonthlyStartType *string `json:"membership_plan_monthly_start_type,omitempty" validate:"omitempty,oneof=current_month next_month"`
	MembershipPlanValidityMonths   *int    `json:"membership_plan_validity_months,omitempty" validate:"omitempty,min=1"`

	MembershipPlanDurationUnit  *string `json:"membership_plan_duration_unit,omitempty" validate:"omitempty,oneof=days weeks months"`
	MembershipPlanDurationValue *int    `json:"membership_plan_duration_value,omitempty" validate:"omitempty,min=1"`

	MembershipPlanClassCount *int     `json:"membership_plan_class_count,omitempty" validate:"omitempty,min=1"`
	MembershipPlanPrice      *float64 `json:"membership_plan_price,omitempty" validate:"omitempty,min=0"`

	MembershipPlanPriceTiers []model.PriceTier `json:"membership_plan_price_tiers,omitempty" validate:"omitempty,dive"`
}

// Validity preview (purchase form)
type ValidityPreviewDTO struct {
	PurchasedAt        *time.Time `json:"purchased_at,omitempty"`
	ClassCountOverride *int       `json:"class_count_override,omitempty" validate:"omitempty,min=1"`
}

// Responses
type MembershipPlanResponse struct {
	MembershipPlanID         uuid.UUID `json:"membership_plan_id"`
	MembershipPlanName       string    `json:"membership_plan_name"`
	MembershipPlanAccessType string    `json:"membership_plan_access_type"`
	MembershipPlanValidity   string    `json:"membership_plan_validity_type"`

	MembershipPlanStartDate *time.Time `json:"membership_plan_start_date,omitempty"`
	MembershipPlanEndDate   *time.Time `json:"membership_plan_end_date,omitempty"`

	MembershipPlanMonthlyStartType *string `json:"membership_plan_monthly_start_type,omitempty"`
	MembershipPlanValidityMonths   *int    `json:"membership_plan_validity_months,omitempty"`

	MembershipPlanDurationUnit  *string `json:"membership_plan_duration_unit,omitempty"`
	MembershipPlanDurationValue *int    `json:"membership_plan_duration_value,omitempty"`

	MembershipPlanClassCount *int    `json:"membership_plan_class_count,omitempty"`
	MembershipPlanPrice      float64 `json:"membership_plan_price"`

	MembershipPlanPriceTiers []model.PriceTier `json:"membership_plan_price_tiers,omitempty"`

	MembershipPlanCreatedAt time.Time `json:"membership_plan_created_at"`
	MembershipPlanUpdatedAt time.Time `json:"membership_plan_updated_at"`
}

type StudentMembershipResponse struct {
	StudentMembershipID               uuid.UUID `json:"student_membership_id"`
	StudentMembershipUserID           uuid.UUID `json:"student_membership_user_id"`
	StudentMembershipPlanID           uuid.UUID `json:"student_membership_plan_id"`
	StudentMembershipStartDate        time.Time `json:"student_membership_start_date"`
	StudentMembershipEndDate          time.Time `json:"student_membership_end_date"`
	StudentMembershipClassesRemaining *int      `json:"student_membership_classes_remaining,omitempty"`
}

/* =======================================================
   MAPPERS
======================================================= */

func (in MembershipPlanCreateDTO) ToModel() (model.MembershipPlan, error) {
	m := model.MembershipPlan{
		MembershipPlanName:       in.MembershipPlanName,
		MembershipPlanAccessType: model.PlanAccessType(in.MembershipPlanAccessType),
		MembershipPlanValidity:   model.PlanValidityType(in.MembershipPlanValidity),
		MembershipPlanStartDate:  in.MembershipPlanStartDate,
		MembershipPlanEndDate:    in.MembershipPlanEndDate,
		MembershipPlanClassCount: in.MembershipPlanClassCount,
		MembershipPlanPrice:      in.MembershipPlanPrice,
	}
	if in.MembershipPlanMonthlyStartType != nil {
		t := model.MonthlyStartType(*in.MembershipPlanMonthlyStartType)
		m.MembershipPlanMonthlyStartType = &t
	}
	m.MembershipPlanValidityMonths = in.MembershipPlanValidityMonths
	if in.MembershipPlanDurationUnit != nil {
		u := model.DurationUnit(*in.MembershipPlanDurationUnit)
		m.MembershipPlanDurationUnit = &u
	}
	m.MembershipPlanDurationValue = in.MembershipPlanDurationValue

	if len(in.MembershipPlanPriceTiers) > 0 {
		raw, err := json.Marshal(in.MembershipPlanPriceTiers)
		if err != nil {
			return m, err
		}
		m.MembershipPlanPriceTiers = datatypes.JSON(raw)
	}
	return m, nil
}

func (in MembershipPlanUpdateDTO) Apply(m *model.MembershipPlan) error {
	if in.MembershipPlanName != nil {
		m.MembershipPlanName = *in.MembershipPlanName
	}
	if in.MembershipPlanStartDate != nil {
		m.MembershipPlanStartDate = in.MembershipPlanStartDate
	}
	if in.MembershipPlanEndDate != nil {
		m.MembershipPlanEndDate = in.MembershipPlanEndDate
	}
	if in.MembershipPlanMonthlyStartType != nil {
		t := model.MonthlyStartType(*in.MembershipPlanMonthlyStartType)
		m.MembershipPlanMonthlyStartType = &t
	}
	if in.MembershipPlanValidityMonths != nil {
		m.MembershipPlanValidityMonths = in.MembershipPlanValidityMonths
	}
	if in.MembershipPlanDurationUnit != nil {
		u := model.DurationUnit(*in.MembershipPlanDurationUnit)
		m.MembershipPlanDurationUnit = &u
	}
	if in.MembershipPlanDurationValue != nil {
		m.MembershipPlanDurationValue = in.MembershipPlanDurationValue
	}
	if in.MembershipPlanClassCount != nil {
		m.MembershipPlanClassCount = in.MembershipPlanClassCount
	}
	if in.MembershipPlanPrice != nil {
		m.MembershipPlanPrice = *in.MembershipPlanPrice
	}
	if len(in.MembershipPlanPriceTiers) > 0 {
		raw, err := json.Marshal(in.MembershipPlanPriceTiers)
		if err != nil {
			return err
		}
		m.MembershipPlanPriceTiers = datatypes.JSON(raw)
	}
	return nil
}

func ToMembershipPlanResponse(m model.MembershipPlan) MembershipPlanResponse {
	resp := MembershipPlanResponse{
		MembershipPlanID:             m.MembershipPlanID,
		MembershipPlanName:           m.MembershipPlanName,
		MembershipPlanAccessType:     string(m.MembershipPlanAccessType),
		MembershipPlanValidity:       string(m.MembershipPlanValidity),
		MembershipPlanStartDate:      m.MembershipPlanStartDate,
		MembershipPlanEndDate:        m.MembershipPlanEndDate,
		MembershipPlanValidityMonths: m.MembershipPlanValidityMonths,
		MembershipPlanDurationValue:  m.MembershipPlanDurationValue,
		MembershipPlanClassCount:     m.MembershipPlanClassCount,
		MembershipPlanPrice:          m.MembershipPlanPrice,
		MembershipPlanCreatedAt:      m.MembershipPlanCreatedAt,
		MembershipPlanUpdatedAt:      m.MembershipPlanUpdatedAt,
	}
	if m.MembershipPlanMonthlyStartType != nil {
		s := string(*m.MembershipPlanMonthlyStartType)
		resp.MembershipPlanMonthlyStartType = &s
	}
	if m.MembershipPlanDurationUnit != nil {
		s := string(*m.MembershipPlanDurationUnit)
		resp.MembershipPlanDurationUnit = &s
	}
	if len(m.MembershipPlanPriceTiers) > 0 {
		_ = json.Unmarshal(m.MembershipPlanPriceTiers, &resp.MembershipPlanPriceTiers)
	}
	return resp
}

func ToMembershipPlanResponses(ms []model.MembershipPlan) []MembershipPlanResponse {
	out := make([]MembershipPlanResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToMembershipPlanResponse(m))
	}
	return out
}

func ToStudentMembershipResponse(m model.StudentMembership) StudentMembershipResponse {
	return StudentMembershipResponse{
		StudentMembershipID:               m.StudentMembershipID,
		StudentMembershipUserID:           m.StudentMembershipUserID,
		StudentMembershipPlanID:           m.StudentMembershipPlanID,
		StudentMembershipStartDate:        m.StudentMembershipStartDate,
		StudentMembershipEndDate:          m.StudentMembershipEndDate,
		StudentMembershipClassesRemaining: m.StudentMembershipClassesRemaining,
	}
}
