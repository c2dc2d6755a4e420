// file: internals/features/memberships/model/membership_plan_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// =========================================================
// ENUMS — access & validity
// =========================================================

type PlanAccessType string

const (
	PlanAccessUnlimited  PlanAccessType = "unlimited"
	PlanAccessClassPack  PlanAccessType = "class_pack"
	PlanAccessTrialClass PlanAccessType = "trial_class"
	PlanAccessCustomPack PlanAccessType = "custom_pack"
	PlanAccessCoursePass PlanAccessType = "course_pass"
)

type PlanValidityType string

const (
	PlanValidityFixed    PlanValidityType = "fixed"
	PlanValidityMonthly  PlanValidityType = "monthly"
	PlanValidityRelative PlanValidityType = "relative"
)

type MonthlyStartType string

const (
	MonthlyStartCurrentMonth MonthlyStartType = "current_month"
	MonthlyStartNextMonth    MonthlyStartType = "next_month"
)

type DurationUnit string

const (
	DurationUnitDays   DurationUnit = "days"
	DurationUnitWeeks  DurationUnit = "weeks"
	DurationUnitMonths DurationUnit = "months"
)

// =========================================================
// MODEL
// =========================================================

type MembershipPlan struct {
	// PK
	MembershipPlanID uuid.UUID `gorm:"column:membership_plan_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"membership_plan_id"`

	MembershipPlanName       string           `gorm:"column:membership_plan_name;type:varchar(120);not null" json:"membership_plan_name"`
	MembershipPlanAccessType PlanAccessType   `gorm:"column:membership_plan_access_type;type:varchar(20);not null" json:"membership_plan_access_type"`
	MembershipPlanValidity   PlanValidityType `gorm:"column:membership_plan_validity_type;type:varchar(20);not null" json:"membership_plan_validity_type"`

	// fixed validity
	MembershipPlanStartDate *time.Time `gorm:"column:membership_plan_start_date" json:"membership_plan_start_date,omitempty"`
	MembershipPlanEndDate   *time.Time `gorm:"column:membership_plan_end_date" json:"membership_plan_end_date,omitempty"`

	// monthly validity
	MembershipPlanMonthlyStartType *MonthlyStartType `gorm:"column:membership_plan_monthly_start_type;type:varchar(20)" json:"membership_plan_monthly_start_type,omitempty"`
	MembershipPlanValidityMonths   *int              `gorm:"column:membership_plan_validity_months" json:"membership_plan_validity_months,omitempty"`

	// relative validity
	MembershipPlanDurationUnit  *DurationUnit `gorm:"column:membership_plan_duration_unit;type:varchar(10)" json:"membership_plan_duration_unit,omitempty"`
	MembershipPlanDurationValue *int          `gorm:"column:membership_plan_duration_value" json:"membership_plan_duration_value,omitempty"`

	// balance & pricing
	MembershipPlanClassCount *int    `gorm:"column:membership_plan_class_count" json:"membership_plan_class_count,omitempty"`
	MembershipPlanPrice      float64 `gorm:"column:membership_plan_price;not null;default:0" json:"membership_plan_price"`

	// custom_pack: ordered tiers [{"class_count":5,"price":60},...]
	MembershipPlanPriceTiers datatypes.JSON `gorm:"column:membership_plan_price_tiers;type:jsonb" json:"membership_plan_price_tiers,omitempty"`

	// Timestamps
	MembershipPlanCreatedAt time.Time      `gorm:"column:membership_plan_created_at;not null;default:now()" json:"membership_plan_created_at"`
	MembershipPlanUpdatedAt time.Time      `gorm:"column:membership_plan_updated_at;not null;default:now()" json:"membership_plan_updated_at"`
	MembershipPlanDeletedAt gorm.DeletedAt `gorm:"column:membership_plan_deleted_at;index" json:"-"`
}

func (MembershipPlan) TableName() string {
	return "membership_plans"
}

// PriceTier is one row of the custom_pack tier table.
type PriceTier struct {
	ClassCount int     `json:"class_count"`
	Price      float64 `json:"price"`
}

// =========================================================
// HOOKS
// =========================================================

func (m *MembershipPlan) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.MembershipPlanCreatedAt.IsZero() {
		m.MembershipPlanCreatedAt = now
	}
	m.MembershipPlanUpdatedAt = now
	return nil
}

func (m *MembershipPlan) BeforeUpdate(tx *gorm.DB) (err error) {
	m.MembershipPlanUpdatedAt = time.Now()
	return nil
}
