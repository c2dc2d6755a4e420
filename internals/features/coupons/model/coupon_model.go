// file: internals/features/coupons/model/coupon_model.go
package model

import (
	"time"

	"github.com/lib/pq"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// =========================================================
// ENUMS
// =========================================================

type CouponDiscountType string

const (
	CouponDiscountPercentage CouponDiscountType = "percentage"
	CouponDiscountFixed      CouponDiscountType = "fixed"
)

type CouponApplicableTo string

const (
	CouponApplicableAllMemberships      CouponApplicableTo = "all_memberships"
	CouponApplicableSpecificMemberships CouponApplicableTo = "specific_memberships"
	CouponApplicableAllClasses          CouponApplicableTo = "all_classes"
	CouponApplicableSpecificClasses     CouponApplicableTo = "specific_classes"
)

type CouponStatus string

const (
	CouponStatusActive   CouponStatus = "active"
	CouponStatusInactive CouponStatus = "inactive"
)

// =========================================================
// MODEL
// =========================================================

type Coupon struct {
	// PK
	CouponID uuid.UUID `gorm:"column:coupon_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"coupon_id"`

	CouponCode string `gorm:"column:coupon_code;type:varchar(40);not null;uniqueIndex:uq_coupon_code" json:"coupon_code"`

	CouponDiscountType  CouponDiscountType `gorm:"column:coupon_discount_type;type:varchar(20);not null" json:"coupon_discount_type"`
	CouponDiscountValue float64            `gorm:"column:coupon_discount_value;not null;check:coupon_discount_value>=0" json:"coupon_discount_value"`

	CouponApplicableTo CouponApplicableTo `gorm:"column:coupon_applicable_to;type:varchar(30);not null;default:'all_memberships'" json:"coupon_applicable_to"`

	// uuid strings; only read for the specific_* scopes
	CouponSpecificPlanIDs  pq.StringArray `gorm:"column:coupon_specific_plan_ids;type:text[]" json:"coupon_specific_plan_ids,omitempty"`
	CouponSpecificClassIDs pq.StringArray `gorm:"column:coupon_specific_class_ids;type:text[]" json:"coupon_specific_class_ids,omitempty"`

	CouponStatus         CouponStatus `gorm:"column:coupon_status;type:varchar(20);not null;default:'active';index:ix_coupon_status" json:"coupon_status"`
	CouponExpirationDate *time.Time   `gorm:"column:coupon_expiration_date" json:"coupon_expiration_date,omitempty"`

	CouponUsageLimit *int `gorm:"column:coupon_usage_limit" json:"coupon_usage_limit,omitempty"`
	CouponUsageCount int  `gorm:"column:coupon_usage_count;not null;default:0" json:"coupon_usage_count"`

	// Timestamps
	CouponCreatedAt time.Time      `gorm:"column:coupon_created_at;not null;default:now()" json:"coupon_created_at"`
	CouponUpdatedAt time.Time      `gorm:"column:coupon_updated_at;not null;default:now()" json:"coupon_updated_at"`
	CouponDeletedAt gorm.DeletedAt `gorm:"column:coupon_deleted_at;index" json:"-"`
}

func (Coupon) TableName() string {
	return "coupons"
}

// =========================================================
// HOOKS
// =========================================================

func (m *Coupon) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.CouponCreatedAt.IsZero() {
		m.CouponCreatedAt = now
	}
	m.CouponUpdatedAt = now
	return nil
}

func (m *Coupon) BeforeUpdate(tx *gorm.DB) (err error) {
	m.CouponUpdatedAt = time.Now()
	return nil
}
