// file: internals/features/memberships/model/student_membership_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// =========================================================
// MODEL — at most one active membership per student.
// The unique index on user_id enforces the single-row
// constraint at the storage layer, not just in app logic.
// =========================================================

type StudentMembership struct {
	// PK
	StudentMembershipID uuid.UUID `gorm:"column:student_membership_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"student_membership_id"`

	// FK → users(user_id) — unique: one membership row per student
	StudentMembershipUserID uuid.UUID `gorm:"column:student_membership_user_id;type:uuid;not null;uniqueIndex:uq_student_membership_user" json:"student_membership_user_id"`

	// FK → membership_plans(membership_plan_id)
	StudentMembershipPlanID uuid.UUID `gorm:"column:student_membership_plan_id;type:uuid;not null;index" json:"student_membership_plan_id"`

	StudentMembershipStartDate time.Time `gorm:"column:student_membership_start_date;not null" json:"student_membership_start_date"`
	StudentMembershipEndDate   time.Time `gorm:"column:student_membership_end_date;not null" json:"student_membership_end_date"`

	// NULL for unlimited / course_pass plans
	StudentMembershipClassesRemaining *int `gorm:"column:student_membership_classes_remaining" json:"student_membership_classes_remaining,omitempty"`

	// Timestamps
	StudentMembershipCreatedAt time.Time `gorm:"column:student_membership_created_at;not null;default:now()" json:"student_membership_created_at"`
	StudentMembershipUpdatedAt time.Time `gorm:"column:student_membership_updated_at;not null;default:now()" json:"student_membership_updated_at"`
}

func (StudentMembership) TableName() string {
	return "student_memberships"
}

// =========================================================
// HOOKS
// =========================================================

func (m *StudentMembership) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.StudentMembershipCreatedAt.IsZero() {
		m.StudentMembershipCreatedAt = now
	}
	m.StudentMembershipUpdatedAt = now
	return nil
}

func (m *StudentMembership) BeforeUpdate(tx *gorm.DB) (err error) {
	m.StudentMembershipUpdatedAt = time.Now()
	return nil
}
