// file: internals/features/people/model/teacher_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// =========================================================
// MODEL — teachers & partners
// =========================================================

type Teacher struct {
	// PK
	TeacherID uuid.UUID `gorm:"column:teacher_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"teacher_id"`

	TeacherName  string `gorm:"column:teacher_name;type:varchar(120);not null" json:"teacher_name"`
	TeacherEmail string `gorm:"column:teacher_email;type:varchar(120);not null;uniqueIndex:uq_teacher_email" json:"teacher_email"`

	// Partner = studio co-owner; their classes are income, not expense
	TeacherIsPartner bool `gorm:"column:teacher_is_partner;not null;default:false;index:ix_teacher_is_partner" json:"teacher_is_partner"`

	// Payment scheme variant blob: {"type":"per_class"|"monthly"|"percentage",...}
	// NULL means no scheme configured (zero pay in payroll).
	TeacherPaymentDetails datatypes.JSON `gorm:"column:teacher_payment_details;type:jsonb" json:"teacher_payment_details,omitempty"`

	// Timestamps
	TeacherCreatedAt time.Time      `gorm:"column:teacher_created_at;not null;default:now()" json:"teacher_created_at"`
	TeacherUpdatedAt time.Time      `gorm:"column:teacher_updated_at;not null;default:now()" json:"teacher_updated_at"`
	TeacherDeletedAt gorm.DeletedAt `gorm:"column:teacher_deleted_at;index" json:"-"`
}

func (Teacher) TableName() string {
	return "teachers"
}

// =========================================================
// HOOKS
// =========================================================

func (m *Teacher) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.TeacherCreatedAt.IsZero() {
		m.TeacherCreatedAt = now
	}
	m.TeacherUpdatedAt = now
	return nil
}

func (m *Teacher) BeforeUpdate(tx *gorm.DB) (err error) {
	m.TeacherUpdatedAt = time.Now()
	return nil
}
