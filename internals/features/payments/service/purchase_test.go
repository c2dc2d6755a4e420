// file: internals/features/payments/service/purchase_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 conn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: gormLogger.Default.LogMode(gormLogger.Silent)})
	require.NoError(t, err)
	return db, mock
}

func planRows(planID uuid.UUID) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"membership_plan_id",
		"membership_plan_name",
		"membership_plan_access_type",
		"membership_plan_validity_type",
		"membership_plan_duration_unit",
		"membership_plan_duration_value",
		"membership_plan_class_count",
		"membership_plan_price",
	}).AddRow(planID.String(), "Bono 10 clases", "class_pack", "relative", "days", 30, 10, 90.0)
}

func TestPurchase_MembershipInsertFailureRollsBackInvoice(t *testing.T) {
	db, mock := newMockDB(t)
	svc := &PurchaseService{DB: db}

	studentID, planID := uuid.New(), uuid.New()
	boom := errors.New("membership insert refused")

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "membership_plans"`).WillReturnRows(planRows(planID))
	mock.ExpectQuery(`INSERT INTO "student_payments"`).
		WillReturnRows(sqlmock.NewRows([]string{"student_payment_id"}).AddRow(uuid.New().String()))
	mock.ExpectExec(`DELETE FROM "student_memberships"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "student_memberships"`).WillReturnError(boom)
	mock.ExpectRollback()

	_, err := svc.Purchase(context.Background(), PurchaseInput{
		StudentID:   studentID,
		PlanID:      planID,
		PurchasedAt: time.Date(2024, time.July, 1, 10, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, boom)
	// no commit expectation: ExpectationsWereMet proves the whole
	// transaction rolled back and the invoice never survived
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPurchase_InvoiceInsertFailureWritesNothingElse(t *testing.T) {
	db, mock := newMockDB(t)
	svc := &PurchaseService{DB: db}

	planID := uuid.New()
	boom := errors.New("invoice insert refused")

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "membership_plans"`).WillReturnRows(planRows(planID))
	mock.ExpectQuery(`INSERT INTO "student_payments"`).WillReturnError(boom)
	mock.ExpectRollback()

	_, err := svc.Purchase(context.Background(), PurchaseInput{
		StudentID:   uuid.New(),
		PlanID:      planID,
		PurchasedAt: time.Date(2024, time.July, 1, 10, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPurchase_MissingPlanAbortsBeforeAnyWrite(t *testing.T) {
	db, mock := newMockDB(t)
	svc := &PurchaseService{DB: db}

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "membership_plans"`).WillReturnError(gorm.ErrRecordNotFound)
	mock.ExpectRollback()

	_, err := svc.Purchase(context.Background(), PurchaseInput{
		StudentID:   uuid.New(),
		PlanID:      uuid.New(),
		PurchasedAt: time.Date(2024, time.July, 1, 10, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrPlanNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPurchase_HappyPathReplacesMembershipAtomically(t *testing.T) {
	db, mock := newMockDB(t)
	svc := &PurchaseService{DB: db}

	studentID, planID := uuid.New(), uuid.New()
	purchasedAt := time.Date(2024, time.July, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "membership_plans"`).WillReturnRows(planRows(planID))
	mock.ExpectQuery(`INSERT INTO "student_payments"`).
		WillReturnRows(sqlmock.NewRows([]string{"student_payment_id"}).AddRow(uuid.New().String()))
	mock.ExpectExec(`DELETE FROM "student_memberships"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "student_memberships"`).
		WillReturnRows(sqlmock.NewRows([]string{"student_membership_id"}).AddRow(uuid.New().String()))
	mock.ExpectCommit()

	got, err := svc.Purchase(context.Background(), PurchaseInput{
		StudentID:   studentID,
		PlanID:      planID,
		PurchasedAt: purchasedAt,
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())

	// invoice starts pending with everything due
	assert.InDelta(t, 90.0, got.Invoice.StudentPaymentTotalAmount, 1e-9)
	assert.Zero(t, got.Invoice.StudentPaymentAmountPaid)
	assert.InDelta(t, 90.0, got.Invoice.StudentPaymentAmountDue, 1e-9)

	// 30-day relative validity + class-pack balance from the plan
	assert.Equal(t, purchasedAt, got.Membership.StudentMembershipStartDate)
	assert.Equal(t, purchasedAt.AddDate(0, 0, 30), got.Membership.StudentMembershipEndDate)
	require.NotNil(t, got.Membership.StudentMembershipClassesRemaining)
	assert.Equal(t, 10, *got.Membership.StudentMembershipClassesRemaining)
}

func TestPurchase_PriceOverrideForCustomPacks(t *testing.T) {
	db, mock := newMockDB(t)
	svc := &PurchaseService{DB: db}

	planID := uuid.New()
	override := 65.0
	count := 7

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "membership_plans"`).WillReturnRows(planRows(planID))
	mock.ExpectQuery(`INSERT INTO "student_payments"`).
		WillReturnRows(sqlmock.NewRows([]string{"student_payment_id"}).AddRow(uuid.New().String()))
	mock.ExpectExec(`DELETE FROM "student_memberships"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`INSERT INTO "student_memberships"`).
		WillReturnRows(sqlmock.NewRows([]string{"student_membership_id"}).AddRow(uuid.New().String()))
	mock.ExpectCommit()

	got, err := svc.Purchase(context.Background(), PurchaseInput{
		StudentID:          uuid.New(),
		PlanID:             planID,
		TotalPriceOverride: &override,
		ClassCountOverride: &count,
		PurchasedAt:        time.Date(2024, time.July, 1, 10, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.InDelta(t, 65.0, got.Invoice.StudentPaymentTotalAmount, 1e-9)
	require.NotNil(t, got.Membership.StudentMembershipClassesRemaining)
	assert.Equal(t, 7, *got.Membership.StudentMembershipClassesRemaining)
}
