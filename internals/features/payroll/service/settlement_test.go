// file: internals/features/payroll/service/settlement_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completedClass(minutes int, teachers ...uuid.UUID) Class {
	if len(teachers) == 0 {
		teachers = []uuid.UUID{uuid.New()}
	}
	return Class{
		ID:              uuid.New(),
		Name:            "Salsa Intermedio",
		Type:            ClassTypeRecurring,
		TeacherIDs:      teachers,
		DurationMinutes: minutes,
		Status:          ClassStatusCompleted,
	}
}

func TestStudioExpenses_PerClassCompletedPaysDurationTimesRate(t *testing.T) {
	p := Person{ID: uuid.New(), Name: "Lucía", Scheme: PerClassScheme{PayRate: 30, CancelledClassPay: 10}}

	got := SettleStudioExpenses(p, []Class{completedClass(90)})

	require.Len(t, got.Lines, 1)
	assert.InDelta(t, 45.0, got.Lines[0].Amount, 1e-9) // 90/60 * 30
	assert.InDelta(t, 45.0, got.Total, 1e-9)
	assert.False(t, got.MonthlyOverride)
	assert.False(t, got.NoScheme)
}

func TestStudioExpenses_ScheduledAndCancelledTeacherPayNothing(t *testing.T) {
	p := Person{ID: uuid.New(), Scheme: PerClassScheme{PayRate: 30, CancelledClassPay: 10}}

	for _, status := range []ClassStatus{ClassStatusScheduled, ClassStatusCancelledTeacher} {
		cl := completedClass(60)
		cl.Status = status
		got := SettleStudioExpenses(p, []Class{cl})
		assert.Zero(t, got.Total, "status %s must not pay", status)
	}
}

func TestStudioExpenses_CancelledLowAttendancePaysFlat(t *testing.T) {
	p := Person{ID: uuid.New(), Scheme: PerClassScheme{PayRate: 25, CancelledClassPay: 10}}

	done := completedClass(60)
	cancelled := completedClass(60)
	cancelled.Status = ClassStatusCancelledLowAttendance

	got := SettleStudioExpenses(p, []Class{done, cancelled})

	// 25 for the completed hour + 10 flat for the cancelled one
	assert.InDelta(t, 35.0, got.Total, 1e-9)
}

func TestStudioExpenses_MonthlySalaryOverridesClassCount(t *testing.T) {
	p := Person{ID: uuid.New(), Scheme: MonthlyScheme{MonthlySalary: 1200}}

	got := SettleStudioExpenses(p, []Class{completedClass(60), completedClass(60), completedClass(60)})

	assert.True(t, got.MonthlyOverride)
	assert.InDelta(t, 1200.0, got.Total, 1e-9)
	assert.Empty(t, got.Lines)
}

func TestStudioExpenses_NoSchemeIsZeroButFlagged(t *testing.T) {
	p := Person{ID: uuid.New()}

	got := SettleStudioExpenses(p, []Class{completedClass(60)})

	assert.True(t, got.NoScheme)
	assert.Zero(t, got.Total)
}

func TestPartnerIncome_SplitsIndividualAndSharedBuckets(t *testing.T) {
	partner := Person{ID: uuid.New(), IsPartner: true, Scheme: PerClassScheme{PayRate: 40, CancelledClassPay: 15}}
	co := uuid.New()

	solo := completedClass(60, partner.ID)
	shared := completedClass(60, partner.ID, co)

	got := SettlePartnerIncome(partner, []Class{solo, shared})

	assert.InDelta(t, 40.0, got.IndividualIncome, 1e-9)
	assert.InDelta(t, 20.0, got.SharedIncome, 1e-9) // 40 split two ways
	assert.InDelta(t, 60.0, got.Total, 1e-9)
}

func TestPartnerIncome_SharedSharesSumToUndividedPay(t *testing.T) {
	rate := 37.5
	co := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	cl := completedClass(75, co...)

	var sum float64
	for _, id := range co {
		p := Person{ID: id, IsPartner: true, Scheme: PerClassScheme{PayRate: rate}}
		s := SettlePartnerIncome(p, []Class{cl})
		sum += s.Total
	}

	undivided := float64(cl.DurationMinutes) / 60.0 * rate
	assert.InDelta(t, undivided, sum, 1e-9)
}

func TestPartnerIncome_ZeroTeacherSessionDoesNotDivideByZero(t *testing.T) {
	partner := Person{ID: uuid.New(), IsPartner: true, Scheme: PerClassScheme{PayRate: 40}}
	cl := completedClass(60)
	cl.TeacherIDs = nil

	got := SettlePartnerIncome(partner, []Class{cl})

	require.Len(t, got.Lines, 1)
	assert.Equal(t, 1, got.Lines[0].NumTeachers)
	assert.InDelta(t, 40.0, got.Total, 1e-9)
}

func TestPartnerIncome_FixedWorkshopSplitsSessionValue(t *testing.T) {
	partner := Person{ID: uuid.New(), IsPartner: true, Scheme: PerClassScheme{PayRate: 40}}
	cl := completedClass(120, partner.ID, uuid.New())
	cl.Type = ClassTypeWorkshop
	cl.WorkshopPaymentType = WorkshopPaymentFixed
	cl.WorkshopPaymentValue = 200

	got := SettlePartnerIncome(partner, []Class{cl})

	// workshop policy wins over the partner's own scheme
	assert.InDelta(t, 100.0, got.SharedIncome, 1e-9)
	assert.InDelta(t, 100.0, got.Total, 1e-9)
}

func TestPartnerIncome_PercentageWorkshopIsRateOnlyAndExcludedFromTotals(t *testing.T) {
	partner := Person{ID: uuid.New(), IsPartner: true, Scheme: PerClassScheme{PayRate: 40}}
	cl := completedClass(120, partner.ID)
	cl.Type = ClassTypeWorkshop
	cl.WorkshopPaymentType = WorkshopPaymentPercentage
	cl.WorkshopPaymentValue = 35

	got := SettlePartnerIncome(partner, []Class{cl})

	require.Len(t, got.Lines, 1)
	assert.True(t, got.Lines[0].RateOnly)
	assert.InDelta(t, 35.0, got.Lines[0].RatePercent, 1e-9)
	assert.Zero(t, got.Total)
}

func TestPartnerIncome_PercentageSchemeRegularClassReportsRateOnly(t *testing.T) {
	// The engine knows no revenue base for the percentage scheme, so a
	// completed regular class yields a rate-only line, never an amount.
	partner := Person{ID: uuid.New(), IsPartner: true, Scheme: PercentageScheme{PayRate: 50, CancelledClassPay: 12}}

	done := completedClass(90, partner.ID)
	cancelled := completedClass(60, partner.ID)
	cancelled.Status = ClassStatusCancelledLowAttendance

	got := SettlePartnerIncome(partner, []Class{done, cancelled})

	require.Len(t, got.Lines, 2)
	assert.True(t, got.Lines[0].RateOnly)
	assert.InDelta(t, 50.0, got.Lines[0].RatePercent, 1e-9)
	// cancelled-class pay is absolute and still counted
	assert.InDelta(t, 12.0, got.Total, 1e-9)
}

func TestPartnerIncome_MonthlySchemeOverridesBuckets(t *testing.T) {
	partner := Person{ID: uuid.New(), IsPartner: true, Scheme: MonthlyScheme{MonthlySalary: 2000}}

	got := SettlePartnerIncome(partner, []Class{completedClass(60, partner.ID)})

	assert.True(t, got.MonthlyOverride)
	assert.InDelta(t, 2000.0, got.Total, 1e-9)
	assert.Zero(t, got.IndividualIncome)
	assert.Zero(t, got.SharedIncome)
}

func TestDecodeScheme_Variants(t *testing.T) {
	s, err := DecodeScheme([]byte(`{"type":"per_class","pay_rate":25,"cancelled_class_pay":10}`))
	require.NoError(t, err)
	pc, ok := s.(PerClassScheme)
	require.True(t, ok)
	assert.InDelta(t, 25.0, pc.PayRate, 1e-9)
	assert.InDelta(t, 10.0, pc.CancelledClassPay, 1e-9)

	s, err = DecodeScheme([]byte(`{"type":"monthly","monthly_salary":1500}`))
	require.NoError(t, err)
	m, ok := s.(MonthlyScheme)
	require.True(t, ok)
	assert.InDelta(t, 1500.0, m.MonthlySalary, 1e-9)

	s, err = DecodeScheme([]byte(`{"type":"percentage","pay_rate":60}`))
	require.NoError(t, err)
	_, ok = s.(PercentageScheme)
	assert.True(t, ok)
}

func TestDecodeScheme_EmptyMeansNoScheme(t *testing.T) {
	for _, raw := range [][]byte{nil, []byte(""), []byte("null"), []byte("{}")} {
		s, err := DecodeScheme(raw)
		require.NoError(t, err)
		assert.Nil(t, s)
	}
}

func TestDecodeScheme_UnknownTypeErrors(t *testing.T) {
	_, err := DecodeScheme([]byte(`{"type":"per_show"}`))
	assert.ErrorIs(t, err, ErrUnknownScheme)
}

func TestEncodeScheme_RoundTrip(t *testing.T) {
	in := PerClassScheme{PayRate: 25, CancelledClassPay: 10}
	raw, err := EncodeScheme(in)
	require.NoError(t, err)
	out, err := DecodeScheme(raw)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
