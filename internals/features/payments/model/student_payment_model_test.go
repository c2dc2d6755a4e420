// file: internals/features/payments/model/student_payment_model_test.go
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func invoice(total float64) StudentPayment {
	return StudentPayment{
		StudentPaymentTotalAmount: total,
		StudentPaymentAmountDue:   total,
		StudentPaymentStatus:      StudentPaymentStatusPending,
	}
}

func TestSetAmountPaid_KeepsPaidPlusDueEqualToTotal(t *testing.T) {
	inv := invoice(100)

	for _, paid := range []float64{0, 25.5, 60, 100} {
		require.NoError(t, inv.SetAmountPaid(paid))
		assert.InDelta(t, 100.0, inv.StudentPaymentAmountPaid+inv.StudentPaymentAmountDue, 1e-9)
		assert.LessOrEqual(t, inv.StudentPaymentAmountPaid, inv.StudentPaymentTotalAmount)
	}
}

func TestSetAmountPaid_RejectsOverpaymentWithoutClamping(t *testing.T) {
	inv := invoice(100)

	err := inv.SetAmountPaid(120)

	assert.ErrorIs(t, err, ErrInvalidAmount)
	// untouched on rejection
	assert.Zero(t, inv.StudentPaymentAmountPaid)
	assert.InDelta(t, 100.0, inv.StudentPaymentAmountDue, 1e-9)
}

func TestSetAmountPaid_RejectsNegativeAmount(t *testing.T) {
	inv := invoice(100)
	assert.ErrorIs(t, inv.SetAmountPaid(-1), ErrInvalidAmount)
}

func TestSetAmountPaid_DerivesStatus(t *testing.T) {
	inv := invoice(100)

	require.NoError(t, inv.SetAmountPaid(0))
	assert.Equal(t, StudentPaymentStatusPending, inv.StudentPaymentStatus)

	require.NoError(t, inv.SetAmountPaid(40))
	assert.Equal(t, StudentPaymentStatusDeposit, inv.StudentPaymentStatus)

	require.NoError(t, inv.SetAmountPaid(100))
	assert.Equal(t, StudentPaymentStatusPaid, inv.StudentPaymentStatus)
	assert.Zero(t, inv.StudentPaymentAmountDue)
}
