// file: internals/features/schedule/model/class_session_model_test.go
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusTransitionsAreForwardOnly(t *testing.T) {
	terminal := []ClassSessionStatus{
		ClassSessionStatusCompleted,
		ClassSessionStatusCancelledLowAttendance,
		ClassSessionStatusCancelledTeacher,
	}

	// scheduled may move to any terminal state
	for _, next := range terminal {
		assert.True(t, ClassSessionStatusScheduled.CanTransitionTo(next), "scheduled -> %s", next)
	}

	// terminal states never move again, not even back to scheduled
	for _, from := range terminal {
		assert.False(t, from.CanTransitionTo(ClassSessionStatusScheduled), "%s -> scheduled", from)
		for _, next := range terminal {
			assert.False(t, from.CanTransitionTo(next), "%s -> %s", from, next)
		}
	}

	// staying scheduled is not a transition
	assert.False(t, ClassSessionStatusScheduled.CanTransitionTo(ClassSessionStatusScheduled))
}
