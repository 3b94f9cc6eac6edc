package spec_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gospec/pkg/matchers"
	"gospec/pkg/spec"
)

func TestExam_ValueOperand(t *testing.T) {
	tests := []struct {
		name   string
		actual any
		negate bool
		want   bool
	}{
		{name: "to, matching", actual: 3, negate: false, want: true},
		{name: "to, not matching", actual: 4, negate: false, want: false},
		{name: "not to, matching", actual: 3, negate: true, want: false},
		{name: "not to, not matching", actual: 4, negate: true, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := spec.Exam(spec.ValueOperand(tt.actual), tt.negate, matchers.Eq(3))
			require.NoError(t, res.Fault)
			assert.Equal(t, tt.want, res.Valid)
			assert.Equal(t, tt.actual, res.Actual)
		})
	}
}

func TestExam_DeferredOperand(t *testing.T) {
	t.Run("value is produced inside the assertion", func(t *testing.T) {
		calls := 0
		op := spec.DeferredOperand(func() any {
			calls++
			return "done"
		})
		require.True(t, op.Deferred())

		res := spec.Exam(op, false, matchers.Eq("done"))
		assert.True(t, res.Valid)
		assert.Equal(t, 1, calls)
	})

	t.Run("panic becomes a fault", func(t *testing.T) {
		cause := errors.New("divided by 0")
		res := spec.Exam(spec.DeferredOperand(func() any { panic(cause) }), false, matchers.Eq(1))

		require.Error(t, res.Fault)
		assert.False(t, res.Valid)
		assert.ErrorIs(t, res.Fault, cause)

		var fault *spec.Fault
		require.ErrorAs(t, res.Fault, &fault)
		assert.Equal(t, cause, fault.Value)
	})

	t.Run("act matcher receives the function", func(t *testing.T) {
		res := spec.Exam(spec.DeferredOperand(func() any { panic("boom") }), false, matchers.PanicWith("boom"))
		require.NoError(t, res.Fault)
		assert.True(t, res.Valid)
	})

	t.Run("negated act matcher", func(t *testing.T) {
		res := spec.Exam(spec.DeferredOperand(func() any { return 1 }), true, matchers.Panic())
		require.NoError(t, res.Fault)
		assert.True(t, res.Valid)
	})
}

func TestFault_Error(t *testing.T) {
	assert.Equal(t, "boom", (&spec.Fault{Value: "boom"}).Error())
	assert.Equal(t, "42", (&spec.Fault{Value: 42}).Error())
	assert.Nil(t, (&spec.Fault{Value: "boom"}).Unwrap())
}
