package matchers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchers_Match(t *testing.T) {
	tests := []struct {
		name    string
		matcher *Matcher
		actual  any
		want    bool
	}{
		{name: "eq", matcher: Eq([]int{1, 2}), actual: []int{1, 2}, want: true},
		{name: "eq mismatch", matcher: Eq("foobar"), actual: "foo", want: false},
		{name: "be", matcher: Be(42), actual: 42, want: true},
		{name: "be true", matcher: BeTrue(), actual: true, want: true},
		{name: "be false", matcher: BeFalse(), actual: true, want: false},
		{name: "be nil", matcher: BeNil(), actual: nil, want: true},
		{name: "be empty", matcher: BeEmpty(), actual: []string{}, want: true},
		{name: "have len", matcher: HaveLen(3), actual: "abc", want: true},
		{name: "include", matcher: Include(2), actual: []int{1, 2, 3}, want: true},
		{name: "be numerically", matcher: BeNumerically(">", 3), actual: 4, want: true},
		{name: "match", matcher: Match(`^foo`), actual: "foobar", want: true},
		{name: "instance of", matcher: BeAnInstanceOf(""), actual: "text", want: true},
		{name: "match error", matcher: MatchError("boom"), actual: errors.New("boom"), want: true},
		{
			name:    "satisfy",
			matcher: Satisfy("be even", func(v any) bool { return v.(int)%2 == 0 }),
			actual:  4,
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.matcher.Match(tt.actual)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchers_Messages(t *testing.T) {
	m := Eq(3)
	assert.Equal(t, "eq 3", m.Description())
	assert.Equal(t, "expected 2 to eq 3", m.FailureMessage(2))
	assert.Equal(t, "expected 3 not to eq 3", m.NegatedFailureMessage(3))
	assert.Equal(t, `expected "a" to eq "b"`, Eq("b").FailureMessage("a"))
	assert.Equal(t, "be > 3", BeNumerically(">", 3).Description())
}

func TestMatchers_Deferred(t *testing.T) {
	assert.False(t, Eq(1).Deferred())
	assert.True(t, Panic().Deferred())
	assert.True(t, PanicWith("boom").Deferred())

	ok, err := Panic().Match(func() { panic("boom") })
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Equal(t, "expected to panic", Panic().FailureMessage(func() {}))
	assert.Equal(t, "panic with boom", PanicWith("boom").Description())
}
