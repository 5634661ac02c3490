package tools

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decimals(values []*big.Int) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.String()
	}
	return out
}

func TestFibonacci(t *testing.T) {
	tests := []struct {
		n    int
		want []string
	}{
		{-3, []string{}},
		{0, []string{}},
		{1, []string{"0"}},
		{2, []string{"0", "1"}},
		{5, []string{"0", "1", "1", "2", "3"}},
		{10, []string{"0", "1", "1", "2", "3", "5", "8", "13", "21", "34"}},
	}
	for _, tt := range tests {
		got, err := Fibonacci(tt.n)
		require.NoError(t, err, "n=%d", tt.n)
		assert.Equal(t, tt.want, decimals(got), "n=%d", tt.n)
	}
}

func TestFibonacciStaysExactPastInt64(t *testing.T) {
	sequence, err := Fibonacci(100)
	require.NoError(t, err)
	require.Len(t, sequence, 100)

	assert.Equal(t, "7540113804746346429", sequence[92].String())
	assert.Equal(t, "12200160415121876738", sequence[93].String())
	assert.Equal(t, "218922995834555169026", sequence[99].String())
	for i := 3; i < len(sequence); i++ {
		assert.Equal(t, 1, sequence[i].Cmp(sequence[i-1]), "index %d", i)
	}
}

func TestFibonacciRejectsHugeRequests(t *testing.T) {
	_, err := Fibonacci(MaxFibonacciTerms)
	require.NoError(t, err)

	_, err = Fibonacci(MaxFibonacciTerms + 1)
	assert.ErrorIs(t, err, ErrTooManyTerms)

	_, err = Fibonacci(1_000_000_000_000_000_000)
	assert.ErrorIs(t, err, ErrTooManyTerms)
}

func TestCalculateAverage(t *testing.T) {
	avg, err := CalculateAverage(2, 4, 6)
	require.NoError(t, err)
	assert.Equal(t, 4.0, avg)

	avg, err = CalculateAverage(1.5)
	require.NoError(t, err)
	assert.Equal(t, 1.5, avg)

	_, err = CalculateAverage()
	assert.ErrorIs(t, err, ErrNoNumbers)
}
