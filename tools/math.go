// Package tools holds the functions exposed to the model and the manifest
// that advertises them.
package tools

import (
	"errors"
	"fmt"
	"math/big"
)

// MaxFibonacciTerms bounds the length of a Fibonacci request.
const MaxFibonacciTerms = 10000

var (
	ErrNoNumbers    = errors.New("division by zero: no numbers given")
	ErrTooManyTerms = errors.New("too many Fibonacci numbers requested")
)

// CalculateAverage returns the arithmetic mean of numbers.
func CalculateAverage(numbers ...float64) (float64, error) {
	if len(numbers) == 0 {
		return 0, ErrNoNumbers
	}
	var sum float64
	for _, n := range numbers {
		sum += n
	}
	return sum / float64(len(numbers)), nil
}

// Fibonacci returns the first n Fibonacci numbers, starting at 0. Values are
// exact at any index; n above MaxFibonacciTerms is rejected.
func Fibonacci(n int) ([]*big.Int, error) {
	if n > MaxFibonacciTerms {
		return nil, fmt.Errorf("%w: %d (limit %d)", ErrTooManyTerms, n, MaxFibonacciTerms)
	}
	if n <= 0 {
		return []*big.Int{}, nil
	}
	sequence := make([]*big.Int, 0, n)
	sequence = append(sequence, big.NewInt(0))
	if n == 1 {
		return sequence, nil
	}
	sequence = append(sequence, big.NewInt(1))
	for len(sequence) < n {
		next := new(big.Int).Add(sequence[len(sequence)-1], sequence[len(sequence)-2])
		sequence = append(sequence, next)
	}
	return sequence, nil
}
