// Package scoring implements the market-value guessing score.
package scoring

import (
	"errors"
	"math"
)

// ErrInvalidTrueValue is returned when the reference value is not a positive finite number.
var ErrInvalidTrueValue = errors.New("true value must be a positive finite number")

// MaxScore is the score of a guess within the tightest band.
const MaxScore = 100

// tier is an inclusive upper bound on the percent error and the score it earns.
type tier struct {
	maxPercentError float64
	score           int
}

var tiers = []tier{
	{5, 100},
	{10, 80},
	{20, 60},
	{30, 40},
	{40, 20},
}

// PercentError returns |guess - trueValue| / trueValue * 100.
func PercentError(trueValue, guess float64) (float64, error) {
	if math.IsNaN(trueValue) || math.IsInf(trueValue, 0) || trueValue <= 0 {
		return 0, ErrInvalidTrueValue
	}
	return math.Abs(guess-trueValue) * 100 / trueValue, nil
}

// Score maps a guess of trueValue to one of 0, 20, 40, 60, 80 or 100.
// Negative and NaN guesses are accepted and score 0.
func Score(trueValue, guess float64) (int, error) {
	pct, err := PercentError(trueValue, guess)
	if err != nil {
		return 0, err
	}

	for _, t := range tiers {
		if pct <= t.maxPercentError {
			return t.score, nil
		}
	}
	return 0, nil
}
