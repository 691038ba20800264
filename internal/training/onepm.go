package training

import (
	"fmt"
	"math"
	"strings"
)

// Estimation formulas for a one-rep max from a submaximal set.
const (
	FormulaBrzycki = "brzycki"
	FormulaEpley   = "epley"
	FormulaAverage = "average"
)

// EstimateOneRepMax estimates the 1RM from weight lifted for reps repetitions.
// Unknown formulas fall back to Brzycki. Returns 0 for non-positive input.
// The result is rounded to 0.5 kg.
func EstimateOneRepMax(weight float64, reps int, formula string) float64 {
	if reps <= 0 || weight <= 0 {
		return 0
	}
	if reps == 1 {
		return weight
	}

	var est float64
	switch formula {
	case FormulaEpley:
		est = epley(weight, reps)
	case FormulaAverage:
		est = (brzycki(weight, reps) + epley(weight, reps)) / 2
	default:
		est = brzycki(weight, reps)
	}
	return math.Round(est*2) / 2
}

// brzycki: 1RM = weight * 36 / (37 - reps), most accurate under 10 reps.
func brzycki(weight float64, reps int) float64 {
	if reps >= 37 {
		return weight
	}
	return weight * 36.0 / float64(37-reps)
}

// epley: 1RM = weight * (1 + 0.0333 * reps).
func epley(weight float64, reps int) float64 {
	return weight * (1 + 0.0333*float64(reps))
}

// ParseFormula validates an estimation formula name. Empty means Brzycki.
func ParseFormula(s string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(s)); f {
	case "":
		return FormulaBrzycki, nil
	case FormulaBrzycki, FormulaEpley, FormulaAverage:
		return f, nil
	}
	return "", fmt.Errorf("%w: неизвестная формула 1ПМ %q (ожидается brzycki, epley или average)", ErrInvalidInput, s)
}

// FormulaName returns the Russian name of an estimation formula.
func FormulaName(formula string) string {
	switch formula {
	case FormulaBrzycki:
		return "формула Бжицки"
	case FormulaEpley:
		return "формула Эпли"
	case FormulaAverage:
		return "среднее Бжицки и Эпли"
	default:
		return formula
	}
}
