package bot

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"strengthbot/internal/training"
)

const (
	maxBenchmarkKg  = 1000
	maxEstimateReps = 20
	skipWord        = "пропустить"
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

// setPattern matches "weight x reps", e.g. "80x5" or "80 х 5"
var setPattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*[xXхХ*]\s*(\d+)$`)

// isSkip reports whether the user asked to skip the remaining inputs
func isSkip(text string) bool {
	return strings.ToLower(strings.TrimSpace(text)) == skipWord
}

// parseBenchmark parses a one-rep max typed by the user.
// "80x5" is accepted as a set and converted to an estimated 1RM with formula; estimated is true then.
func parseBenchmark(text, formula string) (weight float64, estimated bool, err error) {
	text = strings.TrimSpace(strings.ReplaceAll(text, ",", "."))

	if m := setPattern.FindStringSubmatch(text); m != nil {
		setWeight, _ := strconv.ParseFloat(m[1], 64)
		reps, _ := strconv.Atoi(m[2])
		if err := validateReps(reps); err != nil {
			return 0, false, err
		}
		if setWeight <= 0 {
			return 0, false, ValidationError{Field: "weight", Message: "Вес в подходе должен быть больше нуля."}
		}
		if err := validateBenchmark(setWeight); err != nil {
			return 0, false, err
		}
		est := training.EstimateOneRepMax(setWeight, reps, formula)
		if err := validateBenchmark(est); err != nil {
			return 0, false, err
		}
		return est, reps > 1, nil
	}

	weight, err = strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return 0, false, ValidationError{Field: "weight", Message: "Введите число (например, 100) или 'пропустить'."}
	}
	if err := validateBenchmark(weight); err != nil {
		return 0, false, err
	}
	return weight, false, nil
}

// validateBenchmark validates a one-rep max in kg. Zero means "no data".
func validateBenchmark(weight float64) error {
	if weight < 0 {
		return ValidationError{Field: "weight", Message: "Вес не может быть отрицательным."}
	}
	if weight > maxBenchmarkKg {
		return ValidationError{Field: "weight", Message: "Вес слишком большой. Введите реалистичное значение (до 1000 кг)."}
	}
	return nil
}

// validateReps validates repetitions used for a 1RM estimate
func validateReps(reps int) error {
	if reps <= 0 {
		return ValidationError{Field: "reps", Message: "Количество повторений должно быть положительным."}
	}
	if reps > maxEstimateReps {
		return ValidationError{Field: "reps", Message: "Для оценки максимума укажите не больше 20 повторений."}
	}
	return nil
}
