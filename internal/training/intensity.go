package training

import (
	"fmt"
	"strings"
)

// Intensity is the coarse difficulty tag attached to every scheduled exercise.
type Intensity int

const (
	Light Intensity = iota + 1
	Medium
	Heavy
)

// intensityAliases maps normalized tokens to intensities. Tokens are lower-cased
// and "ё" is folded to "е" before the lookup, so "тяжёлая" and "тяжелая" match.
var intensityAliases = map[string]Intensity{
	"легкая":  Light,
	"light":   Light,
	"средняя": Medium,
	"medium":  Medium,
	"тяжелая": Heavy,
	"heavy":   Heavy,
}

// ParseIntensity converts a textual label into an Intensity.
func ParseIntensity(token string) (Intensity, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(token)), "ё", "е")
	if i, ok := intensityAliases[key]; ok {
		return i, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnrecognizedIntensity, token)
}

// String returns the canonical Russian label.
func (i Intensity) String() string {
	switch i {
	case Light:
		return "легкая"
	case Medium:
		return "средняя"
	case Heavy:
		return "тяжелая"
	default:
		return fmt.Sprintf("intensity(%d)", int(i))
	}
}

// Band returns the fraction of the exercise 1RM used for the low and high end
// of a prescribed range.
func (i Intensity) Band() (low, high float64) {
	switch i {
	case Light:
		return 0.50, 0.60
	case Medium:
		return 0.60, 0.70
	case Heavy:
		return 0.70, 0.80
	}
	return 0, 0
}

// Point returns the fraction used for a single-value prescription.
func (i Intensity) Point() float64 {
	switch i {
	case Light:
		return 0.60
	case Medium:
		return 0.70
	case Heavy:
		return 0.80
	}
	return 0
}
