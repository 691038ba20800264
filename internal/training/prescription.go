package training

import (
	"fmt"
	"math"
	"strings"
)

// Mode selects between a weight range and a single target weight.
type Mode string

const (
	ModeRange Mode = "range"
	ModePoint Mode = "point"
)

// ParseMode converts a configuration value into a Mode. Empty means ModeRange.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeRange:
		return ModeRange, nil
	case ModePoint:
		return ModePoint, nil
	}
	return "", fmt.Errorf("%w: неизвестный режим расчёта %q (ожидается range или point)", ErrInvalidInput, s)
}

// WeightRange is a prescribed working-weight range in kilograms.
type WeightRange struct {
	Low  float64
	High float64
}

func (r WeightRange) String() string {
	return fmt.Sprintf("%.1f-%.1f кг", r.Low, r.High)
}

// Prescription is the engine output in either mode. For ModePoint Low and High
// are equal.
type Prescription struct {
	Mode Mode
	Low  float64
	High float64
}

// String renders the prescription as shown to users: "60.0-70.0 кг" or "70.0 кг".
func (p Prescription) String() string {
	if p.Mode == ModePoint {
		return fmt.Sprintf("%.1f кг", p.Low)
	}
	return WeightRange{Low: p.Low, High: p.High}.String()
}

// Engine computes working weights from a benchmark. It holds only immutable
// state and may be shared between goroutines.
type Engine struct {
	catalog *Catalog
	mode    Mode
}

// NewEngine creates an engine over catalog. Prescribe uses mode; the explicit
// PrescribeRange and PrescribePoint ignore it.
func NewEngine(catalog *Catalog, mode Mode) *Engine {
	if mode == "" {
		mode = ModeRange
	}
	return &Engine{catalog: catalog, mode: mode}
}

// Mode returns the configured prescription mode.
func (e *Engine) Mode() Mode {
	return e.mode
}

// Catalog returns the catalog the engine resolves exercises against.
func (e *Engine) Catalog() *Catalog {
	return e.catalog
}

// Prescribe computes a prescription in the configured mode.
func (e *Engine) Prescribe(associatedMax float64, intensity, exercise string) (Prescription, error) {
	if e.mode == ModePoint {
		w, err := e.PrescribePoint(associatedMax, intensity, exercise)
		if err != nil {
			return Prescription{}, err
		}
		return Prescription{Mode: ModePoint, Low: w, High: w}, nil
	}
	r, err := e.PrescribeRange(associatedMax, intensity, exercise)
	if err != nil {
		return Prescription{}, err
	}
	return Prescription{Mode: ModeRange, Low: r.Low, High: r.High}, nil
}

// PrescribeRange returns the working-weight range for exercise at the given
// intensity. associatedMax is the 1RM of the exercise's associated lift.
//
// A zero associatedMax is not an error: every value clamps to the profile's
// minimum weight. Callers treat zero as a missing benchmark before calling.
func (e *Engine) PrescribeRange(associatedMax float64, intensity, exercise string) (WeightRange, error) {
	profile, level, err := e.resolve(associatedMax, intensity, exercise)
	if err != nil {
		return WeightRange{}, err
	}
	base := associatedMax * profile.Scale
	lowPct, highPct := level.Band()
	return WeightRange{
		Low:  roundAndClamp(base*lowPct, profile),
		High: roundAndClamp(base*highPct, profile),
	}, nil
}

// PrescribePoint returns a single target weight, see PrescribeRange.
func (e *Engine) PrescribePoint(associatedMax float64, intensity, exercise string) (float64, error) {
	profile, level, err := e.resolve(associatedMax, intensity, exercise)
	if err != nil {
		return 0, err
	}
	return roundAndClamp(associatedMax*profile.Scale*level.Point(), profile), nil
}

func (e *Engine) resolve(associatedMax float64, intensity, exercise string) (ExerciseProfile, Intensity, error) {
	if math.IsNaN(associatedMax) || math.IsInf(associatedMax, 0) || associatedMax < 0 {
		return ExerciseProfile{}, 0, fmt.Errorf("%w: максимум должен быть неотрицательным числом, получено %v", ErrInvalidInput, associatedMax)
	}
	level, err := ParseIntensity(intensity)
	if err != nil {
		return ExerciseProfile{}, 0, err
	}
	return e.catalog.Lookup(exercise), level, nil
}

// roundAndClamp rounds raw to the nearest multiple of the profile increment and
// clamps it into [MinWeight, MaxWeight]. Ties round to the even multiple.
func roundAndClamp(raw float64, p ExerciseProfile) float64 {
	w := math.RoundToEven(raw/p.Increment) * p.Increment
	return math.Max(p.MinWeight, math.Min(p.MaxWeight, w))
}
