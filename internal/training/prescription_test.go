package training

import (
	"errors"
	"math"
	"sync"
	"testing"
)

func newTestEngine(t *testing.T, mode Mode) *Engine {
	t.Helper()
	catalog, err := DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog() error = %v", err)
	}
	return NewEngine(catalog, mode)
}

var allIntensities = []string{"легкая", "средняя", "тяжелая"}

func TestPrescribeRange(t *testing.T) {
	engine := newTestEngine(t, ModeRange)

	tests := []struct {
		name      string
		max       float64
		intensity string
		exercise  string
		want      WeightRange
	}{
		{"bench press medium", 100, "средняя", "жим лёжа", WeightRange{60, 70}},
		{"bench press light", 100, "легкая", "жим лёжа", WeightRange{50, 60}},
		{"bench press heavy", 100, "тяжелая", "жим лёжа", WeightRange{70, 80}},
		{"lat pulldown rounds to 2.5", 100, "средняя", "тяга вертикального блока", WeightRange{32.5, 37.5}},
		{"shrugs heavy", 150, "тяжелая", "шраги с гантелями", WeightRange{20, 24}},
		{"clamped to max", 300, "тяжелая", "передняя дельта", WeightRange{25, 25}},
		{"clamped to min", 40, "легкая", "передняя дельта", WeightRange{4, 4}},
		{"zero max yields min weight", 0, "средняя", "жим лёжа", WeightRange{20, 20}},
		{"tie rounds down to even", 122.5, "легкая", "жим лёжа", WeightRange{60, 72.5}},
		{"tie rounds up to even", 127.5, "легкая", "жим лёжа", WeightRange{65, 77.5}},
		{"unknown exercise uses default profile", 100, "средняя", "bogus_exercise_1", WeightRange{17.5, 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.PrescribeRange(tt.max, tt.intensity, tt.exercise)
			if err != nil {
				t.Fatalf("PrescribeRange(%v, %s, %s) error = %v", tt.max, tt.intensity, tt.exercise, err)
			}
			if got != tt.want {
				t.Errorf("PrescribeRange(%v, %s, %s) = %v, want %v", tt.max, tt.intensity, tt.exercise, got, tt.want)
			}
		})
	}
}

func TestPrescribePoint(t *testing.T) {
	engine := newTestEngine(t, ModePoint)

	tests := []struct {
		name      string
		max       float64
		intensity string
		exercise  string
		want      float64
	}{
		{"bench press medium", 100, "средняя", "жим лёжа", 70},
		{"bench press light", 100, "легкая", "жим лёжа", 60},
		{"shrugs heavy", 150, "тяжелая", "шраги с гантелями", 24},
		{"calf raise rounds to 5", 140, "средняя", "подъем на носки в смите", 30},
		{"zero max yields min weight", 0, "тяжелая", "классическая тяга", 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.PrescribePoint(tt.max, tt.intensity, tt.exercise)
			if err != nil {
				t.Fatalf("PrescribePoint(%v, %s, %s) error = %v", tt.max, tt.intensity, tt.exercise, err)
			}
			if got != tt.want {
				t.Errorf("PrescribePoint(%v, %s, %s) = %v, want %v", tt.max, tt.intensity, tt.exercise, got, tt.want)
			}
		})
	}
}

func TestPrescribe_Format(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{ModeRange, "60.0-70.0 кг"},
		{ModePoint, "70.0 кг"},
	}
	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			p, err := newTestEngine(t, tt.mode).Prescribe(100, "средняя", "жим лёжа")
			if err != nil {
				t.Fatalf("Prescribe() error = %v", err)
			}
			if got := p.String(); got != tt.want {
				t.Errorf("Prescribe().String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrescribe_Errors(t *testing.T) {
	engine := newTestEngine(t, ModeRange)

	tests := []struct {
		name      string
		max       float64
		intensity string
		wantErr   error
	}{
		{"skip token as intensity", 100, "пропустить", ErrUnrecognizedIntensity},
		{"empty intensity", 100, "", ErrUnrecognizedIntensity},
		{"negative max", -1, "средняя", ErrInvalidInput},
		{"NaN max", math.NaN(), "средняя", ErrInvalidInput},
		{"infinite max", math.Inf(1), "средняя", ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := engine.PrescribeRange(tt.max, tt.intensity, "жим лёжа")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("PrescribeRange() error = %v, want %v", err, tt.wantErr)
			}
			if r != (WeightRange{}) {
				t.Errorf("PrescribeRange() = %v on error, want zero value", r)
			}
			w, err := engine.PrescribePoint(tt.max, tt.intensity, "жим лёжа")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("PrescribePoint() error = %v, want %v", err, tt.wantErr)
			}
			if w != 0 {
				t.Errorf("PrescribePoint() = %v on error, want 0", w)
			}
		})
	}
}

func TestPrescribe_HeavySpellings(t *testing.T) {
	engine := newTestEngine(t, ModeRange)
	for _, token := range []string{"тяжёлая", "Тяжёлая", "ТЯЖЕЛАЯ", " тяжелая ", "heavy"} {
		got, err := engine.PrescribeRange(100, token, "жим лёжа")
		if err != nil {
			t.Fatalf("PrescribeRange(%q) error = %v", token, err)
		}
		if want := (WeightRange{70, 80}); got != want {
			t.Errorf("PrescribeRange(%q) = %v, want %v", token, got, want)
		}
	}
}

func TestPrescribe_UnknownExercisesAgree(t *testing.T) {
	engine := newTestEngine(t, ModeRange)
	for _, intensity := range allIntensities {
		for _, max := range []float64{0, 42.5, 100, 333} {
			a, errA := engine.PrescribeRange(max, intensity, "bogus_exercise_1")
			b, errB := engine.PrescribeRange(max, intensity, "bogus_exercise_2")
			if errA != nil || errB != nil {
				t.Fatalf("unexpected errors: %v, %v", errA, errB)
			}
			if a != b {
				t.Errorf("max=%v %s: bogus_exercise_1 = %v, bogus_exercise_2 = %v", max, intensity, a, b)
			}
		}
	}
}

func TestPrescribe_CaseInsensitiveExercise(t *testing.T) {
	engine := newTestEngine(t, ModeRange)
	a, _ := engine.PrescribeRange(100, "средняя", "Жим Лёжа")
	b, _ := engine.PrescribeRange(100, "средняя", "жим лёжа")
	c, _ := engine.PrescribeRange(100, "средняя", "  ЖИМ ЛЁЖА ")
	if a != b || b != c {
		t.Errorf("case variants differ: %v, %v, %v", a, b, c)
	}
}

// isOnGrid reports whether w is a multiple of the profile increment or one of
// the clamping bounds (some bounds are off the increment grid).
func isOnGrid(w float64, p ExerciseProfile) bool {
	if w == p.MinWeight || w == p.MaxWeight {
		return true
	}
	steps := w / p.Increment
	return math.Abs(steps-math.Round(steps)) < 1e-9
}

func TestPrescribeRange_Invariants(t *testing.T) {
	engine := newTestEngine(t, ModeRange)
	catalog := engine.Catalog()

	for _, exercise := range catalog.Names() {
		profile := catalog.Lookup(exercise)
		for _, intensity := range allIntensities {
			for max := 0.0; max <= 1000; max += 7.5 {
				r, err := engine.PrescribeRange(max, intensity, exercise)
				if err != nil {
					t.Fatalf("PrescribeRange(%v, %s, %s) error = %v", max, intensity, exercise, err)
				}
				if r.Low > r.High {
					t.Errorf("%s %s max=%v: low %v > high %v", exercise, intensity, max, r.Low, r.High)
				}
				for _, w := range []float64{r.Low, r.High} {
					if w < profile.MinWeight || w > profile.MaxWeight {
						t.Errorf("%s %s max=%v: %v outside [%v, %v]", exercise, intensity, max, w, profile.MinWeight, profile.MaxWeight)
					}
					if !isOnGrid(w, profile) {
						t.Errorf("%s %s max=%v: %v is not a multiple of %v", exercise, intensity, max, w, profile.Increment)
					}
				}
			}
		}
	}
}

func TestPrescribe_Monotonic(t *testing.T) {
	for _, mode := range []Mode{ModeRange, ModePoint} {
		engine := newTestEngine(t, mode)
		for _, exercise := range engine.Catalog().Names() {
			for _, intensity := range allIntensities {
				var prev Prescription
				for max := 0.0; max <= 1000; max += 2.5 {
					p, err := engine.Prescribe(max, intensity, exercise)
					if err != nil {
						t.Fatalf("Prescribe() error = %v", err)
					}
					if max > 0 && (p.Low < prev.Low || p.High < prev.High) {
						t.Errorf("%s %s %s: max=%v gives %v, smaller than %v", mode, exercise, intensity, max, p, prev)
					}
					prev = p
				}
			}
		}
	}
}

func TestPrescribe_IntensityOrdering(t *testing.T) {
	for _, mode := range []Mode{ModeRange, ModePoint} {
		engine := newTestEngine(t, mode)
		catalog := engine.Catalog()
		for _, exercise := range catalog.Names() {
			p := catalog.Lookup(exercise)
			// base large enough that adjacent intensities differ by a full
			// increment and small enough that heavy stays under the ceiling.
			lo := math.Max(2*p.MinWeight, 10*p.Increment)
			hi := p.MaxWeight / 0.8
			if lo > hi {
				t.Fatalf("%s: no unclamped benchmark exists", exercise)
			}
			max := (lo + hi) / 2 / p.Scale

			var got []Prescription
			for _, intensity := range allIntensities {
				pr, err := engine.Prescribe(max, intensity, exercise)
				if err != nil {
					t.Fatalf("Prescribe() error = %v", err)
				}
				got = append(got, pr)
			}
			for i := 1; i < len(got); i++ {
				if !(got[i-1].Low < got[i].Low && got[i-1].High < got[i].High) {
					t.Errorf("%s %s max=%v: %s=%v not below %s=%v", mode, exercise, max, allIntensities[i-1], got[i-1], allIntensities[i], got[i])
				}
			}
		}
	}
}

func TestEngine_ConcurrentUse(t *testing.T) {
	engine := newTestEngine(t, ModeRange)
	want, _ := engine.PrescribeRange(100, "средняя", "жим лёжа")

	var wg sync.WaitGroup
	errs := make(chan string, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := engine.PrescribeRange(100, "средняя", "жим лёжа")
			if err != nil || got != want {
				errs <- got.String()
			}
		}()
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Errorf("concurrent PrescribeRange() = %s, want %s", e, want)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"", ModeRange, false},
		{"range", ModeRange, false},
		{"POINT", ModePoint, false},
		{"both", "", true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseMode(%q) = %v, %v; want %v, wantErr %v", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
}
