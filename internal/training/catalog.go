package training

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidInput is returned for a negative benchmark or a malformed profile.
	ErrInvalidInput = errors.New("некорректные входные данные")
	// ErrUnrecognizedIntensity is returned for an intensity token outside the known set.
	ErrUnrecognizedIntensity = errors.New("неизвестная интенсивность")
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

// Lift is one of the three benchmark lifts every exercise derives its load from.
type Lift int

// The zero Lift is invalid so that a profile without main_lift fails validation.
const (
	BenchPress Lift = iota + 1
	Squat
	Deadlift
)

// Lifts lists the benchmark lifts in the order the user is asked for them.
var Lifts = []Lift{BenchPress, Squat, Deadlift}

// String returns the storage key of the lift.
func (l Lift) String() string {
	switch l {
	case BenchPress:
		return "bench_press"
	case Squat:
		return "squat"
	case Deadlift:
		return "deadlift"
	default:
		return fmt.Sprintf("lift(%d)", int(l))
	}
}

// Title returns the Russian name shown to users.
func (l Lift) Title() string {
	switch l {
	case BenchPress:
		return "Жим лёжа"
	case Squat:
		return "Присед"
	case Deadlift:
		return "Становая тяга"
	default:
		return l.String()
	}
}

// ParseLift converts a storage key ("bench_press", "squat", "deadlift") into a Lift.
func ParseLift(s string) (Lift, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bench_press":
		return BenchPress, nil
	case "squat":
		return Squat, nil
	case "deadlift":
		return Deadlift, nil
	}
	return 0, fmt.Errorf("%w: неизвестное базовое упражнение %q", ErrInvalidInput, s)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *Lift) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseLift(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ExerciseProfile holds the prescription parameters of one exercise.
// Weights are in kilograms.
type ExerciseProfile struct {
	Lift      Lift    `yaml:"main_lift"`
	Scale     float64 `yaml:"scale"`
	MinWeight float64 `yaml:"min_weight"`
	MaxWeight float64 `yaml:"max_weight"`
	Increment float64 `yaml:"increment"`
}

// DefaultProfile is used for exercises missing from the catalog.
var DefaultProfile = ExerciseProfile{
	Lift:      BenchPress,
	Scale:     0.3,
	MinWeight: 5.0,
	MaxWeight: 80.0,
	Increment: 2.5,
}

// Validate checks the profile invariants.
func (p ExerciseProfile) Validate() error {
	switch {
	case p.Lift != BenchPress && p.Lift != Squat && p.Lift != Deadlift:
		return fmt.Errorf("%w: неизвестное базовое упражнение %v", ErrInvalidInput, p.Lift)
	case !(p.Scale > 0) || math.IsInf(p.Scale, 0):
		return fmt.Errorf("%w: коэффициент должен быть положительным, получено %v", ErrInvalidInput, p.Scale)
	case !(p.Increment > 0) || math.IsInf(p.Increment, 0):
		return fmt.Errorf("%w: шаг округления должен быть положительным, получено %v", ErrInvalidInput, p.Increment)
	case !(p.MinWeight >= 0):
		return fmt.Errorf("%w: минимальный вес не может быть отрицательным, получено %v", ErrInvalidInput, p.MinWeight)
	case !(p.MinWeight <= p.MaxWeight) || math.IsInf(p.MaxWeight, 0):
		return fmt.Errorf("%w: минимальный вес %v больше максимального %v", ErrInvalidInput, p.MinWeight, p.MaxWeight)
	}
	return nil
}

// Catalog maps exercise names to their profiles. It is immutable once built
// and safe to share between goroutines.
type Catalog struct {
	profiles map[string]ExerciseProfile
}

// NewCatalog validates the profiles and builds a catalog keyed by normalized name.
func NewCatalog(profiles map[string]ExerciseProfile) (*Catalog, error) {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)

	c := &Catalog{profiles: make(map[string]ExerciseProfile, len(profiles))}
	for _, name := range names {
		key := normalizeName(name)
		if key == "" {
			return nil, fmt.Errorf("%w: пустое название упражнения", ErrInvalidInput)
		}
		if _, dup := c.profiles[key]; dup {
			return nil, fmt.Errorf("%w: упражнение %q указано дважды", ErrInvalidInput, key)
		}
		profile := profiles[name]
		if err := profile.Validate(); err != nil {
			return nil, fmt.Errorf("упражнение %q: %w", name, err)
		}
		c.profiles[key] = profile
	}
	return c, nil
}

type catalogFile struct {
	Exercises map[string]ExerciseProfile `yaml:"exercises"`
}

// ParseCatalog builds a catalog from its YAML representation.
func ParseCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("ошибка разбора каталога: %w", err)
	}
	if len(file.Exercises) == 0 {
		return nil, fmt.Errorf("%w: каталог не содержит упражнений", ErrInvalidInput)
	}
	return NewCatalog(file.Exercises)
}

// LoadCatalogFile reads a YAML catalog from disk.
func LoadCatalogFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения каталога %s: %w", path, err)
	}
	return ParseCatalog(data)
}

// DefaultCatalog returns the catalog embedded in the binary.
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultCatalogYAML)
}

// Lookup returns the profile for name, falling back to DefaultProfile.
func (c *Catalog) Lookup(name string) ExerciseProfile {
	if p, ok := c.Known(name); ok {
		return p
	}
	return DefaultProfile
}

// Known reports whether name has its own catalog entry.
func (c *Catalog) Known(name string) (ExerciseProfile, bool) {
	p, ok := c.profiles[normalizeName(name)]
	return p, ok
}

// Names returns the normalized exercise names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.profiles))
	for name := range c.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of exercises in the catalog.
func (c *Catalog) Len() int {
	return len(c.profiles)
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
