// Package plan renders the weekly program with working weights for a user.
package plan

import (
	"errors"
	"fmt"
	"strings"

	"strengthbot/internal/schedule"
	"strengthbot/internal/training"
)

// ErrWeekOutOfRange is returned for a week number outside the program.
var ErrWeekOutOfRange = errors.New("неделя вне программы")

// Placeholders shown instead of a weight.
const (
	NoBenchmarkText       = "Введите максимальные веса (/reset)"
	UnknownIntensityText  = "Не указан вес (неизвестная интенсивность)"
	PrescriptionErrorText = "Ошибка расчёта веса"
	planTitle             = "Программа тренировок"
)

// Row is one scheduled exercise with its computed weight.
type Row struct {
	schedule.Entry
	Lift      training.Lift
	HasWeight bool
	Low       float64
	High      float64
	Weight    string // prescription or placeholder text
}

// Renderer combines the schedule with the prescription engine.
type Renderer struct {
	engine   *training.Engine
	schedule *schedule.Schedule
}

// NewRenderer creates a renderer.
func NewRenderer(engine *training.Engine, sched *schedule.Schedule) *Renderer {
	return &Renderer{engine: engine, schedule: sched}
}

// Weeks returns the number of weeks in the program.
func (r *Renderer) Weeks() int {
	return r.schedule.Weeks()
}

// Row computes the weight for one entry. A zero benchmark for the associated
// lift means the user has not entered it, so the engine is not called.
func (r *Renderer) Row(maxima training.Maxima, e schedule.Entry) Row {
	profile := r.engine.Catalog().Lookup(e.Exercise)
	row := Row{Entry: e, Lift: profile.Lift}

	max := maxima.For(profile.Lift)
	if max <= 0 {
		row.Weight = NoBenchmarkText
		return row
	}

	p, err := r.engine.Prescribe(max, e.Intensity, e.Exercise)
	switch {
	case errors.Is(err, training.ErrUnrecognizedIntensity):
		row.Weight = UnknownIntensityText
	case err != nil:
		row.Weight = PrescriptionErrorText
	default:
		row.HasWeight = true
		row.Low, row.High = p.Low, p.High
		row.Weight = p.String()
	}
	return row
}

// Rows returns the rows of week in program order.
func (r *Renderer) Rows(maxima training.Maxima, week int) ([]Row, error) {
	if week < 1 || week > r.schedule.Weeks() {
		return nil, fmt.Errorf("%w: %d (доступно 1-%d)", ErrWeekOutOfRange, week, r.schedule.Weeks())
	}
	entries := r.schedule.Week(week)
	rows := make([]Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, r.Row(maxima, e))
	}
	return rows, nil
}

// Week renders one week as user-facing text.
func (r *Renderer) Week(maxima training.Maxima, week int) (string, error) {
	if week < 1 || week > r.schedule.Weeks() {
		return "", fmt.Errorf("%w: %d (доступно 1-%d)", ErrWeekOutOfRange, week, r.schedule.Weeks())
	}
	var sb strings.Builder
	sb.WriteString(planTitle + "\n\n")
	fmt.Fprintf(&sb, "Неделя %d\n", week)
	r.writeWeek(&sb, maxima, week)
	return sb.String(), nil
}

// All renders the whole program.
func (r *Renderer) All(maxima training.Maxima) string {
	var sb strings.Builder
	sb.WriteString(planTitle + "\n")
	for week := 1; week <= r.schedule.Weeks(); week++ {
		fmt.Fprintf(&sb, "\nНеделя %d\n", week)
		r.writeWeek(&sb, maxima, week)
	}
	return sb.String()
}

func (r *Renderer) writeWeek(sb *strings.Builder, maxima training.Maxima, week int) {
	for _, day := range schedule.Days {
		entries := r.schedule.Day(week, day)
		if len(entries) == 0 {
			continue
		}
		fmt.Fprintf(sb, "\n%s\n", day.Title())
		for _, e := range entries {
			sb.WriteString(FormatLine(r.Row(maxima, e)))
			sb.WriteByte('\n')
		}
	}
}

// FormatLine renders a row as "- жим лёжа: Средняя (5х8-12, 60.0-70.0 кг)".
func FormatLine(row Row) string {
	return fmt.Sprintf("- %s: %s (%s, %s)", row.Exercise, schedule.Capitalize(row.Intensity), row.Scheme, row.Weight)
}
