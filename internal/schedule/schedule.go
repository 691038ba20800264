// Package schedule holds the static weekly training program: which exercise is
// done on which day of which week, at what intensity and with what sets x reps.
package schedule

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"strengthbot/internal/training"
)

//go:embed program.csv
var programCSV []byte

// Day is a training day of the week.
type Day string

const (
	Monday    Day = "понедельник"
	Wednesday Day = "среда"
	Friday    Day = "пятница"
)

// Days lists the training days in weekly order.
var Days = []Day{Monday, Wednesday, Friday}

// Title returns the day name with the first letter capitalized.
func (d Day) Title() string {
	return Capitalize(string(d))
}

func parseDay(s string) (Day, bool) {
	d := Day(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Days {
		if d == known {
			return d, true
		}
	}
	return "", false
}

// Entry is one scheduled exercise.
type Entry struct {
	Week      int
	Day       Day
	Exercise  string
	Intensity string
	Scheme    string // подходы х повторения, e.g. "5х8-12"
}

// Schedule is the parsed program. It is read-only after Parse.
type Schedule struct {
	entries []Entry
	weeks   int
}

const headerExercise = "упражнения"

// Parse reads a program in CSV form with the columns
// exercise, intensity, sets x reps, day, week. A header row is optional.
func Parse(r io.Reader) (*Schedule, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 5
	reader.TrimLeadingSpace = true

	s := &Schedule{}
	line := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("ошибка чтения программы: %w", err)
		}
		if line == 1 && strings.EqualFold(strings.TrimSpace(record[0]), headerExercise) {
			continue
		}

		entry, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("строка %d: %w", line, err)
		}
		s.entries = append(s.entries, entry)
		if entry.Week > s.weeks {
			s.weeks = entry.Week
		}
	}
	if len(s.entries) == 0 {
		return nil, errors.New("программа не содержит упражнений")
	}
	return s, nil
}

func parseRecord(record []string) (Entry, error) {
	exercise := strings.TrimSpace(record[0])
	intensity := strings.TrimSpace(record[1])
	scheme := strings.TrimSpace(record[2])
	if exercise == "" || scheme == "" {
		return Entry{}, errors.New("пустое упражнение или схема подходов")
	}
	if _, err := training.ParseIntensity(intensity); err != nil {
		return Entry{}, err
	}
	day, ok := parseDay(record[3])
	if !ok {
		return Entry{}, fmt.Errorf("неизвестный день %q", record[3])
	}
	week, err := strconv.Atoi(strings.TrimSpace(record[4]))
	if err != nil || week < 1 {
		return Entry{}, fmt.Errorf("некорректный номер недели %q", record[4])
	}
	return Entry{
		Week:      week,
		Day:       day,
		Exercise:  exercise,
		Intensity: intensity,
		Scheme:    scheme,
	}, nil
}

// Default returns the program embedded in the binary.
func Default() (*Schedule, error) {
	return Parse(bytes.NewReader(programCSV))
}

// Weeks returns the number of the last week in the program.
func (s *Schedule) Weeks() int {
	return s.weeks
}

// Len returns the total number of entries.
func (s *Schedule) Len() int {
	return len(s.entries)
}

// Week returns the entries of week n in program order.
func (s *Schedule) Week(n int) []Entry {
	var out []Entry
	for _, e := range s.entries {
		if e.Week == n {
			out = append(out, e)
		}
	}
	return out
}

// Day returns the entries of one day of week n in program order.
func (s *Schedule) Day(week int, day Day) []Entry {
	var out []Entry
	for _, e := range s.entries {
		if e.Week == week && e.Day == day {
			out = append(out, e)
		}
	}
	return out
}

// Capitalize upper-cases the first letter of s and lower-cases the rest.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
