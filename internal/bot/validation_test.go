package bot

import (
	"errors"
	"testing"

	"strengthbot/internal/training"
)

func TestParseBenchmark(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		formula       string
		want          float64
		wantEstimated bool
		wantErr       bool
	}{
		{"integer", "100", training.FormulaBrzycki, 100, false, false},
		{"decimal point", "102.5", training.FormulaBrzycki, 102.5, false, false},
		{"decimal comma", "102,5", training.FormulaBrzycki, 102.5, false, false},
		{"surrounding spaces", "  90 ", training.FormulaBrzycki, 90, false, false},
		{"zero means no data", "0", training.FormulaBrzycki, 0, false, false},
		{"maximum valid", "1000", training.FormulaBrzycki, 1000, false, false},
		{"set latin x", "100x5", training.FormulaBrzycki, 112.5, true, false},
		{"set cyrillic х with spaces", "80 х 5", training.FormulaBrzycki, 90, true, false},
		{"set with epley", "100x5", training.FormulaEpley, 116.5, true, false},
		{"set with average", "100x5", training.FormulaAverage, 114.5, true, false},
		{"single rep set", "120x1", training.FormulaBrzycki, 120, false, false},
		{"negative", "-10", training.FormulaBrzycki, 0, false, true},
		{"too heavy", "1000.5", training.FormulaBrzycki, 0, false, true},
		{"text", "сто", training.FormulaBrzycki, 0, false, true},
		{"empty", "", training.FormulaBrzycki, 0, false, true},
		{"nan", "NaN", training.FormulaBrzycki, 0, false, true},
		{"inf", "Inf", training.FormulaBrzycki, 0, false, true},
		{"too many reps", "50x25", training.FormulaBrzycki, 0, false, true},
		{"zero reps", "50x0", training.FormulaBrzycki, 0, false, true},
		{"zero set weight", "0x5", training.FormulaBrzycki, 0, false, true},
		{"zero decimal set weight", "0.0х3", training.FormulaBrzycki, 0, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, estimated, err := parseBenchmark(tt.input, tt.formula)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseBenchmark(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				var vErr ValidationError
				if !errors.As(err, &vErr) {
					t.Errorf("parseBenchmark(%q) error type = %T, want ValidationError", tt.input, err)
				}
				return
			}
			if got != tt.want || estimated != tt.wantEstimated {
				t.Errorf("parseBenchmark(%q) = %v, %v, want %v, %v", tt.input, got, estimated, tt.want, tt.wantEstimated)
			}
		})
	}
}

func TestIsSkip(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"пропустить", true},
		{"Пропустить", true},
		{" ПРОПУСТИТЬ ", true},
		{"пропуск", false},
		{"100", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := isSkip(tt.input); got != tt.want {
				t.Errorf("isSkip(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
