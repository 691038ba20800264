package training

import (
	"errors"
	"testing"
)

func TestEstimateOneRepMax(t *testing.T) {
	tests := []struct {
		name    string
		weight  float64
		reps    int
		formula string
		want    float64
	}{
		{"brzycki 100kg x 5", 100, 5, FormulaBrzycki, 112.5}, // 100 * 36 / 32
		{"brzycki 80kg x 10", 80, 10, FormulaBrzycki, 106.5}, // 106.67 -> 106.5
		{"epley 100kg x 5", 100, 5, FormulaEpley, 116.5},     // 116.65 -> 116.5
		{"average 100kg x 5", 100, 5, FormulaAverage, 114.5}, // (112.5 + 116.65) / 2 = 114.575
		{"unknown formula is brzycki", 100, 5, "unknown", 112.5},
		{"1 rep is same as weight", 100, 1, FormulaBrzycki, 100},
		{"zero weight", 0, 5, FormulaBrzycki, 0},
		{"zero reps", 100, 0, FormulaBrzycki, 0},
		{"negative weight", -100, 5, FormulaBrzycki, 0},
		{"reps beyond formula range", 50, 40, FormulaBrzycki, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateOneRepMax(tt.weight, tt.reps, tt.formula)
			if got != tt.want {
				t.Errorf("EstimateOneRepMax(%v, %v, %s) = %v, want %v", tt.weight, tt.reps, tt.formula, got, tt.want)
			}
		})
	}
}

func TestFormulaName(t *testing.T) {
	if got := FormulaName(FormulaBrzycki); got != "формула Бжицки" {
		t.Errorf("FormulaName(brzycki) = %q", got)
	}
	if got := FormulaName("manual"); got != "manual" {
		t.Errorf("FormulaName(manual) = %q, want passthrough", got)
	}
}

func TestParseFormula(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"", FormulaBrzycki, false},
		{"brzycki", FormulaBrzycki, false},
		{" Epley ", FormulaEpley, false},
		{"average", FormulaAverage, false},
		{"lombardi", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormula(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormula(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidInput) {
				t.Errorf("ParseFormula(%q) error = %v, want ErrInvalidInput", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseFormula(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
