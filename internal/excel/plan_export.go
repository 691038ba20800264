package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"strengthbot/internal/plan"
	"strengthbot/internal/training"
)

// Имена листов
const (
	SheetMaxima = "Максимумы"
	weekSheet   = "Неделя %d"
)

var weekHeaders = []string{"День", "Упражнение", "Интенсивность", "Подходы х повторения", "Вес", "Мин, кг", "Макс, кг"}

// WeekSheetName возвращает имя листа недели
func WeekSheetName(week int) string {
	return fmt.Sprintf(weekSheet, week)
}

// ExportPlan создаёт книгу с максимумами пользователя и листом на каждую неделю программы
func ExportPlan(r *plan.Renderer, maxima training.Maxima) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", SheetMaxima); err != nil {
		return nil, fmt.Errorf("ошибка переименования листа: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"2E75B6"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка создания стиля: %w", err)
	}

	if err := writeMaximaSheet(f, maxima, headerStyle); err != nil {
		return nil, err
	}

	for week := 1; week <= r.Weeks(); week++ {
		rows, err := r.Rows(maxima, week)
		if err != nil {
			return nil, err
		}
		if err := writeWeekSheet(f, week, rows, headerStyle); err != nil {
			return nil, fmt.Errorf("ошибка заполнения недели %d: %w", week, err)
		}
	}

	f.SetActiveSheet(0)
	return f, nil
}

// ExportPlanBytes возвращает книгу в виде xlsx-файла в памяти
func ExportPlanBytes(r *plan.Renderer, maxima training.Maxima) ([]byte, error) {
	f, err := ExportPlan(r, maxima)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("ошибка записи xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func writeMaximaSheet(f *excelize.File, maxima training.Maxima, headerStyle int) error {
	sheet := SheetMaxima
	if err := setRow(f, sheet, 1, "Упражнение", "Максимум, кг"); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "B1", headerStyle); err != nil {
		return err
	}

	for i, lift := range training.Lifts {
		var value interface{} = "не указан"
		if v := maxima.For(lift); v > 0 {
			value = v
		}
		if err := setRow(f, sheet, i+2, lift.Title(), value); err != nil {
			return err
		}
	}

	return setColWidths(f, sheet, map[string]float64{"A": 20, "B": 15})
}

func writeWeekSheet(f *excelize.File, week int, rows []plan.Row, headerStyle int) error {
	sheet := WeekSheetName(week)
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := make([]interface{}, len(weekHeaders))
	for i, h := range weekHeaders {
		headers[i] = h
	}
	if err := setRow(f, sheet, 1, headers...); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "G1", headerStyle); err != nil {
		return err
	}

	for i, row := range rows {
		values := []interface{}{row.Day.Title(), row.Exercise, row.Intensity, row.Scheme, row.Weight}
		if row.HasWeight {
			values = append(values, row.Low, row.High)
		}
		if err := setRow(f, sheet, i+2, values...); err != nil {
			return err
		}
	}

	return setColWidths(f, sheet, map[string]float64{
		"A": 14, "B": 34, "C": 14, "D": 22, "E": 36, "F": 10, "G": 10,
	})
}

// setRow записывает значения в строку row, начиная с колонки A
func setRow(f *excelize.File, sheet string, row int, values ...interface{}) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("ошибка записи %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}

func setColWidths(f *excelize.File, sheet string, widths map[string]float64) error {
	for col, width := range widths {
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return err
		}
	}
	return nil
}
