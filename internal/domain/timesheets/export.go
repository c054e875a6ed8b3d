package timesheets

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Timesheets"

var exportHeaders = []string{"ID", "User ID", "Employee", "Date", "Check in", "Check out", "Total hours"}

// Export writes the filtered rows as an .xlsx workbook.
func (s *Service) Export(ctx context.Context, filter Filter, w io.Writer) error {
	rows, err := s.store.List(ctx, filter)
	if err != nil {
		return err
	}

	f, err := Workbook(rows)
	if err != nil {
		return err
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("close workbook failed", "err", err)
		}
	}()
	return f.Write(w)
}

// Workbook builds the export sheet. The caller owns the returned file.
func Workbook(rows []Timesheet) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := fillWorkbook(f, rows); err != nil {
		if cerr := f.Close(); cerr != nil {
			slog.Warn("close workbook failed", "err", cerr)
		}
		return nil, err
	}
	return f, nil
}

func fillWorkbook(f *excelize.File, rows []Timesheet) error {
	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return err
	}

	for i, header := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(exportSheet, cell, header); err != nil {
			return err
		}
	}

	for i, ts := range rows {
		row := i + 2
		checkOut := ""
		if ts.CheckOut != nil {
			checkOut = *ts.CheckOut
		}
		values := []any{ts.ID, ts.UserID, ts.FullName, ts.Date, ts.CheckIn, checkOut, ts.TotalHours}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(exportSheet, cell, value); err != nil {
				return err
			}
		}
	}

	return styleWorkbook(f, len(rows))
}

func styleWorkbook(f *excelize.File, count int) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "#000000", Style: 2},
		},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	if err := f.SetCellStyle(exportSheet, "A1", "G1", headerStyle); err != nil {
		return fmt.Errorf("apply header style: %w", err)
	}

	if count > 0 {
		hoursStyle, err := f.NewStyle(&excelize.Style{NumFmt: 2})
		if err != nil {
			return fmt.Errorf("hours style: %w", err)
		}
		if err := f.SetCellStyle(exportSheet, "G2", fmt.Sprintf("G%d", count+1), hoursStyle); err != nil {
			return fmt.Errorf("apply hours style: %w", err)
		}
	}

	if err := f.SetColWidth(exportSheet, "C", "C", 28); err != nil {
		return err
	}
	return f.SetColWidth(exportSheet, "D", "G", 12)
}
