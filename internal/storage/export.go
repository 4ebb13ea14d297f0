package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExportQuotesToExcel renders every quote request into an xlsx workbook,
// newest first, and returns it as a buffer for the download handler.
func (s *PostgresStorage) ExportQuotesToExcel(ctx context.Context) (*bytes.Buffer, error) {
	quotes, err := s.ListQuotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quotes: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Quotes"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	headers := []string{
		"ID", "Reference", "Name", "Email", "Phone", "Company",
		"Box Type", "Quantity", "Length", "Width", "Height",
		"Printing", "Colors", "Use Case", "Special Requirements",
		"Status", "Quoted Price", "Notes", "Created At",
	}
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	style, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	lastHeader, _ := excelize.CoordinatesToCellName(len(headers), 1)
	f.SetCellStyle(sheet, "A1", lastHeader, style)

	for row, quote := range quotes {
		data := []interface{}{
			quote.ID,
			quote.Reference,
			quote.Name,
			quote.Email,
			quote.Phone,
			quote.Company,
			quote.BoxType,
			quote.Quantity,
			derefOrEmpty(quote.Length),
			derefOrEmpty(quote.Width),
			derefOrEmpty(quote.Height),
			quote.Printing,
			quote.PrintColors,
			quote.UseCase,
			quote.SpecialRequirements,
			quote.Status,
			derefOrEmpty(quote.QuotedPrice),
			quote.Notes,
			quote.CreatedAt.Format("2006-01-02 15:04"),
		}
		for col, value := range data {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf, nil
}

func derefOrEmpty(v *float64) interface{} {
	if v == nil {
		return ""
	}
	return *v
}
