package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/phpdave11/gofpdf"
	"github.com/xuri/excelize/v2"

	"amortizer/domain"
)

// ExportService renders a computed schedule as CSV, PDF or XLSX.
type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

func csvHeader(withDates bool) []string {
	if withDates {
		return []string{"Period", "Date", "Payment", "Interest", "Principal", "Extra", "Balance"}
	}
	return []string{"Period", "Payment", "Interest", "Principal", "Extra", "Balance"}
}

// RenderCSV writes one line per period plus a header row.
func (s *ExportService) RenderCSV(result domain.ScheduleResult) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	withDates := len(result.Rows) > 0 && result.Rows[0].Date != ""
	if err := writer.Write(csvHeader(withDates)); err != nil {
		return nil, err
	}

	for _, row := range result.Rows {
		record := []string{strconv.Itoa(row.Period)}
		if withDates {
			record = append(record, row.Date)
		}
		record = append(record,
			fmt.Sprintf("%.2f", row.Payment),
			fmt.Sprintf("%.2f", row.Interest),
			fmt.Sprintf("%.2f", row.Principal),
			fmt.Sprintf("%.2f", row.Extra),
			fmt.Sprintf("%.2f", row.Balance),
		)
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	return buf.Bytes(), writer.Error()
}

// RenderPDF produces a summary block followed by the schedule table.
func (s *ExportService) RenderPDF(
	req domain.LoanRequest,
	result domain.ScheduleResult,
) ([]byte, error) {

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, "Amortization Schedule")
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(80, 8, fmt.Sprintf("Principal: %.2f", req.Principal))
	pdf.Ln(6)
	pdf.Cell(80, 8, fmt.Sprintf("Annual rate: %.2f%%", req.AnnualRatePercent))
	pdf.Ln(6)
	pdf.Cell(80, 8, fmt.Sprintf("Term: %d years (%s)", req.TermYears, req.Cadence))
	pdf.Ln(6)
	pdf.Cell(80, 8, fmt.Sprintf("Base payment: %.2f", result.BasePayment))
	pdf.Ln(6)
	pdf.Cell(80, 8, fmt.Sprintf("Total paid: %.2f", result.Totals.Payment))
	pdf.Ln(6)
	pdf.Cell(80, 8, fmt.Sprintf("Total interest: %.2f", result.Totals.Interest))
	pdf.Ln(12)

	withDates := len(result.Rows) > 0 && result.Rows[0].Date != ""

	pdf.SetFont("Arial", "B", 9)
	pdf.Cell(15, 7, "Period")
	if withDates {
		pdf.Cell(25, 7, "Date")
	}
	pdf.Cell(28, 7, "Payment")
	pdf.Cell(28, 7, "Interest")
	pdf.Cell(28, 7, "Principal")
	pdf.Cell(25, 7, "Extra")
	pdf.Cell(30, 7, "Balance")
	pdf.Ln(7)

	pdf.SetFont("Arial", "", 9)
	for _, row := range result.Rows {
		pdf.Cell(15, 6, strconv.Itoa(row.Period))
		if withDates {
			pdf.Cell(25, 6, row.Date)
		}
		pdf.Cell(28, 6, fmt.Sprintf("%.2f", row.Payment))
		pdf.Cell(28, 6, fmt.Sprintf("%.2f", row.Interest))
		pdf.Cell(28, 6, fmt.Sprintf("%.2f", row.Principal))
		pdf.Cell(25, 6, fmt.Sprintf("%.2f", row.Extra))
		pdf.Cell(30, 6, fmt.Sprintf("%.2f", row.Balance))
		pdf.Ln(6)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderXLSX produces a workbook with a Summary sheet and a Schedule sheet.
func (s *ExportService) RenderXLSX(
	req domain.LoanRequest,
	result domain.ScheduleResult,
) ([]byte, error) {

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			fmt.Println(err)
		}
	}()

	f.SetSheetName("Sheet1", "Summary")
	scheduleIdx, err := f.NewSheet("Schedule")
	if err != nil {
		return nil, err
	}

	summary := [][]interface{}{
		{"Principal", req.Principal},
		{"Annual rate (%)", req.AnnualRatePercent},
		{"Term (years)", req.TermYears},
		{"Cadence", string(req.Cadence)},
		{"Base payment", result.BasePayment},
		{"Total payment", result.Totals.Payment},
		{"Total interest", result.Totals.Interest},
		{"Total principal", result.Totals.Principal},
		{"Total extra", result.Totals.Extra},
		{"Periods", len(result.Rows)},
	}
	for i, pair := range summary {
		for j, value := range pair {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+1)
			f.SetCellValue("Summary", cell, value)
		}
	}

	withDates := len(result.Rows) > 0 && result.Rows[0].Date != ""
	for j, header := range csvHeader(withDates) {
		cell, _ := excelize.CoordinatesToCellName(j+1, 1)
		f.SetCellValue("Schedule", cell, header)
	}

	for i, row := range result.Rows {
		values := []interface{}{row.Period}
		if withDates {
			values = append(values, row.Date)
		}
		values = append(values, row.Payment, row.Interest, row.Principal, row.Extra, row.Balance)
		for j, value := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue("Schedule", cell, value)
		}
	}

	f.SetActiveSheet(scheduleIdx)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
