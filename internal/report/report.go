// Package report renders budget data into downloadable documents.
package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/hmorales/wedplan/internal/models"
)

// BuildBudgetXLSX renders the budget breakdown as a workbook with a summary
// sheet, one row per vendor, and one row per activity.
func BuildBudgetXLSX(breakdown *models.BudgetBreakdown) ([]byte, error) {
	f := excelize.NewFile()
	summarySheet := "summary"
	vendorSheet := "vendors"
	activitySheet := "activities"
	f.SetSheetName("Sheet1", summarySheet)
	f.NewSheet(vendorSheet)
	f.NewSheet(activitySheet)

	_ = f.SetCellValue(summarySheet, "A1", "Wedding Budget")
	_ = f.SetCellValue(summarySheet, "A3", "Gross Total")
	_ = f.SetCellValue(summarySheet, "B3", breakdown.Totals.GrossTotal)
	_ = f.SetCellValue(summarySheet, "A4", "Total Subsidies")
	_ = f.SetCellValue(summarySheet, "B4", breakdown.Totals.TotalSubsidies)
	_ = f.SetCellValue(summarySheet, "A5", "Net Total")
	_ = f.SetCellValue(summarySheet, "B5", breakdown.Totals.NetTotal)
	_ = f.SetCellValue(summarySheet, "A6", "Total Paid")
	_ = f.SetCellValue(summarySheet, "B6", breakdown.Totals.TotalPaid)
	_ = f.SetCellValue(summarySheet, "A7", "Balance Due")
	_ = f.SetCellValue(summarySheet, "B7", breakdown.Totals.BalanceDue)
	_ = f.SetCellValue(summarySheet, "A9", "Generated")
	_ = f.SetCellValue(summarySheet, "B9", time.Now().Format(time.RFC3339))

	_ = f.SetCellValue(vendorSheet, "A1", "Category")
	_ = f.SetCellValue(vendorSheet, "B1", "Vendor")
	_ = f.SetCellValue(vendorSheet, "C1", "Cost")
	_ = f.SetCellValue(vendorSheet, "D1", "Paid")
	_ = f.SetCellValue(vendorSheet, "E1", "Balance")
	_ = f.SetCellValue(vendorSheet, "F1", "Status")
	row := 2
	for _, block := range breakdown.Vendors {
		for _, v := range block.Vendors {
			_ = f.SetCellValue(vendorSheet, fmt.Sprintf("A%d", row), string(block.Category))
			_ = f.SetCellValue(vendorSheet, fmt.Sprintf("B%d", row), v.Name)
			_ = f.SetCellValue(vendorSheet, fmt.Sprintf("C%d", row), v.Cost)
			_ = f.SetCellValue(vendorSheet, fmt.Sprintf("D%d", row), v.Paid)
			_ = f.SetCellValue(vendorSheet, fmt.Sprintf("E%d", row), v.Balance)
			_ = f.SetCellValue(vendorSheet, fmt.Sprintf("F%d", row), string(v.PaymentStatus))
			row++
		}
	}

	_ = f.SetCellValue(activitySheet, "A1", "Activity")
	_ = f.SetCellValue(activitySheet, "B1", "Cost/Person")
	_ = f.SetCellValue(activitySheet, "C1", "Subsidy/Person")
	_ = f.SetCellValue(activitySheet, "D1", "Attendees")
	_ = f.SetCellValue(activitySheet, "E1", "Total")
	_ = f.SetCellValue(activitySheet, "F1", "Net")
	for i, a := range breakdown.Activities.Activities {
		r := i + 2
		_ = f.SetCellValue(activitySheet, fmt.Sprintf("A%d", r), a.Name)
		_ = f.SetCellValue(activitySheet, fmt.Sprintf("B%d", r), a.CostPerPerson)
		_ = f.SetCellValue(activitySheet, fmt.Sprintf("C%d", r), a.HostSubsidy)
		_ = f.SetCellValue(activitySheet, fmt.Sprintf("D%d", r), a.EstimatedAttendees)
		_ = f.SetCellValue(activitySheet, fmt.Sprintf("E%d", r), a.TotalCost)
		_ = f.SetCellValue(activitySheet, fmt.Sprintf("F%d", r), a.NetCost)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildPaymentStatusPDF renders the payment status report as a PDF with one
// table per status bucket.
func BuildPaymentStatusPDF(report *models.PaymentStatusReport) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, "Vendor Payment Status")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", time.Now().Format(time.RFC3339)))
	pdf.Ln(8)

	section := func(title string) {
		pdf.SetFont("Arial", "B", 10)
		pdf.Cell(0, 6, title)
		pdf.Ln(7)
		pdf.CellFormat(70, 6, "Vendor", "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 6, "Category", "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 6, "Amount", "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 10)
	}

	section(fmt.Sprintf("Unpaid (total %.2f)", report.TotalUnpaid))
	for _, v := range report.UnpaidVendors {
		pdf.CellFormat(70, 6, v.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, string(v.Category), "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprintf("%.2f", v.BaseCost), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(4)

	section(fmt.Sprintf("Partially Paid (total paid %.2f)", report.TotalPartial))
	for _, v := range report.PartiallyPaidVendors {
		pdf.CellFormat(70, 6, v.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, string(v.Category), "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprintf("%.2f due", v.BalanceDue), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(4)

	section(fmt.Sprintf("Paid (total %.2f)", report.TotalPaid))
	for _, v := range report.PaidVendors {
		pdf.CellFormat(70, 6, v.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, string(v.Category), "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprintf("%.2f", v.AmountPaid), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
