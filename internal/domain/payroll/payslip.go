package payroll

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

// GeneratePayslipPDF renders a payroll record to a PDF and returns the file
// path. When a data-encryption key is configured the file is stored encrypted
// with an .enc suffix. Amounts are rounded to two decimals here only; the
// stored record keeps full float precision.
func (s *Service) GeneratePayslipPDF(ctx context.Context, recordID string) (string, error) {
	record, err := s.store.GetByID(ctx, recordID)
	if err != nil {
		return "", err
	}
	header, err := s.store.GetPayslipHeader(ctx, record.UserID)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.payslipDir, 0o755); err != nil {
		return "", err
	}
	filePath := filepath.Join(s.payslipDir, "payroll_"+record.ID+".pdf")

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "Payslip", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s %s", header.FirstName, header.LastName))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s to %s",
		record.PeriodStart.Format("02.01.2006"), record.PeriodEnd.Format("02.01.2006")))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Country: %s", header.Country))
	if header.Country == CountryColombia && header.Contract != "" {
		pdf.Ln(7)
		pdf.Cell(0, 8, fmt.Sprintf("Contract type: %s", header.Contract))
	}
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Working hours")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Regular hours: %s", money(record.Regular)))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Overtime hours: %s", money(record.Overtime)))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Night hours: %s", money(record.Night)))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Holiday/Sunday hours: %s", money(record.Holiday+record.SundayHoliday)))
	if header.Country == CountryColombia {
		pdf.Ln(6)
		pdf.Cell(0, 7, fmt.Sprintf("Overtime night hours: %s", money(record.OvertimeNight)))
		pdf.Ln(6)
		pdf.Cell(0, 7, fmt.Sprintf("Overtime Sunday/holiday hours: %s", money(record.OvertimeSundayHoliday)))
		pdf.Ln(6)
		pdf.Cell(0, 7, fmt.Sprintf("Overtime night Sunday/holiday hours: %s", money(record.OvertimeNightSundayHoliday)))
	}
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Calculation")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Hourly rate: %s %s", money(record.HourlyRate), record.Currency))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Gross pay: %s %s", money(record.GrossPay), record.Currency))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Social security: %s %s", money(record.SocialSecurity), record.Currency))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Taxes: %s %s", money(record.Taxes), record.Currency))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Net pay: %s %s", money(record.NetPay), record.Currency))
	pdf.Ln(12)
	pdf.Cell(0, 7, fmt.Sprintf("Created on: %s", s.now().Format("02.01.2006")))

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", err
	}

	if s.crypto != nil && s.crypto.Configured() {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return "", err
		}
		encrypted, err := s.crypto.Encrypt(data)
		if err != nil {
			return "", err
		}
		encryptedPath := filePath + ".enc"
		if err := os.WriteFile(encryptedPath, encrypted, 0o600); err != nil {
			return "", err
		}
		if err := os.Remove(filePath); err != nil {
			return "", err
		}
		return encryptedPath, nil
	}

	return filePath, nil
}

// PayslipPDF renders the record and returns the plain PDF bytes, decrypting
// the stored file when encryption at rest is on.
func (s *Service) PayslipPDF(ctx context.Context, recordID string) ([]byte, error) {
	path, err := s.GeneratePayslipPDF(ctx, recordID)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if filepath.Ext(path) == ".enc" {
		return s.crypto.Decrypt(data)
	}
	return data, nil
}

// money formats an amount with two decimals for presentation.
func money(v float64) string {
	return decimal.NewFromFloat(v).Round(2).StringFixed(2)
}
