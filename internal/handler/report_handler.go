package handler

import (
	"fmt"

	"github.com/janarthanan-HTGE/HRMS-Dev/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

// ReportHandler builds the monthly attendance workbook for admin/HR.
type ReportHandler struct {
	records repository.AttendanceRepository
}

func NewReportHandler(records repository.AttendanceRepository) *ReportHandler {
	return &ReportHandler{records: records}
}

// AttendanceXLSX streams an .xlsx with one row per attendance record of the
// month: employee, date, in/out times, addresses and total hours.
func (h *ReportHandler) AttendanceXLSX(c *fiber.Ctx) error {
	month, year := monthYearQuery(c)

	records, err := h.records.ListByMonth(month, year)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	file := excelize.NewFile()
	defer func() { _ = file.Close() }()

	sheet := file.GetSheetName(0)
	headers := []string{"Employee Code", "Name", "Date", "Check In", "Check Out", "In Address", "Out Address", "Total Hours", "Status"}
	for i, head := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = file.SetCellValue(sheet, cell, head)
	}

	for row, rec := range records {
		code, name := "", ""
		if rec.Profile != nil {
			code = rec.Profile.EmployeeCode
			name = rec.Profile.FullName
		}
		checkOut := ""
		if rec.CheckOutTime != nil {
			checkOut = rec.CheckOutTime.Format("15:04:05")
		}
		values := []interface{}{
			code,
			name,
			rec.WorkDate,
			rec.CheckInTime.Format("15:04:05"),
			checkOut,
			rec.CheckInAddress,
			rec.CheckOutAddress,
			rec.TotalHours,
			rec.Status,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			_ = file.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build workbook"})
	}

	filename := fmt.Sprintf("attendance-%s-%s.xlsx", year, month)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return c.Send(buf.Bytes())
}
