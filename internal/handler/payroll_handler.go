package handler

import (
	"math"

	"github.com/janarthanan-HTGE/HRMS-Dev/internal/authz"
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/middleware"
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/model"
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/repository"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type PayrollHandler struct {
	payroll repository.PayrollRepository
	leaves  repository.LeaveRepository
}

func NewPayrollHandler(payroll repository.PayrollRepository, leaves repository.LeaveRepository) *PayrollHandler {
	return &PayrollHandler{payroll: payroll, leaves: leaves}
}

type SalaryStructureInput struct {
	Basic      float64 `json:"basic" validate:"required,gt=0"`
	HRA        float64 `json:"hra" validate:"gte=0"`
	Allowances float64 `json:"allowances" validate:"gte=0"`
	Deductions float64 `json:"deductions" validate:"gte=0"`
}

func (h *PayrollHandler) UpsertStructure(c *fiber.Ctx) error {
	if !authz.CanManagePayroll(middleware.SessionFrom(c)) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied"})
	}
	profileID := uint(paramID(c))
	if profileID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing profile id"})
	}

	var req SalaryStructureInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	structure := &model.SalaryStructure{
		ProfileID:  profileID,
		Basic:      req.Basic,
		HRA:        req.HRA,
		Allowances: req.Allowances,
		Deductions: req.Deductions,
	}
	if err := h.payroll.UpsertStructure(structure); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Salary structure saved", "data": structure})
}

func (h *PayrollHandler) Structures(c *fiber.Ctx) error {
	structures, err := h.payroll.GetAllStructures()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Salary structures", "data": structures})
}

// Structure returns one profile's salary structure; owner or admin/HR.
func (h *PayrollHandler) Structure(c *fiber.Ctx) error {
	s := middleware.SessionFrom(c)

	profileID := uint(paramID(c))
	if !authz.CanReadOwned(s, profileID) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied"})
	}

	structure, err := h.payroll.GetStructure(profileID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No salary structure for that profile"})
	}
	return c.JSON(fiber.Map{"message": "Salary structure", "data": structure})
}

type GeneratePayrollRequest struct {
	Month string `json:"month" validate:"required,len=2"`
	Year  string `json:"year" validate:"required,len=4"`
}

// Generate produces one payslip per salary structure for the period. Loss of
// pay comes from approved unpaid leave days; profiles that already have a
// payslip for the period are skipped, so the call is idempotent.
func (h *PayrollHandler) Generate(c *fiber.Ctx) error {
	if !authz.CanManagePayroll(middleware.SessionFrom(c)) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied"})
	}

	var req GeneratePayrollRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	structures, err := h.payroll.GetAllStructures()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	generated := make([]model.Payslip, 0, len(structures))
	skipped := 0
	for _, st := range structures {
		exists, err := h.payroll.HasPayslip(st.ProfileID, req.Month, req.Year)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		if exists {
			skipped++
			continue
		}

		lopDays, err := h.leaves.ApprovedUnpaidDays(st.ProfileID, req.Month, req.Year)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}

		slip := buildPayslip(&st, req.Month, req.Year, lopDays)
		if err := h.payroll.CreatePayslip(slip); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		generated = append(generated, *slip)
	}

	return c.JSON(fiber.Map{
		"message": "Payroll generated",
		"data":    fiber.Map{"generated": len(generated), "skipped": skipped, "payslips": generated},
	})
}

// buildPayslip applies the pay math: gross = basic + hra + allowances, the
// loss-of-pay cut is gross/30 per unpaid day, net = gross − deductions − lop.
func buildPayslip(st *model.SalaryStructure, month, year string, lopDays int) *model.Payslip {
	gross := st.Basic + st.HRA + st.Allowances
	lopCut := round2(gross / 30 * float64(lopDays))
	net := round2(gross - st.Deductions - lopCut)
	if net < 0 {
		net = 0
	}

	breakdown, _ := sonic.Marshal(fiber.Map{
		"basic":         st.Basic,
		"hra":           st.HRA,
		"allowances":    st.Allowances,
		"deductions":    st.Deductions,
		"lop_days":      lopDays,
		"lop_deduction": lopCut,
	})

	return &model.Payslip{
		ProfileID:       st.ProfileID,
		Month:           month,
		Year:            year,
		Reference:       uuid.NewString(),
		BasicPay:        st.Basic,
		TotalAllowances: st.HRA + st.Allowances,
		TotalDeductions: round2(st.Deductions + lopCut),
		LOPDays:         lopDays,
		NetPay:          net,
		Breakdown:       breakdown,
		Status:          model.PayslipGenerated,
	}
}

func (h *PayrollHandler) Payslips(c *fiber.Ctx) error {
	month, year := monthYearQuery(c)
	payslips, err := h.payroll.GetPayslips(month, year)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Payslips", "data": payslips})
}

// Mine lists the caller's own payslips for a year.
func (h *PayrollHandler) Mine(c *fiber.Ctx) error {
	s := middleware.SessionFrom(c)
	_, year := monthYearQuery(c)

	payslips, err := h.payroll.GetPayslipsByProfileYear(s.ProfileID, year)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "My payslips", "data": payslips})
}

// Payslip returns one slip; owner or admin/HR.
func (h *PayrollHandler) Payslip(c *fiber.Ctx) error {
	s := middleware.SessionFrom(c)

	slip, err := h.payroll.GetPayslipByID(uint(paramID(c)))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payslip not found"})
	}
	if !authz.CanReadOwned(s, slip.ProfileID) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied"})
	}
	return c.JSON(fiber.Map{"message": "Payslip", "data": slip})
}

func (h *PayrollHandler) MarkPaid(c *fiber.Ctx) error {
	slip, err := h.payroll.GetPayslipByID(uint(paramID(c)))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payslip not found"})
	}
	if err := h.payroll.MarkPaid(slip.ID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Payslip marked paid"})
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
