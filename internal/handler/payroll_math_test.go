package handler

import (
	"testing"

	"github.com/janarthanan-HTGE/HRMS-Dev/internal/model"
)

func TestBuildPayslip_NoLossOfPay(t *testing.T) {
	st := &model.SalaryStructure{ProfileID: 1, Basic: 50000, HRA: 20000, Allowances: 10000, Deductions: 5000}

	slip := buildPayslip(st, "08", "2026", 0)

	if slip.NetPay != 75000 {
		t.Fatalf("NetPay = %v, want 75000", slip.NetPay)
	}
	if slip.TotalAllowances != 30000 {
		t.Fatalf("TotalAllowances = %v, want 30000", slip.TotalAllowances)
	}
	if slip.Status != model.PayslipGenerated {
		t.Fatalf("Status = %s", slip.Status)
	}
	if slip.Reference == "" {
		t.Fatal("Reference must be set")
	}
}

func TestBuildPayslip_LossOfPayCutsDailyRate(t *testing.T) {
	// gross 60000, daily rate 2000, 3 unpaid days = 6000 cut.
	st := &model.SalaryStructure{ProfileID: 1, Basic: 40000, HRA: 12000, Allowances: 8000, Deductions: 1000}

	slip := buildPayslip(st, "08", "2026", 3)

	if slip.LOPDays != 3 {
		t.Fatalf("LOPDays = %d, want 3", slip.LOPDays)
	}
	if slip.NetPay != 53000 {
		t.Fatalf("NetPay = %v, want 53000", slip.NetPay)
	}
	if slip.TotalDeductions != 7000 {
		t.Fatalf("TotalDeductions = %v, want 7000", slip.TotalDeductions)
	}
}

func TestBuildPayslip_NetNeverNegative(t *testing.T) {
	st := &model.SalaryStructure{ProfileID: 1, Basic: 3000, Deductions: 2000}

	slip := buildPayslip(st, "08", "2026", 30) // a full month unpaid

	if slip.NetPay != 0 {
		t.Fatalf("NetPay = %v, want clamp at 0", slip.NetPay)
	}
}

func TestInclusiveDays(t *testing.T) {
	cases := []struct {
		from, to string
		want     int
		wantErr  bool
	}{
		{"2026-08-10", "2026-08-10", 1, false},
		{"2026-08-10", "2026-08-14", 5, false},
		{"2026-08-30", "2026-09-02", 4, false},
		{"2026-08-14", "2026-08-10", 0, true}, // backwards
		{"not-a-date", "2026-08-10", 0, true},
	}
	for _, tc := range cases {
		got, err := inclusiveDays(tc.from, tc.to)
		if (err != nil) != tc.wantErr {
			t.Fatalf("inclusiveDays(%q, %q) err = %v, wantErr %v", tc.from, tc.to, err, tc.wantErr)
		}
		if got != tc.want {
			t.Fatalf("inclusiveDays(%q, %q) = %d, want %d", tc.from, tc.to, got, tc.want)
		}
	}
}
