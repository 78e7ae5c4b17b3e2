package tools

import (
	"context"
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.01
}

func TestInvestmentCalculator(t *testing.T) {
	tool := investmentCalculatorTool()

	baseArgs := func(calcType string) map[string]any {
		return map[string]any{
			"property_price":   300000.0,
			"down_payment":     60000.0,
			"interest_rate":    6.0,
			"loan_term":        30.0,
			"monthly_rent":     2500.0,
			"monthly_expenses": 500.0,
			"calculation_type": calcType,
		}
	}

	t.Run("mortgage", func(t *testing.T) {
		result, err := tool.Call(context.Background(), baseArgs("mortgage"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got := result.(map[string]any)
		if v := got["monthly_payment"].(float64); !almostEqual(v, 1438.92) {
			t.Errorf("monthly_payment = %v, want ~1438.92", v)
		}
		if v := got["total_loan_amount"].(float64); v != 240000 {
			t.Errorf("total_loan_amount = %v, want 240000", v)
		}
	})

	t.Run("zero interest rate amortizes straight-line", func(t *testing.T) {
		args := baseArgs("mortgage")
		args["interest_rate"] = 0.0

		result, err := tool.Call(context.Background(), args)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got := result.(map[string]any)
		payment := got["monthly_payment"].(float64)
		if math.IsNaN(payment) || math.IsInf(payment, 0) {
			t.Fatalf("monthly_payment = %v", payment)
		}
		if want := 240000.0 / 360; !almostEqual(payment, want) {
			t.Errorf("monthly_payment = %v, want %v", payment, want)
		}
		if v := got["total_interest_paid"].(float64); !almostEqual(v, 0) {
			t.Errorf("total_interest_paid = %v, want 0", v)
		}
	})

	t.Run("caprate", func(t *testing.T) {
		result, err := tool.Call(context.Background(), baseArgs("caprate"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got := result.(map[string]any)
		if v := got["net_operating_income"].(float64); v != 24000 {
			t.Errorf("net_operating_income = %v, want 24000", v)
		}
		if v := got["cap_rate"].(float64); v != 8 {
			t.Errorf("cap_rate = %v, want 8", v)
		}
	})

	t.Run("cashflow", func(t *testing.T) {
		result, err := tool.Call(context.Background(), baseArgs("cashflow"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got := result.(map[string]any)
		if v := got["annual_cash_flow"].(float64); !almostEqual(v, 6732.94) {
			t.Errorf("annual_cash_flow = %v, want ~6732.94", v)
		}
	})

	t.Run("roi uses default appreciation rate", func(t *testing.T) {
		result, err := tool.Call(context.Background(), baseArgs("roi"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got := result.(map[string]any)
		if v := got["cash_on_cash_roi"].(float64); !almostEqual(v, 11.22) {
			t.Errorf("cash_on_cash_roi = %v, want ~11.22", v)
		}
		if v := got["five_year_appreciation_gain"].(float64); !almostEqual(v, 47782.22) {
			t.Errorf("five_year_appreciation_gain = %v, want ~47782.22", v)
		}
	})

	t.Run("all returns every section", func(t *testing.T) {
		result, err := tool.Call(context.Background(), baseArgs("all"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got := result.(map[string]any)
		for _, section := range []string{"mortgage", "investment", "appreciation"} {
			if _, ok := got[section]; !ok {
				t.Errorf("missing section %q", section)
			}
		}
	})

	t.Run("rejects unknown calculation type", func(t *testing.T) {
		if _, err := tool.Call(context.Background(), baseArgs("amortization")); err == nil {
			t.Error("expected enum violation")
		}
	})
}
