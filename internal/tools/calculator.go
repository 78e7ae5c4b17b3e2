package tools

import (
	"context"
	"math"
)

// round2 rounds to two decimal places for currency and percentage output.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func investmentCalculatorTool() *Tool {
	return &Tool{
		Name:        "investment-calculator",
		Description: "Calculate investment metrics for real estate properties",
		Params: map[string]ParamDef{
			"property_price": {
				Type:        TypeNumber,
				Description: "The purchase price of the property",
				Required:    true,
			},
			"down_payment": {
				Type:        TypeNumber,
				Description: "The down payment amount",
				Required:    true,
			},
			"interest_rate": {
				Type:        TypeNumber,
				Description: "The annual interest rate as a percentage",
				Required:    true,
			},
			"loan_term": {
				Type:        TypeNumber,
				Description: "The loan term in years",
				Required:    true,
			},
			"monthly_rent": {
				Type:        TypeNumber,
				Description: "The expected monthly rental income",
			},
			"monthly_expenses": {
				Type:        TypeNumber,
				Description: "The expected monthly expenses",
			},
			"appreciation_rate": {
				Type:        TypeNumber,
				Description: "The expected annual appreciation rate as a percentage",
				Default:     3.0,
			},
			"calculation_type": {
				Type:        TypeString,
				Description: "The type of calculation to perform",
				Required:    true,
				Enum:        []string{"mortgage", "roi", "cashflow", "caprate", "all"},
			},
		},
		Execute: func(ctx context.Context, args map[string]any) (any, error) {
			propertyPrice := argFloat(args, "property_price")
			downPayment := argFloat(args, "down_payment")
			interestRate := argFloat(args, "interest_rate")
			loanTerm := argFloat(args, "loan_term")
			monthlyRent := argFloat(args, "monthly_rent")
			monthlyExpenses := argFloat(args, "monthly_expenses")
			appreciationRate := argFloat(args, "appreciation_rate")

			loanAmount := propertyPrice - downPayment

			monthlyRate := interestRate / 100 / 12
			payments := loanTerm * 12

			// Zero-rate loans amortize straight-line; the annuity formula
			// divides by zero there.
			var monthlyPayment float64
			if monthlyRate > 0 {
				compounded := math.Pow(1+monthlyRate, payments)
				monthlyPayment = loanAmount * (monthlyRate * compounded) / (compounded - 1)
			} else if payments > 0 {
				monthlyPayment = loanAmount / payments
			}

			annualRent := monthlyRent * 12
			annualExpenses := monthlyExpenses * 12
			annualMortgage := monthlyPayment * 12
			annualCashFlow := annualRent - annualExpenses - annualMortgage
			var cashOnCashROI float64
			if downPayment > 0 {
				cashOnCashROI = annualCashFlow / downPayment * 100
			}

			netOperatingIncome := annualRent - annualExpenses
			var capRate float64
			if propertyPrice > 0 {
				capRate = netOperatingIncome / propertyPrice * 100
			}

			fiveYearValue := propertyPrice * math.Pow(1+appreciationRate/100, 5)
			appreciationGain := fiveYearValue - propertyPrice

			mortgage := map[string]any{
				"monthly_payment":     round2(monthlyPayment),
				"total_loan_amount":   round2(loanAmount),
				"total_interest_paid": round2(monthlyPayment*payments - loanAmount),
			}

			switch argString(args, "calculation_type") {
			case "mortgage":
				return mortgage, nil
			case "roi":
				return map[string]any{
					"cash_on_cash_roi":            round2(cashOnCashROI),
					"annual_cash_flow":            round2(annualCashFlow),
					"five_year_appreciation_gain": round2(appreciationGain),
				}, nil
			case "cashflow":
				return map[string]any{
					"monthly_cash_flow": round2(annualCashFlow / 12),
					"annual_cash_flow":  round2(annualCashFlow),
				}, nil
			case "caprate":
				return map[string]any{
					"cap_rate":             round2(capRate),
					"net_operating_income": round2(netOperatingIncome),
				}, nil
			default:
				return map[string]any{
					"mortgage": mortgage,
					"investment": map[string]any{
						"cash_on_cash_roi":  round2(cashOnCashROI),
						"cap_rate":          round2(capRate),
						"annual_cash_flow":  round2(annualCashFlow),
						"monthly_cash_flow": round2(annualCashFlow / 12),
					},
					"appreciation": map[string]any{
						"five_year_value":           round2(fiveYearValue),
						"five_year_gain":            round2(appreciationGain),
						"five_year_gain_percentage": round2(appreciationGain / propertyPrice * 100),
					},
				}, nil
			}
		},
	}
}
