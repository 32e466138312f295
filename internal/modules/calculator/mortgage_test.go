package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonthlyPayment(t *testing.T) {
	// $400k home, 20% down, 6.5% over 30 years.
	got := MonthlyPayment(320000, 6.5, 30)
	assert.InDelta(t, 2022.62, got, 0.01)

	t.Run("zero rate splits principal evenly", func(t *testing.T) {
		assert.InDelta(t, 1000.0, MonthlyPayment(360000, 0, 30), 1e-9)
	})

	t.Run("degenerate inputs", func(t *testing.T) {
		assert.Zero(t, MonthlyPayment(0, 6.5, 30))
		assert.Zero(t, MonthlyPayment(320000, 6.5, 0))
	})
}

func TestPayment(t *testing.T) {
	in := PaymentInput{
		HomePrice:          400000,
		DownPaymentPercent: 20,
		InterestRate:       6.5,
		LoanTermYears:      30,
		PropertyTaxRate:    0.6,
		MonthlyInsurance:   150,
		MonthlyHOA:         50,
		PMIRate:            0.5,
	}
	res := Payment(in)
	assert.InDelta(t, 320000, res.LoanAmount, 1e-9)
	assert.InDelta(t, 80000, res.DownPaymentAmount, 1e-9)
	assert.InDelta(t, 200, res.MonthlyTax, 1e-9) // 400000*0.6%/12
	assert.Zero(t, res.MonthlyPMI, "no PMI at 20%% down")
	assert.InDelta(t, res.PrincipalAndInterest+200+150+50, res.TotalMonthly, 1e-9)

	t.Run("pmi below threshold", func(t *testing.T) {
		in := in
		in.DownPaymentPercent = 10
		res := Payment(in)
		// 360k loan at 0.5% annual PMI.
		assert.InDelta(t, 150, res.MonthlyPMI, 1e-9)
	})
}

func TestAffordability(t *testing.T) {
	in := AffordabilityInput{
		AnnualIncome:  120000,
		MonthlyDebt:   600,
		DownPayment:   50000,
		InterestRate:  6.5,
		LoanTermYears: 30,
		DTIRatio:      36,
	}
	res := Affordability(in)
	assert.InDelta(t, 3000, res.MaxMonthlyPayment, 1e-9) // 10000*0.36-600
	assert.Greater(t, res.MaxLoanAmount, 0.0)
	assert.InDelta(t, res.MaxLoanAmount+50000, res.MaxHomePrice, 1e-9)

	t.Run("round trip through payment formula", func(t *testing.T) {
		back := MonthlyPayment(res.MaxLoanAmount, in.InterestRate, in.LoanTermYears)
		assert.InDelta(t, res.MaxMonthlyPayment, back, 0.01)
	})

	t.Run("debt exceeding income yields zeros", func(t *testing.T) {
		in := in
		in.MonthlyDebt = 5000
		assert.Equal(t, AffordabilityResult{}, Affordability(in))
	})

	t.Run("zero rate", func(t *testing.T) {
		in := in
		in.InterestRate = 0
		res := Affordability(in)
		assert.InDelta(t, 3000*360, res.MaxLoanAmount, 1e-6)
	})
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 50000.0, Clamp(10, 50000, 3000000, 5000))
	assert.Equal(t, 3000000.0, Clamp(9e9, 50000, 3000000, 5000))
	assert.Equal(t, 455000.0, Clamp(456000, 50000, 3000000, 5000))
	assert.Equal(t, 6.5, Clamp(6.51, 0, 15, 0.125))
	// No step: only the bounds apply.
	assert.Equal(t, 42.0, Clamp(42, 0, 100, 0))
}
