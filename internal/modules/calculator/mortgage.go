package calculator

import "math"

// pmiThreshold is the down-payment percentage below which PMI applies.
const pmiThreshold = 20.0

// PaymentInput holds the fields of a monthly-payment computation.
type PaymentInput struct {
	HomePrice          float64 `json:"homePrice"          binding:"required"`
	DownPaymentPercent float64 `json:"downPaymentPercent"`
	InterestRate       float64 `json:"interestRate"`
	LoanTermYears      int     `json:"loanTermYears"      binding:"required"`
	PropertyTaxRate    float64 `json:"propertyTaxRate"`
	MonthlyInsurance   float64 `json:"monthlyInsurance"`
	MonthlyHOA         float64 `json:"monthlyHoa"`
	PMIRate            float64 `json:"pmiRate"`
}

// PaymentResult is the monthly cost breakdown.
type PaymentResult struct {
	LoanAmount           float64 `json:"loanAmount"`
	DownPaymentAmount    float64 `json:"downPaymentAmount"`
	PrincipalAndInterest float64 `json:"principalAndInterest"`
	MonthlyTax           float64 `json:"monthlyTax"`
	MonthlyInsurance     float64 `json:"monthlyInsurance"`
	MonthlyHOA           float64 `json:"monthlyHoa"`
	MonthlyPMI           float64 `json:"monthlyPmi"`
	TotalMonthly         float64 `json:"totalMonthly"`
}

// AffordabilityInput holds the fields of an affordability computation.
type AffordabilityInput struct {
	AnnualIncome  float64 `json:"annualIncome" binding:"required"`
	MonthlyDebt   float64 `json:"monthlyDebt"`
	DownPayment   float64 `json:"downPayment"`
	InterestRate  float64 `json:"interestRate"`
	LoanTermYears int     `json:"loanTermYears" binding:"required"`
	DTIRatio      float64 `json:"dtiRatio"      binding:"required"`
}

// AffordabilityResult reports the budget ceiling implied by the inputs.
type AffordabilityResult struct {
	MaxMonthlyPayment float64 `json:"maxMonthlyPayment"`
	MaxLoanAmount     float64 `json:"maxLoanAmount"`
	MaxHomePrice      float64 `json:"maxHomePrice"`
}

// MonthlyPayment computes the fixed-rate amortized principal-and-interest
// payment for a loan. annualRate is a percentage. A zero rate degrades to a
// straight principal split.
func MonthlyPayment(principal, annualRate float64, years int) float64 {
	n := float64(years * 12)
	if n <= 0 || principal <= 0 {
		return 0
	}
	r := annualRate / 12 / 100
	if r == 0 {
		return principal / n
	}
	pow := math.Pow(1+r, n)
	return principal * r * pow / (pow - 1)
}

// Payment computes the full monthly cost breakdown. PMI applies only when the
// down payment is below 20% of the home price.
func Payment(in PaymentInput) PaymentResult {
	down := in.HomePrice * in.DownPaymentPercent / 100
	principal := in.HomePrice - down

	res := PaymentResult{
		LoanAmount:           principal,
		DownPaymentAmount:    down,
		PrincipalAndInterest: MonthlyPayment(principal, in.InterestRate, in.LoanTermYears),
		MonthlyTax:           in.HomePrice * in.PropertyTaxRate / 100 / 12,
		MonthlyInsurance:     in.MonthlyInsurance,
		MonthlyHOA:           in.MonthlyHOA,
	}
	if in.DownPaymentPercent < pmiThreshold {
		res.MonthlyPMI = principal * in.PMIRate / 100 / 12
	}
	res.TotalMonthly = res.PrincipalAndInterest + res.MonthlyTax +
		res.MonthlyInsurance + res.MonthlyHOA + res.MonthlyPMI
	return res
}

// Affordability inverts the annuity formula: from the target debt-to-income
// ratio it derives the maximum monthly payment, the loan that payment
// services, and the resulting home price with the down payment added back.
func Affordability(in AffordabilityInput) AffordabilityResult {
	maxMonthly := in.AnnualIncome/12*in.DTIRatio/100 - in.MonthlyDebt
	if maxMonthly <= 0 {
		return AffordabilityResult{}
	}

	n := float64(in.LoanTermYears * 12)
	if n <= 0 {
		return AffordabilityResult{MaxMonthlyPayment: maxMonthly}
	}

	var maxLoan float64
	r := in.InterestRate / 12 / 100
	if r == 0 {
		maxLoan = maxMonthly * n
	} else {
		pow := math.Pow(1+r, n)
		maxLoan = maxMonthly * (pow - 1) / (r * pow)
	}

	return AffordabilityResult{
		MaxMonthlyPayment: maxMonthly,
		MaxLoanAmount:     maxLoan,
		MaxHomePrice:      maxLoan + in.DownPayment,
	}
}

// Clamp snaps v into [min, max] on the step grid anchored at min.
func Clamp(v, min, max, step float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		v = max
	}
	if step > 0 {
		v = min + math.Round((v-min)/step)*step
		if v > max {
			v -= step
		}
	}
	return v
}
