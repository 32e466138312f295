package calculator

// FieldRange bounds a single numeric calculator input: its prefill value plus
// the min/max/step the UI clamps against.
type FieldRange struct {
	Default float64 `json:"default"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Step    float64 `json:"step"`
}

// PaymentSettings configures the monthly-payment calculator tab.
type PaymentSettings struct {
	HomePrice          FieldRange `json:"homePrice"`
	DownPaymentPercent FieldRange `json:"downPaymentPercent"`
	InterestRate       FieldRange `json:"interestRate"`
	PropertyTaxRate    FieldRange `json:"propertyTaxRate"`
	MonthlyInsurance   FieldRange `json:"monthlyInsurance"`
	MonthlyHOA         FieldRange `json:"monthlyHoa"`
	PMIRate            FieldRange `json:"pmiRate"`
	LoanTermOptions    []int      `json:"loanTermOptions"`
	DefaultLoanTerm    int        `json:"defaultLoanTerm"`
}

// AffordabilitySettings configures the affordability calculator tab.
type AffordabilitySettings struct {
	AnnualIncome    FieldRange `json:"annualIncome"`
	MonthlyDebt     FieldRange `json:"monthlyDebt"`
	DownPayment     FieldRange `json:"downPayment"`
	InterestRate    FieldRange `json:"interestRate"`
	DTIRatio        FieldRange `json:"dtiRatio"`
	LoanTermOptions []int      `json:"loanTermOptions"`
	DefaultLoanTerm int        `json:"defaultLoanTerm"`
}

// DisplaySettings controls tab visibility and labels. The refinance tab is
// configuration only; no computation backs it.
type DisplaySettings struct {
	ShowPayment        bool   `json:"showPayment"`
	PaymentLabel       string `json:"paymentLabel"`
	ShowAffordability  bool   `json:"showAffordability"`
	AffordabilityLabel string `json:"affordabilityLabel"`
	ShowRefinance      bool   `json:"showRefinance"`
	RefinanceLabel     string `json:"refinanceLabel"`
}

// Settings is the admin-configurable calculator document, stored as a
// singleton alongside the site content.
type Settings struct {
	PaymentCalculator       PaymentSettings       `json:"paymentCalculator"`
	AffordabilityCalculator AffordabilitySettings `json:"affordabilityCalculator"`
	DisplaySettings         DisplaySettings       `json:"displaySettings"`
}

// groupNames is the fixed set of top-level merge targets.
var groupNames = []string{"paymentCalculator", "affordabilityCalculator", "displaySettings"}

func isGroup(name string) bool {
	for _, g := range groupNames {
		if g == name {
			return true
		}
	}
	return false
}

// Defaults returns the hard-coded settings used to seed the singleton and to
// answer a reset.
func Defaults() Settings {
	return Settings{
		PaymentCalculator: PaymentSettings{
			HomePrice:          FieldRange{Default: 450000, Min: 50000, Max: 3000000, Step: 5000},
			DownPaymentPercent: FieldRange{Default: 20, Min: 0, Max: 100, Step: 1},
			InterestRate:       FieldRange{Default: 6.5, Min: 0, Max: 15, Step: 0.125},
			PropertyTaxRate:    FieldRange{Default: 0.62, Min: 0, Max: 5, Step: 0.01},
			MonthlyInsurance:   FieldRange{Default: 150, Min: 0, Max: 1000, Step: 10},
			MonthlyHOA:         FieldRange{Default: 0, Min: 0, Max: 1500, Step: 10},
			PMIRate:            FieldRange{Default: 0.5, Min: 0, Max: 2, Step: 0.05},
			LoanTermOptions:    []int{10, 15, 20, 30},
			DefaultLoanTerm:    30,
		},
		AffordabilityCalculator: AffordabilitySettings{
			AnnualIncome:    FieldRange{Default: 100000, Min: 20000, Max: 1000000, Step: 5000},
			MonthlyDebt:     FieldRange{Default: 500, Min: 0, Max: 10000, Step: 50},
			DownPayment:     FieldRange{Default: 60000, Min: 0, Max: 1000000, Step: 5000},
			InterestRate:    FieldRange{Default: 6.5, Min: 0, Max: 15, Step: 0.125},
			DTIRatio:        FieldRange{Default: 36, Min: 20, Max: 50, Step: 1},
			LoanTermOptions: []int{15, 20, 30},
			DefaultLoanTerm: 30,
		},
		DisplaySettings: DisplaySettings{
			ShowPayment:        true,
			PaymentLabel:       "Monthly Payment",
			ShowAffordability:  true,
			AffordabilityLabel: "How Much Can I Afford?",
			ShowRefinance:      false,
			RefinanceLabel:     "Refinance",
		},
	}
}
