package pseo

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iwvelando/mortgage-calculator/pkg/format"
)

// Content is the editorial copy of a rate page.
type Content struct {
	Intro string `json:"intro"`
	Body  string `json:"body"`
}

// FAQItem is a question and answer shown on every landing page.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

var templates = []Content{
	{
		Intro: "Understanding mortgage rates in {state} for {tier} credit can help you estimate your monthly payment. Mortgage rates vary based on creditworthiness, with {tier} credit borrowers typically seeing rates that reflect their risk profile.",
		Body:  "When calculating your mortgage payment, consider that rates are illustrative and based on general market conditions. Actual rates depend on multiple factors including your credit score, debt-to-income ratio, loan-to-value ratio, and lender policies. Use this calculator to explore different scenarios and understand how changes in interest rates affect your monthly payment.",
	},
	{
		Intro: "Mortgage rates in {state} fluctuate based on economic conditions and borrower profiles. For borrowers with {tier} credit, rates may differ from those with excellent credit. This calculator provides estimates to help you plan your home purchase.",
		Body:  "Remember that mortgage rates are not guaranteed and can change daily. The rates shown are for educational purposes only. Always consult with multiple lenders to get current rate quotes. Your actual rate will depend on your complete financial profile and the specific loan program you choose.",
	},
	{
		Intro: "If you're considering a home purchase in {state} with {tier} credit, understanding potential mortgage rates is important. Rates vary by lender, loan type, and borrower qualifications.",
		Body:  "This calculator helps you estimate monthly payments based on illustrative rates. Property taxes, insurance costs, and HOA fees vary significantly by location within {state}. Be sure to research local costs and consult with real estate and mortgage professionals for accurate estimates.",
	},
	{
		Intro: "Homebuyers in {state} with {tier} credit should explore multiple mortgage options. Interest rates impact both your monthly payment and total interest paid over the life of the loan.",
		Body:  "The calculations provided are estimates for educational purposes. Your actual mortgage terms will depend on lender requirements, market conditions at the time of application, and your complete financial situation. Consider working with a mortgage broker to compare offers from multiple lenders.",
	},
	{
		Intro: "Mortgage rates in {state} reflect local market conditions and national economic factors. Borrowers with {tier} credit may see different rates than those with higher credit scores.",
		Body:  "Use this calculator as a starting point for understanding mortgage payments. Keep in mind that rates are illustrative and actual rates may be higher or lower. Additionally, property taxes and insurance costs can vary significantly within {state}, so local research is essential.",
	},
	{
		Intro: "When planning a home purchase in {state}, understanding how {tier} credit affects mortgage rates helps set realistic expectations. Rates are one component of your total monthly housing cost.",
		Body:  "This calculator provides estimates based on standard mortgage formulas. Actual rates and terms depend on your credit history, income stability, down payment amount, and lender policies. Always get pre-approved with actual lenders before making an offer on a home.",
	},
	{
		Intro: "Mortgage rates for {tier} credit borrowers in {state} can vary by lender and loan program. Understanding these rates helps you estimate your monthly payment and total loan cost.",
		Body:  "The rates and calculations shown are for educational and estimation purposes only. Real mortgage rates change daily and depend on many factors beyond credit score. Work with qualified mortgage professionals to get current rate quotes and understand all loan options available to you.",
	},
	{
		Intro: "Homebuyers in {state} with {tier} credit should understand how interest rates affect their mortgage payment. Even small rate differences can significantly impact monthly payments and total interest paid.",
		Body:  "This calculator uses illustrative rates to demonstrate payment calculations. Actual rates will depend on your complete financial profile, the loan program you choose, and current market conditions. Property taxes and insurance costs also vary by location within {state}, so local estimates are important.",
	},
	{
		Intro: "Mortgage rates in {state} are influenced by national economic trends and local market conditions. For borrowers with {tier} credit, rates may reflect additional risk factors considered by lenders.",
		Body:  "Use this calculator to explore different scenarios and understand how changes in interest rates, loan terms, and down payments affect your monthly payment. Remember that all rates and calculations are estimates. Consult with mortgage professionals for current rates and personalized loan options.",
	},
	{
		Intro: "Understanding mortgage rates for {tier} credit in {state} helps you plan your home purchase budget. Rates vary by lender, loan type, and borrower qualifications.",
		Body:  "The calculations provided are educational estimates. Actual mortgage rates change frequently and depend on many factors including your credit score, debt-to-income ratio, employment history, and the specific loan program. Always verify rates with actual lenders and consider getting pre-approved before house hunting.",
	},
}

var faq = []FAQItem{
	{
		Question: "What is included in my monthly mortgage payment?",
		Answer:   "Your monthly mortgage payment typically includes principal and interest (P&I), property taxes, home insurance, and HOA fees if applicable. The principal is the amount you borrowed, while interest is the cost of borrowing. Property taxes and insurance are usually escrowed and paid monthly.",
	},
	{
		Question: "What is the difference between interest rate and APR?",
		Answer:   "The interest rate is the cost of borrowing the principal loan amount. APR (Annual Percentage Rate) includes the interest rate plus other loan costs like origination fees and points. This calculator shows the interest rate, which is the base cost of your loan.",
	},
	{
		Question: "How does down payment affect my mortgage?",
		Answer:   "A larger down payment reduces your loan amount, which lowers your monthly payment and total interest paid over the life of the loan. It also helps you avoid private mortgage insurance (PMI) if you put down 20% or more. This calculator allows you to adjust the down payment to see its impact.",
	},
	{
		Question: "Should I choose a 15-year or 30-year mortgage?",
		Answer:   "A 15-year mortgage has higher monthly payments but significantly less total interest paid and builds equity faster. A 30-year mortgage has lower monthly payments, making it more affordable, but you'll pay more interest over time. Use this calculator to compare both options based on your financial situation.",
	},
	{
		Question: "Are the calculations accurate?",
		Answer:   "This calculator provides estimates based on standard mortgage formulas. Actual rates and terms depend on your credit score, lender policies, and market conditions. Always consult with a qualified mortgage professional for precise quotes and loan terms.",
	},
	{
		Question: "What are property taxes and how are they calculated?",
		Answer:   "Property taxes are annual fees paid to local governments based on your home's assessed value and local tax rates. They vary by location and are typically paid monthly through an escrow account. This calculator uses your annual property tax estimate to calculate the monthly portion.",
	},
	{
		Question: "Do I need home insurance?",
		Answer:   "Most lenders require homeowners insurance to protect their investment. Even if not required, insurance protects your property from damage. The cost varies by location, home value, and coverage level. This calculator includes annual insurance costs in your monthly payment estimate.",
	},
	{
		Question: "What are HOA fees?",
		Answer:   "HOA (Homeowners Association) fees are monthly payments for shared community amenities and maintenance. Not all homes have HOA fees. If your property is part of an HOA, these fees are included in your total monthly housing cost.",
	},
}

// FAQ returns a copy of the shared questions and answers.
func FAQ() []FAQItem {
	out := make([]FAQItem, len(faq))
	copy(out, faq)
	return out
}

// TemplateIndex returns which content template a state/tier page uses.
func TemplateIndex(state, tier string) int {
	return StableHash(state+"-"+tier) % len(templates)
}

// ContentForPage fills the page's template with the title-cased state
// and tier.
func ContentForPage(state, tier string) Content {
	t := templates[TemplateIndex(state, tier)]
	r := strings.NewReplacer("{state}", format.SlugToTitle(state), "{tier}", format.SlugToTitle(tier))
	return Content{Intro: r.Replace(t.Intro), Body: r.Replace(t.Body)}
}

// PageTitle is the title of a mortgage payment page.
func PageTitle(parts SlugParts) string {
	return fmt.Sprintf("%dk Home Mortgage Payment Calculator - %s%% Rate in %s",
		parts.PriceK, formatRate(parts.Rate), format.SlugToTitle(parts.Region))
}

// PageDescription is the meta description of a mortgage payment page.
func PageDescription(parts SlugParts) string {
	return fmt.Sprintf("Calculate your estimated monthly mortgage payment for a %s home in %s with a %s%% interest rate. Includes principal, interest, taxes, insurance, and HOA fees.",
		format.Money(float64(parts.PriceK)*1000), format.SlugToTitle(parts.Region), formatRate(parts.Rate))
}

// RatesPageTitle is the title of a state/tier rate page.
func RatesPageTitle(state State, tier string) string {
	return fmt.Sprintf("Mortgage Rates for %s Credit in %s | Mortgage Calculator",
		format.SlugToTitle(tier), state.DisplayName)
}

// RatesPageDescription is the meta description of a state/tier rate page.
func RatesPageDescription(state State, tier string) string {
	return fmt.Sprintf("Calculate your estimated mortgage payment for %s with %s credit. Explore mortgage rates, monthly payments, and loan terms. Educational estimates only.",
		state.DisplayName, format.SlugToTitle(tier))
}

func formatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', -1, 64)
}
