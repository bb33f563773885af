package normalize

import (
	"regexp"

	"github.com/ledgerlens/ledgerlens/internal/model"
)

// categoryAliases maps a normalized category cell directly to a category.
// Checked before the regex cascade.
var categoryAliases = map[string]model.Category{
	"revenue":               model.CategoryRevenue,
	"sales":                 model.CategoryRevenue,
	"income":                model.CategoryRevenue,
	"turnover":              model.CategoryRevenue,
	"cogs":                  model.CategoryCostOfGoodsSold,
	"cost of goods sold":    model.CategoryCostOfGoodsSold,
	"cost of sales":         model.CategoryCostOfGoodsSold,
	"direct costs":          model.CategoryCostOfGoodsSold,
	"operating expense":     model.CategoryOperatingExpense,
	"operating expenses":    model.CategoryOperatingExpense,
	"opex":                  model.CategoryOperatingExpense,
	"expense":               model.CategoryOperatingExpense,
	"expenses":              model.CategoryOperatingExpense,
	"overheads":             model.CategoryOperatingExpense,
	"other income":          model.CategoryOtherIncome,
	"other expense":         model.CategoryOtherExpense,
	"other expenses":        model.CategoryOtherExpense,
	"tax":                   model.CategoryTax,
	"taxes":                 model.CategoryTax,
	"vat":                   model.CategoryTax,
	"gst":                   model.CategoryTax,
	"current asset":         model.CategoryCurrentAsset,
	"current assets":        model.CategoryCurrentAsset,
	"non current asset":     model.CategoryNonCurrentAsset,
	"non current assets":    model.CategoryNonCurrentAsset,
	"fixed asset":           model.CategoryNonCurrentAsset,
	"fixed assets":          model.CategoryNonCurrentAsset,
	"current liability":     model.CategoryCurrentLiability,
	"current liabilities":   model.CategoryCurrentLiability,
	"non current liability": model.CategoryNonCurrentLiability,
	"long term liability":   model.CategoryNonCurrentLiability,
	"equity":                model.CategoryEquity,
	"capital":               model.CategoryEquity,
	"operating cash":        model.CategoryOperatingCash,
	"investing cash":        model.CategoryInvestingCash,
	"financing cash":        model.CategoryFinancingCash,
}

// categoryRule is one step of the classification cascade. Rules run in
// slice order; the first regex hit wins. The order itself is the
// contract: revenue before COGS before tax before operating expense,
// then the cash-flow buckets, then balance-sheet heuristics.
type categoryRule struct {
	re  *regexp.Regexp
	cat model.Category
}

var categoryRules = []categoryRule{
	{regexp.MustCompile(`\b(revenue|sales|income|turnover|fees earned|billing)\b`), model.CategoryRevenue},
	{regexp.MustCompile(`\b(cogs|cost of (goods|sales)|direct (cost|labor|labour)|materials|inventory purchase)\b`), model.CategoryCostOfGoodsSold},
	{regexp.MustCompile(`\b(tax|vat|gst|hmrc|irs|paye|duty)\b`), model.CategoryTax},
	{regexp.MustCompile(`\b(rent|salar|wage|payroll|utilit|insurance|software|subscription|advertis|marketing|travel|office|maintenance|repair|fuel|phone|internet|legal|accounting|bank (fee|charge))\b`), model.CategoryOperatingExpense},
	{regexp.MustCompile(`\boperating cash\b`), model.CategoryOperatingCash},
	{regexp.MustCompile(`\b(investing|capex|capital expenditure|asset (purchase|sale)|equipment purchase)\b`), model.CategoryInvestingCash},
	{regexp.MustCompile(`\b(financing|dividend|share issue|drawdown|loan (received|repayment))\b`), model.CategoryFinancingCash},
	{regexp.MustCompile(`\b(land|building|property|plant|machinery|vehicle|goodwill|intangible)\b`), model.CategoryNonCurrentAsset},
	{regexp.MustCompile(`\b(cash|bank|receivable|debtor|inventory|stock on hand|prepaid)\b`), model.CategoryCurrentAsset},
	{regexp.MustCompile(`\b(mortgage|debenture|long term (loan|debt)|bond payable)\b`), model.CategoryNonCurrentLiability},
	{regexp.MustCompile(`\b(payable|creditor|accrual|accrued|overdraft|credit card|short term loan)\b`), model.CategoryCurrentLiability},
	{regexp.MustCompile(`\b(equity|capital|retained earnings|share|owner|drawings)\b`), model.CategoryEquity},
	{regexp.MustCompile(`\binterest (income|received)\b`), model.CategoryOtherIncome},
	{regexp.MustCompile(`\b(interest (expense|paid)|write off|loss on|fx loss|penalt)\b`), model.CategoryOtherExpense},
}

// Category maps free-text signals onto the fixed category enum. The
// explicit category cell is checked against the alias table first; the
// regex cascade then scans the concatenation of category, account,
// description and section. Deterministic: same input, same output.
// Default is operating_expense.
func Category(category, account, description, section string) model.Category {
	if alias, ok := categoryAliases[Header(category)]; ok {
		return alias
	}

	haystack := Header(category + " " + account + " " + description + " " + section)
	for _, rule := range categoryRules {
		if rule.re.MatchString(haystack) {
			return rule.cat
		}
	}
	return model.CategoryOperatingExpense
}
