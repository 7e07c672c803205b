package mediaclient

import (
	"fmt"
	"strconv"
	"strings"
)

var knownBudgetUnits = map[string]string{
	"thousand": "Thousand",
	"million":  "Million",
	"billion":  "Billion",
}

// FormatBudget renders a budget amount and its unit label for display.
//
//	amount + label  -> "165 Million"
//	amount only     -> "165 Million" (Million assumed)
//	label only      -> "? Million"
//	neither         -> "-"
//
// The three conventional units are capitalized; any other label is shown
// verbatim.
func FormatBudget(amount *float64, label *string) string {
	unit := ""
	if label != nil {
		unit = strings.TrimSpace(*label)
	}
	if capitalized, ok := knownBudgetUnits[strings.ToLower(unit)]; ok {
		unit = capitalized
	}

	if amount == nil {
		if unit == "" {
			return "-"
		}
		return "? " + unit
	}

	if unit == "" {
		unit = "Million"
	}
	return formatAmount(*amount) + " " + unit
}

// formatAmount trims trailing zeros so 165.0 renders as "165" but 1.5 keeps
// its fraction.
func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

// BudgetSummary renders the record's budget for table display.
func BudgetSummary(record Media) string {
	return FormatBudget(record.Budget, record.BudgetLabel)
}

// DurationSummary renders the record's duration, "-" when absent.
func DurationSummary(record Media) string {
	if record.DurationMin == nil {
		return "-"
	}
	return fmt.Sprintf("%d min", *record.DurationMin)
}
