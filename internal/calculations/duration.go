package calculations

import "fmt"

// FormatRemainingPeriods описывает срок словами: целые годы и оставшиеся
// месяцы, например "It will take 2 years and 1 month to repay this loan!"
func FormatRemainingPeriods(periods int) string {
	years := periods / 12
	months := periods % 12

	var text string
	switch {
	case years > 0 && months > 0:
		text = plural(years, "year") + " and " + plural(months, "month")
	case years > 0:
		text = plural(years, "year")
	case months > 0:
		text = plural(months, "month")
	}

	return "It will take " + text + " to repay this loan!"
}

func plural(count int, unit string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, unit)
	}
	return fmt.Sprintf("%d %ss", count, unit)
}
