package citation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var monthAbbrPattern = regexp.MustCompile(
	`(?i)\b(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Sept|Oct|Nov|Dec)[a-z]*\.?\s+(\d{1,2}),?\s*(\d{4})\b`)

var slashDatePattern = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{4})\b`)

var yearPattern = regexp.MustCompile(`\b(\d{4})\b`)

var monthNumbers = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "sept": 9, "oct": 10, "nov": 11, "dec": 12,
}

// parseDate looks for a structured date within a parenthetical body per
// spec.md §4.4: "MonthAbbr. D, YYYY" or "M/D/YYYY" takes priority over a
// bare year; if neither structured form is present it returns nil, and the
// caller falls back to lastYear for a bare year.
func parseDate(body string) *Date {
	if m := monthAbbrPattern.FindStringSubmatch(body); m != nil {
		month := monthNumbers[strings.ToLower(m[1])]
		day, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		return &Date{ISO: fmt.Sprintf("%04d-%02d-%02d", year, month, day), Year: year, Month: month, Day: day}
	}
	if m := slashDatePattern.FindStringSubmatch(body); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		return &Date{ISO: fmt.Sprintf("%04d-%02d-%02d", year, month, day), Year: year, Month: month, Day: day}
	}
	return nil
}

// lastYear returns the last bare four-digit run in body (spec.md §4.4:
// "four consecutive digits; last such is the year").
func lastYear(body string) (int, bool) {
	matches := yearPattern.FindAllString(body, -1)
	if len(matches) == 0 {
		return 0, false
	}
	year, err := strconv.Atoi(matches[len(matches)-1])
	if err != nil {
		return 0, false
	}
	return year, true
}
