package usecase

import (
	"fmt"
	"strconv"
)

// NormalizePeriod accepts "1".."12" or "01".."12" and a four-digit year,
// returning the zero-padded month used in storage.
func NormalizePeriod(month, year string) (string, string, error) {
	m, err := strconv.Atoi(month)
	if err != nil || m < 1 || m > 12 {
		return "", "", invalid("month must be between 1 and 12")
	}
	y, err := strconv.Atoi(year)
	if err != nil || len(year) != 4 || y < 1 {
		return "", "", invalid("year must be YYYY")
	}
	return fmt.Sprintf("%02d", m), year, nil
}
