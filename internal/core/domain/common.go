package domain

import "fmt"

// Bounds accepted for a depreciation period year.
const (
	MinPeriodYear = 2020
	MaxPeriodYear = 2100
)

// Period identifies one accounting month.
type Period struct {
	Year  int `json:"an"`
	Month int `json:"luna"`
}

// Validate checks the period lies inside the supported range.
func (p Period) Validate() error {
	if p.Year < MinPeriodYear || p.Year > MaxPeriodYear {
		return fmt.Errorf("year must be between %d and %d, got %d", MinPeriodYear, MaxPeriodYear, p.Year)
	}
	if p.Month < 1 || p.Month > 12 {
		return fmt.Errorf("month must be between 1 and 12, got %d", p.Month)
	}
	return nil
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

// Before reports whether p is strictly earlier than other.
func (p Period) Before(other Period) bool {
	if p.Year != other.Year {
		return p.Year < other.Year
	}
	return p.Month < other.Month
}
