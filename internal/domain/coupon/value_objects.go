package coupon

import (
	"errors"
	"strings"
)

var (
	ErrNameRequired      = errors.New("coupon name is required")
	ErrPercentOutOfRange = errors.New("percent must be between 1 and 100")
)

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Name{}, ErrNameRequired
	}
	return Name{value: s}, nil
}

func (n Name) Value() string {
	return n.value
}

// EqualsFold reports case-insensitive equality; coupon names are unique
// ignoring case.
func (n Name) EqualsFold(other string) bool {
	return strings.EqualFold(n.value, other)
}

type Percent struct {
	value int
}

func NewPercent(v int) (Percent, error) {
	if v < 1 || v > 100 {
		return Percent{}, ErrPercentOutOfRange
	}
	return Percent{value: v}, nil
}

func (p Percent) Value() int {
	return p.value
}
