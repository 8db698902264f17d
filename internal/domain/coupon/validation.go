package coupon

// Validate applies every create/update input rule and returns all
// violations, not just the first. Pure function of its input.
func Validate(name string, percent int) []error {
	var violations []error

	if _, err := NewName(name); err != nil {
		violations = append(violations, err)
	}
	if _, err := NewPercent(percent); err != nil {
		violations = append(violations, err)
	}

	return violations
}
