package domain

// AmountPolicy holds the test-mode clamp and the confirmation tolerance.
type AmountPolicy struct {
	TestMode  bool
	Cap       int64
	Tolerance int64
}

// Clamp returns the amount shown to the payer. Outside test mode it is the
// amount itself.
func (p AmountPolicy) Clamp(amount int64) int64 {
	if p.TestMode && p.Cap > 0 && amount > p.Cap {
		return p.Cap
	}
	return amount
}

// Expected returns the amount a confirmation should observe. Records written
// before clamp metadata existed fall back to re-applying the clamp.
func (p AmountPolicy) Expected(original int64, storedClamped *int64) int64 {
	if storedClamped != nil {
		return *storedClamped
	}
	return p.Clamp(original)
}

// Accepts reports whether observed is within tolerance of expected.
func (p AmountPolicy) Accepts(expected, observed int64) bool {
	diff := expected - observed
	if diff < 0 {
		diff = -diff
	}
	return diff <= p.Tolerance
}
