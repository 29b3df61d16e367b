package usecase

// Verdict is the outcome of an eligibility check against a borrower's
// outstanding loans.
type Verdict string

const (
	VerdictAllowed Verdict = "allowed"
	VerdictWarned  Verdict = "warned"
	VerdictLocked  Verdict = "locked"
)

// Policy decides whether a borrower may take out another loan. Thresholds
// are configuration, not magic numbers: the defaults lock an account at two
// unreturned loans and warn at one.
type Policy struct {
	MaxOutstanding    int
	WarnAtOutstanding int
}

// DefaultPolicy reproduces the original lending rules.
func DefaultPolicy() Policy {
	return Policy{MaxOutstanding: 2, WarnAtOutstanding: 1}
}

// Evaluate maps a borrower's outstanding-loan count to a verdict. Pure
// function, no I/O.
func (p Policy) Evaluate(outstanding int) Verdict {
	switch {
	case outstanding >= p.MaxOutstanding:
		return VerdictLocked
	case outstanding >= p.WarnAtOutstanding:
		return VerdictWarned
	default:
		return VerdictAllowed
	}
}
