package identity

import "jobboard/internal/domain"

// Judgement is the confidence level the registrar attached to a claimed
// identity.
type Judgement string

const (
	JudgementUnknown    Judgement = "Unknown"
	JudgementFeePaid    Judgement = "FeePaid"
	JudgementReasonable Judgement = "Reasonable"
	JudgementKnownGood  Judgement = "KnownGood"
	JudgementOutOfDate  Judgement = "OutOfDate"
	JudgementLowQuality Judgement = "LowQuality"
	JudgementErroneous  Judgement = "Erroneous"
)

// StatusFor maps the first judgement entry to a verification status. The
// mapping is deterministic: an empty list and any unrecognized value both
// resolve to Not Verified.
func StatusFor(judgements []Judgement) domain.VerificationStatus {
	if len(judgements) == 0 {
		return domain.VerificationNotVerified
	}
	switch judgements[0] {
	case JudgementUnknown, JudgementFeePaid:
		return domain.VerificationPending
	case JudgementReasonable, JudgementKnownGood:
		return domain.VerificationVerified
	default:
		return domain.VerificationNotVerified
	}
}
