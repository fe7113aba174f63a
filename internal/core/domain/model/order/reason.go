package order

import (
	"errors"
	"fmt"

	"agrimarket/internal/pkg/errs"
	"agrimarket/internal/pkg/guard"
)

// ErrReasonIsNotConstructed is returned when a Reason instance was not created
// through the NewReason factory method.
var ErrReasonIsNotConstructed = errors.New("Reason must be created via NewReason constructor")

// ReasonCode is the closed enumeration of reasons a buyer may give when
// cancelling, returning or replacing an order. ReasonOther requires free text.
type ReasonCode string

const (
	ReasonChangedMind      ReasonCode = "CHANGED_MIND"
	ReasonOrderedByMistake ReasonCode = "ORDERED_BY_MISTAKE"
	ReasonDeliveryTooSlow  ReasonCode = "DELIVERY_TOO_SLOW"
	ReasonItemDamaged      ReasonCode = "ITEM_DAMAGED"
	ReasonWrongItem        ReasonCode = "WRONG_ITEM"
	ReasonQualityIssue     ReasonCode = "QUALITY_ISSUE"
	ReasonOther            ReasonCode = "OTHER"
)

func getValidReasonCodes() map[ReasonCode]struct{} {
	return map[ReasonCode]struct{}{
		ReasonChangedMind:      {},
		ReasonOrderedByMistake: {},
		ReasonDeliveryTooSlow:  {},
		ReasonItemDamaged:      {},
		ReasonWrongItem:        {},
		ReasonQualityIssue:     {},
		ReasonOther:            {},
	}
}

// Reason is a validated action reason: a code from the closed set, plus free
// text when (and only when) the code is ReasonOther.
type Reason struct {
	code ReasonCode
	text string

	guard guard.ConstructorGuard
}

// NewReason validates a reason selection. Submission rules:
//   - the code must belong to the closed enumeration (no empty selection)
//   - ReasonOther requires non-empty free text
//   - free text alongside a specific code is kept as an optional note
func NewReason(code ReasonCode, text string) (Reason, error) {
	if code == "" {
		return Reason{}, errs.NewValueIsRequiredError("reason")
	}
	if _, ok := getValidReasonCodes()[code]; !ok {
		return Reason{}, errs.NewValueIsInvalidErrorWithCause(
			"reason",
			fmt.Errorf("%q is not a valid reason code", code),
		)
	}
	if code == ReasonOther && text == "" {
		return Reason{}, errs.NewValueIsRequiredError("reason text")
	}

	return Reason{code: code, text: text, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the reason was created through NewReason.
func (r Reason) Validate() error {
	return r.guard.Validate(ErrReasonIsNotConstructed)
}

// Code returns the selected reason code.
func (r Reason) Code() ReasonCode { return r.code }

// Text returns the free-text part, empty unless supplied.
func (r Reason) Text() string { return r.text }

// String renders the reason the way the upstream API expects it: the code,
// with free text appended when present.
func (r Reason) String() string {
	if r.text == "" {
		return string(r.code)
	}
	return fmt.Sprintf("%s: %s", r.code, r.text)
}
