package order

import "time"

// ReturnWindow is how long after delivery a return or replacement may be
// requested. The invoice becomes downloadable only once this window has
// closed, so a buyer can never hold a final invoice for an order they can
// still return. The server enforces the same rule; the client-side gate is a
// courtesy, not the authority.
const ReturnWindow = 7 * 24 * time.Hour

// Actions is the set of operations the buyer may currently trigger on an
// order. Computed, never stored: availability changes as time passes.
type Actions struct {
	CanCancel  bool
	CanReturn  bool
	CanReplace bool
	CanInvoice bool
}

// AvailableActions computes the action set for a status at a given instant.
//
//	| status               | cancel | return | replace | invoice |
//	| Placed, Confirmed    | yes    | no     | no      | no      |
//	| Processing, Shipped  | no     | no     | no      | no      |
//	| Delivered            | no     | <7d    | <7d     | >=7d    |
//	| Cancelled            | no     | no     | no      | no      |
//
// The window is anchored at deliveredAt; elapsed strictly less than
// ReturnWindow allows return/replace, the complement allows invoice download.
// A Delivered order without a deliveredAt timestamp allows nothing: the
// anchor is missing, so every window check fails closed.
func AvailableActions(status Status, deliveredAt *time.Time, now time.Time) Actions {
	switch status {
	case StatusPlaced, StatusConfirmed:
		return Actions{CanCancel: true}
	case StatusDelivered:
		if deliveredAt == nil {
			return Actions{}
		}
		inWindow := now.Sub(*deliveredAt) < ReturnWindow
		return Actions{
			CanReturn:  inWindow,
			CanReplace: inWindow,
			CanInvoice: !inWindow,
		}
	default:
		return Actions{}
	}
}
