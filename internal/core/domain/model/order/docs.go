// Package order provides the post-purchase domain model: the Order aggregate
// reconstructed from server responses, its status enumerations, and the
// time-windowed action policy layered on top of them.
//
// The package includes:
//   - Order / ItemLine: the aggregate with prices copied at creation time
//   - Status, PaymentStatus, ReturnStatus: server-asserted enumerations with
//     wire parsing and validation
//   - AvailableActions: the pure function from (status, deliveredAt, now) to
//     the set of actions the buyer may trigger
//   - Reason: a validated cancellation/return/replacement reason from a
//     closed enumeration, with mandatory free text for "Other"
//
// Key business rules:
//   - Every status field is server-asserted; the client only requests
//     transitions
//   - Return and replacement are allowed strictly within ReturnWindow of
//     deliveredAt; the invoice becomes available exactly when that window
//     closes, so the two permissions are complementary by design
//   - deliveredAt is set exactly once, by the server, and anchors every
//     window check
package order
