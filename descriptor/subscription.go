package descriptor

import "github.com/serverless/stream-functions/function"

// SubscriptionType is the consumer subscription mode a function's source uses.
type SubscriptionType string

// Subscription modes.
const (
	// SubscriptionShared load-balances messages across instances without
	// ordering.
	SubscriptionShared SubscriptionType = "SHARED"
	// SubscriptionFailover keeps a single active consumer so ordering holds.
	SubscriptionFailover SubscriptionType = "FAILOVER"
)

// DeriveSubscriptionType returns the subscription mode implied by the
// ordering flag and processing guarantee: ordered delivery and
// effectively-once semantics both need a single active consumer.
func DeriveSubscriptionType(retainOrdering bool, guarantee function.ProcessingGuarantee) SubscriptionType {
	if retainOrdering || guarantee == function.EffectivelyOnce {
		return SubscriptionFailover
	}
	return SubscriptionShared
}

// Reconstruct returns the ordering flag and processing guarantee implied by
// the subscription mode. The mapping is lossy: FAILOVER always reads back as
// ordered effectively-once, SHARED as unordered at-least-once, so an original
// at-most-once guarantee is not recoverable.
func (t SubscriptionType) Reconstruct() (retainOrdering bool, guarantee function.ProcessingGuarantee) {
	if t == SubscriptionFailover {
		return true, function.EffectivelyOnce
	}
	return false, function.AtLeastOnce
}
