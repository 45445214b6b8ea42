// Package subscription holds the tier ordering and quantity limits that gate
// contractor features.
package subscription

// Subscription tiers, ordered.
const (
	TierStarter    = "starter"
	TierPro        = "pro"
	TierEnterprise = "enterprise"
)

// Rank maps a tier to its ordinal: starter < pro < enterprise.
// Unknown tiers rank below starter so a corrupted value never grants access.
func Rank(tier string) int {
	switch tier {
	case TierStarter:
		return 1
	case TierPro:
		return 2
	case TierEnterprise:
		return 3
	default:
		return 0
	}
}

// AtLeast reports whether tier meets or exceeds required.
func AtLeast(tier, required string) bool {
	return Rank(tier) >= Rank(required)
}

// Valid reports whether s names a known tier.
func Valid(s string) bool {
	return Rank(s) > 0
}

// Limits are per-tier quantity caps. Zero means unlimited.
type Limits struct {
	Jobs      int
	Employees int
	Inventory int
}

// LimitsFor returns the quantity caps for a tier. Unknown tiers get the
// starter caps.
func LimitsFor(tier string) Limits {
	switch tier {
	case TierPro:
		return Limits{Jobs: 100, Employees: 15, Inventory: 500}
	case TierEnterprise:
		return Limits{} // unlimited
	default:
		return Limits{Jobs: 10, Employees: 3, Inventory: 25}
	}
}

// Allows reports whether a cap admits one more item given the current count.
func (l Limits) Allows(limit, current int) bool {
	return limit == 0 || current < limit
}
