package subscription

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRank_Ordering(t *testing.T) {
	assert.Less(t, Rank(TierStarter), Rank(TierPro))
	assert.Less(t, Rank(TierPro), Rank(TierEnterprise))
	assert.Equal(t, 0, Rank("platinum"), "unknown tiers rank below starter")
}

func TestAtLeast(t *testing.T) {
	assert.True(t, AtLeast(TierPro, TierStarter))
	assert.True(t, AtLeast(TierPro, TierPro))
	assert.False(t, AtLeast(TierStarter, TierPro))
	assert.False(t, AtLeast("", TierStarter), "empty tier never satisfies a gate")
}

func TestLimitsFor(t *testing.T) {
	starter := LimitsFor(TierStarter)
	assert.Equal(t, 10, starter.Jobs)
	assert.Equal(t, 3, starter.Employees)
	assert.Equal(t, 25, starter.Inventory)

	// Unknown tier falls back to starter caps
	assert.Equal(t, starter, LimitsFor("bogus"))

	ent := LimitsFor(TierEnterprise)
	assert.Zero(t, ent.Jobs, "enterprise is unlimited (zero sentinel)")
}

func TestLimits_Allows(t *testing.T) {
	l := LimitsFor(TierStarter)
	assert.True(t, l.Allows(l.Jobs, 9))
	assert.False(t, l.Allows(l.Jobs, 10), "at the cap, one more is denied")

	unlimited := LimitsFor(TierEnterprise)
	assert.True(t, unlimited.Allows(unlimited.Jobs, 1_000_000))
}
