package model

// RAMTier is a fixed memory size offered to the customer with its monthly price.
type RAMTier struct {
	Label       string
	Price       int64
	BonusDomain bool
}

// Price constants for the configurable parts of a VPS.
const (
	CPUCorePrice  int64 = 5000
	IPv4NATPrice  int64 = 80000
	MaxOrderIDLen       = 32
)

// ramTiers is the authoritative price list. The storefront UI carries a copy
// of it; placed orders are checked against this table, never the other way
// around. Tiers from 2 GB up include a free .my.id domain.
var ramTiers = []RAMTier{
	{Label: "512 MB", Price: 15000},
	{Label: "1 GB", Price: 28000},
	{Label: "2 GB", Price: 35000, BonusDomain: true},
	{Label: "3 GB", Price: 48000, BonusDomain: true},
	{Label: "4 GB", Price: 61000, BonusDomain: true},
	{Label: "6 GB", Price: 87000, BonusDomain: true},
	{Label: "8 GB", Price: 113000, BonusDomain: true},
	{Label: "16 GB", Price: 217000, BonusDomain: true},
}

// TierByLabel looks up a RAM tier by its display label.
func TierByLabel(label string) (RAMTier, bool) {
	for _, t := range ramTiers {
		if t.Label == label {
			return t, true
		}
	}
	return RAMTier{}, false
}

// Tiers returns a copy of the price list.
func Tiers() []RAMTier {
	out := make([]RAMTier, len(ramTiers))
	copy(out, ramTiers)
	return out
}
