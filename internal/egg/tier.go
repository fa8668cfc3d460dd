package egg

import "strconv"

// Tier is the rarity class of an egg.
type Tier int

const (
	TierCommon Tier = iota
	TierGreat
	TierUltra
	TierMaster
)

// AllTiers returns all tiers from lowest to highest.
func AllTiers() []Tier {
	return []Tier{TierCommon, TierGreat, TierUltra, TierMaster}
}

func (t Tier) String() string {
	switch t {
	case TierCommon:
		return "common"
	case TierGreat:
		return "great"
	case TierUltra:
		return "ultra"
	case TierMaster:
		return "master"
	default:
		return "tier(" + strconv.Itoa(int(t)) + ")"
	}
}

// DefaultHatchWaves returns the number of waves an egg of the given tier
// takes to hatch. Tiers above Ultra, known or not, take 20.
func DefaultHatchWaves(t Tier) int {
	switch t {
	case TierCommon:
		return 5
	case TierGreat:
		return 10
	case TierUltra:
		return 15
	default:
		return 20
	}
}

// HatchBand buckets a hatch countdown for flavor text.
type HatchBand int

const (
	HatchSoon HatchBand = iota
	HatchClose
	HatchNotClose
	HatchLongTime
)

func (b HatchBand) String() string {
	switch b {
	case HatchSoon:
		return "soon"
	case HatchClose:
		return "close"
	case HatchNotClose:
		return "notClose"
	case HatchLongTime:
		return "longTime"
	default:
		return "unknown"
	}
}

// HatchBandFor classifies a hatch countdown. First matching band wins.
func HatchBandFor(hatchWaves int) HatchBand {
	switch {
	case hatchWaves <= 5:
		return HatchSoon
	case hatchWaves <= 15:
		return HatchClose
	case hatchWaves <= 50:
		return HatchNotClose
	default:
		return HatchLongTime
	}
}
