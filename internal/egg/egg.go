package egg

import (
	"strconv"
	"time"
)

// EggSeed is the id band width of a single tier. An egg's tier is its id
// divided by EggSeed.
const EggSeed = 1 << 30

// manaphyKey is the display key shared by all rare-exception eggs.
const manaphyKey = "manaphy"

// Egg is an unhatched egg. Fields are set once by New and not mutated.
type Egg struct {
	ID         int
	Tier       Tier // derived from ID
	GachaType  GachaType
	HatchWaves int   // waves left before the egg hatches
	Timestamp  int64 // creation time, ms since epoch
}

// New builds an egg, deriving its tier from id. Inputs are not validated.
func New(id int, gachaType GachaType, hatchWaves int, timestamp int64) Egg {
	return Egg{
		ID:         id,
		Tier:       Tier(id / EggSeed),
		GachaType:  gachaType,
		HatchWaves: hatchWaves,
		Timestamp:  timestamp,
	}
}

// IsRareException reports whether the egg is a Manaphy egg: a common-tier
// egg whose id is a multiple of 255.
func (e Egg) IsRareException() bool {
	return e.Tier == TierCommon && e.ID%255 == 0
}

// DisplayKey returns the asset key used to look up the egg's art.
func (e Egg) DisplayKey() string {
	if e.IsRareException() {
		return manaphyKey
	}
	return strconv.Itoa(int(e.Tier))
}

// CreatedAt returns the creation timestamp as a time.Time.
func (e Egg) CreatedAt() time.Time {
	return time.UnixMilli(e.Timestamp)
}
