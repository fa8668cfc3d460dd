package egg

import "fmt"

// GachaType is the machine an egg was pulled from, which decides what kind of
// reward it favors.
type GachaType int

const (
	GachaMove GachaType = iota
	GachaLegendary
	GachaShiny
)

// AllGachaTypes returns every gacha type in declaration order.
func AllGachaTypes() []GachaType {
	return []GachaType{GachaMove, GachaLegendary, GachaShiny}
}

func (g GachaType) String() string {
	switch g {
	case GachaMove:
		return "move"
	case GachaLegendary:
		return "legendary"
	case GachaShiny:
		return "shiny"
	default:
		return fmt.Sprintf("gacha(%d)", int(g))
	}
}

// ParseGachaType resolves a gacha type from its String form.
func ParseGachaType(s string) (GachaType, error) {
	for _, g := range AllGachaTypes() {
		if g.String() == s {
			return g, nil
		}
	}
	return 0, fmt.Errorf("unknown gacha type %q", s)
}
