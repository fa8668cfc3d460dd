package theme

import (
	"strings"
	"testing"

	"github.com/abhisek/hatchery/internal/egg"
)

func TestTierStyle_RendersText(t *testing.T) {
	eggs := []egg.Egg{
		egg.New(255, egg.GachaMove, 5, 0),
		egg.New(1, egg.GachaMove, 5, 0),
		egg.New(egg.EggSeed+1, egg.GachaMove, 10, 0),
		egg.New(2*egg.EggSeed+1, egg.GachaMove, 15, 0),
		egg.New(3*egg.EggSeed+1, egg.GachaMove, 20, 0),
		egg.New(6*egg.EggSeed, egg.GachaMove, 20, 0),
	}
	for _, e := range eggs {
		if out := TierStyle(e).Render("egg"); !strings.Contains(out, "egg") {
			t.Errorf("TierStyle(%d).Render dropped the text: %q", e.ID, out)
		}
	}
}

func TestTierStyle_DistinctColors(t *testing.T) {
	manaphy := TierStyle(egg.New(255, egg.GachaMove, 5, 0)).GetForeground()
	common := TierStyle(egg.New(1, egg.GachaMove, 5, 0)).GetForeground()
	master := TierStyle(egg.New(3*egg.EggSeed, egg.GachaMove, 20, 0)).GetForeground()
	beyond := TierStyle(egg.New(9*egg.EggSeed, egg.GachaMove, 20, 0)).GetForeground()

	if manaphy == common {
		t.Error("manaphy and common eggs share a color")
	}
	if master != beyond {
		t.Error("tiers above master should reuse the master color")
	}
}
