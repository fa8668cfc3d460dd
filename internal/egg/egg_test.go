package egg

import (
	"testing"
	"time"
)

func TestNew_DerivesTier(t *testing.T) {
	tests := []struct {
		id   int
		want Tier
	}{
		{0, TierCommon},
		{EggSeed - 1, TierCommon},
		{EggSeed, TierGreat},
		{2*EggSeed + 17, TierUltra},
		{3 * EggSeed, TierMaster},
		{4*EggSeed - 1, TierMaster},
		{7 * EggSeed, Tier(7)},
	}

	for _, tt := range tests {
		e := New(tt.id, GachaMove, 5, 0)
		if e.Tier != tt.want {
			t.Errorf("New(%d).Tier = %v, want %v", tt.id, e.Tier, tt.want)
		}
		if int(e.Tier) != tt.id/1073741824 {
			t.Errorf("New(%d).Tier = %d, want floor(id / 2^30) = %d", tt.id, e.Tier, tt.id/1073741824)
		}
	}
}

func TestNew_StoresFieldsVerbatim(t *testing.T) {
	e := New(42, GachaShiny, -3, 1760700000000)
	if e.ID != 42 || e.GachaType != GachaShiny || e.HatchWaves != -3 || e.Timestamp != 1760700000000 {
		t.Errorf("fields not stored verbatim: %+v", e)
	}
	if !e.CreatedAt().Equal(time.UnixMilli(1760700000000)) {
		t.Errorf("CreatedAt = %v", e.CreatedAt())
	}
}

func TestIsRareException(t *testing.T) {
	tests := []struct {
		name string
		id   int
		want bool
	}{
		{"zero", 0, true},
		{"multiple of 255", 255 * 4, true},
		{"not a multiple", 256, false},
		{"largest common multiple", (EggSeed - 1) / 255 * 255, true},
		{"great tier multiple of 255", EggSeed + 255 - EggSeed%255, false},
		{"master tier", 3*EggSeed + 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(tt.id, GachaLegendary, 10, 0)
			if tt.name == "great tier multiple of 255" && e.ID%255 != 0 {
				t.Fatalf("test setup: id %d is not a multiple of 255", e.ID)
			}
			if got := e.IsRareException(); got != tt.want {
				t.Errorf("IsRareException(%d) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestDisplayKey(t *testing.T) {
	tests := []struct {
		id   int
		want string
	}{
		{510, "manaphy"},
		{1, "0"},
		{EggSeed + 1, "1"},
		{2 * EggSeed, "2"},
		{3*EggSeed + 5, "3"},
	}

	for _, tt := range tests {
		if got := New(tt.id, GachaMove, 5, 0).DisplayKey(); got != tt.want {
			t.Errorf("DisplayKey(%d) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestDefaultHatchWaves(t *testing.T) {
	tests := []struct {
		tier Tier
		want int
	}{
		{TierCommon, 5},
		{TierGreat, 10},
		{TierUltra, 15},
		{TierMaster, 20},
		{Tier(9), 20},
		{Tier(-1), 20},
	}

	for _, tt := range tests {
		if got := DefaultHatchWaves(tt.tier); got != tt.want {
			t.Errorf("DefaultHatchWaves(%v) = %d, want %d", tt.tier, got, tt.want)
		}
	}
}

func TestHatchBandFor(t *testing.T) {
	tests := []struct {
		waves int
		want  HatchBand
	}{
		{1, HatchSoon},
		{5, HatchSoon},
		{6, HatchClose},
		{15, HatchClose},
		{16, HatchNotClose},
		{50, HatchNotClose},
		{51, HatchLongTime},
		{0, HatchSoon},
		{1000, HatchLongTime},
	}

	for _, tt := range tests {
		if got := HatchBandFor(tt.waves); got != tt.want {
			t.Errorf("HatchBandFor(%d) = %v, want %v", tt.waves, got, tt.want)
		}
	}
}

func TestTier_String(t *testing.T) {
	tests := []struct {
		tier Tier
		want string
	}{
		{TierCommon, "common"},
		{TierGreat, "great"},
		{TierUltra, "ultra"},
		{TierMaster, "master"},
		{Tier(5), "tier(5)"},
	}
	for _, tt := range tests {
		if got := tt.tier.String(); got != tt.want {
			t.Errorf("Tier(%d).String() = %q, want %q", int(tt.tier), got, tt.want)
		}
	}
	if len(AllTiers()) != 4 {
		t.Errorf("expected 4 tiers, got %d", len(AllTiers()))
	}
}

func TestParseGachaType(t *testing.T) {
	for _, g := range AllGachaTypes() {
		got, err := ParseGachaType(g.String())
		if err != nil {
			t.Fatalf("ParseGachaType(%q): %v", g.String(), err)
		}
		if got != g {
			t.Errorf("ParseGachaType(%q) = %v, want %v", g.String(), got, g)
		}
	}
	if _, err := ParseGachaType("mythical"); err == nil {
		t.Error("expected error for unknown gacha type")
	}
}
