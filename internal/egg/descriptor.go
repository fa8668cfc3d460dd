package egg

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/hatchery/internal/species"
)

// manaphyName is shown instead of the tier name for rare-exception eggs.
const manaphyName = "Manaphy"

// Translator looks up localized text by key.
type Translator interface {
	T(key string) string
}

// LegendaryResolver picks the featured legendary for a point in time.
type LegendaryResolver interface {
	SpeciesFor(ctx context.Context, t time.Time) (species.ID, error)
}

// SpeciesLookup resolves species metadata.
type SpeciesLookup interface {
	Get(id species.ID) (species.Species, bool)
}

// Describer renders the flavor text shown for an egg.
type Describer struct {
	tr        Translator
	legendary LegendaryResolver
	catalog   SpeciesLookup
}

// NewDescriber creates a Describer.
func NewDescriber(tr Translator, legendary LegendaryResolver, catalog SpeciesLookup) *Describer {
	return &Describer{tr: tr, legendary: legendary, catalog: catalog}
}

// TierDescriptor returns the localized tier name of an egg.
func (d *Describer) TierDescriptor(e Egg) string {
	if e.IsRareException() {
		return manaphyName
	}
	switch e.Tier {
	case TierGreat:
		return d.tr.T("egg:greatTier")
	case TierUltra:
		return d.tr.T("egg:ultraTier")
	case TierMaster:
		return d.tr.T("egg:masterTier")
	default:
		return d.tr.T("egg:defaultTier")
	}
}

// HatchWavesMessage returns the localized countdown hint for an egg with
// hatchWaves waves remaining.
func (d *Describer) HatchWavesMessage(hatchWaves int) string {
	switch HatchBandFor(hatchWaves) {
	case HatchSoon:
		return d.tr.T("egg:hatchWavesMessageSoon")
	case HatchClose:
		return d.tr.T("egg:hatchWavesMessageClose")
	case HatchNotClose:
		return d.tr.T("egg:hatchWavesMessageNotClose")
	default:
		return d.tr.T("egg:hatchWavesMessageLongTime")
	}
}

// GachaTypeDescriptor returns the localized gacha label of an egg. Legendary
// eggs also name the legendary that was featured when the egg was created.
// It panics on a gacha type outside AllGachaTypes.
func (d *Describer) GachaTypeDescriptor(ctx context.Context, e Egg) (string, error) {
	switch e.GachaType {
	case GachaLegendary:
		id, err := d.legendary.SpeciesFor(ctx, e.CreatedAt())
		if err != nil {
			return "", fmt.Errorf("resolve legendary: %w", err)
		}
		sp, ok := d.catalog.Get(id)
		if !ok {
			return "", fmt.Errorf("legendary species %d not in catalog", id)
		}
		return fmt.Sprintf("%s (%s)", d.tr.T("egg:gachaTypeLegendary"), sp.DisplayName()), nil
	case GachaMove:
		return d.tr.T("egg:gachaTypeMove"), nil
	case GachaShiny:
		return d.tr.T("egg:gachaTypeShiny"), nil
	}
	panic(fmt.Sprintf("egg: unhandled gacha type %v", e.GachaType))
}
