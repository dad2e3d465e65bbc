package entities

import (
	"encoding/json"

	"github.com/critfall/dmscreen/internal/errors"
)

// Size is the creature size category.
type Size string

// Size categories
const (
	SizeTiny       Size = "tiny"
	SizeSmall      Size = "small"
	SizeMedium     Size = "medium"
	SizeLarge      Size = "large"
	SizeHuge       Size = "huge"
	SizeGargantuan Size = "gargantuan"
)

// Sizes lists every valid size category.
func Sizes() []Size {
	return []Size{SizeTiny, SizeSmall, SizeMedium, SizeLarge, SizeHuge, SizeGargantuan}
}

// ParseSize decodes a server string into a Size, rejecting anything
// outside the closed set rather than passing it through.
func ParseSize(s string) (Size, error) {
	for _, v := range Sizes() {
		if Size(s) == v {
			return v, nil
		}
	}
	return "", errors.InvalidArgumentf("unrecognized size %q", s)
}

// UnmarshalJSON enforces the closed set at the decode boundary.
func (s *Size) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseSize(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Alignment is the creature alignment on the two-axis grid.
type Alignment string

// The nine alignments
const (
	AlignmentLawfulGood     Alignment = "lawful_good"
	AlignmentNeutralGood    Alignment = "neutral_good"
	AlignmentChaoticGood    Alignment = "chaotic_good"
	AlignmentLawfulNeutral  Alignment = "lawful_neutral"
	AlignmentTrueNeutral    Alignment = "true_neutral"
	AlignmentChaoticNeutral Alignment = "chaotic_neutral"
	AlignmentLawfulEvil     Alignment = "lawful_evil"
	AlignmentNeutralEvil    Alignment = "neutral_evil"
	AlignmentChaoticEvil    Alignment = "chaotic_evil"
)

// Alignments lists every valid alignment.
func Alignments() []Alignment {
	return []Alignment{
		AlignmentLawfulGood, AlignmentNeutralGood, AlignmentChaoticGood,
		AlignmentLawfulNeutral, AlignmentTrueNeutral, AlignmentChaoticNeutral,
		AlignmentLawfulEvil, AlignmentNeutralEvil, AlignmentChaoticEvil,
	}
}

// ParseAlignment decodes a server string into an Alignment, rejecting
// anything outside the closed set.
func ParseAlignment(s string) (Alignment, error) {
	for _, v := range Alignments() {
		if Alignment(s) == v {
			return v, nil
		}
	}
	return "", errors.InvalidArgumentf("unrecognized alignment %q", s)
}

// UnmarshalJSON enforces the closed set at the decode boundary.
func (a *Alignment) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseAlignment(raw)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Monster is a stat block scoped to a game. Displayed and GameID carry the
// same semantics as on Player.
type Monster struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Size        Size      `json:"size"`
	Alignment   Alignment `json:"alignment"`
	ArmorClass  int       `json:"armor_class"`
	HitPoints   int       `json:"hit_points"`
	Speed       int       `json:"speed"`
	Resistances string    `json:"resistances"`
	Attacks     string    `json:"attacks"`
	PBonus      int       `json:"p_bonus"`
	Displayed   bool      `json:"displayed"`
	GameID      int       `json:"game_id"`
}
