// Package daggerheart holds the FoundryVTT "daggerheart" system documents the
// converter writes: adversaries and the features embedded in them.
package daggerheart

// Foundry document metadata stamped on every generated document
const (
	SystemID      = "daggerheart"
	SystemVersion = "1.1.2"
	CoreVersion   = "13.347"

	// DefaultImage is Foundry's stock portrait
	DefaultImage = "icons/svg/mystery-man.svg"
)

// Document types
const (
	DocumentTypeAdversary = "adversary"
	DocumentTypeFeature   = "feature"
	DocumentTypeAction    = "action"
	DocumentTypeAttack    = "attack"
)

// Adversary roles. The parser passes through whatever word follows the tier,
// these are the ones the system recognises.
const (
	AdversaryTypeBruiser  = "bruiser"
	AdversaryTypeHorde    = "horde"
	AdversaryTypeLeader   = "leader"
	AdversaryTypeMinion   = "minion"
	AdversaryTypeRanged   = "ranged"
	AdversaryTypeSkulk    = "skulk"
	AdversaryTypeSocial   = "social"
	AdversaryTypeSolo     = "solo"
	AdversaryTypeStandard = "standard"
	AdversaryTypeSupport  = "support"
)

// Ranges
const (
	RangeMelee     = "melee"
	RangeVeryClose = "veryClose"
	RangeClose     = "close"
	RangeFar       = "far"
	RangeVeryFar   = "veryFar"
)

// Damage types
const (
	DamageTypePhysical = "physical"
	DamageTypeMagical  = "magical"
)

// KnownAdversaryType reports whether t is one of the system's adversary roles
func KnownAdversaryType(t string) bool {
	switch t {
	case AdversaryTypeBruiser, AdversaryTypeHorde, AdversaryTypeLeader,
		AdversaryTypeMinion, AdversaryTypeRanged, AdversaryTypeSkulk,
		AdversaryTypeSocial, AdversaryTypeSolo, AdversaryTypeStandard,
		AdversaryTypeSupport:
		return true
	default:
		return false
	}
}

// RangeFromText maps a printed range ("very close", "Melee") to the system key.
// Unknown text returns "".
func RangeFromText(text string) string {
	switch text {
	case "melee":
		return RangeMelee
	case "very close":
		return RangeVeryClose
	case "close":
		return RangeClose
	case "far":
		return RangeFar
	case "very far":
		return RangeVeryFar
	default:
		return ""
	}
}
