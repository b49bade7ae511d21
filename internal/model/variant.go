package model

import "strings"

// Variant identifies a build of the game, each with its own offset table.
type Variant int

const (
	FreeFire Variant = iota
	FreeFireMax
	FreeFireTela
)

// Variants lists every supported variant in menu order.
var Variants = []Variant{FreeFire, FreeFireMax, FreeFireTela}

// Name returns the human-readable variant name.
func (v Variant) Name() string {
	switch v {
	case FreeFire:
		return "Free Fire"
	case FreeFireMax:
		return "Free Fire MAX"
	case FreeFireTela:
		return "Free Fire TELA"
	default:
		return "Unknown"
	}
}

// Slug is the lowercase identifier used for table files and generated modules.
func (v Variant) Slug() string {
	switch v {
	case FreeFire:
		return "freefire"
	case FreeFireMax:
		return "freefire_max"
	case FreeFireTela:
		return "freefire_tela"
	default:
		return "unknown"
	}
}

// Namespace is the CamelCase identifier used for generated C++ namespaces.
func (v Variant) Namespace() string {
	switch v {
	case FreeFire:
		return "FreeFire"
	case FreeFireMax:
		return "FreeFireMax"
	case FreeFireTela:
		return "FreeFireTela"
	default:
		return "Unknown"
	}
}

func (v Variant) String() string { return v.Name() }

// ParseVariant maps a command-line selector to a Variant.
// Unrecognized selectors, including "auto", return the standard variant and false.
func ParseVariant(s string) (Variant, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "freefire", "ff", "standard":
		return FreeFire, true
	case "max", "freefire_max", "ffmax":
		return FreeFireMax, true
	case "tela", "freefire_tela", "fftela":
		return FreeFireTela, true
	default:
		return FreeFire, false
	}
}
