package model

// TargetKind tells how a Target gets its value.
type TargetKind int

const (
	// KindFixed targets carry a value known in advance.
	KindFixed TargetKind = iota
	// KindPattern targets are resolved by searching a dump for a literal substring.
	KindPattern
	// KindSeparator targets exist only for display and never produce a Result.
	KindSeparator
)

func (k TargetKind) String() string {
	switch k {
	case KindFixed:
		return "fixed"
	case KindPattern:
		return "pattern"
	case KindSeparator:
		return "separator"
	default:
		return "unknown"
	}
}

// Target is one offset definition. Values are built once and never mutated.
type Target struct {
	kind    TargetKind
	name    string
	hex     string
	pattern string
}

// NewFixed creates a Target whose offset is the given hex literal.
func NewFixed(name, hex string) Target {
	return Target{kind: KindFixed, name: name, hex: hex}
}

// NewPattern creates a Target resolved by searching for pattern in a dump.
func NewPattern(name, pattern string) Target {
	return Target{kind: KindPattern, name: name, pattern: pattern}
}

// NewSeparator creates a display-only Target.
func NewSeparator() Target {
	return Target{kind: KindSeparator}
}

func (t Target) Kind() TargetKind { return t.kind }
func (t Target) Name() string     { return t.name }

// Hex is the stored value of a Fixed target, empty otherwise.
func (t Target) Hex() string { return t.hex }

// Pattern is the search literal of a Pattern target, empty otherwise.
func (t Target) Pattern() string { return t.pattern }
