package semantics

import "fmt"

// Kind selects a Semantics implementation by name, mirroring
// semantics_type_t.
type Kind int

const (
	// KindStandard selects Standard.
	KindStandard Kind = iota
	// KindElapsed selects Elapsed.
	KindElapsed
	// KindDistinguished selects Distinguished.
	KindDistinguished
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindStandard:
		return "standard"
	case KindElapsed:
		return "elapsed"
	case KindDistinguished:
		return "distinguished"
	default:
		return "unknown"
	}
}

// New builds the Semantics implementation named by kind.
func New(kind Kind) (Semantics, error) {
	switch kind {
	case KindStandard:
		return Standard{}, nil
	case KindElapsed:
		return Elapsed{}, nil
	case KindDistinguished:
		return Distinguished{}, nil
	default:
		return nil, fmt.Errorf("semantics: unknown kind %d", int(kind))
	}
}
