package extrapolation

import (
	"fmt"

	"github.com/ntacheck/ntacheck/clock"
)

// Kind selects a Strategy by name, mirroring extrapolation_type_t.
type Kind int

const (
	KindNone Kind = iota
	KindExtraLUGlobal
	KindExtraLULocal
	KindExtraLUPlusGlobal
	KindExtraLUPlusLocal
	KindExtraMGlobal
	KindExtraMLocal
	KindExtraMPlusGlobal
	KindExtraMPlusLocal
	KindExtraKNorm
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindExtraLUGlobal:
		return "extra-lu-global"
	case KindExtraLULocal:
		return "extra-lu-local"
	case KindExtraLUPlusGlobal:
		return "extra-lu-plus-global"
	case KindExtraLUPlusLocal:
		return "extra-lu-plus-local"
	case KindExtraMGlobal:
		return "extra-m-global"
	case KindExtraMLocal:
		return "extra-m-local"
	case KindExtraMPlusGlobal:
		return "extra-m-plus-global"
	case KindExtraMPlusLocal:
		return "extra-m-plus-local"
	case KindExtraKNorm:
		return "extra-k-norm"
	default:
		return "unknown"
	}
}

// New builds the Strategy named by kind, drawing clock bounds from oracle.
// Global variants query oracle.Global() once, up front; local variants
// keep oracle and query oracle.Local(vloc) on every Extrapolate call.
// KindExtraKNorm also queries oracle.Global() once and derives symmetric
// bounds from it.
func New(kind Kind, oracle clock.Oracle) (Strategy, error) {
	switch kind {
	case KindNone:
		return None{}, nil
	case KindExtraLUGlobal:
		return GlobalLU{Bounds: oracle.Global(), Plus: false}, nil
	case KindExtraLUPlusGlobal:
		return GlobalLU{Bounds: oracle.Global(), Plus: true}, nil
	case KindExtraLULocal:
		return LocalLU{Oracle: oracle, Plus: false}, nil
	case KindExtraLUPlusLocal:
		return LocalLU{Oracle: oracle, Plus: true}, nil
	case KindExtraMGlobal:
		return GlobalM{Bounds: oracle.Global(), Plus: false}, nil
	case KindExtraMPlusGlobal:
		return GlobalM{Bounds: oracle.Global(), Plus: true}, nil
	case KindExtraMLocal:
		return LocalM{Oracle: oracle, Plus: false}, nil
	case KindExtraMPlusLocal:
		return LocalM{Oracle: oracle, Plus: true}, nil
	case KindExtraKNorm:
		return NewKNorm(oracle.Global()), nil
	default:
		return nil, fmt.Errorf("extrapolation: unknown kind %d", int(kind))
	}
}
