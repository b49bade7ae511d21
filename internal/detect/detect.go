package detect

import (
	"strings"

	"offsets-finder/internal/model"
)

// rule maps signature substrings to the variant they identify.
type rule struct {
	variant    model.Variant
	signatures []string
}

// rules are checked in order, most specific first. "FreeFireMAX" also
// contains "FreeFire", so the generic rule must stay last.
var rules = []rule{
	{variant: model.FreeFireMax, signatures: []string{"FreeFireMAX", "MaxGraphics"}},
	{variant: model.FreeFireTela, signatures: []string{"FreeFireTELA", "TelaVersion"}},
	{variant: model.FreeFire, signatures: []string{"FreeFire", "PlayerNetwork"}},
}

// Variant infers which game build produced a dump. It reports false when
// no signature appears.
func Variant(dump string) (model.Variant, bool) {
	for _, r := range rules {
		for _, sig := range r.signatures {
			if strings.Contains(dump, sig) {
				return r.variant, true
			}
		}
	}
	return model.FreeFire, false
}
