package detect

import (
	"testing"

	"offsets-finder/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestVariant(t *testing.T) {
	cases := []struct {
		name string
		dump string
		want model.Variant
	}{
		{"max signature", "namespace FreeFireMAX {}", model.FreeFireMax},
		{"max graphics", "class MaxGraphics : FreeFire", model.FreeFireMax},
		{"tela signature", "// FreeFireTELA build", model.FreeFireTela},
		{"tela version", "public int TelaVersion; PlayerNetwork", model.FreeFireTela},
		{"generic", "public class PlayerNetwork {}", model.FreeFire},
		{"generic name", "FreeFire.Core", model.FreeFire},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := Variant(c.dump)
			assert.True(t, ok)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestVariantPrefersSpecific(t *testing.T) {
	dump := "public class PlayerNetwork {}\n// FreeFire\n// FreeFireMAX\n// FreeFireTELA"
	got, ok := Variant(dump)
	assert.True(t, ok)
	assert.Equal(t, model.FreeFireMax, got)
}

func TestVariantNoMatch(t *testing.T) {
	_, ok := Variant("public class Foo { int bar; }")
	assert.False(t, ok)

	_, ok = Variant("")
	assert.False(t, ok)
}
