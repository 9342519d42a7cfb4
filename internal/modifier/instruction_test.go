package modifier

import (
	"testing"

	"github.com/GetwithitMan/gwi-pos-sub007/internal/models"
	"github.com/stretchr/testify/assert"
)

func f(v float64) *float64 { return &v }

func TestMultiplierRemovalSynonyms(t *testing.T) {
	for _, instr := range []string{"NO", "no", "None", "REMOVE", "without", "Hold"} {
		assert.Equal(t, 0.0, Multiplier(instr, models.MultiplierSettings{}), "instruction %q", instr)
		assert.True(t, IsRemoval(instr), "IsRemoval(%q)", instr)
	}
}

func TestMultiplierDefaults(t *testing.T) {
	s := models.MultiplierSettings{}
	assert.Equal(t, 0.5, Multiplier("lite", s))
	assert.Equal(t, 0.5, Multiplier("half", s))
	assert.Equal(t, 2.0, Multiplier("extra", s))
	assert.Equal(t, 2.0, Multiplier("DOUBLE", s))
	assert.Equal(t, 3.0, Multiplier("triple", s))
	assert.Equal(t, 3.0, Multiplier("3x", s))
	assert.Equal(t, 1.0, Multiplier("add", s))
	assert.Equal(t, 1.0, Multiplier("side", s))
	assert.Equal(t, 1.0, Multiplier("regular", s))
	assert.Equal(t, 1.0, Multiplier("something else", s))
	assert.Equal(t, 1.0, Multiplier("", s))
}

func TestMultiplierOverrides(t *testing.T) {
	s := models.MultiplierSettings{
		Lite:   f(0.25),
		Extra:  f(1.5),
		Triple: f(2.5),
	}
	assert.Equal(t, 0.25, Multiplier("lite", s))
	assert.Equal(t, 1.5, Multiplier("extra", s))
	assert.Equal(t, 2.5, Multiplier("triple", s))
}

func TestMultiplierExplicitZeroOverride(t *testing.T) {
	// An explicit 0 is a valid override and must not fall back to 2.0.
	s := models.MultiplierSettings{Extra: f(0)}
	assert.Equal(t, 0.0, Multiplier("extra", s))
}

func TestMultiplierCompound(t *testing.T) {
	s := models.MultiplierSettings{}
	assert.Equal(t, 2.0, Multiplier("side,extra", s))
	assert.Equal(t, 0.0, Multiplier("no,extra", s))
	assert.Equal(t, 3.0, Multiplier("extra, triple", s))
	assert.Equal(t, 1.0, Multiplier(" , ,", s))
}

func TestIsRemovalCompound(t *testing.T) {
	assert.True(t, IsRemoval("side,no"))
	assert.False(t, IsRemoval("side,extra"))
	assert.False(t, IsRemoval(""))
}

func TestMultiplierPhrasesAreNeutral(t *testing.T) {
	// Phrase instructions are single tokens, not keyword lists; they never
	// match a keyword and resolve to the neutral multiplier.
	s := models.MultiplierSettings{}
	assert.Equal(t, 1.0, Multiplier("extra hot", s))
	assert.Equal(t, 1.0, Multiplier("no onions", s))
	assert.False(t, IsRemoval("no onions"))
	assert.False(t, IsRemoval("hold the mayo"))
}
