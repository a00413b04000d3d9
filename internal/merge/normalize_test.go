package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeServiceName_StripsPunctuationAndCase(t *testing.T) {
	assert.Equal(t, "mens haircut", NormalizeServiceName("Men's Haircut!"))
	assert.Equal(t, "color cut", NormalizeServiceName("  Color  &  Cut  "))
	assert.Equal(t, "haircut", NormalizeServiceName("HAIRCUT"))
	assert.Empty(t, NormalizeServiceName("!!!"))
	assert.Empty(t, NormalizeServiceName(""))
}

func TestNormalizeFaqQuestion_StripsInterrogatives(t *testing.T) {
	assert.Equal(t, "are your hours", NormalizeFaqQuestion("What are your hours?"))
	assert.Equal(t, "you take walkins", NormalizeFaqQuestion("Do you take walk-ins?!"))
	assert.Equal(t, "parking", NormalizeFaqQuestion("Parking."))
}

func TestNormalizeFaqQuestion_KeepsLoneInterrogative(t *testing.T) {
	// A one-word question should not normalize to the empty string.
	assert.Equal(t, "why", NormalizeFaqQuestion("Why?"))
}

func TestStringSimilarity_Jaccard(t *testing.T) {
	// {haircut} vs {haircut} -> 1.0
	assert.InDelta(t, 1.0, StringSimilarity("haircut", "haircut"), 1e-9)

	// {deep, tissue, massage} vs {tissue, massage} -> 2/3
	assert.InDelta(t, 2.0/3.0, StringSimilarity("deep tissue massage", "tissue massage"), 1e-9)

	assert.Zero(t, StringSimilarity("haircut", "massage"))
	assert.Zero(t, StringSimilarity("", "haircut"))
}

func TestStringSimilarity_IgnoresShortWords(t *testing.T) {
	// "of" and "to" never enter the word sets.
	assert.InDelta(t, 1.0, StringSimilarity("cut of hair", "cut to hair"), 1e-9)
}
