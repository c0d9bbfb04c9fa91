package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractEmptyInput(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t ", "...!?"} {
		sig := Extract(text)
		assert.True(t, sig.IsZero(), "input %q", text)
	}
}

func TestExtractSentimentBounds(t *testing.T) {
	cases := []string{
		"strach a uzkost a panika",
		"radost laska stesti klid",
		"fear and hope in equal measure",
		"just an ordinary day nothing special happened today",
	}
	for _, text := range cases {
		sig := Extract(text)
		assert.GreaterOrEqual(t, sig.Sentiment, -1.0, text)
		assert.LessOrEqual(t, sig.Sentiment, 1.0, text)
		assert.GreaterOrEqual(t, sig.Intensity, 0.0, text)
		assert.LessOrEqual(t, sig.Intensity, 1.0, text)
	}
}

func TestExtractNegationFlipsOnlyNextHit(t *testing.T) {
	// Both scored words sit behind their own negation; each is flipped
	// exactly once.
	sig := Extract("ne klid, ne bezpeci")
	assert.Equal(t, -1.0, sig.Sentiment)

	// The flag survives the unscored "v" and flips "bezpeci".
	sig = Extract("nejsem v bezpeci")
	assert.Equal(t, -1.0, sig.Sentiment)

	// An earlier positive word is untouched by a later negation.
	sig = Extract("klid ale nejsem v bezpeci")
	assert.Equal(t, 0.0, sig.Sentiment)
}

func TestExtractNegationDoesNotPropagate(t *testing.T) {
	// One negation, two positive words: only the first is flipped.
	sig := Extract("ne klid bezpeci")
	assert.Equal(t, 0.0, sig.Sentiment)
}

func TestExtractIntensifierNotScoredAsPolarity(t *testing.T) {
	plain := Extract("stastny den")
	boosted := Extract("velmi stastny den")
	assert.Equal(t, 1.0, plain.Sentiment)
	assert.Equal(t, 1.0, boosted.Sentiment) // "velmi" adds no polarity
	assert.Greater(t, boosted.Intensity, plain.Intensity)
}

func TestExtractDiacriticsStripped(t *testing.T) {
	a := Extract("úzkost a strach")
	b := Extract("uzkost a strach")
	assert.Equal(t, b.Sentiment, a.Sentiment)
	assert.Negative(t, a.Sentiment)

	sig := Extract("cítím klid a bezpečí")
	assert.Equal(t, 1.0, sig.Sentiment)
	assert.Greater(t, sig.Themes.Stability, 0.0)
}

func TestExtractStemmer(t *testing.T) {
	// "discovered" reaches "discover" by stripping "ed".
	sig := Extract("we discovered something")
	assert.Greater(t, sig.Themes.Curiosity, 0.0)

	// "smiles" reaches "smile" by stripping "s".
	sig = Extract("smiles everywhere")
	assert.Positive(t, sig.Sentiment)
}

func TestExtractThemeWeightsNormalized(t *testing.T) {
	sig := Extract("fight at home, questions everywhere")
	sum := sig.Themes.Conflict + sig.Themes.Stability + sig.Themes.Curiosity
	require.InDelta(t, 1.0, sum, 1e-9)
	assert.Greater(t, sig.Themes.Conflict, 0.0)
	assert.Greater(t, sig.Themes.Stability, 0.0)
	assert.Greater(t, sig.Themes.Curiosity, 0.0)

	// No theme words: all-zero weights, not a normalized split.
	sig = Extract("hmm okay then")
	assert.Zero(t, sig.Themes.Conflict)
	assert.Zero(t, sig.Themes.Stability)
	assert.Zero(t, sig.Themes.Curiosity)
}

func TestExtractNoPolarityMeansNeutral(t *testing.T) {
	sig := Extract("the table stood in the middle of the room")
	assert.Equal(t, 0.0, sig.Sentiment)
	assert.Greater(t, sig.Intensity, 0.0) // length still counts
}

func TestExtractLongEntryIntensity(t *testing.T) {
	short := Extract("strach")
	long := Extract("strach a uzkost me dnes drzely cely den, porad se vracel " +
		"ten pocit ze neco je spatne a ze to nedokazu zastavit, panika")
	assert.Greater(t, long.Intensity, 0.0)
	assert.LessOrEqual(t, long.Intensity, 1.0)
	assert.NotEqual(t, short.Intensity, long.Intensity)
}
