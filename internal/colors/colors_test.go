package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_FormatInvariant(t *testing.T) {
	// The same color in every accepted representation must normalize to the
	// same canonical value.
	want := RGB{74, 21, 75}

	fromHex, err := Normalize("#4A154B")
	require.NoError(t, err)
	assert.Equal(t, want, fromHex)

	fromBareHex, err := Normalize("4A154B")
	require.NoError(t, err)
	assert.Equal(t, want, fromBareHex)

	fromTriple, err := Normalize([3]int{74, 21, 75})
	require.NoError(t, err)
	assert.Equal(t, want, fromTriple)

	fromSlice, err := Normalize([]int{74, 21, 75})
	require.NoError(t, err)
	assert.Equal(t, want, fromSlice)

	fromDashes, err := Normalize("74-21-75")
	require.NoError(t, err)
	assert.Equal(t, want, fromDashes)

	fromCommas, err := Normalize("74, 21, 75")
	require.NoError(t, err)
	assert.Equal(t, want, fromCommas)
}

func TestNormalize_Idempotent(t *testing.T) {
	first, err := Normalize("#4A154B")
	require.NoError(t, err)

	second, err := Normalize(first)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestNormalize_JSONDecodedValues(t *testing.T) {
	// Detected colors arriving through encoding/json come in as []any of
	// float64.
	rgb, err := Normalize([]any{float64(255), float64(255), float64(255)})
	require.NoError(t, err)
	assert.Equal(t, RGB{255, 255, 255}, rgb)
}

func TestNormalize_Errors(t *testing.T) {
	testCases := []struct {
		name  string
		input any
	}{
		{"empty string", ""},
		{"two components", "100-100"},
		{"four components", "1, 2, 3, 4"},
		{"component above range", "300, 0, 0"},
		{"negative component", []int{-1, 0, 0}},
		{"short hex", "#FFF"},
		{"unsupported type", 3.14},
		{"non-numeric element", []any{"a", "b", "c"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Normalize(tc.input)
			require.Error(t, err)
			var formatErr *FormatError
			assert.ErrorAs(t, err, &formatErr)
		})
	}
}

func TestDistance(t *testing.T) {
	assert.Zero(t, Distance(RGB{10, 20, 30}, RGB{10, 20, 30}))
	assert.InDelta(t, 441.67, Distance(RGB{0, 0, 0}, RGB{255, 255, 255}), 0.01)
	assert.InDelta(t, 9.69, Distance(RGB{74, 21, 75}, RGB{80, 25, 80}), 0.01)
}

func TestNearest(t *testing.T) {
	swatches := []Swatch{
		NewSwatch("Core Aubergine", RGB{74, 21, 75}),
		NewSwatch("White", RGB{255, 255, 255}),
	}

	idx, dist := Nearest(RGB{80, 25, 80}, swatches)
	assert.Equal(t, 0, idx)
	assert.InDelta(t, 9.69, dist, 0.01)

	idx, _ = Nearest(RGB{250, 250, 250}, swatches)
	assert.Equal(t, 1, idx)

	idx, _ = Nearest(RGB{0, 0, 0}, nil)
	assert.Equal(t, -1, idx)
}

func TestNewSwatch_HexAgreesWithRGB(t *testing.T) {
	s := NewSwatch("Core Aubergine", RGB{74, 21, 75})
	assert.Equal(t, "#4A154B", s.Hex)

	roundTrip, err := Normalize(s.Hex)
	require.NoError(t, err)
	assert.Equal(t, s.RGB, roundTrip)
}
