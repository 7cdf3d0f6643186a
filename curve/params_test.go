package curve_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dyed-eye/spirograph/curve"
)

func TestParameters_Validate(t *testing.T) {
	cases := []struct {
		name    string
		in      curve.Parameters
		lenient bool // accepted under AllowZeroOffset
		strict  bool // accepted under RequirePositiveOffset
	}{
		{"Typical", curve.Parameters{Fixed: 220, Rolling: 65, Offset: 110}, true, true},
		{"SubUnity", curve.Parameters{Fixed: 0.5, Rolling: 0.3, Offset: 0.2}, true, true},
		{"ZeroOffset", curve.Parameters{Fixed: 5, Rolling: 3, Offset: 0}, true, false},
		{"ZeroFixed", curve.Parameters{Fixed: 0, Rolling: 3, Offset: 1}, false, false},
		{"NegativeRolling", curve.Parameters{Fixed: 5, Rolling: -3, Offset: 1}, false, false},
		{"NegativeOffset", curve.Parameters{Fixed: 5, Rolling: 3, Offset: -1}, false, false},
		{"NaN", curve.Parameters{Fixed: math.NaN(), Rolling: 3, Offset: 1}, false, false},
		{"Inf", curve.Parameters{Fixed: 5, Rolling: math.Inf(1), Offset: 1}, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.in.Validate(curve.AllowZeroOffset)
			if tc.lenient {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, curve.ErrInvalidParameters)
			}
			err = tc.in.Validate(curve.RequirePositiveOffset)
			if tc.strict {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, curve.ErrInvalidParameters)
			}
		})
	}
}

func TestParsePolicy(t *testing.T) {
	for in, want := range map[string]curve.Policy{
		"":        curve.AllowZeroOffset,
		"lenient": curve.AllowZeroOffset,
		"strict":  curve.RequirePositiveOffset,
	} {
		got, err := curve.ParsePolicy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := curve.ParsePolicy("sloppy")
	assert.Error(t, err)

	assert.Equal(t, "lenient", curve.AllowZeroOffset.String())
	assert.Equal(t, "strict", curve.RequirePositiveOffset.String())
}

func TestParameters_String(t *testing.T) {
	assert.Equal(t, "R=220 r=65 d=110", curve.Parameters{Fixed: 220, Rolling: 65, Offset: 110}.String())
	assert.Equal(t, "R=0.5 r=0.3 d=0.2", curve.Parameters{Fixed: 0.5, Rolling: 0.3, Offset: 0.2}.String())
}
