package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyClear(t *testing.T) {
	cases := []struct {
		lines int
		spin  SpinType
		want  ClearType
	}{
		{0, SpinNone, ClearNone},
		{1, SpinNone, ClearSingle},
		{2, SpinNone, ClearDouble},
		{3, SpinNone, ClearTriple},
		{4, SpinNone, ClearQuad},
		{0, SpinTSpin, ClearTSpin},
		{1, SpinTSpin, ClearTSpinSingle},
		{2, SpinTSpin, ClearTSpinDouble},
		{3, SpinTSpin, ClearTSpinTriple},
		{0, SpinMiniTSpin, ClearMiniTSpin},
		{1, SpinMiniTSpin, ClearMiniTSpinSingle},
		{2, SpinMiniTSpin, ClearMiniTSpinDouble},
		{0, SpinAll, ClearNone},
		{1, SpinAll, ClearAllSpin},
		{2, SpinAll, ClearAllSpin},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, classifyClear(tc.lines, tc.spin), "lines=%d spin=%d", tc.lines, tc.spin)
	}
}

func TestDifficultClears(t *testing.T) {
	difficult := []ClearType{
		ClearQuad, ClearTSpin, ClearTSpinSingle, ClearTSpinDouble, ClearTSpinTriple,
		ClearMiniTSpin, ClearMiniTSpinSingle, ClearMiniTSpinDouble, ClearAllSpin,
	}
	for _, c := range difficult {
		assert.True(t, c.Difficult(), "%v", c)
	}
	for _, c := range []ClearType{ClearNone, ClearSingle, ClearDouble, ClearTriple} {
		assert.False(t, c.Difficult(), "%v", c)
	}
}

func TestDisplayNames(t *testing.T) {
	assert.Equal(t, "TETRIS", ClearQuad.DisplayName(4))
	assert.Equal(t, "T-SPIN DOUBLE", ClearTSpinDouble.DisplayName(2))
	assert.Equal(t, "ALL-SPIN DOUBLE", ClearAllSpin.DisplayName(2))
	assert.Equal(t, "", ClearNone.DisplayName(0))
}
