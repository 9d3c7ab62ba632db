package main

import (
	"testing"

	"github.com/cwbudde/algo-ringdown/qnm"
	"github.com/cwbudde/algo-ringdown/waveform"
	"github.com/stretchr/testify/require"
)

func TestParseTerm(t *testing.T) {
	term, err := parseTerm("2,2,0,+1=1e-2,0.5")
	require.NoError(t, err)
	require.Equal(t, qnm.Label{Ell: 2, M: 2, N: 0, Sign: 1}, term.Mode)
	require.Equal(t, complex(1e-2, 0.5), term.A)

	term, err = parseTerm(" 3,-3,1,-1 ")
	require.NoError(t, err)
	require.Equal(t, qnm.Label{Ell: 3, M: -3, N: 1, Sign: -1}, term.Mode)
	require.Zero(t, term.A)

	term, err = parseTerm("2,1,0,1=0.3")
	require.NoError(t, err)
	require.Equal(t, complex(0.3, 0), term.A)

	for _, bad := range []string{"2,2,0", "2,2,0,0", "2,x,0,1", "2,2,0,1=a", "2,2,0,1=1,b"} {
		_, err := parseTerm(bad)
		require.Error(t, err, bad)
	}
}

func TestParseSelection(t *testing.T) {
	sel, err := parseSelection("")
	require.NoError(t, err)
	require.True(t, sel.IsAll())

	sel, err = parseSelection("2,2; 3,3")
	require.NoError(t, err)
	require.Equal(t, []waveform.LM{{Ell: 2, M: 2}, {Ell: 3, M: 3}}, sel.Pairs(2, 4))

	_, err = parseSelection("2;3,3")
	require.Error(t, err)
}
