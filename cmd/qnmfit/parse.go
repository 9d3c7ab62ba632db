package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-ringdown/qnm"
	"github.com/cwbudde/algo-ringdown/synth"
	"github.com/cwbudde/algo-ringdown/waveform"
)

// parseTerm parses "l,m,n,sign=re,im" into a QNM term. The amplitude part
// may be omitted, giving a zero amplitude.
func parseTerm(s string) (synth.QNM, error) {
	labelPart, ampPart, hasAmp := strings.Cut(strings.TrimSpace(s), "=")

	idx, err := parseInts(labelPart, 4)
	if err != nil {
		return synth.QNM{}, fmt.Errorf("term %q: %w", s, err)
	}
	term := synth.QNM{Mode: qnm.Label{Ell: idx[0], M: idx[1], N: idx[2], Sign: idx[3]}}
	if err := term.Mode.Validate(); err != nil {
		return synth.QNM{}, fmt.Errorf("term %q: %w", s, err)
	}

	if hasAmp {
		re, im, found := strings.Cut(ampPart, ",")
		a, err := strconv.ParseFloat(strings.TrimSpace(re), 64)
		if err != nil {
			return synth.QNM{}, fmt.Errorf("term %q: amplitude: %w", s, err)
		}
		b := 0.0
		if found {
			b, err = strconv.ParseFloat(strings.TrimSpace(im), 64)
			if err != nil {
				return synth.QNM{}, fmt.Errorf("term %q: amplitude: %w", s, err)
			}
		}
		term.A = complex(a, b)
	}
	return term, nil
}

// parseSelection parses "l,m;l,m;..." into a mode list. An empty string
// selects all modes.
func parseSelection(s string) (waveform.ModeSelection, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "all") {
		return waveform.AllModes(), nil
	}

	var modes []waveform.LM
	for _, part := range strings.Split(s, ";") {
		idx, err := parseInts(part, 2)
		if err != nil {
			return waveform.ModeSelection{}, fmt.Errorf("mode %q: %w", part, err)
		}
		modes = append(modes, waveform.LM{Ell: idx[0], M: idx[1]})
	}
	return waveform.ModeList(modes...), nil
}

func parseInts(s string, n int) ([]int, error) {
	fields := strings.Split(s, ",")
	if len(fields) != n {
		return nil, fmt.Errorf("want %d comma-separated integers, got %d", n, len(fields))
	}
	out := make([]int, n)
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(f), "+"))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
