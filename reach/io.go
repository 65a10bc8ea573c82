// SPDX-License-Identifier: MIT
package reach

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/vass2/core"
	"github.com/katalvlaran/vass2/lps"
)

// LoadVASS parses and normalizes a VASS from JSON, wrapping any validation
// failure in ErrMalformedInput (spec.md §7).
func LoadVASS(r io.Reader) (*core.VASS, error) {
	var raw core.RawVASS
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: decoding JSON: %v", ErrMalformedInput, err)
	}

	v, err := core.Load(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	return v, nil
}

// rawTransition decodes one [p, x, y, q] 4-tuple of the standalone LPS JSON
// format (spec.md §6: "LPS input (JSON)... path: [[p,x,y,q], …]"), a plain
// JSON array rather than an object, matching the original reference's
// export_lps output verbatim.
type rawTransition [4]interface{}

func (t rawTransition) decode() (lps.Transition, error) {
	p, ok := t[0].(string)
	if !ok {
		return lps.Transition{}, fmt.Errorf("%w: transition[0] (p) must be a string label", ErrMalformedInput)
	}
	q, ok := t[3].(string)
	if !ok {
		return lps.Transition{}, fmt.Errorf("%w: transition[3] (q) must be a string label", ErrMalformedInput)
	}
	x, err := core.ParseValue(t[1])
	if err != nil {
		return lps.Transition{}, fmt.Errorf("%w: transition.x: %v", ErrMalformedInput, err)
	}
	y, err := core.ParseValue(t[2])
	if err != nil {
		return lps.Transition{}, fmt.Errorf("%w: transition.y: %v", ErrMalformedInput, err)
	}

	return lps.Transition{From: p, X: x, Y: y, To: q}, nil
}

// rawLPS mirrors the top-level standalone LPS JSON object of spec.md §6.
// Either field may be absent, defaulting to empty.
type rawLPS struct {
	Path   []rawTransition            `json:"path"`
	Cycles map[string][]rawTransition `json:"cycles"`
}

// LoadLPS parses a standalone compiled LPS document (spec.md §6, the
// "vass2 lps" entry point) directly into an *lps.LPS, ready for etr.Encode.
func LoadLPS(r io.Reader) (*lps.LPS, error) {
	var raw rawLPS
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: decoding JSON: %v", ErrMalformedInput, err)
	}

	out := lps.LPS{
		Path:   make([]lps.Transition, 0, len(raw.Path)),
		Cycles: make(map[string][]lps.Transition, len(raw.Cycles)),
	}
	for _, t := range raw.Path {
		tr, err := t.decode()
		if err != nil {
			return nil, err
		}
		out.Path = append(out.Path, tr)
	}
	for name, cyc := range raw.Cycles {
		decoded := make([]lps.Transition, 0, len(cyc))
		for _, t := range cyc {
			tr, err := t.decode()
			if err != nil {
				return nil, fmt.Errorf("%w: cycle %q: %v", ErrMalformedInput, name, err)
			}
			decoded = append(decoded, tr)
		}
		out.Cycles[name] = decoded
	}

	return &out, nil
}

// DumpLPS renders an LPS back into the standalone JSON shape LoadLPS
// accepts (spec.md §6), for round-tripping a compiled LPS to disk.
func DumpLPS(w io.Writer, l *lps.LPS) error {
	raw := rawLPS{
		Path:   make([]rawTransition, len(l.Path)),
		Cycles: make(map[string][]rawTransition, len(l.Cycles)),
	}
	for i, t := range l.Path {
		raw.Path[i] = encodeTransition(t)
	}
	for name, cyc := range l.Cycles {
		encoded := make([]rawTransition, len(cyc))
		for i, t := range cyc {
			encoded[i] = encodeTransition(t)
		}
		raw.Cycles[name] = encoded
	}

	return json.NewEncoder(w).Encode(raw)
}

func encodeTransition(t lps.Transition) rawTransition {
	return rawTransition{t.From, valueToJSON(t.X), valueToJSON(t.Y), t.To}
}

func valueToJSON(v core.Value) interface{} {
	if v.IsSymbol {
		return v.Sym.String()
	}

	return v.Const
}
