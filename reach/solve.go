// SPDX-License-Identifier: MIT
package reach

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"

	"github.com/katalvlaran/vass2/core"
	"github.com/katalvlaran/vass2/etr"
	"github.com/katalvlaran/vass2/lps"
	"github.com/katalvlaran/vass2/paths"
	"github.com/katalvlaran/vass2/reachtree"
	"github.com/katalvlaran/vass2/theory"
	"github.com/katalvlaran/vass2/vlog"
)

// Options bounds one Solve call's search effort.
type Options struct {
	// MaxLPS caps how many compiled LPSes Solve will try; 0 means unlimited.
	MaxLPS int
}

// Solve decides whether v's end counters are reachable from its start
// counters, trying every compiled Linear Path Scheme against the ETR
// encoder/solver in discovery order until one is satisfiable.
//
// Returns (Witness, Stats, nil) on success; (nil, Stats, ErrUnreachable) when
// every LPS is provably unsat; (nil, Stats, ErrLPSCapReached) when
// opts.MaxLPS would be exceeded; (nil, Stats, theory.ErrTimeout) if ctx is
// cancelled mid-search. Non-fatal per-LPS issues (a branch the reference
// solver could not decide) are aggregated into a *multierror.Error returned
// alongside ErrUnreachable, never silently dropped.
func Solve(ctx context.Context, v *core.VASS, opts Options) (*Witness, Stats, error) {
	start := time.Now()
	runID := uuid.NewString()
	log := vlog.Solve(runID)

	targetX := v.EndX - v.StartX
	targetY := v.EndY - v.StartY

	tree, err := reachtree.Build(v)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("reach: building reachability tree: %w", err)
	}

	ps, cs := paths.Enumerate(tree, v.End)
	lpsList, abandoned := lps.Compile(v, ps, cs)

	stats := Stats{PathsFound: len(ps), CyclesFound: len(cs), LPSGenerated: len(lpsList)}
	log.WithFields(logFields(stats)).Debug("compiled LPS set")

	if abandoned > 0 {
		log.Warnf("%d cycle(s) could not be anchored or flattened onto any compiled path; "+
			"reachability through them is under-approximated (spec.md §9 Open Question)", abandoned)
	}

	if opts.MaxLPS > 0 && len(lpsList) > opts.MaxLPS {
		return nil, stats, ErrLPSCapReached
	}

	var diagnostics *multierror.Error
	for _, one := range lpsList {
		select {
		case <-ctx.Done():
			return nil, stats, theory.ErrTimeout
		default:
		}

		stats.LPSDischarged++

		formula, err := etr.Encode(&one, targetX, targetY)
		if err != nil {
			diagnostics = multierror.Append(diagnostics, fmt.Errorf("encoding LPS %d: %w", stats.LPSDischarged, err))
			continue
		}

		result, model, err := formula.Check(ctx)
		if err != nil {
			diagnostics = multierror.Append(diagnostics, fmt.Errorf("checking LPS %d: %w", stats.LPSDischarged, err))
			continue
		}
		if result == theory.Sat {
			log.WithFields(logFields(stats)).WithField("elapsed", time.Since(start)).Info("reachable")

			return &Witness{LPS: one, Model: model, RunID: runID}, stats, nil
		}
	}

	log.WithFields(logFields(stats)).WithField("elapsed", time.Since(start)).Info("unreachable")

	if diagnostics != nil {
		return nil, stats, multierror.Append(diagnostics, ErrUnreachable).ErrorOrNil()
	}

	return nil, stats, ErrUnreachable
}

func logFields(s Stats) map[string]interface{} {
	return map[string]interface{}{
		"paths_found":    s.PathsFound,
		"cycles_found":   s.CyclesFound,
		"lps_generated":  s.LPSGenerated,
		"lps_discharged": s.LPSDischarged,
	}
}
