package main

import (
	"context"
	"fmt"

	"github.com/cschone/bikefit/pkg/compare"
	"github.com/cschone/bikefit/pkg/geo"
	"github.com/cschone/bikefit/pkg/metrics"
	"github.com/cschone/bikefit/pkg/render"
	"github.com/cschone/bikefit/pkg/solver"
	"github.com/cschone/bikefit/pkg/spec"
	"github.com/cschone/bikefit/pkg/validation"
)

type compareOptions struct {
	bikePaths []string
	riderPath string
	outPath   string
	stylePath string
}

// solved is one successfully processed bicycle.
type solved struct {
	path  string
	bike  *spec.Bicycle
	set   *solver.PointSet
	mset  *metrics.Set
	color string
}

// skipped is one bicycle excluded from the run, with the reason.
type skipped struct {
	path   string
	reason error
}

// loadRider loads the optional shared rider document. A broken rider
// file is fatal: it would silently change every bike's fit points.
func loadRider(path string) (*spec.Rider, error) {
	if path == "" {
		return nil, nil
	}
	rider, err := spec.LoadRider(path)
	if err != nil {
		return nil, fmt.Errorf("loading rider: %w", err)
	}
	return rider, nil
}

// solveAll loads and solves every bicycle file, collecting per-file
// failures instead of aborting so one bad file never blocks the rest.
func solveAll(ctx context.Context, paths []string, rider *spec.Rider) ([]solved, []skipped) {
	logger := loggerFromContext(ctx)

	var ok []solved
	var bad []skipped
	for _, path := range paths {
		bike, err := spec.Load(path)
		if err != nil {
			logger.Warn("skipping bicycle", "path", path, "err", err)
			bad = append(bad, skipped{path: path, reason: err})
			continue
		}

		set, err := solver.Solve(bike, rider)
		if err != nil {
			logger.Warn("skipping bicycle", "path", path, "err", err)
			bad = append(bad, skipped{path: path, reason: err})
			continue
		}

		logger.Debug("solved bicycle", "path", path, "label", set.Label, "points", len(set.Points))
		ok = append(ok, solved{
			path:  path,
			bike:  bike,
			set:   set,
			mset:  metrics.Compute(set),
			color: bike.Color,
		})
	}
	return ok, bad
}

func runCompare(ctx context.Context, opts compareOptions) error {
	logger := loggerFromContext(ctx)

	rider, err := loadRider(opts.riderPath)
	if err != nil {
		return err
	}

	style := render.DefaultStyle()
	if opts.stylePath != "" {
		style, err = render.LoadStyle(opts.stylePath)
		if err != nil {
			return err
		}
	}

	bikes, skips := solveAll(ctx, opts.bikePaths, rider)
	printRunSummary(bikes, skips)
	if len(bikes) == 0 {
		return fmt.Errorf("no bicycles could be solved")
	}

	// Overlay all bikes with their bottom brackets on a shared origin.
	frame := compare.NewFrame(geo.Origin)
	input := make([]render.Bike, len(bikes))
	for i, b := range bikes {
		normalized := frame.Apply(b.set)
		input[i] = render.Bike{
			Set:           normalized,
			Metrics:       metrics.Compute(normalized),
			ColorOverride: b.color,
		}
	}

	// Render failure is fatal: a partial chart is worse than none.
	if err := render.New(style).Render(input, opts.outPath); err != nil {
		return err
	}
	logger.Info("wrote comparison chart", "path", opts.outPath, "bikes", len(bikes))
	return nil
}

func runInfo(ctx context.Context, paths []string, riderPath string) error {
	rider, err := loadRider(riderPath)
	if err != nil {
		return err
	}

	bikes, skips := solveAll(ctx, paths, rider)
	for _, b := range bikes {
		printBikeInfo(b)
	}
	printRunSummary(bikes, skips)
	if len(bikes) == 0 {
		return fmt.Errorf("no bicycles could be solved")
	}
	return nil
}

func runValidate(ctx context.Context, paths []string) error {
	logger := loggerFromContext(ctx)

	invalid := 0
	for _, path := range paths {
		bike, err := spec.Load(path)
		if err != nil {
			invalid++
			printFileError(path, err)
			continue
		}

		report := validation.ValidateBicycle(bike)
		printValidationReport(path, report)
		if !report.Valid {
			invalid++
		}
	}

	if invalid > 0 {
		logger.Debug("validation finished", "invalid", invalid, "total", len(paths))
		return fmt.Errorf("%d of %d files failed validation", invalid, len(paths))
	}
	return nil
}
