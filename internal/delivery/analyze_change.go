package delivery

import (
	"fmt"

	"github.com/water-guardian/water-guardian-api-poc/internal/raster"
	"github.com/water-guardian/water-guardian-api-poc/internal/sentinel"
	"github.com/water-guardian/water-guardian-api-poc/internal/water"
	"golang.org/x/sync/errgroup"
)

// ChangeAnalysis compares the water surface of two acquisitions.
type ChangeAnalysis struct {
	Before   ScenePaths
	After    ScenePaths
	Metadata sentinel.Metadata
	Change   water.WaterChangeResult
	// Diff is the normalized index difference between the two dates,
	// positive where the index increased.
	Diff *raster.Grid
}

// AnalyzeChange loads two dates concurrently, aligns the later one to the
// earlier one's shape when they disagree, and reports gained/lost/net water
// area plus a continuous change raster.
func AnalyzeChange(before, after ScenePaths, cfg Config) (*ChangeAnalysis, error) {
	var (
		beforeIndex, afterIndex *raster.Grid
		beforeMD                sentinel.Metadata
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		beforeIndex, beforeMD, err = buildIndex(before, cfg)
		return err
	})
	g.Go(func() error {
		var err error
		afterIndex, _, err = buildIndex(after, cfg)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if !beforeIndex.SameShape(afterIndex) {
		fmt.Printf("Warning: resampling second date to shape %dx%d\n", beforeIndex.Height, beforeIndex.Width)
		var err error
		afterIndex, err = sentinel.Resample(afterIndex, beforeIndex.Height, beforeIndex.Width, cfg.resample())
		if err != nil {
			return nil, err
		}
	}

	px := cfg.pixelSize(beforeMD)
	change, err := water.WaterChange(
		beforeIndex.GreaterThan(cfg.Threshold),
		afterIndex.GreaterThan(cfg.Threshold),
		px,
	)
	if err != nil {
		return nil, err
	}

	diff, err := raster.Diff(beforeIndex, afterIndex, raster.DiffNorm)
	if err != nil {
		return nil, err
	}

	return &ChangeAnalysis{
		Before:   before,
		After:    after,
		Metadata: beforeMD,
		Change:   change,
		Diff:     diff,
	}, nil
}
