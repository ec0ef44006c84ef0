package delivery

import (
	"fmt"

	"github.com/water-guardian/water-guardian-api-poc/internal/indices"
	"github.com/water-guardian/water-guardian-api-poc/internal/raster"
	"github.com/water-guardian/water-guardian-api-poc/internal/sentinel"
	"github.com/water-guardian/water-guardian-api-poc/internal/stats"
	"github.com/water-guardian/water-guardian-api-poc/internal/water"
)

// ScenePaths names the band files of one acquisition. SWIR is only needed
// when the MNDWI index is selected.
type ScenePaths struct {
	Green string
	NIR   string
	SWIR  string
}

// Config tunes the water analysis pipeline.
type Config struct {
	// Index is "ndwi" (default) or "mndwi".
	Index string
	// Threshold marks water where the index is strictly above it.
	Threshold float64
	// MinAreaM2 drops water bodies smaller than this; 0 keeps all.
	MinAreaM2 float64
	// PixelSize overrides the ground resolution; the zero value derives it
	// from the scene's geotransform.
	PixelSize water.PixelSize
	// Resample is used when band shapes disagree, default bilinear.
	Resample sentinel.ResampleMethod
	// Workers bounds batch parallelism, default 4.
	Workers int
	// Notify posts a Discord notification when a batch finishes.
	Notify bool
}

func (cfg Config) resample() sentinel.ResampleMethod {
	if cfg.Resample == "" {
		return sentinel.ResampleBilinear
	}
	return cfg.Resample
}

// SceneAnalysis is the full water report of one scene.
type SceneAnalysis struct {
	Scene    ScenePaths
	Metadata sentinel.Metadata
	Index    *raster.Grid
	Mask     *raster.Mask
	Labels   *raster.Labels
	Bodies   map[int]float64
	Stats    water.WaterStatsResult
	Summary  stats.Statistics
}

// buildIndex reads the scene's bands and computes the configured water
// index. Bands with mismatched shapes are resampled to the first band's
// shape before the index runs.
func buildIndex(scene ScenePaths, cfg Config) (*raster.Grid, sentinel.Metadata, error) {
	green, md, err := sentinel.ReadRaster(scene.Green)
	if err != nil {
		return nil, sentinel.Metadata{}, fmt.Errorf("failed to read green band: %w", err)
	}

	secondPath := scene.NIR
	if cfg.Index == "mndwi" {
		secondPath = scene.SWIR
		if secondPath == "" {
			return nil, sentinel.Metadata{}, fmt.Errorf("%w: mndwi requires a SWIR band path", raster.ErrInvalidParameter)
		}
	}
	second, _, err := sentinel.ReadRaster(secondPath)
	if err != nil {
		return nil, sentinel.Metadata{}, fmt.Errorf("failed to read %s band: %w", cfg.Index, err)
	}

	if !green.SameShape(second) {
		fmt.Printf("Warning: resampling band to shape %dx%d\n", green.Height, green.Width)
		second, err = sentinel.Resample(second, green.Height, green.Width, cfg.resample())
		if err != nil {
			return nil, sentinel.Metadata{}, err
		}
	}

	var index *raster.Grid
	switch cfg.Index {
	case "", "ndwi":
		index, err = indices.NDWI(green, second)
	case "mndwi":
		index, err = indices.MNDWI(green, second)
	default:
		return nil, sentinel.Metadata{}, fmt.Errorf("%w: unknown water index %q", raster.ErrInvalidParameter, cfg.Index)
	}
	if err != nil {
		return nil, sentinel.Metadata{}, err
	}
	return index, md, nil
}

func (cfg Config) pixelSize(md sentinel.Metadata) water.PixelSize {
	if cfg.PixelSize.Width > 0 && cfg.PixelSize.Height > 0 {
		return cfg.PixelSize
	}
	return water.PixelSize{Width: md.PixelWidth(), Height: md.PixelHeight()}
}

// AnalyzeScene runs the full pipeline on one scene: index, threshold mask,
// water body labeling with optional minimum-area filtering, coverage stats
// and an index summary.
func AnalyzeScene(scene ScenePaths, cfg Config) (*SceneAnalysis, error) {
	index, md, err := buildIndex(scene, cfg)
	if err != nil {
		return nil, err
	}

	mask := index.GreaterThan(cfg.Threshold)
	px := cfg.pixelSize(md)

	labels, bodies, err := water.GetWaterBodies(mask, px, cfg.MinAreaM2)
	if err != nil {
		return nil, err
	}
	waterStats, err := water.WaterStats(mask, px)
	if err != nil {
		return nil, err
	}
	summary, err := stats.Summary(index)
	if err != nil {
		return nil, err
	}

	return &SceneAnalysis{
		Scene:    scene,
		Metadata: md,
		Index:    index,
		Mask:     mask,
		Labels:   labels,
		Bodies:   bodies,
		Stats:    waterStats,
		Summary:  summary,
	}, nil
}
