package output

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/water-guardian/water-guardian-api-poc/internal/raster"
	"github.com/water-guardian/water-guardian-api-poc/internal/sentinel"
	"github.com/water-guardian/water-guardian-api-poc/internal/utils"
)

type regionCentroid struct {
	x, y   float64
	pixels int
}

// regionCentroids accumulates the pixel centroid of every labeled region.
func regionCentroids(labels *raster.Labels) map[int]*regionCentroid {
	centroids := make(map[int]*regionCentroid)
	for i, label := range labels.Data {
		if label == 0 {
			continue
		}
		c, ok := centroids[label]
		if !ok {
			c = &regionCentroid{}
			centroids[label] = c
		}
		c.x += float64(i % labels.Width)
		c.y += float64(i / labels.Width)
		c.pixels++
	}
	for _, c := range centroids {
		c.x /= float64(c.pixels)
		c.y /= float64(c.pixels)
	}
	return centroids
}

// CreateWaterBodiesGeoJSON writes one Point feature per water body at its
// centroid, carrying the region id, pixel count and area in km². Pixel
// centroids are georeferenced through the scene metadata.
func CreateWaterBodiesGeoJSON(labels *raster.Labels, areas map[int]float64, md sentinel.Metadata, outputPath string) error {
	if labels == nil || len(labels.Data) == 0 {
		return fmt.Errorf("%w: label map has no elements", raster.ErrInvalidInput)
	}

	centroids := regionCentroids(labels)
	fc := geojson.NewFeatureCollection()
	for _, label := range utils.SortedKeys(areas) {
		c, ok := centroids[label]
		if !ok {
			continue
		}
		lon, lat, err := sentinel.PixelToLonLat(md, int(c.x), int(c.y))
		if err != nil {
			return fmt.Errorf("failed to georeference region %d: %w", label, err)
		}

		feature := geojson.NewFeature(orb.Point{lon, lat})
		feature.Properties = geojson.Properties{
			"region_id": label,
			"pixels":    c.pixels,
			"area_km2":  areas[label],
		}
		fc.Append(feature)
	}

	data, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode GeoJSON: %w", err)
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write GeoJSON file: %w", err)
	}
	return nil
}
