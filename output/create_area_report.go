package output

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/water-guardian/water-guardian-api-poc/internal/raster"
	"github.com/water-guardian/water-guardian-api-poc/internal/sentinel"
	"github.com/water-guardian/water-guardian-api-poc/internal/utils"
)

type AreaReportRow struct {
	RegionID    int     `csv:"region_id"`
	Pixels      int     `csv:"pixels"`
	AreaKm2     float64 `csv:"area_km2"`
	CentroidLon float64 `csv:"centroid_lon"`
	CentroidLat float64 `csv:"centroid_lat"`
}

// CreateAreaReport writes a per-region CSV with pixel count, area and
// georeferenced centroid, one row per surviving water body in label order.
func CreateAreaReport(labels *raster.Labels, areas map[int]float64, md sentinel.Metadata, outputPath string) error {
	if labels == nil || len(labels.Data) == 0 {
		return fmt.Errorf("%w: label map has no elements", raster.ErrInvalidInput)
	}

	centroids := regionCentroids(labels)
	rows := make([]*AreaReportRow, 0, len(areas))
	for _, label := range utils.SortedKeys(areas) {
		c, ok := centroids[label]
		if !ok {
			continue
		}
		lon, lat, err := sentinel.PixelToLonLat(md, int(c.x), int(c.y))
		if err != nil {
			return fmt.Errorf("failed to georeference region %d: %w", label, err)
		}
		rows = append(rows, &AreaReportRow{
			RegionID:    label,
			Pixels:      c.pixels,
			AreaKm2:     areas[label],
			CentroidLon: lon,
			CentroidLat: lat,
		})
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
