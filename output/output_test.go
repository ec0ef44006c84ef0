package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/water-guardian/water-guardian-api-poc/internal/raster"
	"github.com/water-guardian/water-guardian-api-poc/internal/sentinel"
	"github.com/water-guardian/water-guardian-api-poc/internal/stats"
	"github.com/water-guardian/water-guardian-api-poc/internal/water"
)

// testMetadata has no projection, so georeferencing runs through the raw
// geotransform without touching GDAL.
func testMetadata() sentinel.Metadata {
	return sentinel.Metadata{
		Width:        4,
		Height:       2,
		GeoTransform: [6]float64{100, 10, 0, 500, 0, -10},
	}
}

func testLabels(t *testing.T) (*raster.Labels, map[int]float64) {
	t.Helper()
	mask, err := raster.MaskFromRows([][]bool{
		{true, false, false, true},
		{true, false, false, true},
	})
	if err != nil {
		t.Fatalf("MaskFromRows failed: %v", err)
	}
	labels, areas, err := water.GetWaterBodies(mask, water.SquarePixel(10), 0)
	if err != nil {
		t.Fatalf("GetWaterBodies failed: %v", err)
	}
	return labels, areas
}

func TestCreateWaterBodiesGeoJSON(t *testing.T) {
	labels, areas := testLabels(t)
	path := filepath.Join(t.TempDir(), "bodies.geojson")

	if err := CreateWaterBodiesGeoJSON(labels, areas, testMetadata(), path); err != nil {
		t.Fatalf("CreateWaterBodiesGeoJSON failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output failed: %v", err)
	}
	var fc struct {
		Type     string `json:"type"`
		Features []struct {
			Geometry struct {
				Type        string    `json:"type"`
				Coordinates []float64 `json:"coordinates"`
			} `json:"geometry"`
			Properties map[string]any `json:"properties"`
		} `json:"features"`
	}
	if err := json.Unmarshal(data, &fc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if fc.Type != "FeatureCollection" || len(fc.Features) != 2 {
		t.Fatalf("got %s with %d features, want FeatureCollection with 2", fc.Type, len(fc.Features))
	}
	// First region centroid truncates to pixel (0,0), whose center maps to
	// geo (105, 495) under the test geotransform.
	coords := fc.Features[0].Geometry.Coordinates
	if coords[0] != 105 || coords[1] != 495 {
		t.Errorf("centroid = %v, want [105 495]", coords)
	}
	if fc.Features[0].Properties["pixels"].(float64) != 2 {
		t.Errorf("pixels = %v, want 2", fc.Features[0].Properties["pixels"])
	}
}

func TestCreateAreaReport(t *testing.T) {
	labels, areas := testLabels(t)
	path := filepath.Join(t.TempDir(), "report.csv")

	if err := CreateAreaReport(labels, areas, testMetadata(), path); err != nil {
		t.Fatalf("CreateAreaReport failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading report failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header plus 2 rows", len(lines))
	}
	if !strings.Contains(lines[0], "region_id") || !strings.Contains(lines[0], "area_km2") {
		t.Errorf("header missing expected columns: %s", lines[0])
	}
	if !strings.HasPrefix(lines[1], "1,") || !strings.HasPrefix(lines[2], "2,") {
		t.Errorf("rows not in label order: %v", lines[1:])
	}
}

func TestCreateIndexImage(t *testing.T) {
	index, err := raster.FromRows([][]float64{{-1, -0.5, 0}, {0.25, 0.5, 1}})
	if err != nil {
		t.Fatalf("FromRows failed: %v", err)
	}
	path := filepath.Join(t.TempDir(), "index.png")

	if err := CreateIndexImage(index, path); err != nil {
		t.Fatalf("CreateIndexImage failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		t.Fatalf("output PNG missing or empty: %v", err)
	}

	if err := CreateCompareImage(index, index, filepath.Join(t.TempDir(), "cmp.png")); err != nil {
		t.Fatalf("CreateCompareImage failed: %v", err)
	}
}

func TestCreateChangeImage(t *testing.T) {
	m1, _ := raster.MaskFromRows([][]bool{{true, true, false, false}})
	m2, _ := raster.MaskFromRows([][]bool{{true, false, true, false}})
	path := filepath.Join(t.TempDir(), "change.png")

	if err := CreateChangeImage(m1, m2, path); err != nil {
		t.Fatalf("CreateChangeImage failed: %v", err)
	}

	narrow, _ := raster.MaskFromRows([][]bool{{true}})
	if err := CreateChangeImage(m1, narrow, path); err == nil {
		t.Error("mismatched masks should fail")
	}
}

func TestCreateHistogramImage(t *testing.T) {
	g, err := raster.FromRows([][]float64{{0, 0.1, 0.2, 0.5, 0.5, 1}})
	if err != nil {
		t.Fatalf("FromRows failed: %v", err)
	}
	h, err := stats.NewHistogram(g, 10)
	if err != nil {
		t.Fatalf("NewHistogram failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "hist.png")
	if err := CreateHistogramImage(h, path); err != nil {
		t.Fatalf("CreateHistogramImage failed: %v", err)
	}
	if err := CreateHistogramImage(stats.Histogram{}, path); err == nil {
		t.Error("empty histogram should fail")
	}
}
