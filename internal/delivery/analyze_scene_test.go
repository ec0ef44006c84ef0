package delivery

import (
	"testing"

	"github.com/water-guardian/water-guardian-api-poc/internal/sentinel"
	"github.com/water-guardian/water-guardian-api-poc/internal/water"
)

func TestConfigResampleDefault(t *testing.T) {
	if got := (Config{}).resample(); got != sentinel.ResampleBilinear {
		t.Errorf("default resample = %q, want bilinear", got)
	}
	if got := (Config{Resample: sentinel.ResampleCubic}).resample(); got != sentinel.ResampleCubic {
		t.Errorf("resample = %q, want cubic", got)
	}
}

func TestConfigPixelSize(t *testing.T) {
	md := sentinel.Metadata{GeoTransform: [6]float64{0, 10, 0, 0, 0, -10}}

	// Zero config derives the size from the geotransform.
	px := (Config{}).pixelSize(md)
	if px.Width != 10 || px.Height != 10 {
		t.Errorf("derived pixel size = %+v, want 10x10", px)
	}

	// An explicit size wins over the metadata.
	cfg := Config{PixelSize: water.SquarePixel(30)}
	px = cfg.pixelSize(md)
	if px.Width != 30 || px.Height != 30 {
		t.Errorf("explicit pixel size = %+v, want 30x30", px)
	}
}
