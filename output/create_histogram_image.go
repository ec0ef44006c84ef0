package output

import (
	"fmt"

	"github.com/fogleman/gg"
	"github.com/water-guardian/water-guardian-api-poc/internal/raster"
	"github.com/water-guardian/water-guardian-api-poc/internal/stats"
)

const (
	histWidth   = 800
	histHeight  = 400
	histMargin  = 20
	histBaseRow = histHeight - histMargin
)

// CreateHistogramImage renders a histogram as a simple bar chart PNG.
func CreateHistogramImage(h stats.Histogram, outputPath string) error {
	if len(h.Counts) == 0 {
		return fmt.Errorf("%w: histogram has no bins", raster.ErrEmptyInput)
	}

	maxCount := 0
	for _, c := range h.Counts {
		if c > maxCount {
			maxCount = c
		}
	}
	if maxCount == 0 {
		maxCount = 1
	}

	dc := gg.NewContext(histWidth, histHeight)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	plotWidth := float64(histWidth - 2*histMargin)
	plotHeight := float64(histBaseRow - histMargin)
	barWidth := plotWidth / float64(len(h.Counts))

	dc.SetRGB(0.2, 0.4, 0.8)
	for i, c := range h.Counts {
		barHeight := float64(c) / float64(maxCount) * plotHeight
		x := float64(histMargin) + float64(i)*barWidth
		dc.DrawRectangle(x, float64(histBaseRow)-barHeight, barWidth-1, barHeight)
		dc.Fill()
	}

	// Baseline
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1)
	dc.DrawLine(histMargin, float64(histBaseRow), histWidth-histMargin, float64(histBaseRow))
	dc.Stroke()

	if err := dc.SavePNG(outputPath); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}
