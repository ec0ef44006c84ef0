package water

import (
	"github.com/water-guardian/water-guardian-api-poc/internal/raster"
)

// LabelRegions finds the connected components of a mask under
// 4-connectivity (up/down/left/right neighbors; diagonals do not connect).
// Background pixels get label 0; regions are numbered 1..n in the order
// their first pixel appears in row-major scan order. Runs in linear time
// over the mask.
func LabelRegions(mask *raster.Mask) (*raster.Labels, int) {
	labels := raster.NewLabels(mask.Height, mask.Width)
	width, height := mask.Width, mask.Height

	queue := make([]int, 0, 1024)
	next := 0
	for start, set := range mask.Data {
		if !set || labels.Data[start] != 0 {
			continue
		}
		next++
		labels.Data[start] = next
		queue = append(queue[:0], start)

		for len(queue) > 0 {
			idx := queue[len(queue)-1]
			queue = queue[:len(queue)-1]
			y, x := idx/width, idx%width

			if x > 0 {
				queue = visit(mask, labels, idx-1, next, queue)
			}
			if x < width-1 {
				queue = visit(mask, labels, idx+1, next, queue)
			}
			if y > 0 {
				queue = visit(mask, labels, idx-width, next, queue)
			}
			if y < height-1 {
				queue = visit(mask, labels, idx+width, next, queue)
			}
		}
	}
	return labels, next
}

func visit(mask *raster.Mask, labels *raster.Labels, idx, label int, queue []int) []int {
	if mask.Data[idx] && labels.Data[idx] == 0 {
		labels.Data[idx] = label
		queue = append(queue, idx)
	}
	return queue
}
