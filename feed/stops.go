package feed

import (
	"github.com/pkg/errors"

	"tidbyt.dev/tflgtfs/model"
	"tidbyt.dev/tflgtfs/storage"
)

// Only one level of child stops is flattened into the output.
const stopChildDepth = 1

// GenerateStops flattens every line's stop hierarchy into stop rows.
// A stop reachable from several lines, or as a child of several
// parents, is emitted once, at first encounter in line order. Lines
// must have their stops populated by ingestion; a nil Stops slice
// means the snapshot was never fully fetched and is an error.
func GenerateStops(w storage.FeedWriter, lines []model.Line) error {
	written := seenSet{}
	for i := range lines {
		line := &lines[i]
		if line.Stops == nil {
			return errors.Errorf("line '%s' has no stops, snapshot is incomplete", line.ID)
		}
		for j := range line.Stops {
			stop := &line.Stops[j]
			if err := writeStopTree(w, stop, stop.Lat, stop.Lon, 0, written); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeStopTree emits a stop and then its children, descending at
// most stopChildDepth levels below the top. Children are written
// with the coordinates passed down from the top-level stop: the API
// carries no usable coordinates on platform-level sub-stops. A stop
// that was already written is skipped together with its subtree.
func writeStopTree(w storage.FeedWriter, stop *model.Stop, lat, lon float64, depth int, written seenSet) error {
	if written.seen(stop.ID) {
		return nil
	}
	written.mark(stop.ID)

	err := w.WriteStop(&storage.Stop{
		ID:   stop.ID,
		Name: stop.Name,
		Lat:  lat,
		Lon:  lon,
	})
	if err != nil {
		return errors.Wrapf(err, "writing stop '%s'", stop.ID)
	}

	if depth >= stopChildDepth {
		return nil
	}

	for i := range stop.Children {
		if err := writeStopTree(w, &stop.Children[i], lat, lon, depth+1, written); err != nil {
			return err
		}
	}
	return nil
}
