// Package feed derives a GTFS static feed from a TfL network
// snapshot.
//
// Generation is deterministic: tables are produced in a fixed order,
// traversal follows the snapshot's own sequence order, and every
// generator owns freshly initialized dedup state. An identical
// snapshot therefore produces byte-identical output. The engine
// performs no I/O of its own beyond handing rows to the FeedWriter.
package feed

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"tidbyt.dev/tflgtfs/model"
	"tidbyt.dev/tflgtfs/storage"
)

// Generate writes the complete feed for the given snapshot. The
// snapshot must be fully materialized (see tfl.Fetch); it is not
// mutated.
func Generate(logger *zap.Logger, w storage.FeedWriter, lines []model.Line) error {
	if err := GenerateAgency(w); err != nil {
		return err
	}
	if err := GenerateRoutes(logger, w, lines); err != nil {
		return err
	}
	if err := GenerateStops(w, lines); err != nil {
		return err
	}
	if err := GenerateCalendar(w); err != nil {
		return err
	}
	if err := GenerateTrips(w, lines); err != nil {
		return err
	}
	if err := GenerateStopTimes(logger, w, lines); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return errors.Wrap(err, "closing feed writer")
	}
	return nil
}
