package tfl

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"tidbyt.dev/tflgtfs/model"
)

// DefaultWorkers bounds how many lines are fetched concurrently.
const DefaultWorkers = 10

// Fetch materializes the full network snapshot: the line list, then
// stops and per-section timetables for every line. Lines are handed
// to a fixed pool of workers; Fetch returns only after every worker
// has drained its jobs, so the snapshot is complete when it returns.
//
// Per-line failures are not fatal. A stops fetch or decode failure
// leaves the line with an empty (non-nil) stop list; a timetable
// failure leaves the section's Timetable nil. Both are logged. Only
// a failure to fetch the line list itself fails the snapshot.
func Fetch(ctx context.Context, logger *zap.Logger, client *Client, workers int) ([]model.Line, error) {
	lines, err := client.Lines(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "fetching lines")
	}

	if workers <= 0 {
		workers = DefaultWorkers
	}

	jobs := make(chan *model.Line)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for line := range jobs {
				fetchLine(ctx, logger, client, line)
			}
		}()
	}

	// Each worker owns the lines it receives, so no locking is
	// needed while the pool fills in the snapshot.
	for i := range lines {
		jobs <- &lines[i]
	}
	close(jobs)
	wg.Wait()

	return lines, nil
}

func fetchLine(ctx context.Context, logger *zap.Logger, client *Client, line *model.Line) {
	stops, err := client.Stops(ctx, line.ID)
	if err != nil {
		logger.Warn("fetching stops",
			zap.String("line", line.ID),
			zap.Error(err))
		stops = []model.Stop{}
	}
	line.Stops = stops

	for i := range line.RouteSections {
		section := &line.RouteSections[i]
		logger.Info("fetching timetable",
			zap.String("line", line.Name),
			zap.String("section", section.Name))

		timetable, err := client.Timetable(ctx, line.ID, section.Originator, section.Destination)
		if err != nil {
			logger.Warn("fetching timetable",
				zap.String("line", line.ID),
				zap.String("section", section.Name),
				zap.Error(err))
			continue
		}
		section.Timetable = timetable
	}
}
