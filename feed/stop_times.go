package feed

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"tidbyt.dev/tflgtfs/model"
	"tidbyt.dev/tflgtfs/storage"
)

// GenerateStopTimes writes the full per-stop event sequence for every
// distinct trip. It walks the snapshot the same way GenerateTrips
// does but owns its own dedup state; the two generators never run
// against shared sets.
func GenerateStopTimes(logger *zap.Logger, w storage.FeedWriter, lines []model.Line) error {
	for i := range lines {
		line := &lines[i]
		sections := seenSet{}
		for j := range line.RouteSections {
			section := &line.RouteSections[j]
			id := RouteSectionID(line, section)
			if sections.seen(id) {
				continue
			}
			sections.mark(id)
			if err := writeSectionStopTimes(logger, w, line, section); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeSectionStopTimes(logger *zap.Logger, w storage.FeedWriter, line *model.Line, section *model.RouteSection) error {
	if section.Timetable == nil {
		return nil
	}

	intervals := make(map[int64]*model.StationInterval, len(section.Timetable.StationIntervals))
	for i := range section.Timetable.StationIntervals {
		si := &section.Timetable.StationIntervals[i]
		intervals[si.ID] = si
	}

	written := seenSet{}
	for s := range section.Timetable.Schedules {
		schedule := &section.Timetable.Schedules[s]
		for j := range schedule.KnownJourneys {
			journey := &schedule.KnownJourneys[j]

			interval, ok := intervals[journey.IntervalID]
			if !ok {
				// The journey references an interval the timetable
				// doesn't carry. Unproducible; skip it.
				logger.Warn("no station interval for journey",
					zap.String("section", RouteSectionID(line, section)),
					zap.String("schedule", schedule.Name),
					zap.Int64("intervalId", journey.IntervalID))
				continue
			}

			id, err := TripID(line, section, schedule, journey)
			if err != nil {
				return err
			}
			if written.seen(id) {
				continue
			}
			written.mark(id)

			if err := writeJourneyStopTimes(w, section, journey, id, interval); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeJourneyStopTimes emits the origin event at sequence 1, then
// one event per downstream interval. Arrival always equals
// departure; the source has no dwell times.
func writeJourneyStopTimes(w storage.FeedWriter, section *model.RouteSection, journey *model.KnownJourney, tripID string, interval *model.StationInterval) error {
	departure, err := FormatTime(journey, 0)
	if err != nil {
		return err
	}

	seq := 1
	err = w.WriteStopTime(&storage.StopTime{
		TripID:       tripID,
		StopID:       section.Originator,
		StopSequence: seq,
		Arrival:      departure,
		Departure:    departure,
	})
	if err != nil {
		return errors.Wrapf(err, "writing stop_time for trip '%s'", tripID)
	}

	for i := range interval.Intervals {
		stop := &interval.Intervals[i]
		seq++

		at, err := FormatTime(journey, stop.TimeToArrival)
		if err != nil {
			return err
		}

		err = w.WriteStopTime(&storage.StopTime{
			TripID:       tripID,
			StopID:       stop.StopID,
			StopSequence: seq,
			Arrival:      at,
			Departure:    at,
		})
		if err != nil {
			return errors.Wrapf(err, "writing stop_time for trip '%s'", tripID)
		}
	}
	return nil
}
