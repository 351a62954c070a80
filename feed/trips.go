package feed

import (
	"github.com/pkg/errors"

	"tidbyt.dev/tflgtfs/model"
	"tidbyt.dev/tflgtfs/storage"
)

// GenerateTrips writes one trip row per distinct scheduled journey.
// The snapshot can reach the same route section more than once within
// a line, so sections are deduped per line; trips are deduped per
// section, since the trip id embeds the section's fields.
func GenerateTrips(w storage.FeedWriter, lines []model.Line) error {
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
			if err := writeSectionTrips(w, line, section); err != nil {
				return err
			}
		}
	}
	return nil
}

// A section without a timetable contributes no trips.
func writeSectionTrips(w storage.FeedWriter, line *model.Line, section *model.RouteSection) error {
	if section.Timetable == nil {
		return nil
	}

	written := seenSet{}
	for s := range section.Timetable.Schedules {
		schedule := &section.Timetable.Schedules[s]
		for j := range schedule.KnownJourneys {
			journey := &schedule.KnownJourneys[j]

			id, err := TripID(line, section, schedule, journey)
			if err != nil {
				return err
			}
			if written.seen(id) {
				continue
			}
			written.mark(id)

			err = w.WriteTrip(&storage.Trip{
				RouteID:   line.ID,
				ServiceID: schedule.Name,
				ID:        id,
			})
			if err != nil {
				return errors.Wrapf(err, "writing trip '%s'", id)
			}
		}
	}
	return nil
}
