package feed

import (
	"fmt"

	"tidbyt.dev/tflgtfs/model"
)

// The TfL API does not assign identifiers to route sections or
// scheduled journeys, so the feed derives stable, human-legible ones
// from the business fields. Fields are concatenated without escaping:
// a field containing one of the literal delimiters (" to ",
// " scheduled ", " departs ") could collide with another entity.
// TfL data does not do this in practice; known limitation.

// RouteSectionID derives the identifier for a route section. Two
// sections with the same id are duplicates and only the first one
// encountered is processed.
func RouteSectionID(line *model.Line, section *model.RouteSection) string {
	return line.ID + " " + section.Originator + " to " + section.Destination
}

// TripID derives the identifier for one scheduled journey. Identical
// (line, section, schedule name, departure time) tuples always yield
// the identical string; it is the sole dedup key for trips and their
// stop_times.
func TripID(line *model.Line, section *model.RouteSection, schedule *model.Schedule, journey *model.KnownJourney) (string, error) {
	departs, err := FormatTime(journey, 0)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %s to %s scheduled %s departs %s",
		line.ID, section.Originator, section.Destination, schedule.Name, departs), nil
}
