// Package testutil has helpers for building TfL network snapshots
// in tests.
package testutil

import (
	"tidbyt.dev/tflgtfs/model"
)

func Line(id, name, mode string, sections ...model.RouteSection) model.Line {
	return model.Line{
		ID:            id,
		Name:          name,
		Mode:          mode,
		RouteSections: sections,
		Stops:         []model.Stop{},
	}
}

func Section(origin, destination string, tt *model.TimeTable) model.RouteSection {
	return model.RouteSection{
		Name:        origin + " - " + destination,
		Direction:   "outbound",
		Originator:  origin,
		Destination: destination,
		Timetable:   tt,
	}
}

func Timetable(intervals []model.StationInterval, schedules ...model.Schedule) *model.TimeTable {
	return &model.TimeTable{
		StationIntervals: intervals,
		Schedules:        schedules,
	}
}

func StationInterval(id int64, stops ...model.Interval) model.StationInterval {
	return model.StationInterval{ID: id, Intervals: stops}
}

func Schedule(name string, journeys ...model.KnownJourney) model.Schedule {
	return model.Schedule{Name: name, KnownJourneys: journeys}
}

func Journey(intervalID int64, hour, minute string) model.KnownJourney {
	return model.KnownJourney{IntervalID: intervalID, Hour: hour, Minute: minute}
}
