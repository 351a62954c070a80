package model

// Holds the in-memory snapshot of the TfL network, as decoded from
// the Unified API. The json tags match the API's field names. Stops
// and Timetable are fetched separately from the line list, so the
// ingest pass fills them in after decoding; the generators treat the
// whole snapshot as read-only.

type Line struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Mode          string         `json:"modeName"`
	RouteSections []RouteSection `json:"routeSections"`

	// Populated by tfl.Fetch, never decoded with the line record.
	Stops []Stop `json:"-"`
}

type RouteSection struct {
	Name        string `json:"name"`
	Direction   string `json:"direction"`
	Originator  string `json:"originator"`
	Destination string `json:"destination"`

	// Populated by tfl.Fetch. Nil when the API had no timetable
	// for the section, or when its response failed to decode.
	Timetable *TimeTable `json:"-"`
}

type TimeTable struct {
	StationIntervals []StationInterval `json:"stationIntervals"`
	Schedules        []Schedule        `json:"schedules"`
}

// StationInterval lists the stops downstream of a route section's
// origin, each with a cumulative offset in minutes from departure.
type StationInterval struct {
	ID        int64      `json:"id"`
	Intervals []Interval `json:"intervals"`
}

type Interval struct {
	StopID        string  `json:"stopId"`
	TimeToArrival float64 `json:"timeToArrival"`
}

// Schedule is a named service pattern ("Monday to Friday", ...)
// grouping concrete departures.
type Schedule struct {
	Name          string         `json:"name"`
	KnownJourneys []KnownJourney `json:"knownJourneys"`
}

// KnownJourney is one scheduled departure. IntervalID references a
// StationInterval within the same TimeTable; the API serves hour and
// minute as strings.
type KnownJourney struct {
	IntervalID int64  `json:"intervalId"`
	Hour       string `json:"hour"`
	Minute     string `json:"minute"`
}

// Stop is a station or stop point. Children are platform-level
// sub-stops; they carry no usable coordinates of their own.
type Stop struct {
	ID       string  `json:"naptanId"`
	Name     string  `json:"commonName"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Children []Stop  `json:"children"`
}
