package storage

// Row types for the six GTFS output tables, and the FeedWriter they
// are written through. The generators in the feed package hand rows
// to a FeedWriter one at a time, in the order they should appear in
// the output; implementations must preserve that order.

type Agency struct {
	ID       string
	Name     string
	URL      string
	Timezone string
}

type Route struct {
	ID        string
	AgencyID  string
	ShortName string
	LongName  string

	// GTFS route_type code as a string. Empty when the line's mode
	// has no mapping; the row is still written.
	Type string
}

type Stop struct {
	ID   string
	Name string
	Lat  float64
	Lon  float64
}

type Calendar struct {
	ServiceID string
	Monday    int8
	Tuesday   int8
	Wednesday int8
	Thursday  int8
	Friday    int8
	Saturday  int8
	Sunday    int8
	StartDate string
	EndDate   string
}

type Trip struct {
	RouteID   string
	ServiceID string
	ID        string
}

// StopTime is one arrival/departure event. Times are "HH:MM" with
// the hour allowed past 23 for journeys that run beyond midnight.
type StopTime struct {
	TripID       string
	StopID       string
	StopSequence int
	Arrival      string
	Departure    string
}

// FeedWriter persists the rows of a single derived feed. Close
// flushes whatever the implementation buffers; a feed is only
// complete once Close has returned nil.
type FeedWriter interface {
	WriteAgency(agency *Agency) error
	WriteRoute(route *Route) error
	WriteStop(stop *Stop) error
	WriteCalendar(cal *Calendar) error
	WriteTrip(trip *Trip) error
	WriteStopTime(stopTime *StopTime) error
	Close() error
}
