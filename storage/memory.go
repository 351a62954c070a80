package storage

// In-memory FeedWriter. Used in tests to capture exactly what the
// generators emit, in order.
type MemoryWriter struct {
	Agencies  []*Agency
	Routes    []*Route
	Stops     []*Stop
	Calendars []*Calendar
	Trips     []*Trip
	StopTimes []*StopTime

	Closed bool
}

func NewMemoryWriter() *MemoryWriter {
	return &MemoryWriter{}
}

func (w *MemoryWriter) WriteAgency(agency *Agency) error {
	w.Agencies = append(w.Agencies, agency)
	return nil
}

func (w *MemoryWriter) WriteRoute(route *Route) error {
	w.Routes = append(w.Routes, route)
	return nil
}

func (w *MemoryWriter) WriteStop(stop *Stop) error {
	w.Stops = append(w.Stops, stop)
	return nil
}

func (w *MemoryWriter) WriteCalendar(cal *Calendar) error {
	w.Calendars = append(w.Calendars, cal)
	return nil
}

func (w *MemoryWriter) WriteTrip(trip *Trip) error {
	w.Trips = append(w.Trips, trip)
	return nil
}

func (w *MemoryWriter) WriteStopTime(stopTime *StopTime) error {
	w.StopTimes = append(w.StopTimes, stopTime)
	return nil
}

func (w *MemoryWriter) Close() error {
	w.Closed = true
	return nil
}
