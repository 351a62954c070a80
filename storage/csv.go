package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// CSV structs define the column names and their order for each
// output file.

type agencyCSV struct {
	ID       string `csv:"agency_id"`
	Name     string `csv:"agency_name"`
	URL      string `csv:"agency_url"`
	Timezone string `csv:"agency_timezone"`
}

type routeCSV struct {
	ID        string `csv:"route_id"`
	AgencyID  string `csv:"agency_id"`
	ShortName string `csv:"route_short_name"`
	LongName  string `csv:"route_long_name"`
	Type      string `csv:"route_type"`
}

type stopCSV struct {
	ID   string  `csv:"stop_id"`
	Name string  `csv:"stop_name"`
	Lat  float64 `csv:"stop_lat"`
	Lon  float64 `csv:"stop_lon"`
}

type calendarCSV struct {
	ServiceID string `csv:"service_id"`
	Monday    int8   `csv:"monday"`
	Tuesday   int8   `csv:"tuesday"`
	Wednesday int8   `csv:"wednesday"`
	Thursday  int8   `csv:"thursday"`
	Friday    int8   `csv:"friday"`
	Saturday  int8   `csv:"saturday"`
	Sunday    int8   `csv:"sunday"`
	StartDate string `csv:"start_date"`
	EndDate   string `csv:"end_date"`
}

type tripCSV struct {
	RouteID   string `csv:"route_id"`
	ServiceID string `csv:"service_id"`
	ID        string `csv:"trip_id"`
}

type stopTimeCSV struct {
	TripID       string `csv:"trip_id"`
	StopID       string `csv:"stop_id"`
	StopSequence int    `csv:"stop_sequence"`
	Arrival      string `csv:"arrival_time"`
	Departure    string `csv:"departure_time"`
}

// CSVWriter writes the feed as GTFS text files in a directory. Rows
// are buffered and marshalled on Close, one file per table, each
// with its fixed header row.
type CSVWriter struct {
	dir string

	agencies  []*agencyCSV
	routes    []*routeCSV
	stops     []*stopCSV
	calendars []*calendarCSV
	trips     []*tripCSV
	stopTimes []*stopTimeCSV
}

func NewCSVWriter(dir string) (*CSVWriter, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	return &CSVWriter{dir: dir}, nil
}

func (w *CSVWriter) WriteAgency(agency *Agency) error {
	w.agencies = append(w.agencies, &agencyCSV{
		ID:       agency.ID,
		Name:     agency.Name,
		URL:      agency.URL,
		Timezone: agency.Timezone,
	})
	return nil
}

func (w *CSVWriter) WriteRoute(route *Route) error {
	w.routes = append(w.routes, &routeCSV{
		ID:        route.ID,
		AgencyID:  route.AgencyID,
		ShortName: route.ShortName,
		LongName:  route.LongName,
		Type:      route.Type,
	})
	return nil
}

func (w *CSVWriter) WriteStop(stop *Stop) error {
	w.stops = append(w.stops, &stopCSV{
		ID:   stop.ID,
		Name: stop.Name,
		Lat:  stop.Lat,
		Lon:  stop.Lon,
	})
	return nil
}

func (w *CSVWriter) WriteCalendar(cal *Calendar) error {
	w.calendars = append(w.calendars, &calendarCSV{
		ServiceID: cal.ServiceID,
		Monday:    cal.Monday,
		Tuesday:   cal.Tuesday,
		Wednesday: cal.Wednesday,
		Thursday:  cal.Thursday,
		Friday:    cal.Friday,
		Saturday:  cal.Saturday,
		Sunday:    cal.Sunday,
		StartDate: cal.StartDate,
		EndDate:   cal.EndDate,
	})
	return nil
}

func (w *CSVWriter) WriteTrip(trip *Trip) error {
	w.trips = append(w.trips, &tripCSV{
		RouteID:   trip.RouteID,
		ServiceID: trip.ServiceID,
		ID:        trip.ID,
	})
	return nil
}

func (w *CSVWriter) WriteStopTime(stopTime *StopTime) error {
	w.stopTimes = append(w.stopTimes, &stopTimeCSV{
		TripID:       stopTime.TripID,
		StopID:       stopTime.StopID,
		StopSequence: stopTime.StopSequence,
		Arrival:      stopTime.Arrival,
		Departure:    stopTime.Departure,
	})
	return nil
}

func (w *CSVWriter) Close() error {
	for _, table := range []struct {
		name string
		rows interface{}
	}{
		{"agency.txt", w.agencies},
		{"routes.txt", w.routes},
		{"stops.txt", w.stops},
		{"calendar.txt", w.calendars},
		{"trips.txt", w.trips},
		{"stop_times.txt", w.stopTimes},
	} {
		if err := w.writeFile(table.name, table.rows); err != nil {
			return err
		}
	}
	return nil
}

func (w *CSVWriter) writeFile(name string, rows interface{}) error {
	f, err := os.Create(filepath.Join(w.dir, name))
	if err != nil {
		return fmt.Errorf("creating %s: %w", name, err)
	}
	if err := gocsv.MarshalFile(rows, f); err != nil {
		f.Close()
		return fmt.Errorf("marshaling %s: %w", name, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", name, err)
	}

	return nil
}
