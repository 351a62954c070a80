package storage

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// PostgresWriter persists the feed in a Postgres database, for
// deployments that serve the derived feed out of a shared database
// rather than shipping .txt files around. Same contract as
// SQLiteWriter: each run replaces the previous feed, and nothing is
// visible until Close commits.
type PostgresWriter struct {
	db *sql.DB
	tx *sql.Tx
}

func NewPostgresWriter(dsn string) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	_, err = db.Exec(`
DROP TABLE IF EXISTS agency;
DROP TABLE IF EXISTS routes;
DROP TABLE IF EXISTS stops;
DROP TABLE IF EXISTS calendar;
DROP TABLE IF EXISTS trips;
DROP TABLE IF EXISTS stop_times;

CREATE TABLE agency (
    agency_id TEXT PRIMARY KEY,
    agency_name TEXT NOT NULL,
    agency_url TEXT NOT NULL,
    agency_timezone TEXT NOT NULL
);

CREATE TABLE routes (
    route_id TEXT PRIMARY KEY,
    agency_id TEXT NOT NULL,
    route_short_name TEXT NOT NULL,
    route_long_name TEXT NOT NULL,
    route_type TEXT NOT NULL
);

CREATE TABLE stops (
    stop_id TEXT PRIMARY KEY,
    stop_name TEXT NOT NULL,
    stop_lat DOUBLE PRECISION NOT NULL,
    stop_lon DOUBLE PRECISION NOT NULL
);

CREATE TABLE calendar (
    service_id TEXT PRIMARY KEY,
    monday SMALLINT NOT NULL,
    tuesday SMALLINT NOT NULL,
    wednesday SMALLINT NOT NULL,
    thursday SMALLINT NOT NULL,
    friday SMALLINT NOT NULL,
    saturday SMALLINT NOT NULL,
    sunday SMALLINT NOT NULL,
    start_date TEXT NOT NULL,
    end_date TEXT NOT NULL
);

CREATE TABLE trips (
    trip_id TEXT PRIMARY KEY,
    route_id TEXT NOT NULL,
    service_id TEXT NOT NULL
);

CREATE TABLE stop_times (
    trip_id TEXT NOT NULL,
    stop_id TEXT NOT NULL,
    stop_sequence INTEGER NOT NULL,
    arrival_time TEXT NOT NULL,
    departure_time TEXT NOT NULL,
PRIMARY KEY (trip_id, stop_sequence)
);`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating tables: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}

	return &PostgresWriter{db: db, tx: tx}, nil
}

func (w *PostgresWriter) WriteAgency(agency *Agency) error {
	_, err := w.tx.Exec(
		`INSERT INTO agency (agency_id, agency_name, agency_url, agency_timezone) VALUES ($1, $2, $3, $4) ON CONFLICT DO NOTHING`,
		agency.ID, agency.Name, agency.URL, agency.Timezone,
	)
	if err != nil {
		return fmt.Errorf("inserting agency: %w", err)
	}
	return nil
}

func (w *PostgresWriter) WriteRoute(route *Route) error {
	_, err := w.tx.Exec(
		`INSERT INTO routes (route_id, agency_id, route_short_name, route_long_name, route_type) VALUES ($1, $2, $3, $4, $5) ON CONFLICT DO NOTHING`,
		route.ID, route.AgencyID, route.ShortName, route.LongName, route.Type,
	)
	if err != nil {
		return fmt.Errorf("inserting route: %w", err)
	}
	return nil
}

func (w *PostgresWriter) WriteStop(stop *Stop) error {
	_, err := w.tx.Exec(
		`INSERT INTO stops (stop_id, stop_name, stop_lat, stop_lon) VALUES ($1, $2, $3, $4) ON CONFLICT DO NOTHING`,
		stop.ID, stop.Name, stop.Lat, stop.Lon,
	)
	if err != nil {
		return fmt.Errorf("inserting stop: %w", err)
	}
	return nil
}

func (w *PostgresWriter) WriteCalendar(cal *Calendar) error {
	_, err := w.tx.Exec(
		`INSERT INTO calendar (service_id, monday, tuesday, wednesday, thursday, friday, saturday, sunday, start_date, end_date)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) ON CONFLICT DO NOTHING`,
		cal.ServiceID, cal.Monday, cal.Tuesday, cal.Wednesday, cal.Thursday,
		cal.Friday, cal.Saturday, cal.Sunday, cal.StartDate, cal.EndDate,
	)
	if err != nil {
		return fmt.Errorf("inserting calendar: %w", err)
	}
	return nil
}

func (w *PostgresWriter) WriteTrip(trip *Trip) error {
	_, err := w.tx.Exec(
		`INSERT INTO trips (trip_id, route_id, service_id) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`,
		trip.ID, trip.RouteID, trip.ServiceID,
	)
	if err != nil {
		return fmt.Errorf("inserting trip: %w", err)
	}
	return nil
}

func (w *PostgresWriter) WriteStopTime(stopTime *StopTime) error {
	_, err := w.tx.Exec(
		`INSERT INTO stop_times (trip_id, stop_id, stop_sequence, arrival_time, departure_time) VALUES ($1, $2, $3, $4, $5) ON CONFLICT DO NOTHING`,
		stopTime.TripID, stopTime.StopID, stopTime.StopSequence, stopTime.Arrival, stopTime.Departure,
	)
	if err != nil {
		return fmt.Errorf("inserting stop_time: %w", err)
	}
	return nil
}

func (w *PostgresWriter) Close() error {
	if err := w.tx.Commit(); err != nil {
		w.db.Close()
		return fmt.Errorf("committing: %w", err)
	}
	if err := w.db.Close(); err != nil {
		return fmt.Errorf("closing database: %w", err)
	}
	return nil
}
