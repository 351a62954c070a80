package storage

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gtfs.db")

	w, err := NewSQLiteWriter(path)
	require.NoError(t, err)

	require.NoError(t, w.WriteAgency(&Agency{
		ID:       "tfl",
		Name:     "Transport For London",
		URL:      "https://tfl.gov.uk",
		Timezone: "Europe/London",
	}))
	require.NoError(t, w.WriteRoute(&Route{ID: "N1", AgencyID: "tfl", ShortName: "N1", Type: "3"}))
	require.NoError(t, w.WriteStop(&Stop{ID: "S1", Name: "Stop One", Lat: 51.5, Lon: -0.25}))
	require.NoError(t, w.WriteCalendar(&Calendar{ServiceID: "Daily", Monday: 1, StartDate: "20151031", EndDate: "20161031"}))
	require.NoError(t, w.WriteTrip(&Trip{RouteID: "N1", ServiceID: "Daily", ID: "t1"}))
	require.NoError(t, w.WriteStopTime(&StopTime{TripID: "t1", StopID: "S1", StopSequence: 1, Arrival: "24:05", Departure: "24:05"}))
	require.NoError(t, w.Close())

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	var count int
	for _, table := range []string{"agency", "routes", "stops", "calendar", "trips", "stop_times"} {
		require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&count))
		assert.Equal(t, 1, count, table)
	}

	var arrival string
	require.NoError(t, db.QueryRow(
		"SELECT arrival_time FROM stop_times WHERE trip_id = ?", "t1",
	).Scan(&arrival))
	assert.Equal(t, "24:05", arrival)
}

// A rerun against an existing database replaces the previous feed
// instead of colliding with it.
func TestSQLiteWriterRerun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gtfs.db")

	for _, name := range []string{"First Route", "Second Route"} {
		w, err := NewSQLiteWriter(path)
		require.NoError(t, err)
		require.NoError(t, w.WriteAgency(&Agency{
			ID:       "tfl",
			Name:     "Transport For London",
			URL:      "https://tfl.gov.uk",
			Timezone: "Europe/London",
		}))
		require.NoError(t, w.WriteRoute(&Route{ID: "N1", AgencyID: "tfl", ShortName: "N1", LongName: name, Type: "3"}))
		require.NoError(t, w.Close())
	}

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM routes").Scan(&count))
	assert.Equal(t, 1, count)

	var longName string
	require.NoError(t, db.QueryRow("SELECT route_long_name FROM routes").Scan(&longName))
	assert.Equal(t, "Second Route", longName)
}

// The API can return the same line twice, which makes the generators
// emit the same route (and trips, stop_times) twice. The writer keeps
// the first row rather than failing the run.
func TestSQLiteWriterDuplicateRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gtfs.db")

	w, err := NewSQLiteWriter(path)
	require.NoError(t, err)

	require.NoError(t, w.WriteRoute(&Route{ID: "N1", AgencyID: "tfl", ShortName: "N1", Type: "3"}))
	require.NoError(t, w.WriteRoute(&Route{ID: "N1", AgencyID: "tfl", ShortName: "N1", Type: "3"}))
	require.NoError(t, w.WriteTrip(&Trip{RouteID: "N1", ServiceID: "Daily", ID: "t1"}))
	require.NoError(t, w.WriteTrip(&Trip{RouteID: "N1", ServiceID: "Daily", ID: "t1"}))
	require.NoError(t, w.WriteStopTime(&StopTime{TripID: "t1", StopID: "S1", StopSequence: 1, Arrival: "10:00", Departure: "10:00"}))
	require.NoError(t, w.WriteStopTime(&StopTime{TripID: "t1", StopID: "S1", StopSequence: 1, Arrival: "10:00", Departure: "10:00"}))
	require.NoError(t, w.Close())

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	var count int
	for _, table := range []string{"routes", "trips", "stop_times"} {
		require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&count))
		assert.Equal(t, 1, count, table)
	}
}
