package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tidbyt.dev/tflgtfs/model"
	"tidbyt.dev/tflgtfs/storage"
	"tidbyt.dev/tflgtfs/testutil"
)

func TestGenerateTrips(t *testing.T) {
	tt := testutil.Timetable(
		[]model.StationInterval{testutil.StationInterval(0)},
		testutil.Schedule("Monday to Friday",
			testutil.Journey(0, "06", "30"),
			testutil.Journey(0, "07", "00"),
		),
		testutil.Schedule("Saturday",
			testutil.Journey(0, "08", "15"),
		),
	)

	w := storage.NewMemoryWriter()
	lines := []model.Line{testutil.Line("victoria", "Victoria", "tube", testutil.Section("A", "B", tt))}

	require.NoError(t, GenerateTrips(w, lines))

	require.Len(t, w.Trips, 3)
	assert.Equal(t, &storage.Trip{
		RouteID:   "victoria",
		ServiceID: "Monday to Friday",
		ID:        "victoria A to B scheduled Monday to Friday departs 06:30",
	}, w.Trips[0])
	assert.Equal(t, "victoria A to B scheduled Monday to Friday departs 07:00", w.Trips[1].ID)
	assert.Equal(t, &storage.Trip{
		RouteID:   "victoria",
		ServiceID: "Saturday",
		ID:        "victoria A to B scheduled Saturday departs 08:15",
	}, w.Trips[2])
}

func TestGenerateTripsDuplicateSectionSuppressed(t *testing.T) {
	first := testutil.Timetable(
		[]model.StationInterval{testutil.StationInterval(0)},
		testutil.Schedule("Daily", testutil.Journey(0, "06", "00")),
	)
	// Same derived section id, different timetable. Only the first
	// section encountered is processed.
	second := testutil.Timetable(
		[]model.StationInterval{testutil.StationInterval(0)},
		testutil.Schedule("Daily", testutil.Journey(0, "23", "00")),
	)

	w := storage.NewMemoryWriter()
	lines := []model.Line{testutil.Line("victoria", "Victoria", "tube",
		testutil.Section("A", "B", first),
		testutil.Section("A", "B", second),
	)}

	require.NoError(t, GenerateTrips(w, lines))

	require.Len(t, w.Trips, 1)
	assert.Equal(t, "victoria A to B scheduled Daily departs 06:00", w.Trips[0].ID)
}

func TestGenerateTripsDuplicateJourneySuppressed(t *testing.T) {
	tt := testutil.Timetable(
		[]model.StationInterval{testutil.StationInterval(0)},
		testutil.Schedule("Daily",
			testutil.Journey(0, "06", "00"),
			testutil.Journey(0, "06", "00"),
		),
	)

	w := storage.NewMemoryWriter()
	lines := []model.Line{testutil.Line("victoria", "Victoria", "tube", testutil.Section("A", "B", tt))}

	require.NoError(t, GenerateTrips(w, lines))

	assert.Len(t, w.Trips, 1)
}

func TestGenerateTripsNoTimetable(t *testing.T) {
	w := storage.NewMemoryWriter()
	lines := []model.Line{testutil.Line("victoria", "Victoria", "tube", testutil.Section("A", "B", nil))}

	require.NoError(t, GenerateTrips(w, lines))

	assert.Empty(t, w.Trips)
}

func TestGenerateTripsSectionDedupScopedPerLine(t *testing.T) {
	tt := func(hour string) *model.TimeTable {
		return testutil.Timetable(
			[]model.StationInterval{testutil.StationInterval(0)},
			testutil.Schedule("Daily", testutil.Journey(0, hour, "00")),
		)
	}

	// The same origin/destination pair under two different lines
	// derives two different section ids; each line's traversal has
	// its own dedup set.
	w := storage.NewMemoryWriter()
	lines := []model.Line{
		testutil.Line("victoria", "Victoria", "tube", testutil.Section("A", "B", tt("06"))),
		testutil.Line("bakerloo", "Bakerloo", "tube", testutil.Section("A", "B", tt("07"))),
	}

	require.NoError(t, GenerateTrips(w, lines))

	require.Len(t, w.Trips, 2)
	assert.Equal(t, "victoria A to B scheduled Daily departs 06:00", w.Trips[0].ID)
	assert.Equal(t, "bakerloo A to B scheduled Daily departs 07:00", w.Trips[1].ID)
}
