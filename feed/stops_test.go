package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tidbyt.dev/tflgtfs/model"
	"tidbyt.dev/tflgtfs/storage"
)

func TestGenerateStopsChildrenUseParentCoordinates(t *testing.T) {
	w := storage.NewMemoryWriter()
	lines := []model.Line{
		{
			ID: "victoria",
			Stops: []model.Stop{
				{
					ID:   "station",
					Name: "Brixton",
					Lat:  51.46,
					Lon:  -0.11,
					Children: []model.Stop{
						// Platform-level coordinates in the source
						// are unusable and must be overridden.
						{ID: "platform-1", Name: "Brixton P1", Lat: 99, Lon: 99},
						{ID: "platform-2", Name: "Brixton P2"},
					},
				},
			},
		},
	}

	require.NoError(t, GenerateStops(w, lines))

	require.Len(t, w.Stops, 3)
	assert.Equal(t, &storage.Stop{ID: "station", Name: "Brixton", Lat: 51.46, Lon: -0.11}, w.Stops[0])
	assert.Equal(t, &storage.Stop{ID: "platform-1", Name: "Brixton P1", Lat: 51.46, Lon: -0.11}, w.Stops[1])
	assert.Equal(t, &storage.Stop{ID: "platform-2", Name: "Brixton P2", Lat: 51.46, Lon: -0.11}, w.Stops[2])
}

func TestGenerateStopsDepthLimit(t *testing.T) {
	w := storage.NewMemoryWriter()
	lines := []model.Line{
		{
			ID: "victoria",
			Stops: []model.Stop{
				{
					ID: "station", Name: "Euston", Lat: 51.52, Lon: -0.13,
					Children: []model.Stop{
						{
							ID: "platform", Name: "Euston P1",
							Children: []model.Stop{
								{ID: "sub-platform", Name: "Euston P1a"},
							},
						},
					},
				},
			},
		},
	}

	require.NoError(t, GenerateStops(w, lines))

	// Grandchildren are one level too deep and are not visited.
	require.Len(t, w.Stops, 2)
	assert.Equal(t, "station", w.Stops[0].ID)
	assert.Equal(t, "platform", w.Stops[1].ID)
}

func TestGenerateStopsDedupAcrossLines(t *testing.T) {
	shared := model.Stop{ID: "interchange", Name: "Oxford Circus", Lat: 51.51, Lon: -0.14}

	w := storage.NewMemoryWriter()
	lines := []model.Line{
		{ID: "victoria", Stops: []model.Stop{shared, {ID: "v-only", Name: "Vauxhall", Lat: 51.48, Lon: -0.12}}},
		{ID: "bakerloo", Stops: []model.Stop{shared, {ID: "b-only", Name: "Lambeth North", Lat: 51.49, Lon: -0.11}}},
	}

	require.NoError(t, GenerateStops(w, lines))

	require.Len(t, w.Stops, 3)
	assert.Equal(t, "interchange", w.Stops[0].ID)
	assert.Equal(t, "v-only", w.Stops[1].ID)
	assert.Equal(t, "b-only", w.Stops[2].ID)
}

func TestGenerateStopsSeenParentSkipsSubtree(t *testing.T) {
	w := storage.NewMemoryWriter()
	lines := []model.Line{
		{ID: "a", Stops: []model.Stop{{ID: "s", Name: "S", Lat: 1, Lon: 2}}},
		{ID: "b", Stops: []model.Stop{
			{
				ID: "s", Name: "S", Lat: 1, Lon: 2,
				Children: []model.Stop{{ID: "s-child", Name: "S child"}},
			},
		}},
	}

	require.NoError(t, GenerateStops(w, lines))

	// The second occurrence of "s" is suppressed together with the
	// children only it carries.
	require.Len(t, w.Stops, 1)
	assert.Equal(t, "s", w.Stops[0].ID)
}

func TestGenerateStopsMissingStopsIsFatal(t *testing.T) {
	w := storage.NewMemoryWriter()
	lines := []model.Line{{ID: "victoria", Stops: nil}}

	err := GenerateStops(w, lines)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "victoria")
}
