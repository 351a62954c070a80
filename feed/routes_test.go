package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tidbyt.dev/tflgtfs/model"
	"tidbyt.dev/tflgtfs/storage"
)

func TestGenerateRoutes(t *testing.T) {
	for _, tc := range []struct {
		mode     string
		expected string
	}{
		{"dlr", "0"},
		{"tram", "0"},
		{"tube", "1"},
		{"overground", "1"},
		{"national-rail", "2"},
		{"tflrail", "2"},
		{"bus", "3"},
		{"river-bus", "4"},
		{"river-tour", "4"},
		{"cable-car", "5"},

		// Unmapped modes still produce a row, with an empty type.
		{"teleporter", ""},
	} {
		t.Run(tc.mode, func(t *testing.T) {
			w := storage.NewMemoryWriter()
			lines := []model.Line{{ID: "N1", Name: "Line N1", Mode: tc.mode}}

			require.NoError(t, GenerateRoutes(zap.NewNop(), w, lines))

			require.Len(t, w.Routes, 1)
			assert.Equal(t, &storage.Route{
				ID:        "N1",
				AgencyID:  "tfl",
				ShortName: "Line N1",
				LongName:  "",
				Type:      tc.expected,
			}, w.Routes[0])
		})
	}
}

func TestGenerateRoutesOnePerLine(t *testing.T) {
	w := storage.NewMemoryWriter()
	lines := []model.Line{
		{ID: "victoria", Name: "Victoria", Mode: "tube"},
		{ID: "N1", Name: "N1", Mode: "bus"},
	}

	require.NoError(t, GenerateRoutes(zap.NewNop(), w, lines))

	require.Len(t, w.Routes, 2)
	assert.Equal(t, "victoria", w.Routes[0].ID)
	assert.Equal(t, "N1", w.Routes[1].ID)
}
