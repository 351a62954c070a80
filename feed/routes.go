package feed

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"tidbyt.dev/tflgtfs/model"
	"tidbyt.dev/tflgtfs/storage"
)

// routeType maps a TfL mode onto a GTFS route_type code. Unknown
// modes map to the empty string; the route row is still written.
func routeType(mode string) string {
	switch mode {
	case "dlr", "tram":
		return "0"
	case "tube", "overground":
		return "1"
	case "national-rail", "tflrail":
		return "2"
	case "bus":
		return "3"
	case "river-tour", "river-bus":
		return "4"
	case "cable-car":
		return "5"
	}
	return ""
}

// GenerateRoutes writes one route row per line. Line ids are
// authority-assigned, so no dedup is applied here; duplicate lines in
// the snapshot are surfaced by Summarize instead.
func GenerateRoutes(logger *zap.Logger, w storage.FeedWriter, lines []model.Line) error {
	for i := range lines {
		line := &lines[i]

		rt := routeType(line.Mode)
		if rt == "" {
			logger.Warn("no route_type mapping for mode",
				zap.String("line", line.ID),
				zap.String("mode", line.Mode))
		}

		err := w.WriteRoute(&storage.Route{
			ID:        line.ID,
			AgencyID:  agencyID,
			ShortName: line.Name,
			LongName:  "",
			Type:      rt,
		})
		if err != nil {
			return errors.Wrapf(err, "writing route '%s'", line.ID)
		}
	}
	return nil
}
