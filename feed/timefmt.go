package feed

import (
	"fmt"
	"math"
	"strconv"

	"github.com/pkg/errors"

	"tidbyt.dev/tflgtfs/model"
)

// FormatTime renders a journey's scheduled departure plus an offset
// in minutes as "HH:MM". Fractional offsets are truncated, not
// rounded. The hour is never reduced modulo 24: a departure past
// midnight belongs to the originating service day, so 23:50 plus 15
// minutes formats as "24:05", per the GTFS convention for times.
//
// Unparsable or negative hour/minute fields are an invariant
// violation in the upstream data and yield an error.
func FormatTime(journey *model.KnownJourney, offsetMinutes float64) (string, error) {
	hour, err := strconv.Atoi(journey.Hour)
	if err != nil {
		return "", errors.Wrapf(err, "parsing hour '%s'", journey.Hour)
	}
	if hour < 0 {
		return "", errors.Errorf("negative hour %d", hour)
	}

	minute, err := strconv.Atoi(journey.Minute)
	if err != nil {
		return "", errors.Wrapf(err, "parsing minute '%s'", journey.Minute)
	}
	if minute < 0 {
		return "", errors.Errorf("negative minute %d", minute)
	}

	total := minute + int(math.Floor(offsetMinutes))

	return fmt.Sprintf("%02d:%02d", hour+total/60, total%60), nil
}
