package feed

import (
	"github.com/pkg/errors"

	"tidbyt.dev/tflgtfs/storage"
)

// The feed covers a single operator.
const agencyID = "tfl"

func GenerateAgency(w storage.FeedWriter) error {
	err := w.WriteAgency(&storage.Agency{
		ID:       agencyID,
		Name:     "Transport For London",
		URL:      "https://tfl.gov.uk",
		Timezone: "Europe/London",
	})
	if err != nil {
		return errors.Wrap(err, "writing agency")
	}
	return nil
}
