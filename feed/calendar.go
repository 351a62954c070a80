package feed

import (
	"github.com/pkg/errors"

	"tidbyt.dev/tflgtfs/storage"
)

// TfL does not publish service calendars; schedules only carry a
// pattern name like "Monday to Friday". The day-of-week flags for
// every pattern name seen in the wild are maintained by hand below,
// all with one fixed validity range.
const (
	calendarStartDate = "20151031"
	calendarEndDate   = "20161031"
)

var servicePatterns = []storage.Calendar{
	{ServiceID: "School Monday", Monday: 1},
	{ServiceID: "Sunday Night/Monday Morning", Monday: 1, Sunday: 1},
	{ServiceID: "School Monday, Tuesday, Thursday & Friday", Monday: 1, Tuesday: 1, Thursday: 1, Friday: 1},
	{ServiceID: "Tuesday", Tuesday: 1},
	{ServiceID: "Monday - Thursday", Monday: 1, Tuesday: 1, Wednesday: 1, Thursday: 1},
	{ServiceID: "Saturday", Sunday: 1},
	{ServiceID: "Saturday and Sunday", Saturday: 1, Sunday: 1},
	{ServiceID: "Sunday", Sunday: 1},
	{ServiceID: "School Tuesday", Tuesday: 1},
	{ServiceID: "Saturday Night/Sunday Morning", Saturday: 1, Sunday: 1},
	{ServiceID: "Mo-Fr Night/Tu-Sat Morning", Monday: 1, Tuesday: 1, Wednesday: 1, Thursday: 1, Friday: 1, Saturday: 1},
	{ServiceID: "Monday to Thursday", Monday: 1, Tuesday: 1, Wednesday: 1, Thursday: 1},
	{ServiceID: "Mo-Th Nights/Tu-Fr Morning", Monday: 1, Tuesday: 1, Wednesday: 1, Thursday: 1, Friday: 1},
	{ServiceID: "Saturday (also Good Friday)", Saturday: 1},
	{ServiceID: "Mon-Th Schooldays", Monday: 1, Tuesday: 1, Wednesday: 1, Thursday: 1},
	{ServiceID: "Saturdays and Public Holidays", Saturday: 1},
	{ServiceID: "Friday Night/Saturday Morning", Friday: 1, Saturday: 1},
	{ServiceID: "Friday", Friday: 1},
	{ServiceID: "Thursdays", Thursday: 1},
	{ServiceID: "Sunday night/Monday morning - Thursday night/Friday morning", Monday: 1, Tuesday: 1, Wednesday: 1, Thursday: 1, Friday: 1, Sunday: 1},
	{ServiceID: "School Thursday", Thursday: 1},
	{ServiceID: "School Friday", Friday: 1},
	{ServiceID: "Daily", Monday: 1, Tuesday: 1, Wednesday: 1, Thursday: 1, Friday: 1, Saturday: 1, Sunday: 1},
	{ServiceID: "Tuesday, Wednesday & Thursday", Tuesday: 1, Wednesday: 1, Thursday: 1},
	{ServiceID: "Mon-Fri Schooldays", Monday: 1, Tuesday: 1, Wednesday: 1, Thursday: 1, Friday: 1},
	{ServiceID: "Wednesday", Wednesday: 1},
	{ServiceID: "Monday, Tuesday and Thursday", Monday: 1, Tuesday: 1, Thursday: 1},
	{ServiceID: "Wednesdays", Wednesday: 1},
	{ServiceID: "Monday to Friday", Monday: 1, Tuesday: 1, Wednesday: 1, Thursday: 1, Friday: 1},
	{ServiceID: "Monday", Monday: 1},
	{ServiceID: "Sunday and other Public Holidays", Sunday: 1},
	{ServiceID: "School Wednesday", Wednesday: 1},
	{ServiceID: "Monday - Friday", Monday: 1, Tuesday: 1, Wednesday: 1, Thursday: 1, Friday: 1},
}

func GenerateCalendar(w storage.FeedWriter) error {
	for _, pattern := range servicePatterns {
		cal := pattern
		cal.StartDate = calendarStartDate
		cal.EndDate = calendarEndDate
		if err := w.WriteCalendar(&cal); err != nil {
			return errors.Wrapf(err, "writing calendar '%s'", cal.ServiceID)
		}
	}
	return nil
}
