package feed

import (
	"sort"

	"go.uber.org/zap"

	"tidbyt.dev/tflgtfs/model"
)

// Summary describes a snapshot before generation: how much of the
// network is present, which upstream records are duplicated, and the
// schedule names in play. Duplicates are expected in TfL data and
// are what the generators' dedup sets exist for; the summary makes
// them visible.
type Summary struct {
	Lines                  int
	DuplicateLines         int
	RouteSections          int
	DuplicateRouteSections int
	SectionsWithTimetable  int
	ScheduleNames          []string
}

func Summarize(lines []model.Line) Summary {
	lineIDs := seenSet{}
	sectionIDs := seenSet{}
	scheduleNames := seenSet{}

	var s Summary
	for i := range lines {
		line := &lines[i]
		s.Lines++
		if lineIDs.seen(line.ID) {
			s.DuplicateLines++
		}
		lineIDs.mark(line.ID)

		for j := range line.RouteSections {
			section := &line.RouteSections[j]
			s.RouteSections++

			id := RouteSectionID(line, section)
			if sectionIDs.seen(id) {
				s.DuplicateRouteSections++
			}
			sectionIDs.mark(id)

			if section.Timetable == nil {
				continue
			}
			s.SectionsWithTimetable++
			for _, schedule := range section.Timetable.Schedules {
				scheduleNames.mark(schedule.Name)
			}
		}
	}

	for name := range scheduleNames {
		s.ScheduleNames = append(s.ScheduleNames, name)
	}
	sort.Strings(s.ScheduleNames)

	return s
}

func (s Summary) Log(logger *zap.Logger) {
	logger.Info("network snapshot",
		zap.Int("lines", s.Lines),
		zap.Int("duplicateLines", s.DuplicateLines),
		zap.Int("routeSections", s.RouteSections),
		zap.Int("duplicateRouteSections", s.DuplicateRouteSections),
		zap.Int("sectionsWithTimetable", s.SectionsWithTimetable),
		zap.Int("scheduleNames", len(s.ScheduleNames)))
	for _, name := range s.ScheduleNames {
		logger.Debug("schedule name", zap.String("name", name))
	}
}
