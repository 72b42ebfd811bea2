package conflict

import (
	"sort"
	"time"

	"github.com/cmlabs-hris/presence-backend-go/internal/domain/conflict"
	"github.com/cmlabs-hris/presence-backend-go/internal/pkg/utils"
)

var allKinds = []conflict.Kind{
	conflict.KindBusinessTrip,
	conflict.KindVacation,
	conflict.KindPermission,
	conflict.KindSickLeave,
	conflict.KindAttendance,
}

type indexBuilder struct {
	dates   map[time.Time]struct{}
	details []conflict.Detail
	byKind  map[conflict.Kind]int
}

func newIndexBuilder() *indexBuilder {
	b := &indexBuilder{
		dates:   make(map[time.Time]struct{}),
		details: []conflict.Detail{},
		byKind:  make(map[conflict.Kind]int, len(allKinds)),
	}
	for _, k := range allKinds {
		b.byKind[k] = 0
	}
	return b
}

func (b *indexBuilder) add(date time.Time, kind conflict.Kind, description string, severity conflict.Severity) {
	day := utils.TruncateDay(date)
	b.dates[day] = struct{}{}
	b.details = append(b.details, conflict.Detail{
		Date:        day,
		Kind:        kind,
		Description: description,
		Severity:    severity,
	})
	b.byKind[kind]++
}

func (b *indexBuilder) addRange(start, end time.Time, kind conflict.Kind, description string, severity conflict.Severity) {
	utils.EachDay(start, end, func(day time.Time) {
		b.add(day, kind, description, severity)
	})
}

func (b *indexBuilder) build() conflict.Index {
	dates := make([]time.Time, 0, len(b.dates))
	for d := range b.dates {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	return conflict.Index{
		ConflictDates: dates,
		Details:       b.details,
		Summary: conflict.Summary{
			TotalConflicts: len(dates),
			ByKind:         b.byKind,
		},
	}
}

// BuildIndex computes the dates already occupied for the employee of snap when
// preparing an entry of kind op. The result is advisory; write acceptance is
// decided by the Validate* functions.
//
// Details follow rule order (trips, vacations, permissions, sick leaves,
// attendance) and storage order within each rule, so equal snapshots give equal
// indexes.
func BuildIndex(snap Snapshot, op conflict.Operation) conflict.Index {
	b := newIndexBuilder()

	for _, t := range snap.Trips {
		if t.IsApproved() {
			b.addRange(t.StartDate, t.EndDate, conflict.KindBusinessTrip, describeTrip(t), conflict.SeverityCritical)
		}
	}

	for _, l := range snap.Leaves {
		if l.IsApproved() && l.IsVacation() {
			start, end := l.Span()
			b.addRange(start, end, conflict.KindVacation, describeVacation(l), conflict.SeverityCritical)
		}
	}

	if op == conflict.OperationPermission || op == conflict.OperationSickLeave || op == conflict.OperationAttendance {
		for _, l := range snap.Leaves {
			if l.IsApproved() && l.IsPermission() && l.Day != nil {
				b.add(*l.Day, conflict.KindPermission, describePermission(l), conflict.SeverityCritical)
			}
		}
	}

	for _, s := range snap.SickLeaves {
		b.addRange(s.StartDate, s.EndDate, conflict.KindSickLeave, describeSickLeave(s), conflict.SeverityCritical)
	}

	if op == conflict.OperationAttendance || op == conflict.OperationSickLeave {
		// A worked day cannot be turned into sickness afterwards, while a second
		// attendance is only a duplicate warning.
		severity := conflict.SeverityWarning
		if op == conflict.OperationSickLeave {
			severity = conflict.SeverityCritical
		}
		for _, a := range snap.Attendance {
			if countsAsWorked(a) {
				b.add(a.Date, conflict.KindAttendance, describeAttendance(a), severity)
			}
		}
	}

	return b.build()
}
