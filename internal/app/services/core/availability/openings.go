package availability

import (
	"meetslot-service/internal/pkg/dto/responses"
	"meetslot-service/internal/pkg/scheduling"
	"sort"
	"time"

	"github.com/teambition/rrule-go"
)

var rruleWeekdays = map[time.Weekday]rrule.Weekday{
	time.Monday:    rrule.MO,
	time.Tuesday:   rrule.TU,
	time.Wednesday: rrule.WE,
	time.Thursday:  rrule.TH,
	time.Friday:    rrule.FR,
	time.Saturday:  rrule.SA,
	time.Sunday:    rrule.SU,
}

// OpeningDates returns every date between from and to, both inclusive, that
// falls on an available weekday of w.
func OpeningDates(w scheduling.WeeklyAvailability, from, to time.Time) ([]time.Time, error) {
	var byWeekday []rrule.Weekday
	for _, d := range scheduling.OrderedWeekdays {
		if ds := w.Day(d); ds.IsAvailable && len(ds.Intervals) > 0 {
			byWeekday = append(byWeekday, rruleWeekdays[d])
		}
	}
	if len(byWeekday) == 0 || to.Before(from) {
		return nil, nil
	}

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Byweekday: byWeekday,
		Dtstart:   from,
		Until:     to,
	})
	if err != nil {
		return nil, err
	}
	return rule.All(), nil
}

// ExpandOpenings turns the weekly availability into dated windows between from
// and to. Booked intervals, padded by the time gap on both sides, are cut out
// of the windows.
func ExpandOpenings(w scheduling.WeeklyAvailability, dates []time.Time, booked map[string][]scheduling.Interval) []responses.Opening {
	openings := make([]responses.Opening, 0)
	for _, date := range dates {
		key := scheduling.FormatDate(date)
		ds := w.ForDate(date)
		blocks := padIntervals(booked[key], w.TimeGap)
		for _, slot := range ds.Intervals {
			for _, free := range subtractIntervals(slot, blocks) {
				openings = append(openings, responses.Opening{
					Date:  key,
					Day:   scheduling.WeekdayKey(date.Weekday()),
					Start: free.Start.String(),
					End:   free.End.String(),
				})
			}
		}
	}
	sort.SliceStable(openings, func(i, j int) bool {
		if openings[i].Date != openings[j].Date {
			return openings[i].Date < openings[j].Date
		}
		return openings[i].Start < openings[j].Start
	})
	return openings
}

// padIntervals widens each interval by gap minutes, clamped to the day. A
// booking whose end is before its start runs to the end of the day; empty
// bookings are dropped.
func padIntervals(ivs []scheduling.Interval, gap int) []scheduling.Interval {
	padded := make([]scheduling.Interval, 0, len(ivs))
	for _, iv := range ivs {
		if iv.Empty() {
			continue
		}
		start, end := iv.Start.Minutes()-gap, iv.End.Minutes()+gap
		if iv.End < iv.Start {
			end = scheduling.MinutesPerDay
		}
		if start < 0 {
			start = 0
		}
		if end > scheduling.MinutesPerDay {
			end = scheduling.MinutesPerDay
		}
		padded = append(padded, scheduling.Interval{Start: scheduling.TimeValue(start), End: scheduling.TimeValue(end)})
	}
	scheduling.SortIntervals(padded)
	return padded
}

// subtractIntervals returns the parts of slot not covered by blocks, which must
// be sorted by start.
func subtractIntervals(slot scheduling.Interval, blocks []scheduling.Interval) []scheduling.Interval {
	var free []scheduling.Interval
	cursor := slot.Start
	for _, b := range blocks {
		if b.End <= cursor || b.Start >= slot.End {
			continue
		}
		if b.Start > cursor {
			free = append(free, scheduling.Interval{Start: cursor, End: b.Start})
		}
		if b.End > cursor {
			cursor = b.End
		}
	}
	if cursor < slot.End {
		free = append(free, scheduling.Interval{Start: cursor, End: slot.End})
	}
	return free
}
