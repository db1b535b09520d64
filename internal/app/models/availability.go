package models

import (
	"fmt"
	"meetslot-service/internal/pkg/scheduling"
)

// Availability is a user's weekly availability as stored in mongo. Times are
// kept in their canonical "HH:MM" form.
type Availability struct {
	UserID  string            `json:"userId" bson:"_id"`
	Days    []AvailabilityDay `json:"days" bson:"days"`
	TimeGap int               `json:"timeGap" bson:"timeGap"`
	TimeModel `bson:",inline"`
}

type AvailabilityDay struct {
	Day         string             `json:"day" bson:"day"`
	IsAvailable bool               `json:"isAvailable" bson:"isAvailable"`
	Slots       []AvailabilitySlot `json:"slots" bson:"slots"`
}

type AvailabilitySlot struct {
	Start string `json:"start" bson:"start"`
	End   string `json:"end" bson:"end"`
}

func NewAvailability(userID string, w scheduling.WeeklyAvailability) *Availability {
	doc := &Availability{UserID: userID, TimeGap: w.TimeGap}
	for _, d := range scheduling.OrderedWeekdays {
		ds := w.Day(d)
		day := AvailabilityDay{
			Day:         scheduling.WeekdayKey(d),
			IsAvailable: ds.IsAvailable,
			Slots:       make([]AvailabilitySlot, 0, len(ds.Intervals)),
		}
		for _, iv := range ds.Intervals {
			day.Slots = append(day.Slots, AvailabilitySlot{Start: iv.Start.String(), End: iv.End.String()})
		}
		doc.Days = append(doc.Days, day)
	}
	return doc
}

// ToWeekly converts the document back into engine form. Days missing from the
// document get their defaults.
func (a *Availability) ToWeekly() (scheduling.WeeklyAvailability, error) {
	w := scheduling.DefaultWeeklyAvailability()
	w.TimeGap = a.TimeGap
	for _, day := range a.Days {
		weekday, err := scheduling.ParseWeekday(day.Day)
		if err != nil {
			return scheduling.WeeklyAvailability{}, err
		}
		ds := scheduling.DaySchedule{IsAvailable: day.IsAvailable}
		for _, slot := range day.Slots {
			iv, err := scheduling.ParseInterval(slot.Start, slot.End)
			if err != nil {
				return scheduling.WeeklyAvailability{}, fmt.Errorf("%s slot %s-%s: %w", day.Day, slot.Start, slot.End, err)
			}
			ds.Intervals = append(ds.Intervals, iv)
		}
		w.Days[weekday] = ds
	}
	return w, nil
}
