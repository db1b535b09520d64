package scheduling

import "time"

// Category is the display bucket of a meeting for one viewer. It is derived on
// every read and never stored.
type Category string

const (
	CategoryUpcoming  Category = "upcoming"
	CategoryPending   Category = "pending"
	CategoryCancelled Category = "cancelled"
	CategoryPast      Category = "past"
)

// Categories lists every bucket in display order.
var Categories = []Category{CategoryUpcoming, CategoryPending, CategoryCancelled, CategoryPast}

// Classify buckets m for viewer at now. Precedence is past, then cancelled
// (record cancelled or rejected, or the viewer rejected), then pending, then
// upcoming. A meeting whose timing cannot be read is never past.
func Classify(m MeetingRecord, viewer string, now time.Time) Category {
	if end, ok := m.EndsAt(now.Location()); ok && end.Before(now) {
		return CategoryPast
	}
	if m.Status.Closed() {
		return CategoryCancelled
	}

	idx, isParticipant := m.Participant(viewer)
	if isParticipant && m.Participants[idx].Status == StatusRejected {
		return CategoryCancelled
	}
	if m.IsHost(viewer) || m.Status == StatusAccepted {
		return CategoryUpcoming
	}
	if isParticipant && m.Participants[idx].Status == StatusAccepted {
		return CategoryUpcoming
	}
	if m.HasPendingParticipants() {
		return CategoryPending
	}
	return CategoryUpcoming
}

// Bucket classifies every meeting and groups them by category. Every category is
// present in the result, possibly empty.
func Bucket(meetings []MeetingRecord, viewer string, now time.Time) map[Category][]MeetingRecord {
	out := make(map[Category][]MeetingRecord, len(Categories))
	for _, c := range Categories {
		out[c] = []MeetingRecord{}
	}
	for _, m := range meetings {
		c := Classify(m, viewer, now)
		out[c] = append(out[c], m)
	}
	return out
}
