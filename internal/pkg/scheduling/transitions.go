package scheduling

// Accept records viewer's acceptance. Once nobody is pending the record settles
// to accepted, or to rejected if every invitee declined.
func Accept(m MeetingRecord, viewer string) (MeetingRecord, error) {
	return respond(m, viewer, StatusAccepted)
}

// Reject records viewer's refusal. The meeting shows as cancelled for that viewer
// right away; the record itself only becomes rejected when every invitee declined.
func Reject(m MeetingRecord, viewer string) (MeetingRecord, error) {
	return respond(m, viewer, StatusRejected)
}

// Cancel closes the meeting for everyone. Only the host may cancel.
func Cancel(m MeetingRecord, viewer string) (MeetingRecord, error) {
	if !m.IsHost(viewer) {
		return m, ErrNotHost
	}
	if m.Status.Closed() {
		return m, ErrMeetingClosed
	}
	out := m.Clone()
	out.Status = StatusCancelled
	return out, nil
}

func respond(m MeetingRecord, viewer string, status MeetingStatus) (MeetingRecord, error) {
	if m.Status.Closed() {
		return m, ErrMeetingClosed
	}
	idx, ok := m.Participant(viewer)
	if !ok {
		return m, ErrNotParticipant
	}
	if m.Participants[idx].Status != StatusPending {
		return m, ErrAlreadyResponded
	}

	out := m.Clone()
	out.Participants[idx].Status = status
	out.Status = settle(out)
	return out, nil
}

func settle(m MeetingRecord) MeetingStatus {
	if len(m.Participants) == 0 || m.HasPendingParticipants() {
		return m.Status
	}
	for _, p := range m.Participants {
		if p.Status == StatusAccepted {
			return StatusAccepted
		}
	}
	return StatusRejected
}
