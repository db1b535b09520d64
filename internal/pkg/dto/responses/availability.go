package responses

import "meetslot-service/internal/pkg/scheduling"

// InviteeCheck is the booking decision for one invitee. Unknown marks a check
// that could not run, in which case Decision is Available and Error says why.
type InviteeCheck struct {
	Identity string              `json:"identity"`
	Decision scheduling.Decision `json:"decision"`
	Unknown  bool                `json:"unknown,omitempty"`
	Error    string              `json:"error,omitempty"`
}

type Opening struct {
	Date  string `json:"date"`
	Day   string `json:"day"`
	Start string `json:"start"`
	End   string `json:"end"`
}
