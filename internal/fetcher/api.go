package fetcher

import "engsoc.net/eweek/internal/types"

// RegistrationPayload is the body POSTed to /register, matching what the
// mobile client sends: the event, a team name, and the member rows.
type RegistrationPayload struct {
	EventId  string              `json:"eventId"`
	TeamName string              `json:"teamName"`
	Members  []types.Participant `json:"members"`
}

// RegisterAck is the backend's acknowledgement. Only the message is used.
type RegisterAck struct {
	Message string `json:"message"`
}

type eventByIdRequest struct {
	EventId string `json:"eventId"`
}
