package types

type EventStatus string

const (
	StatusUpcoming  EventStatus = "upcoming"
	StatusLive      EventStatus = "live"
	StatusConcluded EventStatus = "concluded"
)

// Breakdown is the days/hours/minutes/seconds left until a countdown target.
type Breakdown struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

type EventRecord struct {
	Id               string `json:"id"`
	Title            string `json:"title"`
	Date             string `json:"date"` // as sent by the server, RFC3339 or yyyy-mm-dd
	Time             string `json:"time"` // display string, HH:MM
	Location         string `json:"location"`
	Type             string `json:"type"`
	Status           string `json:"status"` // server-assigned: upcoming/live/finished
	RegistrationOpen bool   `json:"registrationOpen"`

	Winners        string `json:"winners,omitempty"`
	FirstRunnerUp  string `json:"firstRunnerUp,omitempty"`
	SecondRunnerUp string `json:"secondRunnerUp,omitempty"`
	ThirdRunnerUp  string `json:"thirdRunnerUp,omitempty"`

	MaxTeamsPerBatch   int `json:"maxTeamsPerBatch,omitempty"`
	MaxPlayersPerBatch int `json:"maxPlayersPerBatch,omitempty"`
	PlayersPerTeam     int `json:"playersPerTeam,omitempty"`
}

type EventBuckets struct {
	Upcoming []EventRecord `json:"upcoming"`
	Live     []EventRecord `json:"live"`
	Finished []EventRecord `json:"finished"`
}

type LeaderboardRow struct {
	Batch    string  `json:"batch"`
	Points   float64 `json:"points"`
	Position int     `json:"position"` // 1-based rank
	Events   int     `json:"events"`
	Wins     int     `json:"wins"`
}

type ScheduleEvent struct {
	Time     string `json:"time"`
	Title    string `json:"title"`
	Location string `json:"location"`
	Type     string `json:"type"`
}

type ScheduleDay struct {
	Date   string          `json:"date"` // yyyy-mm-dd
	Day    string          `json:"day"`  // short weekday label, e.g. SAT
	Events []ScheduleEvent `json:"events"`
}

type BatchScore struct {
	Batch string  `json:"batch"`
	Score float64 `json:"score"`
}

type Scorecard struct {
	Id     string       `json:"id"`
	Name   string       `json:"name"`
	Date   string       `json:"date"`
	Winner string       `json:"winner"`
	Scores []BatchScore `json:"scores"`
}

type Participant struct {
	Name               string `json:"name"`
	RegistrationNumber string `json:"registrationNumber"`
	ContactNumber      string `json:"contactNumber"`
	Email              string `json:"email"`
	IsCaptain          bool   `json:"isCaptain"`
}

type RegistrationForm struct {
	EventId      string        `json:"eventId"`
	Batch        string        `json:"batch"`
	TeamName     string        `json:"teamName"`
	TeamSize     int           `json:"teamSize"`
	IsTeamEvent  bool          `json:"isTeamEvent"`
	Participants []Participant `json:"participants"`

	MaxTeamsPerBatch   int `json:"maxTeamsPerBatch"`
	MaxPlayersPerBatch int `json:"maxPlayersPerBatch"`
}

// BatchStats is the already-registered head count for one batch.
type BatchStats struct {
	Teams   int `json:"teams"`
	Players int `json:"players"`
}
