package registration

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"engsoc.net/eweek/internal/types"
)

var (
	phonePattern = regexp.MustCompile(`^\d{10}$`)
	emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)
)

// Result is the field-keyed validation outcome. The form may be submitted
// only when Errors is empty; participant errors are keyed
// participant_<index>_<field> so each input row can show its own message.
type Result struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors"`
}

// Validate runs every check over the whole form at once. stats is the
// already-registered count for the chosen batch, checked against the event's
// per-batch quota.
func Validate(form types.RegistrationForm, stats types.BatchStats) Result {
	errs := map[string]string{}

	if len(form.Batch) == 0 {
		errs["batch"] = "Please select your batch"
	} else if form.IsTeamEvent {
		if stats.Teams >= form.MaxTeamsPerBatch {
			errs["batch"] = fmt.Sprintf("Maximum %d teams already registered for %s", form.MaxTeamsPerBatch, form.Batch)
		}
	} else {
		if stats.Players >= form.MaxPlayersPerBatch {
			errs["batch"] = fmt.Sprintf("Maximum %d players already registered for %s", form.MaxPlayersPerBatch, form.Batch)
		}
	}

	if form.IsTeamEvent && len(strings.TrimSpace(form.TeamName)) == 0 {
		errs["teamName"] = "Team name is required"
	}

	if len(form.Participants) == 0 {
		errs["participants"] = "At least one participant is required"
	} else if form.TeamSize > 0 && len(form.Participants) > form.TeamSize {
		errs["participants"] = fmt.Sprintf("A maximum of %d participants is allowed", form.TeamSize)
	} else if captains(form.Participants) != 1 {
		errs["participants"] = "Exactly one team captain is required"
	}

	for i, p := range form.Participants {
		validateParticipant(i, p, errs)
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}

func validateParticipant(index int, p types.Participant, errs map[string]string) {
	if len(strings.TrimSpace(p.Name)) == 0 {
		errs[key(index, "name")] = "Name is required"
	}

	if len(strings.TrimSpace(p.RegistrationNumber)) == 0 {
		errs[key(index, "registrationNumber")] = "Registration number is required"
	}

	contact := stripSpaces(p.ContactNumber)
	if len(strings.TrimSpace(p.ContactNumber)) == 0 {
		errs[key(index, "contactNumber")] = "Contact number is required"
	} else if !phonePattern.MatchString(contact) {
		errs[key(index, "contactNumber")] = "Please enter a valid 10-digit contact number"
	}

	if len(strings.TrimSpace(p.Email)) == 0 {
		errs[key(index, "email")] = "Email is required"
	} else if !emailPattern.MatchString(p.Email) {
		errs[key(index, "email")] = "Please enter a valid email address"
	}
}

func captains(participants []types.Participant) int {
	n := 0
	for _, p := range participants {
		if p.IsCaptain {
			n++
		}
	}
	return n
}

func key(index int, field string) string {
	return fmt.Sprintf("participant_%d_%s", index, field)
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
