package registration

import (
	"testing"

	"engsoc.net/eweek/internal/types"
)

func wellFormedParticipant() types.Participant {
	return types.Participant{
		Name:               "Kasun Perera",
		RegistrationNumber: "E/21/123",
		ContactNumber:      "0712345678",
		Email:              "kasun@eng.pdn.ac.lk",
		IsCaptain:          true,
	}
}

func teamForm() types.RegistrationForm {
	return types.RegistrationForm{
		EventId:            "e1",
		Batch:              "E21",
		TeamName:           "Alpha",
		TeamSize:           4,
		IsTeamEvent:        true,
		Participants:       []types.Participant{wellFormedParticipant()},
		MaxTeamsPerBatch:   2,
		MaxPlayersPerBatch: 20,
	}
}

func TestValidateAcceptsWellFormedTeam(t *testing.T) {
	result := Validate(teamForm(), types.BatchStats{Teams: 1, Players: 4})
	if !result.Valid {
		t.Fatalf("expected valid form, got errors %v", result.Errors)
	}
}

func TestValidateTeamNameRequired(t *testing.T) {
	form := teamForm()
	form.TeamName = ""

	result := Validate(form, types.BatchStats{})
	if result.Valid {
		t.Fatal("empty team name must not validate")
	}
	if _, ok := result.Errors["teamName"]; !ok {
		t.Errorf("expected an error on teamName, got %v", result.Errors)
	}

	form.TeamName = "Alpha"
	if result := Validate(form, types.BatchStats{}); !result.Valid {
		t.Errorf("naming the team should fix the form, got %v", result.Errors)
	}
}

func TestValidateBatchRequired(t *testing.T) {
	form := teamForm()
	form.Batch = ""

	result := Validate(form, types.BatchStats{})
	if result.Errors["batch"] != "Please select your batch" {
		t.Errorf("expected batch error, got %v", result.Errors)
	}
}

func TestValidateTeamCapacity(t *testing.T) {
	result := Validate(teamForm(), types.BatchStats{Teams: 2})
	if result.Valid {
		t.Fatal("a full batch must not accept more teams")
	}
	if result.Errors["batch"] != "Maximum 2 teams already registered for E21" {
		t.Errorf("capacity message = %q", result.Errors["batch"])
	}
}

func TestValidatePlayerCapacity(t *testing.T) {
	form := teamForm()
	form.IsTeamEvent = false
	form.TeamName = ""
	form.TeamSize = 1

	if result := Validate(form, types.BatchStats{Players: 19}); !result.Valid {
		t.Errorf("individual form below quota should pass, got %v", result.Errors)
	}
	if result := Validate(form, types.BatchStats{Players: 20}); result.Valid {
		t.Error("a full batch must not accept more players")
	}
}

func TestValidateContactNumber(t *testing.T) {
	form := teamForm()

	// whitespace is stripped before the digit check
	form.Participants[0].ContactNumber = "071 234 5678"
	if result := Validate(form, types.BatchStats{}); !result.Valid {
		t.Errorf("spaced number should pass, got %v", result.Errors)
	}

	for _, bad := range []string{"12345", "07123456789", "07-12345678", ""} {
		form.Participants[0].ContactNumber = bad
		result := Validate(form, types.BatchStats{})
		if _, ok := result.Errors["participant_0_contactNumber"]; !ok {
			t.Errorf("%q should fail the contact number check", bad)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	form := teamForm()

	for _, bad := range []string{"", "kasun", "kasun@eng", "@eng.pdn"} {
		form.Participants[0].Email = bad
		result := Validate(form, types.BatchStats{})
		if _, ok := result.Errors["participant_0_email"]; !ok {
			t.Errorf("%q should fail the email check", bad)
		}
	}
}

func TestValidateAllParticipantsChecked(t *testing.T) {
	form := teamForm()
	second := wellFormedParticipant()
	second.IsCaptain = false
	second.Name = ""
	second.RegistrationNumber = " "
	form.Participants = append(form.Participants, second)

	result := Validate(form, types.BatchStats{})
	if result.Valid {
		t.Fatal("second participant is malformed")
	}
	if _, ok := result.Errors["participant_1_name"]; !ok {
		t.Errorf("expected name error on participant 1, got %v", result.Errors)
	}
	if _, ok := result.Errors["participant_1_registrationNumber"]; !ok {
		t.Errorf("expected registration number error on participant 1, got %v", result.Errors)
	}
}

func TestValidateCaptainInvariant(t *testing.T) {
	form := teamForm()
	second := wellFormedParticipant()
	form.Participants = append(form.Participants, second) // two captains now

	if result := Validate(form, types.BatchStats{}); result.Valid {
		t.Error("two captains must not validate")
	}

	form.Participants[0].IsCaptain = false
	form.Participants[1].IsCaptain = false
	if result := Validate(form, types.BatchStats{}); result.Valid {
		t.Error("no captain must not validate")
	}
}

func TestValidateParticipantCount(t *testing.T) {
	form := teamForm()
	form.Participants = nil
	if result := Validate(form, types.BatchStats{}); result.Valid {
		t.Error("a form with no participants must not validate")
	}

	form = teamForm()
	form.TeamSize = 1
	extra := wellFormedParticipant()
	extra.IsCaptain = false
	form.Participants = append(form.Participants, extra)
	if result := Validate(form, types.BatchStats{}); result.Valid {
		t.Error("more participants than the team size must not validate")
	}
}
