package playbyplay

import "testing"

func TestParseDrives_FiltersAdministrativeAndDuplicatePlays(t *testing.T) {
	t.Parallel()

	drives := []RawDrive{
		{
			OffenseTeamID: "10",
			Plays: []RawPlayEvent{
				{ID: "3", Sequence: 30, TypeText: "Rush", Period: 1, Clock: "13:10"},
				{ID: "1", Sequence: 10, TypeText: "Coin Toss", Period: 1, Clock: "15:00"},
				{ID: "2", Sequence: 20, TypeText: "Kickoff", Period: 1, Clock: "15:00", Start: YardState{TeamID: "20"}},
				{ID: "4", Sequence: 40, TypeText: "Timeout", Text: "Official Timeout", Period: 1, Clock: "12:00"},
				{ID: "", Sequence: 45, TypeText: "Rush", Period: 1, Clock: "12:00"},
			},
		},
		{
			OffenseTeamID: "20",
			Plays: []RawPlayEvent{
				{ID: "3", Sequence: 30, TypeText: "Rush", Period: 1, Clock: "13:10"},
				{ID: "5", Sequence: 50, TypeText: "End Period", Period: 1, Clock: "0:00"},
				{ID: "6", Sequence: 60, TypeText: "Pass Reception", Period: 2, Clock: "14:22"},
			},
		},
	}

	plays := ParseDrives(drives)
	if len(plays) != 3 {
		t.Fatalf("expected 3 plays, got %d", len(plays))
	}

	wantIDs := []string{"2", "3", "6"}
	for i, want := range wantIDs {
		if plays[i].ID != want {
			t.Fatalf("play %d: expected id %s, got %s", i, want, plays[i].ID)
		}
	}
	if plays[0].TeamID != "20" {
		t.Fatalf("expected start team to win over drive offense, got %s", plays[0].TeamID)
	}
	if plays[1].TeamID != "10" {
		t.Fatalf("expected drive offense fallback, got %s", plays[1].TeamID)
	}
	if plays[1].ClockSeconds != 13*60+10 {
		t.Fatalf("unexpected clock seconds: %d", plays[1].ClockSeconds)
	}
}

func TestParseClock(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		want  int
		ok    bool
	}{
		{"15:00", 900, true},
		{"0:07", 7, true},
		{"2:30", 150, true},
		{"0:00", 0, true},
		{"45", 45, true},
		{"", 0, false},
		{"bad", 0, false},
		{"1:x", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParseClock(tc.input)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ParseClock(%q): expected (%d, %v), got (%d, %v)", tc.input, tc.want, tc.ok, got, ok)
		}
	}
}

func TestFormatClock(t *testing.T) {
	t.Parallel()

	if got := FormatClock(545); got != "9:05" {
		t.Fatalf("unexpected clock: %s", got)
	}
	if got := FormatClock(-3); got != "0:00" {
		t.Fatalf("negative clock should render 0:00, got %s", got)
	}
}
