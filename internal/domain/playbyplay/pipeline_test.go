package playbyplay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_EndToEnd(t *testing.T) {
	t.Parallel()

	drives := []RawDrive{
		{
			OffenseTeamID: "194",
			Plays: []RawPlayEvent{
				{ID: "0", Sequence: 0, TypeText: "Coin Toss", Period: 1, Clock: "15:00"},
				{ID: "1", Sequence: 1, TypeText: "Kickoff", Period: 1, Clock: "15:00", Start: YardState{TeamID: "130"}, Yards: 40},
				{ID: "2", Sequence: 2, TypeText: "Rush", Period: 1, Clock: "14:30",
					Start: YardState{Down: 1, Distance: 10, YardsToEndzone: intPtr(75)}, End: YardState{Down: 2}, Yards: 5},
				{ID: "2", Sequence: 2, TypeText: "Rush", Period: 1, Clock: "14:30"},
				{ID: "3", Sequence: 3, TypeText: "Passing Touchdown", Period: 1, Clock: "14:00",
					Start: YardState{Down: 2, Distance: 5, YardsToEndzone: intPtr(70)}, Yards: 70,
					ScoringPlay: true, ScoreValue: 6, HomeScore: 7,
					PAT: &PATResult{Text: "Extra Point Good", Value: 1}},
			},
		},
		{
			OffenseTeamID: "130",
			Plays: []RawPlayEvent{
				{ID: "4", Sequence: 4, TypeText: "Kickoff", Period: 1, Clock: "14:00", Start: YardState{TeamID: "194"}, HomeScore: 7},
				{ID: "5", Sequence: 5, TypeText: "Rush", Period: 1, Clock: "13:20",
					Start: YardState{Down: 1, Distance: 10, YardsToEndzone: intPtr(80)}, End: YardState{Down: 2}, Yards: 2, HomeScore: 7},
			},
		},
	}

	result := Run(drives, testTeams)
	require.Len(t, result.Entries, 6)

	downs := make([]DownCode, 0, len(result.Entries))
	scores := make([][2]int, 0, len(result.Entries))
	for _, e := range result.Entries {
		downs = append(downs, e.Down)
		scores = append(scores, [2]int{e.HomeScore, e.AwayScore})
	}
	assert.Equal(t, []DownCode{DownKickoff, DownFirst, DownSecond, DownExtraPoint, DownKickoff, DownFirst}, downs)
	assert.Equal(t, [][2]int{{0, 0}, {0, 0}, {0, 0}, {6, 0}, {7, 0}, {7, 0}}, scores)

	assert.Equal(t, 7, result.FinalHome)
	assert.Equal(t, 0, result.FinalAway)
	assert.Empty(t, result.Flags)
	assert.Empty(t, result.Corrections)

	assert.Equal(t, "Ohio State", result.Entries[0].Possession)
	assert.Equal(t, "Michigan", result.Entries[4].Possession)
	assert.Equal(t, -25, result.Entries[1].FieldPosition)
	assert.True(t, result.Entries[1].RunClock)
	for i := 1; i < len(result.Entries); i++ {
		assert.GreaterOrEqual(t, result.Entries[i].Sequence, result.Entries[i-1].Sequence)
	}
}

func TestRun_InfersPATAndSynthesizesMissingScore(t *testing.T) {
	t.Parallel()

	drives := []RawDrive{
		{
			OffenseTeamID: "130",
			Plays: []RawPlayEvent{
				{ID: "10", Sequence: 10, TypeText: "Rushing Touchdown", Period: 1, Clock: "3:00",
					Start: YardState{Down: 1, Distance: 3, YardsToEndzone: intPtr(3)}, Yards: 3,
					ScoringPlay: true, ScoreValue: 6, AwayScore: 6},
				{ID: "11", Sequence: 11, TypeText: "Kickoff", Period: 1, Clock: "3:00", Start: YardState{TeamID: "130"}, AwayScore: 7},
				{ID: "12", Sequence: 12, TypeText: "Rush", Period: 1, Clock: "2:30",
					Start: YardState{Down: 1, Distance: 10, YardsToEndzone: intPtr(60)}, End: YardState{Down: 2}, Yards: 4, AwayScore: 7},
			},
		},
		{
			OffenseTeamID: "194",
			Plays: []RawPlayEvent{
				{ID: "20", Sequence: 20, TypeText: "Kickoff", Period: 2, Clock: "15:00", Start: YardState{TeamID: "194"}, HomeScore: 7, AwayScore: 7},
				{ID: "21", Sequence: 21, TypeText: "Rush", Period: 2, Clock: "14:20",
					Start: YardState{Down: 1, Distance: 10, YardsToEndzone: intPtr(70)}, End: YardState{Down: 2}, Yards: 1, HomeScore: 7, AwayScore: 7},
			},
		},
	}

	result := Run(drives, testTeams)

	var synthetic []MappedEntry
	for i, e := range result.Entries {
		if e.Synthetic {
			synthetic = append(synthetic, e)
			require.Contains(t, result.Flags, i)
			assert.Equal(t, e.QCIssue, result.Flags[i])
		}
	}
	require.Len(t, synthetic, 2)
	assert.Equal(t, "1", synthetic[0].Quarter)
	assert.Equal(t, "Ohio State", synthetic[0].Possession)
	assert.Contains(t, synthetic[0].QCIssue, "MANUAL ENTRY REQUIRED")

	require.Equal(t, DownExtraPoint, result.Entries[1].Down)
	assert.Equal(t, "Michigan", result.Entries[1].Possession)
	assert.Equal(t, 7, result.FinalHome)
	assert.Equal(t, 7, result.FinalAway)
}

func TestRun_BlankClockDoesNotZeroRestOfQuarter(t *testing.T) {
	t.Parallel()

	drives := []RawDrive{
		{
			OffenseTeamID: "194",
			Plays: []RawPlayEvent{
				{ID: "30", Sequence: 30, TypeText: "Rush", Period: 2, Clock: "12:00",
					Start: YardState{Down: 1, Distance: 10, YardsToEndzone: intPtr(75)}, End: YardState{Down: 2}, Yards: 3},
				{ID: "31", Sequence: 31, TypeText: "Rush", Period: 2, Clock: "11:30",
					Start: YardState{Down: 2, Distance: 7, YardsToEndzone: intPtr(72)}, End: YardState{Down: 3}, Yards: 2},
				{ID: "32", Sequence: 32, TypeText: "Penalty", Period: 2, Clock: "",
					Start: YardState{Down: 3, Distance: 5, YardsToEndzone: intPtr(70)}, End: YardState{Down: 3}, Yards: -5},
				{ID: "33", Sequence: 33, TypeText: "Rush", Period: 2, Clock: "11:00",
					Start: YardState{Down: 3, Distance: 10, YardsToEndzone: intPtr(75)}, End: YardState{Down: 1}, Yards: 12},
				{ID: "34", Sequence: 34, TypeText: "Rush", Period: 2, Clock: "10:30",
					Start: YardState{Down: 1, Distance: 10, YardsToEndzone: intPtr(63)}, End: YardState{Down: 2}, Yards: 4},
				{ID: "35", Sequence: 35, TypeText: "Rush", Period: 2, Clock: "10:00",
					Start: YardState{Down: 2, Distance: 6, YardsToEndzone: intPtr(59)}, End: YardState{Down: 3}, Yards: 1},
			},
		},
	}

	result := Run(drives, testTeams)
	require.Len(t, result.Entries, 6)

	clocks := make([]string, 0, len(result.Entries))
	for _, e := range result.Entries {
		clocks = append(clocks, e.Clock)
		assert.Empty(t, e.QCIssue)
	}
	assert.Equal(t, []string{"12:07", "11:37", "11:30", "11:07", "10:37", "10:07"}, clocks)
	assert.Empty(t, result.Flags)
}
