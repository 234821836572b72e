package playbyplay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touchdown(id string, home, away int) ParsedPlay {
	return ParsedPlay{ID: id, TypeText: "Passing Touchdown", ScoringPlay: true, ScoreValue: 6, HomeScore: home, AwayScore: away}
}

func kickoff(id string, home, away int) ParsedPlay {
	return ParsedPlay{ID: id, TypeText: "Kickoff", HomeScore: home, AwayScore: away}
}

func TestInferMissingPATs_FromNextPlayDelta(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		nextHome  int
		wantValue int
		wantText  string
	}{
		{name: "kick good", nextHome: 7, wantValue: 1, wantText: "Extra Point Good"},
		{name: "two point", nextHome: 8, wantValue: 2, wantText: "Two-Point Conversion Good"},
		{name: "kick missed", nextHome: 6, wantValue: 0, wantText: "Extra Point No Good"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			plays := []ParsedPlay{touchdown("1", 6, 0), kickoff("2", tc.nextHome, 0)}
			InferMissingPATs(plays)

			require.NotNil(t, plays[0].PAT)
			assert.Equal(t, tc.wantValue, plays[0].PAT.Value)
			assert.Equal(t, tc.wantText, plays[0].PAT.Text)
			assert.True(t, plays[0].PAT.Inferred)
			assert.Equal(t, max(6, tc.nextHome), plays[0].HomeScore)
		})
	}
}

func TestInferMissingPATs_LeavesTouchdownWithPATPlayAhead(t *testing.T) {
	t.Parallel()

	plays := []ParsedPlay{
		touchdown("1", 6, 0),
		{ID: "2", TypeText: "Extra Point Good", HomeScore: 7},
		kickoff("3", 7, 0),
	}
	InferMissingPATs(plays)

	if plays[0].PAT != nil {
		t.Fatalf("expected no inferred PAT when a PAT play follows")
	}
}

func TestInferMissingPATs_IgnoresUnexplainedDelta(t *testing.T) {
	t.Parallel()

	plays := []ParsedPlay{
		kickoff("0", 3, 0),
		touchdown("1", 9, 0),
		kickoff("2", 12, 0),
	}
	InferMissingPATs(plays)

	if plays[1].PAT != nil {
		t.Fatalf("expected no PAT for delta 9, got %+v", plays[1].PAT)
	}
}

func TestAttributeTouchdowns(t *testing.T) {
	t.Parallel()

	t.Run("delta at play", func(t *testing.T) {
		t.Parallel()

		plays := []ParsedPlay{kickoff("0", 7, 0), touchdown("1", 7, 7)}
		plays[1].PAT = &PATResult{Text: "Extra Point Good", Value: 1}
		AttributeTouchdowns(plays)
		assert.Equal(t, SideAway, plays[1].TDScoringSide)
	})

	t.Run("feed lag resolved by look ahead", func(t *testing.T) {
		t.Parallel()

		plays := []ParsedPlay{touchdown("1", 0, 0), kickoff("2", 0, 0), {ID: "3", TypeText: "Rush", HomeScore: 7}}
		plays[0].PAT = &PATResult{Text: "Extra Point Good", Value: 1}
		AttributeTouchdowns(plays)
		assert.Equal(t, SideHome, plays[0].TDScoringSide)
		assert.Equal(t, 7, plays[0].HomeScore)
	})

	t.Run("no jump in window", func(t *testing.T) {
		t.Parallel()

		plays := []ParsedPlay{touchdown("1", 0, 0), kickoff("2", 0, 0), kickoff("3", 0, 0), kickoff("4", 7, 0)}
		plays[0].PAT = &PATResult{Text: "Extra Point Good", Value: 1}
		AttributeTouchdowns(plays)
		assert.Equal(t, SideNone, plays[0].TDScoringSide)
	})
}
