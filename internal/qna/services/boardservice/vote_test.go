package boardservice

import (
	"testing"

	"github.com/Leopold1975/questions_board/internal/qna/domain/models"
	"github.com/stretchr/testify/require"
)

func TestToggleVote(t *testing.T) {
	cases := []struct {
		name      string
		current   models.Vote
		dir       models.Vote
		votes     int
		wantVote  models.Vote
		wantVotes int
	}{
		{"first upvote", models.VoteNone, models.VoteUp, 10, models.VoteUp, 11},
		{"first downvote", models.VoteNone, models.VoteDown, 10, models.VoteDown, 9},
		{"repeat upvote clears", models.VoteUp, models.VoteUp, 11, models.VoteNone, 10},
		{"repeat downvote clears", models.VoteDown, models.VoteDown, 9, models.VoteNone, 10},
		{"switch up to down", models.VoteUp, models.VoteDown, 11, models.VoteDown, 9},
		{"switch down to up", models.VoteDown, models.VoteUp, 9, models.VoteUp, 11},
		{"negative tally first down", models.VoteNone, models.VoteDown, -2, models.VoteDown, -3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			vote, votes := toggleVote(tc.current, tc.dir, tc.votes)
			require.Equal(t, tc.wantVote, vote)
			require.Equal(t, tc.wantVotes, votes)
		})
	}
}

// Whatever the starting tally, voting the same direction twice returns it.
func TestToggleVoteRoundTrip(t *testing.T) {
	for _, baseline := range []int{-5, 0, 3, 1000} {
		for _, dir := range []models.Vote{models.VoteUp, models.VoteDown} {
			vote, votes := toggleVote(models.VoteNone, dir, baseline)
			vote, votes = toggleVote(vote, dir, votes)

			require.Equal(t, models.VoteNone, vote)
			require.Equal(t, baseline, votes)
		}
	}
}
