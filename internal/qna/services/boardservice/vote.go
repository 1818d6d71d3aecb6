package boardservice

import (
	"github.com/Leopold1975/questions_board/internal/qna/domain/models"
)

// toggleVote applies the three-state vote rule to a single slot.
// Same direction again removes the vote and undoes its delta; the opposite
// direction moves the tally by two; a fresh vote moves it by one.
// vote(up) twice from any baseline lands back on that baseline.
func toggleVote(current, dir models.Vote, votes int) (models.Vote, int) {
	if current == dir {
		if dir == models.VoteUp {
			votes--
		} else {
			votes++
		}

		return models.VoteNone, votes
	}

	switch {
	case current != models.VoteNone:
		if dir == models.VoteUp {
			votes += 2
		} else {
			votes -= 2
		}
	case dir == models.VoteUp:
		votes++
	default:
		votes--
	}

	return dir, votes
}
