package boardrepo

import (
	"errors"

	"github.com/Leopold1975/questions_board/internal/qna/domain/models"
)

var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrAnswerNotFound   = errors.New("answer not found")
)

// Snapshot is the initial content of a board store.
type Snapshot struct {
	Tags      []models.Tag
	Questions []models.Question
	Answers   []models.Answer
}
