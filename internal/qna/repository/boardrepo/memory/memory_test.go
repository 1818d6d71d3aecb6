package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/Leopold1975/questions_board/internal/qna/domain/models"
	"github.com/Leopold1975/questions_board/internal/qna/repository/boardrepo"
	"github.com/Leopold1975/questions_board/internal/qna/repository/boardrepo/memory"
	"github.com/Leopold1975/questions_board/internal/qna/seed"
	"github.com/stretchr/testify/require"
)

func TestCreateQuestionIDsAndOrder(t *testing.T) {
	ctx := context.Background()
	r := memory.New(seed.Snapshot())

	q1, err := r.CreateQuestion(ctx, models.Question{Title: "first"}, nil)
	require.NoError(t, err)
	require.Equal(t, 7, q1.ID)

	q2, err := r.CreateQuestion(ctx, models.Question{Title: "second"}, nil)
	require.NoError(t, err)
	require.Equal(t, 8, q2.ID)

	// New questions land at the front, newest of the new first.
	qs, err := r.ListQuestions(ctx)
	require.NoError(t, err)
	require.Equal(t, 8, qs[0].ID)
	require.Equal(t, 7, qs[1].ID)
	require.Len(t, qs, 8)
}

func TestCreateQuestionTagResolution(t *testing.T) {
	ctx := context.Background()
	r := memory.New(seed.Snapshot())

	q, err := r.CreateQuestion(ctx, models.Question{Title: "tagged"},
		[]string{"React", "Testing", "react", " ", "testing"})
	require.NoError(t, err)

	require.Len(t, q.Tags, 2)
	require.Equal(t, "react", q.Tags[0].Name)
	require.Equal(t, 2, q.Tags[0].ID) // existing tag reused, not recreated
	require.Equal(t, "testing", q.Tags[1].Name)
	require.Equal(t, 11, q.Tags[1].ID)
}

func TestFindOrCreateTag(t *testing.T) {
	ctx := context.Background()
	r := memory.New(boardrepo.Snapshot{})

	a, err := r.FindOrCreateTag(ctx, "Go")
	require.NoError(t, err)
	require.Equal(t, "go", a.Name)
	require.Equal(t, 1, a.ID)

	b, err := r.FindOrCreateTag(ctx, "GO")
	require.NoError(t, err)
	require.Equal(t, a.ID, b.ID)

	tags, err := r.ListTags(ctx)
	require.NoError(t, err)
	require.Len(t, tags, 1)
}

func TestCreateAnswer(t *testing.T) {
	ctx := context.Background()
	r := memory.New(seed.Snapshot())

	a, err := r.CreateAnswer(ctx, models.Answer{
		QuestionID: 4,
		UserID:     1,
		Content:    "wrap and return errors, never panic for control flow",
		CreatedAt:  time.Now().UTC(),
	})
	require.NoError(t, err)
	require.Equal(t, 13, a.ID)

	q, err := r.GetQuestion(ctx, 4)
	require.NoError(t, err)
	require.Equal(t, 1, q.AnswerCount)

	as, err := r.ListAnswers(ctx, 4)
	require.NoError(t, err)
	require.Len(t, as, 1)
	require.Equal(t, a.ID, as[0].ID)
}

func TestCreateAnswerMissingQuestion(t *testing.T) {
	ctx := context.Background()
	r := memory.New(seed.Snapshot())

	_, err := r.CreateAnswer(ctx, models.Answer{QuestionID: 999})
	require.ErrorIs(t, err, boardrepo.ErrQuestionNotFound)
}

func TestUpdateNotFound(t *testing.T) {
	ctx := context.Background()
	r := memory.New(seed.Snapshot())

	err := r.UpdateQuestion(ctx, models.Question{ID: 999})
	require.ErrorIs(t, err, boardrepo.ErrQuestionNotFound)

	err = r.UpdateAnswer(ctx, models.Answer{ID: 999})
	require.ErrorIs(t, err, boardrepo.ErrAnswerNotFound)
}

// Listings are snapshots: touching a returned question must not reach
// the stored one.
func TestListQuestionsSnapshot(t *testing.T) {
	ctx := context.Background()
	r := memory.New(seed.Snapshot())

	qs, err := r.ListQuestions(ctx)
	require.NoError(t, err)

	qs[0].Votes = -100
	qs[0].Tags[0].Name = "mangled"

	stored, err := r.GetQuestion(ctx, qs[0].ID)
	require.NoError(t, err)
	require.NotEqual(t, -100, stored.Votes)
	require.NotEqual(t, "mangled", stored.Tags[0].Name)
}
