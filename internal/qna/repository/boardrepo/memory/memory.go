package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/Leopold1975/questions_board/internal/qna/domain/models"
	"github.com/Leopold1975/questions_board/internal/qna/repository/boardrepo"
)

// BoardMemoryRepo keeps questions, answers and tags in process memory.
// Questions are stored most recent first; answers in creation order.
// Ids grow strictly, starting above whatever the snapshot brought in.
type BoardMemoryRepo struct {
	mu             sync.RWMutex
	questions      []models.Question
	answers        []models.Answer
	tags           []models.Tag
	nextQuestionID int
	nextAnswerID   int
	nextTagID      int
}

func New(snap boardrepo.Snapshot) *BoardMemoryRepo {
	r := &BoardMemoryRepo{
		questions:      make([]models.Question, 0, len(snap.Questions)),
		answers:        make([]models.Answer, 0, len(snap.Answers)),
		tags:           make([]models.Tag, 0, len(snap.Tags)),
		nextQuestionID: 1,
		nextAnswerID:   1,
		nextTagID:      1,
	}

	for _, t := range snap.Tags {
		if t.ID >= r.nextTagID {
			r.nextTagID = t.ID + 1
		}

		r.tags = append(r.tags, t)
	}

	for _, q := range snap.Questions {
		if q.ID >= r.nextQuestionID {
			r.nextQuestionID = q.ID + 1
		}

		r.questions = append(r.questions, copyQuestion(q))
	}

	for _, a := range snap.Answers {
		if a.ID >= r.nextAnswerID {
			r.nextAnswerID = a.ID + 1
		}

		r.answers = append(r.answers, a)
	}

	return r
}

func (r *BoardMemoryRepo) ListQuestions(_ context.Context) ([]models.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	qs := make([]models.Question, 0, len(r.questions))
	for _, q := range r.questions {
		qs = append(qs, copyQuestion(q))
	}

	return qs, nil
}

func (r *BoardMemoryRepo) GetQuestion(_ context.Context, id int) (models.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, q := range r.questions {
		if q.ID == id {
			return copyQuestion(q), nil
		}
	}

	return models.Question{}, boardrepo.ErrQuestionNotFound
}

// CreateQuestion resolves tag names through the tag upsert, keeping the
// caller's order and dropping repeats, and inserts the question at the
// front of the collection.
func (r *BoardMemoryRepo) CreateQuestion(_ context.Context,
	q models.Question, tagNames []string,
) (models.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]struct{}, len(tagNames))
	tags := make([]models.Tag, 0, len(tagNames))

	for _, name := range tagNames {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}

		if _, ok := seen[name]; ok {
			continue
		}

		seen[name] = struct{}{}
		tags = append(tags, r.findOrCreateTagLocked(name))
	}

	q.ID = r.nextQuestionID
	r.nextQuestionID++
	q.Tags = tags
	q.AnswerCount = 0
	q.Votes = 0
	q.UserVote = models.VoteNone

	r.questions = append([]models.Question{copyQuestion(q)}, r.questions...)

	return q, nil
}

func (r *BoardMemoryRepo) UpdateQuestion(_ context.Context, q models.Question) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.questions {
		if r.questions[i].ID == q.ID {
			r.questions[i] = copyQuestion(q)

			return nil
		}
	}

	return boardrepo.ErrQuestionNotFound
}

func (r *BoardMemoryRepo) ListAnswers(_ context.Context, questionID int) ([]models.Answer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	as := make([]models.Answer, 0)

	for _, a := range r.answers {
		if a.QuestionID == questionID {
			as = append(as, a)
		}
	}

	return as, nil
}

func (r *BoardMemoryRepo) GetAnswer(_ context.Context, id int) (models.Answer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.answers {
		if a.ID == id {
			return a, nil
		}
	}

	return models.Answer{}, boardrepo.ErrAnswerNotFound
}

// CreateAnswer appends the answer and bumps the parent question's
// answer_count in the same critical section.
func (r *BoardMemoryRepo) CreateAnswer(_ context.Context, a models.Answer) (models.Answer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	parent := -1

	for i := range r.questions {
		if r.questions[i].ID == a.QuestionID {
			parent = i

			break
		}
	}

	if parent < 0 {
		return models.Answer{}, boardrepo.ErrQuestionNotFound
	}

	a.ID = r.nextAnswerID
	r.nextAnswerID++
	a.Votes = 0
	a.UserVote = models.VoteNone

	r.answers = append(r.answers, a)
	r.questions[parent].AnswerCount++

	return a, nil
}

func (r *BoardMemoryRepo) UpdateAnswer(_ context.Context, a models.Answer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.answers {
		if r.answers[i].ID == a.ID {
			r.answers[i] = a

			return nil
		}
	}

	return boardrepo.ErrAnswerNotFound
}

// FindOrCreateTag upserts a tag by name. Names are canonically lowercase.
func (r *BoardMemoryRepo) FindOrCreateTag(_ context.Context, name string) (models.Tag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.findOrCreateTagLocked(strings.ToLower(strings.TrimSpace(name))), nil
}

func (r *BoardMemoryRepo) ListTags(_ context.Context) ([]models.Tag, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tags := make([]models.Tag, len(r.tags))
	copy(tags, r.tags)

	return tags, nil
}

func (r *BoardMemoryRepo) findOrCreateTagLocked(name string) models.Tag {
	for _, t := range r.tags {
		if t.Name == name {
			return t
		}
	}

	t := models.Tag{
		ID:   r.nextTagID,
		Name: name,
	}
	r.nextTagID++

	r.tags = append(r.tags, t)

	return t
}

func copyQuestion(q models.Question) models.Question {
	tags := make([]models.Tag, len(q.Tags))
	copy(tags, q.Tags)
	q.Tags = tags

	return q
}
