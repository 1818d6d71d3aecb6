package boardservice

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Leopold1975/questions_board/internal/pkg/config"
	"github.com/Leopold1975/questions_board/internal/qna/domain/models"
	repo "github.com/Leopold1975/questions_board/internal/qna/repository/boardrepo"
	"github.com/Leopold1975/questions_board/internal/qna/repository/sessionrepo"
	"github.com/Leopold1975/questions_board/pkg/logger"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrAuthRequired = errors.New("authentication required")
	ErrUnknownVote  = errors.New("unknown vote direction")
)

const defaultPerPage = 5

type BoardService struct {
	boardRepo Repository
	sessions  Sessions
	lg        logger.Logger
	perPage   int
	delay     time.Duration
}

type Repository interface {
	ListQuestions(context.Context) ([]models.Question, error)
	GetQuestion(context.Context, int) (models.Question, error)
	CreateQuestion(context.Context, models.Question, []string) (models.Question, error)
	UpdateQuestion(context.Context, models.Question) error
	ListAnswers(context.Context, int) ([]models.Answer, error)
	GetAnswer(context.Context, int) (models.Answer, error)
	CreateAnswer(context.Context, models.Answer) (models.Answer, error)
	UpdateAnswer(context.Context, models.Answer) error
	ListTags(context.Context) ([]models.Tag, error)
}

type Sessions interface {
	Load(context.Context) (models.AuthUser, error)
}

func New(boardRepo Repository, sessions Sessions, lg logger.Logger, cfg config.Board) *BoardService {
	perPage := cfg.PerPage
	if perPage <= 0 {
		perPage = defaultPerPage
	}

	return &BoardService{
		boardRepo: boardRepo,
		sessions:  sessions,
		lg:        lg,
		perPage:   perPage,
		delay:     cfg.Delay,
	}
}

// ListQuestions filters, sorts and paginates the board. Search and tag
// filters are AND-combined before any ordering is applied. A page past the
// end yields an empty slice with the real totals, never an error.
func (bs *BoardService) ListQuestions(ctx context.Context,
	req ListQuestionsRequest,
) ([]models.Question, Pagination, error) {
	if err := bs.wait(ctx); err != nil {
		return nil, Pagination{}, err
	}

	qs, err := bs.boardRepo.ListQuestions(ctx)
	if err != nil {
		return nil, Pagination{}, fmt.Errorf("list questions error: %w", err)
	}

	if req.Search != "" {
		search := strings.ToLower(req.Search)
		qs = filterQuestions(qs, func(q models.Question) bool {
			return strings.Contains(strings.ToLower(q.Title), search) ||
				strings.Contains(strings.ToLower(q.Description), search)
		})
	}

	if req.Tag != "" {
		tag := strings.ToLower(req.Tag)
		qs = filterQuestions(qs, func(q models.Question) bool {
			for _, t := range q.Tags {
				if t.Name == tag {
					return true
				}
			}

			return false
		})
	}

	switch req.Sort {
	case SortOldest:
		sort.SliceStable(qs, func(i, j int) bool {
			return qs[i].CreatedAt.Before(qs[j].CreatedAt)
		})
	case SortUnanswered:
		qs = filterQuestions(qs, func(q models.Question) bool {
			return q.AnswerCount == 0
		})
	case SortNewest:
		fallthrough
	default:
		sort.SliceStable(qs, func(i, j int) bool {
			return qs[i].CreatedAt.After(qs[j].CreatedAt)
		})
	}

	page := req.Page
	if page < 1 {
		page = 1
	}

	totalItems := len(qs)
	totalPages := (totalItems + bs.perPage - 1) / bs.perPage

	start := (page - 1) * bs.perPage
	end := start + bs.perPage

	switch {
	case start >= totalItems:
		qs = []models.Question{}
	case end > totalItems:
		qs = qs[start:totalItems]
	default:
		qs = qs[start:end]
	}

	return qs, Pagination{
		Page:       page,
		TotalPages: totalPages,
		TotalItems: totalItems,
		PerPage:    bs.perPage,
	}, nil
}

func (bs *BoardService) GetQuestion(ctx context.Context, id int) (models.Question, error) {
	if err := bs.wait(ctx); err != nil {
		return models.Question{}, err
	}

	q, err := bs.boardRepo.GetQuestion(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrQuestionNotFound) {
			return models.Question{}, ErrNotFound
		}

		return models.Question{}, fmt.Errorf("get question error: %w", err)
	}

	return q, nil
}

func (bs *BoardService) CreateQuestion(ctx context.Context,
	req CreateQuestionRequest,
) (models.Question, error) {
	if err := bs.wait(ctx); err != nil {
		return models.Question{}, err
	}

	au, err := bs.currentUser(ctx)
	if err != nil {
		return models.Question{}, err
	}

	now := time.Now().UTC()
	author := au.User

	q := models.Question{ //nolint:exhaustruct
		Title:       req.Title,
		Description: req.Description,
		UserID:      au.ID,
		User:        &author,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	q, err = bs.boardRepo.CreateQuestion(ctx, q, req.Tags)
	if err != nil {
		return models.Question{}, fmt.Errorf("create question error: %w", err)
	}

	bs.lg.Infof("question %d created by user %d", q.ID, au.ID)

	return q, nil
}

// GetAnswers returns a question's answers oldest first, the opposite of
// the default question ordering.
func (bs *BoardService) GetAnswers(ctx context.Context, questionID int) ([]models.Answer, error) {
	if err := bs.wait(ctx); err != nil {
		return nil, err
	}

	as, err := bs.boardRepo.ListAnswers(ctx, questionID)
	if err != nil {
		return nil, fmt.Errorf("list answers error: %w", err)
	}

	sort.SliceStable(as, func(i, j int) bool {
		return as[i].CreatedAt.Before(as[j].CreatedAt)
	})

	return as, nil
}

func (bs *BoardService) CreateAnswer(ctx context.Context,
	questionID int, content string,
) (models.Answer, error) {
	if err := bs.wait(ctx); err != nil {
		return models.Answer{}, err
	}

	au, err := bs.currentUser(ctx)
	if err != nil {
		return models.Answer{}, err
	}

	author := au.User

	a := models.Answer{ //nolint:exhaustruct
		QuestionID: questionID,
		UserID:     au.ID,
		User:       &author,
		Content:    content,
		CreatedAt:  time.Now().UTC(),
	}

	a, err = bs.boardRepo.CreateAnswer(ctx, a)
	if err != nil {
		if errors.Is(err, repo.ErrQuestionNotFound) {
			return models.Answer{}, ErrNotFound
		}

		return models.Answer{}, fmt.Errorf("create answer error: %w", err)
	}

	bs.lg.Infof("answer %d created for question %d by user %d", a.ID, questionID, au.ID)

	return a, nil
}

func (bs *BoardService) VoteQuestion(ctx context.Context, id int, dir models.Vote) (models.Question, error) {
	if err := bs.wait(ctx); err != nil {
		return models.Question{}, err
	}

	if _, err := bs.currentUser(ctx); err != nil {
		return models.Question{}, err
	}

	if err := checkDirection(dir); err != nil {
		return models.Question{}, err
	}

	q, err := bs.boardRepo.GetQuestion(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrQuestionNotFound) {
			return models.Question{}, ErrNotFound
		}

		return models.Question{}, fmt.Errorf("get question error: %w", err)
	}

	q.UserVote, q.Votes = toggleVote(q.UserVote, dir, q.Votes)

	if err := bs.boardRepo.UpdateQuestion(ctx, q); err != nil {
		return models.Question{}, fmt.Errorf("update question error: %w", err)
	}

	return q, nil
}

func (bs *BoardService) VoteAnswer(ctx context.Context, id int, dir models.Vote) (models.Answer, error) {
	if err := bs.wait(ctx); err != nil {
		return models.Answer{}, err
	}

	if _, err := bs.currentUser(ctx); err != nil {
		return models.Answer{}, err
	}

	if err := checkDirection(dir); err != nil {
		return models.Answer{}, err
	}

	a, err := bs.boardRepo.GetAnswer(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrAnswerNotFound) {
			return models.Answer{}, ErrNotFound
		}

		return models.Answer{}, fmt.Errorf("get answer error: %w", err)
	}

	a.UserVote, a.Votes = toggleVote(a.UserVote, dir, a.Votes)

	if err := bs.boardRepo.UpdateAnswer(ctx, a); err != nil {
		return models.Answer{}, fmt.Errorf("update answer error: %w", err)
	}

	return a, nil
}

func (bs *BoardService) ListTags(ctx context.Context) ([]models.Tag, error) {
	if err := bs.wait(ctx); err != nil {
		return nil, err
	}

	tags, err := bs.boardRepo.ListTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tags error: %w", err)
	}

	return tags, nil
}

// SuggestTags completes a partial tag name, skipping names the caller has
// already attached to the draft.
func (bs *BoardService) SuggestTags(ctx context.Context, partial string, exclude []string) ([]models.Tag, error) {
	if err := bs.wait(ctx); err != nil {
		return nil, err
	}

	partial = strings.ToLower(strings.TrimSpace(partial))
	if partial == "" {
		return []models.Tag{}, nil
	}

	tags, err := bs.boardRepo.ListTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tags error: %w", err)
	}

	attached := make(map[string]struct{}, len(exclude))
	for _, name := range exclude {
		attached[strings.ToLower(name)] = struct{}{}
	}

	suggestions := make([]models.Tag, 0)

	for _, t := range tags {
		if _, ok := attached[t.Name]; ok {
			continue
		}

		if strings.Contains(t.Name, partial) {
			suggestions = append(suggestions, t)
		}
	}

	return suggestions, nil
}

func (bs *BoardService) currentUser(ctx context.Context) (models.AuthUser, error) {
	au, err := bs.sessions.Load(ctx)
	if err != nil {
		if errors.Is(err, sessionrepo.ErrNoSession) {
			return models.AuthUser{}, ErrAuthRequired
		}

		return models.AuthUser{}, fmt.Errorf("load session error: %w", err)
	}

	return au, nil
}

// wait emulates the round trip to a remote backend. Zero delay disables it.
func (bs *BoardService) wait(ctx context.Context) error {
	if bs.delay <= 0 {
		return nil
	}

	t := time.NewTimer(bs.delay)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("context cancelled error: %w", ctx.Err())
	case <-t.C:
		return nil
	}
}

func checkDirection(dir models.Vote) error {
	if dir != models.VoteUp && dir != models.VoteDown {
		return fmt.Errorf("%w: %q", ErrUnknownVote, dir)
	}

	return nil
}

func filterQuestions(qs []models.Question, keep func(models.Question) bool) []models.Question {
	filtered := qs[:0]

	for _, q := range qs {
		if keep(q) {
			filtered = append(filtered, q)
		}
	}

	return filtered
}
