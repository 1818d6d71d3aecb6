package boardservice

type Sort string

const (
	SortNewest Sort = "newest"
	SortOldest Sort = "oldest"
	// SortUnanswered is not a sort at all: it filters to questions with no
	// answers and leaves them in storage order. Kept that way on purpose.
	SortUnanswered Sort = "unanswered"
)

type ListQuestionsRequest struct {
	Page   int
	Search string
	Tag    string
	Sort   Sort
}

type Pagination struct {
	Page       int `json:"page"`
	TotalPages int `json:"total_pages"` //nolint:tagliatelle
	TotalItems int `json:"total_items"` //nolint:tagliatelle
	PerPage    int `json:"per_page"`    //nolint:tagliatelle
}

type CreateQuestionRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}
