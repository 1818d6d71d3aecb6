// Package seed carries the demo dataset the board starts with: four
// users, ten tags, six questions and their answers.
package seed

import (
	"time"

	"github.com/Leopold1975/questions_board/internal/qna/domain/models"
	"github.com/Leopold1975/questions_board/internal/qna/repository/boardrepo"
	"golang.org/x/crypto/bcrypt"
)

// DemoPassword is the password every seeded user logs in with.
const DemoPassword = "password123"

// MinCost keeps construction cheap; the demo accounts guard nothing.
var demoPasswordHash = func() string {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}

	return string(hash)
}()

func Users() []models.User {
	return []models.User{
		{
			ID:           1,
			Name:         "John Doe",
			Email:        "john@example.com",
			PasswordHash: demoPasswordHash,
			CreatedAt:    time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:           2,
			Name:         "Jane Smith",
			Email:        "jane@example.com",
			PasswordHash: demoPasswordHash,
			CreatedAt:    time.Date(2024, 1, 10, 8, 30, 0, 0, time.UTC),
		},
		{
			ID:           3,
			Name:         "Mike Johnson",
			Email:        "mike@example.com",
			PasswordHash: demoPasswordHash,
			CreatedAt:    time.Date(2024, 1, 5, 14, 20, 0, 0, time.UTC),
		},
		{
			ID:           4,
			Name:         "Sarah Wilson",
			Email:        "sarah@example.com",
			PasswordHash: demoPasswordHash,
			CreatedAt:    time.Date(2024, 1, 1, 9, 15, 0, 0, time.UTC),
		},
	}
}

//nolint:funlen
func Snapshot() boardrepo.Snapshot {
	users := Users()

	byID := make(map[int]*models.User, len(users))
	for i := range users {
		byID[users[i].ID] = &users[i]
	}

	tags := []models.Tag{
		{ID: 1, Name: "javascript"},
		{ID: 2, Name: "react"},
		{ID: 3, Name: "python"},
		{ID: 4, Name: "django"},
		{ID: 5, Name: "html"},
		{ID: 6, Name: "css"},
		{ID: 7, Name: "nodejs"},
		{ID: 8, Name: "typescript"},
		{ID: 9, Name: "database"},
		{ID: 10, Name: "api"},
	}

	questions := []models.Question{
		{
			ID:    1,
			Title: "How to implement JWT authentication in React?",
			Description: "I'm building a React application and need to implement JWT authentication. " +
				"What's the best approach to store and manage JWT tokens securely?",
			UserID:      1,
			User:        byID[1],
			Tags:        []models.Tag{tags[0], tags[1]},
			AnswerCount: 3,
			Votes:       15,
			CreatedAt:   time.Date(2024, 1, 20, 10, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 1, 20, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:    2,
			Title: "Django REST Framework serializer validation",
			Description: "How can I add custom validation to Django REST Framework serializers? " +
				"I need to validate that a date field is not in the past.",
			UserID:      2,
			User:        byID[2],
			Tags:        []models.Tag{tags[2], tags[3]},
			AnswerCount: 2,
			Votes:       8,
			CreatedAt:   time.Date(2024, 1, 19, 14, 30, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 1, 19, 14, 30, 0, 0, time.UTC),
		},
		{
			ID:    3,
			Title: "CSS Grid vs Flexbox: When to use which?",
			Description: "I'm confused about when to use CSS Grid versus Flexbox. " +
				"Can someone explain the differences and provide some practical examples?",
			UserID:      3,
			User:        byID[3],
			Tags:        []models.Tag{tags[4], tags[5]},
			AnswerCount: 1,
			Votes:       12,
			CreatedAt:   time.Date(2024, 1, 18, 9, 15, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 1, 18, 9, 15, 0, 0, time.UTC),
		},
		{
			ID:    4,
			Title: "Best practices for Node.js error handling",
			Description: "What are the best practices for handling errors in Node.js applications? " +
				"Should I use try-catch blocks or error-first callbacks?",
			UserID:      4,
			User:        byID[4],
			Tags:        []models.Tag{tags[6], tags[0]},
			AnswerCount: 0,
			Votes:       3,
			CreatedAt:   time.Date(2024, 1, 17, 16, 45, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 1, 17, 16, 45, 0, 0, time.UTC),
		},
		{
			ID:    5,
			Title: "TypeScript generic constraints explained",
			Description: "I'm learning TypeScript and struggling with generic constraints. " +
				"Can someone provide clear examples of when and how to use them?",
			UserID:      1,
			User:        byID[1],
			Tags:        []models.Tag{tags[7], tags[0]},
			AnswerCount: 4,
			Votes:       22,
			CreatedAt:   time.Date(2024, 1, 16, 11, 20, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 1, 16, 11, 20, 0, 0, time.UTC),
		},
		{
			ID:    6,
			Title: "Database indexing strategies for large datasets",
			Description: "Working with a MySQL database that has millions of records. " +
				"What are the best indexing strategies to improve query performance?",
			UserID:      2,
			User:        byID[2],
			Tags:        []models.Tag{tags[8], tags[9]},
			AnswerCount: 2,
			Votes:       7,
			CreatedAt:   time.Date(2024, 1, 15, 13, 10, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 1, 15, 13, 10, 0, 0, time.UTC),
		},
	}

	answers := []models.Answer{
		{
			ID: 1, QuestionID: 1, UserID: 2, User: byID[2], Votes: 8,
			Content: "Store the token in localStorage and add it to requests with an " +
				"axios interceptor. Keep refresh logic in one place.",
			CreatedAt: time.Date(2024, 1, 20, 11, 30, 0, 0, time.UTC),
		},
		{
			ID: 2, QuestionID: 1, UserID: 3, User: byID[3], Votes: 5,
			Content: "Another approach is a React AuthContext that handles login and " +
				"logout and provides the current user state throughout the app.",
			CreatedAt: time.Date(2024, 1, 20, 12, 15, 0, 0, time.UTC),
		},
		{
			ID: 3, QuestionID: 1, UserID: 4, User: byID[4], Votes: 3,
			Content: "Consider react-query or swr for API state. Both have built-in " +
				"auth support and retry failed requests for you.",
			CreatedAt: time.Date(2024, 1, 20, 13, 45, 0, 0, time.UTC),
		},
		{
			ID: 4, QuestionID: 2, UserID: 1, User: byID[1], Votes: 12,
			Content: "Override validate_<field> on the serializer and raise a " +
				"ValidationError when the date is before today.",
			CreatedAt: time.Date(2024, 1, 19, 15, 0, 0, 0, time.UTC),
		},
		{
			ID: 5, QuestionID: 2, UserID: 3, User: byID[3], Votes: 4,
			Content: "The validate() method also works for cross-field checks that " +
				"involve several serializer fields at once.",
			CreatedAt: time.Date(2024, 1, 19, 15, 30, 0, 0, time.UTC),
		},
		{
			ID: 6, QuestionID: 3, UserID: 1, User: byID[1], Votes: 9,
			Content: "Flexbox for one-dimensional layouts, Grid for two-dimensional " +
				"ones. Navigation bars want Flexbox; page layouts want Grid.",
			CreatedAt: time.Date(2024, 1, 18, 10, 0, 0, 0, time.UTC),
		},
		{
			ID: 7, QuestionID: 5, UserID: 2, User: byID[2], Votes: 15,
			Content: "Constraints restrict what a generic accepts. Use the extends " +
				"keyword: func loggingIdentity<T extends Lengthwise>(arg: T): T.",
			CreatedAt: time.Date(2024, 1, 16, 12, 0, 0, 0, time.UTC),
		},
		{
			ID: 8, QuestionID: 5, UserID: 3, User: byID[3], Votes: 7,
			Content: "Constraining to object keys is another classic: " +
				"getProperty<T, K extends keyof T>(obj: T, key: K): T[K].",
			CreatedAt: time.Date(2024, 1, 16, 12, 30, 0, 0, time.UTC),
		},
		{
			ID: 9, QuestionID: 5, UserID: 4, User: byID[4], Votes: 2,
			Content:   "Conditional types with constraints cover the advanced cases.",
			CreatedAt: time.Date(2024, 1, 16, 13, 0, 0, 0, time.UTC),
		},
		{
			ID: 10, QuestionID: 5, UserID: 1, User: byID[1], Votes: 6,
			Content: "Start with plain extends constraints and work up to the " +
				"complex scenarios gradually.",
			CreatedAt: time.Date(2024, 1, 16, 13, 30, 0, 0, time.UTC),
		},
		{
			ID: 11, QuestionID: 6, UserID: 4, User: byID[4], Votes: 11,
			Content: "Compound indexes for multi-column filters, and EXPLAIN to " +
				"check the execution plans.",
			CreatedAt: time.Date(2024, 1, 15, 14, 0, 0, 0, time.UTC),
		},
		{
			ID: 12, QuestionID: 6, UserID: 1, User: byID[1], Votes: 8,
			Content: "Covering indexes speed up SELECTs a lot by keeping every " +
				"needed column inside the index itself.",
			CreatedAt: time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC),
		},
	}

	return boardrepo.Snapshot{
		Tags:      tags,
		Questions: questions,
		Answers:   answers,
	}
}
