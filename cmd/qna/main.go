package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Leopold1975/questions_board/internal/pkg/config"
	"github.com/Leopold1975/questions_board/internal/qna/app"
	"github.com/Leopold1975/questions_board/internal/qna/domain/models"
	"github.com/Leopold1975/questions_board/internal/qna/services/boardservice"
)

func main() {
	var (
		configPath string
		email      string
		password   string
		search     string
		tag        string
		sortBy     string
		page       int
	)

	flag.StringVar(&configPath, "config", "", "path to configuration file")
	flag.StringVar(&email, "email", "", "log in as this user before listing")
	flag.StringVar(&password, "password", "", "password for -email")
	flag.StringVar(&search, "search", "", "substring filter over title and description")
	flag.StringVar(&tag, "tag", "", "tag name filter")
	flag.StringVar(&sortBy, "sort", "newest", "newest | oldest | unanswered")
	flag.IntVar(&page, "page", 1, "page to show")
	flag.Parse()

	cfg, err := config.New(configPath)
	if err != nil {
		log.Fatal(err)
	}

	interruptSignals := []os.Signal{syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP}

	ctx, cancel := signal.NotifyContext(context.Background(), interruptSignals...)
	defer cancel()

	a, err := app.New(ctx, cfg)
	if err != nil {
		log.Println(err)

		return
	}

	if email != "" {
		au, err := a.Auth().Login(ctx, email, password)
		if err != nil {
			log.Println(err)

			return
		}

		a.Logger().Infof("logged in as %s (user %d)", au.Name, au.ID)
	}

	questions, pg, err := a.Board().ListQuestions(ctx, boardservice.ListQuestionsRequest{
		Page:   page,
		Search: search,
		Tag:    tag,
		Sort:   boardservice.Sort(sortBy),
	})
	if err != nil {
		log.Println(err)

		return
	}

	fmt.Printf("page %d/%d, %d questions total\n", pg.Page, pg.TotalPages, pg.TotalItems)

	for _, q := range questions {
		fmt.Printf("#%-3d %+3d votes  %2d answers  %s  [%s]\n",
			q.ID, q.Votes, q.AnswerCount, q.Title, tagNames(q.Tags))
	}
}

func tagNames(tags []models.Tag) string {
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, t.Name)
	}

	return strings.Join(names, ", ")
}
