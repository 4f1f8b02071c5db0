// Command seed populates a running server with demo content through the
// public API. Useful for local development against the in-memory store,
// which starts empty on every boot.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"atrium/client"
	"atrium/internal/domain/models"
	"atrium/internal/service"
)

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the server to seed")
	token := flag.String("token", "", "Bearer token (defaults to API_TOKEN from the environment)")
	flag.Parse()

	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	if *token == "" {
		*token = os.Getenv("API_TOKEN")
	}

	c := client.New(*baseURL, client.WithToken(*token), client.WithLogger(logger))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := c.Health(ctx); err != nil {
		log.Fatalf("Server not reachable at %s: %v", *baseURL, err)
	}

	if _, err := c.CreateDocument(ctx, &service.CreateDocumentRequest{
		Name:     "team-handbook.md",
		Size:     "4.2 KB",
		Type:     "text/markdown",
		DataURL:  "data:text/markdown;base64,IyBUZWFtIEhhbmRib29r",
		Category: "Process",
	}); err != nil {
		log.Fatalf("Seed document: %v", err)
	}

	if err := c.ReplaceStructure(ctx, "ui", []models.FolderInfo{
		{Name: "components", Purpose: "Shared widgets", Description: "Buttons, dialogs, and form controls.\n\n- keep props flat\n- no page-specific logic"},
		{Name: "pages", Purpose: "Route-level views", Description: "One folder per route. See `router.tsx` for the mapping."},
	}); err != nil {
		log.Fatalf("Seed ui structure: %v", err)
	}

	if err := c.ReplaceStructure(ctx, "api", []models.FolderInfo{
		{Name: "handlers", Purpose: "HTTP endpoints", Description: "Request decoding, validation, and the **response envelopes**."},
		{Name: "repository", Purpose: "Persistence", Description: "> Every collection is one key in the store."},
	}); err != nil {
		log.Fatalf("Seed api structure: %v", err)
	}

	post, err := c.CreatePost(ctx, &service.CreatePostRequest{
		Name:    "dana",
		Message: "Welcome! Drop questions about the project here.",
	})
	if err != nil {
		log.Fatalf("Seed post: %v", err)
	}
	if _, err := c.AddComment(ctx, post.ID, &service.CreateCommentRequest{
		Name:    "sam",
		Message: "The search box on the top right covers docs, folders, and this forum.",
	}); err != nil {
		log.Fatalf("Seed comment: %v", err)
	}

	logger.Info("seed complete", "url", *baseURL)
}
