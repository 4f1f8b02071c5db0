package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"atrium/internal/domain"
	"atrium/internal/domain/models"
	"atrium/internal/kvstore"
)

// PostRepository owns the community posts collection. Comments live inside
// their post, so comment mutations persist the whole posts array too.
type PostRepository struct {
	store  kvstore.Store
	logger *slog.Logger
}

func NewPostRepository(store kvstore.Store, logger *slog.Logger) *PostRepository {
	return &PostRepository{store: store, logger: logger}
}

// List returns all posts in stored order (insertion order, oldest first).
func (r *PostRepository) List(ctx context.Context) ([]models.Post, error) {
	return r.load(ctx)
}

// Create assigns ID and timestamp server-side and appends the post.
func (r *PostRepository) Create(ctx context.Context, post *models.Post) error {
	posts, err := r.load(ctx)
	if err != nil {
		return err
	}

	post.ID = uuid.NewString()
	post.Timestamp = time.Now().UTC().Format(time.RFC3339)
	if post.Attachments == nil {
		post.Attachments = []models.Attachment{}
	}
	post.Comments = []models.Comment{}

	posts = append(posts, *post)
	if err := r.save(ctx, posts); err != nil {
		return err
	}

	r.logger.Info("post created", "id", post.ID, "author", post.Name)
	return nil
}

// AddComment appends a comment to the post's comment array. Fails with
// NotFound when the post ID does not resolve; the collection is unchanged.
func (r *PostRepository) AddComment(ctx context.Context, postID string, comment *models.Comment) error {
	posts, err := r.load(ctx)
	if err != nil {
		return err
	}

	for i := range posts {
		if posts[i].ID != postID {
			continue
		}
		comment.ID = uuid.NewString()
		comment.Timestamp = time.Now().UTC().Format(time.RFC3339)
		if comment.Attachments == nil {
			comment.Attachments = []models.Attachment{}
		}
		posts[i].Comments = append(posts[i].Comments, *comment)
		return r.save(ctx, posts)
	}

	return &domain.NotFoundError{Message: fmt.Sprintf("post %s not found", postID)}
}

// Delete removes a post and, with it, all of its comments. Other posts are
// untouched.
func (r *PostRepository) Delete(ctx context.Context, id string) error {
	posts, err := r.load(ctx)
	if err != nil {
		return err
	}

	for i := range posts {
		if posts[i].ID == id {
			posts = append(posts[:i], posts[i+1:]...)
			return r.save(ctx, posts)
		}
	}

	return &domain.NotFoundError{Message: fmt.Sprintf("post %s not found", id)}
}

// DeleteComment removes a single comment from a post. Both the post and the
// comment must resolve.
func (r *PostRepository) DeleteComment(ctx context.Context, postID, commentID string) error {
	posts, err := r.load(ctx)
	if err != nil {
		return err
	}

	for i := range posts {
		if posts[i].ID != postID {
			continue
		}
		for j := range posts[i].Comments {
			if posts[i].Comments[j].ID == commentID {
				posts[i].Comments = append(posts[i].Comments[:j], posts[i].Comments[j+1:]...)
				return r.save(ctx, posts)
			}
		}
		return &domain.NotFoundError{Message: fmt.Sprintf("comment %s not found on post %s", commentID, postID)}
	}

	return &domain.NotFoundError{Message: fmt.Sprintf("post %s not found", postID)}
}

func (r *PostRepository) load(ctx context.Context) ([]models.Post, error) {
	raw, found, err := r.store.Get(ctx, KeyCommunityPosts)
	if err != nil {
		return nil, &domain.StoreError{Message: fmt.Sprintf("load posts: %v", err)}
	}
	if !found {
		return []models.Post{}, nil
	}

	var posts []models.Post
	if err := json.Unmarshal(raw, &posts); err != nil {
		return nil, &domain.StoreError{Message: fmt.Sprintf("decode posts: %v", err)}
	}
	return posts, nil
}

func (r *PostRepository) save(ctx context.Context, posts []models.Post) error {
	raw, err := json.Marshal(posts)
	if err != nil {
		return &domain.StoreError{Message: fmt.Sprintf("encode posts: %v", err)}
	}
	if err := r.store.Set(ctx, KeyCommunityPosts, raw); err != nil {
		return &domain.StoreError{Message: fmt.Sprintf("save posts: %v", err)}
	}
	return nil
}
