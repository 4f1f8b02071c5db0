package service

import (
	"context"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"atrium/internal/config"
	"atrium/internal/domain"
	"atrium/internal/domain/models"
	"atrium/internal/repository"
)

// CreatePostRequest is the payload for opening a discussion thread.
// Attachment IDs are client-generated and stored verbatim.
type CreatePostRequest struct {
	Name        string              `json:"name"`
	Message     string              `json:"message"`
	Attachments []models.Attachment `json:"attachments"`
}

// CreateCommentRequest is the payload for replying to a post.
type CreateCommentRequest struct {
	Name        string              `json:"name"`
	Message     string              `json:"message"`
	Attachments []models.Attachment `json:"attachments"`
}

// CommunityService applies validation on top of the post repository.
type CommunityService struct {
	repo   *repository.PostRepository
	logger *slog.Logger
}

func NewCommunityService(repo *repository.PostRepository, logger *slog.Logger) *CommunityService {
	return &CommunityService{repo: repo, logger: logger}
}

func (s *CommunityService) List(ctx context.Context) ([]models.Post, error) {
	return s.repo.List(ctx)
}

func (s *CommunityService) Create(ctx context.Context, req *CreatePostRequest) (*models.Post, error) {
	if err := validation.ValidateStruct(req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, config.MaxNameLength)),
		validation.Field(&req.Message, validation.Required, validation.Length(1, config.MaxMessageLength)),
	); err != nil {
		return nil, &domain.ValidationError{Message: err.Error()}
	}

	post := &models.Post{
		Name:        req.Name,
		Message:     req.Message,
		Attachments: req.Attachments,
	}
	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *CommunityService) AddComment(ctx context.Context, postID string, req *CreateCommentRequest) (*models.Comment, error) {
	if err := validation.ValidateStruct(req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, config.MaxNameLength)),
		validation.Field(&req.Message, validation.Required, validation.Length(1, config.MaxMessageLength)),
	); err != nil {
		return nil, &domain.ValidationError{Message: err.Error()}
	}

	comment := &models.Comment{
		Name:        req.Name,
		Message:     req.Message,
		Attachments: req.Attachments,
	}
	if err := s.repo.AddComment(ctx, postID, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommunityService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *CommunityService) DeleteComment(ctx context.Context, postID, commentID string) error {
	return s.repo.DeleteComment(ctx, postID, commentID)
}
