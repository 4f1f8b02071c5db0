package handler

import (
	"log/slog"
	"net/http"

	"atrium/internal/httputil"
	"atrium/internal/service"
)

// CommunityHandler handles discussion posts and comments.
type CommunityHandler struct {
	communityService *service.CommunityService
	logger           *slog.Logger
}

func NewCommunityHandler(communityService *service.CommunityService, logger *slog.Logger) *CommunityHandler {
	return &CommunityHandler{communityService: communityService, logger: logger}
}

// ListPosts returns all posts with their comments.
// GET /community/posts
func (h *CommunityHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.communityService.List(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"posts": posts,
	})
}

// CreatePost opens a new discussion thread.
// POST /community/posts
func (h *CommunityHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req service.CreatePostRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	post, err := h.communityService.Create(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"post":    post,
		"message": "Post created successfully",
	})
}

// AddComment appends a comment to a post.
// POST /community/posts/{id}/comments
func (h *CommunityHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	postID := r.PathValue("id")
	if postID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "post ID is required")
		return
	}

	var req service.CreateCommentRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	comment, err := h.communityService.AddComment(r.Context(), postID, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"comment": comment,
		"message": "Comment added successfully",
	})
}

// DeletePost removes a post and all of its comments.
// DELETE /community/posts/{id}
func (h *CommunityHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	postID := r.PathValue("id")
	if postID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "post ID is required")
		return
	}

	if err := h.communityService.Delete(r.Context(), postID); err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Post deleted successfully",
	})
}

// DeleteComment removes a single comment from a post.
// DELETE /community/posts/{id}/comments/{commentID}
func (h *CommunityHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	postID := r.PathValue("id")
	commentID := r.PathValue("commentID")
	if postID == "" || commentID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "post ID and comment ID are required")
		return
	}

	if err := h.communityService.DeleteComment(r.Context(), postID, commentID); err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Comment deleted successfully",
	})
}
