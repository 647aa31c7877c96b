package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/Samuel-pydev/Spill-Zone-bck/apperrors"
	"github.com/Samuel-pydev/Spill-Zone-bck/dto"
	"github.com/Samuel-pydev/Spill-Zone-bck/middleware"
	"github.com/Samuel-pydev/Spill-Zone-bck/models"
	"github.com/Samuel-pydev/Spill-Zone-bck/monitoring"
	"github.com/Samuel-pydev/Spill-Zone-bck/repositories"
)

const maxPostLength = 500

// FeedHandler handles feed post endpoints
type FeedHandler struct {
	Posts     repositories.PostRepository
	Reactions repositories.ReactionRepository
}

func NewFeedHandler(posts repositories.PostRepository, reactions repositories.ReactionRepository) *FeedHandler {
	return &FeedHandler{Posts: posts, Reactions: reactions}
}

// Create posts a new feed entry for the authenticated caller.
func (h *FeedHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())

	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	text := strings.TrimSpace(req.Text)
	if text == "" || utf8.RuneCountInString(text) > maxPostLength {
		writeError(w, http.StatusBadRequest, "Text must be between 1 and 500 characters")
		return
	}

	post := models.Post{
		AuthorID:  &user.ID,
		Text:      text,
		Timestamp: time.Now().UTC(),
	}
	if err := h.Posts.Create(&post); err != nil {
		logrus.WithError(err).Error("failed to create post")
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	monitoring.PostsCreated.Inc()
	// A fresh post has no reactions yet.
	writeJSON(w, http.StatusOK, dto.PostView{
		ID:             post.ID,
		AuthorID:       post.AuthorID,
		Text:           post.Text,
		Timestamp:      post.Timestamp,
		ReactionCounts: map[string]int64{},
		UserReactions:  []string{},
	})
}

// List returns all posts newest-first, each annotated with aggregated
// reaction counts and the caller's own reactions.
func (h *FeedHandler) List(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())

	posts, err := h.Posts.ListNewestFirst()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	views := make([]dto.PostView, 0, len(posts))
	for _, post := range posts {
		counts, err := h.Reactions.CountsForPost(post.ID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Database error")
			return
		}
		own, err := h.Reactions.EmojisForUser(post.ID, user.ID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Database error")
			return
		}

		views = append(views, dto.PostView{
			ID:             post.ID,
			AuthorID:       post.AuthorID,
			Text:           post.Text,
			Timestamp:      post.Timestamp,
			ReactionCounts: counts,
			UserReactions:  own,
		})
	}

	writeJSON(w, http.StatusOK, views)
}

// Delete removes a post. Only the author may delete it; legacy posts without
// an author belong to nobody and cannot be deleted.
func (h *FeedHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())

	vars := mux.Vars(r)
	postID, err := strconv.ParseUint(vars["post_id"], 10, 32)
	if err != nil {
		writeError(w, http.StatusNotFound, "Post not found")
		return
	}

	post, err := h.Posts.FindByID(uint(postID))
	if errors.Is(err, apperrors.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Post not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	if post.AuthorID == nil || *post.AuthorID != user.ID {
		writeError(w, http.StatusForbidden, "Not authorized to delete this post")
		return
	}

	if err := h.Posts.Delete(post.ID); err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	monitoring.PostsDeleted.Inc()
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
