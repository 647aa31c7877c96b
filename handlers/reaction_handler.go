package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/Samuel-pydev/Spill-Zone-bck/middleware"
	"github.com/Samuel-pydev/Spill-Zone-bck/monitoring"
	"github.com/Samuel-pydev/Spill-Zone-bck/repositories"
)

// ReactionHandler handles emoji reaction toggles
type ReactionHandler struct {
	Reactions repositories.ReactionRepository
	allowed   map[string]struct{}
}

func NewReactionHandler(reactions repositories.ReactionRepository, allowedEmojis []string) *ReactionHandler {
	allowed := make(map[string]struct{}, len(allowedEmojis))
	for _, emoji := range allowedEmojis {
		allowed[emoji] = struct{}{}
	}
	return &ReactionHandler{Reactions: reactions, allowed: allowed}
}

// Toggle flips the caller's reaction on a post: add if absent, remove if
// present. The post itself is not checked for existence; a reaction on a
// missing post id is invisible everywhere since the feed starts from posts.
func (h *ReactionHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())

	vars := mux.Vars(r)
	postID, err := strconv.ParseUint(vars["post_id"], 10, 32)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid post id")
		return
	}

	var req struct {
		Emoji string `json:"emoji"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if _, ok := h.allowed[req.Emoji]; !ok {
		writeError(w, http.StatusBadRequest, "Invalid emoji")
		return
	}

	added, err := h.Reactions.Toggle(uint(postID), user.ID, req.Emoji)
	if err != nil {
		logrus.WithError(err).Error("failed to toggle reaction")
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	status := "removed"
	if added {
		status = "added"
	}
	monitoring.ReactionsToggled.WithLabelValues(status).Inc()
	writeJSON(w, http.StatusOK, map[string]string{"status": status})
}
