package dto

import "time"

// PostView is the response projection of a feed post: the stored fields plus
// the reaction aggregates computed at read time.
type PostView struct {
	ID             uint             `json:"id"`
	AuthorID       *uint            `json:"user_id"`
	Text           string           `json:"text"`
	Timestamp      time.Time        `json:"timestamp"`
	ReactionCounts map[string]int64 `json:"reaction_counts"`
	UserReactions  []string         `json:"user_reactions"`
}
