package types

import "time"

// IdeaStatus tracks the review lifecycle of a community idea.
type IdeaStatus string

const (
	IdeaStatusPending     IdeaStatus = "pending"
	IdeaStatusApproved    IdeaStatus = "approved"
	IdeaStatusRejected    IdeaStatus = "rejected"
	IdeaStatusImplemented IdeaStatus = "implemented"
)

// VoteType is the direction of a vote on an idea.
type VoteType string

const (
	VoteUp   VoteType = "up"
	VoteDown VoteType = "down"
)

// Idea is a community improvement proposal.
type Idea struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Status      IdeaStatus `json:"status"`
	VotesUp     int        `json:"votesUp"`
	VotesDown   int        `json:"votesDown"`
	AuthorID    string     `json:"authorId"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// IdeaCreate is the request payload for submitting an idea.
type IdeaCreate struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category" binding:"required"`
}

// IdeaUpdate carries a partial idea update. Only non-nil fields are applied.
type IdeaUpdate struct {
	Title       *string     `json:"title,omitempty"`
	Description *string     `json:"description,omitempty"`
	Category    *string     `json:"category,omitempty"`
	Status      *IdeaStatus `json:"status,omitempty"`
}

// IdeaFilter restricts ListIdeas results.
type IdeaFilter struct {
	Category string
	Status   IdeaStatus
}

// VoteResult reports the counters after a vote is recorded.
type VoteResult struct {
	VotesUp   int `json:"votesUp"`
	VotesDown int `json:"votesDown"`
}
