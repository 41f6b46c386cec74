package models

import (
	"context"
	"errors"

	apperrors "github.com/born2vin/hoskote-backend/errors"
	"github.com/born2vin/hoskote-backend/internal/store"
	"github.com/born2vin/hoskote-backend/logger"
	"github.com/born2vin/hoskote-backend/types"
)

// IdeaModel handles community idea proposals and voting.
type IdeaModel struct {
	store store.IdeaStore
}

func NewIdeaModel(ideaStore store.IdeaStore) *IdeaModel {
	return &IdeaModel{store: ideaStore}
}

func (m *IdeaModel) CreateIdea(ctx context.Context, authorID string, req *types.IdeaCreate) (*types.Idea, error) {
	idea := &types.Idea{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		AuthorID:    authorID,
	}

	id, err := m.store.CreateIdea(ctx, idea)
	if err != nil {
		logger.GetLogger().Errorw("Failed to create idea", "author", authorID, "error", err)
		return nil, apperrors.NewDatabaseError(err)
	}
	return m.getIdea(ctx, id)
}

func (m *IdeaModel) GetIdea(ctx context.Context, id string) (*types.Idea, error) {
	return m.getIdea(ctx, id)
}

func (m *IdeaModel) getIdea(ctx context.Context, id string) (*types.Idea, error) {
	idea, err := m.store.GetIdea(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NotFound("Idea", id)
		}
		return nil, apperrors.NewDatabaseError(err)
	}
	return idea, nil
}

func (m *IdeaModel) ListIdeas(ctx context.Context, filter types.IdeaFilter, offset, limit int) (*types.PaginatedResponse, error) {
	ideas, total, err := m.store.ListIdeas(ctx, filter, offset, limit)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	return &types.PaginatedResponse{
		Data: ideas,
		Pagination: types.Pagination{
			Limit:  limit,
			Offset: offset,
			Total:  total,
		},
	}, nil
}

// UpdateIdea applies a partial update. Only the author may update.
func (m *IdeaModel) UpdateIdea(ctx context.Context, id, requesterID string, update *types.IdeaUpdate) (*types.Idea, error) {
	idea, err := m.getIdea(ctx, id)
	if err != nil {
		return nil, err
	}
	if idea.AuthorID != requesterID {
		return nil, apperrors.Forbidden("Not authorized to update this idea", "only the author can update an idea")
	}

	updated, err := m.store.UpdateIdea(ctx, id, update)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NotFound("Idea", id)
		}
		return nil, apperrors.NewDatabaseError(err)
	}
	return updated, nil
}

// Vote registers an up or down vote. Votes are unauthenticated tallies, so a
// user may vote repeatedly.
func (m *IdeaModel) Vote(ctx context.Context, id string, voteType types.VoteType) (*types.VoteResult, error) {
	if voteType != types.VoteUp && voteType != types.VoteDown {
		return nil, apperrors.ValidationFailed("Invalid vote type", "must be 'up' or 'down'")
	}

	result, err := m.store.AddVote(ctx, id, voteType)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NotFound("Idea", id)
		}
		return nil, apperrors.NewDatabaseError(err)
	}
	return result, nil
}

// DeleteIdea removes an idea. Only the author may delete.
func (m *IdeaModel) DeleteIdea(ctx context.Context, id, requesterID string) error {
	idea, err := m.getIdea(ctx, id)
	if err != nil {
		return err
	}
	if idea.AuthorID != requesterID {
		return apperrors.Forbidden("Not authorized to delete this idea", "only the author can delete an idea")
	}

	if err := m.store.DeleteIdea(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperrors.NotFound("Idea", id)
		}
		return apperrors.NewDatabaseError(err)
	}
	return nil
}
