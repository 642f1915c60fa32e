package usecases

import (
	"context"
	"time"

	"dropcircle/internal/domain/artifact"
	"dropcircle/internal/domain/circle"
	"dropcircle/internal/shared/errors"
	"dropcircle/internal/shared/id"
	"dropcircle/internal/shared/logger"
)

// InviteOutcome is the fan-facing resolution state of a circle id.
type InviteOutcome string

const (
	OutcomeReachable InviteOutcome = "reachable"
	OutcomeSealed    InviteOutcome = "sealed"
	OutcomeNotFound  InviteOutcome = "not_found"
)

type ResolveInviteQuery struct {
	CircleID string
}

// InviteArtifact is the fan view of an artifact. No storage path: fans get
// titles and kinds, playback URLs are minted elsewhere.
type InviteArtifact struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	MediaKind string    `json:"media_kind"`
	CreatedAt time.Time `json:"created_at"`
}

type ResolveInviteResult struct {
	Outcome   InviteOutcome
	Title     string
	Artifacts []InviteArtifact
}

// ResolveInviteUseCase turns a circle id into fan-visible content. It is
// identity-blind: possession of the id is the entire credential. A sealed
// (offline) circle is reported distinctly from an unknown id, and the live
// flag is read fresh from the store on every call.
type ResolveInviteUseCase struct {
	circleRepo   circle.Repository
	artifactRepo artifact.Repository
	logger       logger.Interface
}

func NewResolveInviteUseCase(
	circleRepo circle.Repository,
	artifactRepo artifact.Repository,
	logger logger.Interface,
) *ResolveInviteUseCase {
	return &ResolveInviteUseCase{
		circleRepo:   circleRepo,
		artifactRepo: artifactRepo,
		logger:       logger,
	}
}

func (uc *ResolveInviteUseCase) Execute(ctx context.Context, query ResolveInviteQuery) (*ResolveInviteResult, error) {
	if !id.IsCircleID(query.CircleID) {
		return &ResolveInviteResult{Outcome: OutcomeNotFound}, nil
	}

	c, err := uc.circleRepo.FindBySID(ctx, query.CircleID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return &ResolveInviteResult{Outcome: OutcomeNotFound}, nil
		}
		uc.logger.Errorw("failed to resolve invite", "error", err)
		return nil, err
	}

	if !c.IsLive() {
		return &ResolveInviteResult{Outcome: OutcomeSealed}, nil
	}

	artifacts, err := uc.artifactRepo.ListByCircleID(ctx, c.ID())
	if err != nil {
		uc.logger.Errorw("failed to list artifacts for invite", "error", err)
		return nil, err
	}

	items := make([]InviteArtifact, 0, len(artifacts))
	for _, a := range artifacts {
		items = append(items, InviteArtifact{
			ID:        a.SID(),
			Title:     a.Title(),
			MediaKind: a.MediaKind().String(),
			CreatedAt: a.CreatedAt(),
		})
	}

	return &ResolveInviteResult{
		Outcome:   OutcomeReachable,
		Title:     c.Title(),
		Artifacts: items,
	}, nil
}
