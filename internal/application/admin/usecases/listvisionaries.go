package usecases

import (
	"context"
	"time"

	"dropcircle/internal/domain/artifact"
	"dropcircle/internal/domain/betarequest"
	vo "dropcircle/internal/domain/betarequest/valueobjects"
	"dropcircle/internal/domain/circle"
	"dropcircle/internal/shared/logger"
)

type ListVisionariesQuery struct{}

// VisionaryDTO is the operator dashboard row: one admitted, provisioned
// visionary with their circle inventory. Built per request; the dashboard
// is low-traffic and never on the fan resolve path.
type VisionaryDTO struct {
	RequestID     string     `json:"request_id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	AccountID     string     `json:"account_id"`
	CircleCount   int        `json:"circle_count"`
	LiveCircles   int        `json:"live_circles"`
	ArtifactCount int64      `json:"artifact_count"`
	ApprovedAt    *time.Time `json:"approved_at,omitempty"`
}

type ListVisionariesExecutor interface {
	Execute(ctx context.Context, query ListVisionariesQuery) ([]*VisionaryDTO, error)
}

type ListVisionariesUseCase struct {
	requestRepo  betarequest.Repository
	circleRepo   circle.Repository
	artifactRepo artifact.Repository
	logger       logger.Interface
}

func NewListVisionariesUseCase(
	requestRepo betarequest.Repository,
	circleRepo circle.Repository,
	artifactRepo artifact.Repository,
	logger logger.Interface,
) *ListVisionariesUseCase {
	return &ListVisionariesUseCase{
		requestRepo:  requestRepo,
		circleRepo:   circleRepo,
		artifactRepo: artifactRepo,
		logger:       logger,
	}
}

func (uc *ListVisionariesUseCase) Execute(ctx context.Context, _ ListVisionariesQuery) ([]*VisionaryDTO, error) {
	status := vo.StatusApproved
	requests, err := uc.requestRepo.List(ctx, &status)
	if err != nil {
		uc.logger.Errorw("failed to list approved requests", "error", err)
		return nil, err
	}

	visionaries := make([]*VisionaryDTO, 0, len(requests))
	for _, req := range requests {
		if !req.IsProvisioned() {
			continue
		}

		circles, err := uc.circleRepo.ListByOwner(ctx, req.AccountID())
		if err != nil {
			uc.logger.Errorw("failed to list circles for visionary",
				"account_id", req.AccountID(),
				"error", err)
			return nil, err
		}

		live := 0
		circleIDs := make([]uint, 0, len(circles))
		for _, c := range circles {
			circleIDs = append(circleIDs, c.ID())
			if c.IsLive() {
				live++
			}
		}

		counts, err := uc.artifactRepo.CountByCircleIDs(ctx, circleIDs)
		if err != nil {
			uc.logger.Errorw("failed to count artifacts for visionary",
				"account_id", req.AccountID(),
				"error", err)
			return nil, err
		}
		var artifacts int64
		for _, n := range counts {
			artifacts += n
		}

		visionaries = append(visionaries, &VisionaryDTO{
			RequestID:     req.SID(),
			Name:          req.Name(),
			Email:         req.Email(),
			AccountID:     req.AccountID(),
			CircleCount:   len(circles),
			LiveCircles:   live,
			ArtifactCount: artifacts,
			ApprovedAt:    req.ReviewedAt(),
		})
	}

	return visionaries, nil
}
