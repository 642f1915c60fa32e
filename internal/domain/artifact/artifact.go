// Package artifact holds the artifact aggregate: a registered reference to
// an externally stored media file, owned by exactly one circle. The bytes
// live in the blob store; only the path is persisted here.
package artifact

import (
	"fmt"
	"strings"
	"time"

	vo "dropcircle/internal/domain/artifact/valueobjects"
)

const (
	MaxTitleLength = 200
	MaxPathLength  = 500
)

type Artifact struct {
	id          uint
	sid         string
	circleID    uint
	title       string
	storagePath string
	mediaKind   vo.MediaKind
	createdAt   time.Time
}

func NewArtifact(sid string, circleID uint, title, storagePath string, mediaKind vo.MediaKind) (*Artifact, error) {
	if len(sid) == 0 {
		return nil, fmt.Errorf("artifact SID is required")
	}
	if circleID == 0 {
		return nil, fmt.Errorf("circle ID is required")
	}
	title = strings.TrimSpace(title)
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > MaxTitleLength {
		return nil, fmt.Errorf("title exceeds maximum length of %d characters", MaxTitleLength)
	}
	if len(storagePath) == 0 {
		return nil, fmt.Errorf("storage path is required")
	}
	if len(storagePath) > MaxPathLength {
		return nil, fmt.Errorf("storage path exceeds maximum length of %d characters", MaxPathLength)
	}
	if !mediaKind.IsValid() {
		return nil, fmt.Errorf("invalid media kind: %s", mediaKind)
	}

	return &Artifact{
		sid:         sid,
		circleID:    circleID,
		title:       title,
		storagePath: storagePath,
		mediaKind:   mediaKind,
		createdAt:   time.Now().UTC(),
	}, nil
}

func ReconstructArtifact(
	id uint,
	sid string,
	circleID uint,
	title string,
	storagePath string,
	mediaKind vo.MediaKind,
	createdAt time.Time,
) (*Artifact, error) {
	if id == 0 {
		return nil, fmt.Errorf("artifact ID cannot be zero")
	}
	if len(sid) == 0 {
		return nil, fmt.Errorf("artifact SID is required")
	}
	if !mediaKind.IsValid() {
		return nil, fmt.Errorf("invalid media kind: %s", mediaKind)
	}

	return &Artifact{
		id:          id,
		sid:         sid,
		circleID:    circleID,
		title:       title,
		storagePath: storagePath,
		mediaKind:   mediaKind,
		createdAt:   createdAt,
	}, nil
}

func (a *Artifact) ID() uint {
	return a.id
}

func (a *Artifact) SID() string {
	return a.sid
}

func (a *Artifact) CircleID() uint {
	return a.circleID
}

func (a *Artifact) Title() string {
	return a.title
}

func (a *Artifact) StoragePath() string {
	return a.storagePath
}

func (a *Artifact) MediaKind() vo.MediaKind {
	return a.mediaKind
}

func (a *Artifact) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Artifact) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("artifact ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("artifact ID cannot be zero")
	}
	a.id = id
	return nil
}
