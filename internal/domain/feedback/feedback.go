// Package feedback holds fan reactions against a content title. Feedback is
// deliberately denormalized: the target is a free identifier plus display
// title, not a foreign key into the circle model, so reactions can be
// collected for content outside it. Submissions are write-once.
package feedback

import (
	"fmt"
	"strings"
	"time"
)

const (
	MaxCommentLength = 500
	MaxNameLength    = 80
	MaxEmailLength   = 120
	MaxTitleLength   = 200

	MinRating = 1
	MaxRating = 5
)

type Thumbs string

const (
	ThumbsUp   Thumbs = "up"
	ThumbsDown Thumbs = "down"
)

func (t Thumbs) IsValid() bool {
	return t == ThumbsUp || t == ThumbsDown
}

type Feedback struct {
	id          uint
	targetID    string
	targetTitle string
	thumbs      *Thumbs
	rating      *int
	comment     string
	fanName     string
	fanEmail    string
	createdAt   time.Time
}

// NewFeedback validates and builds a submission. At least one of thumbs,
// rating or a non-blank comment must be present. Out-of-range field lengths
// are rejected outright, not truncated; the soft UI limits of the widget are
// hard limits here.
func NewFeedback(
	targetID string,
	targetTitle string,
	thumbs *Thumbs,
	rating *int,
	comment string,
	fanName string,
	fanEmail string,
) (*Feedback, error) {
	targetTitle = strings.TrimSpace(targetTitle)
	if len(targetTitle) == 0 {
		return nil, fmt.Errorf("target title is required")
	}
	if len(targetTitle) > MaxTitleLength {
		return nil, fmt.Errorf("target title exceeds maximum length of %d characters", MaxTitleLength)
	}

	comment = strings.TrimSpace(comment)
	if thumbs == nil && rating == nil && comment == "" {
		return nil, fmt.Errorf("at least one of thumbs, rating or comment is required")
	}

	if thumbs != nil && !thumbs.IsValid() {
		return nil, fmt.Errorf("invalid thumbs value: %s", *thumbs)
	}
	if rating != nil && (*rating < MinRating || *rating > MaxRating) {
		return nil, fmt.Errorf("rating must be between %d and %d", MinRating, MaxRating)
	}
	if len(comment) > MaxCommentLength {
		return nil, fmt.Errorf("comment exceeds maximum length of %d characters", MaxCommentLength)
	}

	fanName = strings.TrimSpace(fanName)
	if len(fanName) > MaxNameLength {
		return nil, fmt.Errorf("name exceeds maximum length of %d characters", MaxNameLength)
	}
	fanEmail = strings.TrimSpace(fanEmail)
	if len(fanEmail) > MaxEmailLength {
		return nil, fmt.Errorf("email exceeds maximum length of %d characters", MaxEmailLength)
	}

	return &Feedback{
		targetID:    strings.TrimSpace(targetID),
		targetTitle: targetTitle,
		thumbs:      thumbs,
		rating:      rating,
		comment:     comment,
		fanName:     fanName,
		fanEmail:    fanEmail,
		createdAt:   time.Now().UTC(),
	}, nil
}

func ReconstructFeedback(
	id uint,
	targetID string,
	targetTitle string,
	thumbs *Thumbs,
	rating *int,
	comment string,
	fanName string,
	fanEmail string,
	createdAt time.Time,
) (*Feedback, error) {
	if id == 0 {
		return nil, fmt.Errorf("feedback ID cannot be zero")
	}
	return &Feedback{
		id:          id,
		targetID:    targetID,
		targetTitle: targetTitle,
		thumbs:      thumbs,
		rating:      rating,
		comment:     comment,
		fanName:     fanName,
		fanEmail:    fanEmail,
		createdAt:   createdAt,
	}, nil
}

func (f *Feedback) ID() uint {
	return f.id
}

func (f *Feedback) TargetID() string {
	return f.targetID
}

func (f *Feedback) TargetTitle() string {
	return f.targetTitle
}

func (f *Feedback) Thumbs() *Thumbs {
	return f.thumbs
}

func (f *Feedback) Rating() *int {
	return f.rating
}

func (f *Feedback) Comment() string {
	return f.comment
}

func (f *Feedback) FanName() string {
	return f.fanName
}

func (f *Feedback) FanEmail() string {
	return f.fanEmail
}

func (f *Feedback) CreatedAt() time.Time {
	return f.createdAt
}

func (f *Feedback) SetID(id uint) error {
	if f.id != 0 {
		return fmt.Errorf("feedback ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("feedback ID cannot be zero")
	}
	f.id = id
	return nil
}
