// Package circle holds the circle aggregate: a quota-limited content
// container with a binary live/offline reachability gate. The circle SID is
// the fan invite capability, so it is non-sequential by construction.
package circle

import (
	"fmt"
	"strings"
	"time"
)

const (
	// MaxPerAccount is the circle quota, enforced at creation time only.
	MaxPerAccount = 3

	MaxTitleLength = 120
)

type Circle struct {
	id             uint
	sid            string
	title          string
	ownerAccountID string
	live           bool
	createdAt      time.Time
	updatedAt      time.Time
}

// NewCircle creates an offline circle. Nothing is fan-reachable until the
// owner explicitly publishes it.
func NewCircle(sid, title, ownerAccountID string) (*Circle, error) {
	if len(sid) == 0 {
		return nil, fmt.Errorf("circle SID is required")
	}
	title = strings.TrimSpace(title)
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > MaxTitleLength {
		return nil, fmt.Errorf("title exceeds maximum length of %d characters", MaxTitleLength)
	}
	if len(ownerAccountID) == 0 {
		return nil, fmt.Errorf("owner account ID is required")
	}

	now := time.Now().UTC()
	return &Circle{
		sid:            sid,
		title:          title,
		ownerAccountID: ownerAccountID,
		live:           false,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructCircle(
	id uint,
	sid string,
	title string,
	ownerAccountID string,
	live bool,
	createdAt time.Time,
	updatedAt time.Time,
) (*Circle, error) {
	if id == 0 {
		return nil, fmt.Errorf("circle ID cannot be zero")
	}
	if len(sid) == 0 {
		return nil, fmt.Errorf("circle SID is required")
	}
	if len(ownerAccountID) == 0 {
		return nil, fmt.Errorf("owner account ID is required")
	}

	return &Circle{
		id:             id,
		sid:            sid,
		title:          title,
		ownerAccountID: ownerAccountID,
		live:           live,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (c *Circle) ID() uint {
	return c.id
}

func (c *Circle) SID() string {
	return c.sid
}

func (c *Circle) Title() string {
	return c.title
}

func (c *Circle) OwnerAccountID() string {
	return c.ownerAccountID
}

// IsLive reports the reachability gate. No intermediate states.
func (c *Circle) IsLive() bool {
	return c.live
}

func (c *Circle) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Circle) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Circle) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("circle ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("circle ID cannot be zero")
	}
	c.id = id
	return nil
}

// IsOwnedBy reports whether accountID owns this circle.
func (c *Circle) IsOwnedBy(accountID string) bool {
	return c.ownerAccountID == accountID
}

func (c *Circle) Rename(title string) error {
	title = strings.TrimSpace(title)
	if len(title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(title) > MaxTitleLength {
		return fmt.Errorf("title exceeds maximum length of %d characters", MaxTitleLength)
	}
	c.title = title
	c.updatedAt = time.Now().UTC()
	return nil
}

// SetLive flips the reachability gate. Setting the current value is a no-op
// result but still bumps the update timestamp; last writer wins.
func (c *Circle) SetLive(live bool) {
	c.live = live
	c.updatedAt = time.Now().UTC()
}
