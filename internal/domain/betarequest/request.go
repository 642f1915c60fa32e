// Package betarequest holds the beta-request aggregate: the approval
// lifecycle every visionary passes through before owning circles, plus the
// linkage to the externally issued account identifier.
package betarequest

import (
	"fmt"
	"strings"
	"time"

	vo "dropcircle/internal/domain/betarequest/valueobjects"
)

const (
	MaxNameLength  = 120
	MaxEmailLength = 254
	MaxNoteLength  = 2000
)

// NormalizeEmail lower-cases and trims an email address. Every uniqueness
// check and lookup goes through this; the raw form is never stored.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// BetaRequest is the aggregate for one prospective visionary. Never deleted;
// status may be reversed by an operator at any time.
type BetaRequest struct {
	id         uint
	sid        string
	name       string
	email      string
	note       string
	status     vo.RequestStatus
	accountID  string
	createdAt  time.Time
	reviewedAt *time.Time
	updatedAt  time.Time
}

func NewBetaRequest(sid, name, email, note string) (*BetaRequest, error) {
	if len(sid) == 0 {
		return nil, fmt.Errorf("request SID is required")
	}
	name = strings.TrimSpace(name)
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > MaxNameLength {
		return nil, fmt.Errorf("name exceeds maximum length of %d characters", MaxNameLength)
	}
	email = NormalizeEmail(email)
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}
	if len(email) > MaxEmailLength {
		return nil, fmt.Errorf("email exceeds maximum length of %d characters", MaxEmailLength)
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("email is malformed")
	}
	if len(note) > MaxNoteLength {
		return nil, fmt.Errorf("note exceeds maximum length of %d characters", MaxNoteLength)
	}

	now := time.Now().UTC()
	return &BetaRequest{
		sid:       sid,
		name:      name,
		email:     email,
		note:      note,
		status:    vo.StatusPending,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructBetaRequest(
	id uint,
	sid string,
	name string,
	email string,
	note string,
	status vo.RequestStatus,
	accountID string,
	createdAt time.Time,
	reviewedAt *time.Time,
	updatedAt time.Time,
) (*BetaRequest, error) {
	if id == 0 {
		return nil, fmt.Errorf("request ID cannot be zero")
	}
	if len(sid) == 0 {
		return nil, fmt.Errorf("request SID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &BetaRequest{
		id:         id,
		sid:        sid,
		name:       name,
		email:      email,
		note:       note,
		status:     status,
		accountID:  accountID,
		createdAt:  createdAt,
		reviewedAt: reviewedAt,
		updatedAt:  updatedAt,
	}, nil
}

func (r *BetaRequest) ID() uint {
	return r.id
}

func (r *BetaRequest) SID() string {
	return r.sid
}

func (r *BetaRequest) Name() string {
	return r.name
}

func (r *BetaRequest) Email() string {
	return r.email
}

func (r *BetaRequest) Note() string {
	return r.note
}

func (r *BetaRequest) Status() vo.RequestStatus {
	return r.status
}

// AccountID returns the linked external account identifier, or "" while the
// request is unprovisioned.
func (r *BetaRequest) AccountID() string {
	return r.accountID
}

func (r *BetaRequest) IsProvisioned() bool {
	return r.accountID != ""
}

func (r *BetaRequest) CreatedAt() time.Time {
	return r.createdAt
}

func (r *BetaRequest) ReviewedAt() *time.Time {
	return r.reviewedAt
}

func (r *BetaRequest) UpdatedAt() time.Time {
	return r.updatedAt
}

func (r *BetaRequest) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("request ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("request ID cannot be zero")
	}
	r.id = id
	return nil
}

// Review applies an operator decision. Re-applying the current decision is an
// observable no-op apart from the reviewed timestamp, which is always
// restamped. Reversal (approved to denied and back) is an intended operator
// override, callable regardless of current status.
func (r *BetaRequest) Review(decision vo.RequestStatus) error {
	if !decision.IsDecision() {
		return fmt.Errorf("invalid review decision: %s", decision)
	}

	now := time.Now().UTC()
	r.status = decision
	r.reviewedAt = &now
	r.updatedAt = now
	return nil
}

// ReplaceNote replaces the requester note verbatim. Last write wins; there
// are no append or merge semantics.
func (r *BetaRequest) ReplaceNote(note string) error {
	if len(note) > MaxNoteLength {
		return fmt.Errorf("note exceeds maximum length of %d characters", MaxNoteLength)
	}
	r.note = note
	r.updatedAt = time.Now().UTC()
	return nil
}

// Provision records the externally issued account identifier. Credentials are
// created in the identity provider out-of-band; this only records that the
// linkage happened. Only approved requests can be provisioned. Re-recording
// the same identifier is a no-op; pointing an already-linked request at a
// different account is rejected.
func (r *BetaRequest) Provision(accountID string) error {
	accountID = strings.TrimSpace(accountID)
	if len(accountID) == 0 {
		return fmt.Errorf("account ID is required")
	}
	if !r.status.IsApproved() {
		return fmt.Errorf("only approved requests can be provisioned, current status: %s", r.status)
	}
	if r.accountID != "" && r.accountID != accountID {
		return fmt.Errorf("request is already linked to a different account")
	}

	r.accountID = accountID
	r.updatedAt = time.Now().UTC()
	return nil
}
