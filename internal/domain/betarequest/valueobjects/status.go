package valueobjects

type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusApproved RequestStatus = "approved"
	StatusDenied   RequestStatus = "denied"
)

var validRequestStatuses = map[RequestStatus]bool{
	StatusPending:  true,
	StatusApproved: true,
	StatusDenied:   true,
}

func (s RequestStatus) String() string {
	return string(s)
}

func (s RequestStatus) IsValid() bool {
	return validRequestStatuses[s]
}

// IsDecision reports whether s is a reviewable outcome. Review never moves a
// request back to pending; undo is approving or denying again.
func (s RequestStatus) IsDecision() bool {
	return s == StatusApproved || s == StatusDenied
}

func (s RequestStatus) IsApproved() bool {
	return s == StatusApproved
}

func (s RequestStatus) IsPending() bool {
	return s == StatusPending
}

// NewRequestStatus parses a stored status string.
func NewRequestStatus(s string) (RequestStatus, bool) {
	status := RequestStatus(s)
	return status, status.IsValid()
}
