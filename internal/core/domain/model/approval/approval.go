package approval

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/tour"
	"shipping/internal/pkg/errs"
)

// Status of an approval request. Approved and Rejected are final.
type Status string

const (
	Pending  Status = "pending"
	Approved Status = "approved"
	Rejected Status = "rejected"
)

func ParseStatus(s string) (Status, error) {
	switch st := Status(strings.ToLower(strings.TrimSpace(s))); st {
	case Pending, Approved, Rejected:
		return st, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("approval status", fmt.Errorf("%q is not a valid status", s))
	}
}

func (s Status) String() string {
	return string(s)
}

var (
	ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest or RestoreRequest constructor")

	// ErrTourIsPublic is returned when approval is requested for a public tour.
	ErrTourIsPublic = fmt.Errorf("%w: public tours do not need approval", errs.ErrValueIsInvalid)
)

// Request asks a private tour's carrier to let a client book it.
type Request struct {
	id        kernel.UUID
	tourID    int64
	clientID  kernel.UUID
	status    Status
	message   string
	createdAt time.Time
	decidedAt *time.Time

	isConstructed bool
}

// NewRequest opens a pending request of client for the private tour tr.
func NewRequest(tr *tour.Tour, clientID kernel.UUID, message string, now time.Time) (*Request, error) {
	if err := tr.Validate(); err != nil {
		return nil, err
	}
	if !tr.IsPrivate() {
		return nil, ErrTourIsPublic
	}
	if err := clientID.Validate(); err != nil {
		return nil, err
	}
	return &Request{
		id:            kernel.NewUUID(),
		tourID:        tr.ID(),
		clientID:      clientID,
		status:        Pending,
		message:       strings.TrimSpace(message),
		createdAt:     now.UTC(),
		isConstructed: true,
	}, nil
}

func RestoreRequest(
	id kernel.UUID,
	tourID int64,
	clientID kernel.UUID,
	status Status,
	message string,
	createdAt time.Time,
	decidedAt *time.Time,
) (*Request, error) {
	_, statusErr := ParseStatus(string(status))
	if err := errors.Join(id.Validate(), clientID.Validate(), statusErr); err != nil {
		return nil, err
	}
	return &Request{
		id:            id,
		tourID:        tourID,
		clientID:      clientID,
		status:        status,
		message:       message,
		createdAt:     createdAt,
		decidedAt:     decidedAt,
		isConstructed: true,
	}, nil
}

func (r *Request) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRequestIsNotConstructed
	}
	return nil
}

func (r *Request) ID() kernel.UUID {
	return r.id
}

func (r *Request) TourID() int64 {
	return r.tourID
}

func (r *Request) ClientID() kernel.UUID {
	return r.clientID
}

func (r *Request) Status() Status {
	return r.status
}

func (r *Request) Message() string {
	return r.message
}

func (r *Request) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Request) DecidedAt() *time.Time {
	return r.decidedAt
}

func (r *Request) IsApproved() bool {
	return r.status == Approved
}

func (r *Request) IsPending() bool {
	return r.status == Pending
}

// Decide records the carrier's answer. Only pending requests can be decided.
func (r *Request) Decide(target Status, now time.Time) error {
	if target != Approved && target != Rejected {
		return errs.NewInvalidTransitionError("approval request", r.status.String(), target.String())
	}
	if r.status != Pending {
		return errs.NewInvalidTransitionErrorWithCause("approval request", r.status.String(), target.String(),
			errors.New("request was already decided"))
	}
	decided := now.UTC()
	r.status = target
	r.decidedAt = &decided
	return nil
}
