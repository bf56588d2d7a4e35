package domain

import (
	"fmt"

	"github.com/google/uuid"

	"message-service/errors"
)

// NewReassignment creates a reassignment workflow in its initial
// REQUESTED state. REQUESTED can only be set here, never by Transition.
// The target consultant id and all display names are mandatory at
// creation time; confirm/deny later on does not re-check them.
func NewReassignment(toConsultantID uuid.UUID, toConsultantName, fromConsultantName, fromAskerName string) (ReassignmentInfo, error) {
	if toConsultantID == uuid.Nil {
		return ReassignmentInfo{}, fmt.Errorf("%w: target consultant id", errors.ErrIncompleteReassignment)
	}
	if toConsultantName == "" || fromConsultantName == "" || fromAskerName == "" {
		return ReassignmentInfo{}, fmt.Errorf("%w: display names", errors.ErrIncompleteReassignment)
	}

	return ReassignmentInfo{
		ToConsultantID:     toConsultantID,
		ToConsultantName:   toConsultantName,
		FromConsultantName: fromConsultantName,
		FromAskerName:      fromAskerName,
		Status:             ReassignRequested,
	}, nil
}

// Transition applies a status change and returns the updated workflow.
// The only legal transitions are REQUESTED to CONFIRMED and REQUESTED to
// DENIED; CONFIRMED and DENIED are terminal.
func (r ReassignmentInfo) Transition(next ReassignStatus) (ReassignmentInfo, error) {
	if r.Status != ReassignRequested {
		return ReassignmentInfo{}, fmt.Errorf("%w: %s is terminal", errors.ErrIllegalTransition, r.Status)
	}
	if next != ReassignConfirmed && next != ReassignDenied {
		return ReassignmentInfo{}, fmt.Errorf("%w: %s -> %s", errors.ErrIllegalTransition, r.Status, next)
	}

	r.Status = next
	return r, nil
}
