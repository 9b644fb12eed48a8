// internal/domain/servicereq/entity.go
package servicereq

import (
	"context"
	"errors"
	"strings"
	"time"
)

var ErrInvalidRequest = errors.New("servicereq: invalid request")

// Status of a service request. Requests enter as received; later
// transitions belong to back-office tooling and are only read here.
type Status string

const (
	StatusReceived   Status = "received"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// ServiceType names the requested service.
type ServiceType string

const (
	ServiceRepair         ServiceType = "repair"
	ServiceAuthentication ServiceType = "authentication"
	ServiceAppraisal      ServiceType = "appraisal"
	ServiceCustomization  ServiceType = "customization"
)

// Request is one submitted multi-step service-request form.
type Request struct {
	ID     string `json:"id" firestore:"id"`
	UserID string `json:"userId" firestore:"userId"`

	Service         ServiceType `json:"service" firestore:"service"`
	ItemDescription string      `json:"itemDescription" firestore:"itemDescription"`
	ContactName     string      `json:"contactName" firestore:"contactName"`
	ContactEmail    string      `json:"contactEmail" firestore:"contactEmail"`
	ContactPhone    string      `json:"contactPhone,omitempty" firestore:"contactPhone"`
	Notes           string      `json:"notes,omitempty" firestore:"notes"`

	Status    Status    `json:"status" firestore:"status"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// Validate checks the fields collected across the form steps.
func (r *Request) Validate() error {
	if r == nil {
		return ErrInvalidRequest
	}
	switch r.Service {
	case ServiceRepair, ServiceAuthentication, ServiceAppraisal, ServiceCustomization:
	default:
		return ErrInvalidRequest
	}
	if strings.TrimSpace(r.UserID) == "" ||
		strings.TrimSpace(r.ItemDescription) == "" ||
		strings.TrimSpace(r.ContactName) == "" ||
		strings.TrimSpace(r.ContactEmail) == "" {
		return ErrInvalidRequest
	}
	return nil
}

// Repository persists service requests.
type Repository interface {
	Save(ctx context.Context, r *Request) error

	// ListByUserID returns the user's requests, newest first.
	ListByUserID(ctx context.Context, userID string) ([]Request, error)
}
