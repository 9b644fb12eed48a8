// internal/application/usecase/servicereq_usecase.go
package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	srdom "velora/internal/domain/servicereq"
)

// Mailer sends plain-text mail (implemented by the SendGrid adapter).
type Mailer interface {
	Send(ctx context.Context, from, to, subject, body string) error
}

// ServiceRequestUsecase accepts the multi-step service-request form and
// stores the result. Confirmation mail is best-effort: a mail failure
// never fails the submission.
type ServiceRequestUsecase struct {
	repo  srdom.Repository
	clock Clock

	// mailer may be nil (mail disabled)
	mailer   Mailer
	fromAddr string
}

func NewServiceRequestUsecase(repo srdom.Repository, mailer Mailer, fromAddr string) *ServiceRequestUsecase {
	return &ServiceRequestUsecase{
		repo:     repo,
		clock:    systemClock{},
		mailer:   mailer,
		fromAddr: strings.TrimSpace(fromAddr),
	}
}

// NewServiceRequestUsecaseWithClock is useful for tests.
func NewServiceRequestUsecaseWithClock(repo srdom.Repository, mailer Mailer, fromAddr string, clock Clock) *ServiceRequestUsecase {
	uc := NewServiceRequestUsecase(repo, mailer, fromAddr)
	if clock != nil {
		uc.clock = clock
	}
	return uc
}

// Submit validates the collected form fields, assigns an id and persists
// the request with status received.
func (uc *ServiceRequestUsecase) Submit(ctx context.Context, userID string, req srdom.Request) (*srdom.Request, error) {
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return nil, ErrNotAuthenticated
	}

	now := uc.clock.Now()
	req.UserID = uid
	req.ID = uuid.NewString()
	req.Status = srdom.StatusReceived
	req.CreatedAt = now
	req.UpdatedAt = now

	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := uc.repo.Save(ctx, &req); err != nil {
		return nil, err
	}

	uc.sendConfirmation(ctx, &req)
	return &req, nil
}

// ListByUser returns the user's requests, newest first.
func (uc *ServiceRequestUsecase) ListByUser(ctx context.Context, userID string) ([]srdom.Request, error) {
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return nil, ErrNotAuthenticated
	}
	return uc.repo.ListByUserID(ctx, uid)
}

func (uc *ServiceRequestUsecase) sendConfirmation(ctx context.Context, req *srdom.Request) {
	if uc.mailer == nil || uc.fromAddr == "" {
		return
	}

	subject := fmt.Sprintf("We received your %s request", req.Service)
	body := fmt.Sprintf(
		"Hello %s,\n\nyour %s request (%s) has been received and will be reviewed shortly.\n\nItem: %s\n",
		req.ContactName, req.Service, req.ID, req.ItemDescription,
	)

	if err := uc.mailer.Send(ctx, uc.fromAddr, req.ContactEmail, subject, body); err != nil {
		log.Printf("[servicereq_usecase] WARN: confirmation mail failed id=%s err=%v", req.ID, err)
	}
}
