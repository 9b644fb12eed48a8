// internal/adapters/out/firestore/serviceRequest_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"sort"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	srdom "velora/internal/domain/servicereq"
)

// ServiceRequestRepositoryFS implements servicereq.Repository.
// Collection "serviceRequests", docId = request id (uuid).
type ServiceRequestRepositoryFS struct {
	Client *firestore.Client
}

func NewServiceRequestRepositoryFS(client *firestore.Client) *ServiceRequestRepositoryFS {
	return &ServiceRequestRepositoryFS{Client: client}
}

func (r *ServiceRequestRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("serviceRequests")
}

func (r *ServiceRequestRepositoryFS) Save(ctx context.Context, req *srdom.Request) error {
	if r == nil || r.Client == nil {
		return errors.New("serviceRequest_repository_fs: firestore client is nil")
	}
	if req == nil {
		return errors.New("serviceRequest_repository_fs: request is nil")
	}
	id := strings.TrimSpace(req.ID)
	if id == "" {
		return errors.New("serviceRequest_repository_fs: request id is empty")
	}

	_, err := r.col().Doc(id).Set(ctx, req)
	return err
}

// ListByUserID returns the user's requests, newest first.
// Sorting happens client-side so the query needs no composite index.
func (r *ServiceRequestRepositoryFS) ListByUserID(ctx context.Context, userID string) ([]srdom.Request, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("serviceRequest_repository_fs: firestore client is nil")
	}
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return nil, errors.New("serviceRequest_repository_fs: userID is empty")
	}

	iter := r.col().Where("userId", "==", uid).Documents(ctx)
	defer iter.Stop()

	var out []srdom.Request
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		req := serviceRequestFromData(snap.Data())
		req.ID = snap.Ref.ID
		out = append(out, req)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func serviceRequestFromData(raw map[string]any) srdom.Request {
	if raw == nil {
		return srdom.Request{}
	}

	req := srdom.Request{
		UserID:          strings.TrimSpace(asString(raw["userId"])),
		Service:         srdom.ServiceType(strings.TrimSpace(asString(raw["service"]))),
		ItemDescription: strings.TrimSpace(asString(raw["itemDescription"])),
		ContactName:     strings.TrimSpace(asString(raw["contactName"])),
		ContactEmail:    strings.TrimSpace(asString(raw["contactEmail"])),
		ContactPhone:    strings.TrimSpace(asString(raw["contactPhone"])),
		Notes:           strings.TrimSpace(asString(raw["notes"])),
	}

	switch srdom.Status(strings.TrimSpace(asString(raw["status"]))) {
	case srdom.StatusInProgress:
		req.Status = srdom.StatusInProgress
	case srdom.StatusCompleted:
		req.Status = srdom.StatusCompleted
	default:
		req.Status = srdom.StatusReceived
	}

	if t, ok := asTime(raw["createdAt"]); ok {
		req.CreatedAt = t
	}
	if t, ok := asTime(raw["updatedAt"]); ok {
		req.UpdatedAt = t
	}
	return req
}
