package services

import (
	"context"
	"time"

	"github.com/firehall/personnel-agent/internal/models"
	"github.com/firehall/personnel-agent/internal/store"
	srvErrors "github.com/firehall/personnel-agent/pkg/errors"
)

// ClearanceWithPersonnel is a clearance request joined with the requesting
// personnel's display name. The name is attached at read time from the
// personnel id; it is never stored on the request.
type ClearanceWithPersonnel struct {
	Request       models.Record
	PersonnelName string
}

type ClearanceService struct {
	store *store.Store
}

func NewClearanceService(st *store.Store) *ClearanceService {
	return &ClearanceService{store: st}
}

// Create files a clearance request in Pending state.
func (s *ClearanceService) Create(ctx context.Context, input models.Record) (models.Record, error) {
	rec := input.Clone()
	delete(rec, "id")

	personnelID, ok := rec.Int64("personnel_id")
	if !ok {
		return nil, srvErrors.NewValidationError("personnel_id is required")
	}
	rec["personnel_id"] = personnelID
	if rec.String("type") == "" {
		return nil, srvErrors.NewValidationError("type is required")
	}
	if rec.String("date") == "" {
		rec["date"] = time.Now().UTC().Format(leaveDateLayout)
	}
	rec["status"] = models.ClearanceStatusPending.Value()

	return s.store.Records().Add(ctx, store.CollectionClearance, rec)
}

func (s *ClearanceService) Complete(ctx context.Context, key any) (models.Record, error) {
	return s.decide(ctx, key, models.ClearanceStatusCompleted)
}

func (s *ClearanceService) Reject(ctx context.Context, key any) (models.Record, error) {
	return s.decide(ctx, key, models.ClearanceStatusRejected)
}

// decide moves a pending request to a terminal status. Requests are never
// deleted.
func (s *ClearanceService) decide(ctx context.Context, key any, status models.ClearanceStatus) (models.Record, error) {
	rec, err := s.store.Records().Get(ctx, store.CollectionClearance, key)
	if err != nil {
		return nil, err
	}
	if rec.String("status") != models.ClearanceStatusPending.Value() {
		return nil, srvErrors.NewValidationError("clearance request already decided")
	}
	rec["status"] = status.Value()
	rec["decided_at"] = time.Now().UTC().Format(time.RFC3339)
	return s.store.Records().Update(ctx, store.CollectionClearance, rec)
}

// List returns all requests with the requester name joined in. A missing
// personnel record degrades to "Unknown".
func (s *ClearanceService) List(ctx context.Context) ([]ClearanceWithPersonnel, error) {
	requests, err := s.store.Records().GetAll(ctx, store.CollectionClearance)
	if err != nil {
		return nil, err
	}
	personnel, err := personnelByID(ctx, s.store)
	if err != nil {
		return nil, err
	}

	out := make([]ClearanceWithPersonnel, 0, len(requests))
	for _, req := range requests {
		name := models.UnknownName
		if id, ok := req.Int64("personnel_id"); ok {
			if p, ok := personnel[id]; ok {
				name = models.DisplayName(p)
			}
		}
		out = append(out, ClearanceWithPersonnel{Request: req, PersonnelName: name})
	}
	return out, nil
}

// personnelByID loads the personnel collection into a lookup map keyed by
// record id, shared by every join-on-read accessor.
func personnelByID(ctx context.Context, st *store.Store) (map[int64]models.Record, error) {
	personnel, err := st.Records().GetAll(ctx, store.CollectionPersonnel)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]models.Record, len(personnel))
	for _, p := range personnel {
		if id, ok := p.ID(); ok {
			byID[id] = p
		}
	}
	return byID, nil
}
