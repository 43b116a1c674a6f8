package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/firehall/personnel-agent/internal/models"
	"github.com/firehall/personnel-agent/internal/store"
	srvErrors "github.com/firehall/personnel-agent/pkg/errors"
)

type RecruitmentService struct {
	store     *store.Store
	personnel *PersonnelService
}

func NewRecruitmentService(st *store.Store, personnel *PersonnelService) *RecruitmentService {
	return &RecruitmentService{store: st, personnel: personnel}
}

// Apply files a candidate intake in Applied state.
func (s *RecruitmentService) Apply(ctx context.Context, input models.Record) (models.Record, error) {
	rec := input.Clone()
	delete(rec, "id")
	if rec.String("first_name") == "" && rec.String("last_name") == "" {
		return nil, srvErrors.NewValidationError("first_name or last_name is required")
	}
	rec["status"] = models.CandidateStatusApplied.Value()
	rec["applied_at"] = time.Now().UTC().Format(time.RFC3339)
	return s.store.Records().Add(ctx, store.CollectionRecruitment, rec)
}

func (s *RecruitmentService) List(ctx context.Context) ([]models.Record, error) {
	return s.store.Records().GetAll(ctx, store.CollectionRecruitment)
}

// Shortlist moves an Applied candidate forward.
func (s *RecruitmentService) Shortlist(ctx context.Context, key any) (models.Record, error) {
	return s.transition(ctx, key, models.CandidateStatusApplied, models.CandidateStatusShortlisted)
}

// Reject is terminal and allowed from any non-terminal state.
func (s *RecruitmentService) Reject(ctx context.Context, key any) (models.Record, error) {
	rec, err := s.store.Records().Get(ctx, store.CollectionRecruitment, key)
	if err != nil {
		return nil, err
	}
	status := models.CandidateStatus(rec.String("status"))
	if status == models.CandidateStatusAccepted || status == models.CandidateStatusRejected {
		return nil, srvErrors.NewValidationError("candidate already decided")
	}
	rec["status"] = models.CandidateStatusRejected.Value()
	rec["decided_at"] = time.Now().UTC().Format(time.RFC3339)
	return s.store.Records().Update(ctx, store.CollectionRecruitment, rec)
}

// Accept hires a shortlisted candidate: a personnel record is registered
// from the candidate's bio fields and the candidate is marked Accepted with
// a back-reference to it.
func (s *RecruitmentService) Accept(ctx context.Context, key any, rank string) (models.Record, *Credentials, error) {
	rec, err := s.store.Records().Get(ctx, store.CollectionRecruitment, key)
	if err != nil {
		return nil, nil, err
	}
	if rec.String("status") != models.CandidateStatusShortlisted.Value() {
		return nil, nil, srvErrors.NewValidationError("only shortlisted candidates can be accepted")
	}

	registration := models.Record{
		"first_name": rec["first_name"],
		"last_name":  rec["last_name"],
		"email":      rec["email"],
		"phone":      rec["phone"],
		"rank":       rank,
	}
	personnel, creds, err := s.personnel.Register(ctx, registration)
	if err != nil {
		return nil, nil, err
	}

	rec["status"] = models.CandidateStatusAccepted.Value()
	rec["personnel_id"] = personnel["id"]
	rec["decided_at"] = time.Now().UTC().Format(time.RFC3339)
	updated, err := s.store.Records().Update(ctx, store.CollectionRecruitment, rec)
	if err != nil {
		return nil, nil, err
	}
	zap.S().Named("recruitment_service").Infow("candidate accepted",
		"candidate", updated["id"], "personnel", personnel["id"])
	return updated, creds, nil
}

func (s *RecruitmentService) transition(ctx context.Context, key any, from, to models.CandidateStatus) (models.Record, error) {
	rec, err := s.store.Records().Get(ctx, store.CollectionRecruitment, key)
	if err != nil {
		return nil, err
	}
	if rec.String("status") != from.Value() {
		return nil, srvErrors.NewValidationError("candidate is not in %s state", from.Value())
	}
	rec["status"] = to.Value()
	return s.store.Records().Update(ctx, store.CollectionRecruitment, rec)
}
