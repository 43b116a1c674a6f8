package services

import (
	"context"
	"time"

	"github.com/firehall/personnel-agent/internal/models"
	"github.com/firehall/personnel-agent/internal/store"
	srvErrors "github.com/firehall/personnel-agent/pkg/errors"
)

const leaveDateLayout = "2006-01-02"

// legacyLeaveFields maps the camelCase spellings an older dashboard revision
// used to the canonical snake_case fields. Normalized once at the boundary
// so only one shape ever reaches the store.
var legacyLeaveFields = map[string]string{
	"leaveType":   "leave_type",
	"startDate":   "start_date",
	"endDate":     "end_date",
	"numDays":     "num_days",
	"personnelId": "personnel_id",
}

type LeaveService struct {
	store *store.Store
}

func NewLeaveService(st *store.Store) *LeaveService {
	return &LeaveService{store: st}
}

// Submit files a leave request in Pending state. The inclusive day count is
// derived from the date range, never trusted from the caller.
func (s *LeaveService) Submit(ctx context.Context, input models.Record) (models.Record, error) {
	rec := normalizeLeaveRecord(input)
	delete(rec, "id")

	personnelID, ok := rec.Int64("personnel_id")
	if !ok {
		return nil, srvErrors.NewValidationError("personnel_id is required")
	}
	rec["personnel_id"] = personnelID

	if rec.String("leave_type") == "" {
		return nil, srvErrors.NewValidationError("leave_type is required")
	}
	numDays, err := inclusiveDays(rec.String("start_date"), rec.String("end_date"))
	if err != nil {
		return nil, err
	}
	rec["num_days"] = numDays
	rec["status"] = models.LeaveStatusPending.Value()
	rec["created_at"] = time.Now().UTC().Format(time.RFC3339)

	return s.store.Records().Add(ctx, store.CollectionLeave, rec)
}

// Update rewrites a request. Only Pending requests may change; the rule is
// enforced here, not by the store.
func (s *LeaveService) Update(ctx context.Context, input models.Record) (models.Record, error) {
	rec := normalizeLeaveRecord(input)
	id, ok := rec.ID()
	if !ok {
		return nil, srvErrors.NewMissingKeyError(store.CollectionLeave)
	}
	current, err := s.store.Records().Get(ctx, store.CollectionLeave, id)
	if err != nil {
		return nil, err
	}
	if current.String("status") != models.LeaveStatusPending.Value() {
		return nil, srvErrors.NewValidationError("only pending leave requests can be modified")
	}
	numDays, err := inclusiveDays(rec.String("start_date"), rec.String("end_date"))
	if err != nil {
		return nil, err
	}
	rec["num_days"] = numDays
	rec["status"] = models.LeaveStatusPending.Value()
	return s.store.Records().Update(ctx, store.CollectionLeave, rec)
}

// Delete withdraws a request. Only Pending requests may be withdrawn.
func (s *LeaveService) Delete(ctx context.Context, key any) error {
	current, err := s.store.Records().Get(ctx, store.CollectionLeave, key)
	if err != nil {
		if srvErrors.IsResourceNotFoundError(err) {
			return nil
		}
		return err
	}
	if current.String("status") != models.LeaveStatusPending.Value() {
		return srvErrors.NewValidationError("only pending leave requests can be withdrawn")
	}
	return s.store.Records().Delete(ctx, store.CollectionLeave, key)
}

func (s *LeaveService) Approve(ctx context.Context, key any) (models.Record, error) {
	return s.decide(ctx, key, models.LeaveStatusApproved)
}

func (s *LeaveService) Reject(ctx context.Context, key any) (models.Record, error) {
	return s.decide(ctx, key, models.LeaveStatusRejected)
}

func (s *LeaveService) decide(ctx context.Context, key any, status models.LeaveStatus) (models.Record, error) {
	rec, err := s.store.Records().Get(ctx, store.CollectionLeave, key)
	if err != nil {
		return nil, err
	}
	if rec.String("status") != models.LeaveStatusPending.Value() {
		return nil, srvErrors.NewValidationError("leave request already decided")
	}
	rec["status"] = status.Value()
	rec["decided_at"] = time.Now().UTC().Format(time.RFC3339)
	return s.store.Records().Update(ctx, store.CollectionLeave, rec)
}

func (s *LeaveService) List(ctx context.Context) ([]models.Record, error) {
	return s.store.Records().GetAll(ctx, store.CollectionLeave)
}

func (s *LeaveService) ListByPersonnel(ctx context.Context, personnelID int64) ([]models.Record, error) {
	return s.store.Records().FindByField(ctx, store.CollectionLeave, "personnel_id", personnelID)
}

func normalizeLeaveRecord(input models.Record) models.Record {
	rec := input.Clone()
	for legacy, canonical := range legacyLeaveFields {
		if v, ok := rec[legacy]; ok {
			if _, exists := rec[canonical]; !exists {
				rec[canonical] = v
			}
			delete(rec, legacy)
		}
	}
	return rec
}

// inclusiveDays counts the days in [start, end], both ends included.
func inclusiveDays(start, end string) (int, error) {
	from, err := time.Parse(leaveDateLayout, start)
	if err != nil {
		return 0, srvErrors.NewValidationError("invalid start_date %q", start)
	}
	to, err := time.Parse(leaveDateLayout, end)
	if err != nil {
		return 0, srvErrors.NewValidationError("invalid end_date %q", end)
	}
	if to.Before(from) {
		return 0, srvErrors.NewValidationError("end_date precedes start_date")
	}
	return int(to.Sub(from).Hours()/24) + 1, nil
}
