package services

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/firehall/personnel-agent/internal/models"
	"github.com/firehall/personnel-agent/internal/store"
)

// maxApplyAttempts bounds the retries of a single plan entry before it is
// recorded as a failure and the pass moves on.
const maxApplyAttempts = 3

// Reconciler keeps the medical records collection converged with the
// medical documents embedded in personnel records. The embedded documents
// are the source of truth; medical records are a derived cache.
//
// A pass is plan-then-apply: the full diff between the two collections is
// computed first, then every entry is applied independently. A failing entry
// is retried with backoff, recorded in the report, and never aborts the rest
// of the plan, so a transient fault leaves at most the failed subset to the
// next pass.
type Reconciler struct {
	store *store.Store
}

func NewReconciler(st *store.Store) *Reconciler {
	return &Reconciler{store: st}
}

type syncAdd struct {
	key models.DocumentKey
	doc models.Document
}

type syncPlan struct {
	adds    []syncAdd
	removes []models.DocumentKey
}

func (p *syncPlan) empty() bool {
	return len(p.adds) == 0 && len(p.removes) == 0
}

// Migrate is the one-shot pass that seeds the medical records collection
// from the personnel documents. Intended to run once after an upgrade; it
// is the same convergence as Sync and is safe to re-run.
func (r *Reconciler) Migrate(ctx context.Context) (*models.SyncReport, error) {
	return r.run(ctx, zap.S().Named("reconciler").With("pass", "migration"))
}

// Sync is the periodic two-way convergence pass: medical records without a
// matching personnel document are deleted, personnel medical documents
// without a record are mirrored in.
func (r *Reconciler) Sync(ctx context.Context) (*models.SyncReport, error) {
	return r.run(ctx, zap.S().Named("reconciler").With("pass", "sync"))
}

func (r *Reconciler) run(ctx context.Context, log *zap.SugaredLogger) (*models.SyncReport, error) {
	plan, err := r.buildPlan(ctx, log)
	if err != nil {
		return nil, err
	}
	report := &models.SyncReport{}
	if plan.empty() {
		log.Debug("collections already converged")
		return report, nil
	}
	r.apply(ctx, plan, report, log)

	log.Infow("reconciliation pass finished",
		"added", report.Added, "removed", report.Removed, "failed", len(report.Failures))
	return report, nil
}

// buildPlan reads both collections and computes the full set difference.
func (r *Reconciler) buildPlan(ctx context.Context, log *zap.SugaredLogger) (*syncPlan, error) {
	personnel, err := r.store.Records().GetAll(ctx, store.CollectionPersonnel)
	if err != nil {
		return nil, err
	}
	records, err := r.store.MedicalRecords().List(ctx)
	if err != nil {
		return nil, err
	}

	existing := make(map[models.DocumentKey]struct{}, len(records))
	for _, rec := range records {
		existing[rec.Key()] = struct{}{}
	}

	desired := make(map[models.DocumentKey]struct{})
	plan := &syncPlan{}
	for _, p := range personnel {
		id, ok := p.ID()
		if !ok {
			continue
		}
		for _, doc := range p.Documents() {
			if !doc.IsMedical() {
				continue
			}
			key := models.DocumentKey{PersonnelID: id, DocumentName: doc.Name}
			if _, dup := desired[key]; dup {
				// same document name twice under one person; the second
				// entry cannot be keyed and is skipped
				log.Warnw("duplicate medical document skipped",
					"personnel", id, "document", doc.Name)
				continue
			}
			desired[key] = struct{}{}
			if _, ok := existing[key]; !ok {
				plan.adds = append(plan.adds, syncAdd{key: key, doc: doc})
			}
		}
	}

	for _, rec := range records {
		if _, ok := desired[rec.Key()]; !ok {
			plan.removes = append(plan.removes, rec.Key())
		}
	}
	return plan, nil
}

// apply executes the plan, removals first, mirroring the original
// migration's order so a rename shows up as delete-then-insert.
func (r *Reconciler) apply(ctx context.Context, plan *syncPlan, report *models.SyncReport, log *zap.SugaredLogger) {
	for _, key := range plan.removes {
		removed, err := r.applyWithRetry(ctx, func() (int64, error) {
			return r.store.MedicalRecords().DeleteByKey(ctx, key)
		})
		if err != nil {
			log.Errorw("failed to remove stale medical record", "key", key, "error", err)
			report.Failures = append(report.Failures, models.SyncFailure{
				Action: models.SyncActionRemove, Key: key, Err: err,
			})
			continue
		}
		report.Removed += int(removed)
	}

	for _, add := range plan.adds {
		rec := newMirroredRecord(add)
		_, err := r.applyWithRetry(ctx, func() (int64, error) {
			return 0, r.store.MedicalRecords().Insert(ctx, rec)
		})
		if err != nil {
			log.Errorw("failed to mirror medical document", "key", add.key, "error", err)
			report.Failures = append(report.Failures, models.SyncFailure{
				Action: models.SyncActionAdd, Key: add.key, Err: err,
			})
			continue
		}
		report.Added++
		log.Debugw("medical document mirrored",
			"personnel", add.key.PersonnelID, "document", add.key.DocumentName)
	}
}

func (r *Reconciler) applyWithRetry(ctx context.Context, op func() (int64, error)) (int64, error) {
	return backoff.Retry(ctx, op,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(maxApplyAttempts))
}

// newMirroredRecord builds the derived medical record for a personnel
// document. Mirrored entries carry no file payload; the type is inferred
// from the document name.
func newMirroredRecord(add syncAdd) *models.MedicalRecord {
	uploadDate := time.Now().UTC()
	if add.doc.UploadedAt != "" {
		if t, err := time.Parse(time.RFC3339, add.doc.UploadedAt); err == nil {
			uploadDate = t
		}
	}
	return &models.MedicalRecord{
		ID:           uuid.NewString(),
		PersonnelID:  add.key.PersonnelID,
		DocumentName: add.key.DocumentName,
		RecordType:   models.RecordTypeFromName(add.key.DocumentName),
		UploadDate:   uploadDate,
	}
}
