package services

import (
	"context"

	"github.com/firehall/personnel-agent/internal/models"
	"github.com/firehall/personnel-agent/internal/store"
	srvErrors "github.com/firehall/personnel-agent/pkg/errors"
)

type TrainingService struct {
	store *store.Store
}

func NewTrainingService(st *store.Store) *TrainingService {
	return &TrainingService{store: st}
}

// Add records a training. The personnel reference is coerced to an integer
// because upstream forms may supply it as a string.
func (s *TrainingService) Add(ctx context.Context, input models.Record) (models.Record, error) {
	rec := input.Clone()
	delete(rec, "id")
	personnelID, ok := rec.Int64("personnel_id")
	if !ok {
		return nil, srvErrors.NewValidationError("personnel_id is required")
	}
	rec["personnel_id"] = personnelID
	return s.store.Records().Add(ctx, store.CollectionTrainings, rec)
}

func (s *TrainingService) Update(ctx context.Context, input models.Record) (models.Record, error) {
	rec := input.Clone()
	if _, ok := rec.ID(); !ok {
		return nil, srvErrors.NewMissingKeyError(store.CollectionTrainings)
	}
	if personnelID, ok := rec.Int64("personnel_id"); ok {
		rec["personnel_id"] = personnelID
	}
	return s.store.Records().Update(ctx, store.CollectionTrainings, rec)
}

func (s *TrainingService) Delete(ctx context.Context, key any) error {
	return s.store.Records().Delete(ctx, store.CollectionTrainings, key)
}

// GetTrainingsWithPersonnel returns every training with its personnel record
// attached. An unmatched reference degrades to an empty record and the
// "Unknown" display name; no referential-integrity error is raised.
func (s *TrainingService) GetTrainingsWithPersonnel(ctx context.Context) ([]models.TrainingWithPersonnel, error) {
	trainings, err := s.store.Records().GetAll(ctx, store.CollectionTrainings)
	if err != nil {
		return nil, err
	}
	personnel, err := personnelByID(ctx, s.store)
	if err != nil {
		return nil, err
	}

	out := make([]models.TrainingWithPersonnel, 0, len(trainings))
	for _, t := range trainings {
		joined := models.TrainingWithPersonnel{
			Training:      t,
			Personnel:     models.Record{},
			PersonnelName: models.UnknownName,
		}
		if id, ok := t.Int64("personnel_id"); ok {
			if p, ok := personnel[id]; ok {
				joined.Personnel = p
				joined.PersonnelName = models.DisplayName(p)
			}
		}
		out = append(out, joined)
	}
	return out, nil
}

// GetTrainingsByPersonnel queries the personnel index rather than scanning
// the collection.
func (s *TrainingService) GetTrainingsByPersonnel(ctx context.Context, personnelID int64) ([]models.Record, error) {
	return s.store.Records().FindByField(ctx, store.CollectionTrainings, "personnel_id", personnelID)
}
