package services

import (
	"context"
	"time"

	"github.com/firehall/personnel-agent/internal/models"
	"github.com/firehall/personnel-agent/internal/store"
	srvErrors "github.com/firehall/personnel-agent/pkg/errors"
)

// recentInspectionWindow is the trailing window of GetRecentInspections.
const recentInspectionWindow = 30 * 24 * time.Hour

type InspectionService struct {
	store *store.Store
}

func NewInspectionService(st *store.Store) *InspectionService {
	return &InspectionService{store: st}
}

// Add records an equipment inspection. Both references are coerced to
// integers before persisting.
func (s *InspectionService) Add(ctx context.Context, input models.Record) (models.Record, error) {
	rec := input.Clone()
	delete(rec, "id")

	equipmentID, ok := rec.Int64("equipment_id")
	if !ok {
		return nil, srvErrors.NewValidationError("equipment_id is required")
	}
	inspectorID, ok := rec.Int64("inspector_id")
	if !ok {
		return nil, srvErrors.NewValidationError("inspector_id is required")
	}
	rec["equipment_id"] = equipmentID
	rec["inspector_id"] = inspectorID
	if rec.String("inspection_date") == "" {
		rec["inspection_date"] = time.Now().UTC().Format(leaveDateLayout)
	}
	return s.store.Records().Add(ctx, store.CollectionInspections, rec)
}

func (s *InspectionService) Delete(ctx context.Context, key any) error {
	return s.store.Records().Delete(ctx, store.CollectionInspections, key)
}

// GetInspectionsWithDetails joins each inspection with the inspected
// equipment and the inspecting personnel. Unmatched references degrade to
// empty records and "Unknown" names.
func (s *InspectionService) GetInspectionsWithDetails(ctx context.Context) ([]models.InspectionWithDetails, error) {
	inspections, err := s.store.Records().GetAll(ctx, store.CollectionInspections)
	if err != nil {
		return nil, err
	}
	equipment, err := recordsByID(ctx, s.store, store.CollectionInventory)
	if err != nil {
		return nil, err
	}
	personnel, err := personnelByID(ctx, s.store)
	if err != nil {
		return nil, err
	}

	out := make([]models.InspectionWithDetails, 0, len(inspections))
	for _, insp := range inspections {
		joined := models.InspectionWithDetails{
			Inspection:    insp,
			Equipment:     models.Record{},
			Inspector:     models.Record{},
			EquipmentName: models.UnknownName,
			InspectorName: models.UnknownName,
		}
		if id, ok := insp.Int64("equipment_id"); ok {
			if item, ok := equipment[id]; ok {
				joined.Equipment = item
				if name := item.String("item_name"); name != "" {
					joined.EquipmentName = name
				}
			}
		}
		if id, ok := insp.Int64("inspector_id"); ok {
			if p, ok := personnel[id]; ok {
				joined.Inspector = p
				joined.InspectorName = models.DisplayName(p)
			}
		}
		out = append(out, joined)
	}
	return out, nil
}

func (s *InspectionService) GetInspectionsByEquipment(ctx context.Context, equipmentID int64) ([]models.Record, error) {
	return s.store.Records().FindByField(ctx, store.CollectionInspections, "equipment_id", equipmentID)
}

func (s *InspectionService) GetInspectionsByInspector(ctx context.Context, inspectorID int64) ([]models.Record, error) {
	return s.store.Records().FindByField(ctx, store.CollectionInspections, "inspector_id", inspectorID)
}

// GetRecentInspections returns inspections dated within the trailing 30
// days of now, lower bound inclusive. The window is recomputed per call,
// never persisted.
func (s *InspectionService) GetRecentInspections(ctx context.Context, now time.Time) ([]models.Record, error) {
	inspections, err := s.store.Records().GetAll(ctx, store.CollectionInspections)
	if err != nil {
		return nil, err
	}
	cutoff := now.Add(-recentInspectionWindow)

	recent := make([]models.Record, 0, len(inspections))
	for _, insp := range inspections {
		date, err := time.Parse(leaveDateLayout, insp.String("inspection_date"))
		if err != nil {
			continue
		}
		if !date.Before(cutoff.Truncate(24 * time.Hour)) {
			recent = append(recent, insp)
		}
	}
	return recent, nil
}

func recordsByID(ctx context.Context, st *store.Store, collection string) (map[int64]models.Record, error) {
	records, err := st.Records().GetAll(ctx, collection)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]models.Record, len(records))
	for _, rec := range records {
		if id, ok := rec.ID(); ok {
			byID[id] = rec
		}
	}
	return byID, nil
}
