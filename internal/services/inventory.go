package services

import (
	"context"
	"time"

	"github.com/firehall/personnel-agent/internal/models"
	"github.com/firehall/personnel-agent/internal/store"
	srvErrors "github.com/firehall/personnel-agent/pkg/errors"
)

// UnassignedName is the display placeholder for equipment assigned to
// nobody.
const UnassignedName = "Unassigned"

// legacyInventoryFields maps older camelCase spellings to the canonical
// snake_case fields, same boundary adapter as the leave module.
var legacyInventoryFields = map[string]string{
	"itemName":     "item_name",
	"itemCode":     "item_code",
	"purchaseDate": "purchase_date",
	"lastChecked":  "last_checked",
	"assignedTo":   "assigned_to",
}

// InventoryWithAssignee is an inventory item joined with the display name
// of the personnel it is assigned to.
type InventoryWithAssignee struct {
	Item         models.Record
	AssignedName string
}

type InventoryService struct {
	store *store.Store
}

func NewInventoryService(st *store.Store) *InventoryService {
	return &InventoryService{store: st}
}

// Add registers an inventory item. Assignment is by personnel id; the
// display name is joined at read time so a rename never breaks the
// reference.
func (s *InventoryService) Add(ctx context.Context, input models.Record) (models.Record, error) {
	rec := normalizeInventoryRecord(input)
	delete(rec, "id")
	if rec.String("item_name") == "" {
		return nil, srvErrors.NewValidationError("item_name is required")
	}
	if rec.String("status") == "" {
		rec["status"] = models.InventoryStatusGood.Value()
	}
	rec["last_checked"] = time.Now().UTC().Format(leaveDateLayout)
	return s.store.Records().Add(ctx, store.CollectionInventory, rec)
}

func (s *InventoryService) Update(ctx context.Context, input models.Record) (models.Record, error) {
	rec := normalizeInventoryRecord(input)
	if _, ok := rec.ID(); !ok {
		return nil, srvErrors.NewMissingKeyError(store.CollectionInventory)
	}
	return s.store.Records().Update(ctx, store.CollectionInventory, rec)
}

func (s *InventoryService) Delete(ctx context.Context, key any) error {
	return s.store.Records().Delete(ctx, store.CollectionInventory, key)
}

func (s *InventoryService) Get(ctx context.Context, key any) (models.Record, error) {
	return s.store.Records().Get(ctx, store.CollectionInventory, key)
}

// Assign hands an item to a personnel record; a zero id unassigns it.
func (s *InventoryService) Assign(ctx context.Context, key any, personnelID int64) (models.Record, error) {
	rec, err := s.store.Records().Get(ctx, store.CollectionInventory, key)
	if err != nil {
		return nil, err
	}
	if personnelID == 0 {
		delete(rec, "assigned_to")
	} else {
		if _, err := s.store.Records().Get(ctx, store.CollectionPersonnel, personnelID); err != nil {
			return nil, err
		}
		rec["assigned_to"] = personnelID
	}
	return s.store.Records().Update(ctx, store.CollectionInventory, rec)
}

// List returns all items with the assignee name joined in; items assigned
// to nobody, or to a personnel record that no longer exists, degrade to
// "Unassigned".
func (s *InventoryService) List(ctx context.Context) ([]InventoryWithAssignee, error) {
	items, err := s.store.Records().GetAll(ctx, store.CollectionInventory)
	if err != nil {
		return nil, err
	}
	personnel, err := personnelByID(ctx, s.store)
	if err != nil {
		return nil, err
	}

	out := make([]InventoryWithAssignee, 0, len(items))
	for _, item := range items {
		name := UnassignedName
		if id, ok := item.Int64("assigned_to"); ok && id != 0 {
			if p, ok := personnel[id]; ok {
				name = models.DisplayName(p)
			}
		}
		out = append(out, InventoryWithAssignee{Item: item, AssignedName: name})
	}
	return out, nil
}

func normalizeInventoryRecord(input models.Record) models.Record {
	rec := input.Clone()
	for legacy, canonical := range legacyInventoryFields {
		if v, ok := rec[legacy]; ok {
			if _, exists := rec[canonical]; !exists {
				rec[canonical] = v
			}
			delete(rec, legacy)
		}
	}
	if id, ok := rec.Int64("assigned_to"); ok {
		rec["assigned_to"] = id
	}
	return rec
}
