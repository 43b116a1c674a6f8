package store

import "fmt"

// Record collections. Each is a schemaless table keyed by an auto-increment
// integer; indexed fields are declared here and materialized as expression
// indexes by the migrations.
const (
	CollectionPersonnel   = "personnel"
	CollectionClearance   = "clearance_requests"
	CollectionInventory   = "inventory"
	CollectionLeave       = "leave_requests"
	CollectionRecruitment = "recruitment"
	CollectionTrainings   = "trainings"
	CollectionInspections = "inspections"
)

// Collection declares a named record collection and its secondary indexes.
type Collection struct {
	Name    string
	Indexes []string // JSON field names indexed via json_extract
}

// Registry is the full set of record collections. Migrations derive the
// schema from it; the record store validates collection names against it.
var Registry = []Collection{
	{Name: CollectionPersonnel, Indexes: []string{"username", "rank"}},
	{Name: CollectionClearance, Indexes: []string{"status"}},
	{Name: CollectionInventory, Indexes: []string{"item_code", "status", "assigned_to"}},
	{Name: CollectionLeave, Indexes: []string{"personnel_id", "status"}},
	{Name: CollectionRecruitment, Indexes: []string{"status"}},
	{Name: CollectionTrainings, Indexes: []string{"personnel_id"}},
	{Name: CollectionInspections, Indexes: []string{"equipment_id", "inspector_id"}},
}

var collectionNames = func() map[string]struct{} {
	names := make(map[string]struct{}, len(Registry))
	for _, c := range Registry {
		names[c.Name] = struct{}{}
	}
	return names
}()

func validateCollection(name string) error {
	if _, ok := collectionNames[name]; !ok {
		return fmt.Errorf("unknown collection %q", name)
	}
	return nil
}
