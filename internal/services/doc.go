// Package services implements the business logic layer for the personnel agent.
//
// This package contains the domain accessors sitting between the HTTP
// handlers and the record store. The store persists schemaless records; all
// field discipline lives here: numeric coercion of foreign-key fields on
// write, join-on-read lookups, derived fields, and the state rules of each
// workflow.
//
// # Service Dependency Graph
//
//	Handlers (HTTP endpoints)
//	    │
//	    ▼
//	Services Layer
//	    ├── PersonnelService ───► Store
//	    ├── AuthService ────────► Store (session + personnel)
//	    ├── LeaveService ───────► Store
//	    ├── ClearanceService ───► Store
//	    ├── InventoryService ───► Store
//	    ├── TrainingService ────► Store
//	    ├── InspectionService ──► Store
//	    ├── MedicalRecordService► Store
//	    ├── RecruitmentService ─► Store, PersonnelService
//	    ├── ReportService ──────► Store, InventoryService
//	    └── Reconciler ─────────► Store
//
// # Conventions
//
// Foreign-key fields (personnel_id, equipment_id, inspector_id,
// assigned_to) are coerced to integers before persisting; upstream forms
// may supply them as strings.
//
// Join-on-read accessors build an in-memory map keyed by record id and
// attach the matched record to each row. An unmatched reference is not an
// error: the row degrades to an empty record and the "Unknown" placeholder.
//
// Legacy camelCase field spellings are normalized to the canonical
// snake_case shape at the service boundary; only one shape reaches the
// store.
//
// # Reconciler
//
// The Reconciler converges the medical records collection with the medical
// documents embedded in personnel records, treating the embedded documents
// as the source of truth. Each pass computes the full diff up front, then
// applies every entry independently with bounded retries; failures are
// recorded per item in the SyncReport so a caller can retry just the failed
// subset. See reconciler.go.
//
// # Thread Safety
//
// All services are stateless facades over the store; concurrent use is
// safe through the underlying single-connection database. The reconciler
// takes no lock against concurrent dashboard writes: a document added mid-
// pass may be missed and picked up by the next pass. Convergent, not
// atomic.
package services
