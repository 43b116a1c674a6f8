// Package handlers implements the HTTP API layer for the personnel agent.
//
// This package contains HTTP handlers that expose the agent's functionality
// via a RESTful API. Handlers delegate business logic to the services layer
// and focus on request validation, response formatting, and HTTP semantics.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────┐
//	│                     HTTP Request (Gin)                          │
//	└─────────────────────────────────────────────────────────────────┘
//	                              │
//	                              ▼
//	┌─────────────────────────────────────────────────────────────────┐
//	│                      Handler (this package)                     │
//	│  - Request validation                                           │
//	│  - Parameter parsing and key coercion                           │
//	│  - Error mapping to HTTP status codes                           │
//	│  - Model-to-API conversion                                      │
//	└─────────────────────────────────────────────────────────────────┘
//	                              │
//	                              ▼
//	┌─────────────────────────────────────────────────────────────────┐
//	│                      Services Layer                             │
//	│  Auth │ Personnel │ Leave │ Clearance │ Inventory │ Training    │
//	│  Inspection │ MedicalRecord │ Recruitment │ Report │ Reconciler │
//	└─────────────────────────────────────────────────────────────────┘
//
// # Handler Structure
//
// All handlers are methods on a single Handler struct that holds service
// dependencies. Routes are registered via RegisterRoutes, which receives a
// RouterGroup prefixed with /api/v1 from the server package.
//
// # API Endpoints
//
// Auth (auth.go):
//
//	┌────────┬───────────────┬─────────────────────────────────────────┐
//	│ Method │ Endpoint      │ Description                             │
//	├────────┼───────────────┼─────────────────────────────────────────┤
//	│ POST   │ /auth/login   │ Authenticate, open the current session  │
//	│ POST   │ /auth/logout  │ Clear the current session               │
//	│ GET    │ /auth/me      │ Session snapshot of the logged-in user  │
//	└────────┴───────────────┴─────────────────────────────────────────┘
//
// Personnel (personnel.go):
//
//	┌────────┬──────────────────────────────────┬──────────────────────┐
//	│ Method │ Endpoint                         │ Description          │
//	├────────┼──────────────────────────────────┼──────────────────────┤
//	│ GET    │ /personnel                       │ List all records     │
//	│ POST   │ /personnel                       │ Register a member    │
//	│ GET    │ /personnel/{id}                  │ Get one record       │
//	│ PUT    │ /personnel/{id}                  │ Update a record      │
//	│ DELETE │ /personnel/{id}                  │ Delete a record      │
//	│ POST   │ /personnel/{id}/promote          │ Change rank          │
//	│ GET    │ /personnel/{id}/trainings        │ Member's trainings   │
//	│ GET    │ /personnel/{id}/leave            │ Member's leave       │
//	│ GET    │ /personnel/{id}/medical-records  │ Member's records     │
//	└────────┴──────────────────────────────────┴──────────────────────┘
//
// Leave (leave.go): submit, edit and withdraw pending requests; approve
// and reject are admin-only decisions.
//
// Clearance (clearance.go): create requests, list them joined with the
// requesting member's name, complete or reject (never deleted).
//
// Inventory (inventory.go): equipment CRUD plus assignment. Assigning
// personnel_id 0 unassigns the item.
//
// Trainings and Inspections (trainings.go, inspections.go): history
// endpoints join personnel and equipment names on read; missing
// references surface as "Unknown" rather than errors.
//
// Medical records (medical.go): multipart upload, metadata listing
// (payload never travels through lists), streamed download with a
// Content-Disposition header, and deletion that also removes the
// mirrored personnel document entry.
//
// Recruitment (recruitment.go): application pipeline; accepting a
// shortlisted candidate registers them as personnel and returns the
// generated credentials once.
//
// Admin (admin.go):
//
//	┌────────┬────────────────────────────┬────────────────────────────┐
//	│ Method │ Endpoint                   │ Description                │
//	├────────┼────────────────────────────┼────────────────────────────┤
//	│ POST   │ /admin/sync                │ Reconciliation pass        │
//	│ POST   │ /admin/migrate             │ One-time backfill          │
//	│ GET    │ /admin/exports/personnel   │ Roster spreadsheet (XLSX)  │
//	│ GET    │ /admin/exports/inventory   │ Inventory spreadsheet      │
//	└────────┴────────────────────────────┴────────────────────────────┘
//
// # Authentication
//
// Every route except login runs behind the AuthRequired middleware,
// which validates the Authorization bearer token and injects the
// caller's identity into the Gin context. RoleRequired guards
// administrative routes.
//
// # Error Handling
//
// Handlers use a consistent error response format:
//
//	{ "error": "error message" }
//
// HTTP Status Code Mapping:
//
//	┌─────────────────────────────┬────────┬──────────────────────────────┐
//	│ Error Type                  │ Status │ When                         │
//	├─────────────────────────────┼────────┼──────────────────────────────┤
//	│ ValidationError             │ 400    │ Invalid request params       │
//	│ MissingKeyError             │ 400    │ Update without an id         │
//	│ InvalidKeyError             │ 400    │ Key cannot be coerced        │
//	│ UnauthorizedError           │ 401    │ Bad credentials              │
//	│ ResourceNotFoundError       │ 404    │ Resource doesn't exist       │
//	│ StorageUnavailableError     │ 503    │ Database unreachable         │
//	│ Internal error              │ 500    │ Unexpected service errors    │
//	└─────────────────────────────┴────────┴──────────────────────────────┘
//
// # Model Conversion
//
// Handlers convert between internal models and API types using
// extension functions defined in api/v1/extension.go:
//
//   - v1.NewSessionUser(models.UserSnapshot) → v1.SessionUser
//   - v1.NewMedicalRecord(models.MedicalRecord) → v1.MedicalRecord
//   - v1.NewSyncReport(models.SyncReport) → v1.SyncReport
//
// Schemaless collection records pass through as JSON objects unchanged.
//
// # Framework
//
// The package uses the Gin web framework. Routes are registered in
// routes.go.
package handlers
