// Package store implements the data access layer for the personnel agent.
//
// This package provides persistent storage using an embedded SQLite database,
// combining schemaless record collections for the dashboard entities with
// typed tables for the session snapshot and the medical records collection.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────┐
//	│                         Store (facade)                          │
//	├────────────────────┬────────────────────┬───────────────────────┤
//	│    RecordStore     │    SessionStore    │  MedicalRecordStore   │
//	│         ▼          │         ▼          │          ▼            │
//	│ personnel,         │      session       │    medical_records    │
//	│ clearance_requests,│   (single row)     │    (typed, BLOB)      │
//	│ inventory,         │                    │                       │
//	│ leave_requests,    │                    │                       │
//	│ recruitment,       │                    │                       │
//	│ trainings,         │                    │                       │
//	│ inspections        │                    │                       │
//	└────────────────────┴────────────────────┴───────────────────────┘
//
// # Record Collections
//
// Each collection declared in the Registry is one table of the shape
//
//	<collection> (
//	    id   INTEGER PRIMARY KEY AUTOINCREMENT,
//	    data TEXT NOT NULL          -- JSON document
//	)
//
// The record key lives only in the id column; it is stripped before the
// document is serialized and reattached on read. Secondary indexes are
// expression indexes over json_extract(data, '$.<field>'), created for the
// fields each Collection declares.
//
// RecordStore implements the collection-agnostic primitives:
//
//   - GetAll(ctx, collection) — all records in key order, empty slice when empty
//   - Add(ctx, collection, record) — assigns a key, returns the stored record
//   - Update(ctx, collection, record) — wholesale overwrite keyed by record id
//   - Delete(ctx, collection, key) — key normalization, no-op on absent keys
//   - FindByField(ctx, collection, field, value) — secondary index lookup
//
// Personnel records are the one collection with a write-side default: a
// missing documents field is initialized to an empty array.
//
// # SessionStore
//
// A single fixed-key row holding the last authenticated user snapshot.
// Uses the UPSERT pattern: INSERT ... ON CONFLICT (key) DO UPDATE.
//
// # MedicalRecordStore
//
// Typed table keyed by UUID. The file payload is a BLOB column persisted
// with the metadata in one record; listings select the metadata columns only
// and single-record Get returns the payload for downloads.
//
// List uses the functional options pattern; options can be combined:
//
//	records, err := store.MedicalRecords().List(ctx,
//	    store.ByPersonnel(7),
//	    store.ByRecordType(models.RecordTypeCheckup),
//	)
//
// # Schema Management
//
// internal/store/migrations derives the collection tables and indexes from
// the Registry and tracks applied versions in schema_migrations. Migrations
// are non-destructive: existing tables and indexes are left untouched.
package store
