// Package todo stores the task list as a single JSON document.
//
// The file is a JSON array in insertion order:
//
//	[
//	  {
//	    "id": "3f2a9c0e5b7d4e1f8a6b2c4d9e0f1a2b",
//	    "task": "Buy milk",
//	    "created_at": "2024-01-01T09:30:00.123456",
//	    "due_date": "02/01/2024"
//	  }
//	]
//
// due_date is null when absent. It is free text and is never parsed.
//
// # Reads and writes
//
// Store.Load never fails: a missing, unreadable, or malformed file
// loads as an empty list. Store.Save writes a temp file next to the
// target, syncs it, and renames it over the target, so readers see
// either the old document or the new one. If the write fails the temp
// file is removed and the target is left as it was.
//
// # Legacy import
//
// Older versions kept tasks as a CBOR array of maps. MigrateLegacy reads
// that file once, normalizes each entry, and replaces the JSON document
// with the result. Anything unreadable in the legacy file is skipped.
//
// # Validation
//
// Validate checks a document against an embedded JSON Schema and for
// duplicate ids. Load does not validate.
package todo
