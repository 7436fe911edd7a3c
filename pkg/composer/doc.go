// Package composer reads Composer manifests (composer.json) and lock files
// (composer.lock) into explicit package records.
//
// # Overview
//
// The graph builder never looks at raw JSON. This package turns both files
// into [Package] and [Lock] values and validates them at ingestion, so that a
// missing "packages" list or a nameless record fails here with a coded error
// rather than somewhere inside graph construction.
//
// # Link Order
//
// Composer writes require/provide/replace as JSON objects. Go maps would lose
// their key order, which would make the rendered graph differ between runs.
// [Links] decodes those objects through an ordered map and keeps the order in
// which the file lists them.
//
// # Usage
//
//	root, err := composer.LoadManifest("composer.json")
//	lock, err := composer.LoadLock(composer.LockPath("composer.json"))
//	if err := lock.Validate(true); err != nil {
//	    // MISSING_LOCK_DATA
//	}
package composer
