// Package store implements the content repository consumed by the
// importer: listings with a metadata key-value map and a category taxonomy,
// backed by SQLite.
//
// The scholarship_url metadata key is the import dedup key; an index on
// (key, value) serves the equality lookup. Categories are identified by a
// slug derived from their display name and each listing carries at most one
// category.
package store
