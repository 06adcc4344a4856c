package models

// dedupKind separates the two key spaces of [DedupKey].
type dedupKind uint8

const (
	dedupByID dedupKind = iota + 1
	dedupByTitleAndTimestamp
)

// DedupKey identifies a project across the local store and the remote
// collection. It is either an id key or a title+created_at key; the two
// variants never compare equal, whatever their contents.
//
// DedupKey is comparable and is meant to be used as a map key.
type DedupKey struct {
	kind      dedupKind
	id        string
	title     string
	createdAt string
}

// KeyByID builds an id key.
func KeyByID(id string) DedupKey {
	return DedupKey{kind: dedupByID, id: id}
}

// KeyByTitleAndTimestamp builds a composite key.
func KeyByTitleAndTimestamp(title, createdAt string) DedupKey {
	return DedupKey{kind: dedupByTitleAndTimestamp, title: title, createdAt: createdAt}
}

// String renders the key for logs.
func (k DedupKey) String() string {
	switch k.kind {
	case dedupByID:
		return "id:" + k.id
	case dedupByTitleAndTimestamp:
		return "t:" + k.title + "|" + k.createdAt
	default:
		return "<empty>"
	}
}

// IDKey returns the id key of p, if p has an id.
func IDKey(p Project) (DedupKey, bool) {
	if p.ID == "" {
		return DedupKey{}, false
	}
	return KeyByID(p.ID), true
}

// CompositeKey returns the title+created_at key of p, if p has a creation
// timestamp.
func CompositeKey(p Project) (DedupKey, bool) {
	if p.CreatedAt == "" {
		return DedupKey{}, false
	}
	return KeyByTitleAndTimestamp(p.Title, p.CreatedAt), true
}

// SyncReport summarises one reconciliation pass.
type SyncReport struct {
	// Pushed holds the remote records created during the pass.
	Pushed []Project
	// Skipped counts local records that already had a remote counterpart.
	Skipped int
	// Failed holds the ids of local records whose push failed.
	Failed []string
	// Aborted is set when the remote collection could not be listed.
	Aborted bool
}
