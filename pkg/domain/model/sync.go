package model

// SyncDirection selects which dictionary tree is the source.
type SyncDirection string

const (
	// SyncPush promotes the test dictionary over the production tree.
	SyncPush SyncDirection = "push"
	// SyncPull copies the production dictionary back over the test tree.
	SyncPull SyncDirection = "pull"
)

// SyncPlan is a resolved sync invocation: both paths are absolute or
// working-directory relative, decided before any filesystem mutation.
type SyncPlan struct {
	Direction SyncDirection
	Source    string
	Dest      string
}

// SyncResult reports what a confirmed sync wrote.
type SyncResult struct {
	Dest      string   // Destination directory that was replaced or created
	Files     []string // Relative paths copied from the source tree
	Replaced  bool     // True when an existing destination was removed first
	TotalSize int64    // Bytes copied
}
