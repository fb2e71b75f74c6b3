package types

import "time"

// Operation names reported in results and logs.
const (
	OperationSwap     = "swap"
	OperationFavorite = "favorite"
	OperationRestore  = "restore"
)

// FavoritesResult holds the result of the 'list' command.
type FavoritesResult struct {
	HostsPath string   `json:"hostsPath"`
	Favorites []string `json:"favorites"`
}

// LineChange describes a single rewritten line. Line is 1-based.
type LineChange struct {
	Line   int    `json:"line"`
	Before string `json:"before"`
	After  string `json:"after"`
}

// MutationResult is returned by every command that rewrites the hosts file.
type MutationResult struct {
	Operation  string       `json:"operation"`
	Target     string       `json:"target"`
	HostsPath  string       `json:"hostsPath"`
	BackupPath string       `json:"backupPath"`
	Changes    []LineChange `json:"changes"`
	DryRun     bool         `json:"dryRun"`
	Diff       string       `json:"diff,omitempty"`
	Timestamp  time.Time    `json:"timestamp"`

	// Checksums of the hosts file before and after the operation. After
	// is the planned content on a dry run.
	ChecksumBefore string `json:"checksumBefore,omitempty"`
	ChecksumAfter  string `json:"checksumAfter,omitempty"`
}

// Changed reports whether the operation altered any line.
func (r *MutationResult) Changed() bool {
	return len(r.Changes) > 0
}
