package domain

import "time"

// ExportFormatVersion tags export bundles so older backups stay readable.
const ExportFormatVersion = "1.0"

// ExportBundle is the full serialized state of the ledger: both
// collections, wholesale. Importing a bundle replaces everything.
type ExportBundle struct {
	Tools         []Tool         `json:"tools"`
	UsageSessions []UsageSession `json:"usage_sessions"`
	ExportDate    time.Time      `json:"export_date"`
	Version       string         `json:"version"`
}
