package reconcile

import "time"

// Partition is one console/platform scope within which hashes and titles are indexed.
// Local and Remote are nil until the respective builder has run for the partition.
type Partition struct {
	// RemoteID is the console identifier used by the remote catalog.
	// Zero means it has not been resolved yet.
	RemoteID int

	// RemoteName is the console name used by the remote catalog.
	RemoteName string

	// LocalName is the platform name in the local catalog.
	LocalName string

	// LocalAlias is the alternate ("scrape as") platform name in the local catalog.
	LocalAlias string

	// Active indicates whether the partition takes part in the current run.
	Active bool

	// Local is the local hash index, populated by LocalBuilder.
	Local *LocalIndex

	// Remote is the remote game index, populated by RemoteBuilder.
	Remote *RemoteIndex
}

// Label returns a human-readable name for logging and reports.
func (p *Partition) Label() string {
	if p.LocalName != "" {
		return p.LocalName
	}
	return p.RemoteName
}

// CatalogEntry is a primary playable record in the local catalog.
type CatalogEntry struct {
	// ID is the stable local identifier. It may be empty.
	ID string `json:"id"`

	// Title is the display title.
	Title string `json:"title"`

	// ApplicationPath is the launch path exactly as stored in the catalog.
	ApplicationPath string `json:"application_path"`

	// Hash is the precomputed content hash, if any.
	Hash string `json:"hash"`

	// Platform is the owning platform name.
	Platform string `json:"platform"`
}

// SecondaryEntry is an alternate launch configuration for a primary entry.
type SecondaryEntry struct {
	// ID is the stable local identifier of the secondary entry.
	ID string `json:"id"`

	// GameID references the primary entry, if any.
	GameID string `json:"game_id"`

	// Title is the display name of the launch configuration.
	Title string `json:"title"`

	// ApplicationPath is the launch path exactly as stored in the catalog.
	ApplicationPath string `json:"application_path"`
}

// PlatformCatalog is the typed content of one local platform file.
type PlatformCatalog struct {
	// Name is the canonical platform name.
	Name string

	// Games are the primary entries in file order.
	Games []CatalogEntry

	// Additional are the secondary entries in file order.
	Additional []SecondaryEntry
}

// LocalIndex holds the local-side derived mappings of a partition.
type LocalIndex struct {
	// Catalog is the platform data the index was built from.
	Catalog *PlatformCatalog

	// Hashes maps a normalized hash to the index of its primary entry in Catalog.Games.
	Hashes map[string]int

	// IDs maps a primary entry ID to its index in Catalog.Games.
	IDs map[string]int

	// Secondary is the partition's hash cache table (launch path -> hash).
	Secondary map[string]string
}

// RemoteGame is one title known to the remote catalog.
type RemoteGame struct {
	// ID is the remote game identifier.
	ID int `json:"id"`

	// Title is the remote title, including any variant markers.
	Title string `json:"title"`

	// ConsoleID is the owning console.
	ConsoleID int `json:"console_id"`

	// ConsoleName is the owning console name.
	ConsoleName string `json:"console_name"`

	// Hashes are the known content hashes, normalized after indexing.
	Hashes []string `json:"hashes"`
}

// RemoteIndex holds the remote-side derived mappings of a partition.
type RemoteIndex struct {
	// Games are the remote games in catalog order.
	Games []RemoteGame

	// ByHash maps a normalized hash to the index of the first game carrying it.
	ByHash map[string]int
}

// Console is one console known to the remote catalog.
type Console struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// HashCandidate is an alternate known hash for a remote title.
type HashCandidate struct {
	Hash   string   `json:"hash"`
	Name   string   `json:"name"`
	Labels []string `json:"labels"`
}

// Anomaly describes a remote hash claimed by two different games of one console.
type Anomaly struct {
	ConsoleID   int    `json:"console_id"`
	ConsoleName string `json:"console_name"`
	Hash        string `json:"hash"`

	// FirstGameID and FirstTitle identify the game kept in the index.
	FirstGameID int    `json:"first_game_id"`
	FirstTitle  string `json:"first_title"`

	// GameID and Title identify the conflicting game.
	GameID int    `json:"game_id"`
	Title  string `json:"title"`
}

// MissingGame is a remote title with no matching local hash.
type MissingGame struct {
	Game RemoteGame `json:"game"`

	// Candidates are the alternate hashes known for the title.
	Candidates []HashCandidate `json:"candidates"`

	// LookupError is set when the candidate lookup failed.
	LookupError string `json:"lookup_error,omitempty"`
}

// SkippedGame is an unmatched remote title suppressed by an exclusion rule.
type SkippedGame struct {
	Game RemoteGame `json:"game"`
	Rule string     `json:"rule"`
}

// PartitionReport is the reconciliation outcome of a single partition.
type PartitionReport struct {
	// Console is the partition label.
	Console string `json:"console"`

	// ConsoleID is the remote console identifier.
	ConsoleID int `json:"console_id"`

	// Active is false when the partition was dropped from the run.
	Active bool `json:"active"`

	// Error explains why an inactive partition was dropped.
	Error string `json:"error,omitempty"`

	// Local summarizes the local indexing pass.
	Local LocalStats `json:"local"`

	// RemoteGames is the number of remote games considered.
	RemoteGames int `json:"remote_games"`

	// Found counts remote games with at least one local hash.
	Found int `json:"found"`

	// Unhashed counts remote games without any known hash.
	Unhashed int `json:"unhashed"`

	// Missing are the unmatched games in catalog order.
	Missing []MissingGame `json:"missing"`

	// Skipped are the unmatched games suppressed by exclusion rules.
	Skipped []SkippedGame `json:"skipped"`
}

// LocalStats summarizes a LocalBuilder pass.
type LocalStats struct {
	PrimaryHashes   int `json:"primary_hashes"`
	SecondaryHashes int `json:"secondary_hashes"`
	CacheHits       int `json:"cache_hits"`
	NewHashes       int `json:"new_hashes"`
	Failures        int `json:"failures"`
}

// Report is the outcome of a full run.
type Report struct {
	RunID      string            `json:"run_id"`
	StartedAt  time.Time         `json:"started_at"`
	FinishedAt time.Time         `json:"finished_at"`
	Partitions []PartitionReport `json:"partitions"`
	Anomalies  []Anomaly         `json:"anomalies"`
	Summary    Summary           `json:"summary"`
}

// Summary provides aggregate counts for a report.
type Summary struct {
	Partitions  int `json:"partitions"`
	Inactive    int `json:"inactive"`
	RemoteGames int `json:"remote_games"`
	LocalHashes int `json:"local_hashes"`
	NewHashes   int `json:"new_hashes"`
	Found       int `json:"found"`
	Missing     int `json:"missing"`
	Skipped     int `json:"skipped"`
	Unhashed    int `json:"unhashed"`
	Anomalies   int `json:"anomalies"`
}
