package config

import "time"

// Search timing.
const (
	DebounceDelay = 500 * time.Millisecond
	FetchTimeout  = 10 * time.Second
)

// Dataset settings.
const (
	AppName         = "brasileirao"
	DatasetResource = "dados.json"
	LogFileName     = "brasileirao.log"
	MaxDatasetBytes = 8 << 20
)

// Card fallbacks.
const (
	FallbackName        = "unnamed"
	FallbackDescription = "no description available"
	FallbackFounded     = "not informed"
	FoundedLabel        = "Founded in:"
	LinkText            = "Learn more"
	LinkTarget          = "_blank"
	LinkRel             = "noopener noreferrer"
)

// User-facing messages.
const (
	NoResultsMessage = "No teams found. Try another name or clear the search."
	LoadErrorFormat  = "Could not load the team data. Check that %s exists."
	LoadingMessage   = "Loading teams..."
)
