package config

// Layout constants.
const (
	// CardWidth is the outer width of a single card, borders included.
	CardWidth = 38

	// MinCardWidth is the narrowest card drawn before falling back to one column.
	MinCardWidth = 24

	// CardGap separates cards horizontally.
	CardGap = 1

	// InputWidth is the width of the search field.
	InputWidth = 40

	// DefaultWidth is assumed until the first window size message arrives.
	DefaultWidth = 80
)

// Input constraints.
const (
	// MaxQueryLength is the maximum query length accepted by the search field.
	MaxQueryLength = 100
)

// Display limits.
const (
	// MaxExamplesDisplayed limits the bullet list drawn inside a card.
	MaxExamplesDisplayed = 6

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "..."
)
