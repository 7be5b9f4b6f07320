package morse

// Version information for the morse module.
const (
	// Version is the current version of the morse module.
	Version = "1.0.0"

	// MinCompatibleVersion is the minimum version that is compatible with this version.
	MinCompatibleVersion = "1.0.0"
)
