package tinymorse

import "github.com/bft-labs/tinymorse/pkg/morse"

// Version information for the tinymorse module.
const (
	// Version is the current version of the tinymorse module.
	Version = "1.0.0"

	// MinCompatibleVersion is the minimum version that is compatible with this version.
	MinCompatibleVersion = "1.0.0"
)

// ModuleVersions returns the versions of tinymorse and its sub-modules.
func ModuleVersions() map[string]string {
	return map[string]string{
		"tinymorse": Version,
		"morse":     morse.Version,
	}
}
