package versions

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// IsNewerVersion reports whether newVersion is strictly greater than oldVersion.
// Non-semver input falls back to string comparison.
func IsNewerVersion(newVersion, oldVersion string) bool {
	newSemver, errNew := semver.NewVersion(newVersion)
	oldSemver, errOld := semver.NewVersion(oldVersion)

	if errNew != nil || errOld != nil {
		return newVersion > oldVersion
	}

	return newSemver.GreaterThan(oldSemver)
}

// CheckCompatible returns an error unless version is valid semver sharing
// the major version of supported.
func CheckCompatible(version, supported string) error {
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("invalid catalog version %q: %w", version, err)
	}
	s, err := semver.NewVersion(supported)
	if err != nil {
		return fmt.Errorf("invalid supported version %q: %w", supported, err)
	}
	if v.Major() != s.Major() {
		if IsNewerVersion(version, supported) {
			return fmt.Errorf("catalog version %s is newer than supported %s", version, supported)
		}
		return fmt.Errorf("catalog version %s is no longer supported (want %d.x)", version, s.Major())
	}
	return nil
}
