package versions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNewerVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		newVersion string
		oldVersion string
		expected   bool
	}{
		{name: "newer major version", newVersion: "2.0.0", oldVersion: "1.0.0", expected: true},
		{name: "newer minor version", newVersion: "1.2.0", oldVersion: "1.1.0", expected: true},
		{name: "newer patch version", newVersion: "1.0.2", oldVersion: "1.0.1", expected: true},
		{name: "older major version", newVersion: "1.0.0", oldVersion: "2.0.0", expected: false},
		{name: "older minor version", newVersion: "1.1.0", oldVersion: "1.2.0", expected: false},
		{name: "older patch version", newVersion: "1.0.1", oldVersion: "1.0.2", expected: false},
		{name: "equal versions", newVersion: "1.0.0", oldVersion: "1.0.0", expected: false},
		{name: "prerelease vs release", newVersion: "1.0.0", oldVersion: "1.0.0-alpha", expected: true},
		{name: "release vs prerelease", newVersion: "1.0.0-alpha", oldVersion: "1.0.0", expected: false},
		{name: "newer prerelease", newVersion: "1.0.0-beta", oldVersion: "1.0.0-alpha", expected: true},
		{name: "non-semver string comparison newer", newVersion: "version-b", oldVersion: "version-a", expected: true},
		{name: "non-semver string comparison older", newVersion: "version-a", oldVersion: "version-b", expected: false},
		{name: "non-semver equal", newVersion: "custom-v1", oldVersion: "custom-v1", expected: false},
		{name: "mixed semver and non-semver - semver first", newVersion: "1.0.0", oldVersion: "invalid-version", expected: false},
		{name: "mixed semver and non-semver - non-semver first", newVersion: "invalid-version", oldVersion: "1.0.0", expected: true},
		{name: "empty new version", newVersion: "", oldVersion: "1.0.0", expected: false},
		{name: "empty old version", newVersion: "1.0.0", oldVersion: "", expected: true},
		{name: "both empty", newVersion: "", oldVersion: "", expected: false},
		{name: "v prefix newer", newVersion: "v2.0.0", oldVersion: "v1.0.0", expected: true},
		{name: "v prefix older", newVersion: "v1.0.0", oldVersion: "v2.0.0", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := IsNewerVersion(tt.newVersion, tt.oldVersion)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestCheckCompatible(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		version   string
		supported string
		wantErr   string
	}{
		{name: "same version", version: "1.0.0", supported: "1.0.0"},
		{name: "newer minor", version: "1.3.0", supported: "1.0.0"},
		{name: "older patch", version: "1.0.0", supported: "1.0.4"},
		{name: "newer major", version: "2.0.0", supported: "1.0.0", wantErr: "newer than supported"},
		{name: "older major", version: "0.9.0", supported: "1.0.0", wantErr: "no longer supported"},
		{name: "not semver", version: "latest", supported: "1.0.0", wantErr: "invalid catalog version"},
		{name: "bad supported", version: "1.0.0", supported: "x", wantErr: "invalid supported version"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := CheckCompatible(tt.version, tt.supported)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestGetVersionInfo(t *testing.T) {
	t.Parallel()

	info := GetVersionInfo()
	assert.Equal(t, Version, info.Version)
	assert.NotEmpty(t, info.GoVersion)
	assert.Contains(t, info.Platform, "/")
}
