package platform

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name      string
		platform  string
		minimum   string
		expectErr bool
		expected  string
	}{
		{name: "bare major", platform: "ios", minimum: "12", expected: "iOS 12.0"},
		{name: "major minor", platform: "ios", minimum: "9.0", expected: "iOS 9.0"},
		{name: "enum style", platform: "iOS", minimum: "v12", expected: "iOS 12.0"},
		{name: "macos underscore", platform: "macos", minimum: "v10_15", expected: "macOS 10.15"},
		{name: "zero patch", platform: "tvos", minimum: "13.0.0", expected: "tvOS 13.0"},
		{name: "watchos", platform: "WatchOS", minimum: "6", expected: "watchOS 6.0"},
		{name: "error - too old", platform: "ios", minimum: "7", expectErr: true},
		{name: "error - not enumerated minor", platform: "ios", minimum: "12.1", expectErr: true},
		{name: "error - non-zero patch", platform: "ios", minimum: "12.0.1", expectErr: true},
		{name: "error - garbage", platform: "ios", minimum: "twelve", expectErr: true},
		{name: "error - empty", platform: "ios", minimum: "", expectErr: true},
		{name: "error - unknown platform", platform: "android", minimum: "12", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := Parse(tc.platform, tc.minimum)
			if tc.expectErr {
				var upErr *UnsupportedPlatformError
				require.True(t, errors.As(err, &upErr), "expected UnsupportedPlatformError, got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, v.String())
		})
	}
}

func TestUnsupportedPlatformError_NamesField(t *testing.T) {
	_, err := Parse("ios", "3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "platforms.ios.minimum")

	_, err = Parse("linux", "5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"linux" is not a known platform`)
}

func TestVersion_Less(t *testing.T) {
	v9, err := Parse("ios", "9")
	require.NoError(t, err)
	v12, err := Parse("ios", "12")
	require.NoError(t, err)

	assert.True(t, v9.Less(v12))
	assert.False(t, v12.Less(v9))
	assert.False(t, v12.Less(v12))
}

func TestSupportedVersions_ReturnsCopy(t *testing.T) {
	versions := SupportedVersions(IOS)
	versions[0] = "changed"
	assert.Equal(t, "8.0", SupportedVersions(IOS)[0])
}
