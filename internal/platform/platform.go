// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package platform

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies a deployment platform.
type Kind string

const (
	IOS     Kind = "ios"
	MacOS   Kind = "macos"
	TVOS    Kind = "tvos"
	WatchOS Kind = "watchos"
)

var displayNames = map[Kind]string{
	IOS:     "iOS",
	MacOS:   "macOS",
	TVOS:    "tvOS",
	WatchOS: "watchOS",
}

// supported holds the enumerated minimum versions per platform, as
// "major.minor" strings, oldest first.
var supported = map[Kind][]string{
	IOS:     {"8.0", "9.0", "10.0", "11.0", "12.0", "13.0", "14.0", "15.0", "16.0", "17.0"},
	MacOS:   {"10.10", "10.11", "10.12", "10.13", "10.14", "10.15", "11.0", "12.0", "13.0", "14.0"},
	TVOS:    {"9.0", "10.0", "11.0", "12.0", "13.0", "14.0", "15.0", "16.0", "17.0"},
	WatchOS: {"2.0", "3.0", "4.0", "5.0", "6.0", "7.0", "8.0", "9.0", "10.0"},
}

// Kinds returns every known platform kind in a stable order.
func Kinds() []Kind {
	return []Kind{IOS, MacOS, TVOS, WatchOS}
}

// SupportedVersions returns the enumerated versions of k, oldest first.
func SupportedVersions(k Kind) []string {
	return append([]string(nil), supported[k]...)
}

// Version is a resolved platform requirement.
type Version struct {
	Kind  Kind
	Major int
	Minor int
}

// String renders the version the way toolchains print it, e.g. "iOS 12.0".
func (v Version) String() string {
	return fmt.Sprintf("%s %s", displayNames[v.Kind], v.Number())
}

// Number renders just the "major.minor" part.
func (v Version) Number() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Less orders versions of the same kind.
func (v Version) Less(o Version) bool {
	if v.Major != o.Major {
		return v.Major < o.Major
	}
	return v.Minor < o.Minor
}

// UnsupportedPlatformError reports a platform or version constant the
// toolchain does not recognize.
type UnsupportedPlatformError struct {
	Field    string
	Platform string
	Version  string
}

// Error implements the error interface.
func (e *UnsupportedPlatformError) Error() string {
	if e.Version == "" {
		return fmt.Sprintf("unsupported platform in %s: %q is not a known platform", e.Field, e.Platform)
	}
	return fmt.Sprintf("unsupported platform in %s: %s %q is not a supported minimum version", e.Field, e.Platform, e.Version)
}

// ParseKind resolves a platform name case-insensitively.
func ParseKind(name string) (Kind, bool) {
	k := Kind(strings.ToLower(strings.TrimSpace(name)))
	_, ok := supported[k]
	return k, ok
}

// Parse resolves a platform name and minimum version. Versions may be written
// as "12", "12.0", "v12", "10.15" or "v10_15".
func Parse(name, minimum string) (Version, error) {
	field := "platforms." + name
	kind, ok := ParseKind(name)
	if !ok {
		return Version{}, &UnsupportedPlatformError{Field: field, Platform: name}
	}

	v, ok := parseNumber(minimum)
	if !ok {
		return Version{}, &UnsupportedPlatformError{Field: field + ".minimum", Platform: displayNames[kind], Version: minimum}
	}
	v.Kind = kind

	for _, s := range supported[kind] {
		if s == v.Number() {
			return v, nil
		}
	}
	return Version{}, &UnsupportedPlatformError{Field: field + ".minimum", Platform: displayNames[kind], Version: minimum}
}

func parseNumber(raw string) (Version, bool) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "v"), "V")
	s = strings.ReplaceAll(s, "_", ".")
	if s == "" {
		return Version{}, false
	}

	parts := strings.Split(s, ".")
	if len(parts) > 3 {
		return Version{}, false
	}
	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return Version{}, false
		}
		nums[i] = n
	}
	// A patch component is tolerated only when it is zero.
	if len(nums) == 3 && nums[2] != 0 {
		return Version{}, false
	}

	v := Version{Major: nums[0]}
	if len(nums) > 1 {
		v.Minor = nums[1]
	}
	return v, true
}
