// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// IsDir reports whether path exists and is a directory. Errors other than
// "does not exist" are returned.
func IsDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}

// ResolveWithin joins rel onto root and verifies the result stays inside
// root. rel must be relative; "" and "." resolve to root itself.
func ResolveWithin(root, rel string) (string, error) {
	if filepath.IsAbs(rel) {
		return "", fmt.Errorf("path %q must be relative", rel)
	}
	joined := filepath.Join(root, rel)
	inside, err := within(root, joined)
	if err != nil {
		return "", err
	}
	if !inside {
		return "", fmt.Errorf("path %q escapes %q", rel, root)
	}
	return joined, nil
}

// CheckRealWithin resolves symlinks in both root and dir and verifies the
// real dir is still inside the real root. Both must exist.
func CheckRealWithin(root, dir string) error {
	realRoot, err := filepath.EvalSymlinks(root)
	if err != nil {
		return err
	}
	realDir, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return err
	}
	inside, err := within(realRoot, realDir)
	if err != nil {
		return err
	}
	if !inside {
		return fmt.Errorf("%q resolves to %q outside %q", dir, realDir, realRoot)
	}
	return nil
}

func within(root, p string) (bool, error) {
	back, err := filepath.Rel(root, p)
	if err != nil {
		return false, err
	}
	return back != ".." && !strings.HasPrefix(back, ".."+string(filepath.Separator)), nil
}
