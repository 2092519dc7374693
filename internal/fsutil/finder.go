// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package fsutil provides file system utility functions.
package fsutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FindFilesByExtension collects every file under the given paths whose name
// ends with one of the extensions. A path may name a single file or a
// directory that is walked recursively. Missing paths are skipped. The result
// is sorted and free of duplicates so loading order never depends on the
// order the file system returns entries in.
func FindFilesByExtension(paths []string, extensions ...string) ([]string, error) {
	if len(extensions) == 0 {
		panic("at least one extension must be given")
	}

	seen := make(map[string]struct{})
	var files []string
	add := func(p string) {
		if !hasExtension(p, extensions) {
			return
		}
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		files = append(files, p)
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		if !info.IsDir() {
			add(filepath.Clean(root))
			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(files)
	return files, nil
}

func hasExtension(name string, extensions []string) bool {
	for _, ext := range extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
