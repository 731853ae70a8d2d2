// Copyright 2021 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package conf

import (
	"context"
	"fmt"
	"os"

	"zombiezen.com/go/log"
)

// A FileSet is a list of configurations to obtain values from in
// descending order of precedence.
type FileSet []*Conf

// ParseFiles parses the files at the given paths and returns them as
// a FileSet. If the returned error is nil, the returned set's length
// will be the same as the number of arguments. ParseFiles stops on
// the first error, but ignores missing file errors, instead filling
// the corresponding element of the set with a nil *Conf.
func ParseFiles(ctx context.Context, paths ...string) (FileSet, error) {
	fset := make(FileSet, 0, len(paths))
	for _, p := range paths {
		f, err := os.Open(p)
		if os.IsNotExist(err) {
			log.Debugf(ctx, "conf: %s does not exist, skipping", p)
			fset = append(fset, nil)
			continue
		}
		if err != nil {
			return fset, fmt.Errorf("parse conf files: %w", err)
		}
		parsed, err := Parse(f)
		f.Close() // Close errors irrelevant.
		if err != nil {
			return fset, fmt.Errorf("parse conf files: %s: %w", p, err)
		}
		fset = append(fset, parsed)
	}
	return fset, nil
}

// Get returns the value for key in the named section from the highest
// precedence configuration that defines it. Within a configuration,
// sections are scanned in order and the first matching entry wins.
// The second return value reports whether any configuration defines
// the key.
func (fset FileSet) Get(section, key string) (string, bool) {
	for _, c := range fset {
		if c == nil {
			continue
		}
		for _, s := range c.Sections {
			if s.Name != section {
				continue
			}
			if v, ok := s.Get(key); ok {
				return v, true
			}
		}
	}
	return "", false
}

// Find returns every value for key in the named section across all
// configurations in the set, highest precedence first. Duplicate
// entries are preserved in order.
func (fset FileSet) Find(section, key string) []string {
	var values []string
	for _, c := range fset {
		if c == nil {
			continue
		}
		for _, s := range c.Sections {
			if s.Name != section {
				continue
			}
			for _, e := range s.Entries {
				if e.Key == key {
					values = append(values, e.Value)
				}
			}
		}
	}
	return values
}

// SectionNames returns the union of section names across the set in
// precedence order, keeping the first occurrence of each name.
func (fset FileSet) SectionNames() []string {
	var names []string
	seen := make(map[string]struct{})
	for _, c := range fset {
		for _, name := range c.SectionNames() {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	return names
}
