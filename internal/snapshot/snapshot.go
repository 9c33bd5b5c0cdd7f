// Package snapshot records the tag catalog to a file so that adding or
// removing a tag shows up as a reviewable change.
package snapshot

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"

	"github.com/nfrund/pinboard/internal/tagmgr"
)

// Snapshot is the serialized form of a registry.
type Snapshot struct {
	Count   int              `json:"count"`
	Domains []DomainSnapshot `json:"domains"`
}

// DomainSnapshot lists the tag names of one domain in registration order.
type DomainSnapshot struct {
	Domain tagmgr.Domain `json:"domain"`
	Tags   []string      `json:"tags"`
}

// Changes is the difference between two snapshots.
type Changes struct {
	Added   []string `json:"added,omitempty"`
	Removed []string `json:"removed,omitempty"`
	Moved   []string `json:"moved,omitempty"` // same name, different domain
}

// Empty reports whether the snapshots matched.
func (c Changes) Empty() bool {
	return len(c.Added) == 0 && len(c.Removed) == 0 && len(c.Moved) == 0
}

// Take captures the current contents of m.
func Take(m *tagmgr.Manager) Snapshot {
	snap := Snapshot{Count: m.Count()}
	for _, domain := range tagmgr.Domains() {
		tags := m.ListByDomain(domain)
		if len(tags) == 0 {
			continue
		}
		names := make([]string, 0, len(tags))
		for _, tag := range tags {
			names = append(names, tag.Name())
		}
		snap.Domains = append(snap.Domains, DomainSnapshot{Domain: domain, Tags: names})
	}
	return snap
}

// Write stores snap as indented JSON at path, creating parent directories.
func Write(fs afero.Fs, path string, snap Snapshot) error {
	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create snapshot directory: %w", err)
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	data = append(data, '\n')

	if err := afero.WriteFile(fs, path, data, 0644); err != nil {
		return fmt.Errorf("write snapshot %s: %w", path, err)
	}
	return nil
}

// Read loads a snapshot written by Write.
func Read(fs afero.Fs, path string) (Snapshot, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("read snapshot %s: %w", path, err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot %s: %w", path, err)
	}
	return snap, nil
}

// Diff reports what changed going from old to current. Results are sorted.
func Diff(old, current Snapshot) Changes {
	before := old.index()
	after := current.index()

	var changes Changes
	for name, domain := range after {
		prev, ok := before[name]
		switch {
		case !ok:
			changes.Added = append(changes.Added, name)
		case prev != domain:
			changes.Moved = append(changes.Moved, name)
		}
	}
	for name := range before {
		if _, ok := after[name]; !ok {
			changes.Removed = append(changes.Removed, name)
		}
	}

	sort.Strings(changes.Added)
	sort.Strings(changes.Removed)
	sort.Strings(changes.Moved)
	return changes
}

func (s Snapshot) index() map[string]tagmgr.Domain {
	idx := make(map[string]tagmgr.Domain, s.Count)
	for _, d := range s.Domains {
		for _, name := range d.Tags {
			idx[name] = d.Domain
		}
	}
	return idx
}
