package gen

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"
)

// snapshotVersion is the format version of the snapshot sidecar.
const snapshotVersion = 1

// snapshotFile is the name of the sidecar under {target}/internal.
const snapshotFile = "enumc.snap"

type (
	// Snapshot records the ordinal layout of every generated enum. It is
	// stored in MessagePack form next to the generated code and compared
	// on the next run, so a change that would renumber ordinals already
	// persisted by users is rejected before any file is written.
	Snapshot struct {
		Version int            `msgpack:"version"`
		Enums   []EnumSnapshot `msgpack:"enums"`
	}

	// EnumSnapshot records the layout of a single enum. Members holds the
	// full name list in ordinal order, sentinel included.
	EnumSnapshot struct {
		Name         string   `msgpack:"name"`
		Underlying   string   `msgpack:"underlying"`
		Sentinel     bool     `msgpack:"sentinel,omitempty"`
		SentinelName string   `msgpack:"sentinel_name,omitempty"`
		Members      []string `msgpack:"members"`
	}
)

// SnapshotPath returns the location of the snapshot sidecar.
func (c *Config) SnapshotPath() string {
	return filepath.Join(c.Target, "internal", snapshotFile)
}

// takeSnapshot captures the ordinal layout of the graph.
func takeSnapshot(g *Graph) *Snapshot {
	s := &Snapshot{Version: snapshotVersion, Enums: make([]EnumSnapshot, 0, len(g.Nodes))}
	for _, t := range g.Nodes {
		es := EnumSnapshot{
			Name:       t.Name,
			Underlying: t.Underlying.String(),
			Members:    make([]string, 0, len(t.Members)),
		}
		if m, ok := t.SentinelMember(); ok {
			es.Sentinel = true
			es.SentinelName = m.Name
		}
		for _, m := range t.Members {
			es.Members = append(es.Members, m.Name)
		}
		s.Enums = append(s.Enums, es)
	}
	return s
}

// ReadSnapshot loads the snapshot sidecar from path. It returns (nil, nil)
// when no snapshot was stored yet.
func ReadSnapshot(path string) (*Snapshot, error) {
	buf, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, NewGenerationError("snapshot", path, "read snapshot", err)
	}
	s := &Snapshot{}
	if err := msgpack.Unmarshal(buf, s); err != nil {
		return nil, NewGenerationError("snapshot", path, "decode snapshot", err)
	}
	return s, nil
}

// checkSnapshot compares the graph against the stored snapshot, if any.
func checkSnapshot(g *Graph) error {
	stored, err := ReadSnapshot(g.SnapshotPath())
	if err != nil || stored == nil {
		return err
	}
	return stored.Diff(takeSnapshot(g))
}

// writeSnapshot stores the ordinal layout of the graph.
func writeSnapshot(g *Graph) error {
	path := g.SnapshotPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return NewGenerationError("snapshot", path, "create snapshot directory", err)
	}
	buf, err := msgpack.Marshal(takeSnapshot(g))
	if err != nil {
		return NewGenerationError("snapshot", path, "encode snapshot", err)
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return NewGenerationError("snapshot", path, "write snapshot", err)
	}
	return nil
}

// Diff compares the stored layout s against the next layout. It returns a
// DriftError for any change that renumbers or reinterprets ordinals that
// were already handed out: removing, reordering or renaming members,
// changing the underlying type or the sentinel policy, or dropping a
// whole enum. Appending members at the end is the only allowed evolution.
func (s *Snapshot) Diff(next *Snapshot) error {
	enums := make(map[string]*EnumSnapshot, len(next.Enums))
	for i := range next.Enums {
		enums[next.Enums[i].Name] = &next.Enums[i]
	}
	for i := range s.Enums {
		prev := &s.Enums[i]
		curr, ok := enums[prev.Name]
		if !ok {
			return NewDriftError(prev.Name, "enum removed; its ordinals may still be persisted")
		}
		if err := prev.diff(curr); err != nil {
			return err
		}
	}
	return nil
}

// diff compares the layout of a single enum.
func (e *EnumSnapshot) diff(next *EnumSnapshot) error {
	if e.Underlying != next.Underlying {
		return NewDriftError(e.Name, fmt.Sprintf("underlying type changed from %s to %s", e.Underlying, next.Underlying))
	}
	if e.Sentinel != next.Sentinel {
		return NewDriftError(e.Name, "sentinel policy changed")
	}
	if e.Sentinel && e.SentinelName != next.SentinelName {
		return NewDriftError(e.Name, fmt.Sprintf("sentinel renamed from %q to %q", e.SentinelName, next.SentinelName))
	}
	if len(next.Members) < len(e.Members) {
		return NewDriftError(e.Name, "members removed; the ordinals after them would be renumbered")
	}
	for i, name := range e.Members {
		if next.Members[i] != name {
			return NewDriftError(e.Name, fmt.Sprintf("member %q at index %d changed to %q", name, i, next.Members[i]))
		}
	}
	return nil
}
