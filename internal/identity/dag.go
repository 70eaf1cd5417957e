// Package identity builds and queries the identity derivation DAG
// (spec.md section 3): "X is-a Y iff X=Y or any ancestor of X equals Y".
package identity

import (
	yangerrors "github.com/jacoelho/yang/errors"
)

// Key identifies an identity by its defining module and local name.
type Key struct {
	Module string
	Name   string
}

// DAG is the compiled identity derivation graph for a set of modules.
type DAG struct {
	bases map[Key][]Key
}

// NewDAG builds a DAG from a set of (identity, bases) declarations and
// detects cycles; a cyclic declaration is fatal, per spec.md section 4.6
// step 3 ("build the identity DAG; detect cycles (fatal)").
func NewDAG(declarations map[Key][]Key) (*DAG, error) {
	d := &DAG{bases: declarations}
	visiting := make(map[Key]bool)
	done := make(map[Key]bool)
	for k := range declarations {
		if err := d.checkCycle(k, visiting, done); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (d *DAG) checkCycle(k Key, visiting, done map[Key]bool) error {
	if done[k] {
		return nil
	}
	if visiting[k] {
		return yangerrors.Newf(yangerrors.Denied, "identity %q participates in a cyclic derivation", k.Name)
	}
	visiting[k] = true
	for _, base := range d.bases[k] {
		if err := d.checkCycle(base, visiting, done); err != nil {
			return err
		}
	}
	visiting[k] = false
	done[k] = true
	return nil
}

// IsDerivedFrom reports whether name is base, or has base somewhere in
// its ancestor set.
func (d *DAG) IsDerivedFrom(name, base Key) bool {
	if name == base {
		return true
	}
	visited := make(map[Key]bool)
	return d.search(name, base, visited)
}

func (d *DAG) search(cur, target Key, visited map[Key]bool) bool {
	if visited[cur] {
		return false
	}
	visited[cur] = true
	for _, base := range d.bases[cur] {
		if base == target || d.search(base, target, visited) {
			return true
		}
	}
	return false
}
