// Package ast holds the parsed-tree data model: the generic Statement
// shape both surface-form readers produce, and the typed structures
// component C3 builds from it (Module, Submodule, schema nodes, parsed
// type descriptors, restrictions).
package ast

import (
	"github.com/jacoelho/yang/internal/keyword"
	"github.com/jacoelho/yang/internal/token"
)

// Statement is the generic (stmt-name, arg, children) tree both the
// compact reader and the YIN reader produce. It is a faithful, unresolved
// rendering of the source: the keyword dispatcher (C2) has already
// classified Keyword, but no C3 structural validation has happened yet.
//
// Statement also serves, unmodified, as the representation of an
// extension instance (an unrecognized prefixed statement): such a
// statement simply keeps Keyword == keyword.Custom and carries its
// original textual name in Local/Prefix, recursively, to any depth -
// matching the original implementation's extension-argument-may-nest-
// further-extensions behavior (see SPEC_FULL.md section 5).
type Statement struct {
	Keyword keyword.ID

	// Prefix and Local are the keyword's literal text. For a recognized
	// keyword Local is its canonical name; for Keyword == Custom, Prefix
	// is the module prefix of the extension and Local is the extension's
	// own statement name.
	Prefix string
	Local  string

	Arg    string
	HasArg bool

	Children []*Statement

	Pos token.Position
}

// Find returns the first child with the given keyword, or nil.
func (s *Statement) Find(kw keyword.ID) *Statement {
	for _, c := range s.Children {
		if c.Keyword == kw {
			return c
		}
	}
	return nil
}

// FindAll returns every child with the given keyword, in document order.
func (s *Statement) FindAll(kw keyword.ID) []*Statement {
	var out []*Statement
	for _, c := range s.Children {
		if c.Keyword == kw {
			out = append(out, c)
		}
	}
	return out
}

// Extensions returns every child that is an extension instance (an
// unrecognized statement), in document order.
func (s *Statement) Extensions() []*Statement {
	return s.FindAll(keyword.Custom)
}
