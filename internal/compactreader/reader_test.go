package compactreader

import (
	"testing"

	"github.com/jacoelho/yang/internal/keyword"
)

func TestReadModuleShape(t *testing.T) {
	stmt, err := Read([]byte(`module m {
		namespace "urn:m";
		prefix m;
		leaf x {
			type int8;
		}
	}`))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if stmt.Keyword != keyword.Module || stmt.Arg != "m" {
		t.Fatalf("root = %v/%q, want module/m", stmt.Keyword, stmt.Arg)
	}
	if len(stmt.Children) != 3 {
		t.Fatalf("children = %d, want 3", len(stmt.Children))
	}
	leaf := stmt.Find(keyword.Leaf)
	if leaf == nil || leaf.Arg != "x" {
		t.Fatalf("Find(Leaf) = %v, want leaf x", leaf)
	}
	if ty := leaf.Find(keyword.Type); ty == nil || ty.Arg != "int8" {
		t.Fatalf("leaf's type = %v, want int8", ty)
	}
}

func TestReadStringConcatenationArgument(t *testing.T) {
	stmt, err := Read([]byte(`description "a" + "b" + "c";`))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if stmt.Arg != "abc" {
		t.Fatalf("Arg = %q, want %q", stmt.Arg, "abc")
	}
}

func TestReadPrefixedExtensionInstance(t *testing.T) {
	stmt, err := Read([]byte(`acme:my-ext "payload";`))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if stmt.Keyword != keyword.Custom || stmt.Prefix != "acme" || stmt.Local != "my-ext" {
		t.Fatalf("stmt = %+v, want a custom acme:my-ext statement", stmt)
	}
	if stmt.Arg != "payload" {
		t.Fatalf("Arg = %q, want %q", stmt.Arg, "payload")
	}
}

func TestReadExtensionInstanceWithoutArgument(t *testing.T) {
	stmt, err := Read([]byte(`acme:marker;`))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if stmt.HasArg {
		t.Fatalf("HasArg = true, want false for an argument-less extension instance")
	}
}

func TestReadRejectsUnterminatedBlock(t *testing.T) {
	_, err := Read([]byte(`module m { namespace "urn:m";`))
	if err == nil {
		t.Fatalf("expected an unterminated-block error, got nil")
	}
}

func TestReadRejectsTrailingContent(t *testing.T) {
	_, err := Read([]byte(`leaf x; leaf y;`))
	if err == nil {
		t.Fatalf("expected a trailing-content error, got nil")
	}
}

func TestReadRejectsMissingArgument(t *testing.T) {
	_, err := Read([]byte(`namespace;`))
	if err == nil {
		t.Fatalf("expected a missing-argument error, got nil")
	}
}
