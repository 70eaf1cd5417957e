package ast

import (
	"testing"

	"github.com/jacoelho/yang/internal/keyword"
)

func TestNodeKindString(t *testing.T) {
	tests := []struct {
		kind NodeKind
		want string
	}{
		{KindContainer, "container"},
		{KindLeafList, "leaf-list"},
		{KindRPC, "rpc"},
		{KindAugment, "augment"},
		{NodeKind(999), "node"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("NodeKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestStatementFindAndFindAll(t *testing.T) {
	leaf := &Statement{Keyword: keyword.Leaf, Arg: "x"}
	ext := &Statement{Keyword: keyword.Custom, Prefix: "acme", Local: "marker"}
	s := &Statement{Children: []*Statement{
		leaf,
		{Keyword: keyword.Leaf, Arg: "y"},
		ext,
	}}
	if got := s.Find(keyword.Leaf); got != leaf {
		t.Fatalf("Find(Leaf) = %v, want the first leaf child", got)
	}
	if got := s.Find(keyword.Container); got != nil {
		t.Fatalf("Find(Container) = %v, want nil", got)
	}
	if got := s.FindAll(keyword.Leaf); len(got) != 2 {
		t.Fatalf("FindAll(Leaf) = %d children, want 2", len(got))
	}
	if got := s.Extensions(); len(got) != 1 || got[0] != ext {
		t.Fatalf("Extensions() = %v, want just the acme:marker instance", got)
	}
}
