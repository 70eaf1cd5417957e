package builder

import (
	"testing"

	"github.com/jacoelho/yang/internal/ast"
	"github.com/jacoelho/yang/internal/compactreader"
)

func TestBuildRPCInputBindsOwnTypedefsAndGroupings(t *testing.T) {
	stmt, err := compactreader.Read([]byte(`rpc reboot {
		input {
			typedef delay-unit {
				type string;
			}
			grouping reboot-params {
				leaf delay {
					type uint32;
				}
			}
			uses reboot-params;
		}
	}`))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	n, err := buildRPC(stmt, ast.Version11, "")
	if err != nil {
		t.Fatalf("buildRPC: %v", err)
	}
	if len(n.Children) != 1 || n.Children[0].Kind != ast.KindInput {
		t.Fatalf("expected a single input child, got %v", n.Children)
	}
	input := n.Children[0]
	if len(input.Typedefs) != 1 || input.Typedefs[0].Name != "delay-unit" {
		t.Fatalf("input.Typedefs = %v, want [delay-unit]", input.Typedefs)
	}
	if len(input.Groupings) != 1 || input.Groupings[0].Name != "reboot-params" {
		t.Fatalf("input.Groupings = %v, want [reboot-params]", input.Groupings)
	}
}
