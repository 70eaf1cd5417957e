package yang

import (
	"strings"
	"testing"

	"github.com/jacoelho/yang/internal/ast"
)

const exampleModule = `
module example {
  namespace "urn:example:example";
  prefix ex;

  typedef percentage {
    type int8 {
      range "0 .. 100";
    }
  }

  feature extra;

  container top {
    leaf level {
      type percentage;
      default "50";
    }
    leaf name {
      type string;
    }
  }
}
`

func TestParseAndCompileExampleModule(t *testing.T) {
	ctx := NewContext()
	ctx.EnableAllFeatures()

	mod, err := ctx.ParseModule([]byte(exampleModule))
	if err != nil {
		t.Fatalf("ParseModule: %v", err)
	}
	if mod.Name != "example" || mod.Namespace != "urn:example:example" {
		t.Fatalf("Name/Namespace = %q/%q", mod.Name, mod.Namespace)
	}

	compiled, err := ctx.Compile(mod)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	top := compiled.DataDefs()[0]
	if top.Name() != "top" || top.Kind() != ast.KindContainer {
		t.Fatalf("DataDefs()[0] = %q/%v, want top/container", top.Name(), top.Kind())
	}

	level := top.ChildByName("level")
	if level == nil {
		t.Fatalf("top has no child named level")
	}
	if level.Type().Kind.String() != "int8" {
		t.Fatalf("level.Type() = %v, want int8", level.Type().Kind)
	}
	if got := level.Default(); len(got) != 1 || got[0] != "50" {
		t.Fatalf("level.Default() = %v, want [50]", got)
	}

	name := level.NextSibling()
	if name == nil || name.Name() != "name" {
		t.Fatalf("level.NextSibling() = %v, want name", name)
	}
	if name.NextSibling() != nil {
		t.Fatalf("name.NextSibling() = %v, want nil (last sibling)", name.NextSibling())
	}

	if enabled, declared := compiled.Feature("extra"); !declared || !enabled {
		t.Fatalf("Feature(extra) = %v/%v, want true/true under EnableAllFeatures", enabled, declared)
	}
}

func TestCompileRejectsOutOfRangeDefault(t *testing.T) {
	src := strings.Replace(exampleModule, `default "50";`, `default "200";`, 1)
	ctx := NewContext()
	mod, err := ctx.ParseModule([]byte(src))
	if err != nil {
		t.Fatalf("ParseModule: %v", err)
	}
	if _, err := ctx.Compile(mod); err == nil {
		t.Fatalf("expected a default-out-of-range compile error, got nil")
	}
	if ctx.LastDiagnostic() == nil {
		t.Fatalf("expected LastDiagnostic to record the compile failure")
	}
}

func TestParseModuleRejectsSubmodule(t *testing.T) {
	ctx := NewContext()
	_, err := ctx.ParseModule([]byte(`submodule sub { belongs-to m { prefix m; } }`))
	if err == nil {
		t.Fatalf("expected ParseModule to reject a top-level submodule, got nil")
	}
}

const baseModuleForImportTest = `
module base {
  namespace "urn:example:base";
  prefix b;

  identity animal;

  typedef percentage {
    type uint8 {
      range "0 .. 100";
    }
  }
}
`

const importingModule = `
module importer {
  namespace "urn:example:importer";
  prefix im;

  import base {
    prefix b;
  }

  identity dog {
    base b:animal;
  }

  container top {
    leaf level {
      type b:percentage;
    }
  }
}
`

func TestCompileResolvesImportedModule(t *testing.T) {
	ctx := NewContext()
	if _, err := ctx.ParseModule([]byte(baseModuleForImportTest)); err != nil {
		t.Fatalf("ParseModule(base): %v", err)
	}
	mod, err := ctx.ParseModule([]byte(importingModule))
	if err != nil {
		t.Fatalf("ParseModule(importer): %v", err)
	}
	compiled, err := ctx.Compile(mod)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	level := compiled.DataDefs()[0].ChildByName("level")
	if level == nil || level.Type().Kind.String() != "uint8" {
		t.Fatalf("level = %v, want a uint8 leaf resolved from the imported typedef", level)
	}
}

func TestCompileRejectsUnregisteredImport(t *testing.T) {
	ctx := NewContext()
	mod, err := ctx.ParseModule([]byte(importingModule))
	if err != nil {
		t.Fatalf("ParseModule(importer): %v", err)
	}
	if _, err := ctx.Compile(mod); err == nil {
		t.Fatalf("expected an unresolved-import error since base was never parsed/registered")
	}
}

func TestIncludeSubmoduleMergesBody(t *testing.T) {
	ctx := NewContext()
	mod, err := ctx.ParseModule([]byte(`
module m {
  namespace "urn:m";
  prefix m;
}
`))
	if err != nil {
		t.Fatalf("ParseModule: %v", err)
	}
	sub, err := ctx.ParseSubmodule([]byte(`
submodule s {
  belongs-to m {
    prefix m;
  }
  container extra;
}
`))
	if err != nil {
		t.Fatalf("ParseSubmodule: %v", err)
	}
	if err := IncludeSubmodule(mod, sub); err != nil {
		t.Fatalf("IncludeSubmodule: %v", err)
	}
	if len(mod.Body.DataDefs) != 1 || mod.Body.DataDefs[0].Name != "extra" {
		t.Fatalf("mod.Body.DataDefs = %v, want [extra]", mod.Body.DataDefs)
	}
}

func TestIncludeSubmoduleWrongBelongsToRejected(t *testing.T) {
	ctx := NewContext()
	mod, err := ctx.ParseModule([]byte(`
module m {
  namespace "urn:m";
  prefix m;
}
`))
	if err != nil {
		t.Fatalf("ParseModule: %v", err)
	}
	sub, err := ctx.ParseSubmodule([]byte(`
submodule s {
  belongs-to other {
    prefix o;
  }
}
`))
	if err != nil {
		t.Fatalf("ParseSubmodule: %v", err)
	}
	if err := IncludeSubmodule(mod, sub); err == nil {
		t.Fatalf("expected a belongs-to mismatch error, got nil")
	}
}
