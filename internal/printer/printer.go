// Package printer implements component C9: rendering a parsed
// ast.Statement tree back to either surface form, used for the
// parse-print-parse round-trip testable property (spec.md section 8)
// and by the CLI's "format" mode.
package printer

import (
	"fmt"
	"strings"

	"github.com/jacoelho/yang/internal/keyword"
	yastxml "github.com/jacoelho/yang/internal/ast"
)

// Compact renders stmt (and its descendants) in YANG's native compact
// (curly-brace) surface form.
func Compact(stmt *yastxml.Statement) string {
	var b strings.Builder
	writeCompact(&b, stmt, 0)
	return b.String()
}

func writeCompact(b *strings.Builder, stmt *yastxml.Statement, depth int) {
	indent(b, depth)
	b.WriteString(keywordText(stmt))
	if stmt.HasArg {
		b.WriteByte(' ')
		b.WriteString(quoteIfNeeded(stmt.Arg))
	}
	if len(stmt.Children) == 0 {
		b.WriteString(";\n")
		return
	}
	b.WriteString(" {\n")
	for _, c := range stmt.Children {
		writeCompact(b, c, depth+1)
	}
	indent(b, depth)
	b.WriteString("}\n")
}

func keywordText(stmt *yastxml.Statement) string {
	if stmt.Keyword == keyword.Custom {
		if stmt.Prefix != "" {
			return stmt.Prefix + ":" + stmt.Local
		}
		return stmt.Local
	}
	return stmt.Keyword.String()
}

func indent(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
}

// quoteIfNeeded emits an argument bare only when the compact lexer reads
// it back as one identifier token (a letter or '_' followed by letters,
// digits, '_', '-', '.' or ':'); any other argument, including the empty
// one, is double-quoted.
func quoteIfNeeded(arg string) string {
	bare := arg != ""
	for i := 0; i < len(arg) && bare; i++ {
		c := arg[i]
		letter := c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
		bare = letter || (i > 0 && ((c >= '0' && c <= '9') || c == '-' || c == '.' || c == ':'))
	}
	if bare {
		return arg
	}
	escaped := strings.ReplaceAll(arg, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `"`, `\"`)
	return `"` + escaped + `"`
}

// YIN renders stmt (and its descendants) as a YIN XML fragment, the
// inverse of internal/yinreader's element/attribute encoding table.
func YIN(stmt *yastxml.Statement) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	writeYIN(&b, stmt, 0, true)
	return b.String()
}

func writeYIN(b *strings.Builder, stmt *yastxml.Statement, depth int, isRoot bool) {
	indent(b, depth)
	name := elementName(stmt)
	b.WriteByte('<')
	b.WriteString(name)
	if isRoot {
		fmt.Fprintf(b, " xmlns=%q", keyword.YINNamespace)
	}

	attrName, hasAttr := attributeNameFor(stmt.Keyword)
	var textChild string
	haveTextChild := needsTextChild(stmt.Keyword) && stmt.HasArg
	if hasAttr && stmt.HasArg {
		fmt.Fprintf(b, " %s=%s", attrName, quoteXMLAttr(stmt.Arg))
	} else if stmt.Keyword == keyword.Custom && stmt.HasArg {
		b.WriteString(` value=`)
		b.WriteString(quoteXMLAttr(stmt.Arg))
	} else if haveTextChild {
		textChild = stmt.Arg
	}

	if len(stmt.Children) == 0 && textChild == "" {
		b.WriteString("/>\n")
		return
	}
	b.WriteString(">\n")
	if textChild != "" {
		indent(b, depth+1)
		fmt.Fprintf(b, "<text>%s</text>\n", escapeXMLText(textChild))
	}
	for _, c := range stmt.Children {
		writeYIN(b, c, depth+1, false)
	}
	indent(b, depth)
	fmt.Fprintf(b, "</%s>\n", name)
}

func elementName(stmt *yastxml.Statement) string {
	if stmt.Keyword == keyword.Custom {
		if stmt.Prefix != "" {
			return stmt.Prefix + ":" + stmt.Local
		}
		return stmt.Local
	}
	return stmt.Keyword.String()
}

func quoteXMLAttr(v string) string {
	return `"` + escapeXMLText(v) + `"`
}

func escapeXMLText(v string) string {
	v = strings.ReplaceAll(v, "&", "&amp;")
	v = strings.ReplaceAll(v, "<", "&lt;")
	v = strings.ReplaceAll(v, ">", "&gt;")
	v = strings.ReplaceAll(v, `"`, "&quot;")
	return v
}

// needsTextChild and attributeNameFor mirror internal/yinreader's
// decoding table in reverse (spec.md section 6's argument-encoding
// table); kept in sync with that package's own copy deliberately, since
// the two run in opposite directions over the same fixed keyword set.
func needsTextChild(id keyword.ID) bool {
	switch id {
	case keyword.Description, keyword.Reference, keyword.Organization, keyword.Contact, keyword.ErrorMessage:
		return true
	default:
		return false
	}
}

func attributeNameFor(id keyword.ID) (string, bool) {
	switch id {
	case keyword.Module, keyword.Submodule, keyword.Action, keyword.AnyData, keyword.AnyXML,
		keyword.Argument, keyword.Base, keyword.Bit, keyword.Case, keyword.Choice,
		keyword.Container, keyword.Enum, keyword.Extension, keyword.Feature,
		keyword.Grouping, keyword.Identity, keyword.IfFeature, keyword.Leaf,
		keyword.LeafList, keyword.List, keyword.Notification, keyword.Rpc,
		keyword.Type, keyword.Typedef, keyword.Units, keyword.Uses:
		return "name", true
	case keyword.Config, keyword.Default, keyword.Deviate, keyword.ErrorAppTag,
		keyword.FractionDigits, keyword.Key, keyword.Length, keyword.Mandatory,
		keyword.MaxElements, keyword.MinElements, keyword.Modifier, keyword.OrderedBy,
		keyword.Path, keyword.Pattern, keyword.Position, keyword.Prefix,
		keyword.Presence, keyword.Range, keyword.RequireInstance, keyword.Status,
		keyword.YangVersion, keyword.YinElement, keyword.Value:
		return "value", true
	case keyword.Augment, keyword.Deviation, keyword.Refine:
		return "target-node", true
	case keyword.BelongsTo, keyword.Import, keyword.Include:
		return "module", true
	case keyword.Must, keyword.When:
		return "condition", true
	case keyword.Namespace:
		return "uri", true
	case keyword.Revision, keyword.RevisionDate:
		return "date", true
	case keyword.Unique:
		return "tag", true
	default:
		return "", false
	}
}
