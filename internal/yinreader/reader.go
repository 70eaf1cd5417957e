// Package yinreader drives the YIN/XML surface form (component C1's XML
// reader) through antchfx/xmlquery, producing the same generic
// ast.Statement tree the compact reader produces.
//
// xmlquery already resolves in-scope xmlns declarations while parsing, so
// this package only needs to read each Node's resolved NamespaceURI to
// classify elements by namespace membership, as spec.md section 4.1
// requires; it does not re-implement namespace scoping itself.
package yinreader

import (
	"bytes"
	"strings"

	"github.com/antchfx/xmlquery"

	yangerrors "github.com/jacoelho/yang/errors"
	"github.com/jacoelho/yang/internal/ast"
	"github.com/jacoelho/yang/internal/keyword"
)

// Read parses an entire YIN document into the generic statement tree
// rooted at its <module> or <submodule> element.
func Read(src []byte) (*ast.Statement, error) {
	doc, err := xmlquery.Parse(bytes.NewReader(src))
	if err != nil {
		return nil, yangerrors.Wrap(yangerrors.Syntax, err, "malformed XML in YIN source")
	}
	root := firstElement(doc)
	if root == nil {
		return nil, yangerrors.New(yangerrors.Syntax, "YIN document has no root element")
	}
	return convert(root, keyword.Unknown)
}

func firstElement(n *xmlquery.Node) *xmlquery.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			return c
		}
	}
	return nil
}

func convert(n *xmlquery.Node, parentID keyword.ID) (*ast.Statement, error) {
	id, ok := keyword.MatchXML(n.NamespaceURI, n.Data, parentID)
	if !ok {
		return nil, yangerrors.Newf(yangerrors.Syntax,
			"element %q has no resolvable namespace", n.Data)
	}

	stmt := &ast.Statement{Keyword: id, Prefix: n.Prefix, Local: n.Data}

	argKind := keyword.Arg(id)
	switch {
	case id == keyword.Custom:
		// Extension instances use their own declared argument-element
		// convention; absent a registered extension schema, fall back to
		// a single unnamespaced attribute as a best-effort argument.
		if v, found := firstPlainAttr(n); found {
			stmt.Arg, stmt.HasArg = v, true
		}
	case argKind != keyword.NoArgument:
		attrName, hasAttr := attributeNameFor(id)
		if hasAttr {
			if v, found := findAttr(n, attrName); found {
				stmt.Arg, stmt.HasArg = v, true
			} else {
				return nil, yangerrors.Newf(yangerrors.Syntax,
					"statement %q is missing its required %q attribute", n.Data, attrName)
			}
		}
		// Keywords whose argument is carried by a required <text>/<value>
		// child (TEXT/VALUE pseudo-keywords) are filled in below, while
		// walking children.
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != xmlquery.ElementNode {
			continue
		}
		childID, ok := keyword.MatchXML(c.NamespaceURI, c.Data, id)
		if !ok {
			return nil, yangerrors.Newf(yangerrors.Syntax,
				"element %q has no resolvable namespace", c.Data)
		}
		if childID == keyword.TEXT || childID == keyword.VALUE {
			stmt.Arg, stmt.HasArg = collectText(c), true
			continue
		}
		child, err := convert(c, id)
		if err != nil {
			return nil, err
		}
		stmt.Children = append(stmt.Children, child)
	}

	if needsTextChild(id) && !stmt.HasArg {
		return nil, yangerrors.Newf(yangerrors.Syntax,
			"statement %q is missing its required text child", n.Data)
	}

	return stmt, nil
}

func needsTextChild(id keyword.ID) bool {
	switch id {
	case keyword.Description, keyword.Reference, keyword.Organization, keyword.Contact, keyword.ErrorMessage:
		return true
	default:
		return false
	}
}

// collectText decodes the character data of a <text>/<value> element.
// xmlquery has already resolved entity and numeric character references
// while parsing, so this only concatenates the element's text runs.
func collectText(n *xmlquery.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.TextNode || c.Type == xmlquery.CharDataNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}

func findAttr(n *xmlquery.Node, local string) (string, bool) {
	for _, a := range n.Attr {
		if a.Name.Space == "" && a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

func firstPlainAttr(n *xmlquery.Node) (string, bool) {
	for _, a := range n.Attr {
		if a.Name.Space == "" {
			return a.Value, true
		}
	}
	return "", false
}

// attributeNameFor maps a keyword to the fixed attribute name its
// argument is encoded under in the YIN form, per spec.md section 6's
// table: name | value | target-node | module | condition | uri | date |
// tag | text. Keywords not present here carry their argument via a
// <text>/<value> child instead (see needsTextChild) or take no argument.
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
