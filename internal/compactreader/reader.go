// Package compactreader drives the lexer (component C1's compact-form
// tokenizer) through a recursive descent that produces the generic
// ast.Statement tree shared with the YIN reader.
package compactreader

import (
	"fmt"
	"strings"

	yangerrors "github.com/jacoelho/yang/errors"
	"github.com/jacoelho/yang/internal/ast"
	"github.com/jacoelho/yang/internal/keyword"
	"github.com/jacoelho/yang/internal/lexer"
	"github.com/jacoelho/yang/internal/token"
)

// Read parses an entire compact-form module or submodule source buffer
// into the generic statement tree rooted at the top-level statement.
func Read(src []byte) (*ast.Statement, error) {
	lx, err := lexer.New(src)
	if err != nil {
		return nil, err
	}
	r := &reader{lx: lx}
	if err := r.advance(); err != nil {
		return nil, err
	}
	stmt, err := r.statement()
	if err != nil {
		return nil, err
	}
	if r.tok.Kind != lexer.TokEOF {
		return nil, r.errf("unexpected trailing content after top-level statement")
	}
	return stmt, nil
}

type reader struct {
	lx  *lexer.Lexer
	tok lexer.Token
}

func (r *reader) advance() error {
	t, err := r.lx.Next()
	if err != nil {
		return err
	}
	r.tok = t
	return nil
}

func (r *reader) errf(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return yangerrors.Newf(yangerrors.Syntax, "syntax error at line %d column %d: %s",
		r.tok.Line, r.tok.Column, msg)
}

// statement parses exactly one statement: keyword [argument] (';' | '{' stmt* '}').
func (r *reader) statement() (*ast.Statement, error) {
	if r.tok.Kind != lexer.TokIdentifier {
		return nil, r.errf("expected a statement keyword")
	}
	pos := token.Position{Line: r.tok.Line, Column: r.tok.Column}
	prefix, local := splitPrefixed(r.tok.Text)
	id := keyword.MatchCompact(prefix, local)
	if err := r.advance(); err != nil {
		return nil, err
	}

	stmt := &ast.Statement{Keyword: id, Prefix: prefix, Local: local, Pos: pos}

	argKind := keyword.Arg(id)
	if id == keyword.Custom {
		// Extension instances may or may not carry an argument; treat a
		// leading string/identifier token (anything other than ';'/'{')
		// as the argument.
		if r.tok.Kind == lexer.TokString || r.tok.Kind == lexer.TokIdentifier {
			argKind = keyword.StringArgument
		} else {
			argKind = keyword.NoArgument
		}
	}

	if argKind != keyword.NoArgument {
		arg, err := r.argument()
		if err != nil {
			return nil, err
		}
		stmt.Arg = arg
		stmt.HasArg = true
	}

	switch r.tok.Kind {
	case lexer.TokSemicolon:
		if err := r.advance(); err != nil {
			return nil, err
		}
	case lexer.TokBraceOpen:
		if err := r.advance(); err != nil {
			return nil, err
		}
		for r.tok.Kind != lexer.TokBraceClose {
			if r.tok.Kind == lexer.TokEOF {
				return nil, r.errf("unterminated block for %q", local)
			}
			child, err := r.statement()
			if err != nil {
				return nil, err
			}
			stmt.Children = append(stmt.Children, child)
		}
		if err := r.advance(); err != nil {
			return nil, err
		}
	default:
		return nil, r.errf("expected ';' or '{' after statement %q", local)
	}

	return stmt, nil
}

// argument reads one logical argument value: either a bare identifier
// token, or one-or-more quoted string segments concatenated with '+'.
// Concatenation preserves escape semantics but not surrounding
// whitespace, per spec.md section 4.1.
func (r *reader) argument() (string, error) {
	if r.tok.Kind == lexer.TokIdentifier {
		val := r.tok.Text
		return val, r.advance()
	}
	if r.tok.Kind != lexer.TokString {
		return "", r.errf("expected an argument")
	}
	var b strings.Builder
	b.WriteString(r.tok.Text)
	if err := r.advance(); err != nil {
		return "", err
	}
	for r.tok.Kind == lexer.TokPlus {
		if err := r.advance(); err != nil {
			return "", err
		}
		if r.tok.Kind != lexer.TokString {
			return "", r.errf("expected a quoted string after '+'")
		}
		b.WriteString(r.tok.Text)
		if err := r.advance(); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

func splitPrefixed(s string) (prefix, local string) {
	if i := strings.IndexByte(s, ':'); i >= 0 {
		return s[:i], s[i+1:]
	}
	return "", s
}
