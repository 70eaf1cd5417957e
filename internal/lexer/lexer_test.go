package lexer

import "testing"

func lexAll(t *testing.T, src string) []Token {
	t.Helper()
	lx, err := New([]byte(src))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var toks []Token
	for {
		tok, err := lx.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		toks = append(toks, tok)
		if tok.Kind == TokEOF {
			return toks
		}
	}
}

func TestLexIdentifiersAndPunctuation(t *testing.T) {
	toks := lexAll(t, `leaf x { type int8; }`)
	want := []TokenKind{TokIdentifier, TokIdentifier, TokBraceOpen, TokIdentifier, TokIdentifier, TokSemicolon, TokBraceClose, TokEOF}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Fatalf("token %d kind = %v, want %v", i, toks[i].Kind, k)
		}
	}
	if toks[1].Text != "x" {
		t.Fatalf("token 1 text = %q, want %q", toks[1].Text, "x")
	}
}

func TestLexPrefixedIdentifier(t *testing.T) {
	toks := lexAll(t, `acme:my-ext "foo";`)
	if toks[0].Kind != TokIdentifier || toks[0].Text != "acme:my-ext" {
		t.Fatalf("token 0 = %+v, want identifier %q", toks[0], "acme:my-ext")
	}
}

func TestLexDoubleQuotedEscapes(t *testing.T) {
	toks := lexAll(t, `"a\nb\t\"c\\d\q"`)
	if toks[0].Kind != TokString {
		t.Fatalf("token 0 kind = %v, want TokString", toks[0].Kind)
	}
	want := "a\nb\t\"c\\d\\q"
	if toks[0].Text != want {
		t.Fatalf("decoded text = %q, want %q", toks[0].Text, want)
	}
}

func TestLexSingleQuotedIsVerbatim(t *testing.T) {
	toks := lexAll(t, `'a\nb'`)
	if toks[0].Text != `a\nb` {
		t.Fatalf("decoded text = %q, want the literal backslash-n untouched", toks[0].Text)
	}
}

func TestLexStringConcatenation(t *testing.T) {
	toks := lexAll(t, `"a" + "b"`)
	want := []TokenKind{TokString, TokPlus, TokString, TokEOF}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Fatalf("token %d kind = %v, want %v", i, toks[i].Kind, k)
		}
	}
}

func TestLexSkipsLineAndBlockComments(t *testing.T) {
	toks := lexAll(t, "leaf x; // trailing\n/* block */ leaf y;")
	var idents []string
	for _, tok := range toks {
		if tok.Kind == TokIdentifier {
			idents = append(idents, tok.Text)
		}
	}
	want := []string{"leaf", "x", "leaf", "y"}
	if len(idents) != len(want) {
		t.Fatalf("identifiers = %v, want %v", idents, want)
	}
	for i := range want {
		if idents[i] != want[i] {
			t.Fatalf("identifiers = %v, want %v", idents, want)
		}
	}
}

func TestLexUnterminatedStringRejected(t *testing.T) {
	lx, err := New([]byte(`"unterminated`))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := lx.Next(); err == nil {
		t.Fatalf("expected an unterminated-string error, got nil")
	}
}

func TestLexUnterminatedBlockCommentRejected(t *testing.T) {
	lx, err := New([]byte(`/* never closed`))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := lx.Next(); err == nil {
		t.Fatalf("expected an unterminated-comment error, got nil")
	}
}

func TestLexInvalidUTF8Rejected(t *testing.T) {
	if _, err := New([]byte{0xff, 0xfe}); err == nil {
		t.Fatalf("expected an invalid-UTF-8 error, got nil")
	}
}

func TestLexUnexpectedCharacterRejected(t *testing.T) {
	lx, err := New([]byte(`#`))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := lx.Next(); err == nil {
		t.Fatalf("expected an unexpected-character error, got nil")
	}
}
