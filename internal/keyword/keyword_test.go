package keyword

import "testing"

func TestMatchCompactKnownKeyword(t *testing.T) {
	if id := MatchCompact("", "leaf"); id != Leaf {
		t.Fatalf("MatchCompact(\"\", \"leaf\") = %v, want Leaf", id)
	}
}

func TestMatchCompactPrefixedIsCustom(t *testing.T) {
	if id := MatchCompact("acme", "marker"); id != Custom {
		t.Fatalf("MatchCompact(\"acme\", \"marker\") = %v, want Custom", id)
	}
}

func TestMatchCompactUnknownUnprefixedIsCustom(t *testing.T) {
	if id := MatchCompact("", "not-a-keyword"); id != Custom {
		t.Fatalf("MatchCompact(\"\", ...) = %v, want Custom", id)
	}
}

func TestMatchXMLKnownElement(t *testing.T) {
	id, ok := MatchXML(YINNamespace, "leaf", Unknown)
	if !ok || id != Leaf {
		t.Fatalf("MatchXML(leaf) = %v/%v, want Leaf/true", id, ok)
	}
}

func TestMatchXMLOutsideNamespaceIsCustom(t *testing.T) {
	id, ok := MatchXML("urn:acme:ext", "marker", Unknown)
	if !ok || id != Custom {
		t.Fatalf("MatchXML(outside-namespace) = %v/%v, want Custom/true", id, ok)
	}
}

func TestMatchXMLUnrecognizedInNamespaceFails(t *testing.T) {
	_, ok := MatchXML(YINNamespace, "bogus-statement", Unknown)
	if ok {
		t.Fatalf("MatchXML(bogus-statement) = ok, want not-ok")
	}
}

func TestMatchXMLValuePseudoKeyword(t *testing.T) {
	id, ok := MatchXML(YINNamespace, "value", ErrorMessage)
	if !ok || id != VALUE {
		t.Fatalf("MatchXML(value under error-message) = %v/%v, want VALUE/true", id, ok)
	}
	id, ok = MatchXML(YINNamespace, "value", Leaf)
	if !ok || id != Value {
		t.Fatalf("MatchXML(value under leaf) = %v/%v, want Value/true", id, ok)
	}
}

func TestArgKindForKnownKeywords(t *testing.T) {
	if Arg(Leaf) == NoArgument {
		t.Fatalf("Arg(Leaf) = NoArgument, want an argument kind")
	}
	if Arg(Input) != NoArgument {
		t.Fatalf("Arg(Input) = %v, want NoArgument", Arg(Input))
	}
}
