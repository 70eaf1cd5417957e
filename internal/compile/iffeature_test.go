package compile

import "testing"

func TestParseIfFeatureEval(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		enabled map[string]bool
		want    bool
	}{
		{name: "bare reference true", expr: "a", enabled: map[string]bool{"a": true}, want: true},
		{name: "bare reference false", expr: "a", enabled: map[string]bool{"a": false}, want: false},
		{name: "not", expr: "not a", enabled: map[string]bool{"a": false}, want: true},
		{name: "and binds tighter than or", expr: "a and b or c",
			enabled: map[string]bool{"a": true, "b": false, "c": true}, want: true},
		{name: "and short-circuits false", expr: "a and b",
			enabled: map[string]bool{"a": false, "b": true}, want: false},
		{name: "parentheses override precedence", expr: "a and (b or c)",
			enabled: map[string]bool{"a": true, "b": false, "c": true}, want: true},
		{name: "double negation", expr: "not (not a)", enabled: map[string]bool{"a": true}, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := parseIfFeature(tt.expr)
			if err != nil {
				t.Fatalf("parseIfFeature(%q): %v", tt.expr, err)
			}
			if got := expr.eval(tt.enabled); got != tt.want {
				t.Fatalf("eval(%q) = %v, want %v", tt.expr, got, tt.want)
			}
		})
	}
}

func TestParseIfFeatureSyntaxErrors(t *testing.T) {
	for _, expr := range []string{"", "(a", "a)", "and a", "a and"} {
		if _, err := parseIfFeature(expr); err == nil {
			t.Errorf("parseIfFeature(%q): expected an error, got nil", expr)
		}
	}
}
