package strings

import (
	"errors"
	"testing"
)

func TestSplitCommandLine(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: nil},
		{name: "blank", input: "   \t", want: nil},
		{name: "plain words", input: "add milk", want: []string{"add", "milk"}},
		{name: "double quotes", input: `add "Buy milk" --priority High`, want: []string{"add", "Buy milk", "--priority", "High"}},
		{name: "single quotes", input: `add 'it "works"'`, want: []string{"add", `it "works"`}},
		{name: "escaped space", input: `done Buy\ milk`, want: []string{"done", "Buy milk"}},
		{name: "escaped quote in double quotes", input: `add "say \"hi\""`, want: []string{"add", `say "hi"`}},
		{name: "backslash kept in double quotes", input: `add "C:\path"`, want: []string{"add", `C:\path`}},
		{name: "empty quoted argument", input: `edit x --description ""`, want: []string{"edit", "x", "--description", ""}},
		{name: "adjacent quoted parts", input: `a"b c"d`, want: []string{"ab cd"}},
		{name: "flag with equals", input: `add x --category="Home office"`, want: []string{"add", "x", "--category=Home office"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := SplitCommandLine(tc.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("SplitCommandLine(%q) = %q, want %q", tc.input, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("SplitCommandLine(%q) = %q, want %q", tc.input, got, tc.want)
				}
			}
		})
	}
}

func TestSplitCommandLineErrors(t *testing.T) {
	if _, err := SplitCommandLine(`add "Buy milk`); !errors.Is(err, ErrUnterminatedQuote) {
		t.Fatalf("expected ErrUnterminatedQuote, got %v", err)
	}
	if _, err := SplitCommandLine(`add 'x`); !errors.Is(err, ErrUnterminatedQuote) {
		t.Fatalf("expected ErrUnterminatedQuote, got %v", err)
	}
	if _, err := SplitCommandLine(`add x\`); !errors.Is(err, ErrTrailingEscape) {
		t.Fatalf("expected ErrTrailingEscape, got %v", err)
	}
}
