package argv_test

import (
	"reflect"
	"testing"

	"src.gramsh.sh/pkg/argv"
)

func TestTokenizeBasic(t *testing.T) {
	got, err := argv.Tokenize("show interfaces brief")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	want := []string{"show", "interfaces", "brief"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenizeQuotedPreservesQuotes(t *testing.T) {
	got, err := argv.Tokenize(`echo "hello world" there`)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	want := []string{"echo", `"hello world"`, "there"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenizeCommentStopsLine(t *testing.T) {
	got, err := argv.Tokenize("show version # trailing comment")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	want := []string{"show", "version"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenizeUnterminatedQuote(t *testing.T) {
	_, err := argv.Tokenize(`echo "unterminated`)
	if err == nil {
		t.Fatalf("Tokenize: want error, got nil")
	}
}

func TestTokenizeQuotedMustBeFollowedByWhitespace(t *testing.T) {
	_, err := argv.Tokenize(`echo "hi"there`)
	if err == nil {
		t.Fatalf("Tokenize: want error, got nil")
	}
}

func TestTokenizeBackslashOutsideQuotesIsOrdinary(t *testing.T) {
	got, err := argv.Tokenize(`echo hello\ world`)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	want := []string{"echo", `hello\`, "world"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenizeBackslashEscapesInsideQuotes(t *testing.T) {
	got, err := argv.Tokenize(`echo "hello \"world\""`)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	want := []string{"echo", `"hello \"world\""`}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenizeWordAdjacentToQuoteIsError(t *testing.T) {
	_, err := argv.Tokenize(`abc"def"`)
	if err == nil {
		t.Fatalf("Tokenize: want error, got nil")
	}
}

func TestJoinAndOffsets(t *testing.T) {
	words := []string{"show", "interfaces", "brief"}
	line := argv.Join(words)
	if line != "show interfaces brief" {
		t.Errorf("Join = %q", line)
	}
	offsets := argv.Offsets(words)
	for i, w := range words {
		if line[offsets[i]:offsets[i]+len(w)] != w {
			t.Errorf("Offsets[%d] = %d does not point at %q in %q", i, offsets[i], w, line)
		}
	}
}
