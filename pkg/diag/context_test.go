package diag

import "testing"

func TestContext_Show(t *testing.T) {
	src := "concat foo [bar]\nbadtoken $ baz\n"
	// "$" is the byte at index 26 within src.
	from := 26
	ctx := NewContext("grammar.gram", src, Ranging{from, from + 1})
	got := ctx.Show("  ")
	wantPrefix := "grammar.gram:\n  "
	if len(got) < len(wantPrefix) || got[:len(wantPrefix)] != wantPrefix {
		t.Errorf("Show() = %q, want prefix %q", got, wantPrefix)
	}
}

func TestContext_Show_outOfBounds(t *testing.T) {
	ctx := NewContext("x", "short", Ranging{0, 100})
	got := ctx.Show("")
	if got == "" {
		t.Errorf("Show() with out-of-bounds range should report an error, got empty string")
	}
}

func TestContext_ShowCompact(t *testing.T) {
	src := "one two three"
	ctx := NewContext("input", src, Ranging{4, 7})
	got := ctx.ShowCompact("")
	wantPrefix := "input: "
	if len(got) < len(wantPrefix) || got[:len(wantPrefix)] != wantPrefix {
		t.Errorf("ShowCompact() = %q, want prefix %q", got, wantPrefix)
	}
}

func TestContext_Caret(t *testing.T) {
	ctx := NewContext("input", "quit now", PointRanging(5))
	got := ctx.Caret()
	want := "quit now\n     ^"
	if got != want {
		t.Errorf("Caret() = %q, want %q", got, want)
	}
}
