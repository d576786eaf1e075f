package match_test

import (
	"testing"

	"src.gramsh.sh/pkg/datatype"
	"src.gramsh.sh/pkg/gram"
	"src.gramsh.sh/pkg/gramsyntax"
	"src.gramsh.sh/pkg/match"
)

func parseGrammar(t *testing.T, pool *gram.Pool, lines ...string) gram.Node {
	t.Helper()
	p := gramsyntax.NewParser(pool, datatype.NewRegistry())
	var result gram.Node
	for _, l := range lines {
		var err error
		result, err = p.MergeLine(result, "test", l)
		if err != nil {
			t.Fatalf("parsing %q: %v", l, err)
		}
	}
	return result
}

func TestCheckExactMatch(t *testing.T) {
	pool := gram.NewPool()
	g := parseGrammar(t, pool, "show interfaces")

	n, needsTerminal, err := match.Check(g, []string{"show", "interfaces"})
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if n != 2 {
		t.Errorf("Check = %d, want 2", n)
	}
	if needsTerminal {
		t.Errorf("needsTerminal = true, want false")
	}
}

func TestCheckEmptyInput(t *testing.T) {
	pool := gram.NewPool()
	g := parseGrammar(t, pool, "show interfaces")

	n, needsTerminal, err := match.Check(g, nil)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if n != 0 {
		t.Errorf("Check = %d, want 0", n)
	}
	if needsTerminal {
		t.Errorf("needsTerminal = true, want false")
	}
}

func TestCheckWantMore(t *testing.T) {
	pool := gram.NewPool()
	g := parseGrammar(t, pool, "show interfaces")

	n, _, err := match.Check(g, []string{"show"})
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if n <= 1 {
		t.Errorf("Check = %d, want > 1 (want-more)", n)
	}
}

func TestCheckExtraInput(t *testing.T) {
	pool := gram.NewPool()
	g := parseGrammar(t, pool, "show interfaces")

	n, _, err := match.Check(g, []string{"show", "interfaces", "brief"})
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if n != 2 {
		t.Errorf("Check = %d, want 2 (grammar exhausted, extra input)", n)
	}
}

func TestCheckSyntaxMismatch(t *testing.T) {
	pool := gram.NewPool()
	g := parseGrammar(t, pool, "show interfaces")

	n, _, err := match.Check(g, []string{"shwo", "interfaces"})
	if err == nil {
		t.Fatalf("Check: want error")
	}
	if n != -1 {
		t.Errorf("Check = %d, want -1 (mismatch at argument 1)", n)
	}
}

func TestCheckSyntaxMismatchSecondArg(t *testing.T) {
	pool := gram.NewPool()
	g := parseGrammar(t, pool, "show interfaces")

	n, _, err := match.Check(g, []string{"show", "routes"})
	if err == nil {
		t.Fatalf("Check: want error")
	}
	if n != -2 {
		t.Errorf("Check = %d, want -2 (mismatch at argument 2)", n)
	}
}

func TestCheckPrefixFactoredAlternation(t *testing.T) {
	pool := gram.NewPool()
	g := parseGrammar(t, pool, "show interfaces", "show routes")

	for _, words := range [][]string{{"show", "interfaces"}, {"show", "routes"}} {
		n, _, err := match.Check(g, words)
		if err != nil {
			t.Fatalf("Check(%v): %v", words, err)
		}
		if n != 2 {
			t.Errorf("Check(%v) = %d, want 2", words, n)
		}
	}

	n, _, err := match.Check(g, []string{"show", "arp"})
	if err == nil || n != -2 {
		t.Errorf("Check(show arp) = %d, %v, want -2, error", n, err)
	}
}

func TestCheckOptional(t *testing.T) {
	pool := gram.NewPool()
	g := parseGrammar(t, pool, "show [brief]")

	if n, _, err := match.Check(g, []string{"show"}); err != nil || n != 1 {
		t.Errorf("Check(show) = %d, %v, want 1, nil", n, err)
	}
	if n, _, err := match.Check(g, []string{"show", "brief"}); err != nil || n != 2 {
		t.Errorf("Check(show brief) = %d, %v, want 2, nil", n, err)
	}
}

func TestCheckVarargsConsumesRest(t *testing.T) {
	pool := gram.NewPool()
	g := parseGrammar(t, pool, "echo ...")

	n, _, err := match.Check(g, []string{"echo", "a", "b", "c"})
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if n != 4 {
		t.Errorf("Check = %d, want 4", n)
	}
}

func TestCheckPlusGreedy(t *testing.T) {
	pool := gram.NewPool()
	g := parseGrammar(t, pool, "add INTEGER+")

	n, _, err := match.Check(g, []string{"add", "1", "2", "3"})
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if n != 4 {
		t.Errorf("Check = %d, want 4", n)
	}

	n, _, err = match.Check(g, []string{"add"})
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if n <= 1 {
		t.Errorf("Check(add) = %d, want want-more", n)
	}
}

func TestCheckCaseInsensitiveKeyword(t *testing.T) {
	pool := gram.NewPool()
	g := parseGrammar(t, pool, "show/i interfaces")

	n, _, err := match.Check(g, []string{"SHOW", "interfaces"})
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if n != 2 {
		t.Errorf("Check = %d, want 2", n)
	}
}

func TestCheckNeedsTerminal(t *testing.T) {
	pool := gram.NewPool()
	g := parseGrammar(t, pool, "reboot/t")

	_, needsTerminal, err := match.Check(g, []string{"reboot"})
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if !needsTerminal {
		t.Errorf("needsTerminal = false, want true")
	}
}

func TestCheckValidatorWord(t *testing.T) {
	pool := gram.NewPool()
	g := parseGrammar(t, pool, "ping IPADDR")

	n, _, err := match.Check(g, []string{"ping", "10.0.0.1"})
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if n != 2 {
		t.Errorf("Check = %d, want 2", n)
	}

	n, _, err = match.Check(g, []string{"ping", "not-an-ip"})
	if err == nil || n != -2 {
		t.Errorf("Check(ping not-an-ip) = %d, %v, want -2, error", n, err)
	}
}

func TestMatchWord(t *testing.T) {
	pool := gram.NewPool()
	g := parseGrammar(t, pool, "interfaces")
	// g is a single Word node.
	if got := match.MatchWord(g, "interfaces"); got != match.ExactMatch {
		t.Errorf("MatchWord(interfaces) = %v, want ExactMatch", got)
	}
	if got := match.MatchWord(g, "int"); got != match.PrefixMatch {
		t.Errorf("MatchWord(int) = %v, want PrefixMatch", got)
	}
	if got := match.MatchWord(g, "xyz"); got != match.NoMatch {
		t.Errorf("MatchWord(xyz) = %v, want NoMatch", got)
	}
}

func TestMatchMax(t *testing.T) {
	pool := gram.NewPool()
	g := parseGrammar(t, pool, "show interfaces brief")

	matched, consumed := match.MatchMax(pool, g, []string{"show", "interfaces", "oops"})
	if consumed != 2 {
		t.Fatalf("consumed = %d, want 2", consumed)
	}
	if got := gram.Unparse(matched); got != "show interfaces" {
		t.Errorf("Unparse(matched) = %q, want %q", got, "show interfaces")
	}
}
