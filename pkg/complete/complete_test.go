package complete_test

import (
	"reflect"
	"testing"

	"src.gramsh.sh/pkg/complete"
	"src.gramsh.sh/pkg/datatype"
	"src.gramsh.sh/pkg/gram"
	"src.gramsh.sh/pkg/gramsyntax"
)

func parse(t *testing.T, pool *gram.Pool, lines ...string) gram.Node {
	t.Helper()
	p := gramsyntax.NewParser(pool, datatype.NewRegistry())
	var g gram.Node
	for _, l := range lines {
		var err error
		g, err = p.MergeLine(g, "test", l)
		if err != nil {
			t.Fatalf("parsing %q: %v", l, err)
		}
	}
	return g
}

func TestCompleteFirstWord(t *testing.T) {
	pool := gram.NewPool()
	g := parse(t, pool, "show interfaces", "show routes", "set hostname")

	got, truncated := complete.Complete(pool, g, nil, "", 10)
	if truncated {
		t.Errorf("truncated = true, want false")
	}
	want := []string{"set", "show"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Complete = %v, want %v", got, want)
	}
}

func TestCompletePrefix(t *testing.T) {
	pool := gram.NewPool()
	g := parse(t, pool, "show interfaces", "show routes", "set hostname")

	got, _ := complete.Complete(pool, g, nil, "sh", 10)
	want := []string{"show"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Complete(sh) = %v, want %v", got, want)
	}
}

func TestCompleteSecondWord(t *testing.T) {
	pool := gram.NewPool()
	g := parse(t, pool, "show interfaces", "show routes")

	got, _ := complete.Complete(pool, g, []string{"show"}, "", 10)
	want := []string{"interfaces", "routes"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Complete(show <tab>) = %v, want %v", got, want)
	}
}

func TestCompleteOptionalOffersBothBranches(t *testing.T) {
	pool := gram.NewPool()
	g := parse(t, pool, "show [brief]")

	got, _ := complete.Complete(pool, g, []string{"show"}, "", 10)
	want := []string{"brief"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Complete = %v, want %v", got, want)
	}
	if !complete.IsComplete(pool, g, []string{"show"}) {
		t.Errorf("IsComplete(show) = false, want true (brief is optional)")
	}
}

func TestCompleteValidatorWordSuppressed(t *testing.T) {
	pool := gram.NewPool()
	g := parse(t, pool, "ping IPADDR")

	got, _ := complete.Complete(pool, g, []string{"ping"}, "", 10)
	if len(got) != 0 {
		t.Errorf("Complete(ping <tab>) = %v, want no candidates (validator word suppressed)", got)
	}
}

func TestCompleteVarargsCandidate(t *testing.T) {
	pool := gram.NewPool()
	g := parse(t, pool, "echo ...")

	got, _ := complete.Complete(pool, g, []string{"echo"}, "", 10)
	want := []string{"..."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Complete(echo <tab>) = %v, want %v", got, want)
	}
}

func TestCompleteNoMatchOnBadPrefix(t *testing.T) {
	pool := gram.NewPool()
	g := parse(t, pool, "show interfaces")

	got, _ := complete.Complete(pool, g, nil, "zzz", 10)
	if len(got) != 0 {
		t.Errorf("Complete(zzz) = %v, want none", got)
	}
}
