package help_test

import (
	"bytes"
	"strings"
	"testing"

	"src.gramsh.sh/pkg/datatype"
	"src.gramsh.sh/pkg/gram"
	"src.gramsh.sh/pkg/help"
)

const source = `# show interfaces
    display interface counters
Show detailed statistics for every configured network interface,
including packet and byte counters.

# show routes
    display the routing table
Show every route currently installed in the forwarding table.

# set hostname
    change the device hostname
`

func TestParseFileAndShowHelp(t *testing.T) {
	pool := gram.NewPool()
	b := help.NewBinder(pool)
	if err := help.ParseFile(b, strings.NewReader(source)); err != nil {
		t.Fatalf("ParseFile: %v", err)
	}

	long := b.ShowHelp([]string{"show", "interfaces"})
	if !strings.Contains(long, "detailed statistics") {
		t.Errorf("ShowHelp(show interfaces) = %q, want it to mention detailed statistics", long)
	}

	if got := b.ShowHelp([]string{"set", "hostname"}); got != "" {
		t.Errorf("ShowHelp(set hostname) = %q, want empty (no long help)", got)
	}

	if got := b.ShowHelp([]string{"nope"}); got != "" {
		t.Errorf("ShowHelp(nope) = %q, want empty", got)
	}
}

func TestPrintContextHelp(t *testing.T) {
	pool := gram.NewPool()
	b := help.NewBinder(pool)
	if err := help.ParseFile(b, strings.NewReader(source)); err != nil {
		t.Fatalf("ParseFile: %v", err)
	}

	var buf bytes.Buffer
	b.PrintContextHelp(&buf, []string{"show", "routes"})
	if !strings.Contains(buf.String(), "display the routing table") {
		t.Errorf("PrintContextHelp output = %q, want it to contain the short help", buf.String())
	}
}

func TestPrintContextHelpSubcommands(t *testing.T) {
	pool := gram.NewPool()
	b := help.NewBinder(pool)
	if err := help.ParseFile(b, strings.NewReader(source)); err != nil {
		t.Fatalf("ParseFile: %v", err)
	}

	show, err := gram.Word(pool, "show", false, false)
	if err != nil {
		t.Fatalf("Word: %v", err)
	}
	interfaces, _ := gram.Word(pool, "interfaces", false, false)
	routes, _ := gram.Word(pool, "routes", false, false)
	alt, err := gram.Alternate(pool, interfaces, routes)
	if err != nil {
		t.Fatalf("Alternate: %v", err)
	}
	syntax, err := gram.Concat(pool, show, alt)
	if err != nil {
		t.Fatalf("Concat: %v", err)
	}

	var buf bytes.Buffer
	help.PrintContextHelpSubcommands(&buf, pool, syntax, b, []string{"show"})
	out := buf.String()
	if !strings.Contains(out, "interfaces") || !strings.Contains(out, "display interface counters") {
		t.Errorf("PrintContextHelpSubcommands output = %q, missing interfaces entry", out)
	}
	if !strings.Contains(out, "routes") || !strings.Contains(out, "display the routing table") {
		t.Errorf("PrintContextHelpSubcommands output = %q, missing routes entry", out)
	}
	syntax.Release()
}

func TestPrintContextHelpSubcommandsKeepsValidatorWords(t *testing.T) {
	pool := gram.NewPool()
	b := help.NewBinder(pool)

	ping, err := gram.Word(pool, "ping", false, false)
	if err != nil {
		t.Fatalf("Word: %v", err)
	}
	addr, err := gram.ValidatorWord(pool, "IPV4ADDR", datatype.IPv4Addr{})
	if err != nil {
		t.Fatalf("ValidatorWord: %v", err)
	}
	syntax, err := gram.Concat(pool, ping, addr)
	if err != nil {
		t.Fatalf("Concat: %v", err)
	}

	var buf bytes.Buffer
	help.PrintContextHelpSubcommands(&buf, pool, syntax, b, []string{"ping"})
	out := buf.String()
	if !strings.Contains(out, "IPV4ADDR") {
		t.Errorf("PrintContextHelpSubcommands output = %q, want it to name the IPV4ADDR datatype rather than drop it", out)
	}
	syntax.Release()
}
