package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func pipe(t *testing.T) (*os.File, *os.File) {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Pipe: %v", err)
	}
	t.Cleanup(func() { r.Close(); w.Close() })
	return r, w
}

func run(t *testing.T, stdin string, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	inR, inW := pipe(t)
	outR, outW := pipe(t)
	errR, errW := pipe(t)

	go func() {
		inW.WriteString(stdin)
		inW.Close()
	}()

	code = Run([3]*os.File{inR, outW, errW}, args)
	outW.Close()
	errW.Close()

	var outBuf, errBuf bytes.Buffer
	outBuf.ReadFrom(outR)
	errBuf.ReadFrom(errR)
	return outBuf.String(), errBuf.String(), code
}

func TestRunMissingGrammarFlag(t *testing.T) {
	_, stderr, code := run(t, "")
	if code != 2 {
		t.Errorf("code = %d, want 2", code)
	}
	if !strings.Contains(stderr, "no grammar file") {
		t.Errorf("stderr = %q, want mention of missing grammar file", stderr)
	}
}

func TestRunSyntaxDump(t *testing.T) {
	dir := t.TempDir()
	grammar := writeFile(t, dir, "grammar.txt", "show interfaces\nshow routes\n")

	stdout, stderr, code := run(t, "", "-grammar", grammar, "-syntax")
	if code != 0 {
		t.Fatalf("code = %d, stderr = %q", code, stderr)
	}
	if !strings.Contains(stdout, "show (interfaces|routes)") {
		t.Errorf("stdout = %q, want the prefix-factored grammar listed", stdout)
	}
}

func TestRunMatchesLine(t *testing.T) {
	dir := t.TempDir()
	grammar := writeFile(t, dir, "grammar.txt", "show interfaces\n")

	stdout, stderr, code := run(t, "show interfaces\n", "-grammar", grammar)
	if code != 0 {
		t.Fatalf("code = %d, stderr = %q", code, stderr)
	}
	if !strings.Contains(stdout, "ok") {
		t.Errorf("stdout = %q, want an ok line", stdout)
	}
}

func TestRunReportsMismatch(t *testing.T) {
	dir := t.TempDir()
	grammar := writeFile(t, dir, "grammar.txt", "show interfaces\n")

	_, stderr, code := run(t, "show routes\n", "-grammar", grammar)
	if code != 0 {
		t.Fatalf("code = %d, stderr = %q", code, stderr)
	}
	if !strings.Contains(stderr, "No match") {
		t.Errorf("stderr = %q, want a no-match error", stderr)
	}
}

func TestRunUsesConfigFile(t *testing.T) {
	dir := t.TempDir()
	grammar := writeFile(t, dir, "grammar.txt", "show interfaces\n")
	cfg := writeFile(t, dir, "gramsh.yaml", "grammar_file: "+grammar+"\nprompt: \"router# \"\n")

	stdout, stderr, code := run(t, "show interfaces\n", "-config", cfg)
	if code != 0 {
		t.Fatalf("code = %d, stderr = %q", code, stderr)
	}
	if !strings.Contains(stdout, "router# ") {
		t.Errorf("stdout = %q, want the configured prompt", stdout)
	}
}
