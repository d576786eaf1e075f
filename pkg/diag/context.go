package diag

import (
	"bytes"
	"fmt"
	"strings"

	"src.gramsh.sh/pkg/strutil"
)

// Context couples a Ranging to the source text it was taken from, and knows
// how to render the "offending text, then a caret line" excerpt that both
// grammar/help parse errors and argv validation errors use.
//
// Name identifies the source: a file path for parse errors, or the literal
// typed command line for validation errors.
type Context struct {
	Name   string
	Source string
	Ranging

	savedShowInfo *rangeShowInfo
}

// NewContext creates a new Context.
func NewContext(name, source string, r Ranger) *Context {
	return &Context{Name: name, Source: source, Ranging: r.Range()}
}

// rangeShowInfo holds the pieces of Source needed to render an excerpt.
type rangeShowInfo struct {
	// Head is the text immediately before Culprit, back to (not including)
	// the previous line boundary.
	Head string
	// Culprit is Source[From:To], with a trailing newline stripped.
	Culprit string
	// Tail is the text immediately after Culprit, up to (not including)
	// the next line boundary.
	Tail string
}

var (
	culpritStart = "\033[1;4m"
	culpritEnd   = "\033[m"
	// culpritPlaceholder is shown when Culprit is empty, e.g. for an
	// error at the position just past the end of the source.
	culpritPlaceholder = "^"
)

func (c *Context) showInfo() *rangeShowInfo {
	if c.savedShowInfo != nil {
		return c.savedShowInfo
	}
	before := c.Source[:c.From]
	culprit := c.Source[c.From:c.To]
	after := c.Source[c.To:]

	head := lastLine(before)
	var tail string
	if strings.HasSuffix(culprit, "\n") {
		culprit = culprit[:len(culprit)-1]
	} else {
		tail = firstLine(after)
	}

	c.savedShowInfo = &rangeShowInfo{head, culprit, tail}
	return c.savedShowInfo
}

// Show renders the excerpt on its own line(s), prefixed with the source
// name.
func (c *Context) Show(indent string) string {
	if err := c.checkPosition(); err != nil {
		return err.Error()
	}
	return c.Name + ":\n" + indent + c.relevantSource(indent)
}

// ShowCompact is like Show, but keeps the source name on the same line as
// the excerpt.
func (c *Context) ShowCompact(indent string) string {
	if err := c.checkPosition(); err != nil {
		return err.Error()
	}
	desc := c.Name + ": "
	descIndent := strings.Repeat(" ", len(desc))
	return desc + c.relevantSource(indent+descIndent)
}

func (c *Context) checkPosition() error {
	if c.From < 0 || c.To > len(c.Source) || c.From > c.To {
		return fmt.Errorf("%s: invalid position %d-%d", c.Name, c.From, c.To)
	}
	return nil
}

func (c *Context) relevantSource(indent string) string {
	info := c.showInfo()

	var buf bytes.Buffer
	buf.WriteString(info.Head)

	culprit := info.Culprit
	if culprit == "" {
		culprit = culpritPlaceholder
	}
	for i, line := range strings.Split(culprit, "\n") {
		if i > 0 {
			buf.WriteByte('\n')
			buf.WriteString(indent)
		}
		buf.WriteString(culpritStart)
		buf.WriteString(line)
		buf.WriteString(culpritEnd)
	}
	buf.WriteString(info.Tail)
	return buf.String()
}

// Caret renders the two-line "source text, caret underneath" excerpt spec.md
// §7 mandates for both grammar-file and CLI-input errors: the full line,
// then a line of spaces with a caret under the offending byte.
func (c *Context) Caret() string {
	line := c.Source
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	col := c.From
	if col > len(line) {
		col = len(line)
	}
	return line + "\n" + strings.Repeat(" ", col) + "^"
}

func firstLine(s string) string {
	return s[:strutil.FindFirstEOL(s)]
}

func lastLine(s string) string {
	return s[strutil.FindLastSOL(s):]
}
