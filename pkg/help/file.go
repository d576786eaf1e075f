package help

import (
	"bufio"
	"io"
	"strings"
)

// ParseFile reads a help source file (spec.md §6, "Help source file") into
// b. Lines beginning with one or more '#' are headings whose remaining text
// is a plain, space-separated command path. Lines beginning with exactly
// four spaces immediately under a heading are short-form help; every other
// non-blank line up to the next heading or EOF is appended to that
// heading's long-form help.
func ParseFile(b *Binder, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	var path []string
	var long, short []string

	flush := func() error {
		if path == nil {
			return nil
		}
		if len(long) > 0 {
			if err := b.bind(path, Long, strings.Join(long, "\n")); err != nil {
				return err
			}
		}
		if len(short) > 0 {
			if err := b.bind(path, Short, strings.Join(short, "\n")); err != nil {
				return err
			}
		}
		return nil
	}

	for scanner.Scan() {
		line := scanner.Text()
		if isHeading(line) {
			if err := flush(); err != nil {
				return err
			}
			path = strings.Fields(strings.TrimLeft(line, "#"))
			long, short = nil, nil
			continue
		}
		if path == nil {
			continue // prose before the first heading has nowhere to attach
		}
		if strings.HasPrefix(line, "    ") && !strings.HasPrefix(line, "     ") {
			short = append(short, strings.TrimPrefix(line, "    "))
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		long = append(long, line)
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return flush()
}

func isHeading(line string) bool {
	return len(line) > 0 && line[0] == '#'
}
