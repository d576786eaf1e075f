package gramsyntax

import (
	"bufio"
	"io"

	"src.gramsh.sh/pkg/errutil"
	"src.gramsh.sh/pkg/gram"
)

// ParseFile reads every line of r, merging each non-blank, non-comment line
// into one top-level alternation with MergeLine, and stops at the first
// error (spec.md §4.3's parse_file). name is used to identify the source in
// any *Error the caller renders.
func ParseFile(p *Parser, name string, r io.Reader) (gram.Node, error) {
	var result gram.Node
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		var err error
		result, err = p.MergeLine(result, name, scanner.Text())
		if err != nil {
			return gram.Node{}, err
		}
	}
	if err := scanner.Err(); err != nil {
		if !result.IsZero() {
			result.Release()
		}
		return gram.Node{}, err
	}
	return result, nil
}

// ParseFileCollecting is like ParseFile but keeps going after an error,
// reporting every offending line at once via errutil.Multi instead of
// aborting at the first (useful for tooling that lints a whole grammar
// file; ParseFile's abort-on-first behavior remains the default because it
// matches spec.md §4.3's parse_file).
func ParseFileCollecting(p *Parser, name string, r io.Reader) (gram.Node, error) {
	var result gram.Node
	var errs []error
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		parsed, err := p.ParseLine(name, scanner.Text())
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if parsed.IsZero() {
			continue
		}
		if result.IsZero() {
			result = parsed
			continue
		}
		result, err = gram.Alternate(p.Pool, result, parsed)
		if err != nil {
			errs = append(errs, err)
		}
	}
	if err := errutil.Multi(errs...); err != nil {
		return result, err
	}
	return result, nil
}
