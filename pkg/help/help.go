// Package help implements the Help Binder (spec.md §4.7): a parser that
// turns a headings-and-prose help file into two parallel grammar forests,
// one for long-form help and one for short-form help, and lookups that
// resolve an argument vector to the help text bound to it.
package help

import "src.gramsh.sh/pkg/gram"

// Kind tags a help leaf as long-form or short-form, stored via
// gram.ForceWord's opaque tag field.
type Kind int

const (
	Long  Kind = 1
	Short Kind = 2
)

// Binder holds the two help forests. bind builds long_help and
// short_help as spec.md §4.7 describes: `alternate(existing,
// concat(command_path, help_leaf))`.
type Binder struct {
	Pool  *gram.Pool
	Long  gram.Node
	Short gram.Node
}

// NewBinder returns an empty Binder backed by pool.
func NewBinder(pool *gram.Pool) *Binder {
	return &Binder{Pool: pool}
}

// bind attaches text, tagged kind, to path (a sequence of literal command
// words — headings allow no alternation or optional syntax, so path nodes
// are always plain Concat of Word).
func (b *Binder) bind(path []string, kind Kind, text string) error {
	if len(path) == 0 {
		return errEmptyPath
	}
	var pathNode gram.Node
	for _, w := range path {
		wn, err := gram.Word(b.Pool, w, false, false)
		if err != nil {
			if !pathNode.IsZero() {
				pathNode.Release()
			}
			return err
		}
		if pathNode.IsZero() {
			pathNode = wn
			continue
		}
		pathNode, err = gram.Concat(b.Pool, pathNode, wn)
		if err != nil {
			return err
		}
	}
	leaf, err := gram.ForceWord(b.Pool, text, int(kind))
	if err != nil {
		pathNode.Release()
		return err
	}
	entry, err := gram.Concat(b.Pool, pathNode, leaf)
	if err != nil {
		return err
	}

	target := &b.Long
	if kind == Short {
		target = &b.Short
	}
	if target.IsZero() {
		*target = entry
		return nil
	}
	*target, err = gram.Alternate(b.Pool, *target, entry)
	return err
}

type bindError string

func (e bindError) Error() string { return string(e) }

const errEmptyPath = bindError("help: heading has an empty command path")
