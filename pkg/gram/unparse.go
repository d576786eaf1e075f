package gram

import "strings"

// Unparse renders n back into grammar-DSL source text in canonical form:
// the form the Algebra would have normalized it to had it been parsed from
// this exact text. This is what spec.md §8's round-trip law
// (parse(unparse(N)) == N) exercises.
func Unparse(n Node) string {
	var sb strings.Builder
	writeNode(&sb, n)
	return sb.String()
}

func writeNode(sb *strings.Builder, n Node) {
	if n.IsZero() {
		return
	}
	switch n.Kind() {
	case KindWord:
		sb.WriteString(n.Word())
		if n.CaseInsensitive() {
			sb.WriteString("/i")
		}
		if n.NeedsTerminal() {
			sb.WriteString("/t")
		}
	case KindVarargs:
		sb.WriteString("...")
	case KindOptional:
		sb.WriteByte('[')
		writeNode(sb, n.Child())
		sb.WriteByte(']')
	case KindPlus:
		// KindAlternate already wraps itself in parens below; only a
		// Concat child needs one added here, or "a b+" would reparse as
		// Concat(a, Plus(b)) instead of Plus(Concat(a,b)).
		child := n.Child()
		wrap := child.Kind() == KindConcat
		if wrap {
			sb.WriteByte('(')
		}
		writeNode(sb, child)
		if wrap {
			sb.WriteByte(')')
		}
		if n.Min() == 1 {
			sb.WriteByte('+')
		} else {
			sb.WriteByte('*')
		}
	case KindConcat:
		cur := n
		first := true
		for {
			if !first {
				sb.WriteByte(' ')
			}
			first = false
			writeNode(sb, cur.First())
			if isConcat(cur.Rest()) {
				cur = cur.Rest()
				continue
			}
			sb.WriteByte(' ')
			writeNode(sb, cur.Rest())
			return
		}
	case KindAlternate:
		sb.WriteByte('(')
		cur := n
		first := true
		for {
			if !first {
				sb.WriteByte('|')
			}
			first = false
			writeNode(sb, cur.First())
			if isAlternate(cur.Rest()) {
				cur = cur.Rest()
				continue
			}
			sb.WriteByte('|')
			writeNode(sb, cur.Rest())
			break
		}
		sb.WriteByte(')')
	case KindMacro:
		sb.WriteString(n.Name())
		sb.WriteByte('=')
		writeNode(sb, n.Body())
	}
}

// Lines renders one alternative per line: the top-level Alternate spine (if
// any) split apart, each alternative unparsed on its own, unparenthesized
// line. Used by cmd/gramsh's grammar dump, which wants a flat enumeration
// rather than the single-line parenthesized form Unparse produces.
func Lines(n Node) []string {
	if n.IsZero() {
		return nil
	}
	var lines []string
	cur := n
	for {
		if isAlternate(cur) {
			lines = append(lines, Unparse(cur.First()))
			cur = cur.Rest()
			continue
		}
		lines = append(lines, Unparse(cur))
		return lines
	}
}
