package datatype

import (
	"fmt"
	"strconv"
	"strings"
)

// Boolean accepts "on", "off", "0" or "1", grounded on
// original_source/src/datatypes.c's parse_boolean.
type Boolean struct{}

func (Boolean) Name() string { return "BOOLEAN" }

func (Boolean) Validate(word string) error {
	switch word {
	case "on", "off", "0", "1":
		return nil
	}
	return fmt.Errorf("invalid syntax for boolean")
}

// Integer accepts an optionally signed run of decimal digits with no
// trailing junk, within the range of a signed 64-bit integer, grounded on
// parse_integer's use of strtol with an end-pointer check.
type Integer struct{}

func (Integer) Name() string { return "INTEGER" }

func (Integer) Validate(word string) error {
	if word == "" {
		return fmt.Errorf("invalid syntax for integer")
	}
	if _, err := strconv.ParseInt(word, 10, 64); err != nil {
		return fmt.Errorf("invalid syntax for integer")
	}
	return nil
}

// IPv4Addr accepts four dot-separated decimal octets, each 0-255.
type IPv4Addr struct{}

func (IPv4Addr) Name() string { return "IPV4ADDR" }

func (IPv4Addr) Validate(word string) error {
	if !isIPv4(word) {
		// spec.md §8 scenario 3 quotes this message verbatim, capital I.
		return fmt.Errorf("Invalid syntax for IP address")
	}
	return nil
}

func isIPv4(s string) bool {
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return false
	}
	for _, p := range parts {
		if !isDecimalOctet(p) {
			return false
		}
	}
	return true
}

func isDecimalOctet(s string) bool {
	if s == "" || len(s) > 3 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 0 && n <= 255
}

// IPv6Addr is intentionally a loose check: hex digits and colons only, no
// structural validation of the number or size of groups. This is spec.md
// §4.6's literal, documented contract, chosen over
// original_source/src/datatypes.c's parse_ipv6addr, which is a
// byte-for-byte copy of parse_ipv4addr and so doesn't actually check
// anything IPv6-shaped at all (see SPEC_FULL.md §9.4).
type IPv6Addr struct{}

func (IPv6Addr) Name() string { return "IPV6ADDR" }

func (IPv6Addr) Validate(word string) error {
	if word == "" {
		return fmt.Errorf("invalid syntax for IPv6 address")
	}
	for _, r := range word {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		case r == ':':
		default:
			return fmt.Errorf("invalid syntax for IPv6 address")
		}
	}
	return nil
}

// IPAddr accepts either an IPv4 or an IPv6 address.
type IPAddr struct{}

func (IPAddr) Name() string { return "IPADDR" }

func (IPAddr) Validate(word string) error {
	if isIPv4(word) {
		return nil
	}
	if (IPv6Addr{}).Validate(word) == nil {
		return nil
	}
	return fmt.Errorf("invalid syntax for IP address")
}

// IPPrefix accepts "IPV4ADDR/len" with 0 <= len <= 32.
type IPPrefix struct{}

func (IPPrefix) Name() string { return "IPPREFIX" }

func (IPPrefix) Validate(word string) error {
	addr, lenStr, ok := strings.Cut(word, "/")
	if !ok {
		return fmt.Errorf("invalid syntax for IP prefix")
	}
	if !isIPv4(addr) {
		return fmt.Errorf("invalid syntax for IP prefix")
	}
	n, err := strconv.Atoi(lenStr)
	if err != nil || n < 0 || n > 32 {
		return fmt.Errorf("invalid syntax for IP prefix")
	}
	return nil
}

// MACAddr accepts six colon-separated hex bytes, each 0-255.
type MACAddr struct{}

func (MACAddr) Name() string { return "MACADDR" }

func (MACAddr) Validate(word string) error {
	parts := strings.Split(word, ":")
	if len(parts) != 6 {
		return fmt.Errorf("invalid syntax for MAC address")
	}
	for _, p := range parts {
		if len(p) == 0 || len(p) > 2 {
			return fmt.Errorf("invalid syntax for MAC address")
		}
		if _, err := strconv.ParseUint(p, 16, 8); err != nil {
			return fmt.Errorf("invalid syntax for MAC address")
		}
	}
	return nil
}

// Hostname accepts dot-separated labels of [a-zA-Z0-9-], each up to 63
// bytes, not starting with a hyphen, the whole name up to 253 bytes; a
// single bare "." is accepted.
type Hostname struct{}

func (Hostname) Name() string { return "HOSTNAME" }

func (Hostname) Validate(word string) error {
	if word == "." {
		return nil
	}
	if word == "" || len(word) > 253 {
		return fmt.Errorf("invalid syntax for hostname")
	}
	for _, label := range strings.Split(word, ".") {
		if label == "" || len(label) > 63 {
			return fmt.Errorf("invalid syntax for hostname")
		}
		if label[0] == '-' {
			return fmt.Errorf("invalid syntax for hostname")
		}
		for _, r := range label {
			ok := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
				(r >= '0' && r <= '9') || r == '-'
			if !ok {
				return fmt.Errorf("invalid syntax for hostname")
			}
		}
	}
	return nil
}

// String accepts any token; if it begins with a quote character the token
// must close with a matching quote, escape-aware, grounded on
// original_source/src/datatypes.c's parse_string/dqstring/sqstring/bqstring
// and util.c's strquotelen.
type String struct{}

func (String) Name() string { return "STRING" }

func (String) Validate(word string) error { return validateQuoted(word, 0) }

// DQString restricts String to double-quoted tokens.
type DQString struct{}

func (DQString) Name() string { return "DQSTRING" }

func (DQString) Validate(word string) error { return validateQuoted(word, '"') }

// SQString restricts String to single-quoted tokens.
type SQString struct{}

func (SQString) Name() string { return "SQSTRING" }

func (SQString) Validate(word string) error { return validateQuoted(word, '\'') }

// BQString restricts String to back-quoted tokens.
type BQString struct{}

func (BQString) Name() string { return "BQSTRING" }

func (BQString) Validate(word string) error { return validateQuoted(word, '`') }

// validateQuoted checks word against String's contract, or, if want is
// non-zero, additionally requires the token be quoted with that exact
// quote character.
func validateQuoted(word string, want byte) error {
	if word == "" {
		if want != 0 {
			return fmt.Errorf("expected a quoted string")
		}
		return nil
	}
	q := word[0]
	isQuote := q == '"' || q == '\'' || q == '`'
	if want != 0 {
		if !isQuote || q != want {
			return fmt.Errorf("expected a string quoted with %c", want)
		}
	}
	if !isQuote {
		return nil
	}
	if len(word) < 2 || word[len(word)-1] != q || isEscaped(word, len(word)-1) {
		return fmt.Errorf("unterminated quoted string")
	}
	return nil
}

// isEscaped reports whether the byte at i is preceded by an odd run of
// backslashes, meaning it is escaped rather than a real delimiter.
func isEscaped(s string, i int) bool {
	n := 0
	for j := i - 1; j >= 0 && s[j] == '\\'; j-- {
		n++
	}
	return n%2 == 1
}
