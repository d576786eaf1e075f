package strutil

import (
	"testing"

	. "src.gramsh.sh/pkg/tt"
)

func TestTitle(t *testing.T) {
	Test(t, Fn("Title", Title), Table{
		Args("").Rets(""),
		Args("foo").Rets("Foo"),
		Args("\xf0").Rets("\xf0"),
		Args("FOO").Rets("FOO"),
	})
}
