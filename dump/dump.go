package dump

import (
	"github.com/davecgh/go-spew/spew"
)

var dumper = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

func Print(xs ...any) {
	dumper.Dump(xs...)
}

func Sprint(xs ...any) string {
	return dumper.Sdump(xs...)
}

func Sprintf(format string, xs ...any) string {
	return dumper.Sprintf(format, xs...)
}
