package collection

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/google/go-cmp/cmp"

	"digital.vasic.clearcheck/pkg/matcher"
)

// exportAll lets cmp descend into unexported struct fields.
var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// Equal matches slices deeply equal to other. The failure message
// carries a diff (-want +got). Options are passed to cmp.Equal,
// e.g. cmpopts.EquateEmpty. Unexported fields are compared.
func Equal[E any](other []E, opts ...cmp.Option) matcher.Matcher[[]E] {
	opts = append(slices.Clone(opts), exportAll)
	return matcher.Func[[]E](func(value []E) matcher.Verdict {
		equal, diff, err := compare(other, value, opts)
		if err != nil {
			return matcher.NewVerdict(
				false,
				fmt.Sprintf("%v should equal %v but could not be compared: %v", value, other, err),
				fmtNotEqual(value, other),
			)
		}
		if equal {
			return matcher.Formatted(
				true,
				"%v should equal %v",
				"%v should not equal %v",
				value, other,
			)
		}
		return matcher.NewVerdict(
			false,
			fmtDiff(value, other, diff),
			fmtNotEqual(value, other),
		)
	})
}

// compare turns a cmp panic (conflicting options, unsupported
// types) into an error.
func compare[E any](want, got []E, opts []cmp.Option) (equal bool, diff string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	if cmp.Equal(want, got, opts...) {
		return true, "", nil
	}
	return false, cmp.Diff(want, got, opts...), nil
}
