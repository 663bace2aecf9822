package collection

import "fmt"

func fmtDiff(value, other any, diff string) string {
	return fmt.Sprintf(
		"%v should equal %v (-want +got):\n%s",
		value, other, diff,
	)
}

func fmtNotEqual(value, other any) string {
	return fmt.Sprintf("%v should not equal %v", value, other)
}
