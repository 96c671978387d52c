//go:build textnorm_debug

package numbers

import "fmt"

func (s *scanner) violation(msg, value, prev string) {
	panic(fmt.Sprintf("numbers: %s (value %q, prev %q)", msg, value, prev))
}
