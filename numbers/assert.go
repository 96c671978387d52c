//go:build !textnorm_debug

package numbers

// violation records a broken merge invariant. Release builds log it and let
// the caller fall back to plain concatenation.
func (s *scanner) violation(msg, value, prev string) {
	s.logger.Debug("numbers: merge invariant violated", "reason", msg, "value", value, "prev", prev)
}
