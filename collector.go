package paramcheck

// collector accumulates InvalidParam entries during one traversal pass,
// associating each with the Path rendering active at the moment of failure.
// Every validation call constructs its own collector; nothing is shared across
// concurrent validations. No deduplication: entries keep detection order.
type collector struct {
	path   Path
	params []InvalidParam
}

// add records one failure at the current location. Name is the innermost path
// segment, or "" at the root.
func (c *collector) add(reason string, expected, actual TypeFormat) {
	r := reason
	c.params = append(c.params, InvalidParam{
		Name:     c.path.Last(),
		Reason:   &r,
		Expected: expected,
		Actual:   actual,
		Pointer:  c.path.Pointer(),
	})
}

func (c *collector) hasErrors() bool { return len(c.params) > 0 }

// problem consumes the collected entries into the error variant.
func (c *collector) problem() *Problem {
	params := c.params
	c.params = nil
	if params == nil {
		params = []InvalidParam{}
	}
	return newValidationProblem(params)
}
