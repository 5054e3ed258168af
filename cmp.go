package bigassert

// Cmp is the result of a three-way comparison such as big.Int.Cmp:
// -1 if x < y, 0 if x == y and +1 if x > y.
type Cmp int

// Eq reports x == y.
func (c Cmp) Eq() bool {
	return c == 0
}

// Lt reports x < y.
func (c Cmp) Lt() bool {
	return c < 0
}

// Gt reports x > y.
func (c Cmp) Gt() bool {
	return c > 0
}

// Leq reports x <= y.
func (c Cmp) Leq() bool {
	return c == 0 || c < 0
}

// Geq reports x >= y.
func (c Cmp) Geq() bool {
	return c == 0 || c > 0
}
