package bigassert

// AssertionError describes a failed assertion. Message is fully formatted,
// including the custom message prefix when one was set.
type AssertionError struct {
	Message  string
	Expected any
	Actual   any
	Negated  bool
}

func (e *AssertionError) Error() string {
	return e.Message
}

// failure carries an *AssertionError up to the verb boundary.
type failure struct {
	err *AssertionError
}

func catch(fn func()) (err *AssertionError) {
	defer func() {
		if v := recover(); v != nil {
			f, ok := v.(failure)
			if !ok {
				panic(v)
			}
			err = f.err
		}
	}()
	fn()
	return nil
}
