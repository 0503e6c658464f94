// Package asserts implements the semantic assertion operations test suites use,
// together with the per-engine tally of attempted and successful assertions.
//
// Every operation evaluates its predicate, records the attempt and returns a
// *Failure when the predicate does not hold. The engine itself never panics,
// logs or performs I/O.
package asserts

// Counters is a snapshot of an engine's tally.
// Passed counts successful assertions, Asserted counts every attempt.
type Counters struct {
	Passed   int
	Asserted int
}

// Failed returns the number of failed assertions
func (c Counters) Failed() int {
	return c.Asserted - c.Passed
}

// Engine evaluates assertions and keeps the counters.
// The zero value is ready to use with counters at (0, 0).
type Engine struct {
	passed   int
	asserted int
}

// New creates a new Engine
func New() *Engine {
	return &Engine{}
}

// Counters returns the current tally
func (e *Engine) Counters() Counters {
	return Counters{Passed: e.passed, Asserted: e.asserted}
}

// Reset sets both counters back to zero
func (e *Engine) Reset() {
	e.passed = 0
	e.asserted = 0
}

// record books one attempt and turns a failed predicate into a Failure
func (e *Engine) record(ok bool, kind Kind, actual, expected any, reason string) error {
	e.asserted++
	if ok {
		e.passed++
		return nil
	}
	return &Failure{Kind: kind, Actual: actual, Expected: expected, Reason: reason}
}

// Equal succeeds if a == b
func (e *Engine) Equal(a, b any) error {
	return e.record(equalValues(a, b), KindEqual, a, b, "")
}

// NotEqual succeeds if a != b
func (e *Engine) NotEqual(a, b any) error {
	return e.record(!equalValues(a, b), KindNotEqual, a, b, "")
}

// IsNull succeeds if v is nil
func (e *Engine) IsNull(v any) error {
	return e.record(isNull(v), KindIsNull, v, nil, "")
}

// IsNotNull succeeds if v is not nil
func (e *Engine) IsNotNull(v any) error {
	return e.record(!isNull(v), KindIsNotNull, v, nil, "")
}

// IsTrue succeeds if v is the boolean true
func (e *Engine) IsTrue(v any) error {
	return e.record(isBool(v, true), KindIsNotTrue, v, nil, "")
}

// IsFalse succeeds if v is the boolean false
func (e *Engine) IsFalse(v any) error {
	return e.record(isBool(v, false), KindIsNotFalse, v, nil, "")
}

// In succeeds if v is a member of collection
func (e *Engine) In(v, collection any) error {
	found, reason := contains(v, collection)
	return e.record(found, KindIn, v, collection, reason)
}

// NotIn succeeds if v is not a member of collection
func (e *Engine) NotIn(v, collection any) error {
	found, reason := contains(v, collection)
	return e.record(!found && reason == "", KindNotIn, v, collection, reason)
}

// GreaterThan succeeds if a > b
func (e *Engine) GreaterThan(a, b any) error {
	cmp, ok := compare(a, b)
	return e.record(ok && cmp > 0, KindGreaterThan, a, b, orderReason(ok))
}

// GreaterThanOrEqual succeeds if a >= b
func (e *Engine) GreaterThanOrEqual(a, b any) error {
	cmp, ok := compare(a, b)
	return e.record(ok && cmp >= 0, KindGreaterThanOrEqual, a, b, orderReason(ok))
}

// LesserThan succeeds if a < b
func (e *Engine) LesserThan(a, b any) error {
	cmp, ok := compare(a, b)
	return e.record(ok && cmp < 0, KindLesserThan, a, b, orderReason(ok))
}

// LesserThanOrEqual succeeds if a <= b
func (e *Engine) LesserThanOrEqual(a, b any) error {
	cmp, ok := compare(a, b)
	return e.record(ok && cmp <= 0, KindLesserThanOrEqual, a, b, orderReason(ok))
}

// IsANumber succeeds if v is an integer or a float. Numeric strings are not numbers.
func (e *Engine) IsANumber(v any) error {
	return e.record(isNumber(v), KindIsANumber, v, nil, "")
}

func orderReason(ok bool) string {
	if ok {
		return ""
	}
	return reasonNotOrdered
}
