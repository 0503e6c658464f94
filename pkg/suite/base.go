package suite

import "github.com/testvibe/testvibe/pkg/asserts"

// Base owns the assertion engine of one suite instance.
// Its zero value is ready to use; embed it by value.
type Base struct {
	engine asserts.Engine
}

// Engine returns the underlying assertion engine
func (b *Base) Engine() *asserts.Engine {
	return &b.engine
}

// Counters returns the (passed, asserted) tally of this suite instance
func (b *Base) Counters() asserts.Counters {
	return b.engine.Counters()
}

// ResetCounters sets the tally back to (0, 0)
func (b *Base) ResetCounters() {
	b.engine.Reset()
}

// Check runs the named assertion and returns its failure instead of raising it
func (b *Base) Check(name string, args ...any) error {
	return b.engine.Call(name, args...)
}

// Assert runs the named assertion (any alias of the table in package asserts)
// and panics with the *asserts.Failure when it does not hold.
func (b *Base) Assert(name string, args ...any) {
	if err := b.engine.Call(name, args...); err != nil {
		panic(err)
	}
}

func (b *Base) AssertEqual(a, x any)    { b.Assert("assert_equal", a, x) }
func (b *Base) AssertEq(a, x any)       { b.Assert("assert_eq", a, x) }
func (b *Base) AEq(a, x any)            { b.Assert("a_eq", a, x) }
func (b *Base) AssertNotEqual(a, x any) { b.Assert("assert_not_equal", a, x) }
func (b *Base) AssertNeq(a, x any)      { b.Assert("assert_neq", a, x) }
func (b *Base) ANeq(a, x any)           { b.Assert("a_neq", a, x) }

func (b *Base) AssertNull(v any)    { b.Assert("assert_null", v) }
func (b *Base) ANull(v any)         { b.Assert("a_null", v) }
func (b *Base) AssertNotNull(v any) { b.Assert("assert_not_null", v) }
func (b *Base) ANotNull(v any)      { b.Assert("a_not_null", v) }

func (b *Base) AssertTrue(v any)  { b.Assert("assert_true", v) }
func (b *Base) ATrue(v any)       { b.Assert("a_true", v) }
func (b *Base) AssertFalse(v any) { b.Assert("assert_false", v) }
func (b *Base) AFalse(v any)      { b.Assert("a_false", v) }

func (b *Base) AssertIn(v, collection any)    { b.Assert("assert_in", v, collection) }
func (b *Base) AIn(v, collection any)         { b.Assert("a_in", v, collection) }
func (b *Base) AssertNotIn(v, collection any) { b.Assert("assert_not_in", v, collection) }
func (b *Base) ANotIn(v, collection any)      { b.Assert("a_not_in", v, collection) }

func (b *Base) AssertGreaterThan(a, x any)        { b.Assert("assert_greater_than", a, x) }
func (b *Base) AssertGt(a, x any)                 { b.Assert("assert_gt", a, x) }
func (b *Base) AGt(a, x any)                      { b.Assert("a_gt", a, x) }
func (b *Base) AssertGreaterThanOrEqual(a, x any) { b.Assert("assert_greater_than_or_equal", a, x) }
func (b *Base) AssertGte(a, x any)                { b.Assert("assert_gte", a, x) }
func (b *Base) AGte(a, x any)                     { b.Assert("a_gte", a, x) }
func (b *Base) AssertLesserThan(a, x any)         { b.Assert("assert_lesser_than", a, x) }
func (b *Base) AssertLt(a, x any)                 { b.Assert("assert_lt", a, x) }
func (b *Base) ALt(a, x any)                      { b.Assert("a_lt", a, x) }
func (b *Base) AssertLesserThanOrEqual(a, x any)  { b.Assert("assert_lesser_than_or_equal", a, x) }
func (b *Base) AssertLte(a, x any)                { b.Assert("assert_lte", a, x) }
func (b *Base) ALte(a, x any)                     { b.Assert("a_lte", a, x) }

func (b *Base) AssertIsANumber(v any) { b.Assert("assert_is_a_number", v) }
func (b *Base) AssertIsN(v any)       { b.Assert("assert_is_n", v) }
func (b *Base) AIsN(v any)            { b.Assert("a_is_n", v) }
