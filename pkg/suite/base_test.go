package suite

import (
	"errors"
	"testing"

	"github.com/testvibe/testvibe/pkg/asserts"
)

type basicTestSuite struct{ Base }

func (s *basicTestSuite) TestEqual(v1, v2 any)                    { s.AssertEqual(v1, v2) }
func (s *basicTestSuite) TestEqualAlias1(v1, v2 any)              { s.AssertEq(v1, v2) }
func (s *basicTestSuite) TestEqualAlias2(v1, v2 any)              { s.AEq(v1, v2) }
func (s *basicTestSuite) TestNotEqual(v1, v2 any)                 { s.AssertNotEqual(v1, v2) }
func (s *basicTestSuite) TestNotEqualAlias1(v1, v2 any)           { s.AssertNeq(v1, v2) }
func (s *basicTestSuite) TestNotEqualAlias2(v1, v2 any)           { s.ANeq(v1, v2) }
func (s *basicTestSuite) TestNull(v any)                          { s.AssertNull(v) }
func (s *basicTestSuite) TestNullAlias1(v any)                    { s.ANull(v) }
func (s *basicTestSuite) TestNotNull(v any)                       { s.AssertNotNull(v) }
func (s *basicTestSuite) TestNotNullAlias1(v any)                 { s.ANotNull(v) }
func (s *basicTestSuite) TestTrue(v any)                          { s.AssertTrue(v) }
func (s *basicTestSuite) TestTrueAlias1(v any)                    { s.ATrue(v) }
func (s *basicTestSuite) TestFalse(v any)                         { s.AssertFalse(v) }
func (s *basicTestSuite) TestFalseAlias1(v any)                   { s.AFalse(v) }
func (s *basicTestSuite) TestIn(v, l any)                         { s.AssertIn(v, l) }
func (s *basicTestSuite) TestInAlias1(v, l any)                   { s.AIn(v, l) }
func (s *basicTestSuite) TestNotIn(v, l any)                      { s.AssertNotIn(v, l) }
func (s *basicTestSuite) TestNotInAlias1(v, l any)                { s.ANotIn(v, l) }
func (s *basicTestSuite) TestGreaterThan(v1, v2 any)              { s.AssertGreaterThan(v1, v2) }
func (s *basicTestSuite) TestGreaterThanAlias1(v1, v2 any)        { s.AssertGt(v1, v2) }
func (s *basicTestSuite) TestGreaterThanAlias2(v1, v2 any)        { s.AGt(v1, v2) }
func (s *basicTestSuite) TestGreaterThanOrEqual(v1, v2 any)       { s.AssertGreaterThanOrEqual(v1, v2) }
func (s *basicTestSuite) TestGreaterThanOrEqualAlias1(v1, v2 any) { s.AssertGte(v1, v2) }
func (s *basicTestSuite) TestGreaterThanOrEqualAlias2(v1, v2 any) { s.AGte(v1, v2) }
func (s *basicTestSuite) TestLesserThan(v1, v2 any)               { s.AssertLesserThan(v1, v2) }
func (s *basicTestSuite) TestLesserThanAlias1(v1, v2 any)         { s.AssertLt(v1, v2) }
func (s *basicTestSuite) TestLesserThanAlias2(v1, v2 any)         { s.ALt(v1, v2) }
func (s *basicTestSuite) TestLesserThanOrEqual(v1, v2 any)        { s.AssertLesserThanOrEqual(v1, v2) }
func (s *basicTestSuite) TestLesserThanOrEqualAlias1(v1, v2 any)  { s.AssertLte(v1, v2) }
func (s *basicTestSuite) TestLesserThanOrEqualAlias2(v1, v2 any)  { s.ALte(v1, v2) }
func (s *basicTestSuite) TestIsANumber(v any)                     { s.AssertIsANumber(v) }
func (s *basicTestSuite) TestIsANumberAlias1(v any)               { s.AssertIsN(v) }
func (s *basicTestSuite) TestIsANumberAlias2(v any)               { s.AIsN(v) }

// raises runs fn and reports whether it raised a failure of the given kind
func raises(t *testing.T, kind asserts.Kind, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Errorf("expected %s failure, nothing raised", kind.String())
			return
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, kind) {
			t.Errorf("expected %s failure, got %v", kind.String(), r)
		}
	}()
	fn()
}

func TestBase_Passing(t *testing.T) {
	s := &basicTestSuite{}

	s.TestEqual(9, 9)
	s.TestEqualAlias1(9, 9)
	s.TestEqualAlias2(9, 9)
	s.TestNotEqual(9, 10)
	s.TestNotEqualAlias1(77, 777)
	s.TestNotEqualAlias2(1023, 10.23)
	s.TestNull(nil)
	s.TestNullAlias1(nil)
	s.TestNotNull("None")
	s.TestNotNullAlias1("None")
	s.TestTrue(true)
	s.TestTrueAlias1(true)
	s.TestFalse(false)
	s.TestFalseAlias1(false)
	s.TestIn("a", []string{"c", "b", "a"})
	s.TestInAlias1("a", []string{"a"})
	s.TestNotIn("a", []string{"c", "b", "0"})
	s.TestNotInAlias1("a", []string{"c"})
	s.TestGreaterThan(9, 8)
	s.TestGreaterThanAlias1(0.2, 0.1)
	s.TestGreaterThanAlias2(87, 12)
	s.TestGreaterThanOrEqual(2, 1)
	s.TestGreaterThanOrEqual(2, 2)
	s.TestGreaterThanOrEqual(1001, 997)
	s.TestLesserThan(8, 9)
	s.TestLesserThanAlias1(0.1, 0.2)
	s.TestLesserThanAlias2(11, 88)
	s.TestLesserThanOrEqual(1, 2)
	s.TestLesserThanOrEqual(2, 2)
	s.TestLesserThanOrEqual(996, 1001)
	s.TestIsANumber(9)
	s.TestIsANumber(9.9)
	s.TestIsANumberAlias1(9.5)
	s.TestIsANumberAlias2(10)

	c := s.Counters()
	if c.Passed != 34 || c.Asserted != 34 {
		t.Errorf("expected (34, 34), got (%d, %d)", c.Passed, c.Asserted)
	}
}

func TestBase_Raises(t *testing.T) {
	tests := []struct {
		name string
		kind asserts.Kind
		fn   func(s *basicTestSuite)
	}{
		{"equal", asserts.KindEqual, func(s *basicTestSuite) { s.TestEqual(1, 3) }},
		{"equal alias 1", asserts.KindEqual, func(s *basicTestSuite) { s.TestEqualAlias1(1, 3) }},
		{"equal alias 2", asserts.KindEqual, func(s *basicTestSuite) { s.TestEqualAlias2(6, 7) }},
		{"not equal", asserts.KindNotEqual, func(s *basicTestSuite) { s.TestNotEqual(3, 3) }},
		{"not equal alias 1", asserts.KindNotEqual, func(s *basicTestSuite) { s.TestNotEqualAlias1(55, 55.0) }},
		{"not equal alias 2", asserts.KindNotEqual, func(s *basicTestSuite) { s.TestNotEqualAlias2(99999, 99999) }},
		{"true", asserts.KindIsNotTrue, func(s *basicTestSuite) { s.TestTrue(false) }},
		{"true alias 1", asserts.KindIsNotTrue, func(s *basicTestSuite) { s.TestTrueAlias1(false) }},
		{"false", asserts.KindIsNotFalse, func(s *basicTestSuite) { s.TestFalse(true) }},
		{"false alias 1", asserts.KindIsNotFalse, func(s *basicTestSuite) { s.TestFalseAlias1(true) }},
		{"null", asserts.KindIsNull, func(s *basicTestSuite) { s.TestNull("None") }},
		{"null alias 1", asserts.KindIsNull, func(s *basicTestSuite) { s.TestNullAlias1("None") }},
		{"not null", asserts.KindIsNotNull, func(s *basicTestSuite) { s.TestNotNull(nil) }},
		{"not null alias 1", asserts.KindIsNotNull, func(s *basicTestSuite) { s.TestNotNullAlias1(nil) }},
		{"in", asserts.KindIn, func(s *basicTestSuite) { s.TestIn("None", []string{"f", "c", "enoN"}) }},
		{"in alias 1", asserts.KindIn, func(s *basicTestSuite) { s.TestInAlias1("None", []string{"f", "c", "enoN"}) }},
		{"not in", asserts.KindNotIn, func(s *basicTestSuite) { s.TestNotIn("None", []string{"f", "None", "enoN"}) }},
		{"not in alias 1", asserts.KindNotIn, func(s *basicTestSuite) { s.TestNotInAlias1("None", []string{"f", "None", "enoN"}) }},
		{"greater than", asserts.KindGreaterThan, func(s *basicTestSuite) { s.TestGreaterThan(22, 23) }},
		{"greater than alias 1", asserts.KindGreaterThan, func(s *basicTestSuite) { s.TestGreaterThanAlias1(0.1, 0.2) }},
		{"greater than alias 2", asserts.KindGreaterThan, func(s *basicTestSuite) { s.TestGreaterThanAlias2(23, 100) }},
		{"greater than or equal", asserts.KindGreaterThanOrEqual, func(s *basicTestSuite) { s.TestGreaterThanOrEqual(1, 2) }},
		{"greater than or equal alias 1", asserts.KindGreaterThanOrEqual, func(s *basicTestSuite) { s.TestGreaterThanOrEqualAlias1(432, 432.01) }},
		{"greater than or equal alias 2", asserts.KindGreaterThanOrEqual, func(s *basicTestSuite) { s.TestGreaterThanOrEqualAlias2(231, 1000) }},
		{"lesser than", asserts.KindLesserThan, func(s *basicTestSuite) { s.TestLesserThan(23, 22) }},
		{"lesser than alias 1", asserts.KindLesserThan, func(s *basicTestSuite) { s.TestLesserThanAlias1(0.2, 0.1) }},
		{"lesser than alias 2", asserts.KindLesserThan, func(s *basicTestSuite) { s.TestLesserThanAlias2(100, 23) }},
		{"lesser than or equal", asserts.KindLesserThanOrEqual, func(s *basicTestSuite) { s.TestLesserThanOrEqual(2, 1) }},
		{"lesser than or equal alias 1", asserts.KindLesserThanOrEqual, func(s *basicTestSuite) { s.TestLesserThanOrEqualAlias1(432.01, 432) }},
		{"lesser than or equal alias 2", asserts.KindLesserThanOrEqual, func(s *basicTestSuite) { s.TestLesserThanOrEqualAlias2(1000, 231) }},
		{"is a number", asserts.KindIsANumber, func(s *basicTestSuite) { s.TestIsANumber("234") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &basicTestSuite{}
			raises(t, tt.kind, func() { tt.fn(s) })

			c := s.Counters()
			if c.Passed != 0 || c.Asserted != 1 {
				t.Errorf("failed assertion must be counted: got (%d, %d)", c.Passed, c.Asserted)
			}
		})
	}
}

func TestBase_Counters(t *testing.T) {
	s := &basicTestSuite{}

	if c := s.Counters(); c != (asserts.Counters{}) {
		t.Fatalf("expected (0, 0), got %+v", c)
	}
	s.TestEqual("A", "A")
	if c := s.Counters(); c != (asserts.Counters{Passed: 1, Asserted: 1}) {
		t.Errorf("expected (1, 1), got %+v", c)
	}
	s.TestNull(nil)
	s.TestLesserThanOrEqual(7, 9)
	if c := s.Counters(); c != (asserts.Counters{Passed: 3, Asserted: 3}) {
		t.Errorf("expected (3, 3), got %+v", c)
	}
	raises(t, asserts.KindIn, func() { s.TestIn(3, []int{1, 2, 4}) })
	if c := s.Counters(); c != (asserts.Counters{Passed: 3, Asserted: 4}) {
		t.Errorf("expected (3, 4), got %+v", c)
	}
}

func TestBase_ResetCounters(t *testing.T) {
	s := &basicTestSuite{}
	s.TestEqual("A", "A")
	s.ResetCounters()

	if c := s.Counters(); c != (asserts.Counters{}) {
		t.Errorf("expected (0, 0), got %+v", c)
	}
	if s.Engine().Counters() != s.Counters() {
		t.Error("engine and suite counters disagree")
	}
}

func TestBase_Check(t *testing.T) {
	s := &basicTestSuite{}

	if err := s.Check("a_gt", 2, 1); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	err := s.Check("a_gt", 1, 2)
	if !errors.Is(err, asserts.KindGreaterThan) {
		t.Errorf("expected GreaterThan failure, got %v", err)
	}
	if c := s.Counters(); c != (asserts.Counters{Passed: 1, Asserted: 2}) {
		t.Errorf("expected (1, 2), got %+v", c)
	}
}

func TestBase_ImplementsSuite(t *testing.T) {
	var _ Suite = &Base{}
	var _ Suite = &basicTestSuite{}
}

func TestReservedNames(t *testing.T) {
	for _, name := range []string{"Assert", "AssertEqual", "AEq", "AIsN", "Counters", "ResetCounters", "Check", "Engine", "SetUp", "TearDown", "Params"} {
		if !IsReserved(name) {
			t.Errorf("expected %s to be reserved", name)
		}
	}
	if IsReserved("TestEqual") {
		t.Error("suite methods must not be reserved")
	}
	names := ReservedNames()
	if len(names) < 40 {
		t.Errorf("expected every Base method to be reserved, got %d names", len(names))
	}
}
