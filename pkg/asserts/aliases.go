package asserts

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrUnknownOperation is returned by Call for a name that is not bound to any operation
	ErrUnknownOperation = errors.New("unknown assertion")
	// ErrArity is returned by Call when the number of operands does not fit the operation
	ErrArity = errors.New("wrong number of operands")
)

// Op is a canonical assertion operation. Aliases resolve to an Op.
type Op int

const (
	OpEqual Op = iota
	OpNotEqual
	OpIsNull
	OpIsNotNull
	OpIsTrue
	OpIsFalse
	OpIn
	OpNotIn
	OpGreaterThan
	OpGreaterThanOrEqual
	OpLesserThan
	OpLesserThanOrEqual
	OpIsANumber
)

type operation struct {
	name   string
	unary  func(*Engine, any) error
	binary func(*Engine, any, any) error
}

var operations = [...]operation{
	OpEqual:              {name: "assert_equal", binary: (*Engine).Equal},
	OpNotEqual:           {name: "assert_not_equal", binary: (*Engine).NotEqual},
	OpIsNull:             {name: "assert_null", unary: (*Engine).IsNull},
	OpIsNotNull:          {name: "assert_not_null", unary: (*Engine).IsNotNull},
	OpIsTrue:             {name: "assert_true", unary: (*Engine).IsTrue},
	OpIsFalse:            {name: "assert_false", unary: (*Engine).IsFalse},
	OpIn:                 {name: "assert_in", binary: (*Engine).In},
	OpNotIn:              {name: "assert_not_in", binary: (*Engine).NotIn},
	OpGreaterThan:        {name: "assert_greater_than", binary: (*Engine).GreaterThan},
	OpGreaterThanOrEqual: {name: "assert_greater_than_or_equal", binary: (*Engine).GreaterThanOrEqual},
	OpLesserThan:         {name: "assert_lesser_than", binary: (*Engine).LesserThan},
	OpLesserThanOrEqual:  {name: "assert_lesser_than_or_equal", binary: (*Engine).LesserThanOrEqual},
	OpIsANumber:          {name: "assert_is_a_number", unary: (*Engine).IsANumber},
}

// aliasNames lists the call names of every operation, canonical name first
var aliasNames = map[Op][]string{
	OpEqual:              {"assert_equal", "assert_eq", "a_eq"},
	OpNotEqual:           {"assert_not_equal", "assert_neq", "a_neq"},
	OpIsNull:             {"assert_null", "a_null"},
	OpIsNotNull:          {"assert_not_null", "a_not_null"},
	OpIsTrue:             {"assert_true", "a_true"},
	OpIsFalse:            {"assert_false", "a_false"},
	OpIn:                 {"assert_in", "a_in"},
	OpNotIn:              {"assert_not_in", "a_not_in"},
	OpGreaterThan:        {"assert_greater_than", "assert_gt", "a_gt"},
	OpGreaterThanOrEqual: {"assert_greater_than_or_equal", "assert_gte", "a_gte"},
	OpLesserThan:         {"assert_lesser_than", "assert_lt", "a_lt"},
	OpLesserThanOrEqual:  {"assert_lesser_than_or_equal", "assert_lte", "a_lte"},
	OpIsANumber:          {"assert_is_a_number", "assert_is_n", "a_is_n"},
}

// aliases binds every normalised call name to its canonical operation
var aliases = map[string]Op{}

func init() {
	for op, list := range aliasNames {
		for _, name := range list {
			aliases[normalize(name)] = op
		}
	}
}

// normalize folds case and drops underscores so AssertEq and assert_eq are the same name
func normalize(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, "_", ""))
}

func (op Op) valid() bool {
	return op >= 0 && int(op) < len(operations)
}

// String returns the canonical call name of the operation
func (op Op) String() string {
	if !op.valid() {
		return fmt.Sprintf("Op(%d)", int(op))
	}
	return operations[op].name
}

// Arity returns the number of operands the operation takes, 0 for an unknown operation
func (op Op) Arity() int {
	if !op.valid() {
		return 0
	}
	if operations[op].unary != nil {
		return 1
	}
	return 2
}

// Lookup resolves a call name or alias to its canonical operation
func Lookup(name string) (Op, bool) {
	op, ok := aliases[normalize(name)]
	return op, ok
}

// Aliases returns every call name bound to op, sorted
func Aliases(op Op) []string {
	names := append([]string(nil), aliasNames[op]...)
	sort.Strings(names)
	return names
}

// Apply runs op with the given operands
func (e *Engine) Apply(op Op, args ...any) error {
	if !op.valid() {
		return fmt.Errorf("%w: %s", ErrUnknownOperation, op)
	}
	if len(args) != op.Arity() {
		return fmt.Errorf("%w: %s takes %d, got %d", ErrArity, op, op.Arity(), len(args))
	}
	impl := operations[op]
	if impl.unary != nil {
		return impl.unary(e, args[0])
	}
	return impl.binary(e, args[0], args[1])
}

// Call resolves name through the alias table and runs the operation.
// Unknown names and wrong operand counts are not assertions and leave the counters alone.
func (e *Engine) Call(name string, args ...any) error {
	op, ok := Lookup(name)
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownOperation, name)
	}
	return e.Apply(op, args...)
}
