package asserts

// Kind identifies which assertion failed.
// A Kind is also an error so callers can match failures with errors.Is.
type Kind int

const (
	KindEqual Kind = iota + 1
	KindNotEqual
	KindIsNull
	KindIsNotNull
	KindIsNotTrue
	KindIsNotFalse
	KindIn
	KindNotIn
	KindGreaterThan
	KindGreaterThanOrEqual
	KindLesserThan
	KindLesserThanOrEqual
	KindIsANumber
)

var kindNames = map[Kind]string{
	KindEqual:              "Equal",
	KindNotEqual:           "NotEqual",
	KindIsNull:             "IsNull",
	KindIsNotNull:          "IsNotNull",
	KindIsNotTrue:          "IsNotTrue",
	KindIsNotFalse:         "IsNotFalse",
	KindIn:                 "In",
	KindNotIn:              "NotIn",
	KindGreaterThan:        "GreaterThan",
	KindGreaterThanOrEqual: "GreaterThanOrEqual",
	KindLesserThan:         "LesserThan",
	KindLesserThanOrEqual:  "LesserThanOrEqual",
	KindIsANumber:          "IsANumber",
}

// String returns the name of the kind
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Error lets a Kind act as a sentinel for errors.Is
func (k Kind) Error() string {
	return "assertion failed: " + k.String()
}

// operator returns the relation the failed assertion expected to hold
func (k Kind) operator() string {
	switch k {
	case KindEqual:
		return "=="
	case KindNotEqual:
		return "!="
	case KindIsNull:
		return "is nil"
	case KindIsNotNull:
		return "is not nil"
	case KindIsNotTrue:
		return "is true"
	case KindIsNotFalse:
		return "is false"
	case KindIn:
		return "in"
	case KindNotIn:
		return "not in"
	case KindGreaterThan:
		return ">"
	case KindGreaterThanOrEqual:
		return ">="
	case KindLesserThan:
		return "<"
	case KindLesserThanOrEqual:
		return "<="
	case KindIsANumber:
		return "is a number"
	}
	return "?"
}

// unary reports whether the assertion takes a single operand
func (k Kind) unary() bool {
	switch k {
	case KindIsNull, KindIsNotNull, KindIsNotTrue, KindIsNotFalse, KindIsANumber:
		return true
	}
	return false
}
