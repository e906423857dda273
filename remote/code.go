package remote

import "strconv"

// Code command code
type Code int16

// ToInt16 to int16 value
func (c Code) ToInt16() int16 {
	return int16(c)
}

// Int16ToCode from int16 to Code
func Int16ToCode(code int16) Code {
	return Code(code)
}

// UnmarshalJSON unmarshal code
func (c *Code) UnmarshalJSON(b []byte) error {
	cc, err := strconv.Atoi(string(b))
	if err == nil {
		*c = Code(cc)
		return nil
	}
	return err
}

// request code
const (
	// ExecuteStatement runs the statement, the result is bound to the reference in the ext fields
	ExecuteStatement = Code(10)
	// EvaluateExpression evaluates the expression, the json value is returned in the body
	EvaluateExpression = Code(11)
	// Ping checks the kernel is alive
	Ping = Code(12)
)

// response code
const (
	UnknowError             = Code(-1)
	Success                 = Code(0)
	SystemError             = Code(1)
	RequestCodeNotSupported = Code(3)
	EvaluationFailed        = Code(4)
	BadStatement            = Code(5)

	// client defined
	RequestTimeout = Code(-100)
	ConnError      = Code(-101)
	ConnClosed     = Code(-102)
	RequestFailed  = Code(-107)
	DataFailed     = Code(-108)
)

// LanguageCode the language of client
type LanguageCode int8

// ToInt8 to int8 value
func (lc LanguageCode) ToInt8() int8 {
	return int8(lc)
}

func int8ToLanguageCode(code int8) LanguageCode {
	return LanguageCode(code)
}

func (lc LanguageCode) String() string {
	switch lc {
	case gO:
		return "GO"
	case java:
		return "JAVA"
	case javascript:
		return "JAVASCRIPT"
	default:
		return "unknown:" + strconv.Itoa(int(lc))
	}
}

// UnmarshalJSON unmarshal language code
func (lc *LanguageCode) UnmarshalJSON(b []byte) error {
	switch string(b) {
	case `"JAVA"`, "0":
		*lc = java
	case `"JAVASCRIPT"`, "4":
		*lc = javascript
	case `"GO"`, "9":
		*lc = gO
	default:
		*lc = -1
	}
	return nil
}

const (
	java       = LanguageCode(0)
	javascript = LanguageCode(4)
	gO         = LanguageCode(9)
)
