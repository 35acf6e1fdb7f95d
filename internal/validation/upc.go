package validation

import "errors"

var (
	ErrSequenceOverflow   = errors.New("sequence overflow: payload digit outside 0-9")
	ErrCheckDigitOverflow = errors.New("check-digit overflow: check digit outside 0-9")
	ErrCodeLength         = errors.New("payload length does not match the standard")
)

// Standard tags the barcode standard a Code claims to follow.
// Only UPC-A is supported for now; new standards plug in here
// without changing the Validate entry point.
type Standard int

const (
	UPCA Standard = iota
)

// PayloadLen returns the fixed payload length for the standard,
// excluding the check digit.
func (s Standard) PayloadLen() int {
	switch s {
	case UPCA:
		return 11
	}
	return 0
}

// Code pairs a barcode payload with its claimed check digit.
// It is a plain value; construct one and call Validate.
type Code struct {
	Standard   Standard
	Payload    []int8
	CheckDigit int8
}

// ParseCode builds a UPC-A Code from a 12-character string: the first
// 11 characters are the payload, the last is the check digit. Only the
// length is checked here; non-digit characters fall outside 0-9 and
// are reported by Validate as overflow errors.
func ParseCode(s string) (Code, error) {
	if len(s) != UPCA.PayloadLen()+1 {
		return Code{}, ErrCodeLength
	}

	code := Code{Standard: UPCA, Payload: make([]int8, UPCA.PayloadLen())}
	for i := 0; i < UPCA.PayloadLen(); i++ {
		code.Payload[i] = int8(s[i] - '0')
	}
	code.CheckDigit = int8(s[UPCA.PayloadLen()] - '0')

	return code, nil
}

// Validate verifies the check digit with the standard modulo-10
// weighted checksum: digits at odd positions (1-indexed) are summed
// and tripled, digits at even positions are added, and the expected
// check digit is (10 - total%10) % 10.
//
// Malformed input is reported, never coerced: a payload digit outside
// 0-9 yields ErrSequenceOverflow, a check digit outside 0-9 yields
// ErrCheckDigitOverflow, and a wrong-length payload yields
// ErrCodeLength.
func (c Code) Validate() (bool, error) {
	if len(c.Payload) != c.Standard.PayloadLen() {
		return false, ErrCodeLength
	}

	for _, d := range c.Payload {
		if !isDigit(d) {
			return false, ErrSequenceOverflow
		}
	}
	if !isDigit(c.CheckDigit) {
		return false, ErrCheckDigitOverflow
	}

	var odd, even int
	for i, d := range c.Payload {
		if i%2 == 0 { // 1st, 3rd, ... position
			odd += int(d)
		} else {
			even += int(d)
		}
	}

	expected := (10 - (odd*3+even)%10) % 10

	return int8(expected) == c.CheckDigit, nil
}

func isDigit(d int8) bool {
	return d >= 0 && d <= 9
}
