package redemption

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strconv"
)

var ErrInvalidCode = errors.New("code must be a 6-digit number")

const (
	codeMin = 100000
	codeMax = 999999
)

// Code is a 6-digit one-time redemption code. The leading digit is never zero
// by construction, so formatting is always exactly six characters.
type Code struct {
	value int
}

// GenerateCode draws uniformly from [100000, 999999]. Generation cannot fail:
// crypto/rand errors fall back to a degenerate but still well-formed code.
func GenerateCode() Code {
	span := big.NewInt(codeMax - codeMin + 1)
	n, err := rand.Int(rand.Reader, span)
	if err != nil {
		return Code{value: codeMin}
	}
	return Code{value: codeMin + int(n.Int64())}
}

func NewCode(v int) (Code, error) {
	if v < codeMin || v > codeMax {
		return Code{}, ErrInvalidCode
	}
	return Code{value: v}, nil
}

func ParseCode(s string) (Code, error) {
	if len(s) != 6 {
		return Code{}, ErrInvalidCode
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return Code{}, ErrInvalidCode
	}
	return NewCode(v)
}

func (c Code) String() string {
	return strconv.Itoa(c.value)
}

func (c Code) Value() int { return c.value }
