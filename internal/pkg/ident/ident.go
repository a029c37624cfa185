package ident

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
	"time"

	"brewzzy/internal/pkg/clock"
)

// Prefix namespaces generated identifiers by record kind.
type Prefix string

const (
	PrefixBooking    Prefix = "BK-"
	PrefixRedemption Prefix = "RD-"
)

func (p Prefix) String() string {
	return string(p)
}

const suffixLength = 9

// Generator produces identifiers of the form <prefix><unix millis>-<base36 suffix>.
// Uniqueness is probabilistic: two draws in the same millisecond still differ in
// the random suffix with overwhelming probability.
type Generator struct {
	clock clock.Clock
}

func NewGenerator(clk clock.Clock) *Generator {
	return &Generator{clock: clk}
}

func (g *Generator) New(prefix Prefix) string {
	millis := g.clock.Now().UnixMilli()
	return fmt.Sprintf("%s%d-%s", prefix, millis, randomSuffix())
}

func randomSuffix() string {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// generation must stay total; fall back to the wall clock
		binary.BigEndian.PutUint64(buf[:], uint64(time.Now().UnixNano()))
	}
	n := binary.BigEndian.Uint64(buf[:])
	s := strconv.FormatUint(n, 36)
	if len(s) < suffixLength {
		s = strings.Repeat("0", suffixLength-len(s)) + s
	}
	return s[:suffixLength]
}
