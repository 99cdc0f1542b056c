// Package ident generates identifiers and deep copies of plain values.
package ident

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// randomSpace matches the 53-bit mantissa of a float64 in [0, 1).
const randomSpace = 1 << 53

// GenerateID returns a short time-prefixed id: the base-36 unix milliseconds
// followed by base-36 random digits. It is not cryptographic and two calls in
// the same millisecond may collide; callers that need uniqueness check for it
// or use UUID.
func GenerateID() string {
	return generateAt(time.Now())
}

func generateAt(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 36) + strconv.FormatUint(rand.Uint64N(randomSpace), 36)
}

// UUID returns a random RFC 4122 version 4 UUID.
func UUID() string {
	return uuid.NewString()
}

// Strategy names an id generation scheme.
type Strategy string

const (
	StrategyShort Strategy = "short"
	StrategyUUID  Strategy = "uuid"
)

// ParseStrategy resolves a configured strategy name. Empty means short.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case "", StrategyShort:
		return StrategyShort, nil
	case StrategyUUID:
		return StrategyUUID, nil
	default:
		return "", fmt.Errorf("unknown id strategy %q", s)
	}
}

// Generator produces ids with a fixed strategy.
type Generator struct {
	strategy Strategy
}

// NewGenerator returns a Generator for strategy. Unknown strategies fall
// back to short ids.
func NewGenerator(strategy Strategy) *Generator {
	if strategy != StrategyUUID {
		strategy = StrategyShort
	}
	return &Generator{strategy: strategy}
}

// Strategy returns the generator's scheme.
func (g *Generator) Strategy() Strategy { return g.strategy }

// NewID returns a fresh id.
func (g *Generator) NewID() string {
	if g.strategy == StrategyUUID {
		return UUID()
	}
	return GenerateID()
}

// DeepClone returns a structurally independent copy of v made by a JSON
// round trip. The copy is lossy in the ways JSON is: unexported fields are
// dropped, numbers held in interface values come back as float64, and
// time.Time keeps only what RFC 3339 carries. Values JSON cannot encode,
// such as funcs, channels or cycles, return an error.
func DeepClone[T any](v T) (T, error) {
	var out T
	data, err := json.Marshal(v)
	if err != nil {
		return out, fmt.Errorf("clone: encode: %w", err)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("clone: decode: %w", err)
	}
	return out, nil
}
