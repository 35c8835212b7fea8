package app

import (
	"fmt"

	"github.com/jsamuelsen11/todosync/internal/domain"
)

// Strategy decides when a mutation reaches the local store relative to its
// remote call.
type Strategy string

const (
	// StrategyConfirm applies a mutation locally only after the server
	// confirms it.
	StrategyConfirm Strategy = "confirm"

	// StrategyOptimistic applies a mutation locally first and rolls it back
	// if the server rejects it or cannot be reached.
	StrategyOptimistic Strategy = "optimistic"
)

// ParseStrategy converts a configuration value into a Strategy. An empty
// value selects StrategyConfirm.
func ParseStrategy(v string) (Strategy, error) {
	switch Strategy(v) {
	case "", StrategyConfirm:
		return StrategyConfirm, nil
	case StrategyOptimistic:
		return StrategyOptimistic, nil
	default:
		return "", &domain.ValidationError{Fields: map[string]string{
			"strategy": fmt.Sprintf("unknown strategy %q", v),
		}}
	}
}

// String implements fmt.Stringer.
func (s Strategy) String() string { return string(s) }
