package ops

import (
	stderrors "errors"
	"fmt"

	"github.com/23skdu/bitwise/bitwise"
	"github.com/23skdu/bitwise/internal/errors"
	"github.com/23skdu/bitwise/internal/metrics"
	"github.com/rs/zerolog"
)

// Evaluator runs registered operations by name, logging and counting every
// outcome.
type Evaluator struct {
	logger zerolog.Logger
}

// NewEvaluator creates an Evaluator.
func NewEvaluator(logger zerolog.Logger) *Evaluator {
	return &Evaluator{logger: logger.With().Str("component", "ops").Logger()}
}

// Eval runs the operation called name on args. A failed power_of_two returns
// bitwise.ErrOverflow unchanged; malformed calls return validation errors.
func (e *Evaluator) Eval(name string, args ...uint32) (Result, error) {
	op, ok := Lookup(name)
	if !ok {
		metrics.OperationsTotal.WithLabelValues("unknown", metrics.OutcomeError).Inc()
		return Result{}, errors.NewValidationError("eval", "unknown operation").WithContext("op", name)
	}
	return e.EvalOp(op, args...)
}

// EvalOp runs op on args.
func (e *Evaluator) EvalOp(op Op, args ...uint32) (Result, error) {
	if err := op.Validate(args); err != nil {
		metrics.OperationsTotal.WithLabelValues(op.Name, metrics.OutcomeError).Inc()
		return Result{}, err
	}

	res, err := op.eval(args)
	switch {
	case stderrors.Is(err, bitwise.ErrOverflow):
		metrics.OperationsTotal.WithLabelValues(op.Name, metrics.OutcomeOverflow).Inc()
		e.logger.Debug().Str("op", op.Name).Uints32("args", args).Msg("overflow")
		return Result{}, err
	case err != nil:
		metrics.OperationsTotal.WithLabelValues(op.Name, metrics.OutcomeError).Inc()
		return Result{}, err
	case !res.Present:
		metrics.OperationsTotal.WithLabelValues(op.Name, metrics.OutcomeAbsent).Inc()
		e.logger.Debug().Str("op", op.Name).Uints32("args", args).Msg("no value")
	default:
		metrics.OperationsTotal.WithLabelValues(op.Name, metrics.OutcomeOK).Inc()
		e.logger.Debug().Str("op", op.Name).Uints32("args", args).Uint32("value", res.Value).Msg("evaluated")
	}
	return res, nil
}

// Validate checks the argument count and the width of the first operand.
func (o Op) Validate(args []uint32) error {
	if !o.Variadic && len(args) != o.Arity() {
		return errors.NewValidationError("eval", fmt.Sprintf("%s takes %d arguments, got %d", o.Name, o.Arity(), len(args))).
			WithContext("op", o.Name)
	}
	if !o.Variadic && len(args) > 0 && args[0] > maxOperand(o.Width) {
		return errors.NewValidationError("eval", fmt.Sprintf("%s operand %d exceeds %d bits", o.Name, args[0], o.Width)).
			WithContext("op", o.Name)
	}
	return nil
}
