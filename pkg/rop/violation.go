package rop

import (
	"errors"

	log "github.com/sirupsen/logrus"
)

// Logger receives contract violation reports before the panic.
var Logger log.FieldLogger = log.StandardLogger()

// ContractViolation is the panic value raised when a Result is used against
// its invariants: built with both or neither payload, or drained twice.
// It is a programmer error and is never returned as a domain error.
type ContractViolation struct {
	Msg string
}

func (v *ContractViolation) Error() string {
	return "rop: contract violation: " + v.Msg
}

// Abort logs msg and panics with a *ContractViolation. It never returns.
func Abort(msg string) {
	Logger.WithField("violation", msg).Error("result contract violated")
	panic(&ContractViolation{Msg: msg})
}

// IsContractViolation reports whether v, typically a recovered panic value,
// is a ContractViolation.
func IsContractViolation(v any) bool {
	err, ok := v.(error)
	if !ok {
		return false
	}
	var cv *ContractViolation
	return errors.As(err, &cv)
}
