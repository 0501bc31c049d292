// Package rop defines Result[O, E], a value that is exactly one of a success
// carrying an Ok payload or a failure carrying an Err payload.
//
// Results are built with Ok and Err. Observers (IsOk, IsErr) never change
// the value. Accessors (Value, Err, Expect, ExpectErr and their *Or forms)
// move the payload out and leave the instance empty; reading an absent or
// already taken payload is a contract violation and panics with
// *ContractViolation after logging it.
//
// The combinator algebra lives in package solo, fluent chaining in chain,
// and channel plumbing in core and lite.
package rop
