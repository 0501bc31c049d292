// Package chain provides a fluent wrapper around rop.Result[O, E]
// for building synchronous Railway-Oriented chains using solo primitives.
//
// It composes AndThen, Map, MapErr, OrElse, Tee and MapOrElse behind a
// convenient Chain[O, E] type. This enables ergonomic pipelines without
// dealing directly with branching results at each step.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result or an Ok value
// - Then: continue with a function returning a new Result (short-circuits on Err)
// - Map/MapErr: transform one side of the result
// - Recover: substitute a new Result for an Err
// - Ensure/OnErr: run side effects without changing the result
// - RepeatUntil: apply a step until a condition holds or an Err appears
// - While: apply a step while a condition holds
// - Finally: collapse the chain into a final value via handlers
//
// The package level Then, Map and MapErr may change the payload types; the
// methods of the same name keep them.
package chain
