// Package solo contains the single-value, synchronous combinators over
// rop.Result[O, E]. Every function takes its Result by value and consumes
// that copy; the caller's instance is left as it was.
//
// Highlights:
// - Succeed/Fail/Try: construct a Result (Try lifts a Go (value, error) pair)
// - Map/MapErr: transform one side, re-type the other
// - MapOr/MapOrElse: collapse a Result into a plain value
// - And/AndThen: short-circuit on the first Err
// - Or/OrElse: recover from an Err
// - Validate/ValidateAll/FailOnError: turn an Ok into an Err on failed checks
// - DoubleMap/Tee/TeeIf/DoubleTee/Flatten: railway helpers
// - Contains/ContainsErr/Equal: comparisons for comparable payloads
//
// Map, MapErr, MapOrElse, DoubleTee and the chaining functions abort on a malformed
// (emptied or zero) Result; MapOr returns its default instead.
package solo
