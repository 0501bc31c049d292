// Package lite provides lightweight channel-lifted helpers that wrap solo
// combinators for concurrent pipelines. It is designed for simple
// fan-out/fan-in flows over channels of rop.Result.
//
// Common usage:
// - Run/Turnout: execute an engine over an input channel with N lines
// - Map/MapErr/AndThen/OrElse/Validate/Tee: lift solo combinators into engines
// - Finally: collapse Result[O, E] into a plain value on completion
package lite
