// Package core contains pipeline plumbing utilities: channel helpers, worker
// configuration via context, the locomotive that drives stages, and the
// Drain/Feed bridges between channels and rop.Source/rop.Sink values such
// as mpsc.Queue. It does not define business logic; instead it provides the
// scaffolding for package lite to run pipelines with controlled concurrency.
package core
