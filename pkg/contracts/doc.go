// Package contracts defines clean, focused interface contracts between the
// validation prelude and its external collaborators.
//
// This package follows the Interface Segregation Principle (ISP) by
// providing small, focused interfaces that define clear contracts without
// exposing implementation details. The evaluator that drives validator
// execution supplies implementations of these interfaces; the prelude
// ships defaults (a budget meter, a no-op sink) but never depends on a
// concrete collaborator.
//
// Design principles:
//   - Small, focused interfaces (ISP compliance)
//   - No concrete type leakage in signatures
//   - Comprehensive documentation for all public methods
//   - Deterministic contracts: nothing here may influence a verdict
//
// Interfaces:
//   - Meter: per-primitive resource accounting with a hard budget
//   - Sink: the disabled-by-default debug trace channel
package contracts
