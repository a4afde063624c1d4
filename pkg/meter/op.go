// Package meter implements the resource-metering hook charged per
// primitive call.
//
// The surrounding evaluator enforces a budget: each primitive consumes a
// bounded, predictable number of units, and exhausting the budget aborts
// the entire execution as a fatal, non-recoverable condition distinct
// from a normal Err verdict. Costs come from a CostModel, either the
// built-in default or one decoded from strict YAML.
package meter

import "github.com/covenantnet/prelude/pkg/contracts"

// Metered primitive operations. Per-element operations (folds, searches,
// scans) are charged per processed element via the units argument, so
// short-circuiting genuinely saves budget.
const (
	OpInvoke contracts.Op = "invoke"

	OpCheckCondition contracts.Op = "check_condition"
	OpAndThen        contracts.Op = "and_then"
	OpMap            contracts.Op = "map"

	OpReduce  contracts.Op = "reduce"
	OpFind    contracts.Op = "find"
	OpAll     contracts.Op = "all"
	OpAny     contracts.Op = "any"
	OpReverse contracts.Op = "reverse"
	OpRepeat  contracts.Op = "repeat"
	OpKeys    contracts.Op = "keys"
	OpValues  contracts.Op = "values"

	OpUnwrap contracts.Op = "unwrap"

	OpTextContains contracts.Op = "text_contains"
	OpTextSplit    contracts.Op = "text_split"
	OpTextCase     contracts.Op = "text_case"
	OpTextLength   contracts.Op = "text_length"

	OpAbs  contracts.Op = "abs"
	OpPow  contracts.Op = "pow"
	OpSqrt contracts.Op = "sqrt"

	OpHash            contracts.Op = "hash"
	OpVerifySignature contracts.Op = "verify_signature"

	OpTraceLog contracts.Op = "trace_log"
)

// Ops lists every metered operation; the default cost model covers each.
var Ops = []contracts.Op{
	OpInvoke,
	OpCheckCondition, OpAndThen, OpMap,
	OpReduce, OpFind, OpAll, OpAny, OpReverse, OpRepeat, OpKeys, OpValues,
	OpUnwrap,
	OpTextContains, OpTextSplit, OpTextCase, OpTextLength,
	OpAbs, OpPow, OpSqrt,
	OpHash, OpVerifySignature,
	OpTraceLog,
}
