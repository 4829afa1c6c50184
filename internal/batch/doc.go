// Package batch compiles and runs conversion jobs declared in CUE files.
//
// A job file declares conversions under the "job" field:
//
//	job: epoch: {
//		op:      "decode"
//		zone:    "utc"
//		seconds: 0
//	}
//	job: leap_day: {
//		op:    "encode"
//		year:  2024
//		month: 2
//		day:   29
//	}
//
// Compilation uses the CUE SDK's Go API directly (not a CLI subprocess) and
// reports structural problems as CompileError with source positions. Range
// problems found before execution are reported as ValidationError with
// stable E-codes.
//
// Execution is deterministic: jobs run in name order and results serialize
// through canonical JSON (sorted keys, NFC-normalized strings, integers
// only), so a batch run can be compared against a golden file byte for
// byte. Decode jobs that target the local zone take their zone rules from
// an injected resolver; everything else is pure.
package batch
