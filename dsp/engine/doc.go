// Package engine implements the sample-rate processing core of the pedal:
// a circular delay line with optional reverse addressing, repeated echo
// taps, a data-dependent shimmer perturbation and a wet/dry mix, producing
// exactly one output code per input code.
//
// The engine is driven from a single sample-rate context and shares only
// the Params store with the control loop. ProcessSample never allocates,
// never blocks and has no error paths; its loop bound is the repeat limit.
package engine
