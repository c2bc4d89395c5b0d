// Package degseq turns a target density into a per-vertex degree sequence
// that some simple graph can realize.
//
// Two policies are provided:
//
//   - Regular (deterministic): every vertex gets k = round(clip(d)·(N−1)).
//     N·k odd or k ≥ N is an ErrInvalidConfiguration; the uniform sequence is
//     realized by a random k-regular construction (builder.RandomRegular).
//   - Probabilistic: each attempt draws per-vertex probabilities, rounds them
//     to degrees, repairs an odd sum (MakeEvenSum) and keeps the first
//     sequence that passes the Erdős–Gallai test (IsGraphical). Running out
//     of attempts is reported as *ExhaustedError, never silently.
//
// Rounding is half-to-even throughout.
//
// Randomness always comes from a caller-owned *rand.Rand; the package keeps
// no global generator state.
package degseq
