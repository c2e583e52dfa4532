// Package playback navigates a materialized huffman.Sequence the way a
// visualizer's transport controls do: step forward and back, reset, seek,
// jump to the first step of a phase, and auto-advance on a timer.
//
// The sequence is immutable and fully computed up front, so navigation is
// index arithmetic only. A Player clamps its index to [0, Len-1] and is safe
// to read from other goroutines while Play runs.
//
// Errors:
//
//   - ErrNilSequence     NewPlayer received a nil sequence
//   - ErrIndexOutOfRange Seek outside [0, Len)
//   - context errors     Play stopped by cancellation (pause)
package playback
