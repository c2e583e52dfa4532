// Package huffviz turns Huffman coding into a sequence of inspectable steps,
// so the construction of the tree and the derivation of every code can be
// replayed one frame at a time.
//
// What is huffviz?
//
//	A small, deterministic toolkit built around one pure generator:
//		• huffman:  node table, two-minimum selection, merge, backtrace;
//		            emits an immutable Sequence of Step snapshots
//		• listing:  the reference routine the steps point into (line ranges)
//		• playback: a cursor with next/prev/seek and timed auto-advance
//		• render:   text views of a step (forest, node table, codes, listing)
//		• codec:    bit-level encode/decode with the finished codes
//		• config:   YAML alphabet and playback settings
//		• cmd/huffviz: the command-line front end
//
// Why a step sequence?
//
//   - Every step is a full copy of the visible node table, so any frame can be
//     shown without replaying the ones before it.
//   - The generator never touches the caller's data; the same alphabet always
//     yields the same sequence.
//   - Ties are broken by the lowest node id, which makes the trees (and the
//     codes) reproducible across runs and platforms.
//
// Quick example (alphabet A:1 B:1 C:2):
//
//	    5 (4)
//	   0/   \1
//	  C(2)   4 (2)
//	        0/   \1
//	      A(1)   B(1)
//
//	codes: A=10 B=11 C=0, 16 steps
//
//	go install github.com/katalvlaran/huffviz/cmd/huffviz@latest
package huffviz
