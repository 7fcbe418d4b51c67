// Package sequence provides Sequence, a resizable array of text values.
//
// A Sequence keeps a backing store of slots. Its capacity is the number of
// slots and its length is the number of leading slots in use. An empty string
// marks an empty slot, so empty strings are never inserted and never found.
//
// The package makes a few deliberate choices that callers can observe:
//   - Growth adds exactly one slot when an insertion finds the store full.
//     Filling a sequence of capacity n with n+1 values leaves a capacity of
//     n+1, not 2n.
//   - Get is bounded by capacity, not by length. Reading a slot past the
//     length returns an empty value, not the absent sentinel.
//   - FromSlice and Builder.WithData take over the caller's slice without
//     copying it. Until the first growth, writes through either side are
//     visible to the other.
//   - Nothing fails loudly. Invalid indices and empty values produce an
//     absent result ("", false), -1, or a no-op.
//
// A Sequence is not safe for concurrent use. Callers that share one must hold
// an exclusive lock for every call.
//
// Example usage:
//
//	seq := sequence.FromSlice([]string{"Java", "Python", "C"})
//	seq.Insert("Go")
//	fmt.Println(seq)              // [Java, Python, C, Go]
//	fmt.Println(seq.IndexOf("C")) // 2
//	fmt.Println(seq.Usage())      // 100
//
// Sequences are Hookable. Observers such as hooking.LogHook or
// tracing.OpTracer see every insertion, removal, and growth.
package sequence
