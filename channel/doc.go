// Package channel implements fixed-length, typed data channels: a single
// homogeneous attribute array (one scalar field of a voxel grid, say) that
// backs larger array and lattice layers.
//
// A [Channel] owns exactly one [Store] and never grows or shrinks it. Point
// access goes through the capability interfaces [RefGetter], [MutGetter],
// [PtrGetter] and [Getter], all indexed by a linear offset. Offsets are
// checked by default; building with the lattice_nocheck tag turns the same
// calls into unchecked accesses (see [Mode]).
//
// Bulk construction without a default-then-overwrite pass uses
// [ReserveUninit], then writes every slot, then [UninitChannel.Finalize].
//
// [Channels] is the uniform fill/reset/point-access contract shared by a
// single *Channel and by the generated composites [Tuple2] through [Tuple6],
// so one call can drive several co-indexed channels:
//
//	density := channel.Fill[float32](0, 4096)
//	color := channel.Fill[uint32](0, 4096)
//	voxels := channel.NewTuple2[float32, uint32](density, color)
//	voxels.ResetValues(channel.Values2[float32, uint32]{A: 1, B: 0xff00ff})
//
// None of the types here are safe for concurrent use. Parallel writers
// partition the offset range themselves and write through [PtrGetter].
package channel
