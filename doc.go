// Package std140 defines GPU uniform buffer types in the std140 memory
// layout used by WebGPU, Vulkan and OpenGL uniform blocks.
//
// The types in this package are byte-exact: a value's in-memory
// representation (and the output of Marshal) is the layout the graphics
// driver reads. Vectors are bare fixed-size arrays; matrices hold their
// columns in 16-byte slots with explicit padding, per the std140 column
// stride rule. Field order, padding, and component count are fixed and
// not configurable.
//
// Values are normally produced from the ergonomic math types in the
// math32 subpackage via their AsStd140 methods:
//
//	view := math32.ColumnMatrix4{ ... }
//	buf := std140.Marshal(view.AsStd140())
//
// and the resulting bytes uploaded as-is.
package std140
