// Package math32 provides engine-agnostic 32-bit vector and matrix
// value types with named components, and their conversions into the
// std140 uniform buffer layout.
//
// The types here are plain interchange values: renderers and game code
// can hold them directly, or produce them from go-gl/mathgl values via
// the From* adapters, and call AsStd140 at the point of upload:
//
//	v := math32.Vec2(1, 2)
//	u := v.AsStd140() // std140.Vec2{1, 2}
//
// Matrices are column-major and named columns×rows: ColumnMatrix2x3 has
// two columns (fields X and Y), each a Vector3.
package math32
