package math32

// Vector2 is a 2D vector/point with X and Y float32 components.
type Vector2 struct {
	X float32
	Y float32
}

// Vector3 is a 3D vector/point with X, Y and Z float32 components.
type Vector3 struct {
	X float32
	Y float32
	Z float32
}

// Vector4 is a 4D vector/point with X, Y, Z and W float32 components.
type Vector4 struct {
	X float32
	Y float32
	Z float32
	W float32
}

// Vector2i is a 2D vector/point with X and Y int32 components.
type Vector2i struct {
	X int32
	Y int32
}

// Vector3i is a 3D vector/point with X, Y and Z int32 components.
type Vector3i struct {
	X int32
	Y int32
	Z int32
}

// Vector4i is a 4D vector/point with X, Y, Z and W int32 components.
type Vector4i struct {
	X int32
	Y int32
	Z int32
	W int32
}

// Vector2u is a 2D vector/point with X and Y uint32 components.
type Vector2u struct {
	X uint32
	Y uint32
}

// Vector3u is a 3D vector/point with X, Y and Z uint32 components.
type Vector3u struct {
	X uint32
	Y uint32
	Z uint32
}

// Vector4u is a 4D vector/point with X, Y, Z and W uint32 components.
type Vector4u struct {
	X uint32
	Y uint32
	Z uint32
	W uint32
}

// Vec2 returns a new [Vector2] with the given x and y components.
func Vec2(x, y float32) Vector2 {
	return Vector2{X: x, Y: y}
}

// Vec3 returns a new [Vector3] with the given x, y and z components.
func Vec3(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Vec4 returns a new [Vector4] with the given x, y, z and w components.
func Vec4(x, y, z, w float32) Vector4 {
	return Vector4{X: x, Y: y, Z: z, W: w}
}

// Vec2i returns a new [Vector2i] with the given x and y components.
func Vec2i(x, y int32) Vector2i {
	return Vector2i{X: x, Y: y}
}

// Vec3i returns a new [Vector3i] with the given x, y and z components.
func Vec3i(x, y, z int32) Vector3i {
	return Vector3i{X: x, Y: y, Z: z}
}

// Vec4i returns a new [Vector4i] with the given x, y, z and w components.
func Vec4i(x, y, z, w int32) Vector4i {
	return Vector4i{X: x, Y: y, Z: z, W: w}
}

// Vec2u returns a new [Vector2u] with the given x and y components.
func Vec2u(x, y uint32) Vector2u {
	return Vector2u{X: x, Y: y}
}

// Vec3u returns a new [Vector3u] with the given x, y and z components.
func Vec3u(x, y, z uint32) Vector3u {
	return Vector3u{X: x, Y: y, Z: z}
}

// Vec4u returns a new [Vector4u] with the given x, y, z and w components.
func Vec4u(x, y, z, w uint32) Vector4u {
	return Vector4u{X: x, Y: y, Z: z, W: w}
}

// Set sets this vector's X and Y components.
func (v *Vector2) Set(x, y float32) {
	v.X = x
	v.Y = y
}

// Set sets this vector's X, Y and Z components.
func (v *Vector3) Set(x, y, z float32) {
	v.X = x
	v.Y = y
	v.Z = z
}

// Set sets this vector's X, Y, Z and W components.
func (v *Vector4) Set(x, y, z, w float32) {
	v.X = x
	v.Y = y
	v.Z = z
	v.W = w
}

// Set sets this vector's X and Y components.
func (v *Vector2i) Set(x, y int32) {
	v.X = x
	v.Y = y
}

// Set sets this vector's X, Y and Z components.
func (v *Vector3i) Set(x, y, z int32) {
	v.X = x
	v.Y = y
	v.Z = z
}

// Set sets this vector's X, Y, Z and W components.
func (v *Vector4i) Set(x, y, z, w int32) {
	v.X = x
	v.Y = y
	v.Z = z
	v.W = w
}

// Set sets this vector's X and Y components.
func (v *Vector2u) Set(x, y uint32) {
	v.X = x
	v.Y = y
}

// Set sets this vector's X, Y and Z components.
func (v *Vector3u) Set(x, y, z uint32) {
	v.X = x
	v.Y = y
	v.Z = z
}

// Set sets this vector's X, Y, Z and W components.
func (v *Vector4u) Set(x, y, z, w uint32) {
	v.X = x
	v.Y = y
	v.Z = z
	v.W = w
}

// Dim returns the component at the given positional index (0 = X, 1 = Y).
// It panics if dim is out of range.
func (v Vector2) Dim(dim int) float32 {
	switch dim {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	panic("math32: dim is out of range")
}

// Dim returns the component at the given positional index (0 = X, 1 = Y,
// 2 = Z). It panics if dim is out of range.
func (v Vector3) Dim(dim int) float32 {
	switch dim {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic("math32: dim is out of range")
}

// Dim returns the component at the given positional index (0 = X, 1 = Y,
// 2 = Z, 3 = W). It panics if dim is out of range.
func (v Vector4) Dim(dim int) float32 {
	switch dim {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	}
	panic("math32: dim is out of range")
}

// Dim returns the component at the given positional index (0 = X, 1 = Y).
// It panics if dim is out of range.
func (v Vector2i) Dim(dim int) int32 {
	switch dim {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	panic("math32: dim is out of range")
}

// Dim returns the component at the given positional index (0 = X, 1 = Y,
// 2 = Z). It panics if dim is out of range.
func (v Vector3i) Dim(dim int) int32 {
	switch dim {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic("math32: dim is out of range")
}

// Dim returns the component at the given positional index (0 = X, 1 = Y,
// 2 = Z, 3 = W). It panics if dim is out of range.
func (v Vector4i) Dim(dim int) int32 {
	switch dim {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	}
	panic("math32: dim is out of range")
}

// Dim returns the component at the given positional index (0 = X, 1 = Y).
// It panics if dim is out of range.
func (v Vector2u) Dim(dim int) uint32 {
	switch dim {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	panic("math32: dim is out of range")
}

// Dim returns the component at the given positional index (0 = X, 1 = Y,
// 2 = Z). It panics if dim is out of range.
func (v Vector3u) Dim(dim int) uint32 {
	switch dim {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic("math32: dim is out of range")
}

// Dim returns the component at the given positional index (0 = X, 1 = Y,
// 2 = Z, 3 = W). It panics if dim is out of range.
func (v Vector4u) Dim(dim int) uint32 {
	switch dim {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	}
	panic("math32: dim is out of range")
}
