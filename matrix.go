package std140

// Matrix types are named columns×rows, matching GLSL/WGSL: Mat2x3 is two
// vec3 columns. Under std140 a column-major matrix is laid out as an
// array of its columns, and array elements are rounded up to 16-byte
// slots, so every column occupies 16 bytes regardless of row count. The
// blank fields below are that padding; Marshal writes them as zeros.

// Mat2 is a std140 mat2: two vec2 columns. Size 32 bytes.
type Mat2 struct {
	C0 Vec2 // offset 0
	_  [8]byte
	C1 Vec2 // offset 16
	_  [8]byte
}

// Mat3x2 is a std140 mat3x2: three vec2 columns. Size 48 bytes.
type Mat3x2 struct {
	C0 Vec2 // offset 0
	_  [8]byte
	C1 Vec2 // offset 16
	_  [8]byte
	C2 Vec2 // offset 32
	_  [8]byte
}

// Mat4x2 is a std140 mat4x2: four vec2 columns. Size 64 bytes.
type Mat4x2 struct {
	C0 Vec2 // offset 0
	_  [8]byte
	C1 Vec2 // offset 16
	_  [8]byte
	C2 Vec2 // offset 32
	_  [8]byte
	C3 Vec2 // offset 48
	_  [8]byte
}

// Mat2x3 is a std140 mat2x3: two vec3 columns. Size 32 bytes.
type Mat2x3 struct {
	C0 Vec3 // offset 0
	_  [4]byte
	C1 Vec3 // offset 16
	_  [4]byte
}

// Mat3 is a std140 mat3: three vec3 columns. Size 48 bytes.
type Mat3 struct {
	C0 Vec3 // offset 0
	_  [4]byte
	C1 Vec3 // offset 16
	_  [4]byte
	C2 Vec3 // offset 32
	_  [4]byte
}

// Mat4x3 is a std140 mat4x3: four vec3 columns. Size 64 bytes.
type Mat4x3 struct {
	C0 Vec3 // offset 0
	_  [4]byte
	C1 Vec3 // offset 16
	_  [4]byte
	C2 Vec3 // offset 32
	_  [4]byte
	C3 Vec3 // offset 48
	_  [4]byte
}

// Mat2x4 is a std140 mat2x4: two vec4 columns. Size 32 bytes.
type Mat2x4 struct {
	C0 Vec4 // offset 0
	C1 Vec4 // offset 16
}

// Mat3x4 is a std140 mat3x4: three vec4 columns. Size 48 bytes.
type Mat3x4 struct {
	C0 Vec4 // offset 0
	C1 Vec4 // offset 16
	C2 Vec4 // offset 32
}

// Mat4 is a std140 mat4: four vec4 columns. Size 64 bytes.
type Mat4 struct {
	C0 Vec4 // offset 0
	C1 Vec4 // offset 16
	C2 Vec4 // offset 32
	C3 Vec4 // offset 48
}

// NewMat2 returns a Mat2 with the given columns in positional order.
func NewMat2(c0, c1 Vec2) Mat2 { return Mat2{C0: c0, C1: c1} }

// NewMat3x2 returns a Mat3x2 with the given columns in positional order.
func NewMat3x2(c0, c1, c2 Vec2) Mat3x2 { return Mat3x2{C0: c0, C1: c1, C2: c2} }

// NewMat4x2 returns a Mat4x2 with the given columns in positional order.
func NewMat4x2(c0, c1, c2, c3 Vec2) Mat4x2 { return Mat4x2{C0: c0, C1: c1, C2: c2, C3: c3} }

// NewMat2x3 returns a Mat2x3 with the given columns in positional order.
func NewMat2x3(c0, c1 Vec3) Mat2x3 { return Mat2x3{C0: c0, C1: c1} }

// NewMat3 returns a Mat3 with the given columns in positional order.
func NewMat3(c0, c1, c2 Vec3) Mat3 { return Mat3{C0: c0, C1: c1, C2: c2} }

// NewMat4x3 returns a Mat4x3 with the given columns in positional order.
func NewMat4x3(c0, c1, c2, c3 Vec3) Mat4x3 { return Mat4x3{C0: c0, C1: c1, C2: c2, C3: c3} }

// NewMat2x4 returns a Mat2x4 with the given columns in positional order.
func NewMat2x4(c0, c1 Vec4) Mat2x4 { return Mat2x4{C0: c0, C1: c1} }

// NewMat3x4 returns a Mat3x4 with the given columns in positional order.
func NewMat3x4(c0, c1, c2 Vec4) Mat3x4 { return Mat3x4{C0: c0, C1: c1, C2: c2} }

// NewMat4 returns a Mat4 with the given columns in positional order.
func NewMat4(c0, c1, c2, c3 Vec4) Mat4 { return Mat4{C0: c0, C1: c1, C2: c2, C3: c3} }

// Col returns column c. It panics if c is out of range.
func (m Mat2) Col(c int) Vec2 {
	switch c {
	case 0:
		return m.C0
	case 1:
		return m.C1
	}
	panic("std140: column index out of range")
}

// Col returns column c. It panics if c is out of range.
func (m Mat3x2) Col(c int) Vec2 {
	switch c {
	case 0:
		return m.C0
	case 1:
		return m.C1
	case 2:
		return m.C2
	}
	panic("std140: column index out of range")
}

// Col returns column c. It panics if c is out of range.
func (m Mat4x2) Col(c int) Vec2 {
	switch c {
	case 0:
		return m.C0
	case 1:
		return m.C1
	case 2:
		return m.C2
	case 3:
		return m.C3
	}
	panic("std140: column index out of range")
}

// Col returns column c. It panics if c is out of range.
func (m Mat2x3) Col(c int) Vec3 {
	switch c {
	case 0:
		return m.C0
	case 1:
		return m.C1
	}
	panic("std140: column index out of range")
}

// Col returns column c. It panics if c is out of range.
func (m Mat3) Col(c int) Vec3 {
	switch c {
	case 0:
		return m.C0
	case 1:
		return m.C1
	case 2:
		return m.C2
	}
	panic("std140: column index out of range")
}

// Col returns column c. It panics if c is out of range.
func (m Mat4x3) Col(c int) Vec3 {
	switch c {
	case 0:
		return m.C0
	case 1:
		return m.C1
	case 2:
		return m.C2
	case 3:
		return m.C3
	}
	panic("std140: column index out of range")
}

// Col returns column c. It panics if c is out of range.
func (m Mat2x4) Col(c int) Vec4 {
	switch c {
	case 0:
		return m.C0
	case 1:
		return m.C1
	}
	panic("std140: column index out of range")
}

// Col returns column c. It panics if c is out of range.
func (m Mat3x4) Col(c int) Vec4 {
	switch c {
	case 0:
		return m.C0
	case 1:
		return m.C1
	case 2:
		return m.C2
	}
	panic("std140: column index out of range")
}

// Col returns column c. It panics if c is out of range.
func (m Mat4) Col(c int) Vec4 {
	switch c {
	case 0:
		return m.C0
	case 1:
		return m.C1
	case 2:
		return m.C2
	case 3:
		return m.C3
	}
	panic("std140: column index out of range")
}
