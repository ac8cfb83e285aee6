package std140

// Vec2 is a std140 vec2: two float32 components, 8-byte base alignment.
type Vec2 [2]float32

// Vec3 is a std140 vec3: three float32 components, 16-byte base alignment.
type Vec3 [3]float32

// Vec4 is a std140 vec4: four float32 components, 16-byte base alignment.
type Vec4 [4]float32

// IVec2 is a std140 ivec2: two int32 components, 8-byte base alignment.
type IVec2 [2]int32

// IVec3 is a std140 ivec3: three int32 components, 16-byte base alignment.
type IVec3 [3]int32

// IVec4 is a std140 ivec4: four int32 components, 16-byte base alignment.
type IVec4 [4]int32

// UVec2 is a std140 uvec2: two uint32 components, 8-byte base alignment.
type UVec2 [2]uint32

// UVec3 is a std140 uvec3: three uint32 components, 16-byte base alignment.
type UVec3 [3]uint32

// UVec4 is a std140 uvec4: four uint32 components, 16-byte base alignment.
type UVec4 [4]uint32

// NewVec2 returns a Vec2 with the given components in positional order.
func NewVec2(x, y float32) Vec2 { return Vec2{x, y} }

// NewVec3 returns a Vec3 with the given components in positional order.
func NewVec3(x, y, z float32) Vec3 { return Vec3{x, y, z} }

// NewVec4 returns a Vec4 with the given components in positional order.
func NewVec4(x, y, z, w float32) Vec4 { return Vec4{x, y, z, w} }

// NewIVec2 returns an IVec2 with the given components in positional order.
func NewIVec2(x, y int32) IVec2 { return IVec2{x, y} }

// NewIVec3 returns an IVec3 with the given components in positional order.
func NewIVec3(x, y, z int32) IVec3 { return IVec3{x, y, z} }

// NewIVec4 returns an IVec4 with the given components in positional order.
func NewIVec4(x, y, z, w int32) IVec4 { return IVec4{x, y, z, w} }

// NewUVec2 returns a UVec2 with the given components in positional order.
func NewUVec2(x, y uint32) UVec2 { return UVec2{x, y} }

// NewUVec3 returns a UVec3 with the given components in positional order.
func NewUVec3(x, y, z uint32) UVec3 { return UVec3{x, y, z} }

// NewUVec4 returns a UVec4 with the given components in positional order.
func NewUVec4(x, y, z, w uint32) UVec4 { return UVec4{x, y, z, w} }
