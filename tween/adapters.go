package tween

import (
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
)

// Colour blends in various colour spaces. Blending in RGB is cheapest; Lab,
// Luv and Hcl give perceptually smoother transitions. Hcl and Hsv take the
// shortest path around the hue circle.
var (
	ColorRGB = Exact[colorful.Color](colorful.Color.BlendRgb)
	ColorLab = Exact[colorful.Color](colorful.Color.BlendLab)
	ColorLuv = Exact[colorful.Color](colorful.Color.BlendLuv)
	ColorHcl = Exact[colorful.Color](colorful.Color.BlendHcl)
	ColorHsv = Exact[colorful.Color](colorful.Color.BlendHsv)
)

// Vec2 blends golang.org/x/image/math/f64 two-component vectors.
func Vec2(from, to f64.Vec2, ratio float64) f64.Vec2 {
	return f64.Vec2{
		Lerp(from[0], to[0], ratio),
		Lerp(from[1], to[1], ratio),
	}
}

// Vec3 blends golang.org/x/image/math/f64 three-component vectors.
func Vec3(from, to f64.Vec3, ratio float64) f64.Vec3 {
	return f64.Vec3{
		Lerp(from[0], to[0], ratio),
		Lerp(from[1], to[1], ratio),
		Lerp(from[2], to[2], ratio),
	}
}

// Vec4 blends golang.org/x/image/math/f64 four-component vectors.
func Vec4(from, to f64.Vec4, ratio float64) f64.Vec4 {
	return f64.Vec4{
		Lerp(from[0], to[0], ratio),
		Lerp(from[1], to[1], ratio),
		Lerp(from[2], to[2], ratio),
		Lerp(from[3], to[3], ratio),
	}
}

// Vec2f32 blends golang.org/x/image/math/f32 two-component vectors.
func Vec2f32(from, to f32.Vec2, ratio float64) f32.Vec2 {
	return f32.Vec2{
		Lerp(from[0], to[0], ratio),
		Lerp(from[1], to[1], ratio),
	}
}

// Vec3f32 blends golang.org/x/image/math/f32 three-component vectors.
func Vec3f32(from, to f32.Vec3, ratio float64) f32.Vec3 {
	return f32.Vec3{
		Lerp(from[0], to[0], ratio),
		Lerp(from[1], to[1], ratio),
		Lerp(from[2], to[2], ratio),
	}
}

// Vec4f32 blends golang.org/x/image/math/f32 four-component vectors.
func Vec4f32(from, to f32.Vec4, ratio float64) f32.Vec4 {
	return f32.Vec4{
		Lerp(from[0], to[0], ratio),
		Lerp(from[1], to[1], ratio),
		Lerp(from[2], to[2], ratio),
		Lerp(from[3], to[3], ratio),
	}
}

// Point26_6 blends fixed-point points, rounding to the nearest 1/64.
func Point26_6(from, to fixed.Point26_6, ratio float64) fixed.Point26_6 {
	return fixed.Point26_6{
		X: Lerp(from.X, to.X, ratio),
		Y: Lerp(from.Y, to.Y, ratio),
	}
}
