package gli

// Swizzle selects the source of one output channel when a texture is read.
type Swizzle uint8

const (
	// SwizzleNone means no override; the format's default mapping applies.
	SwizzleNone Swizzle = iota

	// SwizzleRed reads the red channel.
	SwizzleRed

	// SwizzleGreen reads the green channel.
	SwizzleGreen

	// SwizzleBlue reads the blue channel.
	SwizzleBlue

	// SwizzleAlpha reads the alpha channel.
	SwizzleAlpha

	// SwizzleZero yields a constant zero.
	SwizzleZero

	// SwizzleOne yields a constant one (the channel's maximum).
	SwizzleOne

	swizzleCount
)

// String returns the lowercase channel name.
func (s Swizzle) String() string {
	switch s {
	case SwizzleNone:
		return "none"
	case SwizzleRed:
		return "red"
	case SwizzleGreen:
		return "green"
	case SwizzleBlue:
		return "blue"
	case SwizzleAlpha:
		return "alpha"
	case SwizzleZero:
		return "zero"
	case SwizzleOne:
		return "one"
	default:
		return "unknown"
	}
}

// IsValid reports whether s is one of the defined swizzles.
func (s Swizzle) IsValid() bool {
	return s < swizzleCount
}

// Swizzles maps the red, green, blue and alpha outputs, in that order.
type Swizzles [4]Swizzle

// IdentitySwizzles is the default RGBA mapping.
var IdentitySwizzles = Swizzles{SwizzleRed, SwizzleGreen, SwizzleBlue, SwizzleAlpha}

// IsValid reports whether every component is a defined swizzle.
func (s Swizzles) IsValid() bool {
	for _, c := range s {
		if !c.IsValid() {
			return false
		}
	}
	return true
}

// Resolve replaces each SwizzleNone component of s with the matching
// component of def.
func (s Swizzles) Resolve(def Swizzles) Swizzles {
	for i, c := range s {
		if c == SwizzleNone {
			s[i] = def[i]
		}
	}
	return s
}

// Apply remaps a texel given as up to four channel values, where missing
// channels read as zero and one is the value used for SwizzleOne.
func (s Swizzles) Apply(texel [4]uint8, one uint8) [4]uint8 {
	var out [4]uint8
	for i, c := range s {
		switch c {
		case SwizzleRed:
			out[i] = texel[0]
		case SwizzleGreen:
			out[i] = texel[1]
		case SwizzleBlue:
			out[i] = texel[2]
		case SwizzleAlpha:
			out[i] = texel[3]
		case SwizzleOne:
			out[i] = one
		case SwizzleNone:
			out[i] = texel[i]
		}
	}
	return out
}
