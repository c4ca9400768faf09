package core

// Glyphs drawn by the game entities.
const (
	GlyphShip       Glyph = 'A'
	GlyphShot       Glyph = '|'
	GlyphBlast      Glyph = '*'
	GlyphInvader    Glyph = 'x'
	GlyphInvaderAlt Glyph = '+'
)

// Role classifies a glyph so output devices can style it
// without knowing which entity drew it.
type Role uint8

const (
	RoleNone Role = iota
	RoleShip
	RoleShot
	RoleBlast
	RoleInvader
	RoleBorder
)

// String returns the config key for the role.
func (r Role) String() string {
	switch r {
	case RoleShip:
		return "ship"
	case RoleShot:
		return "shot"
	case RoleBlast:
		return "blast"
	case RoleInvader:
		return "invader"
	case RoleBorder:
		return "border"
	default:
		return "none"
	}
}

// RoleOf returns the role of a glyph.
func RoleOf(g Glyph) Role {
	switch g {
	case GlyphShip:
		return RoleShip
	case GlyphShot:
		return RoleShot
	case GlyphBlast:
		return RoleBlast
	case GlyphInvader, GlyphInvaderAlt:
		return RoleInvader
	default:
		return RoleNone
	}
}
