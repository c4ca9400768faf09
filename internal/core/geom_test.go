package core

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestPointAdd(t *testing.T) {
	p := Point{X: 2, Y: 3}.Add(-1, 1)
	if p != (Point{X: 1, Y: 4}) {
		t.Errorf("Add = %v, expected {1 4}", p)
	}
}

func TestRoleOf(t *testing.T) {
	tests := []struct {
		g    Glyph
		role Role
	}{
		{GlyphShip, RoleShip},
		{GlyphShot, RoleShot},
		{GlyphBlast, RoleBlast},
		{GlyphInvader, RoleInvader},
		{GlyphInvaderAlt, RoleInvader},
		{Empty, RoleNone},
	}

	for _, tc := range tests {
		if got := RoleOf(tc.g); got != tc.role {
			t.Errorf("RoleOf(%q) = %v, expected %v", tc.g, got, tc.role)
		}
	}
}

func TestParseIntent(t *testing.T) {
	for _, i := range Intents {
		got, ok := ParseIntent(i.String())
		if !ok || got != i {
			t.Errorf("ParseIntent(%q) = %v, %v", i.String(), got, ok)
		}
	}
	if _, ok := ParseIntent("jump"); ok {
		t.Error("ParseIntent should reject unknown names")
	}
}
