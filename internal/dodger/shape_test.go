package dodger

import "testing"

func TestKindNext(t *testing.T) {
	tests := []struct {
		in, want Kind
	}{
		{KindRectangle, KindCircle},
		{KindCircle, KindTriangle},
		{KindTriangle, KindSquare},
		{KindSquare, KindRectangle},
	}

	for _, tt := range tests {
		if got := tt.in.Next(); got != tt.want {
			t.Errorf("%v.Next() = %v, expected %v", tt.in, got, tt.want)
		}
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"circle", KindCircle, false},
		{"Triangle", KindTriangle, false},
		{" squ ", KindSquare, false},
		{"rect", KindRectangle, false},
		{"2", KindTriangle, false},
		{"9", KindRectangle, false},
		{"-1", KindRectangle, false},
		{"ci", KindRectangle, true},
		{"hexagon", KindRectangle, true},
	}

	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseKind(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseKind(%q) = %v, expected %v", tt.in, got, tt.want)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    ColorID
		wantErr bool
	}{
		{"yellow", Yellow, false},
		{"MAG", Magenta, false},
		{"5", Cyan, false},
		{"6", Red, false},
		{"purple", Red, true},
	}

	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, expected %v", tt.in, got, tt.want)
		}
	}
}

func TestIndexDefaults(t *testing.T) {
	if got := KindFromIndex(4); got != KindRectangle {
		t.Errorf("KindFromIndex(4) = %v, expected rectangle", got)
	}
	if got := KindFromIndex(3); got != KindSquare {
		t.Errorf("KindFromIndex(3) = %v, expected square", got)
	}
	if got := ColorFromIndex(-3); got != Red {
		t.Errorf("ColorFromIndex(-3) = %v, expected red", got)
	}
	if got := ColorFromIndex(2); got != Blue {
		t.Errorf("ColorFromIndex(2) = %v, expected blue", got)
	}
}

func TestRGBMatches(t *testing.T) {
	tests := []struct {
		name string
		a, b RGB
		want bool
	}{
		{"identical", RGB{1, 0, 0}, RGB{1, 0, 0}, true},
		{"within tolerance", RGB{1, 0, 0}, RGB{0.91, 0.09, 0}, true},
		{"one channel off", RGB{1, 0, 0}, RGB{1, 0, 0.2}, false},
		{"beyond tolerance", RGB{0, 0, 0}, RGB{0, 0, 0.25}, false},
		{"red vs yellow", Red.RGB(), Yellow.RGB(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Matches(tt.b, 0.1); got != tt.want {
				t.Errorf("Matches() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestPaletteLookup(t *testing.T) {
	for c := Red; c < ColorCount; c++ {
		got, ok := Lookup(c.RGB())
		if !ok || got != c {
			t.Errorf("Lookup(%v.RGB()) = %v, %v", c, got, ok)
		}
	}

	if _, ok := Lookup(RGB{0.5, 0.5, 0.5}); ok {
		t.Error("Lookup of an off-palette color should fail")
	}
	if got := ColorID(42).RGB(); got != Red.RGB() {
		t.Errorf("invalid color RGB = %+v, expected red", got)
	}
}

func TestShapeBoxIgnoresKind(t *testing.T) {
	rect := Shape{Kind: KindRectangle, X: 0.1, Y: 0.2, Size: 0.2}
	tri := Shape{Kind: KindTriangle, X: 0.1, Y: 0.2, Size: 0.2}

	if rect.Box() != tri.Box() {
		t.Errorf("boxes differ by kind: %+v vs %+v", rect.Box(), tri.Box())
	}
	if b := rect.Box(); b.HalfW != 0.1 || b.HalfH != 0.1 {
		t.Errorf("box half extents = %g,%g, expected 0.1", b.HalfW, b.HalfH)
	}
}

func TestTouchingEdgesCollide(t *testing.T) {
	player := Shape{X: 0, Y: -0.5, Size: 0.5}
	touching := Shape{X: 0.5, Y: -0.5, Size: 0.5}
	apart := Shape{X: 0.5001, Y: -0.5, Size: 0.5}

	if !player.Box().Overlaps(touching.Box()) {
		t.Error("touching edges should overlap")
	}
	if player.Box().Overlaps(apart.Box()) {
		t.Error("separated boxes should not overlap")
	}
}
