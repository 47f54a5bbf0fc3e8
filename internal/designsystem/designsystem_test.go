package designsystem

import "testing"

func TestPaletteThemes(t *testing.T) {
	tests := []struct {
		theme     string
		wantRoles int
		firstRole string
	}{
		{theme: ThemeDark, wantRoles: 9, firstRole: "bg_primary"},
		{theme: ThemeLight, wantRoles: 3, firstRole: "bg_primary"},
	}

	for _, tt := range tests {
		t.Run(tt.theme, func(t *testing.T) {
			roles, err := Palette(tt.theme)
			if err != nil {
				t.Fatalf("Palette(%q) unexpected error: %v", tt.theme, err)
			}
			if len(roles) != tt.wantRoles {
				t.Errorf("Palette(%q) has %d roles, want %d", tt.theme, len(roles), tt.wantRoles)
			}
			// Scan order matters: backgrounds must be tried before
			// accents so a dark surface reports as bg_*, not as a
			// coincidentally-close accent.
			if roles[0].Name != tt.firstRole {
				t.Errorf("first role = %q, want %q", roles[0].Name, tt.firstRole)
			}
		})
	}
}

func TestPaletteUnknownTheme(t *testing.T) {
	if _, err := Palette("sepia"); err == nil {
		t.Error("expected error for unknown theme")
	}
}

func TestContrastRequirement(t *testing.T) {
	if got := ContrastRequirement(ContextNormalText); got != 4.5 {
		t.Errorf("normal_text requirement = %v, want 4.5", got)
	}
	if got := ContrastRequirement(ContextLargeText); got != 3.0 {
		t.Errorf("large_text requirement = %v, want 3.0", got)
	}
	if got := ContrastRequirement("unknown"); got != 4.5 {
		t.Errorf("unknown context should fall back to normal_text, got %v", got)
	}
}

func TestExpectedTextColours(t *testing.T) {
	colours := ExpectedTextColours()
	if len(colours) != 3 {
		t.Fatalf("expected 3 probe colours, got %d", len(colours))
	}
	if colours[0].Hex() != "#f8fafc" {
		t.Errorf("first probe = %s, want #f8fafc", colours[0].Hex())
	}
}
