package config

import "testing"

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		env       string
		wantDebug bool
		has       []string
		hasNot    []string
	}{
		{"empty", "", false, nil, []string{"debug", "sixel16"}},
		{"debug only", "debug", true, []string{"debug"}, []string{"sixel16", "sixel256"}},
		{"debug with sixel", "debug sixel256", true, []string{"debug", "sixel256"}, []string{"sixel16"}},
		{"case folded", "DEBUG Sixel16", true, []string{"debug", "sixel16"}, nil},
		{"extra whitespace", "  debug \t sixel16  ", true, []string{"debug", "sixel16"}, nil},
		{"unrecognised keywords ignored", "verbose turbo", false, []string{"verbose"}, []string{"debug"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.env, "linux")
			if c.Debugging() != tt.wantDebug {
				t.Errorf("Debugging: got %v, want %v", c.Debugging(), tt.wantDebug)
			}
			for _, kw := range tt.has {
				if !c.Has(kw) {
					t.Errorf("Has(%q): got false, want true", kw)
				}
			}
			for _, kw := range tt.hasNot {
				if c.Has(kw) {
					t.Errorf("Has(%q): got true, want false", kw)
				}
			}
		})
	}
}

func TestDebugFlagOverrides(t *testing.T) {
	c := New("", "linux")
	if c.Debugging() {
		t.Fatal("debug should default off")
	}
	c.DebugOn()
	if !c.Debugging() {
		t.Error("DebugOn did not enable debugging")
	}
	c.DebugOff()
	if c.Debugging() {
		t.Error("DebugOff did not disable debugging")
	}
	c.DebugSet(true)
	if !c.Debugging() {
		t.Error("DebugSet(true) did not enable debugging")
	}

	// The environment-derived keyword set is unaffected by flag flips.
	if c.Has(KeywordDebug) {
		t.Error("keyword set should not change when the flag does")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvVar, "debug sixel16")
	c := FromEnv()
	if !c.Debugging() {
		t.Error("Debugging: got false, want true")
	}
	if !c.Has(KeywordSixel16) {
		t.Error("Has(sixel16): got false, want true")
	}
	if c.GOOS() == "" {
		t.Error("GOOS should report the host OS")
	}
}

func TestFromEnvUnset(t *testing.T) {
	t.Setenv(EnvVar, "")
	c := FromEnv()
	if c.Debugging() {
		t.Error("Debugging: got true, want false with empty environment")
	}
}
