package otp

import (
	"errors"
	"testing"
)

func TestParseBifLineOTP19(t *testing.T) {
	tests := []struct {
		line string
		want Bif
	}{
		{"spawn 3", Bif{Atom: "spawn", Arity: 3, CName: "spawn"}},
		{"spawn 3 spawn_3", Bif{Atom: "spawn", Arity: 3, CName: "spawn_3"}},
		{"'+' 2 splus_2", Bif{Atom: "'+'", Arity: 2, CName: "splus_2"}},
		{"self 0", Bif{Atom: "self", Arity: 0, CName: "self"}},
	}

	rel := OTP19()
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := rel.ParseBifLine(tt.line)
			if err != nil {
				t.Fatalf("ParseBifLine(%q) failed: %v", tt.line, err)
			}
			if got != tt.want {
				t.Errorf("ParseBifLine(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseBifLineOTP20(t *testing.T) {
	tests := []struct {
		line string
		want Bif
	}{
		{"bif erlang:abs/1 abs_fun", Bif{Atom: "abs", Mod: "erlang", Arity: 1, CName: "abs_fun", BifType: "bif"}},
		{"ubif erlang:self/0", Bif{Atom: "self", Mod: "erlang", Arity: 0, CName: "self", BifType: "ubif"}},
		{"gcbif erlang:length/1", Bif{Atom: "length", Mod: "erlang", Arity: 1, CName: "length", BifType: "gcbif"}},
		// The arity split is on the last slash, so '/' and 'div' survive
		{"bif erlang:'/'/2 div_2", Bif{Atom: "'/'", Mod: "erlang", Arity: 2, CName: "div_2", BifType: "bif"}},
	}

	rel := OTP20()
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := rel.ParseBifLine(tt.line)
			if err != nil {
				t.Fatalf("ParseBifLine(%q) failed: %v", tt.line, err)
			}
			if got != tt.want {
				t.Errorf("ParseBifLine(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseBifLineErrors(t *testing.T) {
	tests := []struct {
		name string
		rel  Release
		line string
		want error
	}{
		{"otp19 single token", OTP19(), "spawn", ErrMalformedBifLine},
		{"otp19 bad arity", OTP19(), "spawn three", ErrInvalidArity},
		{"otp20 single token", OTP20(), "bif", ErrMalformedBifLine},
		{"otp20 no module", OTP20(), "bif abs/1", ErrMalformedBifLine},
		{"otp20 no arity", OTP20(), "bif erlang:abs", ErrMalformedBifLine},
		{"otp20 bad arity", OTP20(), "bif erlang:abs/one", ErrInvalidArity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.rel.ParseBifLine(tt.line)
			if !errors.Is(err, tt.want) {
				t.Errorf("ParseBifLine(%q) error = %v, want %v", tt.line, err, tt.want)
			}
		})
	}
}

func TestReleaseByName(t *testing.T) {
	if rel, ok := ReleaseByName("otp19"); !ok || rel.MaxOpcode != 158 {
		t.Errorf("ReleaseByName(otp19) = %+v, %v", rel, ok)
	}
	if rel, ok := ReleaseByName("otp20"); !ok || rel.MaxOpcode != 159 {
		t.Errorf("ReleaseByName(otp20) = %+v, %v", rel, ok)
	}
	if _, ok := ReleaseByName("otp99"); ok {
		t.Error("ReleaseByName(otp99) should not resolve")
	}
}

func TestReleaseTableLocations(t *testing.T) {
	rel := OTP20()
	if rel.AtomsTab != "atoms.tab" {
		t.Errorf("AtomsTab = %q", rel.AtomsTab)
	}
	if rel.BifTab != "otp20/bif.tab" {
		t.Errorf("BifTab = %q", rel.BifTab)
	}
	if rel.GenopTab != "otp20/genop.tab" {
		t.Errorf("GenopTab = %q", rel.GenopTab)
	}
}
