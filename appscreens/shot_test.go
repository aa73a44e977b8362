package appscreens

import (
	"errors"
	"testing"
)

func TestParseShot(t *testing.T) {
	tests := []struct {
		in      string
		want    Shot
		wantErr bool
	}{
		{"01_Welcome", Welcome, false},
		{"welcome", Welcome, false},
		{" Dashboard ", Dashboard, false},
		{"03_growth", Growth, false},
		{"STATISTICS", Statistics, false},
		{"nightmode", NightMode, false},
		{"06_Sharing", Sharing, false},
		{"settings", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseShot(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownShot) {
					t.Errorf("err = %v, want ErrUnknownShot", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseShot: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestShotNames(t *testing.T) {
	if got := Growth.Filename(); got != "03_Growth.png" {
		t.Errorf("Filename = %q", got)
	}
	if got := Shot(9).String(); got != "Shot(9)" {
		t.Errorf("String = %q", got)
	}
	for _, s := range AllShots {
		if s.draw() == nil {
			t.Errorf("%s has no drawing routine", s)
		}
	}
}

func TestShotText(t *testing.T) {
	b, err := NightMode.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	var s Shot
	if err := s.UnmarshalText(b); err != nil {
		t.Fatal(err)
	}
	if s != NightMode {
		t.Errorf("round trip = %v", s)
	}
	if _, err := Shot(-1).MarshalText(); !errors.Is(err, ErrUnknownShot) {
		t.Errorf("err = %v, want ErrUnknownShot", err)
	}
}
