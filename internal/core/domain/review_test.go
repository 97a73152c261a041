package domain

import (
	"strings"
	"testing"
)

func TestNewReview_Valid(t *testing.T) {
	for rating := 1; rating <= 5; rating++ {
		r, err := NewReview("great stay", rating, "place-1", "user-1")
		if err != nil {
			t.Fatalf("rating %d should be valid, got %v", rating, err)
		}
		if r.Rating != rating {
			t.Fatalf("rating not stored")
		}
	}
}

func TestNewReview_Invalid(t *testing.T) {
	cases := []struct {
		name           string
		text           string
		rating         int
		place, user    string
	}{
		{"empty text", "", 3, "p", "u"},
		{"blank text", "   ", 3, "p", "u"},
		{"rating below range", "ok", 0, "p", "u"},
		{"rating above range", "ok", 6, "p", "u"},
		{"missing place", "ok", 3, "", "u"},
		{"missing user", "ok", 3, "p", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewReview(tc.text, tc.rating, tc.place, tc.user); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestReview_Apply(t *testing.T) {
	r, _ := NewReview("fine", 3, "p", "u")

	rating := 5
	text := "actually great"
	if err := r.Apply(ReviewUpdate{Text: &text, Rating: &rating}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if r.Text != "actually great" || r.Rating != 5 {
		t.Fatalf("update not applied")
	}

	bad := 9
	if err := r.Apply(ReviewUpdate{Rating: &bad}); err == nil {
		t.Fatalf("expected validation error")
	}
	if r.Rating != 5 {
		t.Fatalf("failed update must not mutate the review")
	}
}

func TestNewAmenity_TrimsName(t *testing.T) {
	a, err := NewAmenity("  Wi-Fi  ")
	if err != nil {
		t.Fatalf("NewAmenity: %v", err)
	}
	if a.Name != "Wi-Fi" {
		t.Fatalf("expected trimmed name, got %q", a.Name)
	}
}

func TestNewAmenity_Invalid(t *testing.T) {
	if _, err := NewAmenity("   "); err == nil {
		t.Fatalf("expected validation error for blank name")
	}
	if _, err := NewAmenity(strings.Repeat("x", 51)); err == nil {
		t.Fatalf("expected validation error for long name")
	}
}

func TestNewAmenity_NameLengthCountsCharacters(t *testing.T) {
	// 50 two-byte runes: within the limit even though len() would be 100.
	if _, err := NewAmenity(strings.Repeat("ü", 50)); err != nil {
		t.Fatalf("50-character multibyte name rejected: %v", err)
	}
	if _, err := NewAmenity(strings.Repeat("ü", 51)); err == nil {
		t.Fatalf("expected validation error for 51-character name")
	}
}
