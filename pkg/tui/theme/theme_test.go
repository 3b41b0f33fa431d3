package theme

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestRatingColorEnds(t *testing.T) {
	th := For(true)
	low, ok := colorful.MakeColor(th.RatingColor(0, 5))
	if !ok {
		t.Fatalf("low color not convertible")
	}
	if low.Hex() != "#c0392b" {
		t.Fatalf("low = %s", low.Hex())
	}
	high, _ := colorful.MakeColor(th.RatingColor(9, 5))
	if high.Hex() != "#f1c40f" {
		t.Fatalf("high rating should clamp, got %s", high.Hex())
	}
}

func TestLightThemeDiffers(t *testing.T) {
	dark, _ := colorful.MakeColor(For(true).RatingColor(5, 5))
	light, _ := colorful.MakeColor(For(false).RatingColor(5, 5))
	if dark.Hex() == light.Hex() {
		t.Fatalf("expected different palettes")
	}
}
