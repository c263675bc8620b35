package inspect

import (
	"errors"
	"strings"
	"testing"

	"github.com/essex-vision/sxcv/array"
	"github.com/essex-vision/sxcv/fixture"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name  string
		im    *array.Image
		title string
		want  string
	}{
		{
			"arrowhead",
			fixture.Arrowhead(),
			"This image",
			"This image is monochrome of size 10 rows x 9 columns with uint8 pixels.",
		},
		{
			"default title",
			array.New(4, 6, array.Uint8),
			"",
			"Image is monochrome of size 4 rows x 6 columns with uint8 pixels.",
		},
		{
			"multi-channel",
			array.NewMultiChannel(5, 7, 3, array.Uint8),
			"Frame",
			"Frame has 3 channels of size 5 rows x 7 columns with uint8 pixels.",
		},
		{
			"signed mask",
			mustMask(t, "laplacian"),
			"Mask",
			"Mask is monochrome of size 3 rows x 3 columns with int pixels.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Describe(tt.im, tt.title)
			if err != nil {
				t.Fatalf("Describe failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Describe:\n got %q\nwant %q", got, tt.want)
			}
		})
	}
}

func TestDescribeInvalidShape(t *testing.T) {
	tests := []struct {
		name  string
		shape []int
	}{
		{"rank 1", []int{9}},
		{"rank 4", []int{2, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			im := &array.Image{Shape: tt.shape, Dtype: array.Uint8}
			_, err := Describe(im, "Broken")
			if !errors.Is(err, array.ErrInvalidShape) {
				t.Fatalf("error: got %v, want array.ErrInvalidShape", err)
			}
			// The message carries the observed rank.
			if !strings.Contains(err.Error(), "-dimensional") {
				t.Errorf("error message %q should name the rank", err)
			}
		})
	}
}

func mustMask(t *testing.T, name string) *array.Image {
	t.Helper()
	m, err := fixture.CreateMask(name)
	if err != nil {
		t.Fatalf("CreateMask(%q) failed: %v", name, err)
	}
	return m
}
