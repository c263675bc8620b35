package fixture

import (
	"errors"
	"strings"
	"testing"

	"github.com/essex-vision/sxcv/array"
)

func TestArrowhead(t *testing.T) {
	im := Arrowhead()

	if im.Rows() != 10 || im.Cols() != 9 {
		t.Fatalf("shape: got %dx%d, want 10x9", im.Rows(), im.Cols())
	}
	if im.Dtype != array.Uint8 {
		t.Errorf("Dtype: got %s, want uint8", im.Dtype)
	}

	// Spot checks from the lecture notes.
	if got := im.At(0, 2); got != 0 {
		t.Errorf("At(0,2): got %d, want 0", got)
	}
	if got := im.At(6, 3); got != 0 {
		t.Errorf("At(6,3): got %d, want 0", got)
	}
	if got := im.At(3, 6); got != 255 {
		t.Errorf("At(3,6): got %d, want 255", got)
	}
}

func TestTestImage(t *testing.T) {
	im := TestImage()

	if im.Rows() != 13 || im.Cols() != 10 {
		t.Fatalf("shape: got %dx%d, want 13x10", im.Rows(), im.Cols())
	}
	for i, v := range im.Pix {
		if v < 10 || v > 15 {
			t.Fatalf("Pix[%d] = %d outside the documented range 10..15", i, v)
		}
	}
}

func TestCreateMask(t *testing.T) {
	tests := []struct {
		name       string
		size       int
		centerWant int
	}{
		{"blur3", 3, 1},
		{"blur5", 5, 1},
		{"laplacian", 3, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := CreateMask(tt.name)
			if err != nil {
				t.Fatalf("CreateMask failed: %v", err)
			}
			if m.Rows() != tt.size || m.Cols() != tt.size {
				t.Fatalf("shape: got %dx%d, want %dx%d", m.Rows(), m.Cols(), tt.size, tt.size)
			}
			if m.Dtype != array.Int {
				t.Errorf("Dtype: got %s, want int", m.Dtype)
			}

			mid := tt.size / 2
			for y := 0; y < tt.size; y++ {
				for x := 0; x < tt.size; x++ {
					want := 1
					if y == mid && x == mid {
						want = tt.centerWant
					}
					if got := m.At(y, x); got != want {
						t.Errorf("At(%d,%d): got %d, want %d", y, x, got, want)
					}
				}
			}
		})
	}
}

func TestCreateMaskUnsupportedName(t *testing.T) {
	_, err := CreateMask("whatsit")
	if !errors.Is(err, ErrUnsupportedName) {
		t.Fatalf("error: got %v, want ErrUnsupportedName", err)
	}
	if !strings.Contains(err.Error(), `"whatsit"`) {
		t.Errorf("error message %q should carry the requested name", err)
	}
}
