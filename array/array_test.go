package array

import "testing"

func TestFromMatrix(t *testing.T) {
	im := FromMatrix([][]int{
		{1, 2, 3},
		{4, 5, 6},
	}, Uint8)

	if im.Rank() != 2 {
		t.Errorf("Rank: got %d, want 2", im.Rank())
	}
	if im.Rows() != 2 || im.Cols() != 3 {
		t.Errorf("shape: got %dx%d, want 2x3", im.Rows(), im.Cols())
	}
	if im.Channels() != 0 {
		t.Errorf("Channels: got %d, want 0", im.Channels())
	}
	if got := im.At(1, 2); got != 6 {
		t.Errorf("At(1,2): got %d, want 6", got)
	}
	if got := im.Dtype; got != Uint8 {
		t.Errorf("Dtype: got %s, want uint8", got)
	}
}

func TestMultiChannelIndexing(t *testing.T) {
	im := NewMultiChannel(2, 2, 3, Uint8)
	im.SetChan(1, 0, 2, 42)

	if im.Rank() != 3 {
		t.Errorf("Rank: got %d, want 3", im.Rank())
	}
	if got := im.AtChan(1, 0, 2); got != 42 {
		t.Errorf("AtChan(1,0,2): got %d, want 42", got)
	}
	// The sample must land at (row*cols + col)*channels + channel.
	if got := im.Pix[(1*2+0)*3+2]; got != 42 {
		t.Errorf("Pix layout: got %d at expected offset, want 42", got)
	}
}

func TestSignedSamples(t *testing.T) {
	im := FromMatrix([][]int{{-1, 1}}, Int)
	if got := im.At(0, 0); got != -1 {
		t.Errorf("At(0,0): got %d, want -1", got)
	}
}
