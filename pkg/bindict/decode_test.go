package bindict

import "testing"

func TestReadByte(t *testing.T) {
	img := NewImage([]byte{0x00, 0x2a, 0xff})
	if got := img.readByte(1); got != 0x2a {
		t.Fatalf("readByte(1) = %d, want %d", got, 0x2a)
	}
	if got := img.readByte(2); got != 0xff {
		t.Fatalf("readByte(2) = %d, want %d", got, 0xff)
	}
}

func TestReadUint24(t *testing.T) {
	img := NewImage([]byte{0x00, 0x01, 0x02, 0x03})
	if got := img.readUint24(1); got != 0x010203 {
		t.Fatalf("readUint24(1) = %#x, want %#x", got, 0x010203)
	}
}

func TestReadUintPanicsOutOfBounds(t *testing.T) {
	img := NewImage([]byte{0x00, 0x01})
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on out-of-range read")
		}
		if _, ok := r.(*boundsError); !ok {
			t.Fatalf("expected *boundsError, got %T", r)
		}
	}()
	img.readUint24(0)
}

func TestReadUintPanicsOnNegativeOffset(t *testing.T) {
	img := NewImage([]byte{0x00, 0x01, 0x02})
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on negative offset")
		}
	}()
	img.readByte(-1)
}
