package dns

import "testing"

func TestGetBufferSizeClasses(t *testing.T) {
	cases := []struct {
		hint    int
		wantCap int
	}{
		{1, SmallBufferSize},
		{SmallBufferSize, SmallBufferSize},
		{SmallBufferSize + 1, MediumBufferSize},
		{MediumBufferSize, MediumBufferSize},
		{MediumBufferSize + 1, LargeBufferSize},
		{LargeBufferSize, LargeBufferSize},
	}
	for _, c := range cases {
		buf := GetBuffer(c.hint)
		if len(*buf) != 0 {
			t.Fatalf("GetBuffer(%d): want zero length, got %d", c.hint, len(*buf))
		}
		if cap(*buf) < c.wantCap {
			t.Fatalf("GetBuffer(%d): want cap >= %d, got %d", c.hint, c.wantCap, cap(*buf))
		}
		PutBuffer(buf)
	}
}

func TestBuildCompressedReleasesScratchBuffer(t *testing.T) {
	p := &Packet{}
	b1, err := BuildCompressed(p)
	if err != nil {
		t.Fatalf("BuildCompressed: %v", err)
	}
	b2, err := BuildCompressed(p)
	if err != nil {
		t.Fatalf("BuildCompressed: %v", err)
	}
	// Each call's returned bytes are independent copies, not aliases
	// into a pooled buffer a later call could mutate.
	b1[0] = 0xFF
	if b2[0] == 0xFF {
		t.Fatalf("BuildCompressed: second result aliases the first's backing array")
	}
}
