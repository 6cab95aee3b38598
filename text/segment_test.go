package text

import "testing"

func TestSegmentTextLatin(t *testing.T) {
	segs := segmentText("hello world")
	if len(segs) != 1 {
		t.Fatalf("got %d segments, want 1", len(segs))
	}
	if segs[0].rtl {
		t.Error("latin text classified right-to-left")
	}
	if segs[0].text != "hello world" {
		t.Errorf("segment text = %q", segs[0].text)
	}
}

func TestSegmentTextHebrew(t *testing.T) {
	segs := segmentText("שלום")
	if len(segs) != 1 {
		t.Fatalf("got %d segments, want 1", len(segs))
	}
	if !segs[0].rtl {
		t.Error("hebrew text classified left-to-right")
	}
}

func TestSegmentTextMixed(t *testing.T) {
	segs := segmentText("abc שלום xyz")
	if len(segs) < 3 {
		t.Fatalf("got %d segments, want at least 3", len(segs))
	}
	var sawRTL, sawLTR bool
	for _, s := range segs {
		if s.rtl {
			sawRTL = true
		} else {
			sawLTR = true
		}
	}
	if !sawRTL || !sawLTR {
		t.Errorf("segments %+v missing a direction", segs)
	}
}

func TestSegmentTextEmpty(t *testing.T) {
	if segs := segmentText(""); len(segs) != 0 {
		t.Errorf("segmentText(\"\") = %+v, want none", segs)
	}
}
