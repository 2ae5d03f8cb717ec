package track

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	input := `name: Test Ring
# comment line
XA

AAB
XXX
BA
`
	tr, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if tr.Name != "Test Ring" {
		t.Errorf("Name = %q, want %q", tr.Name, "Test Ring")
	}
	if len(tr.Segments) != 3 {
		t.Fatalf("got %d segments, want 3", len(tr.Segments))
	}

	tests := []struct {
		laneCount int
		startLane int
		types     string
	}{
		{1, 0, "A"},
		{3, 1, "AAB"},
		{2, 1, "BA"},
	}
	for i, tt := range tests {
		seg := tr.Segments[i]
		if seg.LaneCount != tt.laneCount {
			t.Errorf("segment %d LaneCount = %d, want %d", i, seg.LaneCount, tt.laneCount)
		}
		if seg.StartLaneIndex != tt.startLane {
			t.Errorf("segment %d StartLaneIndex = %d, want %d", i, seg.StartLaneIndex, tt.startLane)
		}
		if got := strings.Join(seg.RoadTypes, ""); got != tt.types {
			t.Errorf("segment %d RoadTypes = %q, want %q", i, got, tt.types)
		}
	}
}

func TestParseStartLaneDefaultsToRightmost(t *testing.T) {
	tr, err := Parse(strings.NewReader("AXXX\n"))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if tr.Segments[0].StartLaneIndex != 0 {
		t.Errorf("StartLaneIndex = %d, want 0", tr.Segments[0].StartLaneIndex)
	}

	tr, err = Parse(strings.NewReader("AXBC\n"))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if tr.Segments[0].StartLaneIndex != 2 {
		t.Errorf("StartLaneIndex = %d, want 2", tr.Segments[0].StartLaneIndex)
	}
}

func TestParseEmpty(t *testing.T) {
	_, err := Parse(strings.NewReader("# nothing\nXXX\n"))
	if !errors.Is(err, ErrEmptyTrack) {
		t.Errorf("Parse() error = %v, want ErrEmptyTrack", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "beginner.track")
	if err := os.WriteFile(path, []byte("XA\nAA\n"), 0644); err != nil {
		t.Fatal(err)
	}
	tr, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got := tr.Length(); got != 2*SegmentLength {
		t.Errorf("Length() = %v, want %v", got, 2*SegmentLength)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.track")); err == nil {
		t.Error("Load() of a missing file should fail")
	}
}

func TestSegmentAtWraps(t *testing.T) {
	tr := Default()
	n := len(tr.Segments)
	if n == 0 {
		t.Fatal("default track is empty")
	}

	first := tr.SegmentAt(0)
	again := tr.SegmentAt(tr.Length())
	if first.LaneCount != again.LaneCount || first.StartLaneIndex != again.StartLaneIndex {
		t.Error("SegmentAt(Length) should wrap to the first segment")
	}

	last := tr.SegmentAt(-1)
	if last.LaneCount != tr.Segments[n-1].LaneCount {
		t.Error("SegmentAt(-1) should wrap to the last segment")
	}
}

func TestSegmentBoundsContainRacingLine(t *testing.T) {
	for i, seg := range Default().Segments {
		left, right := seg.Bounds()
		if left >= 0 || right <= 0 {
			t.Errorf("segment %d bounds [%v, %v] do not contain the racing line", i, left, right)
		}
		if right-left != float64(seg.LaneCount)*LaneWidth {
			t.Errorf("segment %d width = %v, want %v", i, right-left, float64(seg.LaneCount)*LaneWidth)
		}
	}
}
