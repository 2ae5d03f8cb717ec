package track

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
)

// SegmentLength is the length of one road segment in world units
const SegmentLength = 600.0

// LaneWidth is the width of one lane in world units
const LaneWidth = 80.0

// Segment is one stretch of road with its lanes
type Segment struct {
	LaneCount      int
	RoadTypes      []string // Road type for each lane (left to right)
	StartLaneIndex int      // Lane the racing line runs through
}

// Track is an ordered list of road segments forming one lap
type Track struct {
	Name     string
	Segments []Segment
}

// ErrEmptyTrack is returned when a track description has no drivable segment
var ErrEmptyTrack = errors.New("track has no segments")

// Load reads a track description file
func Load(path string) (*Track, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open track: %w", err)
	}
	defer file.Close()

	t, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse track %s: %w", path, err)
	}
	return t, nil
}

// Parse reads a track description.
// Each non-empty line is one segment, each character one lane position.
// 'X' marks a position without a lane, any other letter is the lane's road type.
// Lines starting with '#' are comments, "name: ..." sets the track name.
func Parse(r io.Reader) (*Track, error) {
	t := &Track{}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if name, ok := strings.CutPrefix(line, "name:"); ok {
			t.Name = strings.TrimSpace(name)
			continue
		}

		roadTypes := make([]string, 0, len(line))
		startLaneIndex := -1
		for pos, char := range line {
			roadType := string(char)
			if roadType == "X" {
				continue
			}
			roadTypes = append(roadTypes, roadType)
			// Position 1 is the racing line
			if pos == 1 {
				startLaneIndex = len(roadTypes) - 1
			}
		}

		laneCount := len(roadTypes)
		if laneCount == 0 {
			continue
		}
		if startLaneIndex == -1 {
			startLaneIndex = laneCount - 1
		}

		t.Segments = append(t.Segments, Segment{
			LaneCount:      laneCount,
			RoadTypes:      roadTypes,
			StartLaneIndex: startLaneIndex,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(t.Segments) == 0 {
		return nil, ErrEmptyTrack
	}
	return t, nil
}

// Default is the built-in track used when a track file is missing
func Default() *Track {
	t, _ := Parse(strings.NewReader(defaultTrack))
	return t
}

const defaultTrack = `name: Default
XA
XA
XA
AAA
AAB
ABA
AAAA
AAAA
ABBA
AAA
XAA
XA
`

// Length is the length of one lap in world units
func (t *Track) Length() float64 {
	return float64(len(t.Segments)) * SegmentLength
}

// SegmentAt returns the segment under distance d, wrapping around laps
func (t *Track) SegmentAt(d float64) Segment {
	if len(t.Segments) == 0 {
		return Segment{LaneCount: 1, RoadTypes: []string{"A"}}
	}
	i := int(math.Floor(d/SegmentLength)) % len(t.Segments)
	if i < 0 {
		i += len(t.Segments)
	}
	return t.Segments[i]
}

// Bounds returns the lateral road edges of a segment relative to the racing line
func (s Segment) Bounds() (left, right float64) {
	left = -float64(s.StartLaneIndex)*LaneWidth - LaneWidth/2
	right = left + float64(s.LaneCount)*LaneWidth
	return left, right
}
