package render

import (
	"bufio"
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"sync"

	"github.com/klauspost/compress/zstd"

	"perspectiveview/internal/perspective"
)

// journalCommand is the on-disk form of a perspective.Command.
type journalCommand struct {
	X      int          `json:"x"`
	Y      int          `json:"y"`
	Face   string       `json:"face"`
	Points [][2]float64 `json:"points"`
	Color  [4]uint8     `json:"color"`
}

type journalFrame struct {
	Frame    int              `json:"frame"`
	Commands []journalCommand `json:"commands"`
}

// Frame is one recorded frame read back from a journal.
type Frame struct {
	Index    int
	Commands []perspective.Command
}

// Journal appends frames as zstd-compressed JSON lines.
type Journal struct {
	mu     sync.Mutex
	f      *os.File
	enc    *zstd.Encoder
	w      *bufio.Writer
	frames int
}

// CreateJournal creates (or truncates) the journal at path.
func CreateJournal(path string) (*Journal, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return &Journal{f: f, enc: enc, w: bufio.NewWriterSize(enc, 64*1024)}, nil
}

// WriteFrame appends one frame of commands.
func (j *Journal) WriteFrame(cmds []perspective.Command) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.w == nil {
		return fmt.Errorf("journal closed")
	}
	rec := journalFrame{Frame: j.frames, Commands: make([]journalCommand, len(cmds))}
	for i, cmd := range cmds {
		pts := make([][2]float64, len(cmd.Points))
		for k, p := range cmd.Points {
			pts[k] = [2]float64{p.X, p.Y}
		}
		rec.Commands[i] = journalCommand{
			X:      cmd.Cell.X,
			Y:      cmd.Cell.Y,
			Face:   cmd.Face.String(),
			Points: pts,
			Color:  [4]uint8{cmd.Color.R, cmd.Color.G, cmd.Color.B, cmd.Color.A},
		}
	}
	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	if _, err := j.w.Write(b); err != nil {
		return err
	}
	if err := j.w.WriteByte('\n'); err != nil {
		return err
	}
	j.frames++
	return nil
}

// Frames returns the number of frames written so far.
func (j *Journal) Frames() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.frames
}

// Close flushes and closes the journal. Closing twice is a no-op.
func (j *Journal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.w == nil {
		return nil
	}
	var firstErr error
	if err := j.w.Flush(); err != nil {
		firstErr = err
	}
	if err := j.enc.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	if err := j.f.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	j.w, j.enc, j.f = nil, nil, nil
	return firstErr
}

// ReadJournal decodes every frame stored at path.
func ReadJournal(path string) ([]Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	var frames []Frame
	for sc.Scan() {
		var rec journalFrame
		if err := json.Unmarshal(sc.Bytes(), &rec); err != nil {
			return nil, fmt.Errorf("%s frame %d: %w", path, len(frames), err)
		}
		frame := Frame{Index: rec.Frame, Commands: make([]perspective.Command, len(rec.Commands))}
		for i, jc := range rec.Commands {
			face, ok := perspective.ParseFace(jc.Face)
			if !ok {
				return nil, fmt.Errorf("%s frame %d: unknown face %q", path, rec.Frame, jc.Face)
			}
			pts := make([]perspective.Point, len(jc.Points))
			for k, p := range jc.Points {
				pts[k] = perspective.Point{X: p[0], Y: p[1]}
			}
			frame.Commands[i] = perspective.Command{
				Cell:   perspective.Cell{X: jc.X, Y: jc.Y},
				Face:   face,
				Points: pts,
				Color:  color.RGBA{R: jc.Color[0], G: jc.Color[1], B: jc.Color[2], A: jc.Color[3]},
			}
		}
		frames = append(frames, frame)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return frames, nil
}
