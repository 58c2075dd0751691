package render

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"plating-ca/internal/core"
)

const cursorHome = "\x1b[H"

// Text writes grids as one line of characters per row.
type Text struct {
	On  byte
	Off byte

	out  *bufio.Writer
	home bool
	line []byte
}

// NewText returns a renderer writing to out. When out is a terminal every
// frame starts by homing the cursor so frames overwrite each other.
func NewText(out io.Writer) *Text {
	t := &Text{On: 'X', Off: ' ', out: bufio.NewWriter(out)}
	if f, ok := out.(*os.File); ok {
		fd := f.Fd()
		t.home = isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
	return t
}

// Render writes one frame. Pending output is flushed before the frame is
// written and the frame is flushed as a whole afterwards.
func (t *Text) Render(size core.Size, cells []uint8) error {
	if len(cells) != size.W*size.H {
		return fmt.Errorf("render %dx%d grid: got %d cells", size.W, size.H, len(cells))
	}
	if err := t.out.Flush(); err != nil {
		return fmt.Errorf("flush before frame: %w", err)
	}
	if t.home {
		if _, err := t.out.WriteString(cursorHome); err != nil {
			return fmt.Errorf("write frame: %w", err)
		}
	}
	if cap(t.line) < size.W+1 {
		t.line = make([]byte, size.W+1)
	}
	line := t.line[:size.W+1]
	for y := 0; y < size.H; y++ {
		row := cells[y*size.W : (y+1)*size.W]
		for x, c := range row {
			if c != 0 {
				line[x] = t.On
			} else {
				line[x] = t.Off
			}
		}
		line[size.W] = '\n'
		if _, err := t.out.Write(line); err != nil {
			return fmt.Errorf("write frame: %w", err)
		}
	}
	if err := t.out.Flush(); err != nil {
		return fmt.Errorf("flush frame: %w", err)
	}
	return nil
}
