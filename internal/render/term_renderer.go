package render

import (
	"bufio"
	"context"
	"fmt"
	"image"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/rook-computer/clockface/internal/logger"
	"github.com/rook-computer/clockface/internal/state"
)

const asciiRamp = " .:-=+*#%@"

// TermRenderer draws the canvas into a terminal. On color terminals each
// character cell shows two pixels using the upper half block with truecolor
// foreground and background; otherwise luminance is mapped to ASCII.
type TermRenderer struct {
	Out    io.Writer
	Logger logger.Logger
	// Lookup reads environment variables; defaults to os.Getenv.
	Lookup func(string) string

	canvas  *Canvas
	current Screen
	fd      int
	isTTY   bool
}

func NewTermRenderer(out *os.File, width, height int) *TermRenderer {
	return &TermRenderer{
		Out:    out,
		Logger: logger.NoopLogger{},
		canvas: NewCanvas(width, height),
		fd:     int(out.Fd()),
		isTTY:  term.IsTerminal(int(out.Fd())),
	}
}

func (r *TermRenderer) Start(ctx context.Context) error {
	if r.isTTY {
		// Hide cursor and clear.
		_, _ = io.WriteString(r.Out, "\x1b[?25l\x1b[2J")
	} else {
		r.Logger.Infof("term", "output is not a terminal, frames are appended")
	}
	return nil
}

func (r *TermRenderer) Stop() error {
	if r.isTTY {
		_, _ = io.WriteString(r.Out, "\x1b[0m\x1b[?25h\n")
	}
	return nil
}

func (r *TermRenderer) SetScreen(screen Screen) { r.current = screen }

func (r *TermRenderer) Capabilities() Capabilities {
	lookup := r.Lookup
	if lookup == nil {
		lookup = os.Getenv
	}
	return Capabilities{Color: terminalHasColor(lookup)}
}

func terminalHasColor(lookup func(string) string) bool {
	if lookup("NO_COLOR") != "" {
		return false
	}
	switch strings.ToLower(lookup("COLORTERM")) {
	case "truecolor", "24bit":
		return true
	}
	termName := lookup("TERM")
	return termName != "" && termName != "dumb" && strings.Contains(termName, "color")
}

func (r *TermRenderer) RedrawWithState(snap state.State) {
	if r.current == nil {
		return
	}
	r.current.Draw(r.canvas, snap)

	cols, rows := 0, 0
	if r.isTTY {
		if w, h, err := term.GetSize(r.fd); err == nil {
			cols, rows = w, h
		}
	}

	w := bufio.NewWriter(r.Out)
	if r.isTTY {
		_, _ = io.WriteString(w, "\x1b[H")
	}
	if r.Capabilities().Color {
		writeHalfBlocks(w, r.canvas.Image(), cols, rows)
	} else {
		writeASCII(w, r.canvas.Image(), cols, rows)
	}
	if err := w.Flush(); err != nil {
		r.Logger.Errorf("term", "write frame: %v", err)
	}
}

// cellGrid picks how many character cells the canvas maps to, keeping the
// aspect ratio. A cell is about twice as tall as it is wide, which also
// makes each half of a half-block cell square.
func cellGrid(bounds image.Rectangle, cols, rows int) (int, int) {
	width, height := bounds.Dx(), bounds.Dy()
	if cols <= 0 || rows <= 0 {
		cols, rows = 72, 42
	}
	gridCols := cols
	gridRows := gridCols * height / width / 2
	if gridRows > rows-1 {
		gridRows = rows - 1
		gridCols = gridRows * 2 * width / height
	}
	if gridCols < 1 {
		gridCols = 1
	}
	if gridRows < 1 {
		gridRows = 1
	}
	return gridCols, gridRows
}

func writeHalfBlocks(w io.Writer, img *image.RGBA, cols, rows int) {
	bounds := img.Bounds()
	gridCols, gridRows := cellGrid(bounds, cols, rows)
	for row := 0; row < gridRows; row++ {
		for col := 0; col < gridCols; col++ {
			sx := bounds.Min.X + col*bounds.Dx()/gridCols
			top := img.RGBAAt(sx, bounds.Min.Y+(2*row)*bounds.Dy()/(2*gridRows))
			bottom := img.RGBAAt(sx, bounds.Min.Y+(2*row+1)*bounds.Dy()/(2*gridRows))
			fmt.Fprintf(w, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀", top.R, top.G, top.B, bottom.R, bottom.G, bottom.B)
		}
		_, _ = io.WriteString(w, "\x1b[0m\n")
	}
}

func writeASCII(w io.Writer, img *image.RGBA, cols, rows int) {
	bounds := img.Bounds()
	gridCols, gridRows := cellGrid(bounds, cols, rows)
	line := make([]byte, gridCols)
	for row := 0; row < gridRows; row++ {
		sy := bounds.Min.Y + row*bounds.Dy()/gridRows
		for col := 0; col < gridCols; col++ {
			pixel := img.RGBAAt(bounds.Min.X+col*bounds.Dx()/gridCols, sy)
			luma := (299*int(pixel.R) + 587*int(pixel.G) + 114*int(pixel.B)) / 1000
			line[col] = asciiRamp[luma*(len(asciiRamp)-1)/255]
		}
		_, _ = w.Write(line)
		_, _ = io.WriteString(w, "\n")
	}
}
