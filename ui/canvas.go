package ui

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"classic-snake/game/types"
)

// Canvas is an in-memory platform. It never sleeps and asks the game to
// quit after a fixed number of frames, which makes it suitable for CI runs
// and screenshots.
type Canvas struct {
	dc        *gg.Context
	maxFrames int
	frames    int
	pending   []types.Event

	snapshotPath  string
	snapshotScale int
}

// NewCanvas creates a width x height canvas. maxFrames <= 0 runs until a
// quit event is queued.
func NewCanvas(width, height, maxFrames int) *Canvas {
	return &Canvas{
		dc:        gg.NewContext(width, height),
		maxFrames: maxFrames,
	}
}

// Queue adds events to be returned by the next PollEvents.
func (c *Canvas) Queue(events ...types.Event) {
	c.pending = append(c.pending, events...)
}

// SnapshotOnClose makes Close write the final frame to path, scaled by an
// integer factor.
func (c *Canvas) SnapshotOnClose(path string, scale int) {
	c.snapshotPath = path
	c.snapshotScale = scale
}

func (c *Canvas) DrawRect(topLeft types.Cell, size types.Size, fill, border types.Color) {
	x, y := float64(topLeft.X), float64(topLeft.Y)
	w, h := float64(size.W), float64(size.H)

	c.dc.SetRGB255(int(fill.R), int(fill.G), int(fill.B))
	c.dc.DrawRectangle(x, y, w, h)
	c.dc.Fill()

	if border != fill && w > 1 && h > 1 {
		c.dc.SetRGB255(int(border.R), int(border.G), int(border.B))
		c.dc.SetLineWidth(1)
		c.dc.DrawRectangle(x+0.5, y+0.5, w-1, h-1)
		c.dc.Stroke()
	}
}

func (c *Canvas) Clear(color types.Color) {
	c.dc.SetRGB255(int(color.R), int(color.G), int(color.B))
	c.dc.Clear()
}

func (c *Canvas) PollEvents() []types.Event {
	if c.maxFrames > 0 && c.frames >= c.maxFrames {
		return []types.Event{types.QuitEvent()}
	}
	events := c.pending
	c.pending = nil
	return events
}

// Pace counts the frame; there is no clock to wait on.
func (c *Canvas) Pace(int) {
	c.frames++
}

func (c *Canvas) Frames() int { return c.frames }

func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// Snapshot writes the current frame to path. The format follows the file
// extension. Scale factors above 1 enlarge the image without smoothing so
// cells stay crisp.
func (c *Canvas) Snapshot(path string, scale int) error {
	img := c.dc.Image()
	if scale > 1 {
		b := img.Bounds()
		img = imaging.Resize(img, b.Dx()*scale, b.Dy()*scale, imaging.NearestNeighbor)
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("save snapshot %s: %w", path, err)
	}
	return nil
}

func (c *Canvas) Close() error {
	if c.snapshotPath == "" {
		return nil
	}
	return c.Snapshot(c.snapshotPath, c.snapshotScale)
}
