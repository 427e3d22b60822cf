package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"classic-snake/game/types"
)

// Renderer is the desktop window platform. Draw calls go to an off-screen
// texture that keeps its contents between frames, so the game only needs to
// repaint what changed; Pace presents the texture and waits for the next
// frame.
type Renderer struct {
	screenWidth  int32
	screenHeight int32
	target       rl.RenderTexture2D
	drawing      bool
	targetFPS    int
}

func NewRenderer(width, height int, title string) *Renderer {
	rl.InitWindow(int32(width), int32(height), title)
	// Esc is not a quit key in the classic game; only closing the window is.
	rl.SetExitKey(0)

	r := &Renderer{
		screenWidth:  int32(width),
		screenHeight: int32(height),
	}
	r.target = rl.LoadRenderTexture(r.screenWidth, r.screenHeight)
	return r
}

func (r *Renderer) begin() {
	if !r.drawing {
		rl.BeginTextureMode(r.target)
		r.drawing = true
	}
}

func (r *Renderer) end() {
	if r.drawing {
		rl.EndTextureMode()
		r.drawing = false
	}
}

func (r *Renderer) DrawRect(topLeft types.Cell, size types.Size, fill, border types.Color) {
	r.begin()
	x, y := int32(topLeft.X), int32(topLeft.Y)
	w, h := int32(size.W), int32(size.H)
	rl.DrawRectangle(x, y, w, h, toRaylib(fill))
	if border != fill {
		rl.DrawRectangleLines(x, y, w, h, toRaylib(border))
	}
}

func (r *Renderer) Clear(color types.Color) {
	r.begin()
	rl.ClearBackground(toRaylib(color))
}

// PollEvents drains every key pressed since the previous frame.
func (r *Renderer) PollEvents() []types.Event {
	var events []types.Event
	if rl.WindowShouldClose() {
		events = append(events, types.QuitEvent())
	}
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if k, ok := raylibKey(key); ok {
			events = append(events, types.KeyEvent(k))
		}
	}
	return events
}

// Pace presents the frame. EndDrawing blocks until the target frame time
// has elapsed.
func (r *Renderer) Pace(ticksPerSecond int) {
	r.end()
	if ticksPerSecond != r.targetFPS {
		rl.SetTargetFPS(int32(ticksPerSecond))
		r.targetFPS = ticksPerSecond
	}

	rl.BeginDrawing()
	// Render textures are stored upside down.
	src := rl.NewRectangle(0, 0, float32(r.screenWidth), -float32(r.screenHeight))
	rl.DrawTextureRec(r.target.Texture, src, rl.NewVector2(0, 0), rl.White)
	rl.EndDrawing()
}

func (r *Renderer) Close() error {
	r.end()
	rl.UnloadRenderTexture(r.target)
	rl.CloseWindow()
	return nil
}

func toRaylib(c types.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}

func raylibKey(key int32) (types.Key, bool) {
	switch key {
	case rl.KeyUp:
		return types.KeyUp, true
	case rl.KeyDown:
		return types.KeyDown, true
	case rl.KeyLeft:
		return types.KeyLeft, true
	case rl.KeyRight:
		return types.KeyRight, true
	}
	return 0, false
}
