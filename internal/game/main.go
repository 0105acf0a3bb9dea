package game

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"cubes/internal/sim"
)

// RunDesktop owns the window and the frame loop: one simulation tick per
// frame, then a draw of the resulting snapshot. Space pauses, C rerolls the
// colors, Escape quits.
func RunDesktop() {
	runtime.LockOSThread()

	window, err := initWindow()
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	if err := InitAudio(); err != nil {
		fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
	}

	// Seed from environment or clock.
	seed := uint64(time.Now().UnixNano())
	if s := os.Getenv("CUBES_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			seed = v
		}
	}

	cfg := sim.DefaultConfig()
	cfg.Seed = seed
	world, err := sim.New(cfg)
	if err != nil {
		panic(fmt.Errorf("sim init: %w", err))
	}

	// GL state.
	gl.Enable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.ClearColor(0.04, 0.045, 0.07, 1.0)

	rend, err := NewRenderer()
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()

	input := NewInput()
	var snap []sim.RenderEntity
	frames := 0

	for !window.ShouldClose() {
		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}
		if input.JustPressed(window, glfw.KeySpace) {
			world.TogglePause()
		}
		if input.JustPressed(window, glfw.KeyC) {
			world.ResetColorsToRandom()
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		st := world.Step()
		if st.Splits > 0 {
			PlaySound(SoundSplit)
		}
		if st.WallBounces > 0 {
			PlaySound(SoundBounce)
		}

		snap = world.Snapshot(snap[:0])
		rend.BeginFrame(fbW, fbH, glfw.GetTime())
		rend.DrawCubes(snap)
		window.SwapBuffers()

		frames++
		if frames%30 == 0 {
			window.SetTitle(fmt.Sprintf("%s - %d cubes", WindowTitle, world.Count()))
		}
	}
}
