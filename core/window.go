package core

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	runtime.LockOSThread()
}

type Window struct {
	Handle *glfw.Window
	Width  int
	Height int
	Title  string
}

type WindowConfig struct {
	Width      int
	Height     int
	Title      string
	Resizable  bool
	VSync      bool
	Fullscreen bool
}

func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Width:      1280,
		Height:     720,
		Title:      "Scene Viewer",
		Resizable:  true,
		VSync:      true,
		Fullscreen: false,
	}
}

func NewWindow(config WindowConfig) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, boolToInt(config.Resizable))

	monitor := (*glfw.Monitor)(nil)
	if config.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}

	handle, err := glfw.CreateWindow(config.Width, config.Height, config.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	handle.MakeContextCurrent()
	if config.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	window := &Window{
		Handle: handle,
		Width:  config.Width,
		Height: config.Height,
		Title:  config.Title,
	}

	handle.SetSizeCallback(func(w *glfw.Window, width, height int) {
		window.Width = width
		window.Height = height
	})

	return window, nil
}

func (w *Window) ShouldClose() bool {
	return w.Handle.ShouldClose()
}

func (w *Window) RequestClose() {
	w.Handle.SetShouldClose(true)
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) SwapBuffers() {
	w.Handle.SwapBuffers()
}

func (w *Window) GetFramebufferSize() (int, int) {
	return w.Handle.GetFramebufferSize()
}

func (w *Window) Destroy() {
	w.Handle.Destroy()
	glfw.Terminate()
}

func (w *Window) SetTitle(title string) {
	w.Handle.SetTitle(title)
	w.Title = title
}

func (w *Window) IsMouseButtonPressed(button int) bool {
	return w.Handle.GetMouseButton(glfw.MouseButton(button)) == glfw.Press
}

func (w *Window) GetCursorPos() (float64, float64) {
	return w.Handle.GetCursorPos()
}

// KeyCallback receives logical key names ("w", "up", "pageup", ...).
// Keys without a logical name are dropped before the callback fires.
type KeyCallback func(name string, pressed bool)

func (w *Window) SetKeyCallback(cb KeyCallback) {
	w.Handle.SetKeyCallback(func(win *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Repeat {
			return
		}
		name := keyName(key)
		if name == "" {
			return
		}
		cb(name, action == glfw.Press)
	})
}

// ResizeCallback fires with the new framebuffer size in pixels.
type ResizeCallback func(width, height int)

func (w *Window) SetResizeCallback(cb ResizeCallback) {
	w.Handle.SetFramebufferSizeCallback(func(win *glfw.Window, width, height int) {
		cb(width, height)
	})
}

// ScrollCallback is the type for scroll event handlers
type ScrollCallback func(xoff, yoff float64)

func (w *Window) SetScrollCallback(cb ScrollCallback) {
	w.Handle.SetScrollCallback(func(win *glfw.Window, xoff, yoff float64) {
		cb(xoff, yoff)
	})
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

const (
	MouseButtonLeft  = int(glfw.MouseButtonLeft)
	MouseButtonRight = int(glfw.MouseButtonRight)
)

func keyName(key glfw.Key) string {
	if name, ok := keyNames[key]; ok {
		return name
	}
	return ""
}

var keyNames = map[glfw.Key]string{
	glfw.KeyA: "a",
	glfw.KeyB: "b",
	glfw.KeyC: "c",
	glfw.KeyD: "d",
	glfw.KeyE: "e",
	glfw.KeyF: "f",
	glfw.KeyG: "g",
	glfw.KeyH: "h",
	glfw.KeyI: "i",
	glfw.KeyJ: "j",
	glfw.KeyK: "k",
	glfw.KeyL: "l",
	glfw.KeyM: "m",
	glfw.KeyN: "n",
	glfw.KeyO: "o",
	glfw.KeyP: "p",
	glfw.KeyQ: "q",
	glfw.KeyR: "r",
	glfw.KeyS: "s",
	glfw.KeyT: "t",
	glfw.KeyU: "u",
	glfw.KeyV: "v",
	glfw.KeyW: "w",
	glfw.KeyX: "x",
	glfw.KeyY: "y",
	glfw.KeyZ: "z",

	glfw.Key0: "0",
	glfw.Key1: "1",
	glfw.Key2: "2",
	glfw.Key3: "3",
	glfw.Key4: "4",
	glfw.Key5: "5",
	glfw.Key6: "6",
	glfw.Key7: "7",
	glfw.Key8: "8",
	glfw.Key9: "9",

	glfw.KeySpace:        "space",
	glfw.KeyEscape:       "escape",
	glfw.KeyEnter:        "enter",
	glfw.KeyTab:          "tab",
	glfw.KeyBackspace:    "backspace",
	glfw.KeyUp:           "up",
	glfw.KeyDown:         "down",
	glfw.KeyLeft:         "left",
	glfw.KeyRight:        "right",
	glfw.KeyPageUp:       "pageup",
	glfw.KeyPageDown:     "pagedown",
	glfw.KeyHome:         "home",
	glfw.KeyEnd:          "end",
	glfw.KeyMinus:        "minus",
	glfw.KeyEqual:        "equal",
	glfw.KeyLeftBracket:  "leftbracket",
	glfw.KeyRightBracket: "rightbracket",
	glfw.KeySemicolon:    "semicolon",
	glfw.KeyApostrophe:   "apostrophe",
	glfw.KeyComma:        "comma",
	glfw.KeyPeriod:       "period",
	glfw.KeySlash:        "slash",
	glfw.KeyBackslash:    "backslash",
	glfw.KeyGraveAccent:  "grave",

	glfw.KeyF1:  "f1",
	glfw.KeyF2:  "f2",
	glfw.KeyF3:  "f3",
	glfw.KeyF4:  "f4",
	glfw.KeyF5:  "f5",
	glfw.KeyF6:  "f6",
	glfw.KeyF7:  "f7",
	glfw.KeyF8:  "f8",
	glfw.KeyF9:  "f9",
	glfw.KeyF10: "f10",
	glfw.KeyF11: "f11",
	glfw.KeyF12: "f12",

	glfw.KeyLeftShift:    "leftshift",
	glfw.KeyRightShift:   "rightshift",
	glfw.KeyLeftControl:  "leftcontrol",
	glfw.KeyRightControl: "rightcontrol",
	glfw.KeyLeftAlt:      "leftalt",
	glfw.KeyRightAlt:     "rightalt",
}
