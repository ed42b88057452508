package main

import (
	"flag"
	"fmt"
	stdmath "math"
	"os"
	"strconv"
	"time"

	"scene-viewer/core"
	"scene-viewer/internal/config"
	"scene-viewer/math"
	"scene-viewer/renderer"
	"scene-viewer/scene"
	"scene-viewer/viewer"
)

// Marker/light color presets cycled with the C key.
var colorPresets = []core.Color{
	{R: 1.0, G: 0.95, B: 0.8, A: 1},
	{R: 1.0, G: 0.35, B: 0.25, A: 1},
	{R: 0.3, G: 0.9, B: 0.4, A: 1},
	{R: 0.35, G: 0.55, B: 1.0, A: 1},
	{R: 1.0, G: 0.45, B: 0.9, A: 1},
	{R: 0.4, G: 0.95, B: 0.95, A: 1},
	{R: 1.0, G: 0.75, B: 0.3, A: 1},
	{R: 1.0, G: 1.0, B: 1.0, A: 1},
}

func main() {
	cfgPath := flag.String("config", "viewer.yaml", "path to the YAML config file")
	modelPath := flag.String("model", "", "model to load (.gltf/.glb/.obj), overrides the config")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Printf("Config error: %v\n", err)
		os.Exit(1)
	}
	if *modelPath != "" {
		cfg.Model.Path = *modelPath
	}

	if err := run(cfg); err != nil {
		fmt.Printf("Fatal: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	fmt.Println("Starting scene viewer...")

	window, err := core.NewWindow(core.WindowConfig{
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		Title:     cfg.Window.Title,
		Resizable: true,
		VSync:     cfg.Window.VSync,
	})
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()

	eng, err := renderer.NewSceneRenderer(window)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	defer eng.Destroy()

	// ── Scene ─────────────────────────────────────────────────────────────
	s := scene.NewScene()
	s.Ambient = core.Color{R: 0.15, G: 0.15, B: 0.18, A: 1}
	s.SkyColor = core.Color{R: 0.08, G: 0.09, B: 0.14, A: 1}

	fovRad := cfg.Camera.FOV * stdmath.Pi / 180
	cam := scene.NewCamera(fovRad,
		float32(cfg.Window.Width)/float32(cfg.Window.Height),
		cfg.Camera.Near, cfg.Camera.Far)
	cam.SetPosition(math.NewVec3(0, 4, 14))
	cam.SetTarget(math.NewVec3(0, 2, 0))
	s.SetCamera(cam)

	gridNode := buildPlaceholderScene(s)

	sun := &scene.Light{
		Type:      scene.LightTypeDirectional,
		Direction: math.NewVec3(0.5, -0.8, -0.3).Normalize(),
		Color:     core.Color{R: 1.0, G: 0.96, B: 0.88, A: 1},
		Intensity: 1.2,
	}
	s.AddLight(sun)

	rig := viewer.NewLightRig(s, cfg.Lights.Count)
	panel := viewer.NewPanel(s, rig, sun)
	eng.SetScene(s)

	fmt.Printf("[Lights] rig of %d point lights, light 0 active\n", len(rig.Lights))

	// ── Input wiring ──────────────────────────────────────────────────────
	keys := viewer.NewKeyState(
		viewer.KeyCamForward, viewer.KeyCamBack, viewer.KeyCamLeft, viewer.KeyCamRight,
		viewer.KeyLightZNeg, viewer.KeyLightZPos, viewer.KeyLightXNeg, viewer.KeyLightXPos,
		viewer.KeyLightYPos, viewer.KeyLightYNeg,
		"minus", "equal", "leftbracket", "rightbracket",
		"comma", "period", "semicolon", "apostrophe",
	)

	showHUD := true
	showHelp := false
	presetIdx := make([]int, len(rig.Lights))

	window.SetKeyCallback(func(name string, pressed bool) {
		keys.SetKey(name, pressed)
		if !pressed {
			return
		}
		// Edge-triggered bindings run straight from the event.
		switch name {
		case "escape":
			window.RequestClose()
		case "g":
			gridNode.Visible = !gridNode.Visible
		case "b":
			eng.DrawAABBs = !eng.DrawAABBs
		case "z":
			eng.SetWireframe(!eng.IsWireframe())
		case "h":
			showHelp = !showHelp
		case "f1":
			showHUD = !showHUD
		case "c":
			if l := rig.ActiveLight(); l != nil {
				presetIdx[rig.Active] = (presetIdx[rig.Active] + 1) % len(colorPresets)
				panel.SetColor(rig.Active, colorPresets[presetIdx[rig.Active]])
			}
		default:
			if n, err := strconv.Atoi(name); err == nil && n >= 1 {
				panel.SelectLight(n - 1)
			}
		}
	})

	window.SetResizeCallback(func(width, height int) {
		eng.Resize(width, height)
	})

	scrollDelta := float64(0)
	window.SetScrollCallback(func(xoff, yoff float64) {
		scrollDelta += yoff
	})

	// ── Asset loading ─────────────────────────────────────────────────────
	var pending <-chan viewer.LoadResult
	var watchCh <-chan string
	var modelGroup *scene.Node
	var reloadAt time.Time

	if cfg.Model.Path != "" {
		fmt.Printf("[Assets] loading %q\n", cfg.Model.Path)
		pending = viewer.LoadModelAsync(cfg.Model.Path)

		if cfg.Model.Watch {
			watchCh, err = viewer.WatchFile(cfg.Model.Path)
			if err != nil {
				fmt.Printf("[Watch] disabled: %v\n", err)
				watchCh = nil
			} else {
				fmt.Printf("[Watch] watching %q\n", cfg.Model.Path)
			}
		}
	}

	// ── Frame loop ────────────────────────────────────────────────────────
	look := NewLookController()
	overlay := &DebugOverlay{}
	leftWasDown := false

	frames := 0
	displayFPS := 0
	fpsLastTime := time.Now()

	loop := &viewer.Loop{
		Clock:    viewer.NewFrameClock(),
		Keys:     keys,
		Camera:   cam,
		CamNav:   viewer.NewCameraNavigator(cfg.Camera.Speed),
		Rig:      rig,
		LightNav: viewer.NewLightNavigator(cfg.Lights.Speed),
	}

	loop.PreUpdate = func(dt float32) {
		look.Update(window, cam)

		if scrollDelta != 0 {
			cam.Dolly(float32(scrollDelta) * 0.8)
			scrollDelta = 0
		}

		// Click picking on the light markers.
		leftDown := window.IsMouseButtonPressed(core.MouseButtonLeft)
		if leftDown && !leftWasDown {
			mx, my := window.GetCursorPos()
			ray := viewer.ScreenToRay(float32(mx), float32(my),
				float32(window.Width), float32(window.Height), cam)
			if idx := rig.PickLight(ray); idx >= 0 {
				panel.SelectLight(idx)
			}
		}
		leftWasDown = leftDown

		// Held panel keys edit the active light and the global lighting.
		if l := rig.ActiveLight(); l != nil {
			if keys.IsHeld("minus") {
				panel.SetIntensity(rig.Active, l.Intensity-3*dt)
			}
			if keys.IsHeld("equal") {
				panel.SetIntensity(rig.Active, l.Intensity+3*dt)
			}
			if keys.IsHeld("leftbracket") {
				panel.SetRange(rig.Active, l.Range-20*dt)
			}
			if keys.IsHeld("rightbracket") {
				panel.SetRange(rig.Active, l.Range+20*dt)
			}
		}
		if keys.IsHeld("comma") {
			panel.SetAmbient(panel.Ambient() - 0.8*dt)
		}
		if keys.IsHeld("period") {
			panel.SetAmbient(panel.Ambient() + 0.8*dt)
		}
		if keys.IsHeld("semicolon") {
			panel.SetSunIntensity(sun.Intensity - 1.5*dt)
		}
		if keys.IsHeld("apostrophe") {
			panel.SetSunIntensity(sun.Intensity + 1.5*dt)
		}

		// Consume a finished model load, at most one per load.
		select {
		case res := <-pending:
			pending = nil
			if res.Err != nil {
				fmt.Printf("[Assets] load %q failed: %v\n", res.Path, res.Err)
			} else {
				for _, tex := range res.Textures {
					if err := eng.UploadTexture(tex); err != nil {
						fmt.Printf("[Assets] texture %q: %v\n", tex.Name, err)
					}
				}
				// Free the replaced model's GPU buffers before the new
				// group takes its place.
				if modelGroup != nil {
					meshes, textures := viewer.ModelResources(modelGroup)
					for _, m := range meshes {
						eng.ReleaseMesh(m)
					}
					for _, tex := range textures {
						eng.DeleteTexture(tex)
					}
					fmt.Printf("[Assets] released %d meshes, %d textures\n",
						len(meshes), len(textures))
				}
				modelGroup = viewer.AttachModel(s, res, modelGroup)
			}
		default:
		}

		// Debounced hot reload.
		if watchCh != nil {
			select {
			case <-watchCh:
				reloadAt = time.Now().Add(200 * time.Millisecond)
			default:
			}
		}
		if !reloadAt.IsZero() && time.Now().After(reloadAt) && pending == nil {
			fmt.Printf("[Watch] %q changed, reloading\n", cfg.Model.Path)
			pending = viewer.LoadModelAsync(cfg.Model.Path)
			reloadAt = time.Time{}
		}
	}

	loop.Render = func() error {
		err := eng.Render()

		if showHUD {
			overlay.Clear()
			objects, _, tris, culled := eng.DrawStats()
			overlay.AddLine("FPS: %d   Pos: %.1f %.1f %.1f", displayFPS,
				cam.Position.X, cam.Position.Y, cam.Position.Z)
			if l := rig.ActiveLight(); l != nil {
				overlay.AddLine("Light %d/%d  pos %.1f %.1f %.1f  int %.1f  range %.1f",
					rig.Active+1, len(rig.Lights),
					l.Position.X, l.Position.Y, l.Position.Z, l.Intensity, l.Range)
			}
			overlay.AddLine("Draw: obj=%d tris=%d culled=%d   ambient %.2f  sun %.2f",
				objects, tris, culled, panel.Ambient(), sun.Intensity)
			if showHelp {
				overlay.AddLine("WASD move   RMB-drag look   wheel dolly   LMB pick light")
				overlay.AddLine("arrows/PgUp/PgDn move light   1-%d select   C color", len(rig.Lights))
				overlay.AddLine("-/= intensity   [/] range   ,/. ambient   ;/' sun")
				overlay.AddLine("G grid   B boxes   Z wireframe   F1 hud   Esc quit")
			} else {
				overlay.AddLine("H help")
			}
			eng.DrawText(overlay.GetText(), 10, 10, 2, core.ColorWhite)
		}

		eng.Present()
		return err
	}

	printControls(len(rig.Lights))

	for !window.ShouldClose() {
		window.PollEvents()
		loop.Step()

		frames++
		if now := time.Now(); now.Sub(fpsLastTime).Seconds() >= 1.0 {
			displayFPS = frames
			window.SetTitle(fmt.Sprintf("%s | FPS: %d | light %d",
				cfg.Window.Title, displayFPS, rig.Active+1))
			frames = 0
			fpsLastTime = now
		}
	}

	fmt.Println("Exiting...")
	return nil
}

// buildPlaceholderScene adds a ground plane, a reference grid and a few
// primitive shapes so the viewer is usable without a model argument (or
// after a failed load). Returns the grid node for the G toggle.
func buildPlaceholderScene(s *scene.Scene) *scene.Node {
	ground := scene.CreatePlane(40, 40, 1)
	ground.Material = scene.NewMaterial("Ground", core.Color{R: 0.45, G: 0.45, B: 0.48, A: 1})
	ground.Material.Shininess = 8
	groundNode := scene.NewNode("Ground")
	groundNode.Mesh = ground
	s.AddNode(groundNode)

	grid := scene.CreateGrid(40, 40)
	gridNode := scene.NewNode("Grid")
	gridNode.Mesh = grid
	s.AddNode(gridNode)

	cube := scene.CreateCube(2)
	cube.Material = scene.NewMaterial("Cube", core.Color{R: 0.7, G: 0.35, B: 0.3, A: 1})
	cubeNode := scene.NewNode("Cube")
	cubeNode.Mesh = cube
	cubeNode.SetPosition(math.NewVec3(-4, 1, 0))
	s.AddNode(cubeNode)

	sphere := scene.CreateSphere(1.2, 24, 16)
	sphere.Material = scene.NewMaterial("Sphere", core.Color{R: 0.35, G: 0.55, B: 0.75, A: 1})
	sphere.Material.Shininess = 64
	sphereNode := scene.NewNode("Sphere")
	sphereNode.Mesh = sphere
	sphereNode.SetPosition(math.NewVec3(0, 1.2, -2))
	s.AddNode(sphereNode)

	torus := scene.CreateTorus(1.4, 0.45, 32, 16)
	torus.Material = scene.NewMaterial("Torus", core.Color{R: 0.45, G: 0.7, B: 0.4, A: 1})
	torusNode := scene.NewNode("Torus")
	torusNode.Mesh = torus
	torusNode.SetPosition(math.NewVec3(4, 1.4, 1))
	s.AddNode(torusNode)

	return gridNode
}

func printControls(lights int) {
	fmt.Println("===========================================")
	fmt.Println("  Scene Viewer")
	fmt.Println("===========================================")
	fmt.Println("")
	fmt.Println("CAMERA:")
	fmt.Println("  W / S            - Move forward / backward")
	fmt.Println("  A / D            - Strafe left / right")
	fmt.Println("  Right Mouse Drag - Look around")
	fmt.Println("  Scroll Wheel     - Dolly in / out")
	fmt.Println("")
	fmt.Println("LIGHTS:")
	fmt.Printf("  1 - %d            - Select active light\n", lights)
	fmt.Println("  Left Click       - Pick a light marker")
	fmt.Println("  Arrow Keys       - Move light in X / Z")
	fmt.Println("  PgUp / PgDn      - Move light up / down")
	fmt.Println("  - / =            - Intensity down / up")
	fmt.Println("  [ / ]            - Range down / up")
	fmt.Println("  C                - Cycle light color")
	fmt.Println("  , / .            - Ambient down / up")
	fmt.Println("  ; / '            - Sun down / up")
	fmt.Println("")
	fmt.Println("VIEW:")
	fmt.Println("  G                - Toggle grid")
	fmt.Println("  B                - Toggle AABB boxes")
	fmt.Println("  Z                - Toggle wireframe")
	fmt.Println("  H                - Toggle help overlay")
	fmt.Println("  F1               - Toggle HUD")
	fmt.Println("")
	fmt.Println("EXIT: ESC")
	fmt.Println("===========================================")
	fmt.Println("")
}
