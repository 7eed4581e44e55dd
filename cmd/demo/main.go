package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/chewxy/math32"

	"playground/behaviours"
	"playground/core"
	"playground/graphics"
	"playground/math"
	"playground/renderer"
	"playground/scene"
)

var lightingModeNames = []string{
	"unlit", "ambient", "specular", "ambient+specular", "toon",
}

func fatalf(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
	os.Exit(1)
}

// loadMesh loads a model file or exits; the scene makes no sense without
// its geometry.
func loadMesh(path string) *graphics.Mesh {
	mesh, err := graphics.LoadMeshFile(path)
	if err != nil {
		fatalf("load mesh: %v", err)
	}
	return mesh
}

func loadEnvironment(path string) *graphics.CubeMap {
	env, err := graphics.LoadCubeMapCross(path)
	if err != nil {
		fmt.Printf("environment %s: %v (using solid fallback)\n", path, err)
		return graphics.NewSolidCubeMap(path, 90, 120, 180, 255)
	}
	return env
}

// app bundles everything the frame loop and key watchers touch.
type app struct {
	window  *core.Window
	reg     *scene.Registry
	camera  *scene.Camera
	camRig  scene.Entity
	engine  *renderer.Engine
	overlay *DebugOverlay

	litMaterials  []*scene.Material
	lightingMode  int32
	controllables []scene.Entity
	active        int
}

func main() {
	window, err := core.NewWindow(core.DefaultWindowConfig())
	if err != nil {
		fatalf("window: %v", err)
	}
	defer window.Destroy()

	if err := graphics.Init(); err != nil {
		fatalf("graphics: %v", err)
	}

	textRenderer, err := graphics.NewTextRenderer()
	if err != nil {
		fatalf("text renderer: %v", err)
	}

	a := &app{
		window:       window,
		reg:          scene.NewRegistry(),
		camera:       scene.NewCamera(),
		engine:       renderer.New(),
		overlay:      NewDebugOverlay(),
		lightingMode: 3,
	}

	a.camera.SetAspect(float32(window.Width) / float32(window.Height))
	window.OnResize(func(w, h int) {
		graphics.SetViewport(w, h)
		a.camera.SetAspect(float32(w) / float32(h))
	})

	if err := a.buildScene(); err != nil {
		fatalf("scene: %v", err)
	}

	watchers := a.setupWatchers()

	clock := &core.FrameClock{}
	fps := &core.FPSSampler{}

	fmt.Printf("scene ready: %d entities\n", a.reg.Count())

	for !window.ShouldClose() {
		window.PollEvents()

		delta := clock.Tick(window.Time())
		fps.Sample(delta)

		watchers.Poll(window)

		a.reg.DispatchBehaviours(&scene.UpdateContext{Input: window, Delta: delta})
		a.syncCamera()
		a.reg.UpdateWorldMatrices()

		graphics.Clear(core.Color{R: 0.08, G: 0.17, B: 0.31, A: 1})
		a.engine.Render(a.reg, a.camera)

		a.updateOverlay(fps)
		if a.overlay.Visible() {
			fbW, fbH := window.GetFramebufferSize()
			textRenderer.Draw(a.overlay.Text(), 10, 10, 2, core.ColorWhite,
				float32(fbW), float32(fbH))
		}

		window.SwapBuffers()
	}
}

// syncCamera copies the free-look rig's pose onto the camera.
func (a *app) syncCamera() {
	t := a.reg.Transform(a.camRig)
	a.camera.SetPosition(t.Position)
	a.camera.LookAt(t.Position.Add(t.Forward()))
}

// ── Scene assembly ────────────────────────────────────────────────────────────

func (a *app) buildScene() error {
	lit, err := graphics.NewBlinnPhongShader()
	if err != nil {
		return fmt.Errorf("lit shader: %w", err)
	}
	reflective, err := graphics.NewReflectionShader()
	if err != nil {
		return fmt.Errorf("reflection shader: %w", err)
	}
	litReflective, err := graphics.NewBlinnPhongReflectionShader()
	if err != nil {
		return fmt.Errorf("lit reflection shader: %w", err)
	}
	sky, err := graphics.NewSkyboxShader()
	if err != nil {
		return fmt.Errorf("sky shader: %w", err)
	}

	env := loadEnvironment("assets/skybox.png")

	grassTex := graphics.LoadTexture2DOrPlaceholder("assets/grass.png")
	duncTex := graphics.LoadTexture2DOrPlaceholder("assets/dunce.png")
	woodTex := graphics.LoadTexture2DOrPlaceholder("assets/wood.png")
	boxTex := graphics.LoadTexture2DOrPlaceholder("assets/box.bmp")
	leafTex := graphics.LoadTexture2DOrPlaceholder("assets/leaves.png")
	redTex := graphics.NewSolidTexture("red", 220, 40, 40, 255)
	yellowTex := graphics.NewSolidTexture("yellow", 235, 200, 40, 255)

	matGrass := a.newLitMaterial("grass", lit, grassTex, 4)
	matDunce := a.newLitMaterial("dunce", lit, duncTex, 32)
	matWood := a.newLitMaterial("wood", lit, woodTex, 16)
	matBox := a.newLitMaterial("box", lit, boxTex, 8)
	matLeaf := a.newLitMaterial("leaves", lit, leafTex, 2)
	matRed := a.newLitMaterial("red", lit, redTex, 64)
	matYellow := a.newLitMaterial("yellow", lit, yellowTex, 64)

	matMirror := scene.NewMaterial("mirror", reflective)
	matMirror.Set("s_Environment", scene.TextureValue(env))
	matMirror.Set("u_EnvironmentRotation", scene.Mat3(math.Mat3Identity()))

	matMarble := a.newLitMaterial("marble", litReflective, boxTex, 64)
	matMarble.Set("s_Environment", scene.TextureValue(env))
	matMarble.Set("u_EnvironmentRotation", scene.Mat3(math.Mat3Identity()))
	matMarble.Set("u_Reflectivity", scene.Float(0.35))

	matSky := scene.NewMaterial("sky", sky)
	matSky.Layer = 100
	matSky.Set("s_Environment", scene.TextureValue(env))
	matSky.Set("u_EnvironmentRotation", scene.Mat3(math.Mat3Identity()))

	// Ground
	ground := a.reg.Create("Ground")
	a.reg.SetRenderer(ground, scene.RendererComponent{
		Mesh:     graphics.CreatePlane(50, 50, 12),
		Material: matGrass,
	})

	// Dunce and Duncet, the two keyboard-steerable characters
	dunce := a.reg.Create("Dunce")
	a.reg.Transform(dunce).Position = math.NewVec3(0, 0, 0)
	a.reg.SetRenderer(dunce, scene.RendererComponent{
		Mesh:     loadMesh("assets/dunce.obj"),
		Material: matDunce,
	})
	a.reg.Attach(dunce, behaviours.NewSimpleMove(math.Radians(90)))

	duncet := a.reg.Create("Duncet")
	a.reg.Transform(duncet).Position = math.NewVec3(2, 0, 0)
	a.reg.SetRenderer(duncet, scene.RendererComponent{
		Mesh:     loadMesh("assets/duncet.obj"),
		Material: matDunce,
	})
	a.reg.Attach(duncet, behaviours.NewSimpleMove(math.Radians(90)))

	a.controllables = []scene.Entity{dunce, duncet}
	a.setActiveControllable(0)

	// Playground fixtures
	slide := a.reg.Create("Slide")
	a.reg.Transform(slide).Position = math.NewVec3(-6, 0, 4)
	a.reg.SetRenderer(slide, scene.RendererComponent{
		Mesh:     loadMesh("assets/slide.obj"),
		Material: matWood,
	})

	swing := a.reg.Create("Swing")
	st := a.reg.Transform(swing)
	st.Position = math.NewVec3(6, 0, 4)
	st.SetRotationEuler(math.NewVec3(0, 180, 0))
	a.reg.SetRenderer(swing, scene.RendererComponent{
		Mesh:     loadMesh("assets/swing.obj"),
		Material: matWood,
	})

	table := a.reg.Create("Table")
	a.reg.Transform(table).Position = math.NewVec3(0, 0, -6)
	a.reg.SetRenderer(table, scene.RendererComponent{
		Mesh:     loadMesh("assets/table.obj"),
		Material: matBox,
	})

	// A shiny cup sitting on the table, parented so it follows the table
	cup := a.reg.Create("Cup")
	ct := a.reg.Transform(cup)
	ct.Position = math.NewVec3(0.3, 1.1, 0)
	ct.Scale = math.NewVec3(0.15, 0.15, 0.15)
	ct.Parent = table
	a.reg.SetRenderer(cup, scene.RendererComponent{
		Mesh:     graphics.CreateSphere(1, 16, 12),
		Material: matMirror,
	})

	marble := a.reg.Create("Marble")
	mt := a.reg.Transform(marble)
	mt.Position = math.NewVec3(3, 1, -3)
	a.reg.SetRenderer(marble, scene.RendererComponent{
		Mesh:     graphics.CreateSphere(1, 24, 16),
		Material: matMarble,
	})

	// Balloons drifting along fixed loops
	balloonMesh := loadMesh("assets/balloon.glb")

	red := a.reg.Create("RedBalloon")
	a.reg.Transform(red).Position = math.NewVec3(-4, 3, -4)
	a.reg.SetRenderer(red, scene.RendererComponent{
		Mesh:     balloonMesh,
		Material: matRed,
	})
	a.reg.Attach(red, behaviours.NewFollowPath([]math.Vec3{
		math.NewVec3(-4, 3, -4),
		math.NewVec3(4, 3.5, -4),
		math.NewVec3(4, 3, 4),
		math.NewVec3(-4, 3.5, 4),
	}, 2.0))

	yellow := a.reg.Create("YellowBalloon")
	a.reg.Transform(yellow).Position = math.NewVec3(5, 4, 0)
	a.reg.SetRenderer(yellow, scene.RendererComponent{
		Mesh:     balloonMesh,
		Material: matYellow,
	})
	a.reg.Attach(yellow, behaviours.NewFollowPath([]math.Vec3{
		math.NewVec3(5, 4, 0),
		math.NewVec3(0, 4.5, 5),
		math.NewVec3(-5, 4, 0),
		math.NewVec3(0, 3.5, -5),
	}, 2.0))

	// A belt of trees around the playground, keeping the middle clear
	treeMesh := loadMesh("assets/tree.obj")
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 12; i++ {
		tree := a.reg.Create(fmt.Sprintf("Tree%d", i))
		tt := a.reg.Transform(tree)

		angle := float32(i)/12*2*math32.Pi + rng.Float32()*0.4
		radius := 12 + rng.Float32()*8
		tt.Position = math.NewVec3(radius*math32.Cos(angle), 0, radius*math32.Sin(angle))
		tt.SetRotationEuler(math.NewVec3(0, rng.Float32()*360, 0))
		s := 0.8 + rng.Float32()*0.6
		tt.Scale = math.NewVec3(s, s, s)

		a.reg.SetRenderer(tree, scene.RendererComponent{
			Mesh:     treeMesh,
			Material: matLeaf,
		})
	}

	// Sky sphere rides the high layer so it draws after the geometry and
	// only fills the leftover pixels
	skybox := a.reg.Create("Skybox")
	skyMesh := graphics.CreateSphere(1, 24, 16)
	skyMesh.InvertFaces()
	a.reg.SetRenderer(skybox, scene.RendererComponent{
		Mesh:     skyMesh,
		Material: matSky,
	})

	// Camera rig with free-look controls
	a.camRig = a.reg.Create("CameraRig")
	rig := a.reg.Transform(a.camRig)
	rig.Position = math.NewVec3(0, 3, -12)
	a.reg.Attach(a.camRig, behaviours.NewFreeLook())

	return nil
}

// newLitMaterial creates a material on the lit shader with the shared light
// rig uniforms and a diffuse texture.
func (a *app) newLitMaterial(name string, shader scene.Shader, tex scene.Texture, shininess float32) *scene.Material {
	m := scene.NewMaterial(name, shader)
	m.Set("u_LightPos", scene.Vec3(math.NewVec3(0, 8, 4)))
	m.Set("u_LightCol", scene.Vec3(math.NewVec3(1, 1, 1)))
	m.Set("u_AmbientLightStrength", scene.Float(0.1))
	m.Set("u_SpecularLightStrength", scene.Float(1.0))
	m.Set("u_AmbientCol", scene.Vec3(math.NewVec3(1, 1, 1)))
	m.Set("u_AmbientStrength", scene.Float(0.1))
	m.Set("u_LightAttenuationConstant", scene.Float(1.0))
	m.Set("u_LightAttenuationLinear", scene.Float(0.045))
	m.Set("u_LightAttenuationQuadratic", scene.Float(0.0075))
	m.Set("u_Shininess", scene.Float(shininess))
	m.Set("s_Diffuse", scene.TextureValue(tex))
	m.Set("s_Diffuse2", scene.TextureValue(tex))
	m.Set("u_TextureMix", scene.Float(0))
	m.Set("u_LightingMode", scene.Int(a.lightingMode))
	a.litMaterials = append(a.litMaterials, m)
	return m
}

// ── Input wiring ──────────────────────────────────────────────────────────────

func (a *app) setupWatchers() *core.WatcherSet {
	var ws core.WatcherSet

	ws.Watch(core.KeyT, func() {
		a.camera.ToggleOrtho()
		fmt.Printf("projection: ortho=%v\n", a.camera.IsOrtho())
	})

	ws.Watch(core.KeyY, func() {
		if mover, ok := a.activeMover(); ok {
			mover.Relative = !mover.Relative
			fmt.Printf("%s: relative=%v\n", a.activeName(), mover.Relative)
		}
	})

	ws.Watch(core.KeyKPAdd, func() { a.cycleControllable(1) })
	ws.Watch(core.KeyKPSubtract, func() { a.cycleControllable(-1) })

	ws.Watch(core.KeyF1, func() { a.overlay.Toggle() })

	for i, key := range []int{core.Key1, core.Key2, core.Key3, core.Key4, core.Key5} {
		mode := int32(i)
		ws.Watch(key, func() { a.setLightingMode(mode) })
	}

	return &ws
}

// cycleControllable moves the steering focus to the next character. Only
// the active one's movement behaviour stays enabled.
func (a *app) cycleControllable(dir int) {
	n := len(a.controllables)
	if n == 0 {
		return
	}
	a.setActiveControllable(((a.active+dir)%n + n) % n)
	fmt.Printf("steering: %s\n", a.activeName())
}

func (a *app) setActiveControllable(idx int) {
	a.active = idx
	for i, e := range a.controllables {
		if mover, ok := scene.Get[*behaviours.SimpleMove](a.reg, e); ok {
			mover.SetEnabled(i == idx)
		}
	}
}

func (a *app) activeMover() (*behaviours.SimpleMove, bool) {
	if len(a.controllables) == 0 {
		return nil, false
	}
	return scene.Get[*behaviours.SimpleMove](a.reg, a.controllables[a.active])
}

func (a *app) activeName() string {
	if len(a.controllables) == 0 {
		return "none"
	}
	return a.reg.Name(a.controllables[a.active])
}

func (a *app) setLightingMode(mode int32) {
	a.lightingMode = mode
	for _, m := range a.litMaterials {
		m.Set("u_LightingMode", scene.Int(mode))
	}
	fmt.Printf("lighting: %s\n", lightingModeNames[mode])
}

// ── Overlay ───────────────────────────────────────────────────────────────────

func (a *app) updateOverlay(fps *core.FPSSampler) {
	a.overlay.Clear()

	min, max, mean := fps.Stats()
	stats := a.engine.Stats()

	a.overlay.AddLine("fps %5.1f (min %5.1f max %5.1f)", mean, min, max)
	a.overlay.AddLine("%s", Sparkline(fps.Samples(), 32))
	a.overlay.AddLine("draws %d shaders %d materials %d",
		stats.DrawCalls, stats.ShaderBinds, stats.MaterialBinds)
	a.overlay.AddLine("lighting [1-5]: %s", lightingModeNames[a.lightingMode])

	if len(a.controllables) > 0 {
		pos := a.reg.Transform(a.controllables[a.active]).Position
		relative := false
		if mover, ok := a.activeMover(); ok {
			relative = mover.Relative
		}
		a.overlay.AddLine("steering [KP +/-]: %s (%.1f %.1f %.1f) relative=%v",
			a.activeName(), pos.X, pos.Y, pos.Z, relative)
	}

	a.overlay.AddLine("T ortho | Y relative | F1 hide")
}
