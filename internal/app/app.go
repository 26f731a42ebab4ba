//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"gol-arcade/internal/host"
	"gol-arcade/internal/render"
	"gol-arcade/internal/ui"
	"gol-arcade/pkg/core"
	"gol-arcade/pkg/geom"
	"gol-arcade/pkg/life"
	"gol-arcade/pkg/particles"
	"gol-arcade/pkg/population"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game runs the arcade scene and adapts it to the ebiten.Game interface.
type Game struct {
	cfg      *Config
	rng      *core.RNG
	renderer *render.Renderer
	hud      *ui.HUD

	backdrop *field
	tank     *field
	pieces   []*showpiece
	probe    *showpiece

	force  *population.LifeForce
	keeper *population.DensityKeeper
	parts  *particles.Manager

	frame    int
	paused   bool
	tickOnce bool
	score    int
	seed     int64
}

// New constructs a Game for the provided configuration and starts the
// renderer warm-up in the background.
func New(cfg *Config) *Game {
	r := render.NewRenderer()
	r.Warmup(render.Presets())
	g := &Game{
		cfg:      cfg,
		renderer: r,
		hud:      ui.NewHUD(),
	}
	g.Reset(cfg.Seed)
	return g
}

// Reset rebuilds the scene from the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.rng = core.NewRNG(seed)
	g.backdrop, g.tank, g.pieces, g.probe = buildScene(g.cfg, g.rng)
	g.force = population.NewLifeForce(population.DefaultLifeForceConfig(), g.rng)
	g.keeper = population.NewDensityKeeper(population.DefaultDensityKeeperConfig(), g.rng)
	g.parts = particles.NewManager(float64(g.cfg.Width), float64(g.cfg.Height), particleMargin)
	g.frame = 0
	g.score = 0
	g.tickOnce = false
}

// Update handles input, advances every automaton on its own cadence, and
// resolves the frame's collisions.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		host.ReportGameOver(g.score)
		return ebiten.Termination
	}
	if !g.renderer.Ready() {
		// The scene holds still until the shader pipeline is warm; Draw
		// shows a notice in the meantime.
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	if g.paused && !g.tickOnce {
		return nil
	}
	g.tickOnce = false
	g.frame++

	g.backdrop.grid.UpdateThrottled(g.frame)
	g.keeper.Apply(g.backdrop.grid, g.frame)

	if g.tank.grid.UpdateThrottled(g.frame) {
		g.force.Apply(g.tank.grid)
	}

	w := float64(g.cfg.Width)
	h := float64(g.cfg.Height)
	for _, p := range g.pieces {
		p.advance(w, h)
		if p.cooldown > 0 {
			p.cooldown--
		}
		stepped := p.grid.UpdateThrottled(g.frame)
		if stepped && p.grid.Mode() == life.CanonicalOscillator && p.grid.Phase() == 0 {
			p.grid.ResyncOscillator()
		}
	}
	g.collidePieces()
	g.probePieces()
	g.parts.Update(g.frame)

	// Gradient phases advance once per frame, after all logic, so every
	// draw in the frame samples the same animation state.
	g.renderer.UpdateAnimation()
	return nil
}

// collidePieces swaps velocities and sparks a burst when two drifting
// pieces overlap. Cooldowns keep a touching pair from re-triggering every
// frame while it separates.
func (g *Game) collidePieces() {
	for i := 0; i < len(g.pieces); i++ {
		for j := i + 1; j < len(g.pieces); j++ {
			a, b := g.pieces[i], g.pieces[j]
			if a.cooldown > 0 || b.cooldown > 0 {
				continue
			}
			if !geom.BoxOverlap(a.x, a.y, a.width(), a.height(), b.x, b.y, b.width(), b.height()) {
				continue
			}
			ax, ay := a.center()
			bx, by := b.center()
			g.parts.SpawnBurst(10, (ax+bx)/2, (ay+by)/2, 2.4, "ember", g.rng)
			a.vx, b.vx = b.vx, a.vx
			a.vy, b.vy = b.vy, a.vy
			a.cooldown = collideCooldown
			b.cooldown = collideCooldown
			g.score += collideScore
		}
	}
}

// probePieces moves the probe to the cursor and pops any piece inside its
// hit circle.
func (g *Game) probePieces() {
	mx, my := ebiten.CursorPosition()
	g.probe.x = float64(mx) - g.probe.width()/2
	g.probe.y = float64(my) - g.probe.height()/2

	cx, cy := g.probe.center()
	r := probeRadiusFraction * g.probe.width() / 2
	for _, p := range g.pieces {
		if p.cooldown > 0 {
			continue
		}
		if !geom.CircleBoxOverlap(cx, cy, r, p.x, p.y, p.width(), p.height()) {
			continue
		}
		px, py := p.center()
		g.parts.SpawnBurst(14, px, py, 3.2, p.fill.Name, g.rng)
		g.score += popScore
		p.cooldown = popCooldown
		g.relocate(p)
	}
}

// relocate teleports a popped piece to a fresh spot so it can be chased
// again.
func (g *Game) relocate(p *showpiece) {
	w := float64(g.cfg.Width)
	h := float64(g.cfg.Height)
	p.x = g.rng.Float64() * (w - p.width())
	p.y = g.rng.Float64() * (h - p.height())
}

// Draw renders the scene back to front: backdrop, tank, pieces, probe,
// particle bursts, HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 6, G: 8, B: 12, A: 0xff})
	if !g.renderer.Ready() {
		g.hud.SetLines("warming shader pipeline...")
		g.hud.Draw(screen)
		return
	}
	for _, s := range g.sprites() {
		x, y := s.Position()
		g.renderer.RenderMaskedGrid(screen, s.Grid(), x, y, s.CellSize(), s.Gradient())
	}
	for _, p := range g.parts.Particles() {
		fill, ok := render.Lookup(p.Preset)
		if !ok {
			continue
		}
		g.renderer.RenderMaskedGridFaded(screen, p.Grid, p.X, p.Y, p.CellSize, fill, p.Alpha)
	}

	floor, ceiling := g.force.Band(g.tank.grid)
	lines := []string{
		fmt.Sprintf("score %6d", g.score),
		fmt.Sprintf("tank %4d in [%d, %d]", g.tank.grid.Population(), floor, ceiling),
		fmt.Sprintf("bursts %3d live / %d reaped", g.parts.Alive(), g.parts.Reaped()),
		fmt.Sprintf("fps %5.1f tps %5.1f", ebiten.ActualFPS(), ebiten.ActualTPS()),
	}
	if g.paused {
		lines = append(lines, "paused (space resumes, n steps)")
	}
	g.hud.SetLines(lines...)
	g.hud.Draw(screen)
}

// sprites lists every automaton-backed entity in draw order, back to front.
func (g *Game) sprites() []Sprite {
	out := make([]Sprite, 0, len(g.pieces)+3)
	out = append(out, g.backdrop, g.tank)
	for _, p := range g.pieces {
		out = append(out, p)
	}
	out = append(out, g.probe)
	return out
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
