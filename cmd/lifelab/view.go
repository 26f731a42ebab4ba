package main

import (
	"bytes"
	"fmt"
	"image/color"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"gol-arcade/pkg/core"
	"gol-arcade/pkg/life"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
)

const (
	liveFiller      = "█"
	deadFiller      = "░"
	leftColumnWidth = 30
	minWindowHeight = 16
)

// keyBinding describes one handler plus its entry in the help bar.
type keyBinding struct {
	key     interface{}
	name    string
	descr   string
	handler func(v *gocui.View) error
	view    string
}

// consoleUI is the interactive terminal front end for a lab world. All
// grid mutation happens on the gocui event loop; the pacer goroutine only
// queues updates.
type consoleUI struct {
	lab  *lab
	opt  *options
	g    *gocui.Gui
	k    []keyBinding
	pace *core.FixedStep

	running atomic.Bool
	done    chan struct{}
}

func newConsoleUI(l *lab, opt *options) *consoleUI {
	t := &consoleUI{
		lab:  l,
		opt:  opt,
		pace: core.NewFixedStep(stepRate(opt.interval)),
		done: make(chan struct{}),
	}

	var err error
	t.g, err = gocui.NewGui(gocui.Output256)
	if err != nil {
		log.Panicln(err)
	}

	t.k = []keyBinding{
		{gocui.KeyCtrlC, "^C", "quit", t.cmdQuit, ""},
		{'n', "N", "step", t.cmdStep, ""},
		{'r', "R", "run", t.cmdRun, ""},
		{'s', "S", "stop", t.cmdStop, ""},
		{'f', "F", "freeze", t.cmdFreeze, ""},
		{'o', "O", "loop reset", t.cmdLoopReset, ""},
		{'w', "W", "reseed", t.cmdReseed, ""},
		{'c', "C", "clear", t.cmdClear, ""},
	}
	t.g.SetManagerFunc(t.layout)
	t.initKeyBindings()
	return t
}

func (t *consoleUI) initKeyBindings() {
	for _, kb := range t.k {
		h := kb.handler
		err := t.g.SetKeybinding(kb.view, kb.key, gocui.ModNone,
			func(gui *gocui.Gui, view *gocui.View) error { return h(view) })
		if err != nil {
			log.Panicln(err)
		}
	}
}

// Start runs the event loop until quit.
func (t *consoleUI) Start() {
	go t.loop()
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}
	t.g.Close()
}

// loop paces automatic stepping while running.
func (t *consoleUI) loop() {
	for {
		select {
		case <-t.done:
			return
		default:
		}
		if t.running.Load() && t.pace.ShouldStep() {
			t.g.Update(func(*gocui.Gui) error {
				t.lab.step()
				return nil
			})
		}
		time.Sleep(time.Millisecond)
	}
}

func (t *consoleUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()

	if maxY < minWindowHeight {
		if err := t.headerView(g, maxY, "Terminal height too small"); err != nil {
			return err
		}
		_ = g.DeleteView("configuration")
		_ = g.DeleteView("status")
		_ = g.DeleteView("battlefield")
		_ = g.DeleteView("help")
		return nil
	}
	if err := t.headerView(g, 3, "lifelab: bounded B3/S23 inspector"); err != nil {
		return err
	}

	mid := 3 + (maxY-5-3)/2
	if v, err := g.SetView("configuration", 0, 3, leftColumnWidth, mid); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Configuration"
		v.Frame = true
	}
	t.renderConfiguration(g)

	if v, err := g.SetView("status", 0, mid+1, leftColumnWidth, maxY-5); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Status"
		v.Frame = true
	}
	t.renderStatus(g)

	if v, err := g.SetView("battlefield", leftColumnWidth+1, 3, maxX-1, maxY-5); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Grid"
		v.Frame = true
	}
	t.renderField(g)

	if v, err := g.SetView("help", -1, maxY-5, maxX, maxY-3); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		var b bytes.Buffer
		b.WriteString("KEYBINDINGS: ")
		for i, kb := range t.k {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(aurora.Green(kb.name).String())
			b.WriteString(": ")
			b.WriteString(kb.descr)
		}
		fmt.Fprintln(v, b.String())
	}
	return nil
}

func (t *consoleUI) headerView(g *gocui.Gui, height int, text string) error {
	maxX, _ := g.Size()
	v, err := g.SetView("header", -1, -1, maxX+1, height)
	if err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		v.BgColor = gocui.ColorCyan
		v.FgColor = gocui.ColorBlack
	}
	v.Clear()
	pad := 0
	if maxX > len(text) {
		pad = (maxX - len(text)) / 2
	}
	fmt.Fprintln(v, strings.Repeat("\n", height/2)+strings.Repeat(" ", pad)+text)
	return nil
}

func (t *consoleUI) renderConfiguration(g *gocui.Gui) {
	v, err := g.View("configuration")
	if err != nil {
		return
	}
	v.Clear()
	grid := t.lab.grid
	fmt.Fprintln(v, prop("Dimension", "%v x %v", grid.Cols(), grid.Rows()))
	fmt.Fprintln(v, prop("Interval", "%v", t.opt.interval))
	if t.opt.patternName != "" {
		fmt.Fprintln(v, prop("Pattern", "%v", t.opt.patternName))
	}
	fmt.Fprintln(v, prop("Preset", "%v", t.lab.fill.Name))
	fmt.Fprintln(v, prop("Seed", "%v", t.opt.seed))
	floor, ceiling := t.lab.force.Band(grid)
	fmt.Fprintln(v, prop("Band", "[%v, %v]", floor, ceiling))
}

func (t *consoleUI) renderStatus(g *gocui.Gui) {
	v, err := g.View("status")
	if err != nil {
		return
	}
	v.Clear()
	grid := t.lab.grid
	fmt.Fprintln(v, prop("Generation", "%v", grid.Generation()))
	fmt.Fprintln(v, prop("Population", "%v", grid.Population()))
	fmt.Fprintln(v, prop("Band", "%v", t.lab.bandLabel()))
	mode := grid.Mode().String()
	if grid.IsFrozen() {
		mode += " " + aurora.Blue("(frozen)").String()
	}
	fmt.Fprintln(v, prop("Mode", "%v", mode))
	if grid.Mode() == life.CanonicalOscillator {
		fmt.Fprintln(v, prop("Loop", "%v phase %v/%v",
			grid.OscillatorPattern(), grid.Phase(), grid.OscillatorPeriod()))
	}
	state := "stopped"
	if t.running.Load() {
		state = aurora.Cyan("running").String()
	}
	fmt.Fprintln(v, prop("Run", "%v", state))
}

func (t *consoleUI) renderField(g *gocui.Gui) {
	v, err := g.View("battlefield")
	if err != nil {
		return
	}
	v.Clear()
	maxW, maxH := v.Size()
	grid := t.lab.grid
	var b bytes.Buffer
	for y := 0; y < grid.Rows() && y < maxH; y++ {
		if y != 0 {
			b.WriteByte('\n')
		}
		if y == maxH-1 && grid.Rows() > maxH {
			b.WriteString(aurora.Red("grid is larger than the viewing area").String())
			break
		}
		for x := 0; x < grid.Cols() && x < maxW; x++ {
			if grid.At(x, y) {
				b.WriteString(tintedCell(t.lab.fill.Sample(float64(x), float64(y))))
			} else {
				b.WriteString(deadFiller)
			}
		}
	}
	fmt.Fprint(v, b.String())
}

// prop formats one name/value line with the name colored.
func prop(name, format string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+format, values...)
}

// tintedCell maps an RGBA sample onto the xterm 6x6x6 color cube.
func tintedCell(c color.RGBA) string {
	r := int(c.R) * 6 / 256
	g := int(c.G) * 6 / 256
	b := int(c.B) * 6 / 256
	return aurora.Index(uint8(16+36*r+6*g+b), liveFiller).String()
}

func (t *consoleUI) cmdQuit(*gocui.View) error {
	t.running.Store(false)
	close(t.done)
	return gocui.ErrQuit
}

func (t *consoleUI) cmdStep(*gocui.View) error {
	if !t.running.Load() {
		t.lab.step()
	}
	return nil
}

func (t *consoleUI) cmdRun(*gocui.View) error {
	t.pace.Reset()
	t.running.Store(true)
	return nil
}

func (t *consoleUI) cmdStop(*gocui.View) error {
	t.running.Store(false)
	return nil
}

func (t *consoleUI) cmdFreeze(*gocui.View) error {
	if t.lab.grid.IsFrozen() {
		t.lab.grid.Unfreeze()
	} else {
		t.lab.grid.Freeze()
	}
	return nil
}

func (t *consoleUI) cmdLoopReset(*gocui.View) error {
	t.lab.grid.ResyncOscillator()
	return nil
}

func (t *consoleUI) cmdReseed(*gocui.View) error {
	t.lab.reseed()
	return nil
}

func (t *consoleUI) cmdClear(*gocui.View) error {
	t.lab.grid.Clear()
	return nil
}
