// Example drives a sigui context with one module window.
//
// Prerequisites (opengl backend):
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// The terminal backend needs no native libraries:
//
//	go run ./example/ --backend terminal
//
// Clicking inside the window queues a "show_message" command; pressing Space
// queues "toggle_state", which flips the application state.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/TheBadkraft/sigui"
	"github.com/TheBadkraft/sigui/backend/opengl"
	"github.com/TheBadkraft/sigui/backend/terminal"
)

const (
	windowWidth  = 800
	windowHeight = 600
	frameTime    = time.Second / 60
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

type options struct {
	backend string
	width   int
	height  int
	frames  uint64
	verbose bool
}

// appState is the user state carried by the context.
type appState struct {
	value int
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:          "sigui-example",
		Short:        "Run a single-window sigui frame loop",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sigui.SetVerbose(opts.verbose)
			switch opts.backend {
			case "opengl":
				return runOpenGL(opts)
			case "terminal":
				return runTerminal(opts)
			default:
				return fmt.Errorf("unknown backend %q (want opengl or terminal)", opts.backend)
			}
		},
	}
	bindFlags(cmd.Flags(), opts)
	return cmd
}

func bindFlags(flags *pflag.FlagSet, opts *options) {
	flags.StringVar(&opts.backend, "backend", "opengl", "rendering backend: opengl or terminal")
	flags.IntVar(&opts.width, "width", windowWidth, "window width in pixels (opengl) or cells (terminal)")
	flags.IntVar(&opts.height, "height", windowHeight, "window height in pixels (opengl) or cells (terminal)")
	flags.Uint64Var(&opts.frames, "frames", 0, "stop after this many frames (0 runs until closed)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log every frame, event and command")
}

// newContext builds the context and the one module both backends share.
func newContext(r sigui.Renderer, win *sigui.Window) (*sigui.Context, error) {
	state := &appState{value: 100}
	ctx := sigui.NewContext(state)

	m, err := ctx.AddModule("MainWindow", sigui.DrawWindow(r), handleWindowEvent, win)
	if err != nil {
		ctx.Close()
		return nil, err
	}
	slog.Info("module added", "module", m.Name())
	return ctx, nil
}

func handleWindowEvent(ctx *sigui.Context, m *sigui.Module, ev *sigui.EventEnvelope) {
	e := ev.Event

	var cmd *sigui.Command
	var err error
	switch {
	case e.Kind() == sigui.EventMousePress:
		x, y := e.Position()
		if !m.Window().Contains(x, y) {
			return
		}
		cmd, err = sigui.NewCommand("show_message", m, executeShowMessage)
	case e.Kind() == sigui.EventKeyPress && e.Key() == sigui.KeySpace:
		cmd, err = sigui.NewCommand("toggle_state", m, executeToggleState)
	default:
		return
	}
	if err != nil {
		slog.Warn("command not created", "error", err)
		return
	}
	ctx.Dispatcher().QueueCommand(cmd)
}

func executeShowMessage(ctx *sigui.Context, m *sigui.Module) {
	slog.Info("showing message", "module", m.Name())
}

func executeToggleState(ctx *sigui.Context, m *sigui.Module) {
	state := ctx.State().(*appState)
	if state.value == 0 {
		state.value = 1
	} else {
		state.value = 0
	}
	slog.Info("toggled state", "module", m.Name(), "value", state.value)
}

func done(ctx *sigui.Context, opts *options) bool {
	return opts.frames > 0 && ctx.FrameCount() >= opts.frames
}

func runOpenGL(opts *options) error {
	r := opengl.NewRenderer(opengl.WithTitle("sigui example"))
	if err := r.Init(opts.width, opts.height); err != nil {
		return err
	}
	defer r.Dispose(nil)

	ctx, err := newContext(r, sigui.NewWindow(50, 50, 300, 400))
	if err != nil {
		return r.Dispose(err)
	}
	defer ctx.Close()

	input := opengl.NewGLFWInputAdapter(r.Window())
	for !r.ShouldClose() && !done(ctx, opts) {
		glfw.PollEvents()
		ctx.Render(input.Update())
	}
	return nil
}

var errQuit = errors.New("quit")

func runTerminal(opts *options) error {
	r := terminal.NewRenderer(terminal.WithFillRune('░'))
	if err := r.Init(opts.width, opts.height); err != nil {
		return err
	}
	defer r.Dispose(nil)

	ctx, err := newContext(r, sigui.NewWindow(4, 2, 30, 10))
	if err != nil {
		return r.Dispose(err)
	}
	defer ctx.Close()

	screen := r.Screen()
	events := make(chan tcell.Event, 64)
	stop := make(chan struct{})
	defer close(stop)
	go pumpEvents(screen, events, stop)

	input := terminal.NewInputAdapter()
	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	for !done(ctx, opts) {
		<-ticker.C
		if err := drainTerminalEvents(events, input); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			return err
		}
		ctx.Render(input.Update())
	}
	return nil
}

type poller interface {
	PollEvent() tcell.Event
}

// pumpEvents forwards screen events until the screen is finalized or stop
// is closed, then closes events.
func pumpEvents(screen poller, events chan<- tcell.Event, stop <-chan struct{}) {
	defer close(events)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-stop:
			return
		}
	}
}

// drainTerminalEvents feeds every pending event to the adapter without
// blocking. Escape and Ctrl+C quit.
func drainTerminalEvents(events <-chan tcell.Event, input *terminal.InputAdapter) error {
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return errQuit
			}
			if key, isKey := ev.(*tcell.EventKey); isKey &&
				(key.Key() == tcell.KeyEscape || key.Key() == tcell.KeyCtrlC) {
				return errQuit
			}
			input.HandleEvent(ev)
		default:
			return nil
		}
	}
}
