package sigui_test

import (
	"errors"
	"testing"

	"github.com/TheBadkraft/sigui"
)

// mockRenderer is a test renderer that records draws instead of painting.
type mockRenderer struct {
	drawn    []string
	failOn   string
	inits    int
	disposes int
}

func (m *mockRenderer) Init(width, height int) error {
	m.inits++
	return nil
}

func (m *mockRenderer) Draw(mod *sigui.Module) error {
	if mod.Name() == m.failOn {
		return errors.New("draw failed")
	}
	m.drawn = append(m.drawn, mod.Name())
	return nil
}

func (m *mockRenderer) Dispose(cause error) error {
	m.disposes++
	return cause
}

var _ sigui.Renderer = (*mockRenderer)(nil)

func TestDrawWindowRendersEnabledModules(t *testing.T) {
	r := &mockRenderer{failOn: "broken"}
	ctx := newTestContext(nil)

	_, _ = ctx.AddModule("first", sigui.DrawWindow(r), nil, sigui.NewWindow(0, 0, 10, 10))
	hidden, _ := ctx.AddModule("hidden", sigui.DrawWindow(r), nil, sigui.NewWindow(0, 0, 10, 10))
	_, _ = ctx.AddModule("broken", sigui.DrawWindow(r), nil, nil)
	_, _ = ctx.AddModule("last", sigui.DrawWindow(r), nil, nil)
	hidden.SetEnabled(false)

	ctx.Render(sigui.InputSnapshot{})

	want := []string{"first", "last"}
	if len(r.drawn) != len(want) {
		t.Fatalf("drawn = %v, want %v", r.drawn, want)
	}
	for i := range want {
		if r.drawn[i] != want[i] {
			t.Errorf("draw %d = %s, want %s", i, r.drawn[i], want[i])
		}
	}
	if r.inits != 0 || r.disposes != 0 {
		t.Errorf("DrawWindow must only draw, inits=%d disposes=%d", r.inits, r.disposes)
	}
}

func TestRendererLifecycle(t *testing.T) {
	var r sigui.Renderer = &mockRenderer{}
	mock := r.(*mockRenderer)

	if err := r.Init(800, 600); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	ctx := newTestContext(nil)
	_, _ = ctx.AddModule("main", sigui.DrawWindow(r), nil, sigui.NewWindow(0, 0, 10, 10))
	ctx.Render(sigui.InputSnapshot{})
	ctx.Close()

	cause := errors.New("window lost")
	if err := r.Dispose(cause); !errors.Is(err, cause) {
		t.Errorf("Dispose returned %v, want %v", err, cause)
	}
	if mock.inits != 1 || mock.disposes != 1 || len(mock.drawn) != 1 {
		t.Errorf("inits=%d disposes=%d drawn=%v", mock.inits, mock.disposes, mock.drawn)
	}
}
