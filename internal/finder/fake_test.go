package finder

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/mj1618/uia-mcp/internal/model"
	"github.com/mj1618/uia-mcp/internal/platform"
)

// fakeReader is a scripted desktop. Each ListWindows call consumes one
// snapshot from frames; the last frame repeats.
type fakeReader struct {
	mu       sync.Mutex
	frames   [][]model.Window
	elements map[uintptr][]model.Element
	readErr  map[uintptr]error
	at       map[[2]int]*model.Element
	listErr  []error
	lists    int
	hits     int
	reads    int

	// readDelay makes every subtree read take this long unless ctx ends first.
	readDelay time.Duration
}

func (r *fakeReader) ListWindows(opts platform.ListOptions) ([]model.Window, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := r.lists
	r.lists++
	if n < len(r.listErr) && r.listErr[n] != nil {
		return nil, r.listErr[n]
	}
	if len(r.frames) == 0 {
		return nil, nil
	}
	if n >= len(r.frames) {
		n = len(r.frames) - 1
	}
	frame := make([]model.Window, len(r.frames[n]))
	copy(frame, r.frames[n])
	return frame, nil
}

func (r *fakeReader) ReadElements(ctx context.Context, opts platform.ReadOptions) ([]model.Element, error) {
	r.mu.Lock()
	r.reads++
	delay := r.readDelay
	r.mu.Unlock()

	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.readErr[opts.Handle]; err != nil {
		return nil, err
	}
	return r.elements[opts.Handle], nil
}

func (r *fakeReader) ElementAt(x, y int) (*model.Element, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hits++
	if el, ok := r.at[[2]int{x, y}]; ok {
		if el == nil {
			return nil, nil
		}
		cp := *el
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeReader) listCalls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lists
}

func (r *fakeReader) readCalls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reads
}

var errAccessDenied = errors.New("access denied")

func desktop() []model.Window {
	return []model.Window{
		{Handle: 0x10, Title: "Untitled - Notepad", ClassName: "Notepad", App: "notepad", Visible: true, Enabled: true, Bounds: [4]int{10, 10, 800, 600}},
		{Handle: 0x20, Title: "", ClassName: "Shell_TrayWnd", App: "explorer", Visible: true, Enabled: true, Bounds: [4]int{0, 1040, 1920, 40}},
		{Handle: 0x30, Title: "OK — Confirm", ClassName: "#32770", App: "setup", Visible: true, Enabled: true, Bounds: [4]int{500, 400, 300, 150}},
		{Handle: 0x40, Title: "Program Manager", ClassName: "Progman", App: "explorer", Visible: true, Enabled: true, Bounds: [4]int{0, 0, 1920, 1080}},
	}
}
