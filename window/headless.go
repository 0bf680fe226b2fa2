package window

import "sync"

// Headless is an in-memory Window. It counts mutating calls that changed
// state so callers can check idempotence.
type Headless struct {
	mu          sync.Mutex
	config      Config
	presentMode PresentMode
	cursor      Cursor
	changes     int
}

// NewHeadless creates a window in the configured initial state.
func NewHeadless(cfg Config) *Headless {
	return &Headless{
		config:      cfg,
		presentMode: cfg.PresentMode,
		cursor:      CursorFree,
	}
}

// Config returns the configuration the window was created with.
func (h *Headless) Config() Config {
	return h.config
}

func (h *Headless) PresentMode() PresentMode {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.presentMode
}

func (h *Headless) SetPresentMode(m PresentMode) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.presentMode != m {
		h.presentMode = m
		h.changes++
	}
}

func (h *Headless) Cursor() Cursor {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cursor
}

func (h *Headless) SetCursor(c Cursor) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cursor != c {
		h.cursor = c
		h.changes++
	}
}

// Changes returns how many setter calls actually changed state.
func (h *Headless) Changes() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.changes
}

// HeadlessManager serves a single Headless window that can be detached to
// simulate the primary window going away.
type HeadlessManager struct {
	mu     sync.Mutex
	window *Headless
}

// NewHeadlessManager returns a manager whose primary window is w. w may be nil.
func NewHeadlessManager(w *Headless) *HeadlessManager {
	return &HeadlessManager{window: w}
}

func (m *HeadlessManager) Primary() (Window, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.window == nil {
		return nil, false
	}
	return m.window, true
}

// Attach sets or replaces the primary window. Passing nil detaches it.
func (m *HeadlessManager) Attach(w *Headless) {
	m.mu.Lock()
	m.window = w
	m.mu.Unlock()
}
