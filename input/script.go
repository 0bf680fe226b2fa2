package input

import "sync"

// Script is a frame-indexed Keyboard and Mouse used for headless runs and
// tests. A key is down on every frame in [From, To).
type Script struct {
	mu     sync.Mutex
	frame  int
	holds  []Hold
	motion map[int][2]float32
}

// Hold keeps Key pressed from frame From up to, but excluding, frame To.
type Hold struct {
	Key      Key
	From, To int
}

// NewScript returns a script with the given key holds.
func NewScript(holds ...Hold) *Script {
	return &Script{holds: holds, motion: map[int][2]float32{}}
}

// Tap presses key for exactly one frame.
func (s *Script) Tap(key Key, frame int) *Script {
	return s.HoldKey(key, frame, frame+1)
}

// HoldKey presses key over [from, to).
func (s *Script) HoldKey(key Key, from, to int) *Script {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.holds = append(s.holds, Hold{Key: key, From: from, To: to})
	return s
}

// Move records mouse motion delivered on one frame.
func (s *Script) Move(frame int, dx, dy float32) *Script {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.motion == nil {
		s.motion = map[int][2]float32{}
	}
	m := s.motion[frame]
	s.motion[frame] = [2]float32{m[0] + dx, m[1] + dy}
	return s
}

// Advance moves the script to the next frame.
func (s *Script) Advance() {
	s.mu.Lock()
	s.frame++
	s.mu.Unlock()
}

// Frame returns the current frame index.
func (s *Script) Frame() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frame
}

func (s *Script) Pressed(key Key) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, h := range s.holds {
		if h.Key == key && s.frame >= h.From && s.frame < h.To {
			return true
		}
	}
	return false
}

func (s *Script) Delta() (dx, dy float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := s.motion[s.frame]
	return m[0], m[1]
}
