// Package diagnostics tracks frame timing and periodically logs it.
package diagnostics

import (
	"log/slog"
	"time"

	"github.com/plus3/bootstrap3d/ecs"
	"github.com/plus3/bootstrap3d/scene"
)

// HistoryFrames is how many frame times FrameStats keeps.
const HistoryFrames = 120

// FrameStats is a singleton holding recent frame timing.
type FrameStats struct {
	Frames uint64
	Last   time.Duration

	history [HistoryFrames]time.Duration
	next    int
	filled  int
	total   time.Duration
}

// Record appends one frame time.
func (s *FrameStats) Record(d time.Duration) {
	s.Frames++
	s.Last = d
	if s.filled == HistoryFrames {
		s.total -= s.history[s.next]
	} else {
		s.filled++
	}
	s.history[s.next] = d
	s.total += d
	s.next = (s.next + 1) % HistoryFrames
}

// Average is the mean over the recorded history.
func (s *FrameStats) Average() time.Duration {
	if s.filled == 0 {
		return 0
	}
	return s.total / time.Duration(s.filled)
}

// FPS derives frames per second from Average.
func (s *FrameStats) FPS() float64 {
	avg := s.Average()
	if avg <= 0 {
		return 0
	}
	return float64(time.Second) / float64(avg)
}

// History returns the recorded frame times in milliseconds, oldest first.
func (s *FrameStats) History() []float32 {
	out := make([]float32, 0, s.filled)
	start := (s.next - s.filled + HistoryFrames) % HistoryFrames
	for i := range s.filled {
		d := s.history[(start+i)%HistoryFrames]
		out = append(out, float32(d.Seconds()*1000))
	}
	return out
}

// FrameTimeSystem records every frame's delta into FrameStats.
type FrameTimeSystem struct {
	Stats ecs.Singleton[FrameStats]
}

func (s *FrameTimeSystem) Execute(frame *ecs.UpdateFrame) {
	if stats := s.Stats.Get(); stats != nil {
		stats.Record(frame.Delta())
	}
}

// LogSystem writes fps and frame time to Logger every Interval.
type LogSystem struct {
	Stats  ecs.Singleton[FrameStats]
	Logger *slog.Logger

	timer scene.Timer
}

// NewLogSystem logs through logger every interval. A nil logger uses the
// scene logger.
func NewLogSystem(interval time.Duration, logger *slog.Logger) *LogSystem {
	return &LogSystem{Logger: logger, timer: scene.NewTimer(interval, scene.Repeating)}
}

func (s *LogSystem) Execute(frame *ecs.UpdateFrame) {
	if !s.timer.Tick(frame.Delta()).JustFinished() {
		return
	}
	stats := s.Stats.Get()
	if stats == nil || stats.Frames == 0 {
		return
	}
	logger := s.Logger
	if logger == nil {
		logger = scene.Logger()
	}
	logger.Info("frame time",
		"fps", float64(int(stats.FPS()*10))/10,
		"avg", stats.Average().Round(time.Microsecond),
		"last", stats.Last.Round(time.Microsecond),
		"frames", stats.Frames,
	)
}

// Plugin registers the frame statistics and the frame-time log.
type Plugin struct {
	LogInterval time.Duration
	Logger      *slog.Logger
}

func (p Plugin) Build(scheduler *ecs.Scheduler) {
	interval := p.LogInterval
	if interval <= 0 {
		interval = 5 * time.Second
	}
	scheduler.Storage().AddSingleton(FrameStats{})
	scheduler.Register(&FrameTimeSystem{})
	scheduler.Register(NewLogSystem(interval, p.Logger))
}
