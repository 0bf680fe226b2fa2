package scene

import "time"

// TimerMode selects whether a Timer stops or wraps when it completes.
type TimerMode int

const (
	Once TimerMode = iota
	Repeating
)

// Timer counts frame deltas towards a duration. Time is kept as an integer
// duration, so many small ticks add up exactly and never run backwards.
type Timer struct {
	duration              time.Duration
	elapsed               time.Duration
	mode                  TimerMode
	finished              bool
	paused                bool
	timesFinishedThisTick uint32
}

// NewTimer creates a timer that completes after d.
func NewTimer(d time.Duration, mode TimerMode) Timer {
	return Timer{duration: d, mode: mode}
}

// Tick advances the timer by delta. Negative deltas are ignored. A repeating
// timer carries the leftover past the period into the next one.
func (t *Timer) Tick(delta time.Duration) *Timer {
	if t.paused || delta < 0 {
		t.timesFinishedThisTick = 0
		if t.mode == Repeating {
			t.finished = false
		}
		return t
	}

	if t.mode != Repeating && t.finished {
		t.timesFinishedThisTick = 0
		return t
	}

	t.elapsed += delta
	if t.elapsed < t.duration {
		t.finished = false
		t.timesFinishedThisTick = 0
		return t
	}

	t.finished = true
	if t.mode == Repeating {
		if t.duration <= 0 {
			t.timesFinishedThisTick = 1
			t.elapsed = 0
			return t
		}
		t.timesFinishedThisTick = uint32(t.elapsed / t.duration)
		t.elapsed %= t.duration
		return t
	}

	t.timesFinishedThisTick = 1
	t.elapsed = t.duration
	return t
}

// JustFinished reports whether the last Tick completed at least one period.
func (t *Timer) JustFinished() bool {
	return t.timesFinishedThisTick > 0
}

// Finished reports whether the timer has completed. For a repeating timer
// this equals JustFinished.
func (t *Timer) Finished() bool {
	return t.finished
}

// TimesFinishedThisTick is the number of periods the last Tick covered.
// It exceeds 1 only when a single delta spans more than a whole period.
func (t *Timer) TimesFinishedThisTick() uint32 {
	return t.timesFinishedThisTick
}

// Duration returns the length of one period.
func (t *Timer) Duration() time.Duration { return t.duration }

// Elapsed returns the time accumulated in the current period.
func (t *Timer) Elapsed() time.Duration { return t.elapsed }

// Mode reports whether the timer repeats.
func (t *Timer) Mode() TimerMode { return t.mode }

// Paused reports whether Tick is currently ignored.
func (t *Timer) Paused() bool { return t.paused }

// Pause stops the timer from advancing until Unpause.
func (t *Timer) Pause() { t.paused = true }

// Unpause lets Tick advance the timer again.
func (t *Timer) Unpause() { t.paused = false }

// Remaining returns the time until the current period completes.
func (t *Timer) Remaining() time.Duration {
	return t.duration - t.elapsed
}

// Fraction returns elapsed/duration in [0, 1].
func (t *Timer) Fraction() float64 {
	if t.duration <= 0 {
		return 1
	}
	return float64(t.elapsed) / float64(t.duration)
}

// Reset rewinds the timer to zero.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
	t.timesFinishedThisTick = 0
}

// DiagnosticTimer gates the diagnostic reporter. It is a singleton written
// only by DiagnosticReporter.
type DiagnosticTimer struct {
	Timer
}

// DefaultDiagnosticPeriod is how often tagged positions are reported.
const DefaultDiagnosticPeriod = 2 * time.Second

// NewDiagnosticTimer creates a repeating timer with the given period.
func NewDiagnosticTimer(period time.Duration) DiagnosticTimer {
	return DiagnosticTimer{Timer: NewTimer(period, Repeating)}
}
