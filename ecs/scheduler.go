package ecs

import (
	"context"
	"reflect"
	"time"
)

// Stage groups systems by when they run.
type Stage int

const (
	// Startup systems run exactly once, before the first update frame.
	Startup Stage = iota
	// Update systems run every frame in registration order.
	Update
)

func (s Stage) String() string {
	switch s {
	case Startup:
		return "Startup"
	case Update:
		return "Update"
	default:
		return "Unknown"
	}
}

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Frames          uint64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	Stage          Stage
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

func (st *systemStatsInternal) record(d time.Duration) {
	st.executionCount++
	st.lastDuration = d
	st.totalDuration += d
	if d < st.minDuration {
		st.minDuration = d
	}
	if d > st.maxDuration {
		st.maxDuration = d
	}
}

type storageBinder interface {
	Init(storage *Storage)
}

type queryExecutor interface {
	Execute()
}

type registeredSystem struct {
	system  System
	stage   Stage
	queries []queryExecutor
	stats   *systemStatsInternal
}

// Scheduler manages and executes systems in order.
type Scheduler struct {
	storage *Storage
	startup []*registeredSystem
	update  []*registeredSystem
	started bool
	frames  uint64
}

// NewScheduler creates a new scheduler for the given storage.
func NewScheduler(storage *Storage) *Scheduler {
	return &Scheduler{storage: storage}
}

// Storage returns the storage the scheduler drives.
func (s *Scheduler) Storage() *Storage {
	return s.storage
}

// Register adds an update system and initializes its Query and Singleton fields.
func (s *Scheduler) Register(system System) {
	s.update = append(s.update, s.bind(system, Update))
}

// RegisterStartup adds a system that runs once before the first update frame.
// Registering after startup has already run panics.
func (s *Scheduler) RegisterStartup(system System) {
	if s.started {
		panic("startup system registered after startup ran")
	}
	s.startup = append(s.startup, s.bind(system, Startup))
}

func (s *Scheduler) bind(system System, stage Stage) *registeredSystem {
	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}
	name := systemType.Name()
	if named, ok := system.(NamedSystem); ok {
		name = named.SystemName()
	} else if name == "" {
		name = systemType.String()
	}

	return &registeredSystem{
		system:  system,
		stage:   stage,
		queries: s.initializeFields(system),
		stats: &systemStatsInternal{
			name:        name,
			minDuration: time.Duration(1<<63 - 1),
		},
	}
}

// initializeFields binds every exported Query/Singleton field of a struct
// system to the storage and returns the queries to execute before each run.
func (s *Scheduler) initializeFields(system System) []queryExecutor {
	systemValue := reflect.ValueOf(system)
	if systemValue.Kind() != reflect.Ptr || systemValue.Elem().Kind() != reflect.Struct {
		return nil
	}
	systemValue = systemValue.Elem()

	var queries []queryExecutor
	for i := 0; i < systemValue.NumField(); i++ {
		field := systemValue.Field(i)
		if !field.CanSet() || field.Kind() != reflect.Struct {
			continue
		}

		binder, ok := field.Addr().Interface().(storageBinder)
		if !ok {
			continue
		}
		binder.Init(s.storage)

		if q, ok := binder.(queryExecutor); ok {
			queries = append(queries, q)
		}
	}
	return queries
}

func (s *Scheduler) runStage(systems []*registeredSystem, frame *UpdateFrame) {
	for _, rs := range systems {
		for _, q := range rs.queries {
			q.Execute()
		}

		start := time.Now()
		rs.system.Execute(frame)
		rs.stats.record(time.Since(start))
	}

	frame.Commands.Flush(s.storage)
}

// Startup runs the startup stage if it has not run yet. Once calls it
// implicitly, so calling it directly is only needed to inspect the world
// before the first frame.
func (s *Scheduler) Startup() {
	if s.started {
		return
	}
	s.started = true
	s.runStage(s.startup, newUpdateFrame(0, s.storage, Startup, 0))
}

// Started reports whether the startup stage has run.
func (s *Scheduler) Started() bool {
	return s.started
}

// Once executes all update systems once with the given delta time in seconds.
func (s *Scheduler) Once(dt float64) {
	s.Startup()
	s.frames++
	s.runStage(s.update, newUpdateFrame(dt, s.storage, Update, s.frames))
}

// Run executes all systems repeatedly at the given interval until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Once(dt)
		}
	}
}

// Frames returns the number of update frames executed.
func (s *Scheduler) Frames() uint64 {
	return s.frames
}

// GetStats returns statistics about system execution, startup systems first.
func (s *Scheduler) GetStats() *SchedulerStats {
	all := make([]*registeredSystem, 0, len(s.startup)+len(s.update))
	all = append(all, s.startup...)
	all = append(all, s.update...)

	stats := &SchedulerStats{
		SystemCount: len(all),
		Frames:      s.frames,
		Systems:     make([]SystemStats, len(all)),
	}

	for i, rs := range all {
		internal := rs.stats
		avgDuration := time.Duration(0)
		minDuration := internal.minDuration
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		} else {
			minDuration = 0
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			Stage:          rs.stage,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		stats.TotalExecutions += internal.executionCount
	}

	return stats
}
