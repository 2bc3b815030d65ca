package sim

import (
	"context"
	"errors"
	"time"

	"github.com/automoto/spaceman/actors"
	"github.com/automoto/spaceman/shared/gamemath"
	"github.com/automoto/spaceman/shared/leveldata"
	"github.com/automoto/spaceman/telemetry"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
)

// Outcome is why a run stopped.
type Outcome int

const (
	OutcomeFrames   Outcome = iota // ran every requested frame
	OutcomeComplete                // reached the end phase
	OutcomeDied                    // the player finished dying
	OutcomeStopped                 // cancelled
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFrames:
		return "frames"
	case OutcomeComplete:
		return "complete"
	case OutcomeDied:
		return "died"
	case OutcomeStopped:
		return "stopped"
	}
	return "unknown"
}

// Options configure a run.
type Options struct {
	Level  *leveldata.Level
	Frames int
	Seed   int64
	Script *Script

	// TickRate paces the run in real time at this many ticks per second, as
	// a live game loop would. Zero runs as fast as possible.
	TickRate int
	// Step is the simulated seconds per tick. Zero means 1/60.
	Step float64

	// Window is the telemetry window in frames; Output may be nil.
	Window int
	Output *telemetry.Output

	Logger *log.Logger
}

// Result summarises a finished run.
type Result struct {
	Outcome    Outcome
	Frames     int
	SimSeconds float64
	Coins      int
	KilledBy   string
	Player     gamemath.Vec2
	Windows    []telemetry.WindowStats
}

// Runner steps one level session.
type Runner struct {
	opts      Options
	session   *actors.Session
	input     *Input
	collector *telemetry.Collector
	logger    *log.Logger
	stopChan  chan struct{}
}

// NewRunner loads opts.Level into a fresh world.
func NewRunner(opts Options) (*Runner, error) {
	if opts.Level == nil {
		return nil, errors.New("no level to run")
	}
	if opts.Step <= 0 {
		opts.Step = 1.0 / 60.0
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	session, err := actors.LoadLevel(donburi.NewWorld(), opts.Level, logger, opts.Seed)
	if err != nil {
		return nil, err
	}

	return &Runner{
		opts:      opts,
		session:   session,
		input:     NewInput(opts.Script),
		collector: telemetry.NewCollector(opts.Window),
		logger:    logger.WithPrefix("sim"),
		stopChan:  make(chan struct{}),
	}, nil
}

// Session exposes the running level.
func (r *Runner) Session() *actors.Session {
	return r.session
}

// Stop ends a paced run at the next tick. Call it at most once.
func (r *Runner) Stop() {
	close(r.stopChan)
}

// Run steps until the frame budget runs out, the level ends or ctx is done.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	frames := r.opts.Frames
	if frames <= 0 {
		frames = r.opts.Script.Len()
	}

	var tick <-chan time.Time
	if r.opts.TickRate > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(r.opts.TickRate))
		defer ticker.Stop()
		tick = ticker.C
	}

	r.logger.Info("run started",
		"level", r.opts.Level.Name,
		"frames", frames,
		"tick_rate", r.opts.TickRate,
		"seed", r.opts.Seed,
	)

	res := Result{Outcome: OutcomeFrames}
	for res.Frames < frames {
		if tick != nil {
			select {
			case <-ctx.Done():
				res.Outcome = OutcomeStopped
			case <-r.stopChan:
				res.Outcome = OutcomeStopped
			case <-tick:
			}
		} else {
			select {
			case <-ctx.Done():
				res.Outcome = OutcomeStopped
			case <-r.stopChan:
				res.Outcome = OutcomeStopped
			default:
			}
		}
		if res.Outcome == OutcomeStopped {
			break
		}

		if err := r.tick(&res); err != nil {
			return res, err
		}

		if r.session.Complete() {
			res.Outcome = OutcomeComplete
			break
		}
		if r.session.PlayerDead() {
			res.Outcome = OutcomeDied
			break
		}
	}

	if ws, ok := r.collector.Flush(); ok {
		if err := r.emit(&res, ws); err != nil {
			return res, err
		}
	}

	res.Coins = r.session.Coins()
	res.KilledBy = r.session.KilledBy()
	if p := r.session.Player(); p != nil {
		res.Player = p.Position()
	}

	r.logger.Info("run finished",
		"outcome", res.Outcome,
		"frames", res.Frames,
		"seconds", res.SimSeconds,
		"coins", res.Coins,
	)
	return res, nil
}

func (r *Runner) tick(res *Result) error {
	w := r.session.World

	r.input.Advance()
	start := time.Now()
	w.ProcessInput(r.input)
	res.SimSeconds += w.Update(r.opts.Step)
	elapsed := time.Since(start)
	res.Frames++

	if ws, ok := r.collector.Record(w.LastStats(), elapsed); ok {
		return r.emit(res, ws)
	}
	return nil
}

func (r *Runner) emit(res *Result, ws telemetry.WindowStats) error {
	res.Windows = append(res.Windows, ws)
	ws.Log(r.logger)
	return r.opts.Output.Write(ws)
}
