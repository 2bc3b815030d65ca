package systems

import (
	"github.com/automoto/spaceman/shared/progress"
	"github.com/charmbracelet/log"
)

var progressBook *progress.Book

// InitPersistence opens the per-user save data and loads saved progress.
// Without it the game still runs; results are just not kept.
func InitPersistence(logger *log.Logger) error {
	b, err := progress.Open("spaceman", logger)
	if err != nil {
		logger.Warn("could not initialize persistence", "err", err)
		return err
	}
	if err := b.Load(); err != nil {
		logger.Warn("could not load progress", "err", err)
	}
	progressBook = b
	return nil
}

// UseProgress swaps the progress book, e.g. for a headless run.
func UseProgress(b *progress.Book) {
	progressBook = b
}

// CurrentProgress returns the saved progress, or nil when persistence is off.
func CurrentProgress() *progress.Progress {
	if progressBook == nil {
		return nil
	}
	p := progressBook.Progress()
	return &p
}

func recordClear(level string, coins int, seconds float64) bool {
	if progressBook == nil {
		return false
	}
	best, err := progressBook.RecordClear(level, coins, seconds)
	if err != nil {
		log.Warn("could not record level clear", "level", level, "err", err)
	}
	return best
}

func recordDeath(level string, coins int) {
	if progressBook == nil {
		return
	}
	if err := progressBook.RecordDeath(level, coins); err != nil {
		log.Warn("could not record death", "level", level, "err", err)
	}
}
