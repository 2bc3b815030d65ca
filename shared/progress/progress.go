// Package progress keeps the player's results between runs: banked coins,
// cleared levels and best clear times.
package progress

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
)

const itemKey = "progress"

// Store is the item storage progress is written to. *gdata.Manager
// satisfies it.
type Store interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// Progress is the saved record.
type Progress struct {
	Coins     int                `json:"coins"`
	Deaths    int                `json:"deaths"`
	Cleared   map[string]int     `json:"cleared"`   // level name -> times cleared
	BestTimes map[string]float64 `json:"bestTimes"` // level name -> seconds
}

// Book loads and updates progress in a Store.
type Book struct {
	store  Store
	logger *log.Logger
	data   Progress
}

// Open creates a Book backed by the per-user gdata storage for appName.
func Open(appName string, logger *log.Logger) (*Book, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open save data: %w", err)
	}
	return New(m, logger), nil
}

// New creates a Book over store with empty progress. Call Load to read what
// was saved.
func New(store Store, logger *log.Logger) *Book {
	if logger == nil {
		logger = log.Default()
	}
	return &Book{
		store:  store,
		logger: logger.WithPrefix("progress"),
		data:   empty(),
	}
}

func empty() Progress {
	return Progress{
		Cleared:   map[string]int{},
		BestTimes: map[string]float64{},
	}
}

// Load replaces the in-memory progress with the stored record. A missing
// record leaves empty progress and is not an error.
func (b *Book) Load() error {
	data, err := b.store.LoadItem(itemKey)
	if err != nil || len(data) == 0 {
		// gdata reports a missing item as an error on some backends
		b.data = empty()
		return nil
	}

	p := empty()
	if err := json.Unmarshal(data, &p); err != nil {
		b.logger.Warn("could not parse saved progress", "err", err)
		return fmt.Errorf("parse progress: %w", err)
	}
	if p.Cleared == nil {
		p.Cleared = map[string]int{}
	}
	if p.BestTimes == nil {
		p.BestTimes = map[string]float64{}
	}
	b.data = p
	return nil
}

// Progress returns a copy of the current record.
func (b *Book) Progress() Progress {
	out := Progress{
		Coins:     b.data.Coins,
		Deaths:    b.data.Deaths,
		Cleared:   make(map[string]int, len(b.data.Cleared)),
		BestTimes: make(map[string]float64, len(b.data.BestTimes)),
	}
	for k, v := range b.data.Cleared {
		out.Cleared[k] = v
	}
	for k, v := range b.data.BestTimes {
		out.BestTimes[k] = v
	}
	return out
}

// BestTime returns the fastest recorded clear of level.
func (b *Book) BestTime(level string) (float64, bool) {
	t, ok := b.data.BestTimes[level]
	return t, ok
}

// RecordClear banks coins and counts a clear of level, keeping seconds if it
// beats the best time. It reports whether seconds is a new best.
func (b *Book) RecordClear(level string, coins int, seconds float64) (bool, error) {
	b.data.Coins += coins
	b.data.Cleared[level]++

	best, ok := b.data.BestTimes[level]
	newBest := !ok || seconds < best
	if newBest {
		b.data.BestTimes[level] = seconds
	}

	b.logger.Info("level cleared", "level", level, "coins", coins, "seconds", seconds, "best", newBest)
	return newBest, b.save()
}

// RecordDeath banks the coins collected before dying.
func (b *Book) RecordDeath(level string, coins int) error {
	b.data.Coins += coins
	b.data.Deaths++
	b.logger.Info("player died", "level", level, "coins", coins)
	return b.save()
}

// Reset clears all progress.
func (b *Book) Reset() error {
	b.data = empty()
	return b.save()
}

func (b *Book) save() error {
	data, err := json.Marshal(b.data)
	if err != nil {
		return fmt.Errorf("serialize progress: %w", err)
	}
	if err := b.store.SaveItem(itemKey, data); err != nil {
		b.logger.Warn("could not save progress", "err", err)
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}
