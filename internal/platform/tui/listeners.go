package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilestack/internal/config"
	"github.com/vovakirdan/tilestack/internal/games/tilestack"
	"github.com/vovakirdan/tilestack/internal/storage"
)

// NewGame builds a game from configuration, starting at level (0 keeps the
// configured start level). Engine events go to logger when it is non-nil,
// and finished games are recorded in store when it is non-nil.
func NewGame(cfg config.TileStackConfig, level int, store *storage.Store, logger *log.Logger) (*tilestack.Game, error) {
	if level > 0 {
		cfg = cfg.WithStartLevel(level)
	}

	catalog, err := tilestack.CatalogFromConfig(cfg.Icons)
	if err != nil {
		return nil, err
	}

	game := tilestack.New(tilestack.RulesFromConfig(cfg), catalog)
	if logger != nil {
		game.Subscribe(EventLogger(logger))
	}
	if store != nil {
		game.Subscribe(ResultSaver(game, store, logger))
	}
	return game, nil
}

// EventLogger returns a listener that logs engine events.
// Clicks are logged at debug level, everything else at info.
func EventLogger(logger *log.Logger) tilestack.Listener {
	return func(e tilestack.Event) {
		kv := []any{"level", e.Level, "score", e.Score}
		if e.Delta != 0 {
			kv = append(kv, "delta", e.Delta)
		}
		if len(e.Tiles) > 0 {
			kv = append(kv, "tiles", e.Tiles)
		}

		switch e.Kind {
		case tilestack.EventClick:
			logger.Debug("click", append(kv, "icon", e.Icon)...)
		case tilestack.EventWin, tilestack.EventLose:
			logger.Info("game over", append(kv, "result", e.Kind.String())...)
		default:
			logger.Info(e.Kind.String(), kv...)
		}
	}
}

// ResultSaver returns a listener that stores the result of every finished game.
func ResultSaver(game *tilestack.Game, store *storage.Store, logger *log.Logger) tilestack.Listener {
	return func(e tilestack.Event) {
		if e.Kind != tilestack.EventWin && e.Kind != tilestack.EventLose {
			return
		}

		_, err := store.SaveResult(storage.Result{
			GameID:    tilestack.GameID,
			Score:     e.Score,
			Level:     e.Level,
			Won:       e.Kind == tilestack.EventWin,
			ElapsedMs: game.Snapshot().ElapsedMs,
		})
		if err != nil && logger != nil {
			logger.Error("could not save result", "error", err)
		}
	}
}
