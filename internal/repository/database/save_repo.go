package database

import (
	"context"
	"database/sql"
	"regexp"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/iamasit07/lineup/internal/codec"
	"github.com/iamasit07/lineup/internal/domain"
)

// SaveRepo keeps one game record per slot in the saved_game table.
type SaveRepo struct {
	DB     *sql.DB
	driver string
	now    func() time.Time
	logger *zap.Logger
}

func NewSaveRepo(db *sql.DB, driver string, logger *zap.Logger) *SaveRepo {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SaveRepo{
		DB:     db,
		driver: driver,
		now:    time.Now,
		logger: logger.With(zap.String("component", "database"), zap.String("driver", driver)),
	}
}

var placeholder = regexp.MustCompile(`\$\d+`)

// rebind turns $N placeholders into ? for sqlite.
func (r *SaveRepo) rebind(query string) string {
	if r.driver != DriverSQLite {
		return query
	}
	return placeholder.ReplaceAllString(query, "?")
}

func (r *SaveRepo) Save(ctx context.Context, slot string, g *domain.Game) error {
	data, err := codec.Marshal(g)
	if err != nil {
		return err
	}

	query := r.rebind(`
	INSERT INTO saved_game (slot, document, updated_at)
	VALUES ($1, $2, $3)
	ON CONFLICT (slot) DO UPDATE SET
		document = EXCLUDED.document,
		updated_at = EXCLUDED.updated_at;
	`)
	if _, err := r.DB.ExecContext(ctx, query, slot, string(data), r.now().Unix()); err != nil {
		return errors.Wrapf(err, "failed to upsert save slot %q", slot)
	}

	r.logger.Debug("save slot written", zap.String("slot", slot), zap.Int("bytes", len(data)))
	return nil
}

func (r *SaveRepo) Load(ctx context.Context, slot string) (*domain.Game, error) {
	query := r.rebind(`SELECT document FROM saved_game WHERE slot = $1;`)

	var document string
	err := r.DB.QueryRowContext(ctx, query, slot).Scan(&document)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNoSavedGame
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read save slot %q", slot)
	}

	g, err := codec.Unmarshal([]byte(document))
	if err != nil {
		return nil, errors.Wrapf(err, "save slot %q", slot)
	}
	return g, nil
}

// UpdatedAt reports when the slot was last written.
func (r *SaveRepo) UpdatedAt(ctx context.Context, slot string) (time.Time, error) {
	var unix int64
	err := r.DB.QueryRowContext(ctx, r.rebind(`SELECT updated_at FROM saved_game WHERE slot = $1;`), slot).Scan(&unix)
	if err == sql.ErrNoRows {
		return time.Time{}, domain.ErrNoSavedGame
	}
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "failed to read save slot %q", slot)
	}
	return time.Unix(unix, 0), nil
}
