package persist

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/starshot/shooter/internal/world"
)

// RunRecord is one finished simulation run.
type RunRecord struct {
	ID              uuid.UUID
	StartedAt       time.Time
	EndedAt         time.Time
	Ticks           uint64
	LasersFired     int
	AsteroidsShot   int
	AsteroidsRammed int
	LivesLost       int
	FinalLives      uint8
	Profile         string
}

// NewRunRecord summarizes ws at the end of a run.
func NewRunRecord(id uuid.UUID, profile string, started, ended time.Time, ws *world.State) RunRecord {
	return RunRecord{
		ID:              id,
		StartedAt:       started,
		EndedAt:         ended,
		Ticks:           ws.Tick(),
		LasersFired:     ws.Stats.LasersFired,
		AsteroidsShot:   ws.Stats.AsteroidsShot,
		AsteroidsRammed: ws.Stats.AsteroidsRammed,
		LivesLost:       ws.Stats.LivesLost,
		FinalLives:      ws.Play.Lives(),
		Profile:         profile,
	}
}

// Duration is the wall-clock length of the run.
func (r RunRecord) Duration() time.Duration { return r.EndedAt.Sub(r.StartedAt) }

type RunRepo struct {
	db *DB
}

func NewRunRepo(db *DB) *RunRepo {
	return &RunRepo{db: db}
}

func (r *RunRepo) Insert(ctx context.Context, rec RunRecord) error {
	_, err := r.db.Pool.Exec(ctx,
		`INSERT INTO runs (id, started_at, ended_at, ticks, lasers_fired, asteroids_shot,
		                   asteroids_rammed, lives_lost, final_lives, profile)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		rec.ID.String(), rec.StartedAt, rec.EndedAt, int64(rec.Ticks), rec.LasersFired, rec.AsteroidsShot,
		rec.AsteroidsRammed, rec.LivesLost, int16(rec.FinalLives), rec.Profile,
	)
	if err != nil {
		return fmt.Errorf("insert run %s: %w", rec.ID, err)
	}
	return nil
}

// Recent returns the latest runs, newest first.
func (r *RunRepo) Recent(ctx context.Context, limit int) ([]RunRecord, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT id::text, started_at, ended_at, ticks, lasers_fired, asteroids_shot,
		        asteroids_rammed, lives_lost, final_lives, profile
		 FROM runs ORDER BY started_at DESC LIMIT $1`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		var (
			rec   RunRecord
			id    string
			ticks int64
			lives int16
		)
		if err := rows.Scan(
			&id, &rec.StartedAt, &rec.EndedAt, &ticks, &rec.LasersFired, &rec.AsteroidsShot,
			&rec.AsteroidsRammed, &rec.LivesLost, &lives, &rec.Profile,
		); err != nil {
			return nil, err
		}
		if rec.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parse run id %q: %w", id, err)
		}
		rec.Ticks = uint64(ticks)
		rec.FinalLives = uint8(lives)
		out = append(out, rec)
	}
	return out, rows.Err()
}
