package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Run is one recorded play-through: everything needed to replay it
// deterministically.
type Run struct {
	ID        string // UUID assigned on save
	GameID    string
	Seed      int64
	TickRate  int
	Config    []byte   // YAML snapshot of the game config
	Inputs    []uint16 // One input mask per Step call
	Score     int
	Ticks     int
	CreatedAt time.Time
}

// SaveRun records a run and returns its ID. An empty ID is filled with a
// new UUID.
func (s *Store) SaveRun(run Run) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}

	inputs, err := EncodeInputs(run.Inputs)
	if err != nil {
		return "", err
	}

	_, err = s.db.Exec(
		`INSERT INTO runs (id, game_id, seed, tick_rate, config, inputs, score, ticks)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.GameID, run.Seed, run.TickRate, run.Config, inputs, run.Score, run.Ticks,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}

	return run.ID, nil
}

// likeEscaper makes user input match literally inside a LIKE pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// RunByID retrieves a run with its config and inputs.
// Returns nil if no run has that ID. A unique ID prefix is accepted.
func (s *Store) RunByID(id string) (*Run, error) {
	if id == "" {
		return nil, nil
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, seed, tick_rate, config, inputs, score, ticks, created_at
		 FROM runs
		 WHERE id = ? OR id LIKE ? || '%' ESCAPE '\'
		 LIMIT 2`,
		id, likeEscaper.Replace(id),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	defer rows.Close()

	var found []Run
	for rows.Next() {
		var run Run
		var inputs []byte
		var createdAt any
		if err := rows.Scan(&run.ID, &run.GameID, &run.Seed, &run.TickRate,
			&run.Config, &inputs, &run.Score, &run.Ticks, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		if run.Inputs, err = DecodeInputs(inputs); err != nil {
			return nil, err
		}
		run.CreatedAt = parseTime(createdAt)

		// An exact match wins over prefix matches
		if run.ID == id {
			return &run, nil
		}
		found = append(found, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	switch len(found) {
	case 0:
		return nil, nil
	case 1:
		return &found[0], nil
	default:
		return nil, fmt.Errorf("storage: run ID prefix %q is ambiguous", id)
	}
}

// RecentRuns lists the most recent runs, newest first, without config or
// inputs. An empty gameID lists every variant.
func (s *Store) RecentRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, seed, tick_rate, score, ticks, created_at
		 FROM runs
		 WHERE ? = '' OR game_id = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var createdAt any
		if err := rows.Scan(&run.ID, &run.GameID, &run.Seed, &run.TickRate,
			&run.Score, &run.Ticks, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		run.CreatedAt = parseTime(createdAt)
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// DeleteRun removes a run. Deleting an unknown ID is not an error.
func (s *Store) DeleteRun(id string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete run: %w", err)
	}
	return nil
}

// CountRuns returns how many runs are recorded for gameID, or for all
// variants when gameID is empty.
func (s *Store) CountRuns(gameID string) (int, error) {
	var n int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM runs WHERE ? = '' OR game_id = ?",
		gameID, gameID,
	).Scan(&n)
	if err != nil && err != sql.ErrNoRows {
		return 0, fmt.Errorf("storage: cannot count runs: %w", err)
	}
	return n, nil
}
