package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite" // Pure Go SQLite driver, no CGO required

	"github.com/mcoot/volleydraft-go/internal/model"
	"github.com/mcoot/volleydraft-go/internal/storage"
)

// Storage is a SQLite-backed implementation of the storage interface
type Storage struct {
	db *sql.DB
}

// New creates a new SQLite storage instance, creating the schema if needed.
// path is the database file path (e.g. "./data/volleydraft.db").
func New(path string) (*Storage, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=busy_timeout(5000)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// SQLite supports a single writer; funnel everything through one
	// connection so upserts serialize instead of hitting SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := createTables(db); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return &Storage{db: db}, nil
}

// NewWithDB creates a SQLite storage with an existing handle (for testing)
func NewWithDB(db *sql.DB) (*Storage, error) {
	if err := createTables(db); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}
	return &Storage{db: db}, nil
}

// Close closes the database handle
func (s *Storage) Close() error {
	return s.db.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func createTables(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS players (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		jersey_number INTEGER NOT NULL,
		position TEXT NOT NULL,
		team_name TEXT NOT NULL,
		credit_cost INTEGER NOT NULL,
		bio TEXT NOT NULL DEFAULT '',
		image_base64 TEXT NOT NULL DEFAULT '',
		matches INTEGER NOT NULL DEFAULT 0,
		sets INTEGER NOT NULL DEFAULT 0,
		kills_per_set REAL NOT NULL DEFAULT 0,
		digs_per_set REAL NOT NULL DEFAULT 0,
		blocks_per_set REAL NOT NULL DEFAULT 0,
		aces_per_set REAL NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_players_position ON players(position);
	CREATE INDEX IF NOT EXISTS idx_players_credit_cost ON players(credit_cost);

	CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_users_email ON users(email);

	CREATE TABLE IF NOT EXISTS rosters (
		owner_id TEXT PRIMARY KEY,
		setter TEXT NOT NULL DEFAULT '',
		outside_hitter TEXT NOT NULL DEFAULT '',
		opposite_hitter TEXT NOT NULL DEFAULT '',
		middle_blocker TEXT NOT NULL DEFAULT '',
		libero TEXT NOT NULL DEFAULT '',
		defensive_specialist TEXT NOT NULL DEFAULT '',
		credits_used INTEGER NOT NULL,
		remaining INTEGER NOT NULL,
		updated_at DATETIME NOT NULL
	);
	`
	_, err := db.Exec(query)
	return err
}

const playerColumns = `id, name, jersey_number, position, team_name, credit_cost, bio, image_base64,
	matches, sets, kills_per_set, digs_per_set, blocks_per_set, aces_per_set, created_at`

// scanPlayer reads one player row in playerColumns order
func scanPlayer(row interface{ Scan(...any) error }) (*model.Player, error) {
	var p model.Player
	err := row.Scan(
		&p.ID, &p.Name, &p.JerseyNumber, &p.Position, &p.TeamName, &p.CreditCost, &p.Bio, &p.ImageBase64,
		&p.Stats.Matches, &p.Stats.Sets, &p.Stats.KillsPerSet, &p.Stats.DigsPerSet,
		&p.Stats.BlocksPerSet, &p.Stats.AcesPerSet, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Player catalog operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	query := `
		INSERT INTO players (` + playerColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			jersey_number = excluded.jersey_number,
			position = excluded.position,
			team_name = excluded.team_name,
			credit_cost = excluded.credit_cost,
			bio = excluded.bio,
			image_base64 = excluded.image_base64,
			matches = excluded.matches,
			sets = excluded.sets,
			kills_per_set = excluded.kills_per_set,
			digs_per_set = excluded.digs_per_set,
			blocks_per_set = excluded.blocks_per_set,
			aces_per_set = excluded.aces_per_set,
			created_at = excluded.created_at`

	_, err := s.db.ExecContext(ctx, query, playerArgs(player)...)
	if err != nil {
		return fmt.Errorf("failed to save player: %w", err)
	}
	return nil
}

func (s *Storage) SavePlayers(ctx context.Context, players []*model.Player) error {
	if len(players) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO players (`+playerColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			jersey_number = excluded.jersey_number,
			position = excluded.position,
			team_name = excluded.team_name,
			credit_cost = excluded.credit_cost,
			bio = excluded.bio,
			image_base64 = excluded.image_base64,
			matches = excluded.matches,
			sets = excluded.sets,
			kills_per_set = excluded.kills_per_set,
			digs_per_set = excluded.digs_per_set,
			blocks_per_set = excluded.blocks_per_set,
			aces_per_set = excluded.aces_per_set,
			created_at = excluded.created_at`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, player := range players {
		if _, err := stmt.ExecContext(ctx, playerArgs(player)...); err != nil {
			return fmt.Errorf("failed to save player %s: %w", player.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func playerArgs(p *model.Player) []any {
	return []any{
		string(p.ID), p.Name, p.JerseyNumber, string(p.Position), p.TeamName, p.CreditCost, p.Bio, p.ImageBase64,
		p.Stats.Matches, p.Stats.Sets, p.Stats.KillsPerSet, p.Stats.DigsPerSet,
		p.Stats.BlocksPerSet, p.Stats.AcesPerSet, p.CreatedAt,
	}
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE id = ?`

	player, err := scanPlayer(s.db.QueryRowContext(ctx, query, string(id)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return player, nil
}

func (s *Storage) GetPlayersByIDs(ctx context.Context, ids []model.PlayerID) ([]*model.Player, error) {
	if len(ids) == 0 {
		return []*model.Player{}, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = string(id)
	}

	query := `SELECT ` + playerColumns + ` FROM players WHERE id IN (` + strings.Join(placeholders, ", ") + `)`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}
	defer func() { _ = rows.Close() }()

	// Missing ids simply produce no rows; they are omitted, not an error
	players := make([]*model.Player, 0, len(ids))
	for rows.Next() {
		player, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		players = append(players, player)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read players: %w", err)
	}
	return players, nil
}

func (s *Storage) ListPlayers(ctx context.Context, filter model.PlayerFilter) ([]*model.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players`

	var conds []string
	var args []any
	if filter.Position != "" {
		conds = append(conds, "position = ?")
		args = append(args, string(filter.Position))
	}
	if filter.Search != "" {
		// instr avoids LIKE wildcard injection from the search text
		conds = append(conds, "instr(lower(name), lower(?)) > 0")
		args = append(args, filter.Search)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	if filter.SortBy == model.SortByCreditCost {
		query += " ORDER BY credit_cost ASC"
	} else {
		query += " ORDER BY name ASC"
	}

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var players []*model.Player
	for rows.Next() {
		player, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		players = append(players, player)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read players: %w", err)
	}
	return players, nil
}

func (s *Storage) CountPlayers(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM players`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count players: %w", err)
	}
	return count, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM players WHERE id = ?`, string(id)); err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}
	return nil
}

// User operations

func (s *Storage) SaveUser(ctx context.Context, user *model.User) error {
	query := `
		INSERT INTO users (id, email, name, password_hash, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			email = excluded.email,
			name = excluded.name,
			password_hash = excluded.password_hash,
			created_at = excluded.created_at`

	_, err := s.db.ExecContext(ctx, query, string(user.ID), user.Email, user.Name, user.PasswordHash, user.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	query := `SELECT id, email, name, password_hash, created_at FROM users WHERE id = ?`

	var user model.User
	err := s.db.QueryRowContext(ctx, query, string(id)).Scan(
		&user.ID, &user.Email, &user.Name, &user.PasswordHash, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT id, email, name, password_hash, created_at FROM users WHERE email = ?`

	var user model.User
	err := s.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID, &user.Email, &user.Name, &user.PasswordHash, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

// Roster operations

func (s *Storage) UpsertRoster(ctx context.Context, roster *model.Roster) error {
	// A single upsert statement replaces every field of the owner's row
	// atomically, giving per-owner last-write-wins.
	query := `
		INSERT INTO rosters (owner_id, setter, outside_hitter, opposite_hitter,
			middle_blocker, libero, defensive_specialist, credits_used, remaining, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(owner_id) DO UPDATE SET
			setter = excluded.setter,
			outside_hitter = excluded.outside_hitter,
			opposite_hitter = excluded.opposite_hitter,
			middle_blocker = excluded.middle_blocker,
			libero = excluded.libero,
			defensive_specialist = excluded.defensive_specialist,
			credits_used = excluded.credits_used,
			remaining = excluded.remaining,
			updated_at = excluded.updated_at`

	_, err := s.db.ExecContext(ctx, query,
		string(roster.OwnerID),
		string(roster.Slots[model.PositionSetter]),
		string(roster.Slots[model.PositionOutsideHitter]),
		string(roster.Slots[model.PositionOppositeHitter]),
		string(roster.Slots[model.PositionMiddleBlocker]),
		string(roster.Slots[model.PositionLibero]),
		string(roster.Slots[model.PositionDefensiveSpecialist]),
		roster.CreditsUsed,
		roster.Remaining,
		roster.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert roster: %w", err)
	}
	return nil
}

func (s *Storage) GetRoster(ctx context.Context, ownerID model.UserID) (*model.Roster, error) {
	query := `
		SELECT owner_id, setter, outside_hitter, opposite_hitter,
			middle_blocker, libero, defensive_specialist, credits_used, remaining, updated_at
		FROM rosters WHERE owner_id = ?`

	var roster model.Roster
	var setter, outsideHitter, oppositeHitter, middleBlocker, libero, defensiveSpecialist string
	err := s.db.QueryRowContext(ctx, query, string(ownerID)).Scan(
		&roster.OwnerID,
		&setter, &outsideHitter, &oppositeHitter, &middleBlocker, &libero, &defensiveSpecialist,
		&roster.CreditsUsed, &roster.Remaining, &roster.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrRosterNotFound
		}
		return nil, fmt.Errorf("failed to get roster: %w", err)
	}

	roster.Slots = make(map[model.Position]model.PlayerID)
	for pos, id := range map[model.Position]string{
		model.PositionSetter:              setter,
		model.PositionOutsideHitter:       outsideHitter,
		model.PositionOppositeHitter:      oppositeHitter,
		model.PositionMiddleBlocker:       middleBlocker,
		model.PositionLibero:              libero,
		model.PositionDefensiveSpecialist: defensiveSpecialist,
	} {
		if id != "" {
			roster.Slots[pos] = model.PlayerID(id)
		}
	}
	return &roster, nil
}
