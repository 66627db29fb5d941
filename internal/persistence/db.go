// Package persistence provides SQLite-based snapshot storage for the
// simulation. The simulation core treats it as an opaque boundary: one call
// saves the whole weekly snapshot, one call restores it.
package persistence

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/touchline/internal/game"
)

// schemaVersion is bumped whenever the stored shape changes; LoadSnapshot
// migrates older snapshots once at load time.
const schemaVersion = 1

// DB wraps a SQLite connection for snapshot persistence.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS players (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		age INTEGER NOT NULL,
		country TEXT NOT NULL,
		current_ability INTEGER NOT NULL,
		potential_ability INTEGER NOT NULL,
		form REAL NOT NULL,
		wage INTEGER NOT NULL,
		club_id INTEGER NOT NULL,
		contract_expiry INTEGER NOT NULL,
		retired INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS clubs (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		league_id INTEGER NOT NULL,
		country TEXT NOT NULL,
		reputation INTEGER NOT NULL,
		budget INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS leagues (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		country TEXT NOT NULL,
		tier INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS contacts (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		type INTEGER NOT NULL,
		country TEXT NOT NULL,
		relationship INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS fixtures (
		id INTEGER PRIMARY KEY,
		week INTEGER NOT NULL,
		home_id INTEGER NOT NULL,
		away_id INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS free_agents (
		player_id INTEGER PRIMARY KEY,
		data TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS rivals (
		id INTEGER PRIMARY KEY,
		data TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS scout (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		data TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_players_club ON players(club_id);
	CREATE INDEX IF NOT EXISTS idx_fixtures_week ON fixtures(week);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveSnapshot writes the whole snapshot (full replace) in one transaction.
func (db *DB) SaveSnapshot(state *game.GameState) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"players", "clubs", "leagues", "contacts", "fixtures", "free_agents", "rivals", "scout"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for _, p := range state.Players {
		retired := 0
		if p.Retired {
			retired = 1
		}
		_, err := tx.Exec(`INSERT INTO players
			(id, name, age, country, current_ability, potential_ability, form, wage, club_id, contract_expiry, retired)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID, p.Name, p.Age, p.Country, p.CurrentAbility, p.PotentialAbility,
			p.Form, p.Wage, p.ClubID, p.ContractExpiry, retired)
		if err != nil {
			return fmt.Errorf("insert player %d: %w", p.ID, err)
		}
	}

	for _, c := range state.Clubs {
		_, err := tx.Exec(`INSERT INTO clubs (id, name, league_id, country, reputation, budget)
			VALUES (?, ?, ?, ?, ?, ?)`,
			c.ID, c.Name, c.LeagueID, c.Country, c.Reputation, c.Budget)
		if err != nil {
			return fmt.Errorf("insert club %d: %w", c.ID, err)
		}
	}

	for _, l := range state.Leagues {
		_, err := tx.Exec(`INSERT INTO leagues (id, name, country, tier) VALUES (?, ?, ?, ?)`,
			l.ID, l.Name, l.Country, l.Tier)
		if err != nil {
			return fmt.Errorf("insert league %d: %w", l.ID, err)
		}
	}

	for _, c := range state.Contacts {
		_, err := tx.Exec(`INSERT INTO contacts (id, name, type, country, relationship)
			VALUES (?, ?, ?, ?, ?)`,
			c.ID, c.Name, c.Type, c.Country, c.Relationship)
		if err != nil {
			return fmt.Errorf("insert contact %d: %w", c.ID, err)
		}
	}

	for _, f := range state.Fixtures {
		_, err := tx.Exec(`INSERT INTO fixtures (id, week, home_id, away_id) VALUES (?, ?, ?, ?)`,
			f.ID, f.Week, f.HomeID, f.AwayID)
		if err != nil {
			return fmt.Errorf("insert fixture %d: %w", f.ID, err)
		}
	}

	for _, a := range state.Pool.Agents {
		blob, err := json.Marshal(a)
		if err != nil {
			return fmt.Errorf("marshal agent %d: %w", a.PlayerID, err)
		}
		if _, err := tx.Exec(`INSERT INTO free_agents (player_id, data) VALUES (?, ?)`, a.PlayerID, string(blob)); err != nil {
			return fmt.Errorf("insert agent %d: %w", a.PlayerID, err)
		}
	}

	for _, rv := range state.Rivals {
		blob, err := json.Marshal(rv)
		if err != nil {
			return fmt.Errorf("marshal rival %d: %w", rv.ID, err)
		}
		if _, err := tx.Exec(`INSERT INTO rivals (id, data) VALUES (?, ?)`, rv.ID, string(blob)); err != nil {
			return fmt.Errorf("insert rival %d: %w", rv.ID, err)
		}
	}

	scoutBlob, err := json.Marshal(state.Scout)
	if err != nil {
		return fmt.Errorf("marshal scout: %w", err)
	}
	if _, err := tx.Exec(`INSERT INTO scout (id, data) VALUES (1, ?)`, string(scoutBlob)); err != nil {
		return fmt.Errorf("insert scout: %w", err)
	}

	meta := []struct{ key, value string }{
		{"season", strconv.Itoa(state.Season)},
		{"week", strconv.Itoa(state.Week)},
		{"seed", strconv.FormatInt(state.Seed, 10)},
		{"released", strconv.Itoa(state.Pool.TotalReleasedThisSeason)},
		{"signed", strconv.Itoa(state.Pool.TotalSignedThisSeason)},
		{"retired", strconv.Itoa(state.Pool.TotalRetiredThisSeason)},
		{"schema_version", strconv.Itoa(schemaVersion)},
	}
	for _, m := range meta {
		if _, err := tx.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)`, m.key, m.value); err != nil {
			return fmt.Errorf("insert meta %s: %w", m.key, err)
		}
	}

	return tx.Commit()
}

// HasSnapshot reports whether a saved snapshot exists.
func (db *DB) HasSnapshot() bool {
	var v string
	err := db.conn.Get(&v, `SELECT value FROM meta WHERE key = 'season'`)
	return err == nil
}

// LoadSnapshot restores the saved snapshot. The bool is false when the
// database holds no snapshot yet.
func (db *DB) LoadSnapshot() (game.GameState, bool, error) {
	var state game.GameState
	if !db.HasSnapshot() {
		return state, false, nil
	}

	db.loadMeta(&state)

	rows, err := db.conn.Queryx(`SELECT id, name, age, country, current_ability, potential_ability,
		form, wage, club_id, contract_expiry, retired FROM players ORDER BY id`)
	if err != nil {
		return state, false, fmt.Errorf("load players: %w", err)
	}
	for rows.Next() {
		var p game.Player
		var retired int
		if err := rows.Scan(&p.ID, &p.Name, &p.Age, &p.Country, &p.CurrentAbility,
			&p.PotentialAbility, &p.Form, &p.Wage, &p.ClubID, &p.ContractExpiry, &retired); err != nil {
			rows.Close()
			return state, false, fmt.Errorf("scan player: %w", err)
		}
		p.Retired = retired != 0
		state.Players = append(state.Players, p)
	}
	rows.Close()

	clubRows, err := db.conn.Queryx(`SELECT id, name, league_id, country, reputation, budget FROM clubs ORDER BY id`)
	if err != nil {
		return state, false, fmt.Errorf("load clubs: %w", err)
	}
	for clubRows.Next() {
		var c game.Club
		if err := clubRows.Scan(&c.ID, &c.Name, &c.LeagueID, &c.Country, &c.Reputation, &c.Budget); err != nil {
			clubRows.Close()
			return state, false, fmt.Errorf("scan club: %w", err)
		}
		state.Clubs = append(state.Clubs, c)
	}
	clubRows.Close()

	leagueRows, err := db.conn.Queryx(`SELECT id, name, country, tier FROM leagues ORDER BY id`)
	if err != nil {
		return state, false, fmt.Errorf("load leagues: %w", err)
	}
	for leagueRows.Next() {
		var l game.League
		if err := leagueRows.Scan(&l.ID, &l.Name, &l.Country, &l.Tier); err != nil {
			leagueRows.Close()
			return state, false, fmt.Errorf("scan league: %w", err)
		}
		state.Leagues = append(state.Leagues, l)
	}
	leagueRows.Close()

	contactRows, err := db.conn.Queryx(`SELECT id, name, type, country, relationship FROM contacts ORDER BY id`)
	if err != nil {
		return state, false, fmt.Errorf("load contacts: %w", err)
	}
	for contactRows.Next() {
		var c game.Contact
		if err := contactRows.Scan(&c.ID, &c.Name, &c.Type, &c.Country, &c.Relationship); err != nil {
			contactRows.Close()
			return state, false, fmt.Errorf("scan contact: %w", err)
		}
		state.Contacts = append(state.Contacts, c)
	}
	contactRows.Close()

	fixtureRows, err := db.conn.Queryx(`SELECT id, week, home_id, away_id FROM fixtures ORDER BY id`)
	if err != nil {
		return state, false, fmt.Errorf("load fixtures: %w", err)
	}
	for fixtureRows.Next() {
		var f game.Fixture
		if err := fixtureRows.Scan(&f.ID, &f.Week, &f.HomeID, &f.AwayID); err != nil {
			fixtureRows.Close()
			return state, false, fmt.Errorf("scan fixture: %w", err)
		}
		state.Fixtures = append(state.Fixtures, f)
	}
	fixtureRows.Close()

	if err := db.loadJSON(`SELECT data FROM free_agents ORDER BY player_id`, func(blob []byte) error {
		var a game.FreeAgent
		if err := json.Unmarshal(blob, &a); err != nil {
			return err
		}
		state.Pool.Agents = append(state.Pool.Agents, a)
		return nil
	}); err != nil {
		return state, false, fmt.Errorf("load free agents: %w", err)
	}

	if err := db.loadJSON(`SELECT data FROM rivals ORDER BY id`, func(blob []byte) error {
		var rv game.RivalScout
		if err := json.Unmarshal(blob, &rv); err != nil {
			return err
		}
		state.Rivals = append(state.Rivals, rv)
		return nil
	}); err != nil {
		return state, false, fmt.Errorf("load rivals: %w", err)
	}

	var scoutBlob string
	if err := db.conn.Get(&scoutBlob, `SELECT data FROM scout WHERE id = 1`); err != nil {
		if err != sql.ErrNoRows {
			return state, false, fmt.Errorf("load scout: %w", err)
		}
	} else if err := json.Unmarshal([]byte(scoutBlob), &state.Scout); err != nil {
		return state, false, fmt.Errorf("unmarshal scout: %w", err)
	}

	migrateSnapshot(&state, db.metaInt("schema_version", 0))

	return state, true, nil
}

func (db *DB) loadJSON(query string, apply func([]byte) error) error {
	rows, err := db.conn.Queryx(query)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var blob string
		if err := rows.Scan(&blob); err != nil {
			return err
		}
		if err := apply([]byte(blob)); err != nil {
			return err
		}
	}
	return rows.Err()
}

func (db *DB) loadMeta(state *game.GameState) {
	state.Season = db.metaInt("season", 1)
	state.Week = db.metaInt("week", 1)
	state.Pool.TotalReleasedThisSeason = db.metaInt("released", 0)
	state.Pool.TotalSignedThisSeason = db.metaInt("signed", 0)
	state.Pool.TotalRetiredThisSeason = db.metaInt("retired", 0)

	var seedStr string
	if err := db.conn.Get(&seedStr, `SELECT value FROM meta WHERE key = 'seed'`); err == nil {
		if seed, err := strconv.ParseInt(seedStr, 10, 64); err == nil {
			state.Seed = seed
		}
	}
}

func (db *DB) metaInt(key string, fallback int) int {
	var v string
	if err := db.conn.Get(&v, `SELECT value FROM meta WHERE key = ?`, key); err != nil {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// migrateSnapshot upgrades an older snapshot shape once at load time, so
// simulation code never carries defensive defaults for missing fields.
// Version 0 snapshots predate the per-target progress map.
func migrateSnapshot(state *game.GameState, version int) {
	_ = version
	if state.Scout.CountryFamiliarity == nil {
		state.Scout.CountryFamiliarity = make(map[string]int)
	}
	for i := range state.Rivals {
		if state.Rivals[i].ScoutingProgress == nil {
			state.Rivals[i].ScoutingProgress = make(map[game.PlayerID]int)
		}
	}
}
