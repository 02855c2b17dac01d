package project

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/Drawing-master/Drawing-Master/internal/logging"
)

const librarySchema = `
CREATE TABLE IF NOT EXISTS projects (
    id          TEXT PRIMARY KEY,
    name        TEXT NOT NULL,
    created_at  INTEGER NOT NULL,   -- UnixNano
    modified_at INTEGER NOT NULL,   -- UnixNano
    width       INTEGER NOT NULL,
    height      INTEGER NOT NULL,
    raster      BLOB NOT NULL       -- PNG
);

CREATE INDEX IF NOT EXISTS idx_projects_modified ON projects(modified_at);
`

// Library is a sqlite catalog of saved projects.
type Library struct {
	db *sql.DB
}

// OpenLibrary opens or creates the library database at path.
func OpenLibrary(path string) (*Library, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("project: create library directory: %w", err)
	}

	dsn := path +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=synchronous(NORMAL)" +
		"&_pragma=busy_timeout(5000)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("project: open library: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("project: connect library: %w", err)
	}
	if _, err := db.Exec(librarySchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("project: create schema: %w", err)
	}
	logging.Logger().Debug("project library opened", "path", path)
	return &Library{db: db}, nil
}

// Close closes the database.
func (l *Library) Close() error {
	return l.db.Close()
}

// Save stores img under m.ID, replacing an earlier save, and marks m saved.
func (l *Library) Save(m *Metadata, img image.Image) error {
	var raster bytes.Buffer
	if err := png.Encode(&raster, img); err != nil {
		return fmt.Errorf("project: encode raster: %w", err)
	}
	b := img.Bounds()
	_, err := l.db.Exec(`
INSERT INTO projects (id, name, created_at, modified_at, width, height, raster)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    name = excluded.name,
    modified_at = excluded.modified_at,
    width = excluded.width,
    height = excluded.height,
    raster = excluded.raster`,
		m.ID.String(), m.Name, m.CreatedAt.UnixNano(), m.ModifiedAt.UnixNano(),
		b.Dx(), b.Dy(), raster.Bytes())
	if err != nil {
		return fmt.Errorf("project: save %s: %w", m.ID, err)
	}
	m.MarkSaved()
	logging.Logger().Info("project saved", "id", m.ID.String(), "name", m.Name, "bytes", raster.Len())
	return nil
}

// Load returns the project stored under id.
func (l *Library) Load(id uuid.UUID) (Metadata, image.Image, error) {
	var (
		m             Metadata
		idText        string
		created       int64
		modified      int64
		raster        []byte
		width, height int
	)
	err := l.db.QueryRow(`
SELECT id, name, created_at, modified_at, width, height, raster
FROM projects WHERE id = ?`, id.String()).
		Scan(&idText, &m.Name, &created, &modified, &width, &height, &raster)
	if errors.Is(err, sql.ErrNoRows) {
		return Metadata{}, nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return Metadata{}, nil, fmt.Errorf("project: load %s: %w", id, err)
	}

	if m.ID, err = uuid.Parse(idText); err != nil {
		return Metadata{}, nil, fmt.Errorf("project: load %s: %w", id, err)
	}
	m.CreatedAt = time.Unix(0, created)
	m.ModifiedAt = time.Unix(0, modified)
	m.Saved = true

	img, err := png.Decode(bytes.NewReader(raster))
	if err != nil {
		return Metadata{}, nil, fmt.Errorf("project: decode raster %s: %w", id, err)
	}
	if b := img.Bounds(); b.Dx() != width || b.Dy() != height {
		return Metadata{}, nil, fmt.Errorf("project: raster %s is %dx%d, expected %dx%d", id, b.Dx(), b.Dy(), width, height)
	}
	return m, img, nil
}

// Open loads the project stored under id into c and resets h. The canvas
// is left untouched when the project cannot be read.
func (l *Library) Open(id uuid.UUID, c Canvas, h History) (Metadata, error) {
	m, img, err := l.Load(id)
	if err != nil {
		return Metadata{}, err
	}
	if err := Apply(img, c, h); err != nil {
		return Metadata{}, err
	}
	logging.Logger().Info("project opened", "id", m.ID.String(), "name", m.Name)
	return m, nil
}

// List returns the stored projects, most recently modified first.
func (l *Library) List() ([]Metadata, error) {
	rows, err := l.db.Query(`
SELECT id, name, created_at, modified_at
FROM projects ORDER BY modified_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("project: list: %w", err)
	}
	defer rows.Close()

	var out []Metadata
	for rows.Next() {
		var (
			m                 Metadata
			idText            string
			created, modified int64
		)
		if err := rows.Scan(&idText, &m.Name, &created, &modified); err != nil {
			return nil, fmt.Errorf("project: list: %w", err)
		}
		if m.ID, err = uuid.Parse(idText); err != nil {
			return nil, fmt.Errorf("project: list: bad id %q: %w", idText, err)
		}
		m.CreatedAt = time.Unix(0, created)
		m.ModifiedAt = time.Unix(0, modified)
		m.Saved = true
		out = append(out, m)
	}
	return out, rows.Err()
}

// Delete removes the project stored under id.
func (l *Library) Delete(id uuid.UUID) error {
	res, err := l.db.Exec("DELETE FROM projects WHERE id = ?", id.String())
	if err != nil {
		return fmt.Errorf("project: delete %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("project: delete %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	logging.Logger().Info("project deleted", "id", id.String())
	return nil
}
