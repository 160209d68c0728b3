package database

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

var DB *sql.DB

// InitDB abre la base de datos y crea el esquema si no existe. La única pieza
// de estado persistente es la tabla de preferencias (clave/valor).
func InitDB() error {
	// Crear el directorio database si no existe
	if err := os.MkdirAll("database", 0755); err != nil {
		return err
	}

	var err error
	DB, err = sql.Open("sqlite3", filepath.Join("database", "tracker.db"))
	if err != nil {
		return err
	}

	return createSchema(DB)
}

// createSchema crea las tablas necesarias sobre una conexión dada
func createSchema(db *sql.DB) error {
	createPreferencesTableSQL := `
	CREATE TABLE IF NOT EXISTS preferences (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`

	_, err := db.Exec(createPreferencesTableSQL)
	return err
}

// OpenAt abre una base de datos en una ruta arbitraria con el mismo esquema.
// Se usa en tests para no pisar la base real.
func OpenAt(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if err := createSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
