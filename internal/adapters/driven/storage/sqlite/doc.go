// Package sqlite persists fit sessions in a SQLite database.
//
// The adapter uses modernc.org/sqlite, a pure Go SQLite implementation, so
// the binary builds without CGO. Each session row stores its setup in the
// JSON form of package setupdoc.
//
// # Schema
//
// The schema is managed by versioned migrations in the migrations/
// directory, applied in order on open and tracked in schema_migrations.
//
// # Data Location
//
// By default, the database is stored at ~/.wppm/data/sessions.db
package sqlite
