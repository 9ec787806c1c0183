// Package migrations embeds the SQLite schema.
package migrations

import "embed"

// Schema is the file holding the documents table.
const Schema = "001_documents.up.sql"

// FS contains the SQL files embedded at compile time.
//
//go:embed *.sql
var FS embed.FS
