package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID     = "run_id"
	KeyCommand   = "command"
	KeyFile      = "file"
	KeyComponent = "component"
	KeyStatus    = "status"
	KeyCatalog   = "catalog"
	KeyDocsRoot  = "docs_root"
	KeyError     = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr      { return slog.String(KeyRunID, id) }
func Command(c string) slog.Attr     { return slog.String(KeyCommand, c) }
func File(f string) slog.Attr        { return slog.String(KeyFile, f) }
func Component(c string) slog.Attr   { return slog.String(KeyComponent, c) }
func Status(s string) slog.Attr      { return slog.String(KeyStatus, s) }
func Catalog(path string) slog.Attr  { return slog.String(KeyCatalog, path) }
func DocsRoot(path string) slog.Attr { return slog.String(KeyDocsRoot, path) }

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
