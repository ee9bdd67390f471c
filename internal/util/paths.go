package util

import (
	"os"
	"path/filepath"
	"strings"
)

// DataDir resolves the per-user directory holding the app's database,
// honoring XDG_DATA_HOME before the ~/.local/share default.
func DataDir(app string) string {
	if base := strings.TrimSpace(os.Getenv("XDG_DATA_HOME")); base != "" {
		return filepath.Join(base, app)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".", app)
	}
	return filepath.Join(home, ".local", "share", app)
}

// ReportsDir is where generated session reports land: an app-named
// folder under the user's documents directory.
func ReportsDir(app string) string {
	return filepath.Join(DocumentsDir(), strings.ToUpper(app))
}

// DocumentsDir resolves the user's documents directory via
// XDG_DOCUMENTS_DIR, then the user-dirs.dirs config, then ~/Documents.
func DocumentsDir() string {
	if base := strings.TrimSpace(os.Getenv("XDG_DOCUMENTS_DIR")); base != "" {
		return expandHome(base)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	configPath := filepath.Join(home, ".config", "user-dirs.dirs")
	if data, err := os.ReadFile(configPath); err == nil {
		if dir := lookupUserDir(string(data), "XDG_DOCUMENTS_DIR"); dir != "" {
			return expandHome(dir)
		}
	}
	return filepath.Join(home, "Documents")
}

// lookupUserDir pulls one KEY="value" entry out of a user-dirs.dirs file.
func lookupUserDir(data, key string) string {
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, key+"=") {
			continue
		}
		return strings.Trim(strings.TrimPrefix(line, key+"="), "\"")
	}
	return ""
}

func expandHome(path string) string {
	if !strings.Contains(path, "$HOME") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return strings.ReplaceAll(path, "$HOME", "")
	}
	return strings.ReplaceAll(path, "$HOME", home)
}
