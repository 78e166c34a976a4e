package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// PathResolver locates dictionary files relative to the cwd, the binary and the config dir
type PathResolver struct {
	executableDir string
	configDir     string
}

// NewPathResolver creates a new path resolver that determines the executable location
func NewPathResolver() (*PathResolver, error) {
	execDir, err := GetExecutableDir()
	if err != nil {
		return nil, err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = os.TempDir()
	}

	pr := &PathResolver{
		executableDir: execDir,
		configDir:     getConfigDir(homeDir),
	}
	log.Debugf("PathResolver initialized: execDir=%s, configDir=%s", execDir, pr.configDir)
	return pr, nil
}

// getConfigDir returns the appropriate config directory for the platform
func getConfigDir(homeDir string) string {
	switch runtime.GOOS {
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, "wordfix")
		}
		return filepath.Join(homeDir, ".config", "wordfix")
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "wordfix")
		}
		return filepath.Join(homeDir, "AppData", "Roaming", "wordfix")
	default:
		return filepath.Join(homeDir, ".config", "wordfix")
	}
}

// candidates lists where a relative path may live, most specific first
func (pr *PathResolver) candidates(path string) []string {
	if filepath.IsAbs(path) {
		return []string{path}
	}
	var out []string
	if cwd, err := os.Getwd(); err == nil {
		out = append(out, filepath.Join(cwd, path))
	}
	out = append(out,
		filepath.Join(pr.executableDir, path),
		filepath.Join(pr.executableDir, "data", path),
		filepath.Join(pr.configDir, path),
	)
	return out
}

// ResolveDictPath finds the dictionary file, trying the path as given, then
// relative to the executable and the config dir. If nothing matches, the
// path is returned unchanged and os.ErrNotExist is reported.
func (pr *PathResolver) ResolveDictPath(path string) (string, error) {
	for _, candidate := range pr.candidates(path) {
		if FileExists(candidate) {
			log.Debugf("Found dictionary: %s", candidate)
			return candidate, nil
		}
		log.Debugf("Dictionary candidate not found: %s", candidate)
	}
	return path, os.ErrNotExist
}
