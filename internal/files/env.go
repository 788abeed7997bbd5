package files

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// PathEnvVar overrides where the log file lives.
	PathEnvVar = "IDID_TSV"
	// LegacyPathEnvVar is honored when PathEnvVar is unset.
	LegacyPathEnvVar = "ididTSV"

	// DefaultDirName is the folder created under the data home.
	DefaultDirName = "idid"
	// DefaultFileName is the log file name inside DefaultDirName.
	DefaultFileName = "idid.tsv"
)

// ResolvePath determines where the log lives, in order of preference:
// $IDID_TSV, $ididTSV, $XDG_DATA_HOME/idid/idid.tsv and ~/.local/share/idid/idid.tsv.
func ResolvePath() (string, error) {
	for _, name := range []string{PathEnvVar, LegacyPathEnvVar} {
		if override := strings.TrimSpace(os.Getenv(name)); override != "" {
			return normalizePath(override)
		}
	}

	if dataHome := strings.TrimSpace(os.Getenv("XDG_DATA_HOME")); dataHome != "" {
		dir, err := normalizePath(dataHome)
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, DefaultDirName, DefaultFileName), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", DefaultDirName, DefaultFileName), nil
}

func normalizePath(input string) (string, error) {
	if strings.HasPrefix(input, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		input = filepath.Join(home, strings.TrimPrefix(input, "~"))
	}
	return input, nil
}
