package editor

import (
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultEditor is used when neither VISUAL nor EDITOR is set.
const DefaultEditor = "vi"

// EndOfFile asks Args to position the cursor on the last line.
const EndOfFile = 0

// Name returns the editor command line configured in the environment.
func Name() string {
	if v := strings.TrimSpace(os.Getenv("VISUAL")); v != "" {
		return v
	}
	if v := strings.TrimSpace(os.Getenv("EDITOR")); v != "" {
		return v
	}
	return DefaultEditor
}

// Args builds the argv that opens path in editor at line. A line of EndOfFile
// jumps to the end for editors that understand it. Editors with no known jump
// syntax just receive the path.
func Args(editor, path string, line int) []string {
	args := splitShellWords(editor)
	if len(args) == 0 {
		args = []string{DefaultEditor}
	}

	if jump := jumpArg(args[0], line); jump != "" {
		args = append(args, jump)
	}
	return append(args, path)
}

// Command prepares the configured editor to open path at line.
// The caller attaches stdio and runs it.
func Command(path string, line int) *exec.Cmd {
	args := Args(Name(), path, line)
	return exec.Command(args[0], args[1:]...)
}

func jumpArg(program string, line int) string {
	base := strings.TrimSuffix(filepath.Base(program), ".exe")
	switch base {
	case "vi", "vim", "nvim", "view", "gvim", "mvim", "vis", "kak":
		if line <= 0 {
			return "+$"
		}
		return "+" + strconv.Itoa(line)
	case "nano", "emacs", "emacsclient", "micro", "hx", "helix", "mg", "joe":
		if line <= 0 {
			return ""
		}
		return "+" + strconv.Itoa(line)
	default:
		return ""
	}
}
