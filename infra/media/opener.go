package media

import (
	"errors"
	"os/exec"
)

// EnvOpener prepares an external viewer command for a file or URL,
// using the configured override (TEMI_OPENER) with a fallback to the
// platform openers. It does not run the command itself; callers start
// it detached so the TUI keeps the terminal.
type EnvOpener struct {
	override string
}

// NewEnvOpener creates an EnvOpener. override may be empty.
func NewEnvOpener(override string) *EnvOpener {
	return &EnvOpener{override: override}
}

func (o *EnvOpener) resolve() (string, error) {
	if o.override != "" {
		return o.override, nil
	}
	for _, candidate := range []string{"xdg-open", "open"} {
		if program, err := exec.LookPath(candidate); err == nil {
			return program, nil
		}
	}
	return "", errors.New("no opener program found; set TEMI_OPENER")
}

// Cmd prepares an *exec.Cmd that opens target with the resolved opener.
func (o *EnvOpener) Cmd(target string) (*exec.Cmd, error) {
	program, err := o.resolve()
	if err != nil {
		return nil, err
	}
	return exec.Command(program, target), nil
}
