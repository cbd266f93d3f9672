package builtins

import (
	"errors"
	"io/fs"
	"os"
	"time"
)

type Action string

var (
	chtimes  = os.Chtimes
	touchNow = setTimesToNow
)

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionSkipped Action = "skipped"
)

// Touch creates path as an empty file, or sets its access and modification
// times to now when it already exists. Existing content is never changed.
func Touch(path string, now time.Time) (Action, error) {
	info, err := os.Stat(path)
	switch {
	case err == nil:
		if info.IsDir() {
			return "", &TouchError{Path: path, Op: "touch", Err: errIsDir}
		}
		if err := updateTimes(path, now); err != nil {
			return "", &TouchError{Path: path, Op: "update", Err: err}
		}
		return ActionUpdated, nil
	case errors.Is(err, fs.ErrNotExist):
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return "", &TouchError{Path: path, Op: "create", Err: err}
		}
		if err := file.Close(); err != nil {
			return "", &TouchError{Path: path, Op: "create", Err: err}
		}
		return ActionCreated, nil
	default:
		return "", &TouchError{Path: path, Op: "stat", Err: err}
	}
}

// updateTimes sets explicit times, which requires owning the file. Writers
// that do not own it fall back to the kernel's "now", as touch(1) does.
func updateTimes(path string, now time.Time) error {
	err := chtimes(path, now, now)
	if err == nil || !errors.Is(err, fs.ErrPermission) {
		return err
	}
	if nowErr := touchNow(path); nowErr != nil {
		return err
	}
	return nil
}
