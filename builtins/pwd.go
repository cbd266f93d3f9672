package builtins

import (
	"fmt"
	"os"
)

// Pwd returns the current working directory.
func Pwd() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("%w: resolving working directory: %v", ErrIO, err)
	}
	return currentDir, nil
}
