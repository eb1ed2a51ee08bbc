package core

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

var ErrNoPidFile = errors.New("no pidfile path passed")

// WritePidFile writes process's pid into the provided file.
// An existing file is overwritten.
func WritePidFile(path string) error {
	if path == "" {
		return ErrNoPidFile
	}

	// If the file doesn't exist, create it, otherwise overwrite it
	f, err := os.OpenFile(path, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("os.OpenFile: %w", err)
	}
	defer f.Close()

	_, err = f.WriteString(strconv.Itoa(os.Getpid()))
	if err != nil {
		return fmt.Errorf("f.WriteString: %w", err)
	}

	return f.Close()
}
