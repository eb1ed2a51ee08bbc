package alternate

import (
	"flag"
	"fmt"
	"io"
)

type Config struct {
	// Path of the file the process id is written to. Empty means no pidfile.
	PidFile string
}

// ParseConfig parses command line arguments (without the program name).
// flag.ErrHelp is returned when help was requested.
func ParseConfig(name string, args []string, output io.Writer) (*Config, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(output, "Usage: %s [-p path/to/pid.file]\n", name)
		fmt.Fprintln(output)
		fmt.Fprintln(output, "Options:")
		fmt.Fprintln(output, "    -p path/to/pid.file   Saves the PID for this program in the filename specified")
		fmt.Fprintln(output)
	}

	pidFile := fs.String("p", "", "Saves the PID for this program in the filename specified.")

	err := fs.Parse(args)
	if err != nil {
		return nil, err
	}

	return &Config{
		PidFile: *pidFile,
	}, nil
}
