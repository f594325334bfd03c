package commands

import (
	"flag"
	"fmt"
	"io"
	"time"

	"admindash/internal/dashctl/health"
)

// RunPing handles the `dashctl ping` subcommand.
func RunPing(args []string) error {
	fs := flag.NewFlagSet("ping", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	host := fs.String("host", health.Host(), "Dashboard host:port to query")
	wait := fs.Int("wait", 1, "Number of attempts before giving up")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("ping: unexpected arguments")
	}

	if err := health.Wait(*host, max(*wait, 1), time.Second); err != nil {
		return fmt.Errorf("dashboard is not responding: %w", err)
	}

	fmt.Println("PONG")
	return nil
}
