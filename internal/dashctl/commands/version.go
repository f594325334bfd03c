package commands

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"strings"

	"admindash/internal/dashctl/health"
)

// RunVersion handles the `dashctl version` subcommand.
// It queries the running service for its version.
func RunVersion(args []string) error {
	fs := flag.NewFlagSet("version", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	host := fs.String("host", health.Host(), "Dashboard host:port to query")

	if err := fs.Parse(args); err != nil {
		return err
	}

	url := fmt.Sprintf("http://%s/dashboard/version", *host)
	resp, err := http.Get(url)
	if err != nil {
		fmt.Println("No version detected")
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		fmt.Println("No version detected")
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		fmt.Println("No version detected")
		return nil
	}

	version := strings.TrimSpace(string(body))
	if version == "" {
		fmt.Println("No version detected")
		return nil
	}

	fmt.Println(version)
	return nil
}
