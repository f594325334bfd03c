package health

import (
	"fmt"
	"net/http"
	"os"
	"time"
)

const defaultHost = "localhost:8080"

var client = &http.Client{Timeout: 5 * time.Second}

// Host returns the dashboard host:port from DASHBOARD_HOST.
func Host() string {
	if host := os.Getenv("DASHBOARD_HOST"); host != "" {
		return host
	}
	return defaultHost
}

// CheckOnce pings the dashboard service a single time.
func CheckOnce(host string) error {
	resp, err := client.Get(fmt.Sprintf("http://%s/dashboard/ping", host))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check failed with status: %d", resp.StatusCode)
	}
	return nil
}

// Wait retries CheckOnce until it succeeds or attempts run out.
func Wait(host string, attempts int, delay time.Duration) error {
	var err error
	for i := 0; i < attempts; i++ {
		if err = CheckOnce(host); err == nil {
			return nil
		}
		time.Sleep(delay)
	}
	return err
}
