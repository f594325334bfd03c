package commands

import "fmt"

// PrintUsage writes basic command help to stdout.
func PrintUsage() {
	fmt.Println("Usage: dashctl <command> [options]")
	fmt.Println()
	fmt.Println("Available commands:")
	fmt.Println("  ping        Check that the dashboard service responds")
	fmt.Println("  version     Show the running dashboard build")
	fmt.Println("  seed-admin  Create or promote the system administrator account")
	fmt.Println("  help        Show this help text")
}
