// Command lunarcal converts dates between the Gregorian and Chinese lunar
// calendars and prints month, year and solar term tables.
//
// Usage:
//
//	lunarcal solar 2023-01-22
//	lunarcal lunar 2023 2 1 --leap
//	lunarcal month 2024-02
//	lunarcal year 2023
//	lunarcal terms
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
