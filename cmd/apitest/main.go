// Command apitest runs smoke checks against a running lunar API server.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// =============================================================================
// Response Types - Match the API envelope
// =============================================================================

type APIResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *ErrorInfo      `json:"error,omitempty"`
}

type ErrorInfo struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// check is one request and what the server must answer.
type check struct {
	name     string
	path     string
	status   int
	code     string   // error code for non-200 answers
	contains []string // substrings of the data payload
}

var checks = []check{
	{name: "health", path: "/health", status: http.StatusOK, contains: []string{`"healthy"`}},
	{name: "today", path: "/api/v1/today", status: http.StatusOK, contains: []string{`"lunar"`}},

	{name: "spring festival 2023", path: "/api/v1/solar/2023-01-22", status: http.StatusOK,
		contains: []string{`"正月初一"`, `"春节"`, `"癸卯"`}},
	{name: "new year's eve 2024", path: "/api/v1/solar/2024-02-09", status: http.StatusOK,
		contains: []string{`"除夕"`}},
	{name: "first day of window", path: "/api/v1/solar/1900-01-01", status: http.StatusOK,
		contains: []string{`"year":1899`}},
	{name: "last day of window", path: "/api/v1/solar/2099-12-31", status: http.StatusOK},
	{name: "leap month", path: "/api/v1/lunar/2023/2/1?leap=true", status: http.StatusOK,
		contains: []string{`"2023-03-22"`, `"is_leap":true`}},
	{name: "year layout", path: "/api/v1/years/2033", status: http.StatusOK,
		contains: []string{`"leap_month":11`}},
	{name: "solar term", path: "/api/v1/terms?month=4&day=5", status: http.StatusOK,
		contains: []string{`"清明"`}},
	{name: "festivals", path: "/api/v1/festivals?calendar=lunar", status: http.StatusOK,
		contains: []string{`"中秋节"`}},
	{name: "range", path: "/api/v1/range?start=2024-02-08&end=2024-02-10", status: http.StatusOK,
		contains: []string{`"count":3`}},

	{name: "unsupported year", path: "/api/v1/solar/2100-01-01", status: http.StatusBadRequest, code: "UNSUPPORTED_YEAR"},
	{name: "impossible date", path: "/api/v1/solar/2023-02-29", status: http.StatusBadRequest, code: "INVALID_DATE"},
	{name: "wrong leap month", path: "/api/v1/lunar/2023/3/1?leap=true", status: http.StatusBadRequest, code: "INVALID_LEAP"},
	{name: "unknown route", path: "/api/v1/nothing", status: http.StatusNotFound, code: "NOT_FOUND"},
}

// =============================================================================
// Test Runner
// =============================================================================

type TestRunner struct {
	baseURL      string
	client       *http.Client
	out          io.Writer
	verbose      bool
	successCount int
	errorCount   int
	errors       []string
}

func NewTestRunner(baseURL string, out io.Writer, verbose bool) *TestRunner {
	return &TestRunner{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
		out:     out,
		verbose: verbose,
	}
}

// Run executes every check and reports whether all passed.
func (tr *TestRunner) Run() bool {
	fmt.Fprintln(tr.out, "==============================================")
	fmt.Fprintln(tr.out, "Lunar API Smoke Checks")
	fmt.Fprintln(tr.out, "==============================================")
	fmt.Fprintf(tr.out, "Base URL: %s\n\n", tr.baseURL)

	for _, c := range checks {
		if err := tr.run(c); err != nil {
			tr.recordError(c.name, err.Error())
			continue
		}
		tr.recordSuccess(c.name)
	}

	tr.printSummary()
	return tr.errorCount == 0
}

func (tr *TestRunner) run(c check) error {
	resp, err := tr.client.Get(tr.baseURL + c.path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read error: %w", err)
	}
	if resp.StatusCode != c.status {
		return fmt.Errorf("status %d, want %d", resp.StatusCode, c.status)
	}

	var apiResp APIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return fmt.Errorf("parse error: %w", err)
	}

	if c.code != "" {
		if apiResp.Error == nil || apiResp.Error.Code != c.code {
			return fmt.Errorf("error %+v, want code %s", apiResp.Error, c.code)
		}
		return nil
	}
	if !apiResp.Success {
		return fmt.Errorf("API error: %+v", apiResp.Error)
	}
	for _, s := range c.contains {
		if !strings.Contains(string(apiResp.Data), s) {
			return fmt.Errorf("data does not contain %s", s)
		}
	}
	if tr.verbose {
		fmt.Fprintf(tr.out, "    %s\n", apiResp.Data)
	}
	return nil
}

func (tr *TestRunner) recordSuccess(msg string) {
	tr.successCount++
	fmt.Fprintf(tr.out, "  ✓ %s\n", msg)
}

func (tr *TestRunner) recordError(context, msg string) {
	tr.errorCount++
	errStr := fmt.Sprintf("%s: %s", context, msg)
	tr.errors = append(tr.errors, errStr)
	fmt.Fprintf(tr.out, "  ✗ %s\n", errStr)
}

func (tr *TestRunner) printSummary() {
	fmt.Fprintln(tr.out)
	fmt.Fprintf(tr.out, "  Passed: %d\n", tr.successCount)
	fmt.Fprintf(tr.out, "  Failed: %d\n", tr.errorCount)

	if tr.errorCount > 0 {
		fmt.Fprintln(tr.out, "\nFailures:")
		for _, err := range tr.errors {
			fmt.Fprintf(tr.out, "  • %s\n", err)
		}
	}
}

// =============================================================================
// Main
// =============================================================================

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the API")
	verbose := flag.Bool("v", false, "Verbose output (print response data)")
	flag.Parse()

	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(*baseURL + "/health")
	if err != nil {
		fmt.Printf("Error: Cannot connect to %s\n", *baseURL)
		fmt.Println("Make sure the API server is running.")
		os.Exit(1)
	}
	resp.Body.Close()

	if !NewTestRunner(*baseURL, os.Stdout, *verbose).Run() {
		os.Exit(1)
	}
}
