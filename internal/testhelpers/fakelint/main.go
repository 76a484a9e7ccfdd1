// fakelint is a stand-in linter for tests. It reports a finding for every
// line of the target file carrying a "lint:" marker comment, in the same
// path:line:col output format flake8 uses:
//
//	x = 1  # lint:E999 invalid syntax
//
// emits "path:N:1: E999 invalid syntax". A --select=CODES flag restricts
// output to the listed codes; other flags are accepted and ignored so the
// command line can match a real flake8 invocation.
package main

import (
	"fmt"
	"os"
	"strings"
)

func main() {
	var selected map[string]bool
	var path string

	for _, arg := range os.Args[1:] {
		switch {
		case strings.HasPrefix(arg, "--select="):
			selected = map[string]bool{}
			for _, code := range strings.Split(strings.TrimPrefix(arg, "--select="), ",") {
				selected[code] = true
			}
		case strings.HasPrefix(arg, "-"):
			// ignored (--isolated and friends)
		default:
			path = arg
		}
	}
	if path == "" {
		fmt.Fprintln(os.Stderr, "fakelint: no file given")
		os.Exit(2)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fakelint: %v\n", err)
		os.Exit(2)
	}

	found := false
	for i, line := range strings.Split(strings.TrimSuffix(string(data), "\n"), "\n") {
		_, marker, ok := strings.Cut(line, "lint:")
		if !ok {
			continue
		}
		code, message, _ := strings.Cut(strings.TrimSpace(marker), " ")
		if message == "" {
			message = "marker finding"
		}
		if selected != nil && !selected[code] {
			continue
		}
		fmt.Printf("%s:%d:1: %s %s\n", path, i+1, code, message)
		found = true
	}
	if found {
		os.Exit(1)
	}
}
