//go:build !unix

package main

import "os"

// redirectStdIO swaps the os.Stdout and os.Stderr variables. Runtime panic
// output still goes to fd 2 here.
func redirectStdIO(path string) error {
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	os.Stdout = f
	os.Stderr = f
	return nil
}
