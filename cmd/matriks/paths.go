// SPDX-License-Identifier: MIT

package main

import (
	"path/filepath"
	"runtime"
	"strings"
)

var wslPrefixes = []string{`\\wsl.localhost\`, `\\wsl$\`}

// normalizePath maps Windows-side WSL paths onto the Linux filesystem:
// `\\wsl.localhost\Ubuntu\home\u\a.csv` and `\\wsl$\Ubuntu\home\u\a.csv`
// both become `/home/u/a.csv`. On POSIX hosts remaining backslashes become
// slashes. goos is runtime.GOOS outside tests.
func normalizePath(p, goos string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return p
	}
	for _, prefix := range wslPrefixes {
		if !strings.HasPrefix(p, prefix) {
			continue
		}
		parts := strings.Split(p, `\`)
		// "", "", host, distro, rest...
		if len(parts) >= 5 {
			return "/" + strings.Join(parts[4:], "/")
		}

		return strings.ReplaceAll(p, `\`, "/")
	}
	if goos != "windows" && strings.Contains(p, `\`) {
		return strings.ReplaceAll(p, `\`, "/")
	}

	return p
}

// resolvePath normalizes p and makes it absolute.
func resolvePath(p string) (string, error) {
	if p == "" {
		return p, nil
	}
	p = normalizePath(p, runtime.GOOS)
	if filepath.IsAbs(p) {
		return p, nil
	}

	return filepath.Abs(p)
}
