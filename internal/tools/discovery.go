// Where: internal/tools/discovery.go
// What: Discovery of external executables on the host.
// Why: Decide up front whether git and a package manager are usable.
package tools

import "os/exec"

// PackageManagers lists supported package managers in preference order.
var PackageManagers = []string{"npm", "pnpm", "yarn"}

// lookPath is stubbed in tests.
var lookPath = exec.LookPath

// Available reports whether the named executable is on the search path.
func Available(name string) bool {
	_, err := lookPath(name)
	return err == nil
}

// DetectPackageManager returns the first available supported package
// manager, or "" when none is installed.
func DetectPackageManager() string {
	for _, pm := range PackageManagers {
		if Available(pm) {
			return pm
		}
	}
	return ""
}

// SupportedPackageManager reports whether name is a supported manager.
func SupportedPackageManager(name string) bool {
	for _, pm := range PackageManagers {
		if pm == name {
			return true
		}
	}
	return false
}
