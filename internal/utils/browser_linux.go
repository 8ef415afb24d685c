//go:build linux

package utils

// browserCommand opens a URL with the desktop default on Linux
func browserCommand(url string) (string, []string) {
	return "xdg-open", []string{url}
}
