//go:build !linux && !darwin && !windows

package utils

func browserCommand(url string) (string, []string) {
	return "xdg-open", []string{url}
}
