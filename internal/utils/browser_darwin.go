//go:build darwin

package utils

func browserCommand(url string) (string, []string) {
	return "open", []string{url}
}
