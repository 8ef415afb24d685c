//go:build windows

package utils

// browserCommand avoids "cmd /c start", which mangles URLs containing &
func browserCommand(url string) (string, []string) {
	return "rundll32", []string{"url.dll,FileProtocolHandler", url}
}
