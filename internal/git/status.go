package git

import (
	"strconv"
	"strings"
)

// FileStatus is one entry of `git status --porcelain`
type FileStatus struct {
	// Code is the two-letter XY status, e.g. " M", "A ", "??"
	Code string
	Path string
}

// String renders the entry the way git prints it
func (f FileStatus) String() string {
	return f.Code + " " + f.Path
}

// ParsePorcelainStatus parses porcelain v1 output. Renames and copies
// ("R  old -> new") are reported under their new path.
func ParsePorcelainStatus(output string) []FileStatus {
	var files []FileStatus
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimRight(line, "\r")
		if len(line) < 4 {
			continue
		}
		code := line[:2]
		path := line[3:]
		if code[0] == 'R' || code[0] == 'C' {
			if idx := strings.Index(path, " -> "); idx >= 0 {
				path = path[idx+len(" -> "):]
			}
		}
		files = append(files, FileStatus{
			Code: code,
			Path: unquotePath(path),
		})
	}
	return files
}

// unquotePath decodes the C-style quoting git applies to paths with special
// characters, e.g. "caf\303\251.txt" for café.txt
func unquotePath(path string) string {
	if len(path) < 2 || !strings.HasPrefix(path, `"`) || !strings.HasSuffix(path, `"`) {
		return path
	}
	if unquoted, err := strconv.Unquote(path); err == nil {
		return unquoted
	}
	return path[1 : len(path)-1]
}
