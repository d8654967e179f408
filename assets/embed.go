package assets

import (
	"bufio"
	"embed"
	"io"
	"strings"
)

//go:embed wordbank.txt
var FS embed.FS

// ReadLines returns the trimmed, non-empty, non-comment lines of r.
func ReadLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// Wordbank returns the embedded default word list, one entry per line.
func Wordbank() ([]string, error) {
	f, err := FS.Open("wordbank.txt")
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadLines(f)
}
