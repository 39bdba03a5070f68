package keyword

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed vietnamese-stopwords.txt
var defaultStopwords string

// Stopwords is a set of lower-cased words never allowed inside a keyword
type Stopwords map[string]struct{}

// LoadStopwords reads stopwords from file, one per line. Empty path loads the embedded vietnamese list.
func LoadStopwords(path string) (Stopwords, error) {
	if path == "" {
		return ParseStopwords(strings.NewReader(defaultStopwords))
	}
	fh, err := os.Open(path) //nolint:gosec // path comes from config
	if err != nil {
		return nil, fmt.Errorf("open stopwords %s: %w", path, err)
	}
	defer fh.Close()
	return ParseStopwords(fh)
}

// ParseStopwords reads stopwords from r, one per line, blank lines and # comments are ignored
func ParseStopwords(r io.Reader) (Stopwords, error) {
	res := Stopwords{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		res[line] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stopwords: %w", err)
	}
	return res, nil
}

// Contains checks if any token of the phrase is a stopword, case-insensitive
func (s Stopwords) Contains(phrase string) bool {
	for _, token := range strings.Fields(strings.ToLower(phrase)) {
		if _, ok := s[token]; ok {
			return true
		}
	}
	return false
}
