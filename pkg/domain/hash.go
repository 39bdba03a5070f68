package domain

import (
	"crypto/md5" //nolint:gosec // content addressing, not security
	"encoding/hex"
	"strings"
)

// LinkHash returns content address of an article, md5 of the trimmed link
func LinkHash(link string) string {
	sum := md5.Sum([]byte(strings.TrimSpace(link))) //nolint:gosec // content addressing
	return hex.EncodeToString(sum[:])
}

// KeywordHash returns content address of a keyword, md5 of the lower-cased name
func KeywordHash(name string) string {
	sum := md5.Sum([]byte(NormalizeKeyword(name))) //nolint:gosec // content addressing
	return hex.EncodeToString(sum[:])
}

// NormalizeKeyword trims and lower-cases keyword name
func NormalizeKeyword(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
