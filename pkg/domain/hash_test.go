package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinkHash(t *testing.T) {
	h := LinkHash("https://example.com/a")
	assert.Len(t, h, 32)
	assert.Equal(t, h, LinkHash("  https://example.com/a\n"), "surrounding whitespace ignored")
	assert.NotEqual(t, h, LinkHash("https://example.com/b"))
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", LinkHash(""))
}

func TestKeywordHash(t *testing.T) {
	assert.Equal(t, KeywordHash("giá vàng"), KeywordHash("Giá Vàng"))
	assert.Equal(t, KeywordHash("example keyword"), KeywordHash(" Example Keyword "))
	assert.NotEqual(t, KeywordHash("giá vàng"), KeywordHash("giá xăng"))
}
