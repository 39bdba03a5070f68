package feed

import (
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
	ext "github.com/mmcdole/gofeed/extensions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsgraph/pkg/domain"
)

func TestNormalizer_Normalize(t *testing.T) {
	n := NewNormalizer()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	published := time.Date(2024, 4, 30, 8, 0, 0, 0, time.FixedZone("ICT", 7*3600))

	t.Run("full entry", func(t *testing.T) {
		item := &gofeed.Item{
			Title:           "<b>Tin &amp;amp; tức</b>",
			Link:            " https://vnexpress.net/a1.html ",
			Description:     `&lt;img src="https://img.example.com/a1.jpg"&gt; Giá &amp;quot;vàng&amp;quot;  tăng`,
			PublishedParsed: &published,
		}
		a, err := n.Normalize(item, 7, now)
		require.NoError(t, err)
		assert.Equal(t, "Tin & tức", a.Title)
		assert.Equal(t, "https://vnexpress.net/a1.html", a.Link)
		assert.Equal(t, "https://img.example.com/a1.jpg", a.ImageURL)
		assert.Equal(t, `Giá "vàng" tăng`, a.Description)
		assert.Equal(t, published.UTC(), a.PubDate)
		assert.Equal(t, int64(7), a.FeedID)
		assert.Equal(t, domain.LinkHash("https://vnexpress.net/a1.html"), a.Hash)
	})

	t.Run("date falls back to updated then now", func(t *testing.T) {
		item := &gofeed.Item{Link: "https://e.com/1", Description: `<img src="https://e.com/1.png"> text`}
		a, err := n.Normalize(item, 1, now)
		require.NoError(t, err)
		assert.Equal(t, now, a.PubDate)

		item.UpdatedParsed = &published
		a, err = n.Normalize(item, 1, now)
		require.NoError(t, err)
		assert.Equal(t, published.UTC(), a.PubDate)
	})

	t.Run("skip reasons", func(t *testing.T) {
		_, err := n.Normalize(&gofeed.Item{Description: "text", Enclosures: []*gofeed.Enclosure{{URL: "https://e.com/a.jpg"}}}, 1, now)
		assert.ErrorIs(t, err, ErrNoLink)

		_, err = n.Normalize(&gofeed.Item{Link: "https://e.com/1", Enclosures: []*gofeed.Enclosure{{URL: "https://e.com/a.jpg"}}}, 1, now)
		assert.ErrorIs(t, err, ErrNoDescription)

		_, err = n.Normalize(&gofeed.Item{Link: "https://e.com/1", Description: "plain text, no pictures"}, 1, now)
		assert.ErrorIs(t, err, ErrNoImage)

		_, err = n.Normalize(nil, 1, now)
		assert.ErrorIs(t, err, ErrNoLink)
	})

	t.Run("description only image", func(t *testing.T) {
		item := &gofeed.Item{Link: "https://e.com/1", Description: `<img src="https://e.com/1.png">`}
		_, err := n.Normalize(item, 1, now)
		assert.ErrorIs(t, err, ErrNoDescription)
	})

	t.Run("only first image removed", func(t *testing.T) {
		item := &gofeed.Item{Link: "https://e.com/1",
			Description: `<p><img src="https://e.com/1.jpg" alt="one">first <img src="https://e.com/2.jpg"> second</p>`}
		a, err := n.Normalize(item, 1, now)
		require.NoError(t, err)
		assert.Equal(t, "https://e.com/1.jpg", a.ImageURL)
		assert.Equal(t, "first second", a.Description)
	})
}

func TestNormalizer_ImageFallbackChain(t *testing.T) {
	mediaExt := func(name, u string) ext.Extensions {
		return ext.Extensions{"media": {name: {{Name: name, Attrs: map[string]string{"url": u}}}}}
	}
	desc := `<img src="https://e.com/desc.jpg"> text https://e.com/raw.webp`

	tests := []struct {
		name string
		item *gofeed.Item
		want string
	}{
		{
			name: "media content first",
			item: &gofeed.Item{Extensions: mediaExt("content", "https://e.com/media"),
				Enclosures: []*gofeed.Enclosure{{URL: "https://e.com/enc.jpg"}}, Description: desc},
			want: "https://e.com/media",
		},
		{
			name: "media thumbnail",
			item: &gofeed.Item{Extensions: mediaExt("thumbnail", "https://e.com/thumb.jpg"), Description: desc},
			want: "https://e.com/thumb.jpg",
		},
		{
			name: "enclosure with image extension",
			item: &gofeed.Item{Enclosures: []*gofeed.Enclosure{{URL: "https://e.com/podcast.mp3"},
				{URL: "https://e.com/enc.JPG?w=300"}}, Description: desc},
			want: "https://e.com/enc.JPG?w=300",
		},
		{
			name: "nested url field",
			item: &gofeed.Item{Extensions: ext.Extensions{"og": {"image": {{Name: "image",
				Children: map[string][]ext.Extension{"url": {{Name: "url", Value: "https://e.com/nested.png"}}}}}}},
				Description: desc},
			want: "https://e.com/nested.png",
		},
		{
			name: "first img tag",
			item: &gofeed.Item{Description: desc},
			want: "https://e.com/desc.jpg",
		},
		{
			name: "img without extension skipped",
			item: &gofeed.Item{Description: `<img src="https://e.com/pixel"><img data-src="https://e.com/lazy.gif"> text`},
			want: "https://e.com/lazy.gif",
		},
		{
			name: "raw url in markup",
			item: &gofeed.Item{Description: `text with https://e.com/raw.webp inside`},
			want: "https://e.com/raw.webp",
		},
	}

	n := NewNormalizer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.item.Link = "https://e.com/article"
			a, err := n.Normalize(tt.item, 1, time.Now())
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.ImageURL)
		})
	}
}

func TestNormalizer_NestedImageStableOrder(t *testing.T) {
	urlExt := func(name, u string) map[string][]ext.Extension {
		return map[string][]ext.Extension{name: {{Name: name, Attrs: map[string]string{"url": u}}}}
	}
	n := NewNormalizer()
	for i := range 50 {
		item := &gofeed.Item{
			Link: "https://e.com/article",
			Extensions: ext.Extensions{
				"c": urlExt("image", "https://e.com/c.jpg"),
				"a": {"thumb": {{Name: "thumb", Attrs: map[string]string{"url": "https://e.com/a2.jpg"}}},
					"image": {{Name: "image", Attrs: map[string]string{"url": "https://e.com/a.jpg"}}}},
				"b": urlExt("image", "https://e.com/b.jpg"),
			},
		}
		a, err := n.Normalize(item, 1, time.Now())
		require.NoError(t, err)
		require.Equal(t, "https://e.com/a.jpg", a.ImageURL, "iteration %d", i)
	}
}

func TestHasImageExtension(t *testing.T) {
	assert.True(t, hasImageExtension("https://e.com/a.jpeg"))
	assert.True(t, hasImageExtension("https://e.com/a.PNG?x=1"))
	assert.True(t, hasImageExtension("/relative/a.gif"))
	assert.False(t, hasImageExtension("https://e.com/a.mp4"))
	assert.False(t, hasImageExtension("https://e.com/jpg"))
	assert.False(t, hasImageExtension(""))
}
