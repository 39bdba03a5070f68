package domain

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     PageRequest
		wantErr string
	}{
		{name: "valid", req: PageRequest{Page: 1, PageSize: 20}},
		{name: "max size", req: PageRequest{Page: 3, PageSize: 100}},
		{name: "zero page", req: PageRequest{Page: 0, PageSize: 20}, wantErr: "invalid page: must be at least 1"},
		{name: "negative page", req: PageRequest{Page: -1, PageSize: 20}, wantErr: "invalid page"},
		{name: "zero size", req: PageRequest{Page: 1, PageSize: 0}, wantErr: "invalid page_size: must be between 1 and 100"},
		{name: "too large", req: PageRequest{Page: 1, PageSize: 101}, wantErr: "invalid page_size"},
		{name: "deepest page", req: PageRequest{Page: MaxOffset/100 + 1, PageSize: 100}},
		{name: "page past max offset", req: PageRequest{Page: MaxOffset/100 + 2, PageSize: 100},
			wantErr: "invalid page: too large for page size 100"},
		{name: "huge page", req: PageRequest{Page: math.MaxInt, PageSize: 20}, wantErr: "invalid page: too large"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate(100)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			var ve *ValidationError
			assert.True(t, errors.As(err, &ve))
		})
	}
}

func TestPageRequest_Offset(t *testing.T) {
	assert.Equal(t, 0, PageRequest{Page: 1, PageSize: 10}.Offset())
	assert.Equal(t, 20, PageRequest{Page: 3, PageSize: 10}.Offset())

	deepest := PageRequest{Page: MaxOffset/100 + 1, PageSize: 100}
	require.NoError(t, deepest.Validate(100))
	assert.Positive(t, deepest.Offset())
	assert.LessOrEqual(t, deepest.Offset(), MaxOffset)
}

func TestEmptyPage(t *testing.T) {
	p := EmptyPage[Article](PageRequest{Page: 2, PageSize: 5})
	assert.Equal(t, 0, p.Total)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 5, p.PageSize)
	assert.NotNil(t, p.Items)
	assert.Empty(t, p.Items)
}
