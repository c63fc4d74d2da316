package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListReviewsRequest_Normalize(t *testing.T) {
	tests := []struct {
		name      string
		in        ListReviewsRequest
		wantPage  int
		wantLimit int
		wantSort  string
	}{
		{"zero value", ListReviewsRequest{}, 1, 20, "newest"},
		{"negative page", ListReviewsRequest{Page: -5, Limit: 10, Sort: "oldest"}, 1, 10, "oldest"},
		{"limit too high", ListReviewsRequest{Page: 2, Limit: 500, Sort: "highest"}, 2, 100, "highest"},
		{"unknown sort", ListReviewsRequest{Page: 1, Limit: 20, Sort: "random"}, 1, 20, "newest"},
		{"valid passthrough", ListReviewsRequest{Page: 3, Limit: 50, Sort: "lowest"}, 3, 50, "lowest"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.Normalize()
			assert.Equal(t, tt.wantPage, tt.in.Page)
			assert.Equal(t, tt.wantLimit, tt.in.Limit)
			assert.Equal(t, tt.wantSort, tt.in.Sort)
		})
	}
}

func TestListReviewsRequest_Offset(t *testing.T) {
	req := ListReviewsRequest{Page: 3, Limit: 20}
	assert.Equal(t, 40, req.Offset())

	req = ListReviewsRequest{Page: 1, Limit: 20}
	assert.Equal(t, 0, req.Offset())
}

func TestUpdateReviewRequest_HasChanges(t *testing.T) {
	rating := 4
	comment := "Updated comment"

	assert.False(t, UpdateReviewRequest{}.HasChanges())
	assert.True(t, UpdateReviewRequest{Rating: &rating}.HasChanges())
	assert.True(t, UpdateReviewRequest{Comment: &comment}.HasChanges())
	assert.True(t, UpdateReviewRequest{Rating: &rating, Comment: &comment}.HasChanges())
}
