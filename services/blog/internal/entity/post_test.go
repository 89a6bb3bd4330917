package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPostQuery_Offset(t *testing.T) {
	assert.Equal(t, 0, PostQuery{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 20, PostQuery{Page: 3, Limit: 10}.Offset())
	assert.Equal(t, 0, PostQuery{Page: 0, Limit: 10}.Offset())
	assert.Equal(t, 0, PostQuery{Page: 5, Limit: 0}.Offset())
	assert.Equal(t, math.MaxInt, PostQuery{Page: math.MaxInt / 5, Limit: 10}.Offset())
	assert.Equal(t, math.MaxInt, PostQuery{Page: math.MaxInt, Limit: 100}.Offset())
}

func TestPost_VisibleTo(t *testing.T) {
	draft := &Post{AuthorID: "alice", Status: StatusDraft}
	assert.True(t, draft.VisibleTo("alice"))
	assert.False(t, draft.VisibleTo("bob"))
	assert.False(t, draft.VisibleTo(""))

	published := &Post{AuthorID: "alice", Status: StatusPublished}
	assert.True(t, published.VisibleTo(""))
}
