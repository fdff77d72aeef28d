package comments

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func commentAt(id int64, replyTo *int64, createdAt time.Time) *Comment {
	return &Comment{
		ID:        id,
		AuthorID:  1,
		ArtistID:  1,
		ReplyTo:   replyTo,
		Text:      "text",
		CreatedAt: createdAt,
	}
}

func ref(id int64) *int64 { return &id }

func TestBuildThreads_RootsNewestFirst(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c1 := commentAt(1, nil, base)
	c2 := commentAt(2, nil, base.Add(time.Minute))
	c3 := commentAt(3, nil, base.Add(2*time.Minute))

	roots := BuildThreads([]*Comment{c1, c2, c3})

	require.Len(t, roots, 3)
	assert.Equal(t, int64(3), roots[0].Comment.ID)
	assert.Equal(t, int64(2), roots[1].Comment.ID)
	assert.Equal(t, int64(1), roots[2].Comment.ID)
}

func TestBuildThreads_ReplyNestsUnderParent(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c1 := commentAt(1, nil, base)
	c2 := commentAt(2, nil, base.Add(time.Minute))
	c3 := commentAt(3, nil, base.Add(2*time.Minute))
	// Reply to the oldest root, posted last
	r := commentAt(4, ref(1), base.Add(3*time.Minute))

	roots := BuildThreads([]*Comment{c1, c2, c3, r})

	require.Len(t, roots, 3)
	// The reply does not disturb root ordering
	assert.Equal(t, int64(3), roots[0].Comment.ID)
	assert.Equal(t, int64(1), roots[2].Comment.ID)
	// It nests under c1 regardless of c1's position
	require.Len(t, roots[2].Replies, 1)
	assert.Equal(t, int64(4), roots[2].Replies[0].Comment.ID)
}

func TestBuildThreads_RepliesNewestFirstWithinNode(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	parent := commentAt(1, nil, base)
	rOld := commentAt(2, ref(1), base.Add(time.Minute))
	rNew := commentAt(3, ref(1), base.Add(2*time.Minute))

	roots := BuildThreads([]*Comment{parent, rOld, rNew})

	require.Len(t, roots, 1)
	require.Len(t, roots[0].Replies, 2)
	assert.Equal(t, int64(3), roots[0].Replies[0].Comment.ID)
	assert.Equal(t, int64(2), roots[0].Replies[1].Comment.ID)
}

func TestBuildThreads_NestedChain(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	root := commentAt(1, nil, base)
	reply := commentAt(2, ref(1), base.Add(time.Minute))
	replyToReply := commentAt(3, ref(2), base.Add(2*time.Minute))

	roots := BuildThreads([]*Comment{root, reply, replyToReply})

	require.Len(t, roots, 1)
	require.Len(t, roots[0].Replies, 1)
	require.Len(t, roots[0].Replies[0].Replies, 1)
	assert.Equal(t, int64(3), roots[0].Replies[0].Replies[0].Comment.ID)
}

func TestBuildThreads_MissingParentBecomesRoot(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	orphan := commentAt(2, ref(99), base)

	roots := BuildThreads([]*Comment{orphan})

	require.Len(t, roots, 1)
	assert.Equal(t, int64(2), roots[0].Comment.ID)
	assert.Empty(t, roots[0].Replies)
}

func TestBuildThreads_DeletedParentKeepsReplies(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	parent := commentAt(1, nil, base)
	parent.Deleted = true
	reply := commentAt(2, ref(1), base.Add(time.Minute))

	roots := BuildThreads([]*Comment{parent, reply})

	// The deleted comment still anchors its replies as a placeholder
	require.Len(t, roots, 1)
	assert.True(t, roots[0].Comment.Deleted)
	require.Len(t, roots[0].Replies, 1)
	assert.Equal(t, int64(2), roots[0].Replies[0].Comment.ID)
}

func TestBuildThreads_EmptyInput(t *testing.T) {
	roots := BuildThreads(nil)
	assert.NotNil(t, roots)
	assert.Empty(t, roots)
}

func TestBuildThreads_DoesNotMutateInput(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	input := []*Comment{
		commentAt(1, nil, base),
		commentAt(2, nil, base.Add(time.Minute)),
	}

	BuildThreads(input)

	assert.Equal(t, int64(1), input[0].ID)
	assert.Equal(t, int64(2), input[1].ID)
}
