package comments

import "sort"

// ThreadNode is one comment with its direct replies nested under it.
type ThreadNode struct {
	Comment *Comment      `json:"comment"`
	Replies []*ThreadNode `json:"replies"`
}

// BuildThreads assembles a flat comment list (all belonging to one
// artist) into a reply forest for display.
//
// Ordering contract: roots are newest-first, and the replies under
// every node are newest-first as well. A comment whose reply_to does
// not resolve within the input set becomes a root (silent degrade, not
// an error). Soft-deleted comments participate like any other so their
// position in the thread is preserved as a placeholder.
//
// Pure function, no I/O.
func BuildThreads(comments []*Comment) []*ThreadNode {
	sorted := make([]*Comment, len(comments))
	copy(sorted, comments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	nodes := make(map[int64]*ThreadNode, len(sorted))
	for _, c := range sorted {
		nodes[c.ID] = &ThreadNode{Comment: c, Replies: []*ThreadNode{}}
	}

	roots := []*ThreadNode{}
	for _, c := range sorted {
		if c.ReplyTo != nil {
			if parent, ok := nodes[*c.ReplyTo]; ok {
				parent.Replies = append(parent.Replies, nodes[c.ID])
				continue
			}
		}
		roots = append(roots, nodes[c.ID])
	}
	return roots
}
