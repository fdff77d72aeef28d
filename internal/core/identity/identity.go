package identity

// Identity is the resolved caller of an authenticated request.
// Produced by the auth middleware from a verified x-auth-token.
type Identity struct {
	UserID  int64 `json:"userId"`
	IsAdmin bool  `json:"isAdmin"`
}

// CanMutateComment reports whether the requester may edit or delete a
// comment written by authorID. Authors may mutate their own comments;
// admins may mutate any comment.
func CanMutateComment(requester Identity, authorID int64) bool {
	return requester.UserID == authorID || requester.IsAdmin
}
