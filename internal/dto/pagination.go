package dto

// ListParams defines query parameters for keyset paginated lists.
type ListParams struct {
	Limit     int    `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken string `form:"nextToken"`
}
