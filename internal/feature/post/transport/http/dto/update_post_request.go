package dto

// UpdatePostReq は投稿の部分更新リクエストを表します。
// 省略されたフィールドは変更されません。
type UpdatePostReq struct {
	Title *string `form:"postTitle" json:"postTitle" binding:"omitempty,min=3"`
	Body  *string `form:"postBody" json:"postBody" binding:"omitempty,min=3"`
}
