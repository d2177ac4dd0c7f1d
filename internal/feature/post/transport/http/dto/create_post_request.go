// Package dto はpostフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// CreatePostReq represents the request body for creating a post.
// It is sent as multipart form data (the post image travels alongside)
// or as plain JSON.
type CreatePostReq struct {
	Title string `form:"postTitle" json:"postTitle" binding:"required,min=3"`
	Body  string `form:"postBody" json:"postBody" binding:"required,min=3"`
}
