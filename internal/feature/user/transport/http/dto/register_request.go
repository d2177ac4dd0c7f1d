// Package dto はuserフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// RegisterReq represents the request body for the registration endpoint.
// It is sent as multipart form data (the profile picture travels alongside)
// or as plain JSON. Gin's binding tags validate required fields and lengths.
type RegisterReq struct {
	Name     string `form:"name" json:"name" binding:"required,min=2"`
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required,min=6"`
}
