package dto

// ResetPasswordReq は/api/users/reset-passwordエンドポイントのリクエストボディを表します。
type ResetPasswordReq struct {
	Token string `json:"token" binding:"required"`
}
