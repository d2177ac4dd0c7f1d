package dto

// ForgetPasswordReq は/api/users/forget-passwordエンドポイントのリクエストボディを表します。
// Passwordは適用したい新しいパスワードです（リセットトークンの引き換え時に反映）。
type ForgetPasswordReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}
