package dto

// ActivateReq は/api/users/activateエンドポイントのリクエストボディを表します。
type ActivateReq struct {
	Token string `json:"token" binding:"required"`
}
