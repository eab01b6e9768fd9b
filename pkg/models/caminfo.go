package models

// CameraInfo is the identity reported by GET /get_caminfo.cgi
type CameraInfo struct {
	Model string `json:"model"`
}
