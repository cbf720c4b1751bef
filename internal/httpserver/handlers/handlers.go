package handlers

const (
	InvalidRequest = "INVALID_REQUEST"
	InternalError  = "INTERNAL_ERROR"
)
