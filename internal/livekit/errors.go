package livekit

import "github.com/tutorlink/session-gateway/internal/errors"

const (
	ErrFailedRequest       errors.Code = "fail to make request"
	ErrInvalidResponse     errors.Code = "invalid response"
	ErrNoneSuccessResponse errors.Code = "none success response"
	ErrRoomNotFound        errors.Code = "room not found"
	ErrAuthFailed          errors.Code = "registry auth failed"
)
