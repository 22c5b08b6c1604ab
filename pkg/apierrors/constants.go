package apierrors

const (
	MsgInvalidID          = "invalidId"
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgInvalidUserPayload = "invalidUserPayload"
	MsgMissingField       = "missingRequiredField"
	MsgInvalidStatus      = "invalidStatus"
	MsgInvalidPriority    = "invalidPriority"
	MsgInvalidRole        = "invalidRole"
	MsgInvalidEmail       = "invalidEmail"
	MsgDuplicateEmail     = "duplicateEmail"
	MsgTaskNotFound       = "taskNotFound"
	MsgUserNotFound       = "userNotFound"
	MsgRouteNotFound      = "routeNotFound"
	MsgTooManyRequests    = "tooManyRequests"
	MsgInternalError      = "internalError"
)
