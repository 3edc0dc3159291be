package api

import "github.com/um6p-sci/solidarity-api/store"

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1003: "invalid token",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: store.ErrEmailTaken.Error(),
		1101: "account not found",
		1102: "this account has been suspended",
		1103: "email address has not been verified",
		1104: "wrong email or password",
		1105: store.ErrWrongVerification.Error(),
		1106: "registration is restricted to institutional emails",

		1200: store.ErrRequestNotFound.Error(),
		1201: store.ErrNotRequestOwner.Error(),
		1202: store.ErrInvalidCategory.Error(),
		1203: store.ErrRequestCompleted.Error(),
		1204: store.ErrRequestNotOpen.Error(),
		1205: store.ErrRequestNotAssigned.Error(),
		1206: store.ErrRequestNotCompleted.Error(),

		1300: store.ErrOfferNotFound.Error(),
		1301: store.ErrOwnRequest.Error(),
		1302: store.ErrRequestClosed.Error(),
		1303: store.ErrOfferNotPending.Error(),

		1400: store.ErrChatNotFound.Error(),
		1401: store.ErrNotChatParticipant.Error(),
		1402: store.ErrEmptyMessage.Error(),

		1500: store.ErrNotificationNotFound.Error(),

		1600: store.ErrInvalidScore.Error(),
		1601: store.ErrAlreadyRated.Error(),
		1602: store.ErrNotAssignedHelper.Error(),

		1700: store.ErrCannotSuspendAdmin.Error(),
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorEmailTaken         = errorJSON(1100)
	errorAccountNotFound    = errorJSON(1101)
	errorAccountSuspended   = errorJSON(1102)
	errorEmailNotVerified   = errorJSON(1103)
	errorWrongCredential    = errorJSON(1104)
	errorWrongVerification  = errorJSON(1105)
	errorEmailDomain        = errorJSON(1106)

	errorRequestNotFound     = errorJSON(1200)
	errorNotRequestOwner     = errorJSON(1201)
	errorInvalidCategory     = errorJSON(1202)
	errorRequestCompleted    = errorJSON(1203)
	errorRequestNotOpen      = errorJSON(1204)
	errorRequestNotAssigned  = errorJSON(1205)
	errorRequestNotCompleted = errorJSON(1206)

	errorOfferNotFound   = errorJSON(1300)
	errorOwnRequest      = errorJSON(1301)
	errorRequestClosed   = errorJSON(1302)
	errorOfferNotPending = errorJSON(1303)

	errorChatNotFound       = errorJSON(1400)
	errorNotChatParticipant = errorJSON(1401)
	errorEmptyMessage       = errorJSON(1402)

	errorNotificationNotFound = errorJSON(1500)

	errorInvalidScore      = errorJSON(1600)
	errorAlreadyRated      = errorJSON(1601)
	errorNotAssignedHelper = errorJSON(1602)

	errorCannotSuspendAdmin = errorJSON(1700)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// storeErrorResponse maps a named store error to its wire error code.
// Unmapped errors fall back to an internal server error.
func storeErrorResponse(err error) (int, ErrorResponse) {
	switch err {
	case store.ErrUserNotFound:
		return 404, errorAccountNotFound
	case store.ErrEmailTaken:
		return 403, errorEmailTaken
	case store.ErrWrongVerification:
		return 400, errorWrongVerification
	case store.ErrCannotSuspendAdmin:
		return 403, errorCannotSuspendAdmin
	case store.ErrRequestNotFound:
		return 404, errorRequestNotFound
	case store.ErrNotRequestOwner:
		return 403, errorNotRequestOwner
	case store.ErrInvalidCategory:
		return 400, errorInvalidCategory
	case store.ErrRequestCompleted:
		return 409, errorRequestCompleted
	case store.ErrRequestNotOpen:
		return 409, errorRequestNotOpen
	case store.ErrRequestNotAssigned:
		return 409, errorRequestNotAssigned
	case store.ErrRequestNotCompleted:
		return 409, errorRequestNotCompleted
	case store.ErrOfferNotFound:
		return 404, errorOfferNotFound
	case store.ErrOwnRequest:
		return 403, errorOwnRequest
	case store.ErrRequestClosed:
		return 409, errorRequestClosed
	case store.ErrOfferNotPending:
		return 409, errorOfferNotPending
	case store.ErrChatNotFound:
		return 404, errorChatNotFound
	case store.ErrNotChatParticipant:
		return 403, errorNotChatParticipant
	case store.ErrEmptyMessage:
		return 400, errorEmptyMessage
	case store.ErrNotificationNotFound:
		return 404, errorNotificationNotFound
	case store.ErrInvalidScore:
		return 400, errorInvalidScore
	case store.ErrAlreadyRated:
		return 409, errorAlreadyRated
	case store.ErrNotAssignedHelper:
		return 403, errorNotAssignedHelper
	}

	return 500, errorInternalServer
}
