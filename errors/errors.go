package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Kind string

const (
	KindValidation    Kind = "ValidationError"
	KindAuthorization Kind = "AuthorizationError"
	KindNotFound      Kind = "NotFoundError"
	KindConflict      Kind = "ConflictError"
	KindDependency    Kind = "DependencyError"
	KindInternal      Kind = "InternalError"
)

// DomainError carries a kind and a stable reason.
// The reason is the only text allowed to reach a caller.
type DomainError struct {
	Kind   Kind
	Reason string
}

func (e *DomainError) Error() string {
	if e.Reason == "" {
		return string(e.Kind)
	}
	return e.Reason
}

// Is matches another DomainError of the same kind.
// A target without reason matches every error of its kind.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Reason == "" || t.Reason == e.Reason)
}

func newError(kind Kind, reason string) *DomainError {
	return &DomainError{Kind: kind, Reason: reason}
}

var (
	ErrValidation    = newError(KindValidation, "")
	ErrAuthorization = newError(KindAuthorization, "")
	ErrNotFound      = newError(KindNotFound, "")
	ErrConflict      = newError(KindConflict, "")
	ErrDependency    = newError(KindDependency, "")

	ErrInvalidParticipants   = newError(KindValidation, "invalid participants")
	ErrInvalidKind           = newError(KindValidation, "invalid conversation kind")
	ErrEmptyContent          = newError(KindValidation, "text message requires content")
	ErrMissingMedia          = newError(KindValidation, "media message requires at least one media reference")
	ErrUnknownMessageType    = newError(KindValidation, "unknown message type")
	ErrLockedWithoutPrice    = newError(KindValidation, "locked message requires a positive price")
	ErrPriceWithoutCurrency  = newError(KindValidation, "price and currency must be provided together")
	ErrPriceWithoutLock      = newError(KindValidation, "only locked messages carry a price")
	ErrPPVDisabled           = newError(KindValidation, "pay-per-view is disabled for this conversation")
	ErrMediaNotAllowed       = newError(KindValidation, "media is not allowed in this conversation")
	ErrInvalidReply          = newError(KindValidation, "reply target does not belong to this conversation")
	ErrInvalidPageSize       = newError(KindValidation, "page size must be between 1 and 100")
	ErrInvalidPayload        = newError(KindValidation, "malformed payload")
	ErrImmutableMessage      = newError(KindValidation, "message cannot be modified")
	ErrInvalidStatusChange   = newError(KindValidation, "invalid message status transition")
	ErrConversationInactive  = newError(KindValidation, "conversation is inactive")
	ErrNotParticipant        = newError(KindAuthorization, "not a participant of this conversation")
	ErrNotOwner              = newError(KindAuthorization, "only the conversation owner may do this")
	ErrNotSender             = newError(KindAuthorization, "only the sender may modify this message")
	ErrAuthRequired          = newError(KindAuthorization, "authentication required")
	ErrConversationNotFound  = newError(KindNotFound, "conversation not found")
	ErrMessageNotFound       = newError(KindNotFound, "message not found")
	ErrUserNotFound          = newError(KindNotFound, "user not found")
	ErrDuplicateConversation = newError(KindConflict, "conversation already exists")
	ErrLedgerUnavailable     = newError(KindDependency, "entitlement ledger unavailable")
	ErrTransportBackpressure = newError(KindDependency, "transport buffer full")
	ErrStoreContention       = newError(KindDependency, "store is busy, retry later")

	ErrWorkerPanic  = fmt.Errorf("worker panic")
	ErrEmptyWords   = fmt.Errorf("no words have been found")
	ErrInvalidKey   = fmt.Errorf("codec key must be 32 bytes")
	ErrUnknownCodec = fmt.Errorf("unknown codec")
)

// Describe returns the kind and the stable reason of err.
// Errors outside the taxonomy are reported as internal without detail.
func Describe(err error) (Kind, string) {
	var de *DomainError
	if stderrors.As(err, &de) {
		return de.Kind, de.Error()
	}
	return KindInternal, "internal error"
}

func MapToHTTPStatus(err error) int {
	kind, _ := Describe(err)
	switch kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuthorization:
		if stderrors.Is(err, ErrAuthRequired) {
			return http.StatusUnauthorized
		}
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindDependency:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func MapToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	kind, reason := Describe(err)
	switch kind {
	case KindValidation:
		return status.Error(codes.InvalidArgument, reason)
	case KindAuthorization:
		if stderrors.Is(err, ErrAuthRequired) {
			return status.Error(codes.Unauthenticated, reason)
		}
		return status.Error(codes.PermissionDenied, reason)
	case KindNotFound:
		return status.Error(codes.NotFound, reason)
	case KindConflict:
		return status.Error(codes.Aborted, reason)
	case KindDependency:
		return status.Error(codes.Unavailable, reason)
	default:
		return status.Error(codes.Internal, reason)
	}
}
