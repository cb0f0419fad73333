package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrUnauthorized       ErrCode = "UNAUTHORIZED"
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
	ErrMissingField       ErrCode = "MISSING_FIELD"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"
	ErrEmptyMessage   ErrCode = "EMPTY_MESSAGE"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound        ErrCode = "NOT_FOUND"
	ErrStartupNotFound ErrCode = "STARTUP_NOT_FOUND"
	ErrRouteNotFound   ErrCode = "ROUTE_NOT_FOUND"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrStore    ErrCode = "STORE_ERROR"
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Authentication ────────────────────────────────────────────────
	case ErrUnauthorized:
		return "Unauthorized"
	case ErrInvalidCredentials:
		return "Noto'g'ri login yoki parol"
	case ErrMissingField:
		return "Username va password kiriting"

	// ─── Validation ────────────────────────────────────────────────────
	case ErrValidation:
		return "Kiritilgan ma'lumotlar noto'g'ri"
	case ErrInvalidPayload:
		return "So'rov ma'lumotlari noto'g'ri formatda"
	case ErrEmptyMessage:
		return "Xabar matni kiritilmagan"

	// ─── Resources ─────────────────────────────────────────────────────
	case ErrNotFound:
		return "Ma'lumot topilmadi"
	case ErrStartupNotFound:
		return "Startap topilmadi"
	case ErrRouteNotFound:
		return "Sahifa topilmadi"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	case ErrRateLimitExceeded:
		return "Juda ko'p so'rov. Birozdan so'ng qayta urinib ko'ring."

	// ─── Server ────────────────────────────────────────────────────────
	case ErrStore:
		return "Ma'lumotlar bazasi xatosi"
	case ErrInternal:
		return "Ichki server xatosi"
	default:
		return "Kutilmagan xatolik yuz berdi"
	}
}
