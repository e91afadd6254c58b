package errorcode

// Error types carried on appError.Err.ErrType
const (
	SUCCESS             = "SUCCESS"
	INPUT_ERR_CODE      = "INPUT_ERR"
	VALIDATION_ERR_CODE = "VALIDATION_ERR"
	SERVER_ERR_CODE     = "SERVER_ERR"
	RECORD_NOT_FOUND    = "RECORD_NOT_FOUND"
	ASSET_NOT_FOUND     = "ASSET_NOT_FOUND"
	INSUFFICIENT_FUNDS  = "INSUFFICIENT_FUNDS"
	STORAGE_CONFLICT    = "STORAGE_CONFLICT"
	UNAUTHORIZED        = "UNAUTHORIZED"
	FORBIDDEN           = "FORBIDDEN"
	PRICE_FEED_ERR      = "PRICE_FEED_ERR"
)

// Client facing messages
var (
	SUCCESS_MESSAGE      = "Request Proccessed Successfully"
	INPUT_ERR            = "Invalid Input Supplied. See documentation"
	SYSTEM_ERR           = "Request Could Not Be Proccessed. Server encountered an error"
	VALIDATION_ERR       = "Validation Failed For Some Fields"
	STORAGE_CONFLICT_ERR = "Balance was modified by another request, please retry"
	EMPTY_AUTH_KEY       = "Authentication token is required"
	INVALID_AUTH_TOKEN   = "Authentication token is not valid"
	INVALID_PERMISSIONS  = "Access forbidden, appropriate permission not granted"
	ADMIN_ONLY           = "Access forbidden, only admins can change user roles"
	OWNER_ONLY           = "Access forbidden, users can only change their own bank details"
	REQUEST_TIMEOUT      = "Request timed out"
)
