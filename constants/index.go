package constants

// Response messages
const (
	MISSING_LOGIN_INPUT   = "Username and password are required"
	INVALID_CREDENTIALS   = "Invalid username or password"
	USERNAME_TAKEN        = "Username already exists"
	NOT_ADMIN             = "Admin permission required"
	NOT_LOGGED_IN         = "Please log in"
	ERROR_INTERNAL_ERROR  = "Internal server error"
	ERROR_PARSE_INPUT     = "Could not parse request data"
	ORDER_NOT_FOUND       = "Order not found"
	REVIEW_NOT_FOUND      = "Review not found"
	QUOTA_EXCEEDED        = "Not enough ticket quota for the requested quantity"
	OUT_OF_STOCK          = "Not enough stock for the requested quantity"
	ERROR_SAVE_STATE      = "Failed to persist state"
)

// Order lifecycle
const (
	ORDER_STATUS_ACTIVE    = "active"
	ORDER_STATUS_CANCELLED = "cancelled"
)

// Payment lifecycle
const (
	PAYMENT_STATUS_SUCCESS = "success"
	PAYMENT_STATUS_FAILED  = "failed"
)

// Order line kinds
const (
	ITEM_KIND_TICKET = "ticket"
	ITEM_KIND_MERCH  = "merch"
)

// Customer types
const (
	CUSTOMER_TYPE_ADULT  = "Adult"
	CUSTOMER_TYPE_CHILD  = "Child"
	CUSTOMER_TYPE_SENIOR = "Senior"
)
