package constants

// コレクション名 / テーブル名
const (
	CollectionItems  = "items"
	CollectionUsers  = "users"
	ContextUserKey   = "user"
	ContextTokenKey  = "token"
	ContextLoggerKey = "logger"
	HeaderRequestID  = "X-Request-Id"
)

// レスポンスメッセージ
const (
	MsgRegistrationSuccess = "Registration successful"
	MsgRegistrationFailed  = "Registration Failed"
	MsgLoginSuccess        = "Login successful"
	MsgLoginFailed         = "Login failed"
	MsgInvalidCredentials  = "Invalid credentials"
	MsgLogoutSuccess       = "Successfully logged out"
	MsgItemAdded           = "Item added successfully"
	MsgItemAddFailed       = "Error adding item"
	MsgItemDeleted         = "Item deleted successfully"
	MsgItemDeleteFailed    = "Error deleting item"
	MsgItemUpdated         = "Item updated successfully"
	MsgItemUpdateFailed    = "Error updating item"
	MsgEmailRequired       = "Email is required"
	MsgMissingUserEmail    = "Missing userEmail"
	MsgNoItemsFound        = "No items found in your grocery list"
	MsgSampleWorking       = "Sample endpoint working"
	MsgGreeting            = "Hello World!"
)

// エラーメッセージ
const (
	ErrUnexpected   = "Unexpected error"
	ErrInvalidInput = "Invalid input"
	ErrServer       = "Server error"
	ErrUnauthorized = "Unauthorized"
)
