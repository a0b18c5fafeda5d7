package models

// SignupRequest represents the JSON body for user registration
// swagger:model SignupRequest
type SignupRequest struct {
	// required: true
	// example: Jane
	FirstName string `json:"firstName"`

	// example: Doe
	LastName *string `json:"lastName,omitempty"`

	// required: true
	// example: jane@example.com
	Email string `json:"email"`

	// required: true
	// example: Secret#123
	Password string `json:"password"`

	// example: 27
	Age *int `json:"age,omitempty"`

	// example: female
	Gender *string `json:"gender,omitempty"`

	// example: https://example.com/jane.jpg
	PhotoURL *string `json:"photoUrl,omitempty"`
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// required: true
	// example: jane@example.com
	Email string `json:"email"`

	// required: true
	// example: Secret#123
	Password string `json:"password"`
}

// PasswordChangeRequest represents the JSON body for a password change
// swagger:model PasswordChangeRequest
type PasswordChangeRequest struct {
	// required: true
	CurrentPassword string `json:"currentPassword"`

	// required: true
	NewPassword string `json:"newPassword"`
}

// MessageResponse is a plain acknowledgement
// swagger:model MessageResponse
type MessageResponse struct {
	// example: Logged out successfully
	Message string `json:"message"`
}

// ProfileResponse carries a profile with an acknowledgement
// swagger:model ProfileResponse
type ProfileResponse struct {
	// example: Profile retrieved successfully
	Message string  `json:"message"`
	User    Profile `json:"user"`
}

// LoginResponse is returned on successful login. The token is also set as
// the session cookie.
// swagger:model LoginResponse
type LoginResponse struct {
	// example: Login successful
	Message string `json:"message"`

	// example: JWT_TOKEN
	Token string  `json:"token"`
	User  Profile `json:"user"`
}

// ConnectionRequestResponse carries a created or reviewed request
// swagger:model ConnectionRequestResponse
type ConnectionRequestResponse struct {
	// example: Connection request sent successfully
	Message string              `json:"message"`
	Request ConnectionRequestDB `json:"request"`
}

// ConnectionsResponse lists accepted connections
// swagger:model ConnectionsResponse
type ConnectionsResponse struct {
	Success bool             `json:"success"`
	Data    []ConnectionView `json:"data"`
}

// ReceivedRequestsResponse lists pending incoming requests
// swagger:model ReceivedRequestsResponse
type ReceivedRequestsResponse struct {
	Success bool                  `json:"success"`
	Data    []ReceivedRequestView `json:"data"`
}

// FeedResponse is one page of the feed
// swagger:model FeedResponse
type FeedResponse struct {
	Success    bool          `json:"success"`
	Data       []UserSummary `json:"data"`
	Pagination Pagination    `json:"pagination"`
}

// ErrorResponse represents an error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// example: Invalid request body
	Error string `json:"error"`

	// Field-keyed validation errors
	Fields map[string]string `json:"fields,omitempty"`

	// Extra context, e.g. the current status of a request
	Details map[string]any `json:"details,omitempty"`
}
