package dto

// ClientRegisterRequest carries the registration form fields. Field names
// are case-sensitive and match the public API exactly.
type ClientRegisterRequest struct {
	Name       string `form:"name" json:"name"`
	Age        string `form:"age" json:"age"`
	Email      string `form:"email" json:"email"`
	Phone      string `form:"phone" json:"phone"`
	Address    string `form:"address" json:"address"`
	Gender     string `form:"gender" json:"gender"`
	NationalID string `form:"national_id" json:"national_id"`
	Password   string `form:"password" json:"password"`
}

// ClientLoginRequest carries the login form fields.
type ClientLoginRequest struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

// StatusResponse is the uniform ok/error envelope.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
