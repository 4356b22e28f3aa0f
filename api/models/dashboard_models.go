package models

type ProfileResponse struct {
	ID          string `json:"id"`
	Phone       string `json:"phone"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
	Gender      string `json:"gender"`
}

type DashboardResponse struct {
	Profile     *ProfileResponse     `json:"profile"`
	Application *ApplicationResponse `json:"application"`
	Payment     *PaymentResponse     `json:"payment,omitempty"`
}

type SessionResponse struct {
	Active bool   `json:"active"`
	Stage  string `json:"stage"`
}
