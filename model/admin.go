package model

type Admin struct {
	Id       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
}

type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AdminLoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	Admin   Admin  `json:"admin"`
	Message string `json:"message"`
}
