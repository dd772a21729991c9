package request

type ClientCreateRequest struct {
	Name  string `json:"name" example:"Ana Souza"`
	Email string `json:"email" example:"ana@example.com"`
	Cpf   string `json:"cpf" example:"529.982.247-25"`
}

type ClientUpdateRequest struct {
	Name  string `json:"name" example:"Ana Souza"`
	Email string `json:"email" example:"ana@example.com"`
}
