package request

type CreatePetRequest struct {
	Name    string  `json:"name" binding:"required,max=100"`
	Species string  `json:"species" binding:"required"`
	Breed   *string `json:"breed,omitempty"`
}
