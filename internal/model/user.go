package model

type User struct {
	ID    string `json:"id"`
	Login string `json:"login"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Plan  string `json:"plan"` // free, standard, premium
}
