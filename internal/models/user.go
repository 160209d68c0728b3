package models

// User representa al usuario de la sesión. Es una instancia mock única:
// se crea al iniciar sesión y se descarta al cerrarla.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

// BankAccount representa una cuenta bancaria vinculada. La lista es
// estática y nunca se modifica.
type BankAccount struct {
	ID       string  `json:"id"`
	BankName string  `json:"bankName"`
	LastFour string  `json:"lastFour"`
	Balance  float64 `json:"balance"`
}
