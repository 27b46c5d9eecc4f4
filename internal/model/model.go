// Package model содержит доменные сущности отчёта о пополнении токенов.
package model

// User представляет пользователя из входного файла users.json.
type User struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	CompanyID    int64  `json:"company_id"`
	Tokens       int64  `json:"tokens"`
	ActiveStatus bool   `json:"active_status"`
}

// Company представляет компанию из входного файла companies.json.
type Company struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	TopUp       int64  `json:"top_up"`
	EmailStatus bool   `json:"email_status"`
}

// Balance содержит баланс пользователя до и после пополнения.
// Previous фиксируется до начисления и не пересчитывается обратно из New.
type Balance struct {
	User     User
	Previous int64
	New      int64
	// Resolved равен true, если компания пользователя найдена.
	Resolved bool
}
