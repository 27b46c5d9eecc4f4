package ledger

import "github.com/mmeshcher/topup-report/internal/model"

// Totals хранит сумму пополнений по идентификатору компании.
type Totals map[int64]int64

// Of возвращает сумму пополнений компании или ноль, если записей нет.
func (t Totals) Of(companyID int64) int64 {
	return t[companyID]
}

// Sum возвращает сумму пополнений по всем компаниям.
func (t Totals) Sum() int64 {
	var sum int64
	for _, v := range t {
		sum += v
	}
	return sum
}

// ComputeBalances рассчитывает новый баланс каждого пользователя в исходном порядке.
// Входные записи не изменяются: прежний баланс сохраняется в Previous.
func ComputeBalances(users []model.User, dir *Directory) []model.Balance {
	balances := make([]model.Balance, 0, len(users))
	for _, u := range users {
		b := model.Balance{
			User:     u,
			Previous: u.Tokens,
			New:      u.Tokens,
		}
		if c, ok := dir.Lookup(u.CompanyID); ok {
			b.New = u.Tokens + c.TopUp
			b.Resolved = true
		}
		balances = append(balances, b)
	}
	return balances
}

// TotalTopUps суммирует пополнения по компаниям для всех пользователей с найденной компанией,
// независимо от их активности и статуса рассылки.
func TotalTopUps(users []model.User, dir *Directory) Totals {
	totals := make(Totals)
	for _, u := range users {
		c, ok := dir.Lookup(u.CompanyID)
		if !ok {
			continue
		}
		totals[c.ID] += c.TopUp
	}
	return totals
}
