package ledger

import "github.com/mmeshcher/topup-report/internal/model"

// Members связывает идентификатор компании с её пользователями в исходном порядке.
type Members map[int64][]model.Balance

// FilterActive оставляет активных пользователей, чья компания найдена. Порядок сохраняется.
func FilterActive(balances []model.Balance) []model.Balance {
	active := make([]model.Balance, 0, len(balances))
	for _, b := range balances {
		if b.Resolved && b.User.ActiveStatus {
			active = append(active, b)
		}
	}
	return active
}

// GroupByCompany за один проход раскладывает пользователей по компаниям.
// Пользователи без найденной компании пропускаются.
func GroupByCompany(balances []model.Balance) Members {
	members := make(Members)
	for _, b := range balances {
		if !b.Resolved {
			continue
		}
		members[b.User.CompanyID] = append(members[b.User.CompanyID], b)
	}
	return members
}

// PartitionByEmail делит пользователей компании по её флагу рассылки:
// флаг общий для компании, поэтому одна из частей всегда пустая.
func PartitionByEmail(members []model.Balance, company model.Company) (emailed, notEmailed []model.Balance) {
	for _, b := range members {
		if b.User.CompanyID != company.ID {
			continue
		}
		if company.EmailStatus {
			emailed = append(emailed, b)
		} else {
			notEmailed = append(notEmailed, b)
		}
	}
	return emailed, notEmailed
}
