// Package ledger сопоставляет пользователей с компаниями, начисляет пополнения
// и отбирает пользователей для отчёта.
package ledger

import "github.com/mmeshcher/topup-report/internal/model"

// Directory индексирует компании по идентификатору.
type Directory struct {
	byID map[int64]model.Company
}

// NewDirectory строит индекс компаний. При повторяющихся идентификаторах побеждает первая запись.
func NewDirectory(companies []model.Company) *Directory {
	byID := make(map[int64]model.Company, len(companies))
	for _, c := range companies {
		if _, ok := byID[c.ID]; ok {
			continue
		}
		byID[c.ID] = c
	}
	return &Directory{byID: byID}
}

// Lookup возвращает компанию по идентификатору.
func (d *Directory) Lookup(id int64) (model.Company, bool) {
	c, ok := d.byID[id]
	return c, ok
}

// Len возвращает число уникальных компаний.
func (d *Directory) Len() int {
	return len(d.byID)
}
