// Package report формирует текстовый отчёт о пополнениях по компаниям.
package report

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/mmeshcher/topup-report/internal/ledger"
	"github.com/mmeshcher/topup-report/internal/model"
)

// Render формирует отчёт по всем компаниям в порядке возрастания идентификатора.
// Исходный срез companies не изменяется.
//
// Итоговая сумма берётся из totals и учитывает всех пользователей с найденной компанией,
// включая неактивных, которые в списках отчёта не выводятся.
func Render(companies []model.Company, members ledger.Members, totals ledger.Totals) string {
	sorted := slices.Clone(companies)
	slices.SortStableFunc(sorted, func(a, b model.Company) int {
		return cmp.Compare(a.ID, b.ID)
	})

	var sb strings.Builder
	for i, c := range sorted {
		// при повторяющихся идентификаторах выводится только первая запись
		if i > 0 && sorted[i-1].ID == c.ID {
			continue
		}
		writeCompany(&sb, c, members[c.ID], totals.Of(c.ID))
	}
	return sb.String()
}

func writeCompany(sb *strings.Builder, c model.Company, users []model.Balance, total int64) {
	emailed, notEmailed := ledger.PartitionByEmail(users, c)

	fmt.Fprintf(sb, "Company Id: %d\n", c.ID)
	fmt.Fprintf(sb, "Company Name: %s\n", c.Name)

	sb.WriteString("Users Emailed:\n")
	for _, b := range emailed {
		writeUser(sb, b, true)
	}

	sb.WriteString("Users Not Emailed:\n")
	for _, b := range notEmailed {
		writeUser(sb, b, false)
	}

	fmt.Fprintf(sb, "\tTotal amount of top ups for %s: %d\n", c.Name, total)
	sb.WriteString("\n")
}

func writeUser(sb *strings.Builder, b model.Balance, sent bool) {
	marker := "no"
	if sent {
		marker = "yes"
	}

	fmt.Fprintf(sb, "\t%s, %s, %s\n", b.User.LastName, b.User.FirstName, b.User.Email)
	fmt.Fprintf(sb, "\t  Email Sent: %s\n", marker)
	fmt.Fprintf(sb, "\t  Previous Token Balance, %d\n", b.Previous)
	fmt.Fprintf(sb, "\t  New Token Balance %d\n", b.New)
}
