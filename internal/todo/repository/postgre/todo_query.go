package postgre

import (
	"fmt"
	"strings"

	"todolist/pkg/paginator"
)

// buildListPageQuery builds the WHERE + ORDER + LIMIT + OFFSET clause for ListTodosPage.
func (r *implRepository) buildListPageQuery(done *bool, page paginator.Page) (string, []any) {
	var parts []string
	var args []any
	idx := 1

	if done != nil {
		parts = append(parts, fmt.Sprintf("WHERE done = $%d", idx))
		args = append(args, *done)
		idx++
	}

	parts = append(parts, "ORDER BY id ASC")

	parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
	args = append(args, page.FetchLimit())
	idx++

	parts = append(parts, fmt.Sprintf("OFFSET $%d", idx))
	args = append(args, page.Offset)

	return strings.Join(parts, " "), args
}
