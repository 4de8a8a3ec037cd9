package repositories

import (
	"inspections-console/pkg/database"
)

// collect читает все строки, превращая каждую через scan.
func collect[T any](rows database.Rows, scan func(database.Row) (T, error)) ([]T, error) {
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
