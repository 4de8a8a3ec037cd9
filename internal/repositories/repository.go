package repositories

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"inspections-console/pkg/database"
)

// DefaultLimit — сколько строк показывает каждая операция меню.
const DefaultLimit uint64 = 5

func statement(d database.Dialect) sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(d.Placeholder())
}

// limit ограничивает выборку: LIMIT в PostgreSQL, TOP в SQL Server.
func limit(b sq.SelectBuilder, d database.Dialect, n uint64) sq.SelectBuilder {
	if d == database.SQLServer {
		return b.Options(fmt.Sprintf("TOP (%d)", n))
	}
	return b.Limit(n)
}

// returningID дописывает к INSERT получение сгенерированного идентификатора.
func returningID(b sq.InsertBuilder, d database.Dialect, idColumn string) sq.InsertBuilder {
	if d == database.SQLServer {
		return b.Suffix("; SELECT CAST(SCOPE_IDENTITY() AS int)")
	}
	return b.Suffix("RETURNING " + idColumn)
}

// money передаёт сумму строкой с явным приведением: так значение не теряет точность ни в одной СУБД.
func money(v decimal.Decimal) sq.Sqlizer {
	return sq.Expr("CAST(? AS decimal(18,2))", v.StringFixed(2))
}
