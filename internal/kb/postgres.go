package kb

import (
	"context"
	"database/sql"
	"fmt"

	"faq-chatbot/internal/models"

	_ "github.com/lib/pq"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"
)

const defaultTable = "faq_entries"

type faqRow struct {
	bun.BaseModel `bun:"table:faq_entries,alias:f"`
	ID            int64  `bun:"id,pk,autoincrement"`
	Question      string `bun:"question,notnull"`
	Answer        string `bun:"answer,notnull"`
	Topic         string `bun:"topic"`
}

func ConnectPostgres(dsn string, debug bool) *bun.DB {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())
	if debug {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}
	return db
}

// LoadPostgres reads the knowledge base from a Postgres table. Rows are
// ordered by id so the entry index stays canonical across restarts.
func LoadPostgres(ctx context.Context, db *bun.DB, table string) ([]models.KnowledgeEntry, error) {
	if table == "" {
		table = defaultTable
	}

	var rows []faqRow
	err := db.NewSelect().
		Model(&rows).
		ModelTableExpr("? AS f", bun.Ident(table)).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("table %s: %w", table, ErrEmptyDataset)
	}

	entries := make([]models.KnowledgeEntry, 0, len(rows))
	for _, row := range rows {
		if row.Question == "" {
			return nil, fmt.Errorf("row id=%d: empty question", row.ID)
		}
		entries = append(entries, models.KnowledgeEntry{
			Question: row.Question,
			Answer:   row.Answer,
			Topic:    row.Topic,
		})
	}
	return entries, nil
}
