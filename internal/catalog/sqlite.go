package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

const (
	topicsTable    = "topics"
	questionsTable = "questions"
)

var optionColumns = [OptionCount]string{"option_1", "option_2", "option_3", "option_4"}

// LoadSQLite reads a catalog from the topics and questions tables of the
// SQLite database at dsn. Rows are read in position order, which is the
// catalog order.
func LoadSQLite(ctx context.Context, dsn string) (*Catalog, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open catalog database: %w", err)
	}
	defer db.Close()

	topics, err := readTopics(ctx, db)
	if err != nil {
		return nil, err
	}
	questions, err := readQuestions(ctx, db)
	if err != nil {
		return nil, err
	}
	return New(topics, questions)
}

// WriteSQLite creates the catalog tables in the database at dsn and fills
// them with c. Existing rows are replaced.
func WriteSQLite(ctx context.Context, c *Catalog, dsn string) error {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return fmt.Errorf("open catalog database: %w", err)
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{createTopicsTable, createQuestionsTable} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create catalog tables: %w", err)
		}
	}

	b := entsql.Dialect(dialect.SQLite)
	for _, table := range []string{questionsTable, topicsTable} {
		query, args := b.Delete(table).Query()
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for pos, t := range c.topics {
		query, args := b.Insert(topicsTable).
			Columns("id", "position", "name", "image").
			Values(t.ID, pos, t.Name, t.Image).
			Query()
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert topic %d: %w", t.ID, err)
		}
	}

	for pos, q := range c.questions {
		columns := append([]string{"id", "position", "topic_id", "text", "answer_index"}, optionColumns[:]...)
		values := []any{q.ID, pos, q.TopicID, q.Text, q.AnswerIndex}
		for _, opt := range q.Options {
			values = append(values, opt)
		}
		query, args := b.Insert(questionsTable).
			Columns(columns...).
			Values(values...).
			Query()
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert question %d: %w", q.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Catalog tables. Option columns follow optionColumns.
const (
	createTopicsTable = `CREATE TABLE IF NOT EXISTS topics (
	id INTEGER NOT NULL PRIMARY KEY,
	position INTEGER NOT NULL,
	name TEXT NOT NULL,
	image TEXT NOT NULL DEFAULT ''
)`

	createQuestionsTable = `CREATE TABLE IF NOT EXISTS questions (
	id INTEGER NOT NULL PRIMARY KEY,
	position INTEGER NOT NULL,
	topic_id INTEGER NOT NULL,
	text TEXT NOT NULL,
	answer_index INTEGER NOT NULL,
	option_1 TEXT NOT NULL,
	option_2 TEXT NOT NULL,
	option_3 TEXT NOT NULL,
	option_4 TEXT NOT NULL
)`
)

func readTopics(ctx context.Context, db *sql.DB) ([]Topic, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select("id", "name", "image").
		From(entsql.Table(topicsTable)).
		OrderBy("position").
		Query()

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query topics: %w", err)
	}
	defer rows.Close()

	var topics []Topic
	for rows.Next() {
		var t Topic
		if err := rows.Scan(&t.ID, &t.Name, &t.Image); err != nil {
			return nil, fmt.Errorf("scan topic: %w", err)
		}
		topics = append(topics, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read topics: %w", err)
	}
	return topics, nil
}

func readQuestions(ctx context.Context, db *sql.DB) ([]Question, error) {
	columns := append([]string{"id", "topic_id", "text", "answer_index"}, optionColumns[:]...)
	query, args := entsql.Dialect(dialect.SQLite).
		Select(columns...).
		From(entsql.Table(questionsTable)).
		OrderBy("position").
		Query()

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	defer rows.Close()

	var questions []Question
	for rows.Next() {
		var (
			q    Question
			opts [OptionCount]string
		)
		if err := rows.Scan(&q.ID, &q.TopicID, &q.Text, &q.AnswerIndex, &opts[0], &opts[1], &opts[2], &opts[3]); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		q.Options = opts[:]
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read questions: %w", err)
	}
	return questions, nil
}
