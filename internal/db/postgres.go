package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/yigit/uniregistry/internal/config"
	"github.com/yigit/uniregistry/internal/pkg/dberrors"
	"github.com/yigit/uniregistry/internal/pkg/helpers"
	"github.com/yigit/uniregistry/internal/pkg/logger"
)

// PostgresDB stores each collection as a table of JSONB documents keyed by a hex ObjectID.
// Tables are created by the migrations under database.migrations_dir.
type PostgresDB struct {
	Pool *pgxpool.Pool
}

// NewPostgresDB creates a new PostgreSQL connection pool
func NewPostgresDB(ctx context.Context, cfg *config.Config) (*PostgresDB, error) {
	ctx, cancel := context.WithTimeout(ctx, helpers.ParseDuration(cfg.Database.ConnectTimeout, 10*time.Second))
	defer cancel()

	poolConfig, err := pgxpool.ParseConfig(cfg.Database.URI)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgxpool config: %w", err)
	}

	if cfg.Database.MaxOpenConns > 0 {
		poolConfig.MaxConns = int32(cfg.Database.MaxOpenConns)
	}
	if cfg.Database.MaxIdleConns > 0 {
		poolConfig.MinConns = int32(cfg.Database.MaxIdleConns)
	}
	poolConfig.MaxConnLifetime = helpers.ParseDuration(cfg.Database.ConnMaxLifetime, time.Hour)

	// Add health check for connections
	poolConfig.BeforeAcquire = func(ctx context.Context, conn *pgx.Conn) bool {
		if err := conn.Ping(ctx); err != nil {
			logger.Warn().Err(err).Msg("Unhealthy connection detected")
			return false
		}
		return true
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection pool: %w", err)
	}

	return &PostgresDB{Pool: pool}, nil
}

// Collection returns the table backed collection
func (p *PostgresDB) Collection(name string) Collection {
	return &PostgresCollection{
		db:    p.Pool,
		table: pgx.Identifier{name}.Sanitize(),
		sb:    squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Ping checks the pool can reach the server
func (p *PostgresDB) Ping(ctx context.Context) error {
	return p.Pool.Ping(ctx)
}

// Close closing method
func (p *PostgresDB) Close(ctx context.Context) error {
	if p.Pool != nil {
		p.Pool.Close()
	}
	return nil
}

// PostgresCollection implements Collection over one documents table
type PostgresCollection struct {
	db    *pgxpool.Pool
	table string
	sb    squirrel.StatementBuilderType
}

// InsertOne stores the document under a freshly generated ObjectID
func (c *PostgresCollection) InsertOne(ctx context.Context, document interface{}) (primitive.ObjectID, error) {
	payload, err := encodeJSONDocument(document)
	if err != nil {
		return primitive.NilObjectID, err
	}

	id := primitive.NewObjectID()
	sql, args, err := c.sb.Insert(c.table).
		Columns("id", "doc").
		Values(id.Hex(), squirrel.Expr("?::jsonb", payload)).
		ToSql()
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to build insert query: %w", err)
	}

	if _, err := c.db.Exec(ctx, sql, args...); err != nil {
		return primitive.NilObjectID, c.statementError("error inserting document", err)
	}
	return id, nil
}

// Find decodes every matching row into results, in insertion order
func (c *PostgresCollection) Find(ctx context.Context, filter bson.M, results interface{}) error {
	query, err := c.selectWhere(filter)
	if err != nil {
		return err
	}
	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build find query: %w", err)
	}

	rows, err := c.db.Query(ctx, sql, args...)
	if err != nil {
		return c.statementError("error querying documents", err)
	}
	defer rows.Close()

	docs := []bson.M{}
	for rows.Next() {
		doc, err := scanJSONDocument(rows)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating document rows: %w", err)
	}

	return decodeDocuments(docs, results)
}

// FindOne decodes the first matching row into result
func (c *PostgresCollection) FindOne(ctx context.Context, filter bson.M, result interface{}) error {
	query, err := c.selectWhere(filter)
	if err != nil {
		return err
	}
	sql, args, err := query.Limit(1).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build find one query: %w", err)
	}

	doc, err := scanJSONDocument(c.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNoDocuments
		}
		return c.statementError("error querying document", err)
	}
	return decodeDocument(doc, result)
}

// SetFields merges fields into the stored document
func (c *PostgresCollection) SetFields(ctx context.Context, id primitive.ObjectID, fields interface{}) (int64, error) {
	payload, err := encodeJSONDocument(fields)
	if err != nil {
		return 0, err
	}
	return c.updateDoc(ctx, id, squirrel.Expr("doc || ?::jsonb", payload))
}

// DeleteOne deletes the row
func (c *PostgresCollection) DeleteOne(ctx context.Context, id primitive.ObjectID) (int64, error) {
	sql, args, err := c.sb.Delete(c.table).
		Where(squirrel.Eq{"id": id.Hex()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build delete query: %w", err)
	}

	cmdTag, err := c.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, c.statementError("error deleting document", err)
	}
	return cmdTag.RowsAffected(), nil
}

// Push appends value to the JSON array field
func (c *PostgresCollection) Push(ctx context.Context, id primitive.ObjectID, field, value string) (int64, error) {
	return c.updateDoc(ctx, id, squirrel.Expr(
		"jsonb_set(doc, ARRAY[?]::text[], COALESCE(doc->?, '[]'::jsonb) || jsonb_build_array(?::text))",
		field, field, value,
	))
}

// AddToSet appends value to the JSON array field unless already present
func (c *PostgresCollection) AddToSet(ctx context.Context, id primitive.ObjectID, field, value string) (int64, error) {
	return c.updateDoc(ctx, id, squirrel.Expr(
		"CASE WHEN COALESCE(doc->?, '[]'::jsonb) @> jsonb_build_array(?::text) THEN doc "+
			"ELSE jsonb_set(doc, ARRAY[?]::text[], COALESCE(doc->?, '[]'::jsonb) || jsonb_build_array(?::text)) END",
		field, value, field, field, value,
	))
}

// Pull removes every occurrence of value from the JSON array field, keeping order
func (c *PostgresCollection) Pull(ctx context.Context, id primitive.ObjectID, field, value string) (int64, error) {
	return c.updateDoc(ctx, id, squirrel.Expr(
		"jsonb_set(doc, ARRAY[?]::text[], COALESCE((SELECT jsonb_agg(t.e ORDER BY t.n) "+
			"FROM jsonb_array_elements(COALESCE(doc->?, '[]'::jsonb)) WITH ORDINALITY AS t(e, n) "+
			"WHERE t.e <> to_jsonb(?::text)), '[]'::jsonb))",
		field, field, value,
	))
}

func (c *PostgresCollection) updateDoc(ctx context.Context, id primitive.ObjectID, expr squirrel.Sqlizer) (int64, error) {
	sql, args, err := c.sb.Update(c.table).
		Set("doc", expr).
		Where(squirrel.Eq{"id": id.Hex()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build update query: %w", err)
	}

	cmdTag, err := c.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, c.statementError("error updating document", err)
	}
	return cmdTag.RowsAffected(), nil
}

// statementError annotates a failed statement, pointing at the migrations when the
// table is missing
func (c *PostgresCollection) statementError(action string, err error) error {
	if dberrors.IsUndefinedTable(err) {
		return fmt.Errorf("%s: table %s does not exist, apply the migrations first: %w", action, c.table, err)
	}
	return fmt.Errorf("%s: %w", action, err)
}

func (c *PostgresCollection) selectWhere(filter bson.M) (squirrel.SelectBuilder, error) {
	query := c.sb.Select("id", "doc").From(c.table).OrderBy("seq ASC")

	where, err := documentFilter(filter)
	if err != nil {
		return query, err
	}
	for _, cond := range where {
		query = query.Where(cond)
	}
	return query, nil
}

// documentFilter turns an equality filter into SQL conditions: "_id" matches the key
// column, every other field is a JSONB containment test on the document.
func documentFilter(filter bson.M) ([]squirrel.Sqlizer, error) {
	var conds []squirrel.Sqlizer
	rest := bson.M{}
	for k, v := range filter {
		if k != "_id" {
			rest[k] = v
			continue
		}
		id, ok := v.(primitive.ObjectID)
		if !ok {
			return nil, fmt.Errorf("_id filter must be an ObjectID, got %T", v)
		}
		conds = append(conds, squirrel.Eq{"id": id.Hex()})
	}

	if len(rest) > 0 {
		payload, err := bson.MarshalExtJSON(rest, false, false)
		if err != nil {
			return nil, fmt.Errorf("failed to encode filter: %w", err)
		}
		conds = append(conds, squirrel.Expr("doc @> ?::jsonb", string(payload)))
	}
	return conds, nil
}

// encodeJSONDocument renders v as relaxed extended JSON without its _id
func encodeJSONDocument(v interface{}) (string, error) {
	doc, err := toDocument(v)
	if err != nil {
		return "", err
	}
	delete(doc, "_id")

	payload, err := bson.MarshalExtJSON(doc, false, false)
	if err != nil {
		return "", fmt.Errorf("failed to encode document as JSON: %w", err)
	}
	return string(payload), nil
}

func scanJSONDocument(row pgx.Row) (bson.M, error) {
	var (
		hexID   string
		payload []byte
	)
	if err := row.Scan(&hexID, &payload); err != nil {
		return nil, err
	}

	doc := bson.M{}
	if err := bson.UnmarshalExtJSON(payload, false, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode stored document %s: %w", hexID, err)
	}
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return nil, fmt.Errorf("stored document has malformed id %q: %w", hexID, err)
	}
	doc["_id"] = id
	return doc, nil
}
