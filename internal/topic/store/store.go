package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/openaudit/internal/page"
	"github.com/MrJamesThe3rd/openaudit/internal/topic"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTopic(s scanner) (*topic.Topic, error) {
	var (
		t          topic.Topic
		prevalence decimal.NullDecimal
	)

	if err := s.Scan(&t.ID, &t.Number, &t.Description, &t.Terms, &prevalence, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}

	if prevalence.Valid {
		t.Prevalence = &prevalence.Decimal
	}

	return &t, nil
}

func (s *Store) ListTopics(ctx context.Context, p page.Page) ([]*topic.Topic, error) {
	query := `
		SELECT id, topic_number, description, terms, prevalence, created_at, updated_at
		FROM audit_topics
		ORDER BY topic_number ASC
		OFFSET $1 LIMIT $2`

	rows, err := s.db.QueryContext(ctx, query, p.Skip, p.Limit)
	if err != nil {
		return nil, fmt.Errorf("listing topics: %w", err)
	}
	defer rows.Close()

	topics := make([]*topic.Topic, 0)

	for rows.Next() {
		t, err := scanTopic(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning topic: %w", err)
		}

		topics = append(topics, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating topics: %w", err)
	}

	return topics, nil
}

func (s *Store) GetTopic(ctx context.Context, id int64) (*topic.Topic, error) {
	query := `
		SELECT id, topic_number, description, terms, prevalence, created_at, updated_at
		FROM audit_topics
		WHERE id = $1`

	t, err := scanTopic(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, topic.ErrNotFound
		}

		return nil, fmt.Errorf("getting topic: %w", err)
	}

	return t, nil
}

func (s *Store) ListProportions(ctx context.Context, topicID int64) ([]*decimal.Decimal, error) {
	query := `SELECT topic_proportion FROM report_topics WHERE topic_id = $1 ORDER BY report_id`

	rows, err := s.db.QueryContext(ctx, query, topicID)
	if err != nil {
		return nil, fmt.Errorf("listing proportions: %w", err)
	}
	defer rows.Close()

	proportions := make([]*decimal.Decimal, 0)

	for rows.Next() {
		var p decimal.NullDecimal
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("scanning proportion: %w", err)
		}

		if !p.Valid {
			proportions = append(proportions, nil)
			continue
		}

		proportions = append(proportions, &p.Decimal)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating proportions: %w", err)
	}

	return proportions, nil
}
