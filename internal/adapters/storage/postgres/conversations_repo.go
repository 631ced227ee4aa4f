package postgres

import (
	"context"
	"database/sql"
	"strings"

	"github.com/fellipesaraiva88/aupet-ai-connect-sub003/internal/domain/conversations"
)

type ConversationsRepo struct {
	db *sql.DB
}

func NewConversationsRepo(db *sql.DB) *ConversationsRepo {
	return &ConversationsRepo{db: db}
}

func (r *ConversationsRepo) CreateConversation(ctx context.Context, c conversations.Conversation) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO conversations (
			id, customer_id, channel, status,
			last_message_at, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		c.ID,
		c.CustomerID,
		string(c.Channel),
		string(c.Status),
		c.LastMessageAt,
		c.CreatedAt,
		c.UpdatedAt,
	)
	return err
}

func (r *ConversationsRepo) UpdateConversation(ctx context.Context, c conversations.Conversation) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE conversations
		SET
			status = $2,
			last_message_at = $3,
			updated_at = $4
		WHERE id = $1
	`,
		c.ID,
		string(c.Status),
		c.LastMessageAt,
		c.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ConversationsRepo) GetConversation(ctx context.Context, id string) (conversations.Conversation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return conversations.Conversation{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, customer_id, channel, status,
			last_message_at, created_at, updated_at
		FROM conversations
		WHERE id = $1
	`, id)

	c, err := scanConversation(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return conversations.Conversation{}, ErrNotFound
		}
		return conversations.Conversation{}, err
	}
	return c, nil
}

func (r *ConversationsRepo) GetOpenByCustomer(ctx context.Context, customerID string) (conversations.Conversation, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return conversations.Conversation{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, customer_id, channel, status,
			last_message_at, created_at, updated_at
		FROM conversations
		WHERE customer_id = $1 AND status = 'open'
		ORDER BY last_message_at DESC
		LIMIT 1
	`, customerID)

	c, err := scanConversation(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return conversations.Conversation{}, ErrNotFound
		}
		return conversations.Conversation{}, err
	}
	return c, nil
}

func (r *ConversationsRepo) ListConversations(ctx context.Context, filter conversations.ListFilter) ([]conversations.Conversation, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = -1
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, customer_id, channel, status,
			last_message_at, created_at, updated_at
		FROM conversations
		WHERE ($1 = '' OR status = $1)
		ORDER BY last_message_at DESC
		LIMIT NULLIF($2, -1)
	`, string(filter.Status), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]conversations.Conversation, 0)
	for rows.Next() {
		c, err := scanConversation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *ConversationsRepo) CreateMessage(ctx context.Context, m conversations.Message) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO messages (
			id, conversation_id,
			direction, body, status, actor_id,
			created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		m.ID,
		m.ConversationID,
		string(m.Direction),
		m.Body,
		string(m.Status),
		m.ActorID,
		m.CreatedAt,
	)
	return err
}

func (r *ConversationsRepo) UpdateMessage(ctx context.Context, m conversations.Message) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE messages
		SET status = $2
		WHERE id = $1
	`,
		m.ID,
		string(m.Status),
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ConversationsRepo) ListMessages(ctx context.Context, conversationID string, limit int) ([]conversations.Message, error) {
	conversationID = strings.TrimSpace(conversationID)
	if conversationID == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = -1
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, conversation_id,
			direction, body, status, actor_id,
			created_at
		FROM messages
		WHERE conversation_id = $1
		ORDER BY created_at ASC
		LIMIT NULLIF($2, -1)
	`, conversationID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]conversations.Message, 0)
	for rows.Next() {
		var m conversations.Message
		var direction, status string
		if err := rows.Scan(
			&m.ID,
			&m.ConversationID,
			&direction,
			&m.Body,
			&status,
			&m.ActorID,
			&m.CreatedAt,
		); err != nil {
			return nil, err
		}
		m.Direction = conversations.Direction(direction)
		m.Status = conversations.MessageStatus(status)
		out = append(out, m)
	}
	return out, rows.Err()
}

func scanConversation(row rowScanner) (conversations.Conversation, error) {
	var c conversations.Conversation
	var channel, status string
	if err := row.Scan(
		&c.ID,
		&c.CustomerID,
		&channel,
		&status,
		&c.LastMessageAt,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return conversations.Conversation{}, err
	}
	c.Channel = conversations.Channel(channel)
	c.Status = conversations.ConversationStatus(status)
	return c, nil
}
