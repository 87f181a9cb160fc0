package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arjunrv/mentorhub/internal/app/models"
	"github.com/arjunrv/mentorhub/internal/app/models/dto"
)

// MessageRepository handles database operations for direct messages
type MessageRepository struct {
	db *pgxpool.Pool
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create inserts a new message row
func (r *MessageRepository) Create(ctx context.Context, message *models.Message) (int64, error) {
	query := `
		INSERT INTO messages (sender_id, receiver_id, text)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		message.SenderID, message.ReceiverID, message.Text,
	).Scan(&message.ID, &message.CreatedAt)

	if err != nil {
		return 0, fmt.Errorf("error creating message: %w", err)
	}

	return message.ID, nil
}

// SaveMessage persists a message routed through the realtime hub.
// It satisfies the hub's MessageSink contract.
func (r *MessageRepository) SaveMessage(ctx context.Context, senderID, receiverID int64, text string) error {
	_, err := r.Create(ctx, &models.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Text:       text,
	})
	return err
}

// GetConversation retrieves all messages between two users, oldest first
func (r *MessageRepository) GetConversation(ctx context.Context, userA, userB int64) ([]*models.Message, error) {
	query := `
		SELECT id, sender_id, receiver_id, text, created_at
		FROM messages
		WHERE (sender_id = $1 AND receiver_id = $2)
		   OR (sender_id = $2 AND receiver_id = $1)
		ORDER BY created_at ASC
	`

	rows, err := r.db.Query(ctx, query, userA, userB)
	if err != nil {
		return nil, fmt.Errorf("error retrieving conversation: %w", err)
	}
	defer rows.Close()

	var messages []*models.Message
	for rows.Next() {
		message := &models.Message{}
		err := rows.Scan(
			&message.ID, &message.SenderID, &message.ReceiverID,
			&message.Text, &message.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning message: %w", err)
		}
		messages = append(messages, message)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating messages: %w", err)
	}

	return messages, nil
}

// GetRecentContacts returns the unique users the given user has exchanged
// messages with, ordered by the most recent exchange. The dedupe happens in
// SQL (DISTINCT ON the counterpart) rather than in application code.
func (r *MessageRepository) GetRecentContacts(ctx context.Context, userID int64) ([]dto.ContactResponse, error) {
	query := `
		SELECT contact_id, name, avatar_url FROM (
			SELECT DISTINCT ON (contact_id) contact_id, last_at FROM (
				SELECT CASE WHEN sender_id = $1 THEN receiver_id ELSE sender_id END AS contact_id,
				       created_at AS last_at
				FROM messages
				WHERE sender_id = $1 OR receiver_id = $1
			) exchanges
			ORDER BY contact_id, last_at DESC
		) contacts
		JOIN users u ON u.id = contacts.contact_id
		ORDER BY contacts.last_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving recent contacts: %w", err)
	}
	defer rows.Close()

	var contacts []dto.ContactResponse
	for rows.Next() {
		var contact dto.ContactResponse
		if err := rows.Scan(&contact.ID, &contact.Name, &contact.AvatarURL); err != nil {
			return nil, fmt.Errorf("error scanning contact: %w", err)
		}
		contacts = append(contacts, contact)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contacts: %w", err)
	}

	return contacts, nil
}
