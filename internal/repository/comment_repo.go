package repository

import (
	"context"
	"time"

	"shareit/internal/domain"

	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

type commentModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	ItemID    int64     `gorm:"column:item_id;index"`
	AuthorID  int64     `gorm:"column:author_id"`
	Text      string    `gorm:"column:text"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (commentModel) TableName() string { return "comments" }

// CommentDetails is a comment row joined with the author name for display.
type CommentDetails struct {
	ID         int64     `gorm:"column:id"`
	ItemID     int64     `gorm:"column:item_id"`
	AuthorID   int64     `gorm:"column:author_id"`
	AuthorName string    `gorm:"column:author_name"`
	Text       string    `gorm:"column:text"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (r *CommentRepository) Create(ctx context.Context, c *domain.Comment) error {
	m := commentModel{
		ItemID:    c.ItemID,
		AuthorID:  c.AuthorID,
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	c.ID = m.ID
	c.CreatedAt = m.CreatedAt
	return nil
}

func (r *CommentRepository) FindByItemID(ctx context.Context, itemID int64) ([]CommentDetails, error) {
	var rows []CommentDetails
	q := `
SELECT c.id, c.item_id, c.author_id, u.name AS author_name, c.text, c.created_at
FROM comments c
JOIN users u ON u.id = c.author_id
WHERE c.item_id = ?
ORDER BY c.created_at ASC
`
	tx := r.db.WithContext(ctx).Raw(q, itemID).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

func (r *CommentRepository) FindByItemIDs(ctx context.Context, itemIDs []int64) ([]CommentDetails, error) {
	if len(itemIDs) == 0 {
		return []CommentDetails{}, nil
	}

	var rows []CommentDetails
	q := `
SELECT c.id, c.item_id, c.author_id, u.name AS author_name, c.text, c.created_at
FROM comments c
JOIN users u ON u.id = c.author_id
WHERE c.item_id IN ?
ORDER BY c.created_at ASC
`
	tx := r.db.WithContext(ctx).Raw(q, itemIDs).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}
