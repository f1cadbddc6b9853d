package repository

import (
	"context"

	"github.com/shin101/warbler/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LikeRepository defines the interface for like-edge operations.
type LikeRepository interface {
	Like(ctx context.Context, userID, messageID uint) error
	Unlike(ctx context.Context, userID, messageID uint) error
	HasLiked(ctx context.Context, userID, messageID uint) (bool, error)
	LikedMessages(ctx context.Context, userID uint) ([]models.Message, error)
}

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository creates a new like repository
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Like inserts the (user, message) edge if absent; idempotent like Follow.
// Liking your own message is rejected.
func (r *likeRepository) Like(ctx context.Context, userID, messageID uint) error {
	var msg models.Message
	if err := r.db.WithContext(ctx).Select("user_id").First(&msg, messageID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return models.NewNotFoundError("Message", messageID)
		}
		return models.NewInternalError(err)
	}
	if msg.UserID == userID {
		return models.NewValidationError("cannot like your own message")
	}

	edge := models.Like{UserID: userID, MessageID: messageID}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"},
			{Name: "message_id"},
		},
		DoNothing: true,
	}).Create(&edge).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Unlike removes the edge; a missing edge is a no-op.
func (r *likeRepository) Unlike(ctx context.Context, userID, messageID uint) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND message_id = ?", userID, messageID).
		Delete(&models.Like{}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *likeRepository) HasLiked(ctx context.Context, userID, messageID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Like{}).
		Where("user_id = ? AND message_id = ?", userID, messageID).
		Count(&count).Error
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// LikedMessages returns the messages the user has liked.
func (r *likeRepository) LikedMessages(ctx context.Context, userID uint) ([]models.Message, error) {
	var msgs []models.Message
	err := r.db.WithContext(ctx).Model(&models.Message{}).
		Joins("JOIN likes ON likes.message_id = messages.id").
		Where("likes.user_id = ?", userID).
		Find(&msgs).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return msgs, nil
}
