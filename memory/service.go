// Package memory is the long-term conversation store: save a conversation,
// search it later by free-text query. It backs the assistant's recall of past
// exchanges and is deliberately narrow: the agent loop decides what to store
// and when to search.
package memory

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/NIHAAL084/ultimate-ai-assistant/a2a"
	"github.com/NIHAAL084/ultimate-ai-assistant/config"
	"github.com/NIHAAL084/ultimate-ai-assistant/errors"
	"github.com/NIHAAL084/ultimate-ai-assistant/internal/mylog"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type (
	Service interface {
		StoreConversation(ctx context.Context, userID, sessionID string, messages []Message) error
		SearchMemory(ctx context.Context, userID, query string, limit int) ([]SearchResult, error)
		Close() error
	}

	SqliteService struct {
		db *gorm.DB
	}

	// Message is one stored conversational turn. Parts keeps the full
	// multimodal shape; Content duplicates the text so free-text search
	// stays a plain column match.
	Message struct {
		ID        uint      `gorm:"primarykey" json:"id"`
		CreatedAt time.Time `json:"created_at"`

		UserID    string                               `gorm:"index" json:"user_id"`
		SessionID string                               `gorm:"index" json:"session_id"`
		Role      string                               `json:"role"`
		Content   string                               `json:"content"`
		Parts     datatypes.JSONSlice[a2a.ContentPart] `json:"parts"`
	}

	SearchResult struct {
		SessionID string    `json:"session_id"`
		Role      string    `json:"role"`
		Content   string    `json:"content"`
		CreatedAt time.Time `json:"created_at"`
	}
)

var (
	_ Service = (*SqliteService)(nil)
)

func NewSqliteService(conf *config.MemoryConfig, logger *mylog.Logger) (*SqliteService, error) {
	if !conf.SqliteEnabled {
		return nil, errors.New("sqlite memory service is not enabled. Please check your configuration.")
	}
	if conf.SqlitePath == "" {
		return nil, errors.New("sqlite memory service path is not configured. Please check your configuration.")
	}
	if _, err := os.Stat(filepath.Dir(conf.SqlitePath)); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(conf.SqlitePath), 0755); err != nil {
			return nil, errors.Wrapf(err, "failed to create sqlite directory at %s", conf.SqlitePath)
		}
		logger.Info("created sqlite directory", "path", conf.SqlitePath)
	}

	db, err := gorm.Open(
		sqlite.Open(
			fmt.Sprintf("file:%s?cache=shared&mode=rwc&_journal_mode=WAL&_foreign_keys=on", conf.SqlitePath),
		),
		&gorm.Config{},
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open sqlite database at %s", conf.SqlitePath)
	}

	if err := db.AutoMigrate(&Message{}); err != nil {
		return nil, errors.Wrapf(err, "failed to auto-migrate sqlite database at %s", conf.SqlitePath)
	}

	return &SqliteService{db: db}, nil
}

func (s *SqliteService) StoreConversation(ctx context.Context, userID, sessionID string, messages []Message) error {
	if len(messages) == 0 {
		return nil
	}

	tx := s.db.WithContext(ctx)
	return tx.Transaction(func(tx *gorm.DB) error {
		for i := range messages {
			messages[i].UserID = userID
			messages[i].SessionID = sessionID
		}
		return errors.Wrapf(tx.Create(&messages).Error, "failed to store conversation")
	})
}

func (s *SqliteService) SearchMemory(ctx context.Context, userID, query string, limit int) ([]SearchResult, error) {
	if limit <= 0 {
		limit = 10
	}

	var messages []Message
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND content LIKE ?", userID, "%"+query+"%").
		Order("created_at DESC").
		Limit(limit).
		Find(&messages).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to search memory")
	}

	results := make([]SearchResult, 0, len(messages))
	for _, msg := range messages {
		results = append(results, SearchResult{
			SessionID: msg.SessionID,
			Role:      msg.Role,
			Content:   msg.Content,
			CreatedAt: msg.CreatedAt,
		})
	}

	return results, nil
}

func (s *SqliteService) Close() error {
	db, err := s.db.DB()
	if err != nil {
		return errors.Wrapf(err, "failed to get database connection")
	}
	return errors.Wrapf(db.Close(), "failed to close database connection")
}
