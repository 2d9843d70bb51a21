package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"learnsphere/internal/cache"
	"learnsphere/internal/config"
	"learnsphere/internal/domain"
	"learnsphere/internal/logger"

	"go.uber.org/zap"
)

const defaultEvaluationCacheTTL = 24 * time.Hour

// EvaluationCacheService caches short-answer evaluations so a repeated
// identical submission does not cost another LLM call.
type EvaluationCacheService interface {
	GetEvaluation(ctx context.Context, question, userAnswer string, keywords []string) (*domain.ShortAnswerEvaluation, error)
	PutEvaluation(ctx context.Context, question, userAnswer string, keywords []string, eval *domain.ShortAnswerEvaluation) error
}

type evaluationCacheServiceImpl struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewEvaluationCacheService creates a new EvaluationCacheService. A nil cache
// is allowed and turns both operations into no-ops.
func NewEvaluationCacheService(c domain.Cache, cfg *config.Config) EvaluationCacheService {
	ttl := defaultEvaluationCacheTTL
	if cfg != nil {
		ttl = cfg.ParseTTLStringOrDefault(cfg.CacheTTL.Evaluation, defaultEvaluationCacheTTL)
	}
	return &evaluationCacheServiceImpl{cache: c, ttl: ttl}
}

// GetEvaluation returns a cached evaluation, or nil on a miss. Cache errors
// other than a miss are returned so the caller can log them; the caller still
// proceeds without the cache.
func (s *evaluationCacheServiceImpl) GetEvaluation(ctx context.Context, question, userAnswer string, keywords []string) (*domain.ShortAnswerEvaluation, error) {
	if s.cache == nil {
		return nil, nil
	}

	key := evaluationCacheKey(question, userAnswer, keywords)
	value, err := s.cache.Get(ctx, key)
	if err != nil {
		if err == domain.ErrCacheMiss {
			return nil, nil
		}
		return nil, err
	}

	var eval domain.ShortAnswerEvaluation
	if err := json.Unmarshal([]byte(value), &eval); err != nil {
		logger.Get().Warn("Discarding undecodable cached evaluation",
			zap.String("key", key), zap.Error(err))
		return nil, nil
	}
	return &eval, nil
}

// PutEvaluation stores an evaluation under the request's content hash.
func (s *evaluationCacheServiceImpl) PutEvaluation(ctx context.Context, question, userAnswer string, keywords []string, eval *domain.ShortAnswerEvaluation) error {
	if s.cache == nil || eval == nil {
		return nil
	}

	data, err := json.Marshal(eval)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, evaluationCacheKey(question, userAnswer, keywords), string(data), s.ttl)
}

// evaluationCacheKey hashes the full request content so distinct questions,
// answers, or keyword sets never collide.
func evaluationCacheKey(question, userAnswer string, keywords []string) string {
	h := sha256.New()
	h.Write([]byte(question))
	h.Write([]byte{0})
	h.Write([]byte(userAnswer))
	h.Write([]byte{0})
	h.Write([]byte(strings.Join(keywords, ",")))
	return cache.GenerateCacheKey("ai", "evaluation", hex.EncodeToString(h.Sum(nil)))
}
