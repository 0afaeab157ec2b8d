package repository

import (
	"context"
	"credit_edu_backend/internal/model"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/go-redis/redis/v8"
)

const (
	quizAttemptAllKey = "quiz:attempts:all"
	quizAttemptSeqKey = "quiz:attempts:seq"
)

// RedisQuizAttemptStore 每条记录以 JSON 形式写入三个列表：
// 课程+用户、用户、全局
type RedisQuizAttemptStore struct {
	RDB *redis.Client
}

func NewRedisQuizAttemptStore(rdb *redis.Client) *RedisQuizAttemptStore {
	return &RedisQuizAttemptStore{RDB: rdb}
}

// id 加引号转义，含分隔符的 id 不会拼出其他组合的 key
func lessonUserKey(lessonID, userID string) string {
	return fmt.Sprintf("quiz:attempts:lesson:%s:user:%s", strconv.Quote(lessonID), strconv.Quote(userID))
}

func userKey(userID string) string {
	return fmt.Sprintf("quiz:attempts:user:%s", strconv.Quote(userID))
}

// redis 记录中需要保留 Seq，json 标签里隐藏了它
type redisQuizAttempt struct {
	model.QuizAttempt
	Seq uint `json:"seq"`
}

func (r *RedisQuizAttemptStore) Append(ctx context.Context, attempt *model.QuizAttempt) error {
	seq, err := r.RDB.Incr(ctx, quizAttemptSeqKey).Result()
	if err != nil {
		return err
	}

	stored := attempt.Clone()
	stored.Seq = uint(seq)
	payload, err := json.Marshal(redisQuizAttempt{QuizAttempt: stored, Seq: stored.Seq})
	if err != nil {
		return err
	}

	// MULTI/EXEC 保证三个列表要么全部写入，要么都不写
	_, err = r.RDB.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, lessonUserKey(attempt.LessonID, attempt.UserID), payload)
		pipe.RPush(ctx, userKey(attempt.UserID), payload)
		pipe.RPush(ctx, quizAttemptAllKey, payload)
		return nil
	})
	if err != nil {
		return err
	}

	attempt.Seq = stored.Seq
	return nil
}

func (r *RedisQuizAttemptStore) FindByLessonAndUser(ctx context.Context, lessonID, userID string) ([]model.QuizAttempt, error) {
	return r.readList(ctx, lessonUserKey(lessonID, userID))
}

func (r *RedisQuizAttemptStore) FindByUser(ctx context.Context, userID string) ([]model.QuizAttempt, error) {
	return r.readList(ctx, userKey(userID))
}

func (r *RedisQuizAttemptStore) FindAll(ctx context.Context) ([]model.QuizAttempt, error) {
	return r.readList(ctx, quizAttemptAllKey)
}

func (r *RedisQuizAttemptStore) Count(ctx context.Context) (int64, error) {
	return r.RDB.LLen(ctx, quizAttemptAllKey).Result()
}

func (r *RedisQuizAttemptStore) Ping(ctx context.Context) error {
	return r.RDB.Ping(ctx).Err()
}

func (r *RedisQuizAttemptStore) readList(ctx context.Context, key string) ([]model.QuizAttempt, error) {
	items, err := r.RDB.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, err
	}

	attempts := make([]model.QuizAttempt, 0, len(items))
	for _, item := range items {
		var rec redisQuizAttempt
		if err := json.Unmarshal([]byte(item), &rec); err != nil {
			return nil, fmt.Errorf("decode quiz attempt from %s: %w", key, err)
		}
		rec.QuizAttempt.Seq = rec.Seq
		attempts = append(attempts, rec.QuizAttempt)
	}
	return attempts, nil
}
