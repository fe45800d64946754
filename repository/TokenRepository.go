package repository

import (
	"context"
	"errors"
	"log"
	"strconv"
	"time"

	"marketstore/entities"
	"marketstore/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Tokens live until revoked. Each token is a hash keyed by its opaque
// secret; a per-user set tracks every token so logout can revoke them all.
type TokenRepository interface {
	CreateToken(uModel models.User_db) (token string, err error)
	GetTokenInfo(token string) (user entities.UserData, exists bool, err error)
	DeleteUserTokens(userId int) (err error)
}

type TokenRepo struct {
	rdb *redis.Client
	ctx context.Context
}

func NewTokenRepository(redis_conn *redis.Client, _ctx context.Context) (TokenRepository, error) {
	if redis_conn == nil {
		return nil, errors.New("conn must be non-nil")
	}
	err := redis_conn.Ping(_ctx).Err()
	if err != nil {
		return nil, err
	}
	return &TokenRepo{
		rdb: redis_conn,
		ctx: _ctx,
	}, nil
}

func (t *TokenRepo) CreateToken(uModel models.User_db) (token string, err error) {
	token = uuid.NewString()
	err = t.rdb.HSet(t.ctx, tokenKey(token),
		"userId", uModel.Id,
		"name", uModel.Name,
		"role", uModel.Role,
		"created", time.Now().Format(time.RFC3339)).Err()
	if err != nil {
		log.Printf("CreateToken: %v", err)
		err = models.ErrServerError
		return
	}
	err = t.rdb.SAdd(t.ctx, userTokensKey(uModel.Id), token).Err()
	if err != nil {
		log.Printf("CreateToken: %v", err)
		err = models.ErrServerError
	}
	return
}

func (t *TokenRepo) GetTokenInfo(token string) (user entities.UserData, exists bool, err error) {
	val, e := t.rdb.HGetAll(t.ctx, tokenKey(token)).Result()
	if e != nil {
		log.Printf("GetTokenInfo: %v", e)
		err = models.ErrServerError
		return
	}
	if len(val) == 0 {
		return
	}
	user.Id, _ = strconv.Atoi(val["userId"])
	user.Name = val["name"]
	user.Role = val["role"]
	exists = true
	return
}

func (t *TokenRepo) DeleteUserTokens(userId int) (err error) {
	tokens, e := t.rdb.SMembers(t.ctx, userTokensKey(userId)).Result()
	if e != nil {
		log.Printf("DeleteUserTokens: %v", e)
		err = models.ErrServerError
		return
	}
	keys := make([]string, 0, len(tokens)+1)
	for _, token := range tokens {
		keys = append(keys, tokenKey(token))
	}
	keys = append(keys, userTokensKey(userId))
	err = t.rdb.Del(t.ctx, keys...).Err()
	if err != nil {
		log.Printf("DeleteUserTokens: %v", err)
		err = models.ErrServerError
	}
	return
}

func tokenKey(token string) string {
	return "token:" + token
}

func userTokensKey(userId int) string {
	return "user_tokens:" + strconv.Itoa(userId)
}
