package service

import (
	"context"
	"credit_edu_backend/internal/util"
)

// IdentityResolver 解析当前请求的用户ID
type IdentityResolver interface {
	CurrentUserID(ctx context.Context) (string, error)
}

// DemoIdentity 未接入身份提供方时使用的固定演示用户
type DemoIdentity struct {
	UserID string
}

func (d DemoIdentity) CurrentUserID(context.Context) (string, error) {
	if d.UserID == "" {
		return "", util.ErrUnauthenticated
	}
	return d.UserID, nil
}

// SessionIdentity 读取鉴权中间件写入请求上下文的用户
type SessionIdentity struct{}

func (SessionIdentity) CurrentUserID(ctx context.Context) (string, error) {
	id, ok := util.UserIDFromContext(ctx)
	if !ok {
		return "", util.ErrUnauthenticated
	}
	return id, nil
}
