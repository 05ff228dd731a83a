package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix = "user:%s"
	SwapKeyPrefix = "swap:%s"
)

const (
	UserTTL = 5 * time.Minute
	SwapTTL = 2 * time.Minute
)

func UserKey(userID string) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func SwapKey(swapID string) string {
	return fmt.Sprintf(SwapKeyPrefix, swapID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID string) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidateSwap(ctx context.Context, swapID string) {
	Invalidate(ctx, SwapKey(swapID))
}
