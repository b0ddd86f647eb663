package database

import (
	"context"
	"log"
	"time"

	"lucia/config"

	"github.com/redis/go-redis/v9"
)

var (
	cacheClient *redis.Client
	cacheTTL    time.Duration
)

// 规划接口缓存键的统一前缀，写操作按前缀整体失效
const planningCachePrefix = "planning:"

// InitCache 初始化规划缓存（可选）
// 配置未开启时静默跳过，所有读接口直接查库
func InitCache(cfg *config.Config) error {
	if !cfg.Redis.Enabled {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return err
	}

	cacheClient = client
	cacheTTL = time.Duration(cfg.Redis.TTLSeconds) * time.Second
	log.Println("规划缓存初始化成功")
	return nil
}

// CacheEnabled 缓存是否可用
func CacheEnabled() bool {
	return cacheClient != nil
}

// CacheGetPlanning 读取规划缓存，未命中返回 ""
func CacheGetPlanning(ctx context.Context, key string) string {
	if cacheClient == nil {
		return ""
	}
	val, err := cacheClient.Get(ctx, planningCachePrefix+key).Result()
	if err != nil {
		return ""
	}
	return val
}

// CacheSetPlanning 写入规划缓存，失败只记日志不影响请求
func CacheSetPlanning(ctx context.Context, key, value string) {
	if cacheClient == nil {
		return
	}
	if err := cacheClient.Set(ctx, planningCachePrefix+key, value, cacheTTL).Err(); err != nil {
		log.Printf("警告: 写入规划缓存失败: %v", err)
	}
}

// InvalidatePlanningCache 任何台账/计划/分期/设置写操作之后整体失效
func InvalidatePlanningCache(ctx context.Context) {
	if cacheClient == nil {
		return
	}
	keys, err := cacheClient.Keys(ctx, planningCachePrefix+"*").Result()
	if err != nil || len(keys) == 0 {
		return
	}
	if err := cacheClient.Del(ctx, keys...).Err(); err != nil {
		log.Printf("警告: 失效规划缓存失败: %v", err)
	}
}
