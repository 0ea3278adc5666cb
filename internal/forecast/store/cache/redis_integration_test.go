//go:build integration

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"foresight/pkg/platform/sentinel"
	"foresight/pkg/testutil/containers"
)

type RedisCacheSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	cache *Redis
	ctx   context.Context
}

func TestRedisCacheSuite(t *testing.T) {
	suite.Run(t, new(RedisCacheSuite))
}

func (s *RedisCacheSuite) SetupSuite() {
	s.redis = containers.NewRedisContainer(s.T())
	s.cache = NewRedis(s.redis.Client, "")
	s.ctx = context.Background()
}

func (s *RedisCacheSuite) TearDownSuite() {
	s.redis.Terminate(s.T())
}

func (s *RedisCacheSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(s.ctx))
}

func (s *RedisCacheSuite) TestRoundTrip() {
	s.Require().NoError(s.cache.Set(s.ctx, "density:2025:2035", []byte(`{"Years":[2025]}`), time.Minute))

	got, err := s.cache.Get(s.ctx, "density:2025:2035")
	s.Require().NoError(err)
	s.JSONEq(`{"Years":[2025]}`, string(got))

	raw, err := s.redis.Client.Get(s.ctx, DefaultKeyPrefix+"density:2025:2035").Result()
	s.Require().NoError(err)
	s.NotEmpty(raw)
}

func (s *RedisCacheSuite) TestMiss() {
	_, err := s.cache.Get(s.ctx, "absent")
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *RedisCacheSuite) TestTTLApplied() {
	s.Require().NoError(s.cache.Set(s.ctx, "ttl", []byte("v"), time.Minute))
	ttl, err := s.redis.Client.TTL(s.ctx, DefaultKeyPrefix+"ttl").Result()
	s.Require().NoError(err)
	s.Greater(ttl, time.Duration(0))
	s.LessOrEqual(ttl, time.Minute)
}

func (s *RedisCacheSuite) TestHealth() {
	s.NoError(s.cache.Health(s.ctx))
}
