package ratelimit

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    600,
		DefaultWindow:   time.Minute,
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

func TestAllowWithinLimit(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	allowed, info := l.Allow("client-1", "/api/ai-improve", "POST")
	assert.True(t, allowed)
	assert.Equal(t, 20, info.Limit)
	assert.Equal(t, 19, info.Remaining)
}

func TestAIEndpointDeniesTwentyFirstRequest(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 20; i++ {
		allowed, _ := l.Allow("client-1", "/api/ai-improve", "POST")
		require.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, info := l.Allow("client-1", "/api/ai-improve", "POST")
	assert.False(t, allowed)
	assert.Equal(t, 0, info.Remaining)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestClientsDoNotShareBuckets(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 20; i++ {
		l.Allow("client-1", "/api/ai-improve", "POST")
	}
	allowed, _ := l.Allow("client-1", "/api/ai-improve", "POST")
	require.False(t, allowed)

	allowed, _ = l.Allow("client-2", "/api/ai-improve", "POST")
	assert.True(t, allowed)
}

func TestEndpointsDoNotShareBuckets(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 20; i++ {
		l.Allow("client-1", "/api/ai-improve", "POST")
	}
	allowed, _ := l.Allow("client-1", "/api/ai-improve", "POST")
	require.False(t, allowed)

	allowed, _ = l.Allow("client-1", "/api/create-order", "POST")
	assert.True(t, allowed)
}

func TestHealthNeverLimited(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 1000; i++ {
		allowed, _ := l.Allow("client-1", "/health", "GET")
		require.True(t, allowed)
	}
}

func TestDisabledLimiterAllowsEverything(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := l.Allow("client-1", "/api/ai-improve", "POST")
		require.True(t, allowed)
	}
}

func TestUnknownEndpointUsesDefaults(t *testing.T) {
	cfg := testConfig()
	cfg.DefaultLimit = 3
	l := NewLimiter(cfg)
	defer l.Stop()

	for i := 0; i < 3; i++ {
		allowed, _ := l.Allow("client-1", "/api/unlisted", "GET")
		require.True(t, allowed)
	}
	allowed, _ := l.Allow("client-1", "/api/unlisted", "GET")
	assert.False(t, allowed)
}

func TestMatchEndpoint(t *testing.T) {
	configs := DefaultEndpointConfigs()

	tests := []struct {
		path     string
		method   string
		wantPath string
		wantNil  bool
	}{
		{path: "/api/ai-improve", method: "POST", wantPath: "/api/ai-improve"},
		{path: "/api/ai-improve", method: "GET", wantNil: true},
		{path: "/api/drafts/alice", method: "PUT", wantPath: "/api/drafts/"},
		{path: "/api/drafts/alice", method: "GET", wantNil: true},
		{path: "/api/nothing", method: "GET", wantNil: true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s %s", tt.method, tt.path), func(t *testing.T) {
			got := MatchEndpoint(tt.path, tt.method, configs)
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantPath, got.Path)
		})
	}
}

func TestMatchEndpointHealthUnlimited(t *testing.T) {
	got := MatchEndpoint("/health", "GET", DefaultEndpointConfigs())
	require.NotNil(t, got)
	assert.Equal(t, 0, got.Limit)
}

func TestBucketRefillsOverTime(t *testing.T) {
	b := newBucket(2, 100) // fast refill for the test
	for i := 0; i < 2; i++ {
		allowed, _, _ := b.take()
		require.True(t, allowed)
	}
	allowed, _, _ := b.take()
	require.False(t, allowed)

	time.Sleep(30 * time.Millisecond)
	allowed, _, _ = b.take()
	assert.True(t, allowed)
}
