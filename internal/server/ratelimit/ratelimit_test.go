package ratelimit

import (
	"testing"
	"time"
)

func TestTokenBucket_Allow(t *testing.T) {
	bucket := newTokenBucket(3, 1.0)

	for i := 0; i < 3; i++ {
		if !bucket.allow() {
			t.Errorf("Request %d should be allowed within burst", i+1)
		}
	}
	if bucket.allow() {
		t.Error("Request beyond burst should be denied")
	}
}

func TestTokenBucket_Refill(t *testing.T) {
	// 100 tokens/sec so the refill is observable without a long sleep
	bucket := newTokenBucket(1, 100.0)

	if !bucket.allow() {
		t.Fatal("First request should be allowed")
	}
	if bucket.allow() {
		t.Fatal("Second immediate request should be denied")
	}

	time.Sleep(20 * time.Millisecond)
	if !bucket.allow() {
		t.Error("Request after refill interval should be allowed")
	}
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := limiter.Allow("client", "/api/schedule", "POST")
		if !allowed {
			t.Fatal("Disabled limiter should allow everything")
		}
	}
}

func TestLimiter_EndpointTier(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{},
		Blacklist:     map[string]bool{},
		EndpointConfigs: []EndpointConfig{
			{Path: "/api/schedule", Method: "POST", Limit: 2, Window: time.Hour, Burst: 2},
		},
	})
	defer limiter.Stop()

	for i := 0; i < 2; i++ {
		allowed, info := limiter.Allow("1.2.3.4", "/api/schedule", "POST")
		if !allowed {
			t.Fatalf("Request %d should be allowed, info: %+v", i+1, info)
		}
		if info.Limit != 2 {
			t.Errorf("Limit = %d, want 2", info.Limit)
		}
	}

	allowed, info := limiter.Allow("1.2.3.4", "/api/schedule", "POST")
	if allowed {
		t.Error("Third request should be rate limited")
	}
	if info.RetryAfter <= 0 {
		t.Errorf("RetryAfter should be positive, got %v", info.RetryAfter)
	}

	// Different client is unaffected
	allowed, _ = limiter.Allow("5.6.7.8", "/api/schedule", "POST")
	if !allowed {
		t.Error("Different client should not share buckets")
	}
}

func TestLimiter_WhitelistBlacklist(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Hour,
		Whitelist:     map[string]bool{"10.0.0.1": true},
		Blacklist:     map[string]bool{"10.0.0.2": true},
	})
	defer limiter.Stop()

	for i := 0; i < 5; i++ {
		if allowed, _ := limiter.Allow("10.0.0.1", "/api/schedules", "GET"); !allowed {
			t.Fatal("Whitelisted client should never be limited")
		}
	}

	if allowed, _ := limiter.Allow("10.0.0.2", "/api/schedules", "GET"); allowed {
		t.Error("Blacklisted client should always be denied")
	}
}

func TestMatchEndpoint(t *testing.T) {
	configs := DefaultEndpointConfigs()

	tests := []struct {
		path      string
		method    string
		wantLimit int
		wantNil   bool
	}{
		{"/api/health", "GET", 0, false},
		{"/api/schedule", "POST", 20, false},
		{"/api/schedules", "POST", 20, false},
		{"/api/schedules/abc/regenerate", "POST", 20, false},
		{"/api/auth/login", "POST", 30, false},
		{"/api/schedules/abc/progress", "PUT", 300, false},
		{"/api/schedules/abc", "DELETE", 100, false},
		{"/api/schedules", "GET", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			config := MatchEndpoint(tt.path, tt.method, configs)
			if tt.wantNil {
				if config != nil {
					t.Errorf("Expected no match, got %+v", config)
				}
				return
			}
			if config == nil {
				t.Fatal("Expected a match, got nil")
			}
			if config.Limit != tt.wantLimit {
				t.Errorf("Limit = %d, want %d", config.Limit, tt.wantLimit)
			}
		})
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	config := LoadConfig()
	if !config.Enabled {
		t.Error("Rate limiting should be enabled by default")
	}
	if config.DefaultLimit != 1000 {
		t.Errorf("DefaultLimit = %d, want 1000", config.DefaultLimit)
	}
}

func TestLoadConfig_Disabled(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	config := LoadConfig()
	if config.Enabled {
		t.Error("RATE_LIMIT_ENABLED=false should disable rate limiting")
	}
}
