package main

import (
	"testing"

	"golang.org/x/time/rate"
)

func TestIPRateLimiterEnforcesBurst(t *testing.T) {
	limiter := NewIPRateLimiter(rate.Limit(0.001), 2)

	if !limiter.Allow("10.0.0.1") {
		t.Fatal("first request should pass")
	}
	if !limiter.Allow("10.0.0.1") {
		t.Fatal("second request should pass within burst")
	}
	if limiter.Allow("10.0.0.1") {
		t.Error("third request should exceed the burst")
	}
}

func TestIPRateLimiterIsolatesClients(t *testing.T) {
	limiter := NewIPRateLimiter(rate.Limit(0.001), 1)

	if !limiter.Allow("10.0.0.1") {
		t.Fatal("first client should pass")
	}
	if !limiter.Allow("10.0.0.2") {
		t.Error("second client must have its own bucket")
	}

	a := limiter.GetLimiter("10.0.0.1")
	if b := limiter.GetLimiter("10.0.0.1"); a != b {
		t.Error("same IP should reuse its limiter")
	}
}
