package token

import (
	"testing"
	"time"
)

func testConf() Conf {
	return Conf{
		AccessSecret:  "access-secret",
		AccessExpire:  time.Hour,
		RefreshSecret: "refresh-secret",
		RefreshExpire: 24 * time.Hour,
	}
}

func TestBuildTokenPairRoundtrip(t *testing.T) {
	cfg := testConf()
	pair, expireAt, err := BuildTokenPair(cfg, 42, "hanako")
	if err != nil {
		t.Fatalf("BuildTokenPair() error: %v", err)
	}
	if pair.ExpiresIn != int64(cfg.AccessExpire.Seconds()) {
		t.Fatalf("ExpiresIn = %d", pair.ExpiresIn)
	}
	if expireAt.Before(time.Now()) {
		t.Fatal("access expiry already in the past")
	}

	claims, err := Parse(pair.AccessToken, cfg.AccessSecret)
	if err != nil {
		t.Fatalf("Parse(access) error: %v", err)
	}
	if claims.UserID != 42 || claims.Username != "hanako" {
		t.Fatalf("claims = %+v", claims)
	}

	refClaims, err := Parse(pair.RefreshToken, cfg.RefreshSecret)
	if err != nil {
		t.Fatalf("Parse(refresh) error: %v", err)
	}
	if refClaims.UserID != 42 {
		t.Fatalf("refresh claims = %+v", refClaims)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	cfg := testConf()
	pair, _, err := BuildTokenPair(cfg, 1, "taro")
	if err != nil {
		t.Fatalf("BuildTokenPair() error: %v", err)
	}
	if _, err := Parse(pair.AccessToken, "not-the-secret"); err == nil {
		t.Fatal("expected signature error")
	}
}

func TestIsExpired(t *testing.T) {
	signed, _, err := Sign("secret", time.Nanosecond, 1, "taro")
	if err != nil {
		t.Fatalf("Sign() error: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	_, err = Parse(signed, "secret")
	if err == nil {
		t.Fatal("expected expiry error")
	}
	if !IsExpired(err) {
		t.Fatalf("IsExpired() = false for %v", err)
	}

	if IsExpired(nil) {
		t.Fatal("IsExpired(nil) = true")
	}
	if _, otherErr := Parse("garbage", "secret"); IsExpired(otherErr) {
		t.Fatal("malformed token misreported as expired")
	}
}

func TestSignValidation(t *testing.T) {
	if _, _, err := Sign("", time.Hour, 1, "x"); err == nil {
		t.Fatal("empty secret accepted")
	}
	if _, _, err := Sign("secret", 0, 1, "x"); err == nil {
		t.Fatal("non-positive ttl accepted")
	}
}
