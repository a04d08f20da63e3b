package redis

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
)

func newTestDenylist(t *testing.T) (*TokenDenylist, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewTokenDenylist(client), mr
}

func TestTokenDenylist_RevokeThenLookup(t *testing.T) {
	ctx := context.Background()
	dl, _ := newTestDenylist(t)

	revoked, err := dl.IsRevoked(ctx, "tok-a")
	if err != nil || revoked {
		t.Fatalf("fresh token reported revoked: %v, %v", revoked, err)
	}

	if err := dl.Revoke(ctx, "tok-a", 60); err != nil {
		t.Fatalf("revoke failed: %v", err)
	}

	revoked, err = dl.IsRevoked(ctx, "tok-a")
	if err != nil || !revoked {
		t.Fatalf("revoked token not reported: %v, %v", revoked, err)
	}

	revoked, err = dl.IsRevoked(ctx, "tok-b")
	if err != nil || revoked {
		t.Fatalf("unrelated token reported revoked: %v, %v", revoked, err)
	}
}

func TestTokenDenylist_EntryExpiresWithTTL(t *testing.T) {
	ctx := context.Background()
	dl, mr := newTestDenylist(t)

	if err := dl.Revoke(ctx, "tok-a", 30); err != nil {
		t.Fatalf("revoke failed: %v", err)
	}

	mr.FastForward(31 * time.Second)

	revoked, err := dl.IsRevoked(ctx, "tok-a")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if revoked {
		t.Fatalf("entry must lapse with the token's remaining lifetime")
	}
}

func TestTokenDenylist_NonPositiveTTLIsNoop(t *testing.T) {
	ctx := context.Background()
	dl, mr := newTestDenylist(t)

	if err := dl.Revoke(ctx, "tok-a", 0); err != nil {
		t.Fatalf("revoke failed: %v", err)
	}
	if err := dl.Revoke(ctx, "tok-b", -5); err != nil {
		t.Fatalf("revoke failed: %v", err)
	}

	if keys := mr.Keys(); len(keys) != 0 {
		t.Fatalf("expired tokens must not be written, found %v", keys)
	}
}

func TestTokenDenylist_StoresDigestNotToken(t *testing.T) {
	ctx := context.Background()
	dl, mr := newTestDenylist(t)

	const token = "eyJhbGciOiJIUzI1NiJ9.payload.sig"
	if err := dl.Revoke(ctx, token, 60); err != nil {
		t.Fatalf("revoke failed: %v", err)
	}

	keys := mr.Keys()
	if len(keys) != 1 {
		t.Fatalf("expected one key, got %v", keys)
	}
	if strings.Contains(keys[0], "payload") {
		t.Fatalf("raw token leaked into key %q", keys[0])
	}
	if !strings.HasPrefix(keys[0], "revoked:") {
		t.Fatalf("unexpected key format %q", keys[0])
	}
}
