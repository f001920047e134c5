package cache

import (
	"context"
	"time"

	valkey "github.com/valkey-io/valkey-go"
)

// ValkeyClient implements Cache on a Valkey server. Unlike the in-memory
// cache it is shared across API replicas, so a write on one replica
// invalidates the list pages every replica serves.
type ValkeyClient struct {
	c valkey.Client
}

func NewValkey(addr, password string) (*ValkeyClient, error) {
	opts := valkey.ClientOption{
		InitAddress: []string{addr},
	}
	if password != "" {
		opts.Username = "default"
		opts.Password = password
	}
	client, err := valkey.NewClient(opts)
	if err != nil {
		return nil, err
	}
	return &ValkeyClient{c: client}, nil
}

func (v *ValkeyClient) Get(ctx context.Context, key string) (string, bool) {
	res := v.c.Do(ctx, v.c.B().Get().Key(key).Build())
	if res.Error() != nil {
		// misses and transport errors both read as a miss; the caller
		// rebuilds the page either way
		return "", false
	}
	str, err := res.ToString()
	if err != nil {
		return "", false
	}
	return str, true
}

func (v *ValkeyClient) Set(ctx context.Context, key string, val string, ttl time.Duration) error {
	if ttl > 0 {
		return v.c.Do(ctx, v.c.B().Set().Key(key).Value(val).ExSeconds(int64(ttl/time.Second)).Build()).Error()
	}
	return v.c.Do(ctx, v.c.B().Set().Key(key).Value(val).Build()).Error()
}

func (v *ValkeyClient) Delete(ctx context.Context, key string) error {
	return v.c.Do(ctx, v.c.B().Del().Key(key).Build()).Error()
}

// DeletePrefix drops every cached page under a collection prefix in one
// DEL. Key counts here are tiny (one entry per cursor/limit pair seen in
// the last two minutes), so KEYS is acceptable.
func (v *ValkeyClient) DeletePrefix(ctx context.Context, prefix string) error {
	res := v.c.Do(ctx, v.c.B().Keys().Pattern(prefix+"*").Build())
	if err := res.Error(); err != nil {
		return err
	}
	keys, err := res.AsStrSlice()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return v.c.Do(ctx, v.c.B().Del().Key(keys...).Build()).Error()
}
