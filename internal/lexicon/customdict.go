package lexicon

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Redis set keys for custom lexicon words.
const (
	formalKey   = "texttuner:lexicon:formal"
	informalKey = "texttuner:lexicon:informal"
)

// CustomDict stores user-supplied formal and informal words in Redis sets.
// Words added here are merged into the static provider at startup.
type CustomDict struct {
	client *redis.Client
}

// NewCustomDict creates a CustomDict over the provided Redis client.
func NewCustomDict(client *redis.Client) *CustomDict {
	return &CustomDict{client: client}
}

// keyFor maps a register name to its Redis key.
func keyFor(register string) (string, error) {
	switch register {
	case "formal":
		return formalKey, nil
	case "informal":
		return informalKey, nil
	default:
		return "", fmt.Errorf("unknown register %q: use formal or informal", register)
	}
}

// Add inserts a word into the given register set.
func (cd *CustomDict) Add(ctx context.Context, register, word string) error {
	key, err := keyFor(register)
	if err != nil {
		return err
	}
	return cd.client.SAdd(ctx, key, word).Err()
}

// Remove deletes a word from the given register set.
func (cd *CustomDict) Remove(ctx context.Context, register, word string) error {
	key, err := keyFor(register)
	if err != nil {
		return err
	}
	return cd.client.SRem(ctx, key, word).Err()
}

// All returns all words stored in the given register set.
func (cd *CustomDict) All(ctx context.Context, register string) ([]string, error) {
	key, err := keyFor(register)
	if err != nil {
		return nil, err
	}
	return cd.client.SMembers(ctx, key).Result()
}
