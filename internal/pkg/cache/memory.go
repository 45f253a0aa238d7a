package cache

import (
	"context"
	"strconv"
	"sync"
	"time"
)

// MemoryClient implementa Client em memória, para uma única instância.
// Usado quando o Redis não está disponível e nos testes.
type MemoryClient struct {
	mu    sync.Mutex
	items map[string]memoryItem
	subs  map[string]map[*memorySubscription]struct{}
	now   func() time.Time
}

type memoryItem struct {
	value     string
	expiresAt time.Time
}

// NewMemoryClient cria um cache vazio.
func NewMemoryClient() *MemoryClient {
	return &MemoryClient{
		items: make(map[string]memoryItem),
		subs:  make(map[string]map[*memorySubscription]struct{}),
		now:   time.Now,
	}
}

func (c *MemoryClient) Get(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	item, ok := c.items[key]
	if !ok {
		return "", ErrCacheMiss
	}
	if !item.expiresAt.IsZero() && !c.now().Before(item.expiresAt) {
		delete(c.items, key)
		return "", ErrCacheMiss
	}
	return item.value, nil
}

func (c *MemoryClient) Set(_ context.Context, key string, value interface{}, expiration time.Duration) error {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	case int:
		s = strconv.Itoa(v)
	case int64:
		s = strconv.FormatInt(v, 10)
	default:
		return errUnsupportedValue
	}
	item := memoryItem{value: s}
	if expiration > 0 {
		item.expiresAt = c.now().Add(expiration)
	}
	c.mu.Lock()
	c.items[key] = item
	c.mu.Unlock()
	return nil
}

func (c *MemoryClient) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
	return nil
}

func (c *MemoryClient) GetInt(ctx context.Context, key string) (int, error) {
	val, err := c.Get(ctx, key)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(val)
}

// Incr mantém a expiração existente da chave, como o INCR do Redis.
func (c *MemoryClient) Incr(_ context.Context, key string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	item, ok := c.items[key]
	if ok && !item.expiresAt.IsZero() && !c.now().Before(item.expiresAt) {
		item = memoryItem{}
	}
	n, _ := strconv.ParseInt(item.value, 10, 64)
	n++
	item.value = strconv.FormatInt(n, 10)
	c.items[key] = item
	return n, nil
}

// Expire não faz nada se a chave não existir, como o EXPIRE do Redis.
func (c *MemoryClient) Expire(_ context.Context, key string, expiration time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	item, ok := c.items[key]
	if !ok {
		return nil
	}
	item.expiresAt = c.now().Add(expiration)
	c.items[key] = item
	return nil
}

// Publish entrega a mensagem sem bloquear; assinantes lentos perdem mensagens.
func (c *MemoryClient) Publish(_ context.Context, channel, message string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for sub := range c.subs[channel] {
		select {
		case sub.out <- message:
		default:
		}
	}
	return nil
}

func (c *MemoryClient) Subscribe(_ context.Context, channel string) (Subscription, error) {
	sub := &memorySubscription{client: c, channel: channel, out: make(chan string, 16)}
	c.mu.Lock()
	if c.subs[channel] == nil {
		c.subs[channel] = make(map[*memorySubscription]struct{})
	}
	c.subs[channel][sub] = struct{}{}
	c.mu.Unlock()
	return sub, nil
}

type memorySubscription struct {
	client  *MemoryClient
	channel string
	out     chan string
	once    sync.Once
}

func (s *memorySubscription) Messages() <-chan string { return s.out }

func (s *memorySubscription) Close() error {
	s.once.Do(func() {
		s.client.mu.Lock()
		delete(s.client.subs[s.channel], s)
		s.client.mu.Unlock()
		close(s.out)
	})
	return nil
}
