package cache

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// Client define o contrato de interface para qualquer serviço de cache que o Repositório possa usar.
// Além de chave/valor, expõe contadores (rate limit) e pub/sub (notificação de alterações).
type Client interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
	GetInt(ctx context.Context, key string) (int, error)
	Incr(ctx context.Context, key string) (int64, error)
	Expire(ctx context.Context, key string, expiration time.Duration) error
	Publish(ctx context.Context, channel, message string) error
	Subscribe(ctx context.Context, channel string) (Subscription, error)
}

// Subscription entrega as mensagens publicadas em um canal até ser fechada.
type Subscription interface {
	Messages() <-chan string
	Close() error
}

// ErrCacheMiss é retornado quando a chave não é encontrada no cache.
var ErrCacheMiss = redis.Nil

// RedisClient é a implementação concreta da interface Client, usando Redis.
type RedisClient struct {
	rdb *redis.Client
}

// NewRedisClient cria o cliente Redis e testa a conexão.
// Se o PING falhar o pool é fechado e o erro devolvido; quem chama decide o fallback.
func NewRedisClient(addr string) (*RedisClient, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		rdb.Close()
		return nil, err
	}
	return &RedisClient{rdb: rdb}, nil
}

// Close libera o pool de conexões.
func (c *RedisClient) Close() error {
	return c.rdb.Close()
}

// Get recupera o valor associado a uma chave.
func (c *RedisClient) Get(ctx context.Context, key string) (string, error) {
	val, err := c.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", ErrCacheMiss
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// Set define um valor para uma chave com um tempo de expiração.
func (c *RedisClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return c.rdb.Set(ctx, key, value, expiration).Err()
}

// Delete remove uma chave do cache.
func (c *RedisClient) Delete(ctx context.Context, key string) error {
	return c.rdb.Del(ctx, key).Err()
}

// GetInt lê um contador; chave ausente devolve ErrCacheMiss.
func (c *RedisClient) GetInt(ctx context.Context, key string) (int, error) {
	val, err := c.Get(ctx, key)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(val)
}

// Incr incrementa atomicamente um contador.
func (c *RedisClient) Incr(ctx context.Context, key string) (int64, error) {
	return c.rdb.Incr(ctx, key).Result()
}

// Expire define o tempo de vida de uma chave existente.
func (c *RedisClient) Expire(ctx context.Context, key string, expiration time.Duration) error {
	return c.rdb.Expire(ctx, key, expiration).Err()
}

// Publish envia uma mensagem para todos os assinantes do canal.
func (c *RedisClient) Publish(ctx context.Context, channel, message string) error {
	return c.rdb.Publish(ctx, channel, message).Err()
}

// Subscribe assina o canal e aguarda a confirmação do servidor.
func (c *RedisClient) Subscribe(ctx context.Context, channel string) (Subscription, error) {
	ps := c.rdb.Subscribe(ctx, channel)
	if _, err := ps.Receive(ctx); err != nil {
		ps.Close()
		return nil, err
	}

	out := make(chan string)
	done := make(chan struct{})
	go func() {
		defer close(out)
		ch := ps.Channel()
		for {
			select {
			case msg, ok := <-ch:
				if !ok {
					return
				}
				select {
				case out <- msg.Payload:
				case <-done:
					return
				}
			case <-done:
				return
			}
		}
	}()
	return &redisSubscription{ps: ps, out: out, done: done}, nil
}

type redisSubscription struct {
	ps   *redis.PubSub
	out  chan string
	done chan struct{}
	once sync.Once
}

func (s *redisSubscription) Messages() <-chan string { return s.out }

func (s *redisSubscription) Close() error {
	s.once.Do(func() { close(s.done) })
	return s.ps.Close()
}

var errUnsupportedValue = errors.New("cache: tipo de valor não suportado")
