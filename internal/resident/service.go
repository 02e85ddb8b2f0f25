package resident

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/tibungco/portal/internal/auth"
)

const statsCacheKey = "stats:residents"

// Store abstrai a persistência de moradores.
type Store interface {
	Create(ctx context.Context, params CreateParams) (*Resident, error)
	FindByEmail(ctx context.Context, email string) (*Resident, error)
	Count(ctx context.Context) (int64, error)
}

// Service reúne as regras do diretório de moradores.
type Service struct {
	store    Store
	cache    *redis.Client
	cacheTTL time.Duration
}

// NewService cria o serviço com cache de contagem em Redis.
func NewService(store Store, cache *redis.Client, cacheTTL time.Duration) *Service {
	return &Service{store: store, cache: cache, cacheTTL: cacheTTL}
}

// Register persiste um novo morador com senha em hash Argon2id.
// A senha é aparada antes do hash para casar com o comportamento do
// cliente, que envia credenciais sem espaços nas pontas.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*Resident, error) {
	hash, err := auth.HashPassword(strings.TrimSpace(input.Password))
	if err != nil {
		return nil, err
	}

	created, err := s.store.Create(ctx, CreateParams{
		FullName:     input.FullName,
		Email:        input.Email,
		Phone:        input.Phone,
		PasswordHash: hash,
	})
	if err != nil {
		return nil, err
	}

	s.invalidateCount(ctx)
	return created, nil
}

// Login valida credenciais por correspondência exata de e-mail.
func (s *Service) Login(ctx context.Context, email, password string) (*Resident, error) {
	res, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	ok, err := auth.VerifyPassword(strings.TrimSpace(password), res.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	return res, nil
}

// Count devolve o total de moradores, preferindo o cache. Qualquer
// falha de Redis degrada para consulta direta no banco.
func (s *Service) Count(ctx context.Context) (int64, error) {
	if cached, err := s.cache.Get(ctx, statsCacheKey).Result(); err == nil {
		if total, parseErr := strconv.ParseInt(cached, 10, 64); parseErr == nil {
			return total, nil
		}
	}

	total, err := s.store.Count(ctx)
	if err != nil {
		return 0, err
	}

	if err := s.cache.Set(ctx, statsCacheKey, strconv.FormatInt(total, 10), s.cacheTTL).Err(); err != nil {
		log.Debug().Err(err).Msg("cache de contagem indisponível")
	}

	return total, nil
}

func (s *Service) invalidateCount(ctx context.Context) {
	if err := s.cache.Del(ctx, statsCacheKey).Err(); err != nil {
		log.Debug().Err(err).Msg("não foi possível invalidar cache de contagem")
	}
}
