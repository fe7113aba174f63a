package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"agrimarket/internal/core/domain/model/address"
	"agrimarket/internal/core/ports"
	"agrimarket/internal/pkg/errs"
)

const pincodeKeyPrefix = "pincode:"

// DefaultPincodeTTL is how long a resolved locality stays cached. Postal
// geography changes on the scale of years, so a day is conservative.
const DefaultPincodeTTL = 24 * time.Hour

// CachingPincodeResolver decorates a ports.PincodeResolver with a Redis
// cache. Cache trouble never fails a lookup; the decorator falls through to
// the inner resolver and logs the miss.
type CachingPincodeResolver struct {
	inner  ports.PincodeResolver
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachingPincodeResolver wraps inner with a cache. A ttl of zero or less
// selects DefaultPincodeTTL.
func NewCachingPincodeResolver(
	inner ports.PincodeResolver,
	client *redis.Client,
	ttl time.Duration,
	logger *slog.Logger,
) (*CachingPincodeResolver, error) {
	if inner == nil {
		return nil, errs.NewValueIsRequiredError("inner")
	}
	if client == nil {
		return nil, errs.NewValueIsRequiredError("client")
	}
	if logger == nil {
		logger = slog.Default()
	}
	if ttl <= 0 {
		ttl = DefaultPincodeTTL
	}

	return &CachingPincodeResolver{
		inner:  inner,
		client: client,
		ttl:    ttl,
		logger: logger.With(slog.String("component", "pincode_cache")),
	}, nil
}

type localityDTO struct {
	District string `json:"district"`
	State    string `json:"state"`
}

// Resolve serves from the cache when it can. Only successful resolutions are
// cached: a not-found answer may be a lookup-service hiccup, and caching it
// would lock a valid code out for the whole TTL.
func (r *CachingPincodeResolver) Resolve(ctx context.Context, pincode address.Pincode) (ports.Locality, error) {
	if err := pincode.Validate(); err != nil {
		return ports.Locality{}, err
	}

	key := pincodeKeyPrefix + pincode.String()

	payload, err := r.client.Get(ctx, key).Bytes()
	if err == nil {
		var dto localityDTO
		if err := json.Unmarshal(payload, &dto); err == nil {
			return ports.Locality{District: dto.District, State: dto.State}, nil
		}
		r.logger.Warn("dropping corrupt cache entry", slog.String("pincode", pincode.String()))
		_ = r.client.Del(ctx, key).Err()
	} else if !errors.Is(err, redis.Nil) {
		r.logger.Warn("cache read failed, falling through",
			slog.String("pincode", pincode.String()),
			slog.Any("error", err))
	}

	locality, err := r.inner.Resolve(ctx, pincode)
	if err != nil {
		return ports.Locality{}, err
	}

	payload, marshalErr := json.Marshal(localityDTO{District: locality.District, State: locality.State})
	if marshalErr == nil {
		if err := r.client.Set(ctx, key, payload, r.ttl).Err(); err != nil {
			r.logger.Warn("cache write failed",
				slog.String("pincode", pincode.String()),
				slog.Any("error", err))
		}
	}

	return locality, nil
}
