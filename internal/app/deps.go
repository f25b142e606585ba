// Package app arma los adapters externos a partir de la configuración.
// Lo comparten el servidor (cmd/api) y el CLI (cmd/yieldctl).
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"yield-ai/internal/adapters/inference/remote"
	"yield-ai/internal/adapters/notify/lognotifier"
	"yield-ai/internal/adapters/notify/ses"
	"yield-ai/internal/adapters/notify/sns"
	"yield-ai/internal/adapters/search/elasticsearch"
	mem "yield-ai/internal/adapters/storage/memory"
	pg "yield-ai/internal/adapters/storage/postgres"
	"yield-ai/internal/adapters/storage/redisstore"
	"yield-ai/internal/domain/breeders"
	"yield-ai/internal/domain/breeds"
	"yield-ai/internal/domain/chat"
	"yield-ai/internal/domain/contact"
	"yield-ai/internal/domain/recognition"
	"yield-ai/internal/platform/config"
	"yield-ai/internal/platform/httpclient"
	"yield-ai/internal/platform/logger"
	"yield-ai/internal/router"

	"github.com/redis/go-redis/v9"
)

// Deps son las conexiones abiertas. Los campos en nil significan "no configurado".
type Deps struct {
	DB         *sql.DB
	Redis      *redis.Client
	BreedIndex *elasticsearch.BreedIndex
	Responder  chat.Responder
	Classifier recognition.Classifier
	Notifier   contact.Notifier
}

// Open abre solo lo que la config pide. Si algo falla cierra lo ya abierto.
func Open(ctx context.Context, cfg config.Config, log logger.Logger) (_ *Deps, err error) {
	d := &Deps{}
	defer func() {
		if err != nil {
			_ = d.Close()
		}
	}()

	if cfg.Database.DSN != "" {
		if d.DB, err = pg.Open(cfg.Database.DSN); err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		log.Info("postgres connected", nil)

		seeded, berr := pg.Bootstrap(ctx, d.DB, breeds.Seed(), breeders.Seed())
		if berr != nil {
			return nil, fmt.Errorf("bootstrap postgres: %w", berr)
		}
		if seeded.BreedsSeeded > 0 || seeded.BreedersSeeded > 0 {
			log.Info("empty catalog seeded", map[string]any{
				"breeds":   seeded.BreedsSeeded,
				"breeders": seeded.BreedersSeeded,
			})
		}
	}

	if cfg.Redis.Address != "" {
		d.Redis, err = redisstore.Open(ctx, redisstore.Options{
			Address:  cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, fmt.Errorf("open redis: %w", err)
		}
		log.Info("redis connected", map[string]any{"address": cfg.Redis.Address})
	}

	if cfg.Elasticsearch.Enabled() {
		d.BreedIndex, err = elasticsearch.New(elasticsearch.Options{
			Addresses: cfg.Elasticsearch.Addresses,
			Username:  cfg.Elasticsearch.Username,
			Password:  cfg.Elasticsearch.Password,
			Index:     cfg.Elasticsearch.Index,
		})
		if err != nil {
			return nil, err
		}
		if !syncBreedIndex(ctx, d.BreedIndex, d.catalogRepo(), log) {
			d.BreedIndex = nil
		}
	}

	if cfg.Inference.Mode == config.InferenceRemote {
		client, cerr := httpclient.New(httpclient.Options{
			BaseURL: cfg.Inference.BaseURL,
			Timeout: cfg.Inference.Timeout,
			APIKey:  cfg.Inference.APIKey,
		})
		if cerr != nil {
			return nil, fmt.Errorf("inference client: %w", cerr)
		}
		d.Responder = remote.NewChatResponder(client)
		d.Classifier = remote.NewClassifier(client)
	}

	switch cfg.Notify.Mode {
	case config.NotifySES:
		if d.Notifier, err = ses.NewFromRegion(ctx, cfg.Notify.Region, cfg.Notify.From, cfg.Notify.To); err != nil {
			return nil, fmt.Errorf("ses notifier: %w", err)
		}
	case config.NotifySNS:
		if d.Notifier, err = sns.NewFromRegion(ctx, cfg.Notify.Region, cfg.Notify.SNSTopicARN); err != nil {
			return nil, fmt.Errorf("sns notifier: %w", err)
		}
	default:
		d.Notifier = lognotifier.New(log)
	}

	return d, nil
}

// catalogRepo es la fuente de verdad del catálogo: Postgres si hay DSN, si no el seed.
func (d *Deps) catalogRepo() breeds.Repository {
	if d.DB != nil {
		return pg.NewBreedsRepo(d.DB)
	}
	return mem.NewBreedRepo(breeds.Seed())
}

// breedIndexer es la parte de elasticsearch.BreedIndex que usa el arranque.
type breedIndexer interface {
	Ping(ctx context.Context) error
	Count(ctx context.Context) (int, error)
	Reindex(ctx context.Context, items []breeds.Breed) error
}

// syncBreedIndex deja el índice con el mismo número de documentos que el catálogo.
// Un índice vacío no da error en Search, así que sin esto nunca se caería al filtro
// en memoria. Devuelve false si el índice no se puede usar.
func syncBreedIndex(ctx context.Context, ix breedIndexer, repo breeds.Repository, log logger.Logger) bool {
	if err := ix.Ping(ctx); err != nil {
		// puede volver más tarde; mientras tanto Search falla y se usa el filtro en memoria
		log.Warn("elasticsearch not reachable, searches will fall back to memory", map[string]any{"error": err})
		return true
	}

	catalog, err := repo.List(ctx)
	if err != nil {
		log.Warn("cannot read catalog, breed index disabled", map[string]any{"error": err})
		return false
	}

	n, err := ix.Count(ctx)
	if err == nil && n == len(catalog) {
		return true
	}

	log.Info("breed index out of sync, reindexing", map[string]any{"indexed": n, "catalog": len(catalog)})
	if err := ix.Reindex(ctx, catalog); err != nil {
		log.Warn("reindex failed, breed index disabled", map[string]any{"error": err})
		return false
	}
	return true
}

// RouterOptions traduce config + deps a router.Options.
func (d *Deps) RouterOptions(cfg config.Config, log logger.Logger) router.Options {
	opts := router.Options{
		Logger:           log,
		DB:               d.DB,
		Redis:            d.Redis,
		RedisSessionTTL:  cfg.Redis.SessionTTL,
		Responder:        d.Responder,
		Classifier:       d.Classifier,
		Notifier:         d.Notifier,
		ChatDelay:        cfg.Delays.ChatReply,
		RecognitionDelay: cfg.Delays.Recognition,
		ContactDelay:     cfg.Delays.Contact,
		MaxUploadBytes:   cfg.Upload.MaxBytes,
	}
	// interfaz con puntero nil != nil
	if d.BreedIndex != nil {
		opts.BreedIndex = d.BreedIndex
	}
	return opts
}

func (d *Deps) Close() error {
	var errs []error
	if d.DB != nil {
		errs = append(errs, d.DB.Close())
	}
	if d.Redis != nil {
		errs = append(errs, d.Redis.Close())
	}
	return errors.Join(errs...)
}
