// internal/platform/di/container.go
package di

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"cloud.google.com/go/firestore"
	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	_ "github.com/lib/pq"

	httpin "cartledger/internal/adapters/in/http"
	"cartledger/internal/adapters/in/http/middleware"
	pgrepo "cartledger/internal/adapters/out/db"
	fsrepo "cartledger/internal/adapters/out/firestore"
	memrepo "cartledger/internal/adapters/out/memory"
	usecase "cartledger/internal/application/usecase"
	cartdom "cartledger/internal/domain/cart"
	itemdom "cartledger/internal/domain/cartitem"
	appcfg "cartledger/internal/platform/config"
)

// Container owns external clients and the wired usecases.
// Substrate selection:
//   - DATABASE_URL / DATABASE_URL_SECRET set -> Postgres (lib/pq)
//   - else FIRESTORE_PROJECT_ID set         -> Firestore
//   - else                                  -> in-memory (local dev only)
//
// Firebase Auth is best-effort: without it the authenticated routes
// answer 503, but /healthz still serves.
type Container struct {
	Config *appcfg.Config

	Firestore    *firestore.Client
	FirebaseAuth *middleware.FirebaseAuthClient

	CartUC     *usecase.CartUsecase
	CartItemUC *usecase.CartItemUsecase

	db        *sql.DB
	cleanupFn []func()
}

func NewContainer(ctx context.Context) (*Container, error) {
	cfg := appcfg.Load()
	c := &Container{Config: cfg}

	var clientOpts []option.ClientOption
	credFile := strings.TrimSpace(cfg.FirestoreCredentialsFile)
	if credFile == "" {
		credFile = strings.TrimSpace(cfg.GCPCreds)
	}
	if credFile != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(credFile))
		log.Printf("[di] using credentials file for GCP clients")
	}

	carts, items, err := c.buildRepositories(ctx, clientOpts)
	if err != nil {
		c.Close()
		return nil, err
	}

	c.CartUC = usecase.NewCartUsecase(carts, items)
	c.CartItemUC = usecase.NewCartItemUsecase(carts, items)

	// Firebase Auth (best-effort; warn + continue)
	if prj := strings.TrimSpace(cfg.FirebaseProjectID); prj != "" {
		app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: prj}, clientOpts...)
		if err != nil {
			log.Printf("[di] WARN: firebase app init failed: %v", err)
		} else if auth, err := app.Auth(ctx); err != nil {
			log.Printf("[di] WARN: firebase auth init failed: %v", err)
		} else {
			c.FirebaseAuth = auth
		}
	} else {
		log.Printf("[di] WARN: FIREBASE_PROJECT_ID empty; authenticated routes will answer 503")
	}

	return c, nil
}

func (c *Container) buildRepositories(ctx context.Context, clientOpts []option.ClientOption) (cartdom.Repository, itemdom.Repository, error) {
	cfg := c.Config

	// 1) Postgres
	if cfg.DatabaseURL != "" || cfg.DatabaseURLSecret != "" {
		dsn := cfg.DatabaseURL
		if dsn == "" {
			sm, err := secretmanager.NewClient(ctx, clientOpts...)
			if err != nil {
				return nil, nil, fmt.Errorf("di: secret manager client: %w", err)
			}
			c.cleanupFn = append(c.cleanupFn, func() { _ = sm.Close() })

			dsn, err = resolveSecret(ctx, sm, cfg.GCPProjectID, cfg.DatabaseURLSecret)
			if err != nil {
				return nil, nil, err
			}
		}

		db, err := sql.Open("postgres", dsn)
		if err != nil {
			return nil, nil, fmt.Errorf("di: open db: %w", err)
		}
		c.db = db

		if err := db.PingContext(ctx); err != nil {
			log.Printf("[di] WARN: db ping failed: %v", err)
		}

		log.Printf("[di] substrate: postgres")
		return pgrepo.NewCartRepositoryPG(db), pgrepo.NewCartItemRepositoryPG(db), nil
	}

	// 2) Firestore
	if prj := strings.TrimSpace(cfg.FirestoreProjectID); prj != "" {
		fs, err := firestore.NewClient(ctx, prj, clientOpts...)
		if err != nil {
			return nil, nil, fmt.Errorf("di: firestore client: %w", err)
		}
		c.Firestore = fs
		c.cleanupFn = append(c.cleanupFn, func() { _ = fs.Close() })

		log.Printf("[di] substrate: firestore project=%s", prj)
		return fsrepo.NewCartRepositoryFS(fs), fsrepo.NewCartItemRepositoryFS(fs), nil
	}

	// 3) In-memory fallback
	log.Printf("[di] WARN: no substrate configured; using in-memory store (data is not persisted)")
	return memrepo.NewCartRepositoryMem(), memrepo.NewCartItemRepositoryMem(), nil
}

// RouterDeps returns the dependency bundle for httpin.NewRouter.
func (c *Container) RouterDeps() httpin.RouterDeps {
	return httpin.RouterDeps{
		CartUC:       c.CartUC,
		CartItemUC:   c.CartItemUC,
		FirebaseAuth: c.FirebaseAuth,
	}
}

// Close releases owned resources.
func (c *Container) Close() {
	if c.db != nil {
		_ = c.db.Close()
	}
	for _, fn := range c.cleanupFn {
		fn()
	}
}
