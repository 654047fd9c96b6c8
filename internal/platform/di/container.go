// internal/platform/di/container.go
package di

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	_ "github.com/lib/pq"

	httpin "leaguehub/internal/adapters/in/http"
	dbrepo "leaguehub/internal/adapters/out/db"
	fsrepo "leaguehub/internal/adapters/out/firestore"
	"leaguehub/internal/adapters/out/mail"
	"leaguehub/internal/application/usecase"
	invdom "leaguehub/internal/domain/invitation"
	roledom "leaguehub/internal/domain/role"
	userdom "leaguehub/internal/domain/user"
)

// Container wires clients, repositories and usecases. Its purpose is to
// keep main.go thin: main builds it, asks for RouterDeps, and Closes it
// on shutdown.
type Container struct {
	Config  *Config
	Catalog *roledom.Catalog

	Firestore    *firestore.Client
	FirebaseAuth *fbauth.Client

	Users       userdom.Repository
	Invitations invdom.Repository

	Registration    *usecase.RegistrationService
	InvitationCmd   *usecase.InvitationCommandService
	InvitationQuery *usecase.InvitationQueryService
	UserAdmin       *usecase.UserAdminService

	db *sql.DB
}

// NewContainer initializes the runtime dependencies.
//
// Firestore is strict unless DATABASE_URL selects Postgres. Firebase
// Auth is strict (nothing behind /api works without it). SendGrid is
// best-effort: a missing key leaves the mailer sending nowhere, which
// the invitation flow already tolerates.
func NewContainer(ctx context.Context) (*Container, error) {
	cfg := LoadConfig()

	c := &Container{
		Config:  cfg,
		Catalog: roledom.NewCatalog(),
	}

	var clientOpts []option.ClientOption
	if cfg.GCPCredentialsFile != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(cfg.GCPCredentialsFile))
		log.Printf("[di] using credentials file for GCP clients")
	}

	// Firebase App/Auth (strict)
	if cfg.ProjectID == "" {
		return nil, errors.New("di: project id is empty (set PROJECT_ID or GOOGLE_CLOUD_PROJECT)")
	}
	fbApp, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("di: firebase.NewApp: %w", err)
	}
	authClient, err := fbApp.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("di: firebase auth client: %w", err)
	}
	c.FirebaseAuth = authClient

	// Repositories: Postgres when DATABASE_URL is set, Firestore otherwise.
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("di: open db: %w", err)
		}
		if pingErr := db.PingContext(ctx); pingErr != nil {
			log.Printf("[di] WARN: db ping failed: %v", pingErr)
		}
		c.db = db
		c.Users = dbrepo.NewUserRepositoryPG(db)
		c.Invitations = dbrepo.NewInvitationRepositoryPG(db)
		log.Printf("[di] repositories: postgres")
	} else {
		fsClient, err := firestore.NewClient(ctx, cfg.ProjectID, clientOpts...)
		if err != nil {
			return nil, fmt.Errorf("di: firestore.NewClient (project=%s): %w", cfg.ProjectID, err)
		}
		c.Firestore = fsClient
		c.Users = fsrepo.NewUserRepositoryFS(fsClient)
		c.Invitations = fsrepo.NewInvitationRepositoryFS(fsClient)
		log.Printf("[di] repositories: firestore project=%s", cfg.ProjectID)
	}

	// Invitation mail (best-effort)
	apiKey := resolveSendGridKey(ctx, cfg, clientOpts)
	if apiKey == "" {
		log.Printf("[di] WARN: sendgrid api key unresolved; invitation mail will fail and be logged")
	}
	mailer := mail.NewInvitationMailer(
		mail.NewSendGridClient(apiKey),
		cfg.FromAddress,
		cfg.AppBaseURL,
	)

	// Usecases
	c.Registration = usecase.NewRegistrationService(c.Users, c.Invitations, c.Catalog)
	c.InvitationCmd = usecase.NewInvitationCommandService(c.Invitations, c.Users, c.Catalog, mailer)
	c.InvitationQuery = usecase.NewInvitationQueryService(c.Invitations)
	c.UserAdmin = usecase.NewUserAdminService(c.Users, c.Catalog)

	return c, nil
}

// RouterDeps bundles what httpin.NewRouter needs.
func (c *Container) RouterDeps() httpin.RouterDeps {
	return httpin.RouterDeps{
		FirebaseAuth:    c.FirebaseAuth,
		UserRepo:        c.Users,
		Catalog:         c.Catalog,
		Registration:    c.Registration,
		InvitationCmd:   c.InvitationCmd,
		InvitationQuery: c.InvitationQuery,
		UserAdmin:       c.UserAdmin,
	}
}

// Close releases owned resources. Safe to call on a partially built
// container.
func (c *Container) Close() {
	if c.db != nil {
		_ = c.db.Close()
	}
	if c.Firestore != nil {
		_ = c.Firestore.Close()
	}
}

// resolveSendGridKey prefers the env key; otherwise reads the configured
// secret from Secret Manager. Returns "" when neither resolves.
func resolveSendGridKey(ctx context.Context, cfg *Config, clientOpts []option.ClientOption) string {
	if cfg.SendGridAPIKey != "" {
		return cfg.SendGridAPIKey
	}
	if cfg.ProjectID == "" || cfg.SendGridSecretName == "" {
		return ""
	}

	sm, err := secretmanager.NewClient(ctx, clientOpts...)
	if err != nil {
		log.Printf("[di] WARN: secretmanager.NewClient failed: %v", err)
		return ""
	}
	defer sm.Close()

	name := "projects/" + cfg.ProjectID + "/secrets/" + cfg.SendGridSecretName + "/versions/latest"
	resp, err := sm.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{Name: name})
	if err != nil {
		log.Printf("[di] WARN: AccessSecretVersion failed (%s): %v", name, err)
		return ""
	}
	if resp == nil || resp.Payload == nil {
		log.Printf("[di] WARN: empty secret payload (%s)", name)
		return ""
	}
	return string(resp.Payload.Data)
}
