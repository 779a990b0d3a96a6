// ========================================
// Dependency container
// ========================================
// Wires the application in order: config, infrastructure, repositories,
// services, handlers. The selected content backend decides whether a
// Postgres pool is opened at all.
package container

import (
	"context"
	"fmt"
	"time"

	"paintpro-backend/internal/blogstore"
	"paintpro-backend/internal/config"
	authhandler "paintpro-backend/internal/domains/auth/handler"
	"paintpro-backend/internal/domains/blog"
	bloghandler "paintpro-backend/internal/domains/blog/handler"
	blogrepo "paintpro-backend/internal/domains/blog/repository"
	blogservice "paintpro-backend/internal/domains/blog/service"
	"paintpro-backend/internal/domains/clients"
	clientshandler "paintpro-backend/internal/domains/clients/handler"
	clientsrepo "paintpro-backend/internal/domains/clients/repository"
	clientsservice "paintpro-backend/internal/domains/clients/service"
	"paintpro-backend/internal/domains/content"
	contenthandler "paintpro-backend/internal/domains/content/handler"
	contentrepo "paintpro-backend/internal/domains/content/repository"
	contentservice "paintpro-backend/internal/domains/content/service"
	"paintpro-backend/internal/domains/projects"
	projectshandler "paintpro-backend/internal/domains/projects/handler"
	projectsrepo "paintpro-backend/internal/domains/projects/repository"
	projectsservice "paintpro-backend/internal/domains/projects/service"
	"paintpro-backend/internal/domains/services"
	serviceshandler "paintpro-backend/internal/domains/services/handler"
	servicesrepo "paintpro-backend/internal/domains/services/repository"
	servicesservice "paintpro-backend/internal/domains/services/service"
	"paintpro-backend/internal/domains/upload"
	uploadhandler "paintpro-backend/internal/domains/upload/handler"
	uploadservice "paintpro-backend/internal/domains/upload/service"
	"paintpro-backend/internal/domains/video"
	videohandler "paintpro-backend/internal/domains/video/handler"
	videorepo "paintpro-backend/internal/domains/video/repository"
	videoservice "paintpro-backend/internal/domains/video/service"
	infracache "paintpro-backend/internal/infrastructure/cache"
	infradb "paintpro-backend/internal/infrastructure/database"
	infrastorage "paintpro-backend/internal/infrastructure/storage"
	webhandler "paintpro-backend/internal/web/handler"
	"paintpro-backend/pkg/cache"
	"paintpro-backend/pkg/jwt"
	"paintpro-backend/pkg/logger"
)

type Repositories struct {
	Content  content.Repository
	Services services.Repository
	Projects projects.Repository
	Clients  clients.Repository
	Blog     blog.Repository
	Video    video.Repository
}

type Services struct {
	Content  content.Service
	Services services.Service
	Projects projects.Service
	Clients  clients.Service
	Blog     blog.Service
	Video    video.Service
}

type Handlers struct {
	Content  *contenthandler.ContentHandler
	Services *serviceshandler.ServicesHandler
	Projects *projectshandler.ProjectsHandler
	Clients  *clientshandler.ClientsHandler
	Blog     *bloghandler.BlogHandler
	Video    *videohandler.VideoHandler
	Upload   *uploadhandler.UploadHandler
	Auth     *authhandler.AuthHandler
	Pages    *webhandler.PageHandler
}

type Container struct {
	Config *config.Config

	DB    *infradb.PostgresDB
	Cache *infracache.RedisCache
	MinIO *infrastorage.MinIOStorage

	JWTManager *jwt.Manager
	BlogStore  *blogstore.Store

	Repositories *Repositories
	Services     *Services
	Handlers     *Handlers
}

func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	if err := c.initInfrastructure(ctx); err != nil {
		return nil, err
	}
	c.initRepositories()
	c.initServices()
	c.initHandlers()

	return c, nil
}

func (c *Container) initInfrastructure(ctx context.Context) error {
	if c.Config.Content.Backend == config.BackendPostgres {
		db := infradb.NewPostgresDB(c.Config.Database)
		if err := db.Connect(ctx); err != nil {
			return fmt.Errorf("database init failed: %w", err)
		}
		c.DB = db
	}

	// Redis is an optimization, not a dependency: a failed connection
	// downgrades reads to the backing store.
	if c.Config.Redis.Enabled {
		rc := infracache.NewRedisCache(c.Config.Redis.Host, c.Config.Redis.Password, c.Config.Redis.DB)
		if err := rc.Connect(ctx); err != nil {
			logger.Warn("redis unavailable, continuing without cache", map[string]interface{}{
				"host": c.Config.Redis.Host,
			})
		} else {
			c.Cache = rc
		}
	}

	// Same for MinIO: without it the upload endpoint reports storage
	// unavailable but everything else works.
	minioStorage, err := infrastorage.NewMinIOStorage(c.Config.MinIO)
	if err != nil {
		logger.Warn("minio unavailable, uploads disabled", map[string]interface{}{
			"endpoint": c.Config.MinIO.Endpoint,
		})
	} else {
		c.MinIO = minioStorage
	}

	c.JWTManager = jwt.NewManager(
		c.Config.Auth.JWTSecret,
		time.Duration(c.Config.Auth.TokenExpiryHours)*time.Hour,
	)

	c.BlogStore = blogstore.NewStore(blogstore.NewFileStorage(c.Config.Content.DataDir))
	if err := c.BlogStore.Hydrate(); err != nil {
		return fmt.Errorf("blog store init failed: %w", err)
	}

	return nil
}

func (c *Container) initRepositories() {
	repos := &Repositories{}

	if c.Config.Content.Backend == config.BackendPostgres {
		var contentCache cache.Cache
		if c.Cache != nil {
			contentCache = c.Cache
		}
		repos.Content = contentrepo.NewPostgresRepository(c.DB.Pool, contentCache)
		repos.Services = servicesrepo.NewPostgresRepository(c.DB.Pool)
		repos.Projects = projectsrepo.NewPostgresRepository(c.DB.Pool)
		repos.Clients = clientsrepo.NewPostgresRepository(c.DB.Pool)
		repos.Blog = blogrepo.NewPostgresRepository(c.DB.Pool)
		repos.Video = videorepo.NewPostgresRepository(c.DB.Pool)
	} else {
		dataDir := c.Config.Content.DataDir
		repos.Content = contentrepo.NewFileRepository(dataDir)
		repos.Services = servicesrepo.NewFileRepository(dataDir)
		repos.Projects = projectsrepo.NewFileRepository(dataDir)
		repos.Clients = clientsrepo.NewFileRepository(dataDir)
		repos.Blog = blogrepo.NewFileRepository(dataDir)
		repos.Video = videorepo.NewFileRepository(dataDir)
	}

	c.Repositories = repos
}

func (c *Container) initServices() {
	c.Services = &Services{
		Content:  contentservice.NewContentService(c.Repositories.Content),
		Services: servicesservice.NewServicesService(c.Repositories.Services),
		Projects: projectsservice.NewProjectsService(c.Repositories.Projects),
		Clients:  clientsservice.NewClientsService(c.Repositories.Clients),
		Blog:     blogservice.NewBlogService(c.Repositories.Blog),
		Video:    videoservice.NewVideoService(c.Repositories.Video),
	}
}

func (c *Container) initHandlers() {
	uploader := uploadservice.NewUploadService(uploaderOrNil(c.MinIO))

	c.Handlers = &Handlers{
		Content:  contenthandler.NewContentHandler(c.Services.Content),
		Services: serviceshandler.NewServicesHandler(c.Services.Services),
		Projects: projectshandler.NewProjectsHandler(c.Services.Projects),
		Clients:  clientshandler.NewClientsHandler(c.Services.Clients),
		Blog:     bloghandler.NewBlogHandler(c.Services.Blog),
		Video:    videohandler.NewVideoHandler(c.Services.Video),
		Upload:   uploadhandler.NewUploadHandler(uploader),
		Auth:     authhandler.NewAuthHandler(c.Config.Auth, c.JWTManager),
		Pages: webhandler.NewPageHandler(
			c.Services.Content,
			c.Services.Services,
			c.Services.Projects,
			c.Services.Clients,
			c.BlogStore,
		),
	}
}

// uploaderOrNil avoids a typed-nil interface when MinIO is down.
func uploaderOrNil(s *infrastorage.MinIOStorage) upload.Uploader {
	if s == nil {
		return nil
	}
	return s
}

// Cleanup releases infrastructure connections in reverse init order.
func (c *Container) Cleanup() {
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			logger.Error("failed to close redis connection", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
