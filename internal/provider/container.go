package provider

import (
	"github.com/tikprofil/tikprofil-api/internal/authz"
	"github.com/tikprofil/tikprofil-api/internal/cache"
	"github.com/tikprofil/tikprofil-api/internal/config"
	"github.com/tikprofil/tikprofil-api/internal/logger"
	"github.com/tikprofil/tikprofil-api/internal/models"
	"github.com/tikprofil/tikprofil-api/internal/queue"
	"github.com/tikprofil/tikprofil-api/internal/repository"
	"github.com/tikprofil/tikprofil-api/internal/service"
)

// Container wires repositories and services once at startup.
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	BusinessRepo    repository.BusinessRepository
	SettingRepo     repository.BusinessSettingRepository
	StaffRepo       repository.StaffRepository
	CategoryRepo    repository.CategoryRepository
	ProductRepo     repository.ProductRepository
	DiningTableRepo repository.DiningTableRepository
	OrderRepo       repository.OrderRepository
	CouponRepo      repository.CouponRepository
	CouponUsageRepo repository.CouponUsageRepository

	// Services
	AuthzService        *authz.Service
	AuthService         *service.AuthService
	CaptchaService      *service.CaptchaService
	BusinessService     *service.BusinessService
	CategoryService     *service.CategoryService
	ProductService      *service.ProductService
	DiningTableService  *service.DiningTableService
	CouponService       *service.CouponService
	CouponAdminService  *service.CouponAdminService
	OrderService        *service.OrderService
	NotificationService *service.NotificationService
}

// NewContainer initializes the container.
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.BusinessRepo = repository.NewBusinessRepository(db)
	c.SettingRepo = repository.NewBusinessSettingRepository(db)
	c.StaffRepo = repository.NewStaffRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.DiningTableRepo = repository.NewDiningTableRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.CouponRepo = repository.NewCouponRepository(db)
	c.CouponUsageRepo = repository.NewCouponUsageRepository(db)
}

func (c *Container) initServices() {
	authzService, err := authz.NewService(models.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		panic(err)
	}
	c.AuthzService = authzService
	if err := c.AuthzService.BootstrapBuiltinRoles(); err != nil {
		logger.Errorw("provider_bootstrap_builtin_roles_failed", "error", err)
		panic(err)
	}

	c.AuthService = service.NewAuthService(c.Config, c.StaffRepo)
	c.CaptchaService = service.NewCaptchaService(c.Config.Captcha)
	c.BusinessService = service.NewBusinessService(c.BusinessRepo, c.SettingRepo, c.CategoryRepo, c.ProductRepo, c.CouponRepo)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo)
	c.ProductService = service.NewProductService(c.ProductRepo, c.CategoryRepo)
	c.DiningTableService = service.NewDiningTableService(c.DiningTableRepo)
	c.CouponService = service.NewCouponService(c.CouponRepo, c.CouponUsageRepo, c.OrderRepo)
	c.CouponAdminService = service.NewCouponAdminService(c.CouponRepo, c.CouponUsageRepo)
	c.OrderService = service.NewOrderService(
		c.OrderRepo,
		c.ProductRepo,
		c.DiningTableRepo,
		c.CouponRepo,
		c.CouponUsageRepo,
		c.BusinessRepo,
		c.SettingRepo,
		c.CouponService,
		c.QueueClient,
		c.Config.Order.CustomerCancelWindowMinutes,
	)
	c.NotificationService = service.NewNotificationService(c.OrderRepo, c.SettingRepo, c.Config.Notify)
}
