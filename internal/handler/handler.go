package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/crewplan-dev/schedule-board/backend/internal/config"
	"github.com/crewplan-dev/schedule-board/backend/internal/domain"
	"github.com/crewplan-dev/schedule-board/backend/internal/repository"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	zh := zh.New()
	uni := ut.New(zh, zh)
	trans, _ := uni.GetTranslator("zh")
	if err := zh_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// 认证相关
	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Route("/reset-password", func(r chi.Router) {
			r.Post("/require", h.RequireResetPassword)
			r.Post("/confirm", h.ConfirmResetPassword)
		})
	})

	// 以下 API 必须要在登录后才允许调用
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Route("/my-info", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Get("/", h.GetMyInfo)
			r.Patch("/password", h.UpdateMyPassword)
			r.Route("/update-email", func(r chi.Router) {
				r.Post("/require", h.RequireUpdateEmail)
				r.Post("/confirm", h.ConfirmUpdateEmail)
			})
		})

		r.Route("/users", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleOwner})).Post("/", h.CreateUser)
			r.Get("/", h.GetAllUserInfo) // 排班表上要显示所有同事的姓名，人人可读
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.userInfo)
				r.Get("/", h.GetUserInfo)
				r.With(h.preventOperateInitialOwner).With(h.RequiredRole([]domain.Role{domain.RoleOwner})).Patch("/", h.UpdateUser)
				r.With(h.preventOperateInitialOwner).With(h.RequiredRole([]domain.Role{domain.RoleOwner})).Delete("/", h.DeleteUser)
				r.With(h.RequiredRole([]domain.Role{domain.RoleOwner})).Patch("/password", h.UpdateUserPassword)
			})
		})

		r.Route("/positions", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleOwner, domain.RoleManager})).Post("/", h.CreatePosition)
			r.Get("/", h.GetAllPositions)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.position)
				r.Get("/", h.GetPosition)
				r.With(h.RequiredRole([]domain.Role{domain.RoleOwner, domain.RoleManager})).Patch("/", h.UpdatePosition)
				r.With(h.RequiredRole([]domain.Role{domain.RoleOwner, domain.RoleManager})).Delete("/", h.DeletePosition)
			})
		})

		r.Route("/schedules", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleOwner, domain.RoleManager})).Post("/", h.CreateSchedule)
			r.Get("/", h.GetAllSchedules)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.schedule)
				r.Get("/", h.GetSchedule)
				r.With(h.RequiredRole([]domain.Role{domain.RoleOwner, domain.RoleManager})).Patch("/", h.UpdateSchedule)
				r.With(h.RequiredRole([]domain.Role{domain.RoleOwner, domain.RoleManager})).Delete("/", h.DeleteSchedule)
				r.With(h.RequiredRole([]domain.Role{domain.RoleOwner, domain.RoleManager})).Post("/publish", h.PublishSchedule)
				r.Get("/labor-summary", h.GetLaborSummary)
				r.Get("/export", h.ExportSchedule)
				r.Route("/shifts", func(r chi.Router) {
					r.Get("/", h.GetScheduleShifts)
					r.With(h.RequiredRole([]domain.Role{domain.RoleOwner, domain.RoleManager})).With(h.preventEditPublishedSchedule).Post("/", h.CreateShift)
				})
			})
		})

		r.Route("/shifts/{id}", func(r chi.Router) {
			r.Use(h.shift)
			r.Use(h.RequiredRole([]domain.Role{domain.RoleOwner, domain.RoleManager}))
			r.Use(h.preventEditPublishedSchedule)
			r.Patch("/", h.UpdateShift)
			r.Delete("/", h.DeleteShift)
		})
	})
}
