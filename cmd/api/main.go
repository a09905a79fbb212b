package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "wayfarer-backend/internal/adapter/http"
	appmw "wayfarer-backend/internal/adapter/middleware"
	"wayfarer-backend/internal/adapter/repository/mysql"
	"wayfarer-backend/internal/authz"
	"wayfarer-backend/internal/config"
	"wayfarer-backend/internal/infrastructure/cache"
	"wayfarer-backend/internal/infrastructure/db"
	"wayfarer-backend/internal/infrastructure/mail"
	commentUC "wayfarer-backend/internal/usecase/comment"
	"wayfarer-backend/internal/usecase/notification"
	requestUC "wayfarer-backend/internal/usecase/request"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatal(err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	users := mysql.NewUserRepository(gdb)
	requests := mysql.NewRequestRepository(gdb)
	comments := mysql.NewCommentRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	policy := authz.NewPolicy(cfg.AdminRoles)

	dispatchers := notification.Fanout{notification.LogDispatcher{}}
	if cfg.MailEnabled() {
		dispatchers = append(dispatchers, mail.NewDispatcher(mail.Config{
			Host: cfg.SMTPHost,
			Port: cfg.SMTPPort,
			User: cfg.SMTPUser,
			Pass: cfg.SMTPPass,
			From: cfg.AdminEmail,
		}))
	}

	reqUC := requestUC.NewUsecase(users, requests, uow, policy, dispatchers, cfg.AppBaseURL)
	comUC := commentUC.NewUsecase(comments, requests, uow, dispatchers, cfg.AppBaseURL, cfg.CommentMaxLen)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger(), echomw.Recover())

	httpadp.RegisterRoutes(e,
		httpadp.NewHandler(),
		httpadp.NewRequestHandler(reqUC),
		httpadp.NewCommentHandler(comUC),
		appmw.Auth(cfg.JWTSecret),
		appmw.RequireAdmin(policy),
		appmw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second),
	)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
