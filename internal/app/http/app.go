package httpapp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"lifestream/internal/lib/logger/sl"
	appmiddleware "lifestream/internal/middleware"
	"lifestream/internal/storage"
	httprouters "lifestream/internal/transport/http"
	"lifestream/internal/transport/http/dto"

	"github.com/arl/statsviz"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

type Server struct {
	m       *http.ServeMux
	log     *slog.Logger
	e       *echo.Echo
	routers *httprouters.Routers
	host    string
	port    string
}

func New(log *slog.Logger, sessionSecret, host, port string, routers *httprouters.Routers, renderer echo.Renderer) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer

	validate := validator.New()
	e.Validator = &CustomValidator{validator: validate}

	e.Use(appmiddleware.RequestID)
	e.Use(session.Middleware(sessions.NewCookieStore([]byte(sessionSecret))))
	e.Use(middleware.Recover())

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogRemoteIP: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request",
				slog.String("URI", v.URI),
				slog.Int("status", v.Status),
				slog.String("remote ip", v.RemoteIP),
				slog.String("request_id", appmiddleware.GetRequestID(c)),
			)

			return nil
		},
	}))

	e.Use(appmiddleware.PrometheusMetrics)

	e.HTTPErrorHandler = errorHandler(log)

	mux := http.NewServeMux()
	err := statsviz.Register(mux)
	if err != nil {
		log.Info("Statsviz start with error", slog.Any("error:", err.Error()))
	}

	return &Server{
		m:       mux,
		log:     log,
		e:       e,
		routers: routers,
		host:    host,
		port:    port,
	}
}

// errorHandler renders every failure as the shared error page. Not-found
// conditions keep their message; anything else is logged server side and
// shown as a generic 500.
func errorHandler(log *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := "Something went wrong"

		var httpErr *echo.HTTPError
		switch {
		case errors.As(err, &httpErr):
			status = httpErr.Code
			if msg, ok := httpErr.Message.(string); ok {
				message = msg
			}
		case errors.Is(err, storage.ErrNotFound),
			errors.Is(err, storage.ErrPostNotFound),
			errors.Is(err, storage.ErrPageNotFound):
			status = http.StatusNotFound
			message = "Not found"
		}

		if status >= http.StatusInternalServerError {
			message = "Something went wrong"
			log.Error("request failed",
				slog.String("URI", c.Request().RequestURI),
				slog.String("request_id", appmiddleware.GetRequestID(c)),
				sl.Err(err),
			)
		}

		if rerr := c.Render(status, "error.html", dto.ErrorView{Status: status, Message: message}); rerr != nil {
			_ = c.NoContent(status)
		}
	}
}

func (s *Server) MustRun() {
	const op = "http.Server.MustRun"

	s.log.Info(op, slog.String("Start", "server"))

	if err := s.Start(); err != nil {
		panic(err)
	}
}

func (s *Server) Start() error {
	const op = "http.Server.Start"

	if err := s.e.Start(fmt.Sprintf(":%s", s.port)); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("%s server stopped: %w", op, err)
	}

	return nil
}

func (s *Server) Stop() error {
	const op = "http.Server.Stop"

	optCtx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	s.log.Info("stopping", op, "http server")

	if err := s.e.Shutdown(optCtx); err != nil {
		return fmt.Errorf("%s could not shutdown server gracefuly: %w", op, err)
	}

	return nil
}

func (s *Server) BuildRouters() {
	s.e.GET("/", s.routers.Home)
	s.e.GET("/htmx/feed/", s.routers.FeedPartial)
	s.e.GET("/browse/", s.routers.Browse)
	s.e.GET("/category/:slug/", s.routers.CategoryFeed)
	s.e.GET("/tags/:slug/", s.routers.TagFeed)
	s.e.GET("/posts/:id/", s.routers.PostDetail)
	s.e.GET("/search/", s.routers.SearchPage)
	s.e.GET("/contact/", s.routers.ContactPage)
	s.e.POST("/contact/", s.routers.SubmitContact)

	s.e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	debug := s.e.Group("/debug")
	{
		debug.GET("/statsviz/", echo.WrapHandler(s.m))
		debug.GET("/statsviz/*", echo.WrapHandler(s.m))
	}

	// catch-all, static routes above win
	s.e.GET("/:slug/", s.routers.PageDetail)
}
