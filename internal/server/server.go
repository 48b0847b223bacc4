// Пакет server содержит в себе роутер сервиса и его hendler-ы: статические страницы и два варианта перенаправления.
package server

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Dorrrke/open-redirect/internal/config"
	"github.com/Dorrrke/open-redirect/internal/logger"
	"github.com/Dorrrke/open-redirect/internal/pages"
)

// RedirectParam - имя query параметра с адресом перенаправления.
const RedirectParam = "redirect_url"

//go:generate mockgen -destination=../../mocks/mock_validator.go -package=mock_server github.com/Dorrrke/open-redirect/internal/server Validator

// Validator - проверка адреса перенаправления.
// Resolve возвращает адрес, который безопасно отдать в заголовке Location.
type Validator interface {
	Resolve(target string) string
}

// структура сервера, с данными о конфиге и валидаторе адресов перенаправления.
type Server struct {
	Config    *config.AppConfig
	validator Validator
}

// New - метод создание экземпляра типа Server.
func New(cfg *config.AppConfig, validator Validator) *Server {
	server := Server{
		Config:    cfg,
		validator: validator,
	}
	return &server
}

// Router - таблица маршрутов сервиса.
// Неизвестный путь, как и известный путь с методом отличным от GET, возвращает 404 (StatusNotFound).
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(logger.WithRequestID)
	r.Use(logger.WithLogging)
	r.Use(GzipMiddleware)

	r.NotFound(s.NotFoundHandler)
	r.MethodNotAllowed(s.NotFoundHandler)

	r.Get("/login", s.LoginPageHandler)
	r.Get("/phishing-site", s.PhishingPageHandler)
	r.Get("/home", s.HomePageHandler)
	r.Get("/vulnerable_redirect", s.VulnerableRedirectHandler)
	r.Get("/secure_redirect", s.SecureRedirectHandler)
	return r
}

// Run - запуск http сервера.
// Ошибка занятия адреса возвращается сразу. После отмены ctx сервер завершает
// обработку текущих запросов в пределах Config.ShutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.Config.ServerAddress.String())
	if err != nil {
		return errors.Wrap(err, "listen")
	}
	return s.Serve(ctx, ln)
}

// Serve - обработка запросов на уже открытом listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "serve")
	case <-ctx.Done():
	}

	logger.Log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.Config.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutdown")
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "serve")
	}
	return nil
}

// LoginPageHandler - хендлер страницы входа.
func (s *Server) LoginPageHandler(res http.ResponseWriter, req *http.Request) {
	writeHTML(res, pages.Login)
}

// PhishingPageHandler - хендлер поддельной страницы, на которую ведет атака через открытый редирект.
func (s *Server) PhishingPageHandler(res http.ResponseWriter, req *http.Request) {
	writeHTML(res, pages.Phishing)
}

// HomePageHandler - хендлер домашней страницы.
func (s *Server) HomePageHandler(res http.ResponseWriter, req *http.Request) {
	writeHTML(res, pages.Home)
}

// VulnerableRedirectHandler - УЯЗВИМЫЙ хендлер перенаправления.
// Значение параметра redirect_url без какой-либо проверки записывается в заголовок Location
// и возвращается со статусом 302 (StatusFound). Так выглядит открытый редирект.
// Если параметра нет или он передан несколько раз, возвращается 400 (StatusBadRequest).
func (s *Server) VulnerableRedirectHandler(res http.ResponseWriter, req *http.Request) {
	target, err := redirectTarget(req.URL.RawQuery)
	if err != nil {
		logger.Log.Debug("cannot read redirect target", zap.Error(err))
		writeError(res, err)
		return
	}
	// http.Redirect переписывает относительные адреса, поэтому заголовок выставляется напрямую.
	res.Header().Set("Location", target)
	res.WriteHeader(http.StatusFound)
}

// SecureRedirectHandler - безопасный хендлер перенаправления.
// Значение параметра redirect_url проверяется валидатором: адрес из списка разрешенных
// возвращается как есть, любой другой заменяется адресом по умолчанию. Статус ответа 302 (StatusFound).
// Если параметра нет или он передан несколько раз, возвращается 400 (StatusBadRequest).
func (s *Server) SecureRedirectHandler(res http.ResponseWriter, req *http.Request) {
	target, err := redirectTarget(req.URL.RawQuery)
	if err != nil {
		logger.Log.Debug("cannot read redirect target", zap.Error(err))
		writeError(res, err)
		return
	}
	location := s.validator.Resolve(target)
	if location != target {
		logger.Log.Info("Redirect target rejected",
			zap.String("target", target),
			zap.String("location", location))
	}
	res.Header().Set("Location", location)
	res.WriteHeader(http.StatusFound)
}

// NotFoundHandler - хендлер для неизвестных маршрутов.
func (s *Server) NotFoundHandler(res http.ResponseWriter, req *http.Request) {
	writeError(res, errors.Wrapf(ErrNotFound, "%s %s", req.Method, req.URL.Path))
}

func writeHTML(res http.ResponseWriter, body string) {
	res.Header().Set("Content-Type", "text/html")
	res.WriteHeader(http.StatusOK)
	if _, err := res.Write([]byte(body)); err != nil {
		logger.Log.Debug("error writing page", zap.Error(err))
	}
}
