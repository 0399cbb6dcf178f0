package web

import (
	"context"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/puribeach/booking/internal/catalog"
	"github.com/puribeach/booking/internal/checkout"
	"github.com/puribeach/booking/internal/logger"
	"github.com/puribeach/booking/internal/storage/memory"
)

type Server struct {
	srv      *http.Server
	router   *http.ServeMux
	l        *logger.Logger
	conf     Conf
	db       *memory.DB
	catalog  *catalog.Catalog
	checkout *checkout.Manager
}

type Conf struct {
	L                 *logger.Logger
	ServerLogger      *log.Logger
	Host              string
	Port              string
	ReadHeaderTimeout time.Duration
	LivenessEndpoint  string
	SessionCookie     string
}

func New(ctx context.Context, conf Conf, db *memory.DB, cat *catalog.Catalog, checkoutManager *checkout.Manager) (*Server, error) {
	mux := http.NewServeMux()

	//nolint:exhaustruct
	srv := &http.Server{
		Addr:              net.JoinHostPort(conf.Host, conf.Port),
		ReadHeaderTimeout: conf.ReadHeaderTimeout * time.Second, //nolint:durationcheck
		ErrorLog:          conf.ServerLogger,
		Handler:           mux,
		BaseContext: func(listener net.Listener) context.Context {
			return ctx
		},
	}

	server := &Server{
		srv:      srv,
		router:   mux,
		l:        conf.L,
		conf:     conf,
		db:       db,
		catalog:  cat,
		checkout: checkoutManager,
	}

	server.addRoutes(mux)

	return server, nil
}

func (s *Server) Srv() *http.Server {
	return s.srv
}
