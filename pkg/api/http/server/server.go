package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gorilla/mux"

	"github.com/tagalong/ramp/pkg/api/http/common"
)

const (
	wait = 30 * time.Second

	serviceName = "tag-along-api"
)

type Server struct {
	addr       string
	static     string
	tlsCert    string
	tlsKey     string
	debug      bool
	exit       chan os.Signal
	httpserver *http.Server
}

func NewServer(addr, static, tlsCert, tlsKey string, debug bool) *Server {
	return &Server{
		addr:    addr,
		static:  static,
		tlsCert: tlsCert,
		tlsKey:  tlsKey,
		debug:   debug,
		exit:    make(chan os.Signal, 1),
	}
}

func (s *Server) ServeForever() error {
	router := mux.NewRouter()
	router.HandleFunc(common.API_HEALTH, s.Health).Methods(http.MethodGet)

	if s.static != "" {
		log.Println("Serving static files from", s.static)
		router.PathPrefix(common.STATIC_PREFIX).Handler(
			http.StripPrefix(common.STATIC_PREFIX, http.FileServer(http.Dir(s.static))),
		)
	}

	if s.debug {
		log.Println("Debug enabled, adding per-request logging middleware")
		router.Use(loggingMiddleware)
	}

	s.httpserver = &http.Server{
		Handler:      router,
		Addr:         s.addr,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	go func() {
		log.Println("Listening on", s.httpserver.Addr)
		var err error
		if s.tlsCert != "" && s.tlsKey != "" {
			err = s.httpserver.ListenAndServeTLS(s.tlsCert, s.tlsKey)
		} else {
			err = s.httpserver.ListenAndServe()
		}
		if err != nil {
			log.Println(err)
		}
	}()

	signal.Notify(s.exit, os.Interrupt)
	defer s.Close()
	<-s.exit

	ctx, cancel := context.WithTimeout(context.Background(), wait)
	defer cancel()
	return s.httpserver.Shutdown(ctx)
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(&common.HealthResponse{Status: "ok", Service: serviceName})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) Close() error {
	s.exit <- os.Interrupt
	return nil
}
