package server

import (
	"encoding/json"
	"net/http"

	"github.com/dmitryshur/agar-io-back/internal/engine"
	"github.com/dmitryshur/agar-io-back/internal/version"
	"github.com/dmitryshur/agar-io-back/pkg/logger"
)

type Server struct {
	World *engine.World
	Cfg   engine.Config
	Port  string
}

func New(world *engine.World, cfg engine.Config, port string) *Server {
	return &Server{
		World: world,
		Cfg:   cfg,
		Port:  port,
	}
}

// Run запускает HTTP сервер
func (s *Server) Run() error {
	mux := http.NewServeMux()

	mux.HandleFunc("/ws", enableCORS(s.handleWS))
	mux.HandleFunc("/health", enableCORS(s.handleHealth))
	mux.HandleFunc("/version", enableCORS(s.handleVersion))

	debugHandler := NewDebugHandler(s.World)
	debugHandler.RegisterRoutes(mux)

	logger.Log.Infof("🌍 Arena server running on :%s", s.Port)
	return http.ListenAndServe(":"+s.Port, mux)
}

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Разрешаем запросы с фронтенда
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		next(w, r)
	}
}

// handleWS обрабатывает подключение по WebSocket
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Error("Upgrade error:", err)
		return
	}

	client := NewClient(s.World, conn, s.Cfg)

	// Запускаем пампы
	go client.writePump()
	go client.readPump()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ok")); err != nil {
		logger.Log.WithError(err).Debug("health write failed")
	}
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(version.Info()); err != nil {
		logger.Log.WithError(err).Debug("version write failed")
	}
}
