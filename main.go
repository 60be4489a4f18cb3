package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"Linea/internal/auth"
	batch "Linea/internal/calc/batch"
	capacitance "Linea/internal/calc/capacitance"
	importer "Linea/internal/calc/importer"
	inductance "Linea/internal/calc/inductance"
	line "Linea/internal/calc/line"
	report "Linea/internal/calc/report"
	resistance "Linea/internal/calc/resistance"
	profile "Linea/internal/profile"
	repo "Linea/internal/repo"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, db *sql.DB) {
	userRepo := repo.NewPostgresUserDB(db)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using process environment")
	}
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Authenv{JWTkey: []byte(tokenKey), Repo: userRepo}
	profileH := &profile.ProfileHandler{Repo: userRepo}

	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	secureApi.HandleFunc("/profile", profileH.GetProfile).Methods("GET")
	secureApi.HandleFunc("/profile", profileH.UpdateProfile).Methods("PATCH", "PUT")
	secureApi.HandleFunc("/profile/{id:[0-9]+}", profileH.GetProfile).Methods("GET")
	secureApi.HandleFunc("/pro/request", profileH.RequestPro).Methods("POST")

	resistanceH := &resistance.Handler{}
	inductanceH := &inductance.Handler{}
	capacitanceH := &capacitance.Handler{}
	lineH := &line.Handler{}
	batchH := &batch.Handler{}
	importerH := &importer.Handler{}
	reportH := &report.Handler{}

	secureApi.HandleFunc("/tools/resistance/calc", resistanceH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/inductance/calc", inductanceH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/capacitance/calc", capacitanceH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/line/calc", lineH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/line/export/csv", lineH.ExportCSV).Methods("POST")

	proApi := secureApi.PathPrefix("/tools-pro").Subrouter()
	proApi.Use(authEnv.ProMiddleware)

	proApi.HandleFunc("/line/batch", batchH.Lines).Methods("POST")
	proApi.HandleFunc("/line/import", importerH.Lines).Methods("POST")
	proApi.HandleFunc("/line/export/xlsx", lineH.ExportXLSX).Methods("POST")
	proApi.HandleFunc("/report/pdf", reportH.Generate).Methods("POST")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db := auth.InitDB()
	defer db.Close()
	mux := mux.NewRouter()
	HandleList(mux, db)
	handler := CORS(mux)

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":443"
	}
	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	log.Println("Starting server on", addr)
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServeTLS("server.crt", "server.key"); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received, closing active connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
