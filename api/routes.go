package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/AjayPieris/wallet-server/internal/handlers/v1/status"
	"github.com/AjayPieris/wallet-server/internal/handlers/v1/transaction"
	"github.com/AjayPieris/wallet-server/internal/logging"
	"github.com/AjayPieris/wallet-server/internal/operator"
	"github.com/AjayPieris/wallet-server/internal/ratelimit"
	"github.com/AjayPieris/wallet-server/internal/service"
)

// ErrorResponse is the body of every handler failure: a single error string,
// which is what the mobile client parses.
type ErrorResponse struct {
	status  int
	Message string `json:"error" doc:"Description of the failure"`
}

func (e *ErrorResponse) Error() string {
	return e.Message
}

func (e *ErrorResponse) GetStatus() int {
	return e.status
}

func init() {
	huma.NewError = func(status int, message string, _ ...error) huma.StatusError {
		return &ErrorResponse{status: status, Message: message}
	}
}

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Service  *service.Service
	Operator *operator.OperatorDelegator
	Limiter  ratelimit.Limiter
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler()
	mux.HandleFunc("/health", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	humaAPI := humago.New(mux, huma.DefaultConfig("wallet-server", "1.0.0"))
	humaAPI.UseMiddleware(logging.Middleware(r.Logger))

	transaction.NewCreateTransactionHandler(r.Operator).Register(humaAPI)
	transaction.NewGetSummaryHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewDeleteTransactionHandler(r.Operator).Register(humaAPI)

	// the admission gate wraps the whole mux: no request reaches routing
	// without passing the quota check
	gated := ratelimit.Middleware(r.Limiter, r.Logger)(mux)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           gated,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
