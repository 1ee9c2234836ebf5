package account_http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"social-feed-service/internal/logger"
	"social-feed-service/internal/metrics"
	account_service "social-feed-service/internal/service/account"
)

var validate = validator.New()

type AccountHTTPService struct {
	accountService  account_service.Service
	log             *logger.Logger
	registerHandler *RegisterHandler
	loginHandler    *LoginHandler
}

func NewAccountHTTPService(accountService account_service.Service, log *logger.Logger, provider metrics.MetricsProvider) *AccountHTTPService {
	return &AccountHTTPService{
		accountService:  accountService,
		log:             log,
		registerHandler: NewRegisterHandler(accountService, validate, log, provider),
		loginHandler:    NewLoginHandler(accountService, validate, log, provider),
	}
}

func (s *AccountHTTPService) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/register", s.registerHandler.Register).Methods("POST")
	router.HandleFunc("/login", s.loginHandler.Login).Methods("POST")
}
