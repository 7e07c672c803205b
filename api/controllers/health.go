package controllers

import (
	"net/http"

	"github.com/watchloghq/watchlog/api/responses"
	"github.com/watchloghq/watchlog/pkg/config"
	"github.com/watchloghq/watchlog/pkg/db"
	pkgerrors "github.com/watchloghq/watchlog/pkg/errors"
	"github.com/watchloghq/watchlog/pkg/logger"
)

type healthResponse struct {
	Status string `json:"status"`
	Env    string `json:"env"`
}

// HealthLive reports process liveness. It never touches downstream
// dependencies.
func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteJSON(w, http.StatusOK, healthResponse{
			Status: "ok",
			Env:    cfg.App.Env,
		})
	}
}

// HealthReady reports readiness by pinging the datasource.
func HealthReady(cfg *config.Config, logg *logger.Logger, pinger db.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if pinger == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeDependency, "datasource not configured"))
			return
		}
		if err := pinger.Ping(r.Context()); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "datasource unreachable"))
			return
		}
		responses.WriteJSON(w, http.StatusOK, healthResponse{
			Status: "ok",
			Env:    cfg.App.Env,
		})
	}
}
