package app

import "net/http"

type HealthcheckResponse struct {
	Status      string `json:"status"`
	Environment string `json:"environment"`
	Version     string `json:"version"`
}

func (app *Application) HealthcheckHandler(w http.ResponseWriter, r *http.Request) {
	resp := HealthcheckResponse{
		Status:      "available",
		Environment: app.config.Env,
		Version:     version,
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
