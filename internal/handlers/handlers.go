// Package handlers is the HTTP boundary of the sudoku service. Handlers
// decode query DTOs, call into the game session layer and marshal state
// DTOs back; no game rules live here.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

func sendJSON(w http.ResponseWriter, v any) (int, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return 0, err
	}
	w.Header().Add("Content-Type", "application/json")
	return w.Write(payload)
}

func sendJSONOrLog(w http.ResponseWriter, logger *logrus.Logger, v any) {
	if _, err := sendJSON(w, v); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		logger.WithFields(logrus.Fields{
			"response": v,
			"error":    err,
		}).Error("unable to send response")
	}
}

func wrapError(err error) map[string]string {
	return map[string]string{
		"error": err.Error(),
	}
}
