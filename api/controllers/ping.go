package controllers

import (
	"net/http"

	"github.com/JasonR4/london-outfast-sub003/api/responses"
)

func PublicPing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{"message": "pong"})
	}
}
