package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/pantrybase/pantrygo/internal/auth"
)

const sessionTTL = 30 * 24 * time.Hour

// login mints a session token for a household member and installs it
// as the engine's identity
func (r *Router) login(w http.ResponseWriter, req *http.Request) {
	var body struct {
		Username string   `json:"username"`
		Groups   []string `json:"groups"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if body.Username == "" {
		respondError(w, http.StatusBadRequest, "Username required")
		return
	}

	user := &auth.User{ID: body.Username, Groups: body.Groups}
	token, err := auth.GenerateToken(user, r.cfg.JWTSecret, sessionTTL)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	r.session.SetToken(token)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"token":     token,
		"username":  user.ID,
		"powerUser": user.IsPowerUser(),
	})
}

// installSession accepts an externally issued token, for households
// that sign in through another identity provider
func (r *Router) installSession(w http.ResponseWriter, req *http.Request) {
	var body struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if body.Token == "" {
		respondError(w, http.StatusBadRequest, "Token required")
		return
	}

	// Reject tokens we cannot verify before adopting them
	user, err := auth.ParseUser(body.Token, r.cfg.JWTSecret)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	r.session.SetToken(body.Token)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"username":  user.ID,
		"powerUser": user.IsPowerUser(),
	})
}

// logout drops the session and clears the local replica
func (r *Router) logout(w http.ResponseWriter, req *http.Request) {
	r.session.SetToken("")
	r.store.SignOut()
	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Signed out",
	})
}
