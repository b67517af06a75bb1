package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"

	"jambanganBack/internal/models"
)

func secureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Frame-Options", "deny")
		next.ServeHTTP(w, r)
	})
}

func makeResponseJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

func (app *application) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		app.infoLog.Printf("%s - %s %s %s", r.RemoteAddr, r.Proto, r.Method, r.URL.RequestURI())
		next.ServeHTTP(w, r)
	})
}

func (app *application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")
				app.serverError(w, fmt.Errorf("%s", err))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (app *application) serverError(w http.ResponseWriter, err error) {
	app.errorLog.Output(2, fmt.Sprintf("%s\n%s", err, debug.Stack()))
	writeAuthError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

// JWTMiddleware verifies the session cookie and gates admin routes by the
// level claim. A missing or unparsable token fails closed; a revoked token
// id (logged-out session) is treated the same as an expired one.
func (app *application) JWTMiddleware(next http.Handler, requiredRole string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("token")
		if err != nil || cookie.Value == "" {
			writeAuthError(w, http.StatusUnauthorized, "Token is required, please provide a token")
			return
		}

		claims, err := app.tokenManager.Parse(cookie.Value)
		if err != nil {
			writeAuthError(w, http.StatusUnauthorized, "Token has expired or is invalid")
			return
		}

		if app.denylist != nil && claims.Id != "" {
			revoked, err := app.denylist.IsRevoked(r.Context(), claims.Id)
			if err != nil {
				// Redis being down must not lock every account out.
				app.errorLog.Printf("denylist check: %v", err)
			} else if revoked {
				writeAuthError(w, http.StatusUnauthorized, "Token has expired or is invalid")
				return
			}
		}

		if requiredRole == "admin" && claims.Level != models.LevelAdmin {
			writeAuthError(w, http.StatusForbidden, "Access denied. Admin privileges required")
			return
		}

		ctx := context.WithValue(r.Context(), "user_id", claims.UserID)
		ctx = context.WithValue(ctx, "username", claims.Name)
		ctx = context.WithValue(ctx, "level", claims.Level)
		ctx = context.WithValue(ctx, "claims", claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
