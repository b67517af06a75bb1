package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) JWTMiddlewareWithRole(requiredRole string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return app.JWTMiddleware(next, requiredRole)
	}
}

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole("user"))
	adminAuthMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole("admin"))

	mux := pat.New()

	// Auth
	mux.Post("/login", standardMiddleware.ThenFunc(app.userHandler.Login))
	mux.Get("/logout", authMiddleware.ThenFunc(app.userHandler.Logout))

	// Accounts
	mux.Get("/users", adminAuthMiddleware.ThenFunc(app.userHandler.GetUsers))
	mux.Post("/users", adminAuthMiddleware.ThenFunc(app.userHandler.CreateUser))
	mux.Put("/users/:id", adminAuthMiddleware.ThenFunc(app.userHandler.UpdateUser))
	mux.Del("/users/:id", adminAuthMiddleware.ThenFunc(app.userHandler.DeleteUser))
	mux.Get("/users/:userId/hasposts", adminAuthMiddleware.ThenFunc(app.userHandler.HasPosts))

	// Complaints. The literal segments go first so pat never swallows
	// them with a parameter route.
	mux.Post("/complaints", authMiddleware.ThenFunc(app.complaintHandler.CreateComplaint))
	mux.Get("/complaints/user/:userId", authMiddleware.ThenFunc(app.complaintHandler.GetComplaintsByUser))
	mux.Get("/complaints/:complaintId/responses", authMiddleware.ThenFunc(app.responseHandler.GetResponsesByComplaint))
	mux.Post("/complaints/:complaintId/responses", authMiddleware.ThenFunc(app.responseHandler.CreateResponse))
	mux.Get("/complaints/:id", authMiddleware.ThenFunc(app.complaintHandler.GetComplaintByID))
	mux.Get("/complaints", adminAuthMiddleware.ThenFunc(app.complaintHandler.GetAllComplaints))
	mux.Get("/complaint_responses", adminAuthMiddleware.ThenFunc(app.responseHandler.GetAllResponses))

	// Report counters
	mux.Get("/reportData/:iduser", authMiddleware.ThenFunc(app.complaintHandler.GetReportDataForUser))
	mux.Get("/reportData", adminAuthMiddleware.ThenFunc(app.complaintHandler.GetReportData))

	// Maps
	mux.Get("/maps/all", standardMiddleware.ThenFunc(app.mapHandler.GetMapsAll))
	mux.Get("/maps/user/:id", authMiddleware.ThenFunc(app.mapHandler.GetMapsByUser))
	mux.Get("/maps", standardMiddleware.ThenFunc(app.mapHandler.GetMaps))

	// UMKM listings
	mux.Post("/posts", authMiddleware.ThenFunc(app.umkmHandler.CreatePost))
	mux.Get("/umkm/posts", authMiddleware.ThenFunc(app.umkmHandler.GetAllPosts))
	mux.Put("/umkm/posts/:id", adminAuthMiddleware.ThenFunc(app.umkmHandler.UpdatePost))
	mux.Add("PATCH", "/umkm/posts/:id/approve", adminAuthMiddleware.ThenFunc(app.umkmHandler.ApprovePost))
	mux.Add("PATCH", "/umkm/posts/:id/take-down", adminAuthMiddleware.ThenFunc(app.umkmHandler.TakeDownPost))
	mux.Get("/umkm/:id", standardMiddleware.ThenFunc(app.umkmHandler.GetPostByID))
	mux.Del("/umkm/:id", adminAuthMiddleware.ThenFunc(app.umkmHandler.DeletePost))

	// Public storefront
	mux.Get("/public/posts/:postId", standardMiddleware.ThenFunc(app.umkmHandler.GetApprovedPostByID))
	mux.Get("/public/posts", standardMiddleware.ThenFunc(app.umkmHandler.GetApprovedPosts))

	// Device push tokens
	mux.Post("/notify_tokens", authMiddleware.ThenFunc(app.notifyHandler.RegisterToken))
	mux.Del("/notify_tokens/:token", authMiddleware.ThenFunc(app.notifyHandler.RemoveToken))

	// Live feed
	mux.Get("/ws", authMiddleware.ThenFunc(app.LiveFeedHandler))

	// Locally stored uploads
	mux.Get("/uploads/:filename", standardMiddleware.ThenFunc(app.uploadHandler.ServeFile))

	// Who-am-I; registered last so every other GET wins first.
	mux.Get("/", authMiddleware.ThenFunc(app.userHandler.Me))

	return standardMiddleware.Then(mux)
}
