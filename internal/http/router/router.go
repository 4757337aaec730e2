package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"service-motorizado/internal/http/handlers"
	mw "service-motorizado/internal/http/middleware"
	"service-motorizado/internal/logx"
	"service-motorizado/internal/metrics"
)

// requestTimeout bounds a request; it must exceed the longest latency floor.
const requestTimeout = 5 * time.Second

// Deps groups everything the router wires into routes.
type Deps struct {
	Logger      logx.Logger
	Base        *handlers.Handlers
	Assignments *handlers.AssignmentHandler
	Deliveries  *handlers.DeliveryHandler
	Session     *handlers.SessionHandler
	Auth        mw.Authenticator
	Metrics     *metrics.HTTP
	Gatherer    prometheus.Gatherer
}

// New constructs a chi-based http.Handler with base middleware and routes.
func New(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if d.Metrics != nil {
		r.Use(mw.Observability(d.Metrics, d.Logger))
	}
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/ping", d.Base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(d.Base.HealthcheckHead))
	if d.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Post("/session", d.Session.SignIn)

	r.Group(func(r chi.Router) {
		r.Use(mw.Auth(d.Auth, d.Logger))

		r.Get("/session", d.Session.Current)
		r.Delete("/session", d.Session.SignOut)
		r.Patch("/session/availability", d.Session.UpdateAvailability)

		r.Route("/assignments", func(r chi.Router) {
			r.Get("/", d.Assignments.List)
			r.Get("/{assignmentID}", d.Assignments.Get)
			r.Post("/{assignmentID}/accept", d.Assignments.Accept)
			r.Post("/{assignmentID}/reject", d.Assignments.Reject)
			r.Post("/{assignmentID}/complete", d.Assignments.Complete)
		})
		r.Patch("/orders/{orderID}/status", d.Assignments.AdvanceOrderStatus)

		r.Get("/deliveries", d.Deliveries.History)
		r.Get("/statistics/today", d.Deliveries.Today)
	})

	r.NotFound(d.Base.NotFound)
	r.MethodNotAllowed(d.Base.MethodNotAllowed)

	return r
}
