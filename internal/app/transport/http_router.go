package transport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/ijalalfrz/event-trip-search-service/internal/app/config"
	"github.com/ijalalfrz/event-trip-search-service/internal/app/dto"
	"github.com/ijalalfrz/event-trip-search-service/internal/app/endpoints"
	httptransport "github.com/ijalalfrz/event-trip-search-service/internal/pkg/transport/http"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MakeHTTPRouter builds the HTTP router with all the service endpoints.
func MakeHTTPRouter(
	cfg *config.Config,
	endpts endpoints.Endpoints,
) *chi.Mux {
	// Initialize Router
	router := chi.NewRouter()
	router.Use(httptransport.Instrument())

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api/v1", func(router chi.Router) {
		router.Use(
			httptransport.RequestID(),
			httptransport.CORSMiddleware(cfg.HTTP.AllowedOrigins),
			httptransport.Recoverer(slog.Default()),
			render.SetContentType(render.ContentTypeJSON),
		)

		router.Get("/events", httptransport.MakeHandlerFunc(
			endpts.SearchEndpoint.ListEvents,
			httptransport.NoRequest,
			httptransport.ResponseWithBody,
		))

		router.Route("/searches", func(router chi.Router) {
			router.Post("/", httptransport.MakeHandlerFunc(
				endpts.SearchEndpoint.StartSearch,
				httptransport.DecodeRequest[dto.SearchRequest],
				httptransport.AcceptedResponseWithBody,
			))

			router.Get("/{id}", httptransport.MakeHandlerFunc(
				endpts.SearchEndpoint.GetSearch,
				DecodeSearchIDRequest,
				httptransport.ResponseWithBody,
			))

			router.Delete("/{id}", httptransport.MakeHandlerFunc(
				endpts.SearchEndpoint.CancelSearch,
				DecodeSearchIDRequest,
				httptransport.ResponseWithBody,
			))

			router.Get("/{id}/events/{event}/hotel", httptransport.MakeHandlerFunc(
				endpts.SearchEndpoint.GetHotel,
				DecodeHotelRequest,
				httptransport.ResponseWithBody,
			))
		})
	})

	return router
}
