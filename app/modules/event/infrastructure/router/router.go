// Package eventrouter mounts the event module's HTTP routes.
package eventrouter

import (
	"github.com/go-chi/chi/v5"
	eventhandlers "github.com/sports-arena/event-service/app/modules/event/infrastructure/handlers"
	ratinghandlers "github.com/sports-arena/event-service/app/modules/rating/infrastructure/handlers"
)

// Routes wires the participation and rating endpoints under /events. The
// rating routes nest under an event because a rating never exists without
// one.
func Routes(events *eventhandlers.Handlers, ratings *ratinghandlers.Handlers) chi.Router {
	r := chi.NewRouter()

	r.Post("/", events.CreateEvent)
	r.Get("/available", events.ListAvailableEvents)
	r.Get("/search", events.SearchEvents)
	r.Get("/mine", events.ListMyEvents)
	r.Get("/participations", events.ListMyParticipations)

	r.Route("/{eventID}", func(r chi.Router) {
		r.Get("/", events.GetEvent)
		r.Post("/invite", events.InvitePlayers)
		r.Post("/join", events.JoinEvent)
		r.Post("/respond", events.RespondToInvitation)
		r.Delete("/participants/{participantID}", events.RemovePlayer)

		r.Post("/ratings", ratings.RateEvent)
		r.Get("/ratings", ratings.ListEventRatings)
	})

	return r
}
