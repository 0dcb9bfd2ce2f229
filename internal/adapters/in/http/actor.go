package http

import (
	"net/http"

	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/core/domain/services"
	"deliverus/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// HeaderUserID carries the authenticated user's identity, set by the
// authentication layer in front of this service.
const HeaderUserID = "X-User-Id"

const actorContextKey = "actor"

// ActorMiddleware resolves the acting user from the X-User-Id header through
// the user repository and stores it in the request context. Requests without
// a resolvable user are rejected with 401.
func ActorMiddleware(users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			raw := ctx.Request().Header.Get(HeaderUserID)
			if raw == "" {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "missing user identity",
				})
			}

			userID, err := kernel.UUIDFromString(raw)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "invalid user identity",
				})
			}

			actingUser, err := users.Get(ctx.Request().Context(), userID)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "unknown user",
				})
			}

			actor, err := services.NewActor(actingUser.ID(), actingUser.Role())
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "invalid user",
				})
			}

			ctx.Set(actorContextKey, actor)
			return next(ctx)
		}
	}
}

func actorFromContext(ctx echo.Context) (services.Actor, bool) {
	actor, ok := ctx.Get(actorContextKey).(services.Actor)
	return actor, ok
}
