package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/openshelf/circulation/internal/model"
	"github.com/openshelf/circulation/pkg/auth"
)

const actorKey = "actor"

// actorContext resolves the token identity to a member record. Role always
// comes from the record; a token with no matching member is rejected.
func (h *Handler) actorContext(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		profile, err := auth.Identity(ctx)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
		}
		actor, err := h.svc.ResolveIdentity(ctx, profile.Subject, profile.Email)
		if err != nil {
			if isNotFound(err) {
				return echo.NewHTTPError(http.StatusForbidden, "no member record for identity")
			}
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		c.Set(actorKey, actor)
		return next(c)
	}
}

func actorFrom(c echo.Context) model.Actor {
	actor, _ := c.Get(actorKey).(model.Actor)
	return actor
}
