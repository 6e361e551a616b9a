package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/nexcard/nexcard/internal/cards"
	"github.com/nexcard/nexcard/internal/middleware"
	"github.com/nexcard/nexcard/internal/view"
	"github.com/nexcard/nexcard/web/src/templates/layouts"
	"github.com/nexcard/nexcard/web/src/templates/pages"
)

// CardsHandler serves the gallery and the public card pages.
type CardsHandler struct {
	cards   *cards.Service
	baseURL string
}

// NewCardsHandler creates a new CardsHandler. baseURL prefixes share links.
func NewCardsHandler(svc *cards.Service, baseURL string) *CardsHandler {
	return &CardsHandler{cards: svc, baseURL: strings.TrimSuffix(baseURL, "/")}
}

// GalleryGet lists the user's cards (GET /app/cards?q=&sort=&theme=).
// htmx requests only get the grid back.
func (h *CardsHandler) GalleryGet(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var q cards.Query
	if err := bindAndValidate(c, &q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid filter").SetInternal(err)
	}

	list, err := h.cards.List(c.Request().Context(), user.ID, q)
	if err != nil {
		return fmt.Errorf("gallery: %w", err)
	}

	if isHTMX(c) {
		filtered := q.Search != "" || (q.Theme != "" && q.Theme != cards.ThemeAll)
		return renderFragment(c, pages.CardGrid(list, filtered))
	}
	return renderApp(c, http.StatusOK, "My Cards", layouts.SectionCards, pages.Gallery(list, q))
}

// DeletePost removes a card (POST /app/cards/:id/delete).
func (h *CardsHandler) DeletePost(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if err := h.cards.Delete(c.Request().Context(), user.ID, id); err != nil {
		if !cards.IsNotFound(err) {
			slog.Error("Failed to delete card", "card_id", id, "error", err)
		}
		view.SetFlashError(c, "Could not delete the card.")
		return c.Redirect(http.StatusSeeOther, "/app/cards")
	}

	view.SetFlashSuccess(c, "Card deleted.")
	return c.Redirect(http.StatusSeeOther, "/app/cards")
}

// DuplicatePost copies a card (POST /app/cards/:id/duplicate).
func (h *CardsHandler) DuplicatePost(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	dup, err := h.cards.Duplicate(c.Request().Context(), user.ID, id)
	if err != nil {
		if !cards.IsNotFound(err) {
			slog.Error("Failed to duplicate card", "card_id", id, "error", err)
		}
		view.SetFlashError(c, "Could not duplicate the card.")
		return c.Redirect(http.StatusSeeOther, "/app/cards")
	}

	view.SetFlashSuccess(c, fmt.Sprintf("Created %q.", dup.Title))
	return c.Redirect(http.StatusSeeOther, "/app/cards")
}

// ViewGet renders a card's public page (GET /cards/:id). Unknown and
// private cards show the not-found panel.
func (h *CardsHandler) ViewGet(c echo.Context) error {
	viewerID := ""
	user, signedIn := middleware.CurrentUser(c)
	if signedIn {
		viewerID = user.ID
	}

	card, err := h.cards.View(c.Request().Context(), c.Param("id"), viewerID)
	if err != nil {
		if !cards.IsNotFound(err) {
			return fmt.Errorf("view card: %w", err)
		}
		return renderPage(c, http.StatusNotFound, "Card Not Found", pages.CardNotFound())
	}

	owner := signedIn && user.ID == card.UserID
	return renderPage(c, http.StatusOK, card.Title, pages.CardView(*card, h.baseURL+"/cards/"+card.ID, owner))
}

// VCardGet downloads a public card as a vCard file (GET /cards/:id/vcard).
func (h *CardsHandler) VCardGet(c echo.Context) error {
	card, err := h.cards.Fetch(c.Request().Context(), c.Param("id"))
	if err != nil {
		if cards.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "card not found")
		}
		return fmt.Errorf("vcard: %w", err)
	}
	if !card.IsPublic {
		user, ok := middleware.CurrentUser(c)
		if !ok || user.ID != card.UserID {
			return echo.NewHTTPError(http.StatusNotFound, "card not found")
		}
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", cards.VCardFilename(*card)))
	return c.Blob(http.StatusOK, "text/vcard; charset=utf-8", []byte(cards.VCard(*card)))
}
