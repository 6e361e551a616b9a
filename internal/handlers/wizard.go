package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nexcard/nexcard/internal/cards"
	"github.com/nexcard/nexcard/internal/domain"
	"github.com/nexcard/nexcard/internal/settings"
	"github.com/nexcard/nexcard/internal/view"
	"github.com/nexcard/nexcard/internal/wizard"
	"github.com/nexcard/nexcard/web/src/templates/layouts"
	"github.com/nexcard/nexcard/web/src/templates/pages"
)

const (
	// WizardSessionName is the cookie session holding the visitor's draft
	// key. The draft itself stays in the wizard.Store.
	WizardSessionName = "nexcard-wizard"
	wizardDraftKey    = "draft"

	saveFailedMessage = "Failed to save the business card. Please try again."
)

// WizardHandler drives the card wizard across requests. The controller's
// state lives in drafts between steps.
type WizardHandler struct {
	cards  *cards.Service
	prefs  *settings.Store
	drafts *wizard.Store
}

// NewWizardHandler creates a new WizardHandler.
func NewWizardHandler(svc *cards.Service, prefs *settings.Store, drafts *wizard.Store) *WizardHandler {
	return &WizardHandler{cards: svc, prefs: prefs, drafts: drafts}
}

func draftKey(c echo.Context) string {
	sess, err := session.Get(WizardSessionName, c)
	if err != nil {
		return ""
	}
	key, _ := sess.Values[wizardDraftKey].(string)
	return key
}

func (h *WizardHandler) loadState(c echo.Context) (wizard.State, bool) {
	key := draftKey(c)
	if key == "" {
		return wizard.State{}, false
	}
	return h.drafts.Get(key)
}

func (h *WizardHandler) storeState(c echo.Context, s wizard.State) error {
	sess, err := session.Get(WizardSessionName, c)
	if err != nil {
		return fmt.Errorf("wizard session: %w", err)
	}
	old, _ := sess.Values[wizardDraftKey].(string)
	key := h.drafts.Put(old, s)
	if key == old {
		return nil
	}
	sess.Values[wizardDraftKey] = key
	return sess.Save(c.Request(), c.Response())
}

func (h *WizardHandler) clearState(c echo.Context) {
	if key := draftKey(c); key != "" {
		h.drafts.Delete(key)
	}
	forgetDraft(c)
}

// forgetDraft drops the draft key from the visitor's cookie.
func forgetDraft(c echo.Context) {
	sess, err := session.Get(WizardSessionName, c)
	if err != nil {
		return
	}
	if _, ok := sess.Values[wizardDraftKey]; !ok {
		return
	}
	delete(sess.Values, wizardDraftKey)
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		slog.Warn("Failed to clear wizard state", "error", err)
	}
}

// controller restores the wizard of the current request, bound to a saver
// for the signed-in user.
func (h *WizardHandler) controller(c echo.Context, user *domain.User) (*wizard.Controller, bool) {
	s, ok := h.loadState(c)
	if !ok {
		return nil, false
	}
	return wizard.Restore(s, h.cards.Saver(user.ID, s.CardID)), true
}

func wizardURL(s wizard.State) string {
	if s.CardID != "" {
		return "/app/cards/" + s.CardID + "/edit"
	}
	return "/app/cards/new"
}

// applyForm copies the wizard fields present in the posted form.
func applyForm(c echo.Context, ctrl *wizard.Controller) error {
	form, err := c.FormParams()
	if err != nil {
		return err
	}
	for _, name := range wizard.Fields {
		if values, ok := form[name]; ok && len(values) > 0 {
			if err := ctrl.EditField(name, values[0]); err != nil {
				return err
			}
		}
	}
	return nil
}

func (h *WizardHandler) render(c echo.Context, ctrl *wizard.Controller) error {
	s := ctrl.Snapshot()
	editing := s.CardID != "" && s.Status != wizard.StatusSaved
	title := "Create Card"
	section := layouts.SectionCreate
	if editing {
		title = "Edit Card"
		section = layouts.SectionCards
	}
	return renderApp(c, http.StatusOK, title, section, pages.Wizard(pages.NewWizardView(ctrl, editing)))
}

// NewGet opens the wizard for a new card (GET /app/cards/new). An
// unfinished new-card draft in the session is resumed.
func (h *WizardHandler) NewGet(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if s, ok := h.loadState(c); ok && s.CardID == "" && s.Status != wizard.StatusSaved {
		return h.render(c, wizard.Restore(s, h.cards.Saver(user.ID, "")))
	}

	ctrl := wizard.New(h.cards.Saver(user.ID, ""))
	if err := ctrl.EditField("theme", string(h.prefs.DefaultTheme(*user))); err != nil {
		return err
	}
	if err := h.storeState(c, ctrl.Snapshot()); err != nil {
		return err
	}
	return h.render(c, ctrl)
}

// EditGet opens the wizard on an existing card (GET /app/cards/:id/edit).
func (h *WizardHandler) EditGet(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	id := c.Param("id")

	if s, ok := h.loadState(c); ok && s.CardID == id && s.Status != wizard.StatusSaved {
		return h.render(c, wizard.Restore(s, h.cards.Saver(user.ID, id)))
	}

	card, err := h.cards.Owned(c.Request().Context(), user.ID, id)
	if err != nil {
		if cards.IsNotFound(err) {
			return renderApp(c, http.StatusNotFound, "Card Not Found", layouts.SectionCards, pages.CardNotFound())
		}
		return fmt.Errorf("edit card: %w", err)
	}

	ctrl := wizard.FromCard(*card, h.cards.Saver(user.ID, id))
	if err := h.storeState(c, ctrl.Snapshot()); err != nil {
		return err
	}
	return h.render(c, ctrl)
}

// withController restores the wizard for a POST, or sends the visitor back
// to a fresh wizard when the session lost it.
func (h *WizardHandler) withController(c echo.Context, fn func(*wizard.Controller) error) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	ctrl, ok := h.controller(c, user)
	if !ok {
		view.SetFlashError(c, "Your draft has expired. Please start again.")
		if isHTMX(c) {
			c.Response().Header().Set("HX-Redirect", "/app/cards/new")
			return c.NoContent(http.StatusOK)
		}
		return c.Redirect(http.StatusSeeOther, "/app/cards/new")
	}
	return fn(ctrl)
}

// FieldPost sets a single field from name/value (POST /app/wizard/field).
func (h *WizardHandler) FieldPost(c echo.Context) error {
	return h.withController(c, func(ctrl *wizard.Controller) error {
		if err := ctrl.EditField(c.FormValue("name"), c.FormValue("value")); err != nil {
			if errors.Is(err, wizard.ErrUnknownField) {
				return echo.NewHTTPError(http.StatusBadRequest, "unknown field").SetInternal(err)
			}
			return err
		}
		if err := h.storeState(c, ctrl.Snapshot()); err != nil {
			return err
		}
		if isHTMX(c) {
			return renderFragment(c, pages.WizardPreview(pages.NewWizardView(ctrl, false)))
		}
		return c.Redirect(http.StatusSeeOther, wizardURL(ctrl.Snapshot()))
	})
}

// PreviewPost applies the posted step form and returns the live preview
// fragment (POST /app/wizard/preview).
func (h *WizardHandler) PreviewPost(c echo.Context) error {
	return h.withController(c, func(ctrl *wizard.Controller) error {
		if err := applyForm(c, ctrl); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid form").SetInternal(err)
		}
		if err := h.storeState(c, ctrl.Snapshot()); err != nil {
			return err
		}
		return renderFragment(c, pages.WizardPreview(pages.NewWizardView(ctrl, false)))
	})
}

// NextPost applies the step form and advances when the step is complete
// (POST /app/wizard/next).
func (h *WizardHandler) NextPost(c echo.Context) error {
	return h.withController(c, func(ctrl *wizard.Controller) error {
		if err := applyForm(c, ctrl); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid form").SetInternal(err)
		}
		if err := ctrl.Next(); err != nil {
			if !errors.Is(err, wizard.ErrStepIncomplete) {
				return err
			}
			view.SetFlashError(c, "Please fill in all required fields before continuing.")
		}
		if err := h.storeState(c, ctrl.Snapshot()); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, wizardURL(ctrl.Snapshot()))
	})
}

// BackPost keeps what was typed and returns to the previous step
// (POST /app/wizard/back).
func (h *WizardHandler) BackPost(c echo.Context) error {
	return h.withController(c, func(ctrl *wizard.Controller) error {
		if err := applyForm(c, ctrl); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid form").SetInternal(err)
		}
		ctrl.Back()
		if err := h.storeState(c, ctrl.Snapshot()); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, wizardURL(ctrl.Snapshot()))
	})
}

// SavePost hands the draft to the card service (POST /app/wizard/save). A
// failure keeps the visitor on the review step with the error visible.
func (h *WizardHandler) SavePost(c echo.Context) error {
	return h.withController(c, func(ctrl *wizard.Controller) error {
		before := ctrl.Snapshot()
		id, err := ctrl.Save(c.Request().Context())
		if err != nil {
			if errors.Is(err, wizard.ErrNotAtReview) {
				return c.Redirect(http.StatusSeeOther, wizardURL(before))
			}
			slog.Error("Failed to save card", "card_id", before.CardID, "error", err)
			view.SetFlashError(c, saveFailedMessage)
			if serr := h.storeState(c, ctrl.Snapshot()); serr != nil {
				return serr
			}
			return c.Redirect(http.StatusSeeOther, wizardURL(before))
		}

		h.clearState(c)
		if before.CardID != "" {
			view.SetFlashSuccess(c, "Business card updated successfully!")
		} else {
			view.SetFlashSuccess(c, "Business card saved successfully!")
		}
		slog.Info("Card saved", "card_id", id)
		return c.Redirect(http.StatusSeeOther, "/app/cards")
	})
}
