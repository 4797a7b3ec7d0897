package handlers

import (
	"log"
	"net/http"

	"github.com/fitfinder/fitfinder/app/helpers"
	"github.com/fitfinder/fitfinder/app/models"
	"github.com/fitfinder/fitfinder/app/services"
	"github.com/fitfinder/fitfinder/app/utils/sessions"
	"github.com/gorilla/mux"
)

type AffiliateHandler struct {
	affiliateSvc *services.AffiliateService
	sessionStore sessions.SessionStore
}

func NewAffiliateHandler(affiliateSvc *services.AffiliateService, sessionStore sessions.SessionStore) *AffiliateHandler {
	return &AffiliateHandler{
		affiliateSvc: affiliateSvc,
		sessionStore: sessionStore,
	}
}

// Redirect records the click and sends the caller to the partner, setting
// the tracking cookie for the partner's cookie window.
func (h *AffiliateHandler) Redirect(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	linkID := mux.Vars(r)["linkID"]

	userID, _ := ctx.Value(helpers.ContextKeyUserID).(string)

	params := services.ClickParams{
		UserID:    userID,
		SessionID: h.sessionStore.GetSessionID(w, r),
		IPAddress: helpers.ClientIP(r),
		UserAgent: r.UserAgent(),
		Referrer:  r.Referer(),
	}

	link, click, err := h.affiliateSvc.TrackClick(ctx, linkID, params)
	if err != nil {
		if err == services.ErrLinkNotFound {
			http.NotFound(w, r)
			return
		}
		log.Printf("AffiliateHandler.Redirect: Error tracking click on link %s: %v", linkID, err)
		http.Error(w, "Failed to process link", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     models.TrackingCookieName,
		Value:    click.TrackingID,
		Path:     "/",
		MaxAge:   link.Partner.CookieDurationDays * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, link.AffiliateURL, http.StatusFound)
}
