package helpers

import (
	"log"
	"net/http"

	"github.com/fitfinder/fitfinder/app/models"
	"github.com/fitfinder/fitfinder/app/utils/breadcrumb"
	"github.com/gorilla/csrf"
)

// GetBaseData merges page-specific data with the request-scoped data every
// template needs: current user, flash status/message, CSRF field,
// breadcrumbs.
func GetBaseData(r *http.Request, pageSpecificData map[string]interface{}) map[string]interface{} {
	if pageSpecificData == nil {
		pageSpecificData = make(map[string]interface{})
	}

	if _, exists := pageSpecificData["Title"]; !exists {
		pageSpecificData["Title"] = "FitFinder"
	}
	if _, exists := pageSpecificData["IsLoggedIn"]; !exists {
		pageSpecificData["IsLoggedIn"] = false
	}
	if _, exists := pageSpecificData["User"]; !exists {
		pageSpecificData["User"] = nil
	}
	if _, exists := pageSpecificData["UserID"]; !exists {
		pageSpecificData["UserID"] = ""
	}
	if _, exists := pageSpecificData["Breadcrumbs"]; !exists {
		pageSpecificData["Breadcrumbs"] = []breadcrumb.Breadcrumb{}
	}
	if _, exists := pageSpecificData["IsAuthPage"]; !exists {
		pageSpecificData["IsAuthPage"] = false
	}
	if _, exists := pageSpecificData["Query"]; !exists {
		pageSpecificData["Query"] = r.URL.Query()
	}

	pageSpecificData["CSRFField"] = csrf.TemplateField(r)

	if userVal := r.Context().Value(ContextKeyUser); userVal != nil {
		if user, ok := userVal.(*models.User); ok && user != nil {
			pageSpecificData["User"] = user
			pageSpecificData["IsLoggedIn"] = true
			pageSpecificData["UserID"] = user.ID
		} else {
			log.Printf("GetBaseData: User in context is not of type *models.User or is nil. Value: %+v", userVal)
		}
	}

	pageSpecificData["MessageStatus"] = r.URL.Query().Get("status")
	pageSpecificData["Message"] = r.URL.Query().Get("message")

	return pageSpecificData
}
