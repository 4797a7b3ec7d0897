package handlers

import (
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/fitfinder/fitfinder/app/helpers"
	"github.com/fitfinder/fitfinder/app/models"
	"github.com/fitfinder/fitfinder/app/repositories"
	"github.com/fitfinder/fitfinder/app/utils/breadcrumb"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

type ProfileHandler struct {
	render      *render.Render
	profileRepo repositories.SizeProfileRepositoryImpl
	prefRepo    repositories.PreferenceRepositoryImpl
	validator   *validator.Validate
}

func NewProfileHandler(r *render.Render, profileRepo repositories.SizeProfileRepositoryImpl, prefRepo repositories.PreferenceRepositoryImpl, validator *validator.Validate) *ProfileHandler {
	return &ProfileHandler{
		render:      r,
		profileRepo: profileRepo,
		prefRepo:    prefRepo,
		validator:   validator,
	}
}

type SizeProfileForm struct {
	ShirtSize    string `form:"shirt_size" validate:"omitempty,oneof=XS S M L XL XXL"`
	PantSize     string `form:"pant_size" validate:"omitempty,max=10"`
	DressSize    string `form:"dress_size" validate:"omitempty,max=10"`
	ShoeSizeUS   string `form:"shoe_size_us" validate:"omitempty,numeric"`
	ShoeSizeEU   string `form:"shoe_size_eu" validate:"omitempty,numeric"`
	ShoeSizeUK   string `form:"shoe_size_uk" validate:"omitempty,numeric"`
	HeightCm     string `form:"height_cm" validate:"omitempty,numeric"`
	WeightKg     string `form:"weight_kg" validate:"omitempty,numeric"`
	ChestCm      string `form:"chest_cm" validate:"omitempty,numeric"`
	WaistCm      string `form:"waist_cm" validate:"omitempty,numeric"`
	HipCm        string `form:"hip_cm" validate:"omitempty,numeric"`
	PreferredFit string `form:"preferred_fit" validate:"omitempty,oneof=slim regular loose oversized"`

	PrefMinPrice    string `form:"pref_min_price" validate:"omitempty,numeric"`
	PrefMaxPrice    string `form:"pref_max_price" validate:"omitempty,numeric"`
	PreferredColors string `form:"preferred_colors" validate:"omitempty,max=500"`
}

func (h *ProfileHandler) ProfileGetHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(helpers.ContextKeyUserID).(string)

	profile, err := h.profileRepo.GetOrCreate(r.Context(), userID)
	if err != nil {
		log.Printf("ProfileGetHandler: Error loading size profile for user %s: %v", userID, err)
		http.Error(w, "Failed to load your profile", http.StatusInternalServerError)
		return
	}

	prefs, err := h.prefRepo.GetOrCreate(r.Context(), userID)
	if err != nil {
		log.Printf("ProfileGetHandler: Error loading preferences for user %s: %v", userID, err)
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":       "My Size Profile",
		"Profile":     profile,
		"Preferences": prefs,
		"ShirtSizes":  models.ShirtSizes,
		"Breadcrumbs": []breadcrumb.Breadcrumb{{Name: "Home", URL: "/"}, {Name: "Profile", URL: "/profile"}},
	})
	_ = h.render.HTML(w, http.StatusOK, "accounts/profile", data)
}

func (h *ProfileHandler) ProfilePostHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(helpers.ContextKeyUserID).(string)

	if err := r.ParseForm(); err != nil {
		log.Printf("ProfilePostHandler: Error parsing form: %v", err)
		http.Redirect(w, r, "/profile?status=error&message="+url.QueryEscape("Something went wrong processing your sizes."), http.StatusSeeOther)
		return
	}

	form := SizeProfileForm{
		ShirtSize:    r.FormValue("shirt_size"),
		PantSize:     r.FormValue("pant_size"),
		DressSize:    r.FormValue("dress_size"),
		ShoeSizeUS:   r.FormValue("shoe_size_us"),
		ShoeSizeEU:   r.FormValue("shoe_size_eu"),
		ShoeSizeUK:   r.FormValue("shoe_size_uk"),
		HeightCm:     r.FormValue("height_cm"),
		WeightKg:     r.FormValue("weight_kg"),
		ChestCm:      r.FormValue("chest_cm"),
		WaistCm:      r.FormValue("waist_cm"),
		HipCm:        r.FormValue("hip_cm"),
		PreferredFit: r.FormValue("preferred_fit"),

		PrefMinPrice:    r.FormValue("pref_min_price"),
		PrefMaxPrice:    r.FormValue("pref_max_price"),
		PreferredColors: r.FormValue("preferred_colors"),
	}

	if err := h.validator.Struct(form); err != nil {
		fieldErrors := helpers.FormatValidationErrors(err.(validator.ValidationErrors))
		profile, _ := h.profileRepo.GetOrCreate(r.Context(), userID)
		prefs, _ := h.prefRepo.GetOrCreate(r.Context(), userID)
		data := helpers.GetBaseData(r, map[string]interface{}{
			"Title":       "My Size Profile",
			"Profile":     profile,
			"Preferences": prefs,
			"ShirtSizes":  models.ShirtSizes,
			"FieldErrors": fieldErrors,
		})
		_ = h.render.HTML(w, http.StatusUnprocessableEntity, "accounts/profile", data)
		return
	}

	profile, err := h.profileRepo.GetOrCreate(r.Context(), userID)
	if err != nil {
		log.Printf("ProfilePostHandler: Error loading size profile for user %s: %v", userID, err)
		http.Redirect(w, r, "/profile?status=error&message="+url.QueryEscape("Failed to load your profile."), http.StatusSeeOther)
		return
	}

	profile.ShirtSize = form.ShirtSize
	profile.PantSize = form.PantSize
	profile.DressSize = form.DressSize
	profile.ShoeSizeUS = parseDecimalField(form.ShoeSizeUS)
	profile.ShoeSizeEU = parseIntField(form.ShoeSizeEU)
	profile.ShoeSizeUK = parseDecimalField(form.ShoeSizeUK)
	profile.HeightCm = parseIntField(form.HeightCm)
	profile.WeightKg = parseDecimalField(form.WeightKg)
	profile.ChestCm = parseIntField(form.ChestCm)
	profile.WaistCm = parseIntField(form.WaistCm)
	profile.HipCm = parseIntField(form.HipCm)
	if form.PreferredFit != "" {
		profile.PreferredFit = form.PreferredFit
	}

	if err := h.profileRepo.Update(r.Context(), profile); err != nil {
		log.Printf("ProfilePostHandler: Error saving size profile for user %s: %v", userID, err)
		http.Redirect(w, r, "/profile?status=error&message="+url.QueryEscape("Failed to save your sizes."), http.StatusSeeOther)
		return
	}

	prefs, err := h.prefRepo.GetOrCreate(r.Context(), userID)
	if err != nil {
		log.Printf("ProfilePostHandler: Error loading preferences for user %s: %v", userID, err)
		http.Redirect(w, r, "/profile?status=error&message="+url.QueryEscape("Failed to save your preferences."), http.StatusSeeOther)
		return
	}
	prefs.MinPrice = parseDecimalField(form.PrefMinPrice)
	prefs.MaxPrice = parseDecimalField(form.PrefMaxPrice)
	prefs.PreferredColors = form.PreferredColors
	if err := h.prefRepo.Update(r.Context(), prefs); err != nil {
		log.Printf("ProfilePostHandler: Error saving preferences for user %s: %v", userID, err)
		http.Redirect(w, r, "/profile?status=error&message="+url.QueryEscape("Failed to save your preferences."), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/profile?status=success&message="+url.QueryEscape("Size profile updated."), http.StatusSeeOther)
}

func parseDecimalField(value string) *decimal.Decimal {
	if value == "" {
		return nil
	}
	parsed, err := decimal.NewFromString(value)
	if err != nil {
		return nil
	}
	return &parsed
}

func parseIntField(value string) *int {
	if value == "" {
		return nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}
	return &parsed
}
