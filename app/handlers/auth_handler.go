package handlers

import (
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/fitfinder/fitfinder/app/helpers"
	"github.com/fitfinder/fitfinder/app/models"
	"github.com/fitfinder/fitfinder/app/repositories"
	"github.com/fitfinder/fitfinder/app/utils/breadcrumb"
	"github.com/fitfinder/fitfinder/app/utils/sessions"
	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"
)

type AuthHandler struct {
	render       *render.Render
	userRepo     repositories.UserRepositoryImpl
	sessionStore sessions.SessionStore
	validator    *validator.Validate
}

func NewAuthHandler(r *render.Render, userRepo repositories.UserRepositoryImpl, sessionStore sessions.SessionStore, validator *validator.Validate) *AuthHandler {
	return &AuthHandler{
		render:       r,
		userRepo:     userRepo,
		sessionStore: sessionStore,
		validator:    validator,
	}
}

type RegisterForm struct {
	FirstName   string `form:"first_name" validate:"required,min=2,max=100"`
	LastName    string `form:"last_name" validate:"required,min=2,max=100"`
	Email       string `form:"email" validate:"required,email"`
	Password    string `form:"password" validate:"required,min=6"`
	DateOfBirth string `form:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Gender      string `form:"gender" validate:"omitempty,oneof=M F O P"`
}

func (h *AuthHandler) RegisterGetHandler(w http.ResponseWriter, r *http.Request) {
	if userID, ok := r.Context().Value(helpers.ContextKeyUserID).(string); ok && userID != "" {
		http.Redirect(w, r, "/profile", http.StatusSeeOther)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":       "Create Account",
		"Breadcrumbs": []breadcrumb.Breadcrumb{{Name: "Home", URL: "/"}, {Name: "Register", URL: "/register"}},
		"IsAuthPage":  true,
	})
	_ = h.render.HTML(w, http.StatusOK, "auth/register", data)
}

func (h *AuthHandler) RegisterPostHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		log.Printf("RegisterPostHandler: Error parsing form: %v", err)
		http.Redirect(w, r, "/register?status=error&message="+url.QueryEscape("Something went wrong processing your details."), http.StatusSeeOther)
		return
	}

	form := RegisterForm{
		FirstName:   r.FormValue("first_name"),
		LastName:    r.FormValue("last_name"),
		Email:       r.FormValue("email"),
		Password:    r.FormValue("password"),
		DateOfBirth: r.FormValue("date_of_birth"),
		Gender:      r.FormValue("gender"),
	}

	if err := h.validator.Struct(form); err != nil {
		fieldErrors := helpers.FormatValidationErrors(err.(validator.ValidationErrors))
		data := helpers.GetBaseData(r, map[string]interface{}{
			"Title":       "Create Account",
			"Form":        form,
			"FieldErrors": fieldErrors,
			"IsAuthPage":  true,
		})
		_ = h.render.HTML(w, http.StatusUnprocessableEntity, "auth/register", data)
		return
	}

	existing, err := h.userRepo.FindByEmail(r.Context(), form.Email)
	if err != nil {
		log.Printf("RegisterPostHandler: Error checking email '%s': %v", form.Email, err)
		http.Redirect(w, r, "/register?status=error&message="+url.QueryEscape("Server error, please try again."), http.StatusSeeOther)
		return
	}
	if existing != nil {
		http.Redirect(w, r, "/register?status=error&message="+url.QueryEscape("An account with that email already exists."), http.StatusSeeOther)
		return
	}

	user := &models.User{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Password:  form.Password,
		Gender:    form.Gender,
	}
	if form.DateOfBirth != "" {
		if dob, parseErr := time.Parse("2006-01-02", form.DateOfBirth); parseErr == nil {
			user.DateOfBirth = &dob
		}
	}

	if err := h.userRepo.Create(r.Context(), user); err != nil {
		log.Printf("RegisterPostHandler: Error creating user %s: %v", form.Email, err)
		http.Redirect(w, r, "/register?status=error&message="+url.QueryEscape("Failed to create your account."), http.StatusSeeOther)
		return
	}

	if err := h.sessionStore.SetUserID(w, r, user.ID); err != nil {
		log.Printf("RegisterPostHandler: Error setting session for user %s: %v", user.ID, err)
		http.Redirect(w, r, "/login?status=success&message="+url.QueryEscape("Account created, please log in."), http.StatusSeeOther)
		return
	}

	// New accounts land on the size profile form first.
	http.Redirect(w, r, "/profile?status=success&message="+url.QueryEscape("Account created! Tell us your sizes for better matches."), http.StatusSeeOther)
}

func (h *AuthHandler) LoginGetHandler(w http.ResponseWriter, r *http.Request) {
	if userID, ok := r.Context().Value(helpers.ContextKeyUserID).(string); ok && userID != "" {
		http.Redirect(w, r, "/profile", http.StatusSeeOther)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":       "Login",
		"Breadcrumbs": []breadcrumb.Breadcrumb{{Name: "Home", URL: "/"}, {Name: "Login", URL: "/login"}},
		"IsAuthPage":  true,
	})
	_ = h.render.HTML(w, http.StatusOK, "auth/login", data)
}

func (h *AuthHandler) LoginPostHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		log.Printf("LoginPostHandler: Error parsing form: %v", err)
		http.Redirect(w, r, "/login?status=error&message="+url.QueryEscape("Something went wrong, please try again."), http.StatusSeeOther)
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")

	user, err := h.userRepo.FindByEmail(r.Context(), email)
	if err != nil {
		log.Printf("LoginPostHandler: Error getting user by email '%s': %v", email, err)
		http.Redirect(w, r, "/login?status=error&message="+url.QueryEscape("Server error, please try again."), http.StatusSeeOther)
		return
	}
	if user == nil || !helpers.CheckPassword(user.Password, password) {
		http.Redirect(w, r, "/login?status=error&message="+url.QueryEscape("Incorrect email or password."), http.StatusSeeOther)
		return
	}

	if err := h.sessionStore.SetUserID(w, r, user.ID); err != nil {
		log.Printf("LoginPostHandler: Error setting user session: %v", err)
		http.Redirect(w, r, "/login?status=error&message="+url.QueryEscape("Failed to create your session."), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionStore.ClearSession(w, r); err != nil {
		log.Printf("LogoutHandler: Error clearing session: %v", err)
	}
	http.Redirect(w, r, "/?status=success&message="+url.QueryEscape("You have been logged out."), http.StatusSeeOther)
}
