package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/anything2image/gallery-api/internal/api/middleware"
	"github.com/anything2image/gallery-api/internal/core/domain"
	"github.com/anything2image/gallery-api/internal/core/ports"
)

// UserHandler handles account and image routes under /user.
type UserHandler struct {
	accounts   ports.AccountService
	images     ports.ImageService
	sessionTTL time.Duration
}

func NewUserHandler(accounts ports.AccountService, images ports.ImageService, sessionTTL time.Duration) *UserHandler {
	return &UserHandler{accounts: accounts, images: images, sessionTTL: sessionTTL}
}

// --- Request / Response types ---

type registerRequest struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type registerResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

type loginResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    *domain.User `json:"user"`
}

type saveImageResponse struct {
	Message string              `json:"message"`
	Image   *domain.ImageRecord `json:"image"`
}

type listImagesResponse struct {
	Images []domain.ImageRecord `json:"images"`
}

// Status reports that the user service is reachable.
func (h *UserHandler) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "User service is running."})
}

// Register creates a new account.
//
// @Summary      Register a new user
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /user/register [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.accounts.Register(c.Request().Context(), req.FullName, req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, registerResponse{
		Message: "User registered successfully.",
		UserID:  user.ID,
	})
}

// Login authenticates a user and sets the session cookie.
//
// @Summary      Login
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  map[string]string
// @Router       /user/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.accounts.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	c.SetCookie(h.sessionCookie(token, h.sessionTTL))

	return c.JSON(http.StatusOK, loginResponse{
		Message: "Login successful.",
		Token:   token,
		User:    user,
	})
}

// Logout revokes the caller's session and expires the cookie. It succeeds
// even without a valid session: there is nothing to protect on this path.
func (h *UserHandler) Logout(c echo.Context) error {
	if token := middleware.TokenFromRequest(c); token != "" {
		if err := h.accounts.Logout(c.Request().Context(), token); err != nil {
			return err
		}
	}

	c.SetCookie(h.sessionCookie("", -time.Second))
	return c.JSON(http.StatusOK, messageResponse{Message: "Logout successful."})
}

// SaveImage stores a multipart-uploaded image for the authenticated user.
//
// @Summary      Upload an image
// @Tags         user
// @Accept       multipart/form-data
// @Produce      json
// @Param        image        formData  file    true  "Image file"
// @Param        description  formData  string  true  "Image description"
// @Success      200  {object}  saveImageResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /user/save_image [post]
func (h *UserHandler) SaveImage(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "image file is required")
	}
	description := c.FormValue("description")
	if description == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "description is required")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot read image file")
	}
	defer src.Close()

	rec, err := h.images.Save(c.Request().Context(), user.ID, ports.SaveImageInput{
		Filename:    fileHeader.Filename,
		Description: description,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Body:        src,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, saveImageResponse{
		Message: "Image saved successfully.",
		Image:   rec,
	})
}

// GetImage streams one of the authenticated user's stored images.
//
// @Summary      Download an image
// @Tags         user
// @Produce      octet-stream
// @Param        filename  path  string  true  "Stored filename"
// @Success      200  {file}    binary
// @Failure      404  {object}  map[string]string
// @Router       /user/s/{filename} [get]
func (h *UserHandler) GetImage(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	filename := c.Param("filename")
	rc, rec, err := h.images.Open(c.Request().Context(), user.ID, filename)
	if err != nil {
		return err
	}
	defer rc.Close()

	contentType := rec.ContentType
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `inline; filename="`+rec.Fname+`"`)
	return c.Stream(http.StatusOK, contentType, rc)
}

// ListImages returns the authenticated user's image metadata.
func (h *UserHandler) ListImages(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	images, err := h.images.List(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	if images == nil {
		images = []domain.ImageRecord{}
	}
	return c.JSON(http.StatusOK, listImagesResponse{Images: images})
}

// sessionCookie builds the session cookie. SameSite=None with Secure
// matches the cross-origin frontend the CORS config admits.
func (h *UserHandler) sessionCookie(token string, maxAge time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
}
